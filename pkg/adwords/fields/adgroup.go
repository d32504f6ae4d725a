package fields

var AdGroup = NewVocabulary(
	"AdGroup",
	"AdGroupType",
	"AdRotationMode",
	"BaseAdGroupId",
	"BaseCampaignId",
	"BiddingStrategyId",
	"BiddingStrategyName",
	"BiddingStrategySource",
	"BiddingStrategyType",
	"CampaignId",
	"CampaignName",
	"ContentBidCriterionTypeGroup",
	"CpcBid",
	"CpmBid",
	"CpvBid",
	"EnhancedCpcEnabled",
	"FinalUrlSuffix",
	"Id",
	"Labels",
	"Name",
	"Settings",
	"Status",
	"TargetCpa",
	"TargetCpaBid",
	"TargetCpaBidSource",
	"TargetRoasOverride",
	"TrackingUrlTemplate",
	"UrlCustomParameters",
)
