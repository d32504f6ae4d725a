package fields

var Campaign = NewVocabulary(
	"Campaign",
	"AdServingOptimizationStatus",
	"AdvertisingChannelSubType",
	"AdvertisingChannelType",
	"Amount",
	"AppId",
	"AppVendor",
	"BaseCampaignId",
	"BiddingStrategyGoalType",
	"BiddingStrategyId",
	"BiddingStrategyName",
	"BiddingStrategyType",
	"BudgetId",
	"BudgetName",
	"BudgetReferenceCount",
	"BudgetStatus",
	"CampaignGroupId",
	"CampaignTrialType",
	"DeliveryMethod",
	"Eligible",
	"EndDate",
	"EnhancedCpcEnabled",
	"FinalUrlSuffix",
	"FrequencyCapMaxImpressions",
	"Id",
	"IsBudgetExplicitlyShared",
	"Labels",
	"Level",
	"MaximizeConversionValueTargetRoas",
	"Name",
	"RejectionReasons",
	"SelectiveOptimization",
	"ServingStatus",
	"Settings",
	"StartDate",
	"Status",
	"TargetCpa",
	"TargetCpaMaxCpcBidCeiling",
	"TargetCpaMaxCpcBidFloor",
	"TargetRoas",
	"TargetRoasBidCeiling",
	"TargetRoasBidFloor",
	"TargetSpendBidCeiling",
	"TargetSpendSpendTarget",
	"TimeUnit",
	"TrackingUrlTemplate",
	"UrlCustomParameters",
	"VanityPharmaDisplayUrlMode",
	"VanityPharmaText",
	"ViewableCpmEnabled",
)
