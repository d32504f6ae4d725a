package fields

var AdGroupAd = NewVocabulary(
	"AdGroupAd",
	"AccentColor",
	"AdGroupId",
	"AdStrengthInfo",
	"AdType",
	"AdvertisingId",
	"AllowFlexibleColor",
	"Automated",
	"BaseAdGroupId",
	"BaseCampaignId",
	"BusinessName",
	"CallOnlyAdBusinessName",
	"CallOnlyAdCallTracked",
	"CallOnlyAdConversionTypeId",
	"CallOnlyAdCountryCode",
	"CallOnlyAdDescription1",
	"CallOnlyAdDescription2",
	"CallOnlyAdDisableCallConversion",
	"CallOnlyAdPhoneNumber",
	"CallOnlyAdPhoneNumberVerificationUrl",
	"CallToActionText",
	"CreationTime",
	"CreativeFinalAppUrls",
	"CreativeFinalMobileUrls",
	"CreativeFinalUrlSuffix",
	"CreativeFinalUrls",
	"CreativeTrackingUrlTemplate",
	"CreativeUrlCustomParameters",
	"Description",
	"Description1",
	"Description2",
	"DevicePreference",
	"Dimensions",
	"DisplayUploadAdGmailTeaserBusinessName",
	"DisplayUploadAdGmailTeaserDescription",
	"DisplayUploadAdGmailTeaserHeadline",
	"DisplayUploadAdGmailTeaserLogoImage",
	"DisplayUrl",
	"ExpandedDynamicSearchCreativeDescription2",
	"ExpandedTextAdDescription2",
	"ExpandedTextAdHeadlinePart3",
	"ExpandingDirections",
	"FileSize",
	"FormatSetting",
	"GmailHeaderImage",
	"GmailMarketingImage",
	"GmailTeaserBusinessName",
	"GmailTeaserDescription",
	"GmailTeaserHeadline",
	"GmailTeaserLogoImage",
	"Headline",
	"HeadlinePart1",
	"HeadlinePart2",
	"Height",
	"Id",
	"ImageCreativeName",
	"IndustryStandardCommercialIdentifier",
	"IsCookieTargeted",
	"IsTagged",
	"IsUserInterestTargeted",
	"Labels",
	"LandscapeLogoImage",
	"LogoImage",
	"LongHeadline",
	"MainColor",
	"MarketingImage",
	"MarketingImageCallToActionText",
	"MarketingImageCallToActionTextColor",
	"MarketingImageDescription",
	"MarketingImageHeadline",
	"MediaId",
	"MimeType",
	"MultiAssetResponsiveDisplayAdAccentColor",
	"MultiAssetResponsiveDisplayAdAllowFlexibleColor",
	"MultiAssetResponsiveDisplayAdBusinessName",
	"MultiAssetResponsiveDisplayAdCallToActionText",
	"MultiAssetResponsiveDisplayAdDescriptions",
	"MultiAssetResponsiveDisplayAdDynamicSettingsPricePrefix",
	"MultiAssetResponsiveDisplayAdDynamicSettingsPromoText",
	"MultiAssetResponsiveDisplayAdFormatSetting",
	"MultiAssetResponsiveDisplayAdHeadlines",
	"MultiAssetResponsiveDisplayAdLandscapeLogoImages",
	"MultiAssetResponsiveDisplayAdLogoImages",
	"MultiAssetResponsiveDisplayAdLongHeadline",
	"MultiAssetResponsiveDisplayAdMainColor",
	"MultiAssetResponsiveDisplayAdMarketingImages",
	"MultiAssetResponsiveDisplayAdSquareMarketingImages",
	"MultiAssetResponsiveDisplayAdYouTubeVideos",
	"Path1",
	"Path2",
	"PolicySummary",
	"PricePrefix",
	"ProductImages",
	"ProductVideoList",
	"PromoText",
	"ReadyToPlayOnTheWeb",
	"ReferenceId",
	"ResponsiveSearchAdDescriptions",
	"ResponsiveSearchAdHeadlines",
	"ResponsiveSearchAdPath1",
	"ResponsiveSearchAdPath2",
	"RichMediaAdCertifiedVendorFormatId",
	"RichMediaAdDuration",
	"RichMediaAdImpressionBeaconUrl",
	"RichMediaAdName",
	"RichMediaAdSnippet",
	"RichMediaAdSourceUrl",
	"RichMediaAdType",
	"ShortHeadline",
	"SourceUrl",
	"SquareMarketingImage",
	"Status",
	"SystemManagedEntitySource",
	"TemplateAdDuration",
	"TemplateAdName",
	"TemplateAdUnionId",
	"TemplateElementFieldName",
	"TemplateElementFieldText",
	"TemplateElementFieldType",
	"TemplateId",
	"TemplateOriginAdId",
	"UniqueName",
	"UniversalAppAdDescriptions",
	"UniversalAppAdHeadlines",
	"UniversalAppAdHtml5MediaBundles",
	"UniversalAppAdImages",
	"UniversalAppAdMandatoryAdText",
	"UniversalAppAdYouTubeVideos",
	"Url",
	"UrlData",
	"Urls",
	"VideoTypes",
	"Width",
	"YouTubeVideoIdString",
)
