package types

type AdType string

const (
	ExpandedTextAdType                AdType = "EXPANDED_TEXT_AD"
	ResponsiveDisplayAdType           AdType = "RESPONSIVE_DISPLAY_AD"
	MultiAssetResponsiveDisplayAdType AdType = "MULTI_ASSET_RESPONSIVE_DISPLAY_AD"
	ResponsiveSearchAdType            AdType = "RESPONSIVE_SEARCH_AD"
	ImageAdType                       AdType = "IMAGE_AD"
	CallOnlyAdType                    AdType = "CALL_ONLY_AD"
)

var xsiTypeNames = map[AdType]string{
	ExpandedTextAdType:                "ExpandedTextAd",
	ResponsiveDisplayAdType:           "ResponsiveDisplayAd",
	MultiAssetResponsiveDisplayAdType: "MultiAssetResponsiveDisplayAd",
	ResponsiveSearchAdType:            "ResponsiveSearchAd",
	ImageAdType:                       "ImageAd",
	CallOnlyAdType:                    "CallOnlyAd",
}

// XsiType returns the concrete SOAP type for an ad type, or an empty string for
// ad types that can not be created through the api.
func (t AdType) XsiType() string {
	return xsiTypeNames[t]
}

type AdGroupAdStatus string

const (
	AdEnabled  AdGroupAdStatus = "ENABLED"
	AdPaused   AdGroupAdStatus = "PAUSED"
	AdDisabled AdGroupAdStatus = "DISABLED"
)

type DynamicSettings struct {
	LandscapeLogoImage *Media `xml:"landscapeLogoImage,omitempty" json:"landscapeLogoImage,omitempty"`
	MainColor          string `xml:"mainColor,omitempty" json:"mainColor,omitempty"`
	AccentColor        string `xml:"accentColor,omitempty" json:"accentColor,omitempty"`
	AllowFlexibleColor *bool  `xml:"allowFlexibleColor,omitempty" json:"allowFlexibleColor,omitempty"`
	PricePrefix        string `xml:"pricePrefix,omitempty" json:"pricePrefix,omitempty"`
	PromoText          string `xml:"promoText,omitempty" json:"promoText,omitempty"`
}

type AssetLink struct {
	Asset struct {
		AssetID   string `xml:"assetId,omitempty" json:"assetId,omitempty"`
		AssetText string `xml:"assetText,omitempty" json:"assetText,omitempty"`
	} `xml:"asset" json:"asset"`
}

// Ad is a tagged variant. Type selects the concrete ad and thereby which of the
// variant specific fields are meaningful.
type Ad struct {
	XsiType             string            `xml:"xsi:type,attr,omitempty" json:"-"`
	ID                  string            `xml:"id,omitempty" json:"id,omitempty"`
	URL                 string            `xml:"url,omitempty" json:"url,omitempty"`
	DisplayURL          string            `xml:"displayUrl,omitempty" json:"displayUrl,omitempty"`
	FinalURLs           []string          `xml:"finalUrls,omitempty" json:"finalUrls,omitempty"`
	FinalMobileURLs     []string          `xml:"finalMobileUrls,omitempty" json:"finalMobileUrls,omitempty"`
	TrackingURLTemplate string            `xml:"trackingUrlTemplate,omitempty" json:"trackingUrlTemplate,omitempty"`
	FinalURLSuffix      string            `xml:"finalUrlSuffix,omitempty" json:"finalUrlSuffix,omitempty"`
	URLCustomParameters *CustomParameters `xml:"urlCustomParameters,omitempty" json:"urlCustomParameters,omitempty"`
	Type                AdType            `xml:"type,omitempty" json:"type,omitempty"`
	DevicePreference    string            `xml:"devicePreference,omitempty" json:"devicePreference,omitempty"`

	// ExpandedTextAd
	HeadlinePart1 string `xml:"headlinePart1,omitempty" json:"headlinePart1,omitempty"`
	HeadlinePart2 string `xml:"headlinePart2,omitempty" json:"headlinePart2,omitempty"`
	HeadlinePart3 string `xml:"headlinePart3,omitempty" json:"headlinePart3,omitempty"`
	Description   string `xml:"description,omitempty" json:"description,omitempty"`
	Description2  string `xml:"description2,omitempty" json:"description2,omitempty"`
	Path1         string `xml:"path1,omitempty" json:"path1,omitempty"`
	Path2         string `xml:"path2,omitempty" json:"path2,omitempty"`

	// ResponsiveDisplayAd
	MarketingImage           *Media           `xml:"marketingImage,omitempty" json:"marketingImage,omitempty"`
	LogoImage                *Media           `xml:"logoImage,omitempty" json:"logoImage,omitempty"`
	ShortHeadline            string           `xml:"shortHeadline,omitempty" json:"shortHeadline,omitempty"`
	LongHeadline             string           `xml:"longHeadline,omitempty" json:"longHeadline,omitempty"`
	BusinessName             string           `xml:"businessName,omitempty" json:"businessName,omitempty"`
	DynamicDisplayAdSettings *DynamicSettings `xml:"dynamicDisplayAdSettings,omitempty" json:"dynamicDisplayAdSettings,omitempty"`

	// MultiAssetResponsiveDisplayAd and ResponsiveSearchAd
	Headlines    []AssetLink `xml:"headlines,omitempty" json:"headlines,omitempty"`
	Descriptions []AssetLink `xml:"descriptions,omitempty" json:"descriptions,omitempty"`

	AdTypeName string `xml:"Ad.Type,omitempty" json:"adType,omitempty"`
}

func NewExpandedTextAd(headline1, headline2, description string, finalURLs ...string) Ad {
	return Ad{
		Type:          ExpandedTextAdType,
		HeadlinePart1: headline1,
		HeadlinePart2: headline2,
		Description:   description,
		FinalURLs:     finalURLs,
	}
}

func NewResponsiveDisplayAd(shortHeadline, longHeadline, description, businessName string, marketingImage, logoImage *Media, finalURLs ...string) Ad {
	return Ad{
		Type:           ResponsiveDisplayAdType,
		ShortHeadline:  shortHeadline,
		LongHeadline:   longHeadline,
		Description:    description,
		BusinessName:   businessName,
		MarketingImage: marketingImage,
		LogoImage:      logoImage,
		FinalURLs:      finalURLs,
	}
}

// Typed returns a copy of the ad with its xsi:type derived from the Type discriminator.
func (a Ad) Typed() Ad {
	if xsiType := a.Type.XsiType(); xsiType != "" {
		a.XsiType = xsiType
	}
	return a
}

type AdGroupAd struct {
	AdGroupID      string          `xml:"adGroupId,omitempty" json:"adGroupId,omitempty"`
	Ad             Ad              `xml:"ad" json:"ad"`
	Status         AdGroupAdStatus `xml:"status,omitempty" json:"status,omitempty"`
	Labels         []Label         `xml:"labels,omitempty" json:"labels,omitempty"`
	BaseCampaignID string          `xml:"baseCampaignId,omitempty" json:"baseCampaignId,omitempty"`
	BaseAdGroupID  string          `xml:"baseAdGroupId,omitempty" json:"baseAdGroupId,omitempty"`
}
