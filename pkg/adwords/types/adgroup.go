package types

type AdGroupStatus string

const (
	AdGroupEnabled AdGroupStatus = "ENABLED"
	AdGroupPaused  AdGroupStatus = "PAUSED"
	AdGroupRemoved AdGroupStatus = "REMOVED"
)

type AdGroup struct {
	ID                           string                        `xml:"id,omitempty" json:"id,omitempty"`
	CampaignID                   string                        `xml:"campaignId,omitempty" json:"campaignId,omitempty"`
	CampaignName                 string                        `xml:"campaignName,omitempty" json:"campaignName,omitempty"`
	Name                         string                        `xml:"name,omitempty" json:"name,omitempty"`
	Status                       AdGroupStatus                 `xml:"status,omitempty" json:"status,omitempty"`
	AdGroupType                  string                        `xml:"adGroupType,omitempty" json:"adGroupType,omitempty"`
	Labels                       []Label                       `xml:"labels,omitempty" json:"labels,omitempty"`
	BiddingStrategyConfiguration *BiddingStrategyConfiguration `xml:"biddingStrategyConfiguration,omitempty" json:"biddingStrategyConfiguration,omitempty"`
	TrackingURLTemplate          string                        `xml:"trackingUrlTemplate,omitempty" json:"trackingUrlTemplate,omitempty"`
	FinalURLSuffix               string                        `xml:"finalUrlSuffix,omitempty" json:"finalUrlSuffix,omitempty"`
}
