package types

type CampaignStatus string

const (
	CampaignEnabled CampaignStatus = "ENABLED"
	CampaignPaused  CampaignStatus = "PAUSED"
	CampaignRemoved CampaignStatus = "REMOVED"
)

type AdvertisingChannelType string

const (
	ChannelSearch  AdvertisingChannelType = "SEARCH"
	ChannelDisplay AdvertisingChannelType = "DISPLAY"
	ChannelVideo   AdvertisingChannelType = "VIDEO"
)

type Bids struct {
	XsiType  string `xml:"xsi:type,attr,omitempty" json:"-"`
	Bid      *Money `xml:"bid,omitempty" json:"bid,omitempty"`
	BidsType string `xml:"Bids.Type,omitempty" json:"type,omitempty"`
}

func NewCpcBid(amount float64) Bids {
	return Bids{XsiType: "CpcBid", Bid: NewMoney(amount)}
}

type BiddingStrategyConfiguration struct {
	BiddingStrategyID   string `xml:"biddingStrategyId,omitempty" json:"biddingStrategyId,omitempty"`
	BiddingStrategyName string `xml:"biddingStrategyName,omitempty" json:"biddingStrategyName,omitempty"`
	BiddingStrategyType string `xml:"biddingStrategyType,omitempty" json:"biddingStrategyType,omitempty"`
	Bids                []Bids `xml:"bids,omitempty" json:"bids,omitempty"`
}

type Campaign struct {
	ID                           string                        `xml:"id,omitempty" json:"id,omitempty"`
	Name                         string                        `xml:"name,omitempty" json:"name,omitempty"`
	Status                       CampaignStatus                `xml:"status,omitempty" json:"status,omitempty"`
	ServingStatus                string                        `xml:"servingStatus,omitempty" json:"servingStatus,omitempty"`
	StartDate                    string                        `xml:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate                      string                        `xml:"endDate,omitempty" json:"endDate,omitempty"`
	Budget                       *Budget                       `xml:"budget,omitempty" json:"budget,omitempty"`
	AdvertisingChannelType       AdvertisingChannelType        `xml:"advertisingChannelType,omitempty" json:"advertisingChannelType,omitempty"`
	BiddingStrategyConfiguration *BiddingStrategyConfiguration `xml:"biddingStrategyConfiguration,omitempty" json:"biddingStrategyConfiguration,omitempty"`
	Labels                       []Label                       `xml:"labels,omitempty" json:"labels,omitempty"`
	TrackingURLTemplate          string                        `xml:"trackingUrlTemplate,omitempty" json:"trackingUrlTemplate,omitempty"`
	FinalURLSuffix               string                        `xml:"finalUrlSuffix,omitempty" json:"finalUrlSuffix,omitempty"`
}
