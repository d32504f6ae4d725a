package services

import (
	"github.com/diwise/adwords/pkg/adwords/fields"
	"github.com/diwise/adwords/pkg/adwords/soap"
	"github.com/diwise/adwords/pkg/adwords/types"
)

type CampaignService struct {
	*Service[types.Campaign]
}

func NewCampaignService(transport soap.Transport, options ...func(*Settings)) *CampaignService {
	return &CampaignService{
		Service: NewService[types.Campaign]("CampaignService", fields.Campaign, "Id", transport, options...),
	}
}
