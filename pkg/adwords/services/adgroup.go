package services

import (
	"context"

	"github.com/diwise/adwords/pkg/adwords"
	"github.com/diwise/adwords/pkg/adwords/fields"
	"github.com/diwise/adwords/pkg/adwords/soap"
	"github.com/diwise/adwords/pkg/adwords/types"
)

type AdGroupService struct {
	*Service[types.AdGroup]
}

func NewAdGroupService(transport soap.Transport, options ...func(*Settings)) *AdGroupService {
	return &AdGroupService{
		Service: NewService[types.AdGroup]("AdGroupService", fields.AdGroup, "Id", transport, options...),
	}
}

func (s *AdGroupService) GetByCampaignIDs(ctx context.Context, campaignIDs ...string) (*adwords.Page[types.AdGroup], error) {
	return s.Get(ctx, s.Selector(adwords.FieldIn("CampaignId", campaignIDs...)))
}
