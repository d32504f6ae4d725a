package services

import (
	"context"

	"github.com/diwise/adwords/pkg/adwords"
	"github.com/diwise/adwords/pkg/adwords/fields"
	"github.com/diwise/adwords/pkg/adwords/soap"
	"github.com/diwise/adwords/pkg/adwords/types"
)

const AdGroupAdOperationType string = "AdGroupAdOperation"

type AdGroupAdService struct {
	*Service[types.AdGroupAd]
}

func NewAdGroupAdService(transport soap.Transport, options ...func(*Settings)) *AdGroupAdService {
	s := NewService[types.AdGroupAd]("AdGroupAdService", fields.AdGroupAd, "Id", transport, options...)
	s.operationType = AdGroupAdOperationType
	s.prepare = func(aga types.AdGroupAd) types.AdGroupAd {
		aga.Ad = aga.Ad.Typed()
		return aga
	}

	return &AdGroupAdService{Service: s}
}

// GetAllExpandedTextAds selects every expanded text ad, one page at a time if paging is set.
func (s *AdGroupAdService) GetAllExpandedTextAds(ctx context.Context, paging *adwords.Paging) (*adwords.Page[types.AdGroupAd], error) {
	decorators := []adwords.SelectorDecoratorFunc{
		adwords.FieldIn("AdType", string(types.ExpandedTextAdType)),
	}

	if paging != nil {
		decorators = append(decorators, adwords.WithPaging(*paging))
	}

	return s.Get(ctx, s.Selector(decorators...))
}

func (s *AdGroupAdService) GetAllMultiAssetResponsiveDisplayAds(ctx context.Context) (*adwords.Page[types.AdGroupAd], error) {
	return s.Get(ctx, s.Selector(
		adwords.FieldIn("AdType", string(types.MultiAssetResponsiveDisplayAdType)),
	))
}

func (s *AdGroupAdService) GetByAdGroupIDs(ctx context.Context, adGroupIDs ...string) (*adwords.Page[types.AdGroupAd], error) {
	return s.Get(ctx, s.Selector(adwords.FieldIn("AdGroupId", adGroupIDs...)))
}
