package services

import (
	"github.com/diwise/adwords/pkg/adwords/fields"
	"github.com/diwise/adwords/pkg/adwords/soap"
	"github.com/diwise/adwords/pkg/adwords/types"
)

type LabelService struct {
	*Service[types.Label]
}

func NewLabelService(transport soap.Transport, options ...func(*Settings)) *LabelService {
	s := NewService[types.Label]("LabelService", fields.Label, "LabelId", transport, options...)
	s.prepare = func(l types.Label) types.Label {
		if l.XsiType == "" {
			l.XsiType = types.TextLabel
		}
		return l
	}

	return &LabelService{Service: s}
}
