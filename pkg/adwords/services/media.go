package services

import (
	"context"
	"fmt"

	"github.com/diwise/adwords/pkg/adwords/errors"
	"github.com/diwise/adwords/pkg/adwords/fields"
	"github.com/diwise/adwords/pkg/adwords/soap"
	"github.com/diwise/adwords/pkg/adwords/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

type MediaService struct {
	*Service[types.Media]
}

func NewMediaService(transport soap.Transport, options ...func(*Settings)) *MediaService {
	s := NewService[types.Media]("MediaService", fields.Media, "MediaId", transport, options...)
	s.prepare = func(m types.Media) types.Media {
		return m.Typed()
	}

	return &MediaService{Service: s}
}

func (s *MediaService) Base64Encode(file []byte) string {
	return types.Base64Encode(file)
}

// Upload uploads all media in one request and returns them as stored, with ids assigned.
func (s *MediaService) Upload(ctx context.Context, media ...types.Media) ([]types.Media, error) {
	uploader, ok := s.transport.(soap.Uploader)
	if !ok {
		return nil, fmt.Errorf("%s transport does not support uploads (%w)", s.name, errors.ErrUnsupported)
	}

	uploaded := []types.Media{}

	err := uploader.Upload(ctx, s.prepareAll(media), &uploaded)
	if err != nil {
		log := logging.GetFromContext(ctx)
		log.Error("upload failed", "service", s.name, "media", len(media), "err", err.Error())
		return nil, err
	}

	return uploaded, nil
}
