package services

import (
	"context"

	"github.com/diwise/adwords/pkg/adwords"
	"github.com/diwise/adwords/pkg/adwords/fields"
	"github.com/diwise/adwords/pkg/adwords/soap"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

type Settings struct {
	strict bool
}

// StrictFields makes a service reject selectors that reference fields outside of its
// vocabulary before anything is sent. Without it the remote service is left to reject them.
func StrictFields() func(*Settings) {
	return func(s *Settings) {
		s.strict = true
	}
}

// Service binds a field vocabulary and an id field to selector and operation
// construction for one entity type, and hands execution over to a transport.
//
// Transport errors are returned unchanged, partial failures are left in the
// returned ReturnValue.
type Service[T any] struct {
	name          string
	vocabulary    fields.Vocabulary
	idField       string
	operationType string
	prepare       func(T) T
	transport     soap.Transport
	settings      Settings
}

func NewService[T any](name string, vocabulary fields.Vocabulary, idField string, transport soap.Transport, options ...func(*Settings)) *Service[T] {
	s := &Service[T]{
		name:       name,
		vocabulary: vocabulary,
		idField:    idField,
		transport:  transport,
	}

	for _, option := range options {
		option(&s.settings)
	}

	return s
}

func (s *Service[T]) Name() string {
	return s.name
}

func (s *Service[T]) Vocabulary() fields.Vocabulary {
	return s.vocabulary
}

// Selector creates a selector over every field in the vocabulary.
func (s *Service[T]) Selector(decorators ...adwords.SelectorDecoratorFunc) adwords.Selector {
	return adwords.NewSelector(s.vocabulary.Fields(), decorators...)
}

func (s *Service[T]) Get(ctx context.Context, selector adwords.Selector) (*adwords.Page[T], error) {
	if s.settings.strict {
		if err := s.vocabulary.Validate(selector); err != nil {
			return nil, err
		}
	}

	page := &adwords.Page[T]{}

	err := s.transport.Get(ctx, selector, page)
	if err != nil {
		log := logging.GetFromContext(ctx)
		log.Error("get failed", "service", s.name, "err", err.Error())
		return nil, err
	}

	return page, nil
}

func (s *Service[T]) GetAll(ctx context.Context) (*adwords.Page[T], error) {
	return s.Get(ctx, s.Selector())
}

// GetByPage fills in whatever is missing from paging with adwords.DefaultPaging.
func (s *Service[T]) GetByPage(ctx context.Context, paging adwords.Paging) (*adwords.Page[T], error) {
	return s.Get(ctx, s.Selector(
		adwords.WithPaging(adwords.MergePaging(paging, adwords.DefaultPaging)),
	))
}

func (s *Service[T]) GetByID(ctx context.Context, id string) (*adwords.Page[T], error) {
	return s.Get(ctx, s.Selector(adwords.FieldEquals(s.idField, id)))
}

func (s *Service[T]) GetByIDs(ctx context.Context, ids ...string) (*adwords.Page[T], error) {
	return s.Get(ctx, s.Selector(adwords.FieldIn(s.idField, ids...)))
}

// Mutate submits all operations in a single request.
func (s *Service[T]) Mutate(ctx context.Context, operations []adwords.Operation[T]) (*adwords.ReturnValue[T], error) {
	rval := &adwords.ReturnValue[T]{}

	err := s.transport.Mutate(ctx, operations, s.operationType, rval)
	if err != nil {
		log := logging.GetFromContext(ctx)
		log.Error("mutate failed", "service", s.name, "operations", len(operations), "err", err.Error())
		return nil, err
	}

	if rval.HasPartialFailures() {
		log := logging.GetFromContext(ctx)
		log.Warn("mutate completed with partial failures", "service", s.name, "failures", len(rval.PartialFailureErrors))
	}

	return rval, nil
}

func (s *Service[T]) Add(ctx context.Context, entities ...T) (*adwords.ReturnValue[T], error) {
	return s.Mutate(ctx, adwords.BuildAddOperations(s.prepareAll(entities)...))
}

func (s *Service[T]) Update(ctx context.Context, entities ...T) (*adwords.ReturnValue[T], error) {
	return s.Mutate(ctx, adwords.BuildSetOperations(s.prepareAll(entities)...))
}

func (s *Service[T]) Remove(ctx context.Context, entities ...T) (*adwords.ReturnValue[T], error) {
	return s.Mutate(ctx, adwords.BuildRemoveOperations(entities...))
}

func (s *Service[T]) prepareAll(entities []T) []T {
	if s.prepare == nil {
		return entities
	}

	prepared := make([]T, 0, len(entities))
	for _, e := range entities {
		prepared = append(prepared, s.prepare(e))
	}

	return prepared
}

// ForEach pages through every entity matching the selector, one request per page,
// and calls callback for each of them. Iteration stops at the first callback error.
func ForEach[T any](ctx context.Context, s *Service[T], selector adwords.Selector, pageSize int, callback func(T) error) (count int, err error) {
	if pageSize <= 0 {
		pageSize = adwords.DefaultPaging.NumberResults
	}

	startIndex := 0

	for {
		selector.Paging = &adwords.Paging{StartIndex: startIndex, NumberResults: pageSize}

		var page *adwords.Page[T]
		page, err = s.Get(ctx, selector)
		if err != nil {
			return
		}

		for _, e := range page.Entries {
			count++
			if err = callback(e); err != nil {
				return
			}
		}

		batchSize := page.Len()
		startIndex += pageSize

		if batchSize < pageSize || startIndex >= page.TotalNumEntries {
			break
		}
	}

	return
}
