// Package fields holds the selectable field vocabularies of the AdWords services.
//
// See https://developers.google.com/adwords/api/docs/appendix/selectorfields
package fields

import (
	"fmt"
	"slices"

	"github.com/diwise/adwords/pkg/adwords"
	"github.com/diwise/adwords/pkg/adwords/errors"
)

// Vocabulary is an ordered set of selectable field names for one entity.
type Vocabulary struct {
	entity string
	fields []string
}

func NewVocabulary(entity string, fields ...string) Vocabulary {
	return Vocabulary{
		entity: entity,
		fields: slices.Clone(fields),
	}
}

func (v Vocabulary) Entity() string {
	return v.entity
}

// Fields returns a copy of the vocabulary in declaration order.
func (v Vocabulary) Fields() []string {
	return slices.Clone(v.fields)
}

func (v Vocabulary) Contains(field string) bool {
	return slices.Contains(v.fields, field)
}

func (v Vocabulary) Validate(s adwords.Selector) error {
	if err := s.Validate(v.Contains); err != nil {
		return errors.NewUnknownFieldError(fmt.Sprintf("%s: %s", v.entity, err.Error()))
	}
	return nil
}
