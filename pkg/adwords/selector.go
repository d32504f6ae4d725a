package adwords

import (
	"fmt"
	"slices"

	"dario.cat/mergo"
)

type PredicateOperator string

const (
	Equals                   PredicateOperator = "EQUALS"
	NotEquals                PredicateOperator = "NOT_EQUALS"
	In                       PredicateOperator = "IN"
	NotIn                    PredicateOperator = "NOT_IN"
	GreaterThan              PredicateOperator = "GREATER_THAN"
	GreaterThanEquals        PredicateOperator = "GREATER_THAN_EQUALS"
	LessThan                 PredicateOperator = "LESS_THAN"
	LessThanEquals           PredicateOperator = "LESS_THAN_EQUALS"
	StartsWith               PredicateOperator = "STARTS_WITH"
	StartsWithIgnoreCase     PredicateOperator = "STARTS_WITH_IGNORE_CASE"
	Contains                 PredicateOperator = "CONTAINS"
	ContainsIgnoreCase       PredicateOperator = "CONTAINS_IGNORE_CASE"
	DoesNotContain           PredicateOperator = "DOES_NOT_CONTAIN"
	DoesNotContainIgnoreCase PredicateOperator = "DOES_NOT_CONTAIN_IGNORE_CASE"
	ContainsAny              PredicateOperator = "CONTAINS_ANY"
	ContainsNone             PredicateOperator = "CONTAINS_NONE"
	ContainsAll              PredicateOperator = "CONTAINS_ALL"
)

var predicateOperators = []PredicateOperator{
	Equals, NotEquals, In, NotIn,
	GreaterThan, GreaterThanEquals, LessThan, LessThanEquals,
	StartsWith, StartsWithIgnoreCase, Contains, ContainsIgnoreCase,
	DoesNotContain, DoesNotContainIgnoreCase,
	ContainsAny, ContainsNone, ContainsAll,
}

func (o PredicateOperator) IsValid() bool {
	return slices.Contains(predicateOperators, o)
}

type SortOrder string

const (
	Ascending  SortOrder = "ASCENDING"
	Descending SortOrder = "DESCENDING"
)

type Predicate struct {
	Field    string            `xml:"field" json:"field"`
	Operator PredicateOperator `xml:"operator" json:"operator"`
	Values   []string          `xml:"values" json:"values"`
}

// Validate reports a predicate with an unknown operator or without values.
// None of the operators supported by the API are unary.
func (p Predicate) Validate() error {
	if p.Field == "" {
		return fmt.Errorf("predicate is missing a field name")
	}

	if !p.Operator.IsValid() {
		return fmt.Errorf("predicate on %s has unknown operator %q", p.Field, p.Operator)
	}

	if len(p.Values) == 0 {
		return fmt.Errorf("predicate %s %s requires at least one value", p.Field, p.Operator)
	}

	return nil
}

type Paging struct {
	StartIndex    int `xml:"startIndex" json:"startIndex"`
	NumberResults int `xml:"numberResults" json:"numberResults"`
}

// DefaultPaging is used by the paged getters when the caller leaves keys unset.
var DefaultPaging = Paging{StartIndex: 0, NumberResults: 5}

// MergePaging fills the keys that are missing (zero) in paging from defaults.
func MergePaging(paging, defaults Paging) Paging {
	merged := paging
	// Merge only fails on a non-pointer or mismatched destination.
	_ = mergo.Merge(&merged, defaults)
	return merged
}

type OrderBy struct {
	Field     string    `xml:"field" json:"field"`
	SortOrder SortOrder `xml:"sortOrder" json:"sortOrder"`
}

// DateRange bounds are formatted as YYYYMMDD
type DateRange struct {
	Min string `xml:"min" json:"min"`
	Max string `xml:"max" json:"max"`
}

type Selector struct {
	Fields     []string    `xml:"fields" json:"fields"`
	Predicates []Predicate `xml:"predicates,omitempty" json:"predicates,omitempty"`
	DateRange  *DateRange  `xml:"dateRange,omitempty" json:"dateRange,omitempty"`
	Ordering   []OrderBy   `xml:"ordering,omitempty" json:"ordering,omitempty"`
	Paging     *Paging     `xml:"paging,omitempty" json:"paging,omitempty"`
}

type SelectorDecoratorFunc func(*Selector)

// NewSelector builds a selector for the given fields. The field slice is copied so that
// a vocabulary shared between calls is never aliased by a selector.
func NewSelector(fields []string, decorators ...SelectorDecoratorFunc) Selector {
	s := Selector{
		Fields: slices.Clone(fields),
	}

	for _, decorate := range decorators {
		decorate(&s)
	}

	return s
}

func Where(field string, operator PredicateOperator, values ...string) SelectorDecoratorFunc {
	return func(s *Selector) {
		s.Predicates = append(s.Predicates, Predicate{
			Field:    field,
			Operator: operator,
			Values:   slices.Clone(values),
		})
	}
}

func FieldEquals(field, value string) SelectorDecoratorFunc {
	return Where(field, Equals, value)
}

func FieldIn(field string, values ...string) SelectorDecoratorFunc {
	return Where(field, In, values...)
}

func FieldNotIn(field string, values ...string) SelectorDecoratorFunc {
	return Where(field, NotIn, values...)
}

func WithPaging(paging Paging) SelectorDecoratorFunc {
	return func(s *Selector) {
		p := paging
		s.Paging = &p
	}
}

func OrderedBy(field string, order SortOrder) SelectorDecoratorFunc {
	return func(s *Selector) {
		s.Ordering = append(s.Ordering, OrderBy{Field: field, SortOrder: order})
	}
}

func During(min, max string) SelectorDecoratorFunc {
	return func(s *Selector) {
		s.DateRange = &DateRange{Min: min, Max: max}
	}
}

// Validate checks that every field, predicate field and ordering field is part of
// the allowed vocabulary and that every predicate is well formed.
func (s Selector) Validate(allowed func(string) bool) error {
	if len(s.Fields) == 0 {
		return fmt.Errorf("selector has no fields")
	}

	for _, f := range s.Fields {
		if !allowed(f) {
			return fmt.Errorf("field %q is not selectable", f)
		}
	}

	for _, p := range s.Predicates {
		if err := p.Validate(); err != nil {
			return err
		}
		if !allowed(p.Field) {
			return fmt.Errorf("predicate field %q is not selectable", p.Field)
		}
	}

	for _, o := range s.Ordering {
		if !allowed(o.Field) {
			return fmt.Errorf("ordering field %q is not selectable", o.Field)
		}
	}

	return nil
}
