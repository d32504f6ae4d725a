package adwords

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

type Page[T any] struct {
	TotalNumEntries int    `xml:"totalNumEntries" json:"totalNumEntries"`
	PageType        string `xml:"Page.Type,omitempty" json:"pageType,omitempty"`
	Entries         []T    `xml:"entries" json:"entries"`
}

func (p *Page[T]) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Entries)
}

type ReturnValue[T any] struct {
	ListReturnValueType  string     `xml:"ListReturnValue.Type,omitempty" json:"listReturnValueType,omitempty"`
	Value                []T        `xml:"value" json:"value"`
	PartialFailureErrors []ApiError `xml:"partialFailureErrors,omitempty" json:"partialFailureErrors,omitempty"`
}

func (rv *ReturnValue[T]) HasPartialFailures() bool {
	return rv != nil && len(rv.PartialFailureErrors) > 0
}

// Err aggregates any partial failures into a single error. Partial failures are never
// returned as errors by the services themselves, this is for callers that want one.
func (rv *ReturnValue[T]) Err() error {
	if !rv.HasPartialFailures() {
		return nil
	}

	var result *multierror.Error
	for _, e := range rv.PartialFailureErrors {
		result = multierror.Append(result, e)
	}

	return result.ErrorOrNil()
}

type ApiError struct {
	Type        string `xml:"ApiError.Type" json:"type"`
	FieldPath   string `xml:"fieldPath" json:"fieldPath"`
	Trigger     string `xml:"trigger" json:"trigger"`
	ErrorString string `xml:"errorString" json:"errorString"`
	Reason      string `xml:"reason" json:"reason"`
}

func (e ApiError) Error() string {
	if e.FieldPath == "" {
		return fmt.Sprintf("%s (trigger: %q)", e.ErrorString, e.Trigger)
	}
	return fmt.Sprintf("%s @ %s (trigger: %q)", e.ErrorString, e.FieldPath, e.Trigger)
}
