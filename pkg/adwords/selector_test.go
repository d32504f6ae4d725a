package adwords

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestMergePagingOnlyFillsMissingKeys(t *testing.T) {
	is := is.New(t)

	merged := MergePaging(Paging{StartIndex: 10}, DefaultPaging)

	is.Equal(merged, Paging{StartIndex: 10, NumberResults: 5})
}

func TestMergePagingKeepsCallerValues(t *testing.T) {
	is := is.New(t)

	merged := MergePaging(Paging{StartIndex: 20, NumberResults: 100}, DefaultPaging)

	is.Equal(merged, Paging{StartIndex: 20, NumberResults: 100})
}

func TestMergePagingWithEmptyPagingReturnsDefaults(t *testing.T) {
	is := is.New(t)
	is.Equal(MergePaging(Paging{}, DefaultPaging), DefaultPaging)
}

func TestInPredicateCarriesValuesInOrder(t *testing.T) {
	is := is.New(t)

	values := []string{"3", "1", "2"}
	s := NewSelector([]string{"BudgetId"}, FieldIn("BudgetId", values...))

	is.Equal(len(s.Predicates), 1)
	is.Equal(s.Predicates[0].Operator, In)
	is.Equal(s.Predicates[0].Values, []string{"3", "1", "2"})

	values[0] = "changed"
	is.Equal(s.Predicates[0].Values[0], "3") // selector must not alias caller values
}

func TestNewSelectorCopiesFields(t *testing.T) {
	is := is.New(t)

	vocabulary := []string{"Id", "Name"}
	s := NewSelector(vocabulary)
	s.Fields[0] = "Other"

	is.Equal(vocabulary[0], "Id")
}

func TestSelectorDecorators(t *testing.T) {
	is := is.New(t)

	s := NewSelector(
		[]string{"Id", "Name"},
		FieldEquals("Id", "1"),
		FieldNotIn("Name", "a", "b"),
		OrderedBy("Name", Descending),
		WithPaging(Paging{StartIndex: 5, NumberResults: 10}),
		During("20240101", "20240131"),
	)

	is.Equal(len(s.Predicates), 2)
	is.Equal(s.Predicates[0], Predicate{Field: "Id", Operator: Equals, Values: []string{"1"}})
	is.Equal(s.Predicates[1].Operator, NotIn)
	is.Equal(s.Ordering, []OrderBy{{Field: "Name", SortOrder: Descending}})
	is.Equal(*s.Paging, Paging{StartIndex: 5, NumberResults: 10})
	is.Equal(*s.DateRange, DateRange{Min: "20240101", Max: "20240131"})
}

func TestPredicateWithoutValuesIsInvalid(t *testing.T) {
	is := is.New(t)

	err := Predicate{Field: "Id", Operator: In}.Validate()
	is.True(err != nil)
}

func TestPredicateWithUnknownOperatorIsInvalid(t *testing.T) {
	is := is.New(t)

	err := Predicate{Field: "Id", Operator: "LIKE", Values: []string{"x"}}.Validate()
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "unknown operator"))
}

func TestSelectorValidate(t *testing.T) {
	is := is.New(t)

	allowed := func(f string) bool { return f == "Id" || f == "Name" }

	is.NoErr(NewSelector([]string{"Id"}, FieldEquals("Name", "x")).Validate(allowed))
	is.True(NewSelector([]string{"Id", "Bogus"}).Validate(allowed) != nil)
	is.True(NewSelector(nil).Validate(allowed) != nil)
	is.True(NewSelector([]string{"Id"}, FieldEquals("Bogus", "1")).Validate(allowed) != nil)
	is.True(NewSelector([]string{"Id"}, OrderedBy("Bogus", Ascending)).Validate(allowed) != nil)
}

func TestReturnValueErrAggregatesPartialFailures(t *testing.T) {
	is := is.New(t)

	first := ApiError{ErrorString: "RequiredError.REQUIRED", FieldPath: "operations[0].operand.name"}
	rv := &ReturnValue[string]{
		Value: []string{"ok"},
		PartialFailureErrors: []ApiError{
			first,
			{ErrorString: "EntityNotFound.INVALID_ID"},
		},
	}

	is.True(rv.HasPartialFailures())

	err := rv.Err()
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "RequiredError.REQUIRED"))
	is.True(strings.Contains(err.Error(), "EntityNotFound.INVALID_ID"))

	var apiErr ApiError
	is.True(errors.As(err, &apiErr))
	is.Equal(apiErr, first)
}

func TestReturnValueWithoutFailuresHasNoError(t *testing.T) {
	is := is.New(t)

	rv := &ReturnValue[string]{Value: []string{"ok"}}
	is.NoErr(rv.Err())
	is.True(!rv.HasPartialFailures())
}
