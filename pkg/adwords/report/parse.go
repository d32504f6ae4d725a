package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/clbanning/mxj/v2"
	"github.com/diwise/adwords/pkg/adwords/errors"
)

// Attributes holds the attributes of a single report element, e.g. one row.
type Attributes map[string]string

type Column struct {
	Name    string `json:"name"`
	Display string `json:"display"`
}

type Table struct {
	Columns []Column     `json:"columns"`
	Rows    []Attributes `json:"rows"`
}

// Report is the parsed form of an XML report. Every part is a list, empty when the
// corresponding element is missing from the downloaded report.
type Report struct {
	ReportName []Attributes `json:"report-name"`
	DataRange  []Attributes `json:"data-range"`
	Table      []Table      `json:"table"`
}

func (r *Report) Name() string {
	if r == nil || len(r.ReportName) == 0 {
		return ""
	}
	return r.ReportName[0]["name"]
}

// Parse parses an XML report into a Report.
func Parse(body []byte) (*Report, error) {
	r := &Report{
		ReportName: []Attributes{},
		DataRange:  []Attributes{},
		Table:      []Table{},
	}

	m, err := mxj.NewMapXml(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report: %s (%w)", err.Error(), errors.ErrBadResponse)
	}

	values, _ := m.ValuesForPath("report.report-name")
	for _, v := range values {
		r.ReportName = append(r.ReportName, attributesOf(v))
	}

	values, _ = m.ValuesForPath("report.date-range")
	for _, v := range values {
		r.DataRange = append(r.DataRange, attributesOf(v))
	}

	values, _ = m.ValuesForPath("report.table")
	for _, v := range values {
		r.Table = append(r.Table, tableOf(v))
	}

	return r, nil
}

func tableOf(v any) Table {
	t := Table{
		Columns: []Column{},
		Rows:    []Attributes{},
	}

	tm, ok := v.(map[string]any)
	if !ok {
		return t
	}

	if columns, ok := tm["columns"].(map[string]any); ok {
		for _, c := range listOf(columns["column"]) {
			attrs := attributesOf(c)
			t.Columns = append(t.Columns, Column{Name: attrs["name"], Display: attrs["display"]})
		}
	}

	for _, row := range listOf(tm["row"]) {
		t.Rows = append(t.Rows, attributesOf(row))
	}

	return t
}

// ColumnNames returns the column names in report order. Tables downloaded without
// column headers fall back on the sorted attribute names of the first row.
func (t Table) ColumnNames() []string {
	names := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		names = append(names, c.Name)
	}

	if len(names) == 0 && len(t.Rows) > 0 {
		for k := range t.Rows[0] {
			names = append(names, k)
		}
		sort.Strings(names)
	}

	return names
}

// listOf evens out mxj's representation of repeated elements, which is a single
// value for one occurrence and a list for several.
func listOf(v any) []any {
	switch l := v.(type) {
	case nil:
		return []any{}
	case []any:
		return l
	default:
		return []any{l}
	}
}

func attributesOf(v any) Attributes {
	attrs := Attributes{}

	m, ok := v.(map[string]any)
	if !ok {
		return attrs
	}

	for k, val := range m {
		if !strings.HasPrefix(k, "-") {
			continue
		}
		attrs[strings.TrimPrefix(k, "-")] = fmt.Sprint(val)
	}

	return attrs
}
