package report

import (
	"encoding/json"
	"errors"
	"testing"

	adwerrors "github.com/diwise/adwords/pkg/adwords/errors"
	"github.com/matryer/is"
)

func TestParseReport(t *testing.T) {
	is := is.New(t)

	r, err := Parse([]byte(campaignReport))
	is.NoErr(err)

	is.Equal(r.ReportName, []Attributes{{"name": "Campaign Performance Report"}})
	is.Equal(r.DataRange, []Attributes{{"date": "All Time"}})

	table := r.Table[0]
	is.Equal(table.Columns[0], Column{Name: "campaignID", Display: "Campaign ID"})
	is.Equal(table.ColumnNames(), []string{"campaignID", "campaign", "clicks"})
	is.Equal(table.Rows[1]["campaign"], "Lunar Getaway")
}

func TestParseSingleRowTable(t *testing.T) {
	is := is.New(t)

	r, err := Parse([]byte(`<report><table><row campaignID='1' clicks='2'/></table></report>`))
	is.NoErr(err)

	is.Equal(len(r.Table[0].Rows), 1)
	is.Equal(r.Table[0].Columns, []Column{})
	is.Equal(r.Table[0].ColumnNames(), []string{"campaignID", "clicks"})
}

func TestParseMissingPartsAreEmpty(t *testing.T) {
	is := is.New(t)

	r, err := Parse([]byte(`<something/>`))
	is.NoErr(err)

	b, err := json.Marshal(r)
	is.NoErr(err)
	is.Equal(string(b), `{"report-name":[],"data-range":[],"table":[]}`)
}

func TestParseInvalidXML(t *testing.T) {
	is := is.New(t)

	_, err := Parse([]byte(`campaign,clicks`))
	is.True(errors.Is(err, adwerrors.ErrBadResponse))
}
