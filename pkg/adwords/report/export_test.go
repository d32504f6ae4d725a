package report

import (
	"bytes"
	"testing"

	"github.com/matryer/is"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	is := is.New(t)

	r, err := Parse([]byte(campaignReport))
	is.NoErr(err)

	buf := &bytes.Buffer{}
	is.NoErr(WriteXLSX(buf, r))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	is.NoErr(err)
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	is.Equal(sheets, []string{"Campaign Performance Report"})

	rows, err := f.GetRows(sheets[0])
	is.NoErr(err)

	is.Equal(len(rows), 3)
	is.Equal(rows[0], []string{"Campaign ID", "Campaign", "Clicks"})
	is.Equal(rows[2], []string{"1532562170", "Lunar Getaway", "7"})
}

func TestWriteXLSXWithoutTables(t *testing.T) {
	is := is.New(t)

	buf := &bytes.Buffer{}
	is.NoErr(WriteXLSX(buf, &Report{}))
	is.True(buf.Len() > 0)
}
