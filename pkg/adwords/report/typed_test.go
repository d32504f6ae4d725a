package report

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diwise/adwords/pkg/adwords"
	adwerrors "github.com/diwise/adwords/pkg/adwords/errors"
	"github.com/diwise/adwords/pkg/adwords/fields"
	"github.com/matryer/is"
)

func TestTypedReportDefaults(t *testing.T) {
	is := is.New(t)

	r := NewCampaignPerformanceReport(NewService())

	def, err := r.Definition(Definition{})
	is.NoErr(err)

	is.Equal(def.ReportType, CampaignPerformanceReport)
	is.Equal(def.DateRangeType, AllTime)
	is.Equal(def.DownloadFormat, XML)
	is.Equal(def.Selector.Fields, fields.CampaignPerformanceReport)
}

func TestTypedReportKeepsCallerValues(t *testing.T) {
	is := is.New(t)

	r := NewAdGroupPerformanceReport(NewService())

	def, err := r.Definition(Definition{
		Selector:      adwords.NewSelector([]string{"AdGroupId"}, adwords.FieldIn("CampaignId", "1")),
		DateRangeType: Yesterday,
	})
	is.NoErr(err)

	is.Equal(def.Selector.Fields, []string{"AdGroupId"})
	is.Equal(len(def.Selector.Predicates), 1)
	is.Equal(def.DateRangeType, Yesterday)
	is.Equal(def.ReportType, AdGroupPerformanceReport)
}

func TestTypedReportOptions(t *testing.T) {
	is := is.New(t)

	var skipColumnHeader string

	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		skipColumnHeader = r.Header.Get("skipColumnHeader")
		w.Write([]byte(campaignReport))
	}))
	defer s.Close()

	r := NewBudgetPerformanceReport(NewService(Endpoint(s.URL)))
	is.Equal(r.Options(), DefaultDownloadOptions)

	r.SetOptions(AsJSON(), SkipColumnHeader(false))
	is.True(r.Options().JSON)

	result, err := r.Get(context.Background(), Definition{})
	is.NoErr(err)

	is.Equal(skipColumnHeader, "false")
	is.True(result.Report != nil)
}

func TestForTypeRejectsUnknownReports(t *testing.T) {
	is := is.New(t)

	_, err := ForType(NewService(), LabelReport)
	is.True(errors.Is(err, adwerrors.ErrUnsupported))

	r, err := ForType(NewService(), AdPerformanceReport)
	is.NoErr(err)
	is.Equal(r.Type(), AdPerformanceReport)
}
