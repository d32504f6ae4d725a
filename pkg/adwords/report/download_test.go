package report

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/diwise/adwords/pkg/adwords"
	adwerrors "github.com/diwise/adwords/pkg/adwords/errors"
	testutils "github.com/diwise/service-chassis/pkg/test/http"
	"github.com/diwise/service-chassis/pkg/test/http/expects"
	"github.com/diwise/service-chassis/pkg/test/http/response"
	"github.com/matryer/is"
)

var Expects = testutils.Expects
var Returns = testutils.Returns
var anyInput = expects.AnyInput
var method = expects.RequestMethod
var bodyContaining = expects.RequestBodyContaining

func TestDownloadSendsDefaultHeadersAndForm(t *testing.T) {
	is := is.New(t)

	var headers http.Header
	var rdxml string

	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers = r.Header.Clone()
		rdxml = r.FormValue(FormField)
		w.Header().Set("Content-Type", "text/xml")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(campaignReport))
	}))
	defer s.Close()

	svc := NewService(Endpoint(s.URL), ClientCustomerID("123-456-7890"), DeveloperToken("token"))

	result, err := svc.ReportDownload(context.Background(), Definition{
		Selector:   adwords.NewSelector([]string{"CampaignId"}),
		ReportType: CampaignPerformanceReport,
	})
	is.NoErr(err)

	is.Equal(headers.Get("skipReportHeader"), "false")
	is.Equal(headers.Get("skipColumnHeader"), "true")
	is.Equal(headers.Get("skipReportSummary"), "true")
	is.Equal(headers.Get("useRawEnumValues"), "false")
	is.Equal(headers.Get("includeZeroImpressions"), "false")
	is.Equal(headers.Get("clientCustomerId"), "123-456-7890")
	is.Equal(headers.Get("developerToken"), "token")
	is.True(strings.HasPrefix(headers.Get("Content-Type"), "multipart/form-data"))

	is.True(strings.Contains(rdxml, "<downloadFormat>XML</downloadFormat>"))
	is.True(strings.Contains(rdxml, "<reportType>CAMPAIGN_PERFORMANCE_REPORT</reportType>"))

	is.Equal(string(result.Body), campaignReport)
	is.Equal(result.Report, nil)
}

func TestDownloadOptionsOverrideHeaders(t *testing.T) {
	is := is.New(t)

	var headers http.Header

	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers = r.Header.Clone()
		io.Copy(io.Discard, r.Body)
		w.Write([]byte(campaignReport))
	}))
	defer s.Close()

	svc := NewService(Endpoint(s.URL))

	_, err := svc.Download(context.Background(), "<reportDefinition/>", SkipColumnHeader(false), IncludeZeroImpressions(true))
	is.NoErr(err)

	is.Equal(headers.Get("skipColumnHeader"), "false")
	is.Equal(headers.Get("includeZeroImpressions"), "true")
	is.Equal(headers.Get("skipReportSummary"), "true")
}

func TestDownloadAsJSONParsesReport(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(
			is,
			method(http.MethodPost),
			bodyContaining(`name="__rdxml"`),
		),
		Returns(
			response.Code(http.StatusOK),
			response.ContentType("text/xml"),
			response.Body([]byte(campaignReport)),
		),
	)
	defer s.Close()

	svc := NewService(Endpoint(s.URL()))

	result, err := svc.ReportDownload(context.Background(), Definition{ReportType: CampaignPerformanceReport}, AsJSON())
	is.NoErr(err)

	is.Equal(result.Report.Name(), "Campaign Performance Report")
	is.Equal(len(result.Report.Table), 1)
	is.Equal(len(result.Report.Table[0].Rows), 2)
}

func TestDownloadErrorIsReturned(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.Code(http.StatusBadRequest),
			response.ContentType("text/xml"),
			response.Body([]byte(`<reportDownloadError><ApiError><type>ReportDefinitionError.INVALID_FIELD_NAME_FOR_REPORT</type><trigger>Bogus</trigger><fieldPath></fieldPath></ApiError></reportDownloadError>`)),
		),
	)
	defer s.Close()

	svc := NewService(Endpoint(s.URL()))

	result, err := svc.ReportDownload(context.Background(), Definition{ReportType: CampaignPerformanceReport}, AsJSON())
	is.True(result == nil)
	is.True(errors.Is(err, adwerrors.ErrInvalidRequest))
}

func TestDownloadTransportErrorIsRequestError(t *testing.T) {
	is := is.New(t)

	svc := NewService(Endpoint("http://127.0.0.1:1/reportdownload"))

	_, err := svc.Download(context.Background(), "<reportDefinition/>")
	is.True(errors.Is(err, adwerrors.ErrRequest))
}

func TestDownloadWithCancelledContextKeepsCause(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(response.Code(http.StatusOK), response.Body([]byte(campaignReport))),
	)
	defer s.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewService(Endpoint(s.URL())).Download(ctx, "<reportDefinition/>")
	is.True(errors.Is(err, context.Canceled))
	is.True(errors.Is(err, adwerrors.ErrRequest))
}

const campaignReport string = `<?xml version='1.0' encoding='UTF-8' standalone='yes'?>
<report>
  <report-name name='Campaign Performance Report'/>
  <date-range date='All Time'/>
  <table>
    <columns>
      <column name='campaignID' display='Campaign ID'/>
      <column name='campaign' display='Campaign'/>
      <column name='clicks' display='Clicks'/>
    </columns>
    <row campaignID='1532562169' campaign='Interplanetary Cruise' clicks='42'/>
    <row campaignID='1532562170' campaign='Lunar Getaway' clicks='7'/>
  </table>
</report>`
