package client

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/diwise/adwords/pkg/adwords"
	adwerrors "github.com/diwise/adwords/pkg/adwords/errors"
	"github.com/diwise/adwords/pkg/adwords/report"
	testutils "github.com/diwise/service-chassis/pkg/test/http"
	"github.com/diwise/service-chassis/pkg/test/http/expects"
	"github.com/diwise/service-chassis/pkg/test/http/response"
	"github.com/matryer/is"
)

var Expects = testutils.Expects
var Returns = testutils.Returns
var method = expects.RequestMethod
var path = expects.RequestPath
var bodyContaining = expects.RequestBodyContaining

func TestBudgetsUseAccountConfiguration(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(
			is,
			method(http.MethodPost),
			path("/api/adwords/cm/v201809/BudgetService"),
			bodyContaining(`<clientCustomerId>123-456-7890</clientCustomerId><developerToken>token</developerToken>`),
			bodyContaining(`<partialFailure>true</partialFailure>`),
		),
		Returns(
			response.Code(http.StatusOK),
			response.ContentType("text/xml"),
			response.Body([]byte(`<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/"><soap:Body><getResponse><rval><totalNumEntries>1</totalNumEntries><entries><budgetId>1</budgetId></entries></rval></getResponse></soap:Body></soap:Envelope>`)),
		),
	)
	defer s.Close()

	c := NewAdWordsClient(
		Endpoint(s.URL()+"/api/adwords"),
		ClientCustomerID("123-456-7890"),
		DeveloperToken("token"),
		PartialFailure(true),
	)

	page, err := c.Budgets().GetAll(context.Background())
	is.NoErr(err)
	is.Equal(page.Entries[0].BudgetID, "1")
}

func TestReportEndpointIsDerivedFromEndpoint(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(
			is,
			method(http.MethodPost),
			path("/api/adwords/reportdownload/v201809"),
			bodyContaining(`<reportType>BUDGET_PERFORMANCE_REPORT</reportType>`),
		),
		Returns(
			response.Code(http.StatusOK),
			response.Body([]byte(`<report><report-name name="Budget Performance Report"/></report>`)),
		),
	)
	defer s.Close()

	c := NewAdWordsClient(Endpoint(s.URL() + "/api/adwords"))

	result, err := c.BudgetPerformanceReport().Get(context.Background(), report.Definition{}, report.AsJSON())
	is.NoErr(err)
	is.Equal(result.Report.Name(), "Budget Performance Report")
}

func TestStrictFieldsIsAppliedToAllServices(t *testing.T) {
	is := is.New(t)

	c := NewAdWordsClient(Endpoint("http://127.0.0.1:1"), StrictFields())

	_, err := c.Labels().Get(context.Background(), adwords.NewSelector([]string{"Bogus"}))
	is.True(errors.Is(err, adwerrors.ErrUnknownField))

	_, err = c.AdGroups().Get(context.Background(), adwords.NewSelector([]string{"Bogus"}))
	is.True(errors.Is(err, adwerrors.ErrUnknownField))
}

func TestReportForUnknownType(t *testing.T) {
	is := is.New(t)

	_, err := NewAdWordsClient().Report(report.LabelReport)
	is.True(errors.Is(err, adwerrors.ErrUnsupported))
}
