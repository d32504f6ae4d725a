package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diwise/adwords/internal/pkg/application/gateway"
	"github.com/diwise/adwords/pkg/adwords"
	adwerrors "github.com/diwise/adwords/pkg/adwords/errors"
	"github.com/diwise/adwords/pkg/adwords/report"
	"github.com/diwise/adwords/pkg/adwords/types"
	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"
	"github.com/xuri/excelize/v2"
)

func TestQueryBudgets(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	app.BudgetsFunc = func(ctx context.Context, customerID string, paging *adwords.Paging) (*adwords.Page[types.Budget], error) {
		return &adwords.Page[types.Budget]{TotalNumEntries: 1, Entries: []types.Budget{{BudgetID: "42", Name: "b"}}}, nil
	}

	resp, body := newTestRequest(is, ts, http.MethodGet, "/api/v0/123-456-7890/budgets?startIndex=10", nil)
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(resp.Header.Get("Content-Type"), "application/json")

	call := app.BudgetsCalls()[0]
	is.Equal(call.CustomerID, "123-456-7890")
	is.Equal(*call.Paging, adwords.Paging{StartIndex: 10})

	page := adwords.Page[types.Budget]{}
	is.NoErr(json.Unmarshal([]byte(body), &page))
	is.Equal(page.Entries[0].BudgetID, "42")
}

func TestQueryBudgetsWithoutPagingPassesNil(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	app.BudgetsFunc = func(context.Context, string, *adwords.Paging) (*adwords.Page[types.Budget], error) {
		return &adwords.Page[types.Budget]{}, nil
	}

	resp, _ := newTestRequest(is, ts, http.MethodGet, "/api/v0/123-456-7890/budgets", nil)
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(app.BudgetsCalls()[0].Paging, nil)
}

func TestQueryBudgetsByID(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	app.BudgetsByIDFunc = func(context.Context, string, ...string) (*adwords.Page[types.Budget], error) {
		return &adwords.Page[types.Budget]{}, nil
	}

	resp, _ := newTestRequest(is, ts, http.MethodGet, "/api/v0/123-456-7890/budgets?id=1,2,,3", nil)
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(app.BudgetsByIDCalls()[0].Ids, []string{"1", "2", "3"})
	is.Equal(len(app.BudgetsCalls()), 0)
}

func TestQueryBudgetsWithBadPagingIsBadRequest(t *testing.T) {
	is, ts, _ := setupTest(t)
	defer ts.Close()

	resp, _ := newTestRequest(is, ts, http.MethodGet, "/api/v0/123-456-7890/budgets?numberResults=many", nil)
	is.Equal(resp.StatusCode, http.StatusBadRequest)
}

func TestRetrieveMissingBudgetIsNotFound(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	app.BudgetFunc = func(context.Context, string, string) (*types.Budget, error) {
		return nil, adwerrors.NewNotFoundError("budget 42 not found")
	}

	resp, _ := newTestRequest(is, ts, http.MethodGet, "/api/v0/123-456-7890/budgets/42", nil)
	is.Equal(resp.StatusCode, http.StatusNotFound)
	is.Equal(resp.Header.Get("Content-Type"), "application/problem+json")
	is.Equal(app.BudgetCalls()[0].BudgetID, "42")
}

func TestDeleteBudget(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	app.RemoveBudgetFunc = func(context.Context, string, string) error { return nil }

	resp, _ := newTestRequest(is, ts, http.MethodDelete, "/api/v0/123-456-7890/budgets/42", nil)
	is.Equal(resp.StatusCode, http.StatusNoContent)
	is.Equal(app.RemoveBudgetCalls()[0].BudgetID, "42")
}

func TestUnauthorizedUpstreamIsReported(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	app.LabelsFunc = func(context.Context, string) (*adwords.Page[types.Label], error) {
		return nil, adwerrors.NewUnauthorizedError("AuthenticationError.NOT_ADS_USER")
	}

	resp, _ := newTestRequest(is, ts, http.MethodGet, "/api/v0/123-456-7890/labels", nil)
	is.Equal(resp.StatusCode, http.StatusUnauthorized)
}

func TestQueryAdGroupsAndAdsPassFilters(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	app.AdGroupsFunc = func(context.Context, string, ...string) (*adwords.Page[types.AdGroup], error) {
		return &adwords.Page[types.AdGroup]{}, nil
	}
	app.AdsFunc = func(context.Context, string, ...string) (*adwords.Page[types.AdGroupAd], error) {
		return &adwords.Page[types.AdGroupAd]{}, nil
	}
	app.CampaignsFunc = func(context.Context, string) (*adwords.Page[types.Campaign], error) {
		return &adwords.Page[types.Campaign]{}, nil
	}

	resp, _ := newTestRequest(is, ts, http.MethodGet, "/api/v0/1/adgroups?campaignId=7,8", nil)
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(app.AdGroupsCalls()[0].CampaignIDs, []string{"7", "8"})

	resp, _ = newTestRequest(is, ts, http.MethodGet, "/api/v0/1/ads", nil)
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(len(app.AdsCalls()[0].AdGroupIDs), 0)

	resp, _ = newTestRequest(is, ts, http.MethodGet, "/api/v0/1/campaigns", nil)
	is.Equal(resp.StatusCode, http.StatusOK)
}

func TestDownloadReportAsJSON(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	app.ReportFunc = func(context.Context, string, report.ReportType, report.DateRangeType, bool) (*report.Result, error) {
		return testResult(), nil
	}

	resp, body := newTestRequest(is, ts, http.MethodGet, "/api/v0/1/reports/campaign_performance_report?dateRange=last_7_days", nil)
	is.Equal(resp.StatusCode, http.StatusOK)

	call := app.ReportCalls()[0]
	is.Equal(call.ReportType, report.CampaignPerformanceReport)
	is.Equal(call.DateRange, report.Last7Days)
	is.True(call.AsJSON)

	r := report.Report{}
	is.NoErr(json.Unmarshal([]byte(body), &r))
	is.Equal(r.Name(), "Campaign Performance Report")
}

func TestDownloadReportAsXMLReturnsRawBody(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	app.ReportFunc = func(context.Context, string, report.ReportType, report.DateRangeType, bool) (*report.Result, error) {
		return &report.Result{Body: []byte("<report/>")}, nil
	}

	resp, body := newTestRequest(is, ts, http.MethodGet, "/api/v0/1/reports/CAMPAIGN_PERFORMANCE_REPORT?format=xml", nil)
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(resp.Header.Get("Content-Type"), "application/xml")
	is.Equal(body, "<report/>")
	is.True(!app.ReportCalls()[0].AsJSON)
}

func TestDownloadReportAsSpreadsheet(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	app.ReportFunc = func(context.Context, string, report.ReportType, report.DateRangeType, bool) (*report.Result, error) {
		return testResult(), nil
	}

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/v0/1/reports/CAMPAIGN_PERFORMANCE_REPORT?format=xlsx", nil)
	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err)
	defer resp.Body.Close()

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(resp.Header.Get("Content-Type"), xlsxContentType)

	f, err := excelize.OpenReader(resp.Body)
	is.NoErr(err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetList()[0])
	is.NoErr(err)
	is.Equal(rows[0], []string{"Campaign ID"})
	is.Equal(rows[1], []string{"1"})
}

func TestDownloadReportWithUnknownFormatIsBadRequest(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	resp, _ := newTestRequest(is, ts, http.MethodGet, "/api/v0/1/reports/CAMPAIGN_PERFORMANCE_REPORT?format=pdf", nil)
	is.Equal(resp.StatusCode, http.StatusBadRequest)
	is.Equal(len(app.ReportCalls()), 0)
}

func testResult() *report.Result {
	return &report.Result{
		Report: &report.Report{
			ReportName: []report.Attributes{{"name": "Campaign Performance Report"}},
			DataRange:  []report.Attributes{},
			Table: []report.Table{{
				Columns: []report.Column{{Name: "campaignID", Display: "Campaign ID"}},
				Rows:    []report.Attributes{{"campaignID": "1"}},
			}},
		},
	}
}

func setupTest(t *testing.T) (*is.I, *httptest.Server, *gateway.GatewayMock) {
	is := is.New(t)
	r := chi.NewRouter()
	app := &gateway.GatewayMock{}

	RegisterHandlers(context.Background(), r, app)

	return is, httptest.NewServer(r), app
}

func newTestRequest(is *is.I, ts *httptest.Server, method, path string, body io.Reader) (*http.Response, string) {
	req, _ := http.NewRequest(method, ts.URL+path, body)

	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err) // http request failed
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	is.NoErr(err) // failed to read response body

	return resp, string(respBody)
}
