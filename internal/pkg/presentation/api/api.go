package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/diwise/adwords/internal/pkg/application/gateway"
	"github.com/diwise/adwords/internal/pkg/presentation/api/problems"
	"github.com/diwise/adwords/pkg/adwords"
	"github.com/diwise/adwords/pkg/adwords/report"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("adwords-gateway/api")

const (
	FormatJSON string = "json"
	FormatXML  string = "xml"
	FormatXLSX string = "xlsx"

	xlsxContentType string = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

func RegisterHandlers(ctx context.Context, r chi.Router, app gateway.Gateway) {
	r.Route("/api/v0/{customerId}", func(r chi.Router) {
		r.Use(Logger(logging.GetFromContext(ctx)))

		r.Get("/budgets", NewQueryBudgetsHandler(app))
		r.Get("/budgets/{budgetId}", NewRetrieveBudgetHandler(app))
		r.Delete("/budgets/{budgetId}", NewDeleteBudgetHandler(app))

		r.Get("/labels", NewQueryLabelsHandler(app))
		r.Get("/campaigns", NewQueryCampaignsHandler(app))
		r.Get("/adgroups", NewQueryAdGroupsHandler(app))
		r.Get("/ads", NewQueryAdsHandler(app))

		r.Get("/reports/{reportType}", NewDownloadReportHandler(app))
	})
}

// Logger stores a logger, tagged with the trace id and the customer id, in the request context.
func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(
				trace.SpanFromContext(ctx),
				logger,
				ctx)

			if customerID := chi.URLParam(r, "customerId"); customerID != "" {
				ctx = logging.NewContextWithLogger(ctx, logging.GetFromContext(ctx), "customer_id", customerID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// NewQueryBudgetsHandler returns budgets by id when ?id= is given, otherwise one page of all budgets.
func NewQueryBudgetsHandler(app gateway.Gateway) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-budgets")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		customerID := chi.URLParam(r, "customerId")

		if ids := listParam(r, "id"); len(ids) > 0 {
			page, e := app.BudgetsByID(ctx, customerID, ids...)
			err = respond(ctx, w, page, e)
			return
		}

		paging, err := pagingParams(r)
		if err != nil {
			problems.ReportInvalidRequest(w, err.Error())
			return
		}

		page, e := app.Budgets(ctx, customerID, paging)
		err = respond(ctx, w, page, e)
	}
}

func NewRetrieveBudgetHandler(app gateway.Gateway) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "retrieve-budget")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		budget, e := app.Budget(ctx, chi.URLParam(r, "customerId"), chi.URLParam(r, "budgetId"))
		err = respond(ctx, w, budget, e)
	}
}

func NewDeleteBudgetHandler(app gateway.Gateway) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "delete-budget")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		budgetID := chi.URLParam(r, "budgetId")

		err = app.RemoveBudget(ctx, chi.URLParam(r, "customerId"), budgetID)
		if err != nil {
			log := logging.GetFromContext(ctx)
			log.Error("failed to remove budget", "budget_id", budgetID, "err", err.Error())
			problems.ReportError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func NewQueryLabelsHandler(app gateway.Gateway) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-labels")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		page, e := app.Labels(ctx, chi.URLParam(r, "customerId"))
		err = respond(ctx, w, page, e)
	}
}

func NewQueryCampaignsHandler(app gateway.Gateway) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-campaigns")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		page, e := app.Campaigns(ctx, chi.URLParam(r, "customerId"))
		err = respond(ctx, w, page, e)
	}
}

func NewQueryAdGroupsHandler(app gateway.Gateway) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-adgroups")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		page, e := app.AdGroups(ctx, chi.URLParam(r, "customerId"), listParam(r, "campaignId")...)
		err = respond(ctx, w, page, e)
	}
}

func NewQueryAdsHandler(app gateway.Gateway) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-ads")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		page, e := app.Ads(ctx, chi.URLParam(r, "customerId"), listParam(r, "adGroupId")...)
		err = respond(ctx, w, page, e)
	}
}

// NewDownloadReportHandler downloads a report and returns it as parsed json (the default),
// as the raw xml from the download service, or converted to a spreadsheet.
func NewDownloadReportHandler(app gateway.Gateway) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		reportType := report.ReportType(strings.ToUpper(chi.URLParam(r, "reportType")))
		dateRange := report.DateRangeType(strings.ToUpper(r.URL.Query().Get("dateRange")))

		format := strings.ToLower(r.URL.Query().Get("format"))
		if format == "" {
			format = FormatJSON
		}

		ctx, span := tracer.Start(r.Context(), "download-report",
			trace.WithAttributes(
				attribute.String("report-type", string(reportType)),
				attribute.String("format", format),
			),
		)
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		if format != FormatJSON && format != FormatXML && format != FormatXLSX {
			err = fmt.Errorf("unsupported format %s", format)
			problems.ReportInvalidRequest(w, err.Error())
			return
		}

		result, err := app.Report(ctx, chi.URLParam(r, "customerId"), reportType, dateRange, format != FormatXML)
		if err != nil {
			log := logging.GetFromContext(ctx)
			log.Error("failed to download report", "report_type", reportType, "err", err.Error())
			problems.ReportError(w, err)
			return
		}

		switch format {
		case FormatXML:
			w.Header().Add("Content-Type", "application/xml")
			w.WriteHeader(http.StatusOK)
			w.Write(result.Body)
		case FormatXLSX:
			w.Header().Add("Content-Type", xlsxContentType)
			w.Header().Add("Content-Disposition", fmt.Sprintf("attachment; filename=%q", strings.ToLower(string(reportType))+".xlsx"))
			w.WriteHeader(http.StatusOK)
			err = report.WriteXLSX(w, result.Report)
			if err != nil {
				log := logging.GetFromContext(ctx)
				log.Error("failed to write spreadsheet", "err", err.Error())
			}
		default:
			err = writeJSON(w, result.Report)
		}
	}
}

func respond(ctx context.Context, w http.ResponseWriter, body any, err error) error {
	if err != nil {
		log := logging.GetFromContext(ctx)
		log.Error("request failed", "err", err.Error())
		problems.ReportError(w, err)
		return err
	}

	return writeJSON(w, body)
}

func writeJSON(w http.ResponseWriter, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		problems.NewInternalError(err.Error()).WriteResponse(w)
		return err
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)

	return nil
}

func listParam(r *http.Request, name string) []string {
	values := []string{}

	for _, v := range strings.Split(r.URL.Query().Get(name), ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}

	return values
}

func pagingParams(r *http.Request) (*adwords.Paging, error) {
	q := r.URL.Query()

	if !q.Has("startIndex") && !q.Has("numberResults") {
		return nil, nil
	}

	paging := &adwords.Paging{}

	for name, target := range map[string]*int{"startIndex": &paging.StartIndex, "numberResults": &paging.NumberResults} {
		if !q.Has(name) {
			continue
		}

		v, err := strconv.Atoi(q.Get(name))
		if err != nil || v < 0 {
			return nil, fmt.Errorf("%s must be a non negative integer", name)
		}
		*target = v
	}

	return paging, nil
}
