package report

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/diwise/adwords/pkg/adwords/errors"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-xmlfmt/xmlfmt"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const DefaultEndpoint string = "https://adwords.google.com/api/adwords/reportdownload/v201809"

const FormField string = "__rdxml"

var tracer = otel.Tracer("adwords-report-download")

type DownloadOptions struct {
	JSON                   bool `json:"json"`
	SkipReportHeader       bool `json:"skipReportHeader"`
	SkipColumnHeader       bool `json:"skipColumnHeader"`
	SkipReportSummary      bool `json:"skipReportSummary"`
	UseRawEnumValues       bool `json:"useRawEnumValues"`
	IncludeZeroImpressions bool `json:"includeZeroImpressions"`
}

var DefaultDownloadOptions = DownloadOptions{
	JSON:                   false,
	SkipReportHeader:       false,
	SkipColumnHeader:       true,
	SkipReportSummary:      true,
	UseRawEnumValues:       false,
	IncludeZeroImpressions: false,
}

type DownloadOption func(*DownloadOptions)

// AsJSON parses the downloaded XML into a Report instead of returning the raw body.
func AsJSON() DownloadOption {
	return func(o *DownloadOptions) {
		o.JSON = true
	}
}

func SkipReportHeader(skip bool) DownloadOption {
	return func(o *DownloadOptions) {
		o.SkipReportHeader = skip
	}
}

func SkipColumnHeader(skip bool) DownloadOption {
	return func(o *DownloadOptions) {
		o.SkipColumnHeader = skip
	}
}

func SkipReportSummary(skip bool) DownloadOption {
	return func(o *DownloadOptions) {
		o.SkipReportSummary = skip
	}
}

func UseRawEnumValues(raw bool) DownloadOption {
	return func(o *DownloadOptions) {
		o.UseRawEnumValues = raw
	}
}

func IncludeZeroImpressions(include bool) DownloadOption {
	return func(o *DownloadOptions) {
		o.IncludeZeroImpressions = include
	}
}

func NewDownloadOptions(options ...DownloadOption) DownloadOptions {
	opts := DefaultDownloadOptions
	for _, option := range options {
		option(&opts)
	}
	return opts
}

func (o DownloadOptions) headers() map[string]string {
	return map[string]string{
		"skipReportHeader":       strconv.FormatBool(o.SkipReportHeader),
		"skipColumnHeader":       strconv.FormatBool(o.SkipColumnHeader),
		"skipReportSummary":      strconv.FormatBool(o.SkipReportSummary),
		"useRawEnumValues":       strconv.FormatBool(o.UseRawEnumValues),
		"includeZeroImpressions": strconv.FormatBool(o.IncludeZeroImpressions),
	}
}

// Result holds the raw response body and, when downloaded with AsJSON, the parsed report.
type Result struct {
	Body   []byte
	Report *Report
}

func Endpoint(endpoint string) func(*Service) {
	return func(s *Service) {
		s.endpoint = endpoint
	}
}

func HTTPClient(httpClient *http.Client) func(*Service) {
	return func(s *Service) {
		s.httpClient = httpClient
	}
}

func Verbose(verbose bool) func(*Service) {
	return func(s *Service) {
		s.verbose = verbose
	}
}

func ClientCustomerID(customerID string) func(*Service) {
	return func(s *Service) {
		s.clientCustomerID = customerID
	}
}

func DeveloperToken(token string) func(*Service) {
	return func(s *Service) {
		s.developerToken = token
	}
}

func UserAgent(userAgent string) func(*Service) {
	return func(s *Service) {
		s.userAgent = userAgent
	}
}

type Service struct {
	endpoint         string
	clientCustomerID string
	developerToken   string
	userAgent        string
	verbose          bool
	httpClient       *http.Client
}

func NewService(options ...func(*Service)) *Service {
	s := &Service{
		endpoint: DefaultEndpoint,
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}

	for _, option := range options {
		option(s)
	}

	return s
}

// ReportDownload builds the definition and downloads the report in one go.
func (s *Service) ReportDownload(ctx context.Context, def Definition, options ...DownloadOption) (*Result, error) {
	rdxml, err := Build(def)
	if err != nil {
		log := logging.GetFromContext(ctx)
		log.Error("failed to build report definition", "definition", fmt.Sprintf("%+v", def), "err", err.Error())
		return nil, err
	}

	return s.Download(ctx, rdxml, options...)
}

// Download posts a serialized report definition to the download endpoint. Any error is
// logged together with the definition and options, and then returned as is.
func (s *Service) Download(ctx context.Context, rdxml string, options ...DownloadOption) (result *Result, err error) {
	opts := NewDownloadOptions(options...)

	ctx, span := tracer.Start(ctx, "report-download",
		trace.WithAttributes(attribute.String("client-customer-id", s.clientCustomerID)),
		trace.WithAttributes(attribute.Bool("json", opts.JSON)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	ctx = logging.NewContextWithLogger(ctx, logging.GetFromContext(ctx), "request_id", uuid.NewString())
	log := logging.GetFromContext(ctx)

	if s.verbose {
		log.Debug("downloading report", FormField, xmlfmt.FormatXML(rdxml, "", "  "))
	}

	defer func() {
		if err != nil {
			log.Error("report download failed", "definition", rdxml, "options", fmt.Sprintf("%+v", opts), "err", err.Error())
		}
	}()

	body, err := s.post(ctx, rdxml, opts)
	if err != nil {
		return nil, err
	}

	result = &Result{Body: body}

	if opts.JSON {
		result.Report, err = Parse(body)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (s *Service) post(ctx context.Context, rdxml string, opts DownloadOptions) ([]byte, error) {
	form := &bytes.Buffer{}
	w := multipart.NewWriter(form)

	if err := w.WriteField(FormField, rdxml); err != nil {
		return nil, fmt.Errorf("failed to write form field: %s (%w)", err.Error(), errors.ErrInternal)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %s (%w)", err.Error(), errors.ErrInternal)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, form)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %s (%w)", err.Error(), errors.ErrInternal)
	}

	req.Header.Set("Content-Type", w.FormDataContentType())
	for k, v := range opts.headers() {
		req.Header.Set(k, v)
	}

	if s.clientCustomerID != "" {
		req.Header.Set("clientCustomerId", s.clientCustomerID)
	}
	if s.developerToken != "" {
		req.Header.Set("developerToken", s.developerToken)
	}
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w (%w)", err, errors.ErrRequest)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %s (%w)", err.Error(), errors.ErrBadResponse)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewErrorFromReportDownload(resp.StatusCode, body)
	}

	return body, nil
}
