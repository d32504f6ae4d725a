package report

import (
	"context"
	"fmt"
	"sync"

	"dario.cat/mergo"
	"github.com/diwise/adwords/pkg/adwords"
	"github.com/diwise/adwords/pkg/adwords/errors"
	"github.com/diwise/adwords/pkg/adwords/fields"
)

// TypedReport downloads one kind of report. Definitions passed to Get are completed with
// the report type, its default field list and ALL_TIME as date range.
type TypedReport struct {
	service    *Service
	reportType ReportType
	name       string
	fields     []string

	mu      sync.RWMutex
	options []DownloadOption
}

var reportFields = map[ReportType][]string{
	CampaignPerformanceReport: fields.CampaignPerformanceReport,
	AdGroupPerformanceReport:  fields.AdGroupPerformanceReport,
	AdPerformanceReport:       fields.AdPerformanceReport,
	BudgetPerformanceReport:   fields.BudgetPerformanceReport,
}

var reportNames = map[ReportType]string{
	CampaignPerformanceReport: "Campaign Performance Report",
	AdGroupPerformanceReport:  "Ad Group Performance Report",
	AdPerformanceReport:       "Ad Performance Report",
	BudgetPerformanceReport:   "Budget Performance Report",
}

func NewCampaignPerformanceReport(s *Service) *TypedReport {
	return newTypedReport(s, CampaignPerformanceReport)
}

func NewAdGroupPerformanceReport(s *Service) *TypedReport {
	return newTypedReport(s, AdGroupPerformanceReport)
}

func NewAdPerformanceReport(s *Service) *TypedReport {
	return newTypedReport(s, AdPerformanceReport)
}

func NewBudgetPerformanceReport(s *Service) *TypedReport {
	return newTypedReport(s, BudgetPerformanceReport)
}

// ForType returns the typed report for reportType, or an error if there is none.
func ForType(s *Service, reportType ReportType) (*TypedReport, error) {
	if _, ok := reportFields[reportType]; !ok {
		return nil, fmt.Errorf("no typed report for %s (%w)", reportType, errors.ErrUnsupported)
	}
	return newTypedReport(s, reportType), nil
}

func newTypedReport(s *Service, reportType ReportType) *TypedReport {
	return &TypedReport{
		service:    s,
		reportType: reportType,
		name:       reportNames[reportType],
		fields:     reportFields[reportType],
	}
}

func (r *TypedReport) Type() ReportType {
	return r.reportType
}

// SetOptions replaces the download options used by Get.
func (r *TypedReport) SetOptions(options ...DownloadOption) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.options = append([]DownloadOption(nil), options...)
}

func (r *TypedReport) Options() DownloadOptions {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return NewDownloadOptions(r.options...)
}

// Definition completes a partial definition with this report's defaults.
func (r *TypedReport) Definition(partial Definition) (Definition, error) {
	defaults := Definition{
		Selector:       adwords.NewSelector(r.fields),
		ReportName:     r.name,
		ReportType:     r.reportType,
		DateRangeType:  AllTime,
		DownloadFormat: XML,
	}

	if err := mergo.Merge(&partial, defaults); err != nil {
		return Definition{}, fmt.Errorf("failed to apply report defaults: %s (%w)", err.Error(), errors.ErrInternal)
	}

	return partial, nil
}

// Get downloads the report using the options set with SetOptions. Additional options
// are applied after those.
func (r *TypedReport) Get(ctx context.Context, partial Definition, options ...DownloadOption) (*Result, error) {
	def, err := r.Definition(partial)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	opts := append(append([]DownloadOption(nil), r.options...), options...)
	r.mu.RUnlock()

	return r.service.ReportDownload(ctx, def, opts...)
}
