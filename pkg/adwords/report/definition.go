package report

import (
	"encoding/xml"

	"github.com/diwise/adwords/pkg/adwords"
)

type ReportType string

const (
	AccountPerformanceReport     ReportType = "ACCOUNT_PERFORMANCE_REPORT"
	AdGroupPerformanceReport     ReportType = "ADGROUP_PERFORMANCE_REPORT"
	AdPerformanceReport          ReportType = "AD_PERFORMANCE_REPORT"
	BudgetPerformanceReport      ReportType = "BUDGET_PERFORMANCE_REPORT"
	CampaignPerformanceReport    ReportType = "CAMPAIGN_PERFORMANCE_REPORT"
	KeywordsPerformanceReport    ReportType = "KEYWORDS_PERFORMANCE_REPORT"
	LabelReport                  ReportType = "LABEL_REPORT"
	SearchQueryPerformanceReport ReportType = "SEARCH_QUERY_PERFORMANCE_REPORT"
)

type DateRangeType string

const (
	Today            DateRangeType = "TODAY"
	Yesterday        DateRangeType = "YESTERDAY"
	Last7Days        DateRangeType = "LAST_7_DAYS"
	Last14Days       DateRangeType = "LAST_14_DAYS"
	Last30Days       DateRangeType = "LAST_30_DAYS"
	LastWeek         DateRangeType = "LAST_WEEK"
	LastBusinessWeek DateRangeType = "LAST_BUSINESS_WEEK"
	LastWeekSunSat   DateRangeType = "LAST_WEEK_SUN_SAT"
	ThisWeekSunToday DateRangeType = "THIS_WEEK_SUN_TODAY"
	ThisWeekMonToday DateRangeType = "THIS_WEEK_MON_TODAY"
	ThisMonth        DateRangeType = "THIS_MONTH"
	LastMonth        DateRangeType = "LAST_MONTH"
	AllTime          DateRangeType = "ALL_TIME"
	CustomDate       DateRangeType = "CUSTOM_DATE"
)

var dateRangeTypes = []DateRangeType{
	Today, Yesterday, Last7Days, Last14Days, Last30Days, LastWeek, LastBusinessWeek,
	LastWeekSunSat, ThisWeekSunToday, ThisWeekMonToday, ThisMonth, LastMonth, AllTime, CustomDate,
}

func (d DateRangeType) IsValid() bool {
	for _, drt := range dateRangeTypes {
		if d == drt {
			return true
		}
	}
	return false
}

type DownloadFormat string

const (
	CSVForExcel DownloadFormat = "CSVFOREXCEL"
	CSV         DownloadFormat = "CSV"
	TSV         DownloadFormat = "TSV"
	XML         DownloadFormat = "XML"
	GzippedCSV  DownloadFormat = "GZIPPED_CSV"
	GzippedXML  DownloadFormat = "GZIPPED_XML"
)

// Definition is the reportDefinition document posted as __rdxml to the download endpoint.
type Definition struct {
	XMLName        xml.Name         `xml:"reportDefinition" json:"-"`
	Selector       adwords.Selector `xml:"selector" json:"selector"`
	ReportName     string           `xml:"reportName,omitempty" json:"reportName,omitempty"`
	ReportType     ReportType       `xml:"reportType,omitempty" json:"reportType,omitempty"`
	DateRangeType  DateRangeType    `xml:"dateRangeType,omitempty" json:"dateRangeType,omitempty"`
	DownloadFormat DownloadFormat   `xml:"downloadFormat,omitempty" json:"downloadFormat,omitempty"`
}
