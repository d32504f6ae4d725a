package client

import (
	"net/http"
	"strings"

	"github.com/diwise/adwords/pkg/adwords/report"
	"github.com/diwise/adwords/pkg/adwords/services"
	"github.com/diwise/adwords/pkg/adwords/soap"
)

// AdWordsClient binds every service to the same account configuration.
type AdWordsClient interface {
	Budgets() *services.BudgetService
	Labels() *services.LabelService
	Campaigns() *services.CampaignService
	AdGroups() *services.AdGroupService
	AdGroupAds() *services.AdGroupAdService
	Media() *services.MediaService

	Reports() *report.Service
	Report(reportType report.ReportType) (*report.TypedReport, error)
	CampaignPerformanceReport() *report.TypedReport
	AdGroupPerformanceReport() *report.TypedReport
	AdPerformanceReport() *report.TypedReport
	BudgetPerformanceReport() *report.TypedReport
}

type Option func(*awClient)

func Endpoint(endpoint string) Option {
	return func(c *awClient) {
		c.endpoint = strings.TrimSuffix(endpoint, "/")
	}
}

// ReportEndpoint overrides the report download url, which otherwise is derived from
// the endpoint and the api version.
func ReportEndpoint(endpoint string) Option {
	return func(c *awClient) {
		c.reportEndpoint = endpoint
	}
}

func Version(version string) Option {
	return func(c *awClient) {
		c.version = version
	}
}

func ClientCustomerID(customerID string) Option {
	return func(c *awClient) {
		c.clientCustomerID = customerID
	}
}

func DeveloperToken(token string) Option {
	return func(c *awClient) {
		c.developerToken = token
	}
}

func UserAgent(userAgent string) Option {
	return func(c *awClient) {
		c.userAgent = userAgent
	}
}

func HTTPClient(httpClient *http.Client) Option {
	return func(c *awClient) {
		c.httpClient = httpClient
	}
}

// Verbose logs request details of failed calls and the report definitions sent.
func Verbose(verbose bool) Option {
	return func(c *awClient) {
		c.verbose = verbose
	}
}

func PartialFailure(enabled bool) Option {
	return func(c *awClient) {
		c.partialFailure = enabled
	}
}

func StrictFields() Option {
	return func(c *awClient) {
		c.strict = true
	}
}

type awClient struct {
	endpoint         string
	reportEndpoint   string
	version          string
	clientCustomerID string
	developerToken   string
	userAgent        string
	httpClient       *http.Client
	verbose          bool
	partialFailure   bool
	strict           bool

	budgets    *services.BudgetService
	labels     *services.LabelService
	campaigns  *services.CampaignService
	adGroups   *services.AdGroupService
	adGroupAds *services.AdGroupAdService
	media      *services.MediaService
	reports    *report.Service
}

func NewAdWordsClient(options ...Option) AdWordsClient {
	c := &awClient{
		endpoint: soap.DefaultEndpoint,
		version:  soap.DefaultVersion,
	}

	for _, option := range options {
		option(c)
	}

	c.budgets = services.NewBudgetService(c.transport("BudgetService"), c.serviceOptions()...)
	c.labels = services.NewLabelService(c.transport("LabelService"), c.serviceOptions()...)
	c.campaigns = services.NewCampaignService(c.transport("CampaignService"), c.serviceOptions()...)
	c.adGroups = services.NewAdGroupService(c.transport("AdGroupService"), c.serviceOptions()...)
	c.adGroupAds = services.NewAdGroupAdService(c.transport("AdGroupAdService"), c.serviceOptions()...)
	c.media = services.NewMediaService(c.transport("MediaService"), c.serviceOptions()...)
	c.reports = report.NewService(c.reportOptions()...)

	return c
}

func (c *awClient) transport(service string) *soap.Client {
	options := []func(*soap.Client){
		soap.Endpoint(c.endpoint),
		soap.Version(c.version),
		soap.ClientCustomerID(c.clientCustomerID),
		soap.DeveloperToken(c.developerToken),
		soap.UserAgent(c.userAgent),
		soap.PartialFailure(c.partialFailure),
	}

	if c.verbose {
		options = append(options, soap.Debug("true"))
	}

	if c.httpClient != nil {
		options = append(options, soap.HTTPClient(c.httpClient))
	}

	return soap.NewClient(service, options...)
}

func (c *awClient) serviceOptions() []func(*services.Settings) {
	if c.strict {
		return []func(*services.Settings){services.StrictFields()}
	}
	return nil
}

func (c *awClient) reportOptions() []func(*report.Service) {
	endpoint := c.reportEndpoint
	if endpoint == "" {
		endpoint = c.endpoint + "/reportdownload/" + c.version
	}

	options := []func(*report.Service){
		report.Endpoint(endpoint),
		report.ClientCustomerID(c.clientCustomerID),
		report.DeveloperToken(c.developerToken),
		report.UserAgent(c.userAgent),
		report.Verbose(c.verbose),
	}

	if c.httpClient != nil {
		options = append(options, report.HTTPClient(c.httpClient))
	}

	return options
}

func (c *awClient) Budgets() *services.BudgetService {
	return c.budgets
}

func (c *awClient) Labels() *services.LabelService {
	return c.labels
}

func (c *awClient) Campaigns() *services.CampaignService {
	return c.campaigns
}

func (c *awClient) AdGroups() *services.AdGroupService {
	return c.adGroups
}

func (c *awClient) AdGroupAds() *services.AdGroupAdService {
	return c.adGroupAds
}

func (c *awClient) Media() *services.MediaService {
	return c.media
}

func (c *awClient) Reports() *report.Service {
	return c.reports
}

func (c *awClient) Report(reportType report.ReportType) (*report.TypedReport, error) {
	return report.ForType(c.reports, reportType)
}

func (c *awClient) CampaignPerformanceReport() *report.TypedReport {
	return report.NewCampaignPerformanceReport(c.reports)
}

func (c *awClient) AdGroupPerformanceReport() *report.TypedReport {
	return report.NewAdGroupPerformanceReport(c.reports)
}

func (c *awClient) AdPerformanceReport() *report.TypedReport {
	return report.NewAdPerformanceReport(c.reports)
}

func (c *awClient) BudgetPerformanceReport() *report.TypedReport {
	return report.NewBudgetPerformanceReport(c.reports)
}
