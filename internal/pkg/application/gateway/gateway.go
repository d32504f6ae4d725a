package gateway

import (
	"context"
	"fmt"

	"github.com/diwise/adwords/pkg/adwords"
	"github.com/diwise/adwords/pkg/adwords/client"
	"github.com/diwise/adwords/pkg/adwords/errors"
	"github.com/diwise/adwords/pkg/adwords/report"
	"github.com/diwise/adwords/pkg/adwords/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

//go:generate moq -rm -out gateway_mock.go . Gateway

// Gateway exposes the services of the configured accounts, addressed by customer id.
type Gateway interface {
	Budgets(ctx context.Context, customerID string, paging *adwords.Paging) (*adwords.Page[types.Budget], error)
	BudgetsByID(ctx context.Context, customerID string, ids ...string) (*adwords.Page[types.Budget], error)
	Budget(ctx context.Context, customerID, budgetID string) (*types.Budget, error)
	RemoveBudget(ctx context.Context, customerID, budgetID string) error

	Labels(ctx context.Context, customerID string) (*adwords.Page[types.Label], error)
	Campaigns(ctx context.Context, customerID string) (*adwords.Page[types.Campaign], error)
	AdGroups(ctx context.Context, customerID string, campaignIDs ...string) (*adwords.Page[types.AdGroup], error)
	Ads(ctx context.Context, customerID string, adGroupIDs ...string) (*adwords.Page[types.AdGroupAd], error)

	Report(ctx context.Context, customerID string, reportType report.ReportType, dateRange report.DateRangeType, asJSON bool) (*report.Result, error)
}

type gw struct {
	clients map[string]client.AdWordsClient
}

func New(ctx context.Context, cfg *Config) Gateway {
	log := logging.GetFromContext(ctx)

	g := &gw{
		clients: map[string]client.AdWordsClient{},
	}

	for _, account := range cfg.Accounts {
		options := []client.Option{
			client.Endpoint(cfg.Endpoint),
			client.Version(cfg.Version),
			client.ClientCustomerID(account.CustomerID),
			client.DeveloperToken(cfg.DeveloperTokenFor(account)),
			client.UserAgent(cfg.UserAgent),
			client.PartialFailure(cfg.PartialFailure),
			client.Verbose(cfg.Verbose),
		}

		if cfg.ReportEndpoint != "" {
			options = append(options, client.ReportEndpoint(cfg.ReportEndpoint))
		}

		if cfg.StrictFields {
			options = append(options, client.StrictFields())
		}

		g.clients[account.CustomerID] = client.NewAdWordsClient(options...)

		log.Info("configured account", "customer_id", account.CustomerID, "name", account.Name)
	}

	return g
}

func (g *gw) client(customerID string) (client.AdWordsClient, error) {
	c, ok := g.clients[customerID]
	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("no account configured for customer %s", customerID))
	}
	return c, nil
}

func (g *gw) Budgets(ctx context.Context, customerID string, paging *adwords.Paging) (*adwords.Page[types.Budget], error) {
	c, err := g.client(customerID)
	if err != nil {
		return nil, err
	}

	if paging != nil {
		return c.Budgets().GetByPage(ctx, *paging)
	}

	return c.Budgets().GetAll(ctx)
}

func (g *gw) BudgetsByID(ctx context.Context, customerID string, ids ...string) (*adwords.Page[types.Budget], error) {
	c, err := g.client(customerID)
	if err != nil {
		return nil, err
	}

	return c.Budgets().GetByIDs(ctx, ids...)
}

func (g *gw) Budget(ctx context.Context, customerID, budgetID string) (*types.Budget, error) {
	c, err := g.client(customerID)
	if err != nil {
		return nil, err
	}

	page, err := c.Budgets().GetByID(ctx, budgetID)
	if err != nil {
		return nil, err
	}

	if page.Len() == 0 {
		return nil, errors.NewNotFoundError(fmt.Sprintf("budget %s not found", budgetID))
	}

	return &page.Entries[0], nil
}

func (g *gw) RemoveBudget(ctx context.Context, customerID, budgetID string) error {
	c, err := g.client(customerID)
	if err != nil {
		return err
	}

	rval, err := c.Budgets().Remove(ctx, budgetID)
	if err != nil {
		return err
	}

	return rval.Err()
}

func (g *gw) Labels(ctx context.Context, customerID string) (*adwords.Page[types.Label], error) {
	c, err := g.client(customerID)
	if err != nil {
		return nil, err
	}

	return c.Labels().GetAll(ctx)
}

func (g *gw) Campaigns(ctx context.Context, customerID string) (*adwords.Page[types.Campaign], error) {
	c, err := g.client(customerID)
	if err != nil {
		return nil, err
	}

	return c.Campaigns().GetAll(ctx)
}

func (g *gw) AdGroups(ctx context.Context, customerID string, campaignIDs ...string) (*adwords.Page[types.AdGroup], error) {
	c, err := g.client(customerID)
	if err != nil {
		return nil, err
	}

	if len(campaignIDs) == 0 {
		return c.AdGroups().GetAll(ctx)
	}

	return c.AdGroups().GetByCampaignIDs(ctx, campaignIDs...)
}

func (g *gw) Ads(ctx context.Context, customerID string, adGroupIDs ...string) (*adwords.Page[types.AdGroupAd], error) {
	c, err := g.client(customerID)
	if err != nil {
		return nil, err
	}

	if len(adGroupIDs) == 0 {
		return c.AdGroupAds().GetAll(ctx)
	}

	return c.AdGroupAds().GetByAdGroupIDs(ctx, adGroupIDs...)
}

func (g *gw) Report(ctx context.Context, customerID string, reportType report.ReportType, dateRange report.DateRangeType, asJSON bool) (*report.Result, error) {
	c, err := g.client(customerID)
	if err != nil {
		return nil, err
	}

	r, err := c.Report(reportType)
	if err != nil {
		return nil, errors.NewInvalidRequestError(err.Error())
	}

	def := report.Definition{}

	if dateRange != "" {
		if !dateRange.IsValid() || dateRange == report.CustomDate {
			return nil, errors.NewInvalidRequestError(fmt.Sprintf("unsupported date range %s", dateRange))
		}
		def.DateRangeType = dateRange
	}

	options := []report.DownloadOption{}
	if asJSON {
		options = append(options, report.AsJSON())
	}

	return r.Get(ctx, def, options...)
}
