package fields

// Default report columns used when a report definition is requested without a selector.
// See https://developers.google.com/adwords/api/docs/appendix/reports

var CampaignPerformanceReport = []string{
	"CampaignId",
	"CampaignName",
	"CampaignStatus",
	"StartDate",
	"EndDate",
	"Clicks",
	"Conversions",
	"Ctr",
	"Cost",
	"Impressions",
	"ConversionRate",
	"AverageCpc",
}

var AdGroupPerformanceReport = []string{
	"AdGroupId",
	"AdGroupName",
	"AdGroupStatus",
	"CampaignId",
	"CampaignName",
	"Clicks",
	"Conversions",
	"Ctr",
	"Cost",
	"Impressions",
	"AverageCpc",
}

var AdPerformanceReport = []string{
	"Id",
	"AdGroupId",
	"CampaignId",
	"AdType",
	"Status",
	"HeadlinePart1",
	"HeadlinePart2",
	"Description",
	"Clicks",
	"Impressions",
	"Ctr",
	"Cost",
}

var BudgetPerformanceReport = []string{
	"BudgetId",
	"BudgetName",
	"BudgetStatus",
	"Amount",
	"DeliveryMethod",
	"IsBudgetExplicitlyShared",
	"AssociatedCampaignId",
	"AssociatedCampaignName",
	"Clicks",
	"Impressions",
	"Cost",
}
