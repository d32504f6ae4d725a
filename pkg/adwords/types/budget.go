package types

type BudgetStatus string

const (
	BudgetEnabled BudgetStatus = "ENABLED"
	BudgetRemoved BudgetStatus = "REMOVED"
	BudgetUnknown BudgetStatus = "UNKNOWN"
)

type DeliveryMethod string

const (
	DeliveryStandard    DeliveryMethod = "STANDARD"
	DeliveryAccelerated DeliveryMethod = "ACCELERATED"
)

type Budget struct {
	BudgetID           string         `xml:"budgetId,omitempty" json:"budgetId,omitempty"`
	Name               string         `xml:"name,omitempty" json:"name,omitempty"`
	Amount             *Money         `xml:"amount,omitempty" json:"amount,omitempty"`
	DeliveryMethod     DeliveryMethod `xml:"deliveryMethod,omitempty" json:"deliveryMethod,omitempty"`
	ReferenceCount     int            `xml:"referenceCount,omitempty" json:"referenceCount,omitempty"`
	IsExplicitlyShared *bool          `xml:"isExplicitlyShared,omitempty" json:"isExplicitlyShared,omitempty"`
	Status             BudgetStatus   `xml:"status,omitempty" json:"status,omitempty"`
}
