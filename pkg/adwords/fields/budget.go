package fields

// Budget amounts are selected in micros, see types.Budget
var Budget = NewVocabulary(
	"Budget",
	"Amount",
	"BudgetId",
	"BudgetName",
	"BudgetReferenceCount",
	"BudgetStatus",
	"DeliveryMethod",
	"IsBudgetExplicitlyShared",
)
