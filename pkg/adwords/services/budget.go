package services

import (
	"context"

	"github.com/diwise/adwords/pkg/adwords"
	"github.com/diwise/adwords/pkg/adwords/fields"
	"github.com/diwise/adwords/pkg/adwords/soap"
	"github.com/diwise/adwords/pkg/adwords/types"
)

// Unit is the number of micro units in one unit of the account currency.
const Unit = types.Unit

type BudgetService struct {
	*Service[types.Budget]
}

func NewBudgetService(transport soap.Transport, options ...func(*Settings)) *BudgetService {
	return &BudgetService{
		Service: NewService[types.Budget]("BudgetService", fields.Budget, "BudgetId", transport, options...),
	}
}

// Remove removes the budgets with the given ids in a single request.
func (s *BudgetService) Remove(ctx context.Context, budgetIDs ...string) (*adwords.ReturnValue[types.Budget], error) {
	budgets := make([]types.Budget, 0, len(budgetIDs))
	for _, id := range budgetIDs {
		budgets = append(budgets, types.Budget{BudgetID: id})
	}

	return s.Service.Remove(ctx, budgets...)
}
