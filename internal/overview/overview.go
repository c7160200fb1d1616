// Package overview computes the derived figures shown on a budget dashboard:
// balance, expected and actual income and expenses and their progress values.
//
// The Calculator is a pure projection over two collaborators, a Ledger for
// the totals and a BudgetRepository for the budget metadata. The Refresher
// coordinates concurrent recomputations and keeps the last good result.
package overview

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/twigs-app/backend/internal/types"
)

// Budget is the metadata of the budget an overview summarizes.
type Budget struct {
	ID          uuid.UUID `json:"id" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`
	Name        string    `json:"name" example:"Household"`
	Description *string   `json:"description" example:"Shared expenses"`
	Currency    string    `json:"currency" example:"EUR"`
}

// Overview is an immutable snapshot of a budget's financial state within a period.
type Overview struct {
	Budget           Budget
	Period           types.Period
	Balance          decimal.Decimal // ActualIncome - ActualExpenses
	ExpectedIncome   decimal.Decimal
	ActualIncome     decimal.Decimal
	ExpectedExpenses decimal.Decimal
	ActualExpenses   decimal.Decimal
}

// IncomeProgress returns the progress values for the income section.
func (o Overview) IncomeProgress() Progress {
	return NewProgress(o.ExpectedIncome, o.ActualIncome)
}

// ExpensesProgress returns the progress values for the expenses section.
func (o Overview) ExpensesProgress() Progress {
	return NewProgress(o.ExpectedExpenses, o.ActualExpenses)
}

// Ledger provides the aggregated totals of a budget.
//
// Implementations return an error matching ErrNotFound if the budget does not exist.
type Ledger interface {
	IncomeTotals(ctx context.Context, budgetID uuid.UUID, period types.Period) (expected, actual decimal.Decimal, err error)
	ExpenseTotals(ctx context.Context, budgetID uuid.UUID, period types.Period) (expected, actual decimal.Decimal, err error)
}

// BudgetRepository provides budget metadata.
//
// Implementations return an error matching ErrNotFound if the budget does not exist.
type BudgetRepository interface {
	Budget(ctx context.Context, budgetID uuid.UUID) (Budget, error)
}

// Calculator computes overviews. It holds no state besides its collaborators
// and is safe for concurrent use if they are.
type Calculator struct {
	ledger  Ledger
	budgets BudgetRepository
}

func NewCalculator(ledger Ledger, budgets BudgetRepository) *Calculator {
	return &Calculator{
		ledger:  ledger,
		budgets: budgets,
	}
}

// Compute returns the overview for the budget within the period.
//
// Errors match either ErrNotFound or ErrUnavailable. Nothing is retried.
func (c *Calculator) Compute(ctx context.Context, budgetID uuid.UUID, period types.Period) (Overview, error) {
	budget, err := c.budgets.Budget(ctx, budgetID)
	if err != nil {
		return Overview{}, classify(err, "reading budget %s", budgetID)
	}

	expectedIncome, actualIncome, err := c.ledger.IncomeTotals(ctx, budgetID, period)
	if err != nil {
		return Overview{}, classify(err, "reading income totals for budget %s", budgetID)
	}

	expectedExpenses, actualExpenses, err := c.ledger.ExpenseTotals(ctx, budgetID, period)
	if err != nil {
		return Overview{}, classify(err, "reading expense totals for budget %s", budgetID)
	}

	totals := []struct {
		name  string
		value decimal.Decimal
	}{
		{"expected income", expectedIncome},
		{"actual income", actualIncome},
		{"expected expenses", expectedExpenses},
		{"actual expenses", actualExpenses},
	}

	for _, t := range totals {
		if t.value.IsNegative() {
			return Overview{}, fmt.Errorf("%w: ledger returned negative %s %s for budget %s", ErrUnavailable, t.name, t.value, budgetID)
		}
	}

	return Overview{
		Budget:           budget,
		Period:           period,
		Balance:          actualIncome.Sub(actualExpenses),
		ExpectedIncome:   expectedIncome,
		ActualIncome:     actualIncome,
		ExpectedExpenses: expectedExpenses,
		ActualExpenses:   actualExpenses,
	}, nil
}
