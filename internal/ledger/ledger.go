// Package ledger provides the budget data an overview is computed from,
// backed by the database.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/twigs-app/backend/internal/models"
	"github.com/twigs-app/backend/internal/overview"
	"github.com/twigs-app/backend/internal/types"
	"gorm.io/gorm"
)

// Store implements overview.Ledger and overview.BudgetRepository.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) Store {
	return Store{db: db}
}

// Budget returns the metadata of the budget.
func (s Store) Budget(ctx context.Context, budgetID uuid.UUID) (overview.Budget, error) {
	budget, err := s.budget(s.db.WithContext(ctx), budgetID)
	if err != nil {
		return overview.Budget{}, err
	}

	return overview.Budget{
		ID:          budget.ID,
		Name:        budget.Name,
		Description: budget.Description,
		Currency:    budget.Currency,
	}, nil
}

// IncomeTotals returns the planned income of the budget and the income it
// received within the period.
func (s Store) IncomeTotals(ctx context.Context, budgetID uuid.UUID, period types.Period) (decimal.Decimal, decimal.Decimal, error) {
	return s.totals(ctx, budgetID, period, false)
}

// ExpenseTotals returns the planned expenses of the budget and the expenses
// paid within the period.
func (s Store) ExpenseTotals(ctx context.Context, budgetID uuid.UUID, period types.Period) (decimal.Decimal, decimal.Decimal, error) {
	return s.totals(ctx, budgetID, period, true)
}

func (s Store) totals(ctx context.Context, budgetID uuid.UUID, period types.Period, expense bool) (decimal.Decimal, decimal.Decimal, error) {
	db := s.db.WithContext(ctx)

	// Sums over a budget that does not exist are zero, they must not
	// be reported as such
	budget, err := s.budget(db, budgetID)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	expected, err := budget.Planned(db, expense)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("summing planned amounts: %w", err)
	}

	actual, err := budget.Actual(db, period, expense)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("summing transactions: %w", err)
	}

	return expected, actual, nil
}

func (s Store) budget(db *gorm.DB, budgetID uuid.UUID) (models.Budget, error) {
	var budget models.Budget
	err := db.First(&budget, "id = ?", budgetID).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return models.Budget{}, fmt.Errorf("%w: %w", overview.ErrNotFound, err)
	}

	return budget, err
}
