package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/twigs-app/backend/internal/types"
	"golang.org/x/text/currency"
	"gorm.io/gorm"
)

// Budget is a named financial plan. Categories and transactions
// always belong to exactly one budget.
type Budget struct {
	DefaultModel
	Name        string
	Description *string
	Currency    string
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Currency = strings.ToUpper(strings.TrimSpace(b.Currency))

	if b.Description != nil {
		d := strings.TrimSpace(*b.Description)
		b.Description = &d
	}

	return nil
}

func (b *Budget) AfterSave(_ *gorm.DB) error {
	return b.Validate()
}

// Validate verifies that the budget has a name and, if set, a valid currency.
func (b Budget) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return ErrBudgetNameEmpty
	}

	if b.Currency == "" {
		return nil
	}

	if _, err := currency.ParseISO(b.Currency); err != nil {
		return fmt.Errorf("%w: '%s'", ErrCurrencyInvalid, b.Currency)
	}

	return nil
}

// Planned returns the sum of the amounts of all non-archived categories of the
// budget. If expense is true, expense categories are summed, otherwise income
// categories.
func (b Budget) Planned(db *gorm.DB, expense bool) (decimal.Decimal, error) {
	var planned decimal.NullDecimal

	err := db.
		Model(&Category{}).
		Select("SUM(amount)").
		Where("budget_id = ?", b.ID).
		Where("expense = ?", expense).
		Where("archived = ?", false).
		Find(&planned).
		Error
	if err != nil {
		return decimal.Zero, err
	}

	// No categories means no rows to sum, the value is NULL
	if !planned.Valid {
		return decimal.Zero, nil
	}

	return planned.Decimal, nil
}

// Actual returns the sum of the amounts of the budget's transactions within the
// period. If expense is true, expense transactions are summed, otherwise income
// transactions.
func (b Budget) Actual(db *gorm.DB, period types.Period, expense bool) (decimal.Decimal, error) {
	var actual decimal.NullDecimal

	err := db.
		Model(&Transaction{}).
		Select("SUM(amount)").
		Where("budget_id = ?", b.ID).
		Where("expense = ?", expense).
		Where("date >= ? AND date < ?", period.Start, period.End).
		Find(&actual).
		Error
	if err != nil {
		return decimal.Zero, err
	}

	if !actual.Valid {
		return decimal.Zero, nil
	}

	return actual.Decimal, nil
}
