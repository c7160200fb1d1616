package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is a single income or expense of a budget.
type Transaction struct {
	DefaultModel
	Budget      Budget `json:"-"`
	BudgetID    uuid.UUID
	Category    *Category `json:"-"`
	CategoryID  *uuid.UUID
	Title       string
	Description string
	Date        time.Time
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Expense     bool
}

// AfterFind converts the date to UTC, the sqlite driver reads it back as +0000.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	t.Date = t.Date.In(time.UTC)
	return
}

// BeforeSave defaults the date to now and stores it in UTC.
//
// Transactions without a budget are assigned to the budget of their category.
func (t *Transaction) BeforeSave(tx *gorm.DB) error {
	if t.CategoryID != nil && *t.CategoryID == uuid.Nil {
		t.CategoryID = nil
	}

	if t.BudgetID == uuid.Nil && t.CategoryID != nil {
		var category Category
		err := tx.First(&category, "id = ?", *t.CategoryID).Error
		if err != nil {
			return ErrReferencedResourceMissing
		}
		t.BudgetID = category.BudgetID
	}

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	t.Title = strings.TrimSpace(t.Title)
	t.Description = strings.TrimSpace(t.Description)

	return nil
}

// AfterSave verifies the saved values. On updates, they include the fields
// that were not changed.
func (t *Transaction) AfterSave(tx *gorm.DB) error {
	if t.Amount.IsNegative() {
		return ErrAmountNegative
	}

	if t.CategoryID == nil {
		return nil
	}

	var category Category
	err := tx.First(&category, "id = ?", *t.CategoryID).Error
	if err != nil {
		return err
	}

	if category.BudgetID != t.BudgetID {
		return ErrCategoryBudgetMismatch
	}

	if category.Expense != t.Expense {
		return ErrCategoryKindMismatch
	}

	return nil
}
