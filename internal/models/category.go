package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Category groups transactions of a budget and carries the amount planned for
// them per period.
type Category struct {
	DefaultModel
	Budget      Budget `json:"-"`
	BudgetID    uuid.UUID
	Title       string
	Description string
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // The amount planned per period
	Expense     bool
	Archived    bool
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Title = strings.TrimSpace(c.Title)
	c.Description = strings.TrimSpace(c.Description)

	return nil
}

// AfterSave verifies the saved values. A category that transactions are
// assigned to must stay in their budget and keep its expense setting.
func (c *Category) AfterSave(tx *gorm.DB) error {
	if c.Amount.IsNegative() {
		return ErrAmountNegative
	}

	var conflicting int64
	err := tx.Model(&Transaction{}).
		Where("category_id = ? AND (budget_id <> ? OR expense <> ?)", c.ID, c.BudgetID, c.Expense).
		Count(&conflicting).Error
	if err != nil {
		return err
	}

	if conflicting > 0 {
		return ErrCategoryInUse
	}

	return nil
}
