package models_test

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/twigs-app/backend/internal/models"
)

func (suite *TestSuiteStandard) TestCategoryTrimWhitespace() {
	category := suite.createTestCategory(models.Category{
		BudgetID:    suite.createTestBudget(models.Budget{}).ID,
		Title:       "  Groceries ",
		Description: "\tFood and such  ",
	})

	assert.Equal(suite.T(), "Groceries", category.Title)
	assert.Equal(suite.T(), "Food and such", category.Description)
}

func (suite *TestSuiteStandard) TestCategoryNegativeAmount() {
	category := models.Category{
		BudgetID: suite.createTestBudget(models.Budget{}).ID,
		Amount:   decimal.NewFromFloat(-5),
	}

	err := models.DB.Create(&category).Error
	assert.ErrorIs(suite.T(), err, models.ErrAmountNegative)

	var count int64
	models.DB.Model(&models.Category{}).Count(&count)
	assert.Equal(suite.T(), int64(0), count, "Category with negative amount must not be persisted")
}

func (suite *TestSuiteStandard) TestCategoryNonExistingBudget() {
	category := models.Category{BudgetID: uuid.New()}

	err := models.DB.Create(&category).Error
	assert.ErrorIs(suite.T(), err, models.ErrReferencedResourceMissing)
}

func (suite *TestSuiteStandard) TestCategoryNotFound() {
	err := models.DB.First(&models.Category{}, "id = ?", uuid.New()).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Contains(suite.T(), err.Error(), "there is no category matching your query")
}

func (suite *TestSuiteStandard) TestCategoryInUse() {
	household := suite.createTestBudget(models.Budget{})
	holiday := suite.createTestBudget(models.Budget{})
	rent := suite.createTestCategory(models.Category{BudgetID: household.ID, Title: "Rent", Expense: true})
	_ = suite.createTestTransaction(models.Transaction{BudgetID: household.ID, CategoryID: &rent.ID, Expense: true})

	err := models.DB.Model(&rent).Select("Expense").Updates(models.Category{Expense: false}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryInUse)

	suite.Require().Nil(models.DB.First(&rent, "id = ?", rent.ID).Error)
	suite.Assert().True(rent.Expense, "Rejected updates must be rolled back")

	err = models.DB.Model(&rent).Select("BudgetID").Updates(models.Category{BudgetID: holiday.ID}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryInUse)

	suite.Require().Nil(models.DB.First(&rent, "id = ?", rent.ID).Error)
	err = models.DB.Model(&rent).Select("Title").Updates(models.Category{Title: "Flat"}).Error
	suite.Assert().Nil(err, "Changes that keep transactions consistent are allowed")
}
