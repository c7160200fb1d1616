package models_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/twigs-app/backend/internal/models"
)

func (suite *TestSuiteStandard) TestTransactionDateDefaultsToNow() {
	transaction := suite.createTestTransaction(models.Transaction{
		BudgetID: suite.createTestBudget(models.Budget{}).ID,
	})

	assert.WithinDuration(suite.T(), time.Now(), transaction.Date, time.Minute)
	assert.Equal(suite.T(), time.UTC, transaction.Date.Location())
}

func (suite *TestSuiteStandard) TestTransactionDateUTC() {
	zone := time.FixedZone("UTC+2", 2*3600)
	transaction := suite.createTestTransaction(models.Transaction{
		BudgetID: suite.createTestBudget(models.Budget{}).ID,
		Date:     time.Date(2024, 6, 1, 1, 0, 0, 0, zone),
	})

	var found models.Transaction
	assert.Nil(suite.T(), models.DB.First(&found, "id = ?", transaction.ID).Error)
	assert.Equal(suite.T(), time.Date(2024, 5, 31, 23, 0, 0, 0, time.UTC), found.Date)
}

func (suite *TestSuiteStandard) TestTransactionNegativeAmount() {
	transaction := models.Transaction{
		BudgetID: suite.createTestBudget(models.Budget{}).ID,
		Amount:   decimal.NewFromFloat(-17.5),
	}

	err := models.DB.Create(&transaction).Error
	assert.ErrorIs(suite.T(), err, models.ErrAmountNegative)
}

func (suite *TestSuiteStandard) TestTransactionUpdateNegativeAmount() {
	transaction := suite.createTestTransaction(models.Transaction{
		BudgetID: suite.createTestBudget(models.Budget{}).ID,
		Amount:   decimal.NewFromFloat(17.5),
	})

	err := models.DB.Model(&transaction).Select("Amount").Updates(models.Transaction{Amount: decimal.NewFromFloat(-1)}).Error
	assert.ErrorIs(suite.T(), err, models.ErrAmountNegative)
}

func (suite *TestSuiteStandard) TestTransactionCategoryConsistency() {
	household := suite.createTestBudget(models.Budget{})
	holiday := suite.createTestBudget(models.Budget{})
	salary := suite.createTestCategory(models.Category{BudgetID: household.ID, Title: "Salary"})
	rent := suite.createTestCategory(models.Category{BudgetID: household.ID, Title: "Rent", Expense: true})

	tests := []struct {
		name        string
		transaction models.Transaction
		err         error
	}{
		{"Category of another budget", models.Transaction{BudgetID: holiday.ID, CategoryID: &salary.ID}, models.ErrCategoryBudgetMismatch},
		{"Expense with income category", models.Transaction{BudgetID: household.ID, CategoryID: &salary.ID, Expense: true}, models.ErrCategoryKindMismatch},
		{"Income with expense category", models.Transaction{BudgetID: household.ID, CategoryID: &rent.ID}, models.ErrCategoryKindMismatch},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			transaction := tt.transaction
			err := models.DB.Create(&transaction).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}

	var count int64
	models.DB.Model(&models.Transaction{}).Count(&count)
	suite.Assert().Equal(int64(0), count, "Inconsistent transactions must not be persisted")
}

func (suite *TestSuiteStandard) TestTransactionBudgetFromCategory() {
	budget := suite.createTestBudget(models.Budget{})
	rent := suite.createTestCategory(models.Category{BudgetID: budget.ID, Title: "Rent", Expense: true})

	transaction := suite.createTestTransaction(models.Transaction{CategoryID: &rent.ID, Expense: true, Amount: decimal.NewFromInt(900)})
	suite.Assert().Equal(budget.ID, transaction.BudgetID)

	missing := uuid.New()
	err := models.DB.Create(&models.Transaction{CategoryID: &missing}).Error
	suite.Assert().ErrorIs(err, models.ErrReferencedResourceMissing)
}

func (suite *TestSuiteStandard) TestTransactionUpdateCategoryKind() {
	budget := suite.createTestBudget(models.Budget{})
	salary := suite.createTestCategory(models.Category{BudgetID: budget.ID, Title: "Salary"})
	transaction := suite.createTestTransaction(models.Transaction{BudgetID: budget.ID, CategoryID: &salary.ID, Amount: decimal.NewFromInt(2000)})

	err := models.DB.Model(&transaction).Select("Expense").Updates(models.Transaction{Expense: true}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryKindMismatch)

	var found models.Transaction
	suite.Require().Nil(models.DB.First(&found, "id = ?", transaction.ID).Error)
	suite.Assert().False(found.Expense, "Rejected updates must be rolled back")
}
