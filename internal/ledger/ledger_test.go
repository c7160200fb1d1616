package ledger_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twigs-app/backend/internal/ledger"
	"github.com/twigs-app/backend/internal/models"
	"github.com/twigs-app/backend/internal/overview"
	"github.com/twigs-app/backend/internal/types"
)

var march = types.NewMonth(2024, time.March).Period()

func (suite *TestSuiteStandard) createBudget() models.Budget {
	description := "Shared expenses"
	budget := models.Budget{
		Name:        "Household",
		Description: &description,
		Currency:    "EUR",
	}
	suite.create(&budget)

	// Income: 1000 planned, 750 received in March
	suite.create(&models.Category{BudgetID: budget.ID, Title: "Salary", Amount: decimal.NewFromInt(1000)})
	suite.create(&models.Transaction{BudgetID: budget.ID, Title: "Salary", Amount: decimal.NewFromInt(700), Date: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)})
	suite.create(&models.Transaction{BudgetID: budget.ID, Title: "Sale", Amount: decimal.NewFromInt(50), Date: time.Date(2024, 3, 31, 23, 59, 0, 0, time.UTC)})

	// Expenses: 800 planned, 820 paid in March
	suite.create(&models.Category{BudgetID: budget.ID, Title: "Rent", Amount: decimal.NewFromInt(600), Expense: true})
	suite.create(&models.Category{BudgetID: budget.ID, Title: "Groceries", Amount: decimal.NewFromInt(200), Expense: true})
	suite.create(&models.Category{BudgetID: budget.ID, Title: "Old", Amount: decimal.NewFromInt(5000), Expense: true, Archived: true})
	suite.create(&models.Transaction{BudgetID: budget.ID, Title: "Rent", Amount: decimal.NewFromInt(600), Expense: true, Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)})
	suite.create(&models.Transaction{BudgetID: budget.ID, Title: "Groceries", Amount: decimal.NewFromInt(220), Expense: true, Date: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)})

	// Outside of the period
	suite.create(&models.Transaction{BudgetID: budget.ID, Title: "Rent", Amount: decimal.NewFromInt(600), Expense: true, Date: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)})
	suite.create(&models.Transaction{BudgetID: budget.ID, Title: "Salary", Amount: decimal.NewFromInt(700), Date: time.Date(2024, 2, 29, 23, 59, 0, 0, time.UTC)})

	return budget
}

func (suite *TestSuiteStandard) TestBudget() {
	budget := suite.createBudget()

	b, err := ledger.New(models.DB).Budget(context.Background(), budget.ID)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), overview.Budget{
		ID:          budget.ID,
		Name:        "Household",
		Description: budget.Description,
		Currency:    "EUR",
	}, b)
}

func (suite *TestSuiteStandard) TestBudgetNotFound() {
	_, err := ledger.New(models.DB).Budget(context.Background(), uuid.New())
	assert.ErrorIs(suite.T(), err, overview.ErrNotFound)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestTotals() {
	budget := suite.createBudget()
	store := ledger.New(models.DB)

	expected, actual, err := store.IncomeTotals(context.Background(), budget.ID, march)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), expected.Equal(decimal.NewFromInt(1000)), "Expected income is %s", expected)
	assert.True(suite.T(), actual.Equal(decimal.NewFromInt(750)), "Actual income is %s", actual)

	expected, actual, err = store.ExpenseTotals(context.Background(), budget.ID, march)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), expected.Equal(decimal.NewFromInt(800)), "Expected expenses are %s", expected)
	assert.True(suite.T(), actual.Equal(decimal.NewFromInt(820)), "Actual expenses are %s", actual)
}

func (suite *TestSuiteStandard) TestTotalsEmptyBudget() {
	budget := models.Budget{Name: "Empty"}
	suite.create(&budget)

	expected, actual, err := ledger.New(models.DB).ExpenseTotals(context.Background(), budget.ID, march)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), expected.IsZero())
	assert.True(suite.T(), actual.IsZero())
}

func (suite *TestSuiteStandard) TestTotalsNotFound() {
	_, _, err := ledger.New(models.DB).IncomeTotals(context.Background(), uuid.New(), march)
	assert.ErrorIs(suite.T(), err, overview.ErrNotFound)
}

func (suite *TestSuiteStandard) TestTotalsDBClosed() {
	budget := suite.createBudget()
	suite.CloseDB()

	_, _, err := ledger.New(models.DB).IncomeTotals(context.Background(), budget.ID, march)
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
	assert.NotErrorIs(suite.T(), err, overview.ErrNotFound)
}

func (suite *TestSuiteStandard) TestTotalsCancelled() {
	budget := suite.createBudget()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := ledger.New(models.DB).IncomeTotals(ctx, budget.ID, march)
	assert.NotNil(suite.T(), err)
	assert.NotErrorIs(suite.T(), err, overview.ErrNotFound)
}

func (suite *TestSuiteStandard) TestCompute() {
	budget := suite.createBudget()
	store := ledger.New(models.DB)

	o, err := overview.NewCalculator(store, store).Compute(context.Background(), budget.ID, march)
	require.Nil(suite.T(), err)

	assert.Equal(suite.T(), budget.ID, o.Budget.ID)
	assert.True(suite.T(), o.Balance.Equal(decimal.NewFromInt(-70)), "Balance is %s", o.Balance)
	assert.True(suite.T(), o.IncomeProgress().Actual.Equal(decimal.NewFromFloat(0.75)))
	assert.True(suite.T(), o.ExpensesProgress().Actual.Equal(decimal.NewFromInt(1)))
}

func (suite *TestSuiteStandard) TestComputeDBClosed() {
	budget := suite.createBudget()
	store := ledger.New(models.DB)
	suite.CloseDB()

	_, err := overview.NewCalculator(store, store).Compute(context.Background(), budget.ID, march)
	assert.ErrorIs(suite.T(), err, overview.ErrUnavailable)
}
