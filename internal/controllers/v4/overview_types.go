package v4

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/twigs-app/backend/internal/models"
	"github.com/twigs-app/backend/internal/overview"
	"github.com/twigs-app/backend/internal/types"
)

type BudgetOverviewLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v4/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf/overview?month=2024-03"`                                                   // The overview itself
	Budget       string `json:"budget" example:"https://example.com/api/v4/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                                                                        // The budget
	Transactions string `json:"transactions" example:"https://example.com/api/v4/transactions?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf&from=2024-03-01T00:00:00Z&until=2024-04-01T00:00:00Z"` // Transactions of the budget in the month
}

// BudgetOverview is the API v4 representation of a budget overview.
type BudgetOverview struct {
	Budget           overview.Budget     `json:"budget"`                                       // The budget the overview is for
	Month            types.Month         `json:"month" swaggertype:"string" example:"2024-03"` // The month the overview is for
	Balance          decimal.Decimal     `json:"balance" example:"-70"`                        // Actual income minus actual expenses
	ExpectedIncome   decimal.Decimal     `json:"expectedIncome" example:"1000"`                // Sum of the planned amounts of all income categories
	ActualIncome     decimal.Decimal     `json:"actualIncome" example:"750"`                   // Sum of all income transactions in the month
	ExpectedExpenses decimal.Decimal     `json:"expectedExpenses" example:"800"`               // Sum of the planned amounts of all expense categories
	ActualExpenses   decimal.Decimal     `json:"actualExpenses" example:"820"`                 // Sum of all expense transactions in the month
	IncomeProgress   overview.Progress   `json:"incomeProgress"`                               // Progress values for the income
	ExpensesProgress overview.Progress   `json:"expensesProgress"`                             // Progress values for the expenses
	Stale            bool                `json:"stale" example:"false"`                        // The overview could not be recomputed, these are the last known values
	Links            BudgetOverviewLinks `json:"links"`                                        // Links for the overview
}

func newBudgetOverview(c *gin.Context, month types.Month, o overview.Overview, stale bool) BudgetOverview {
	url := c.GetString(string(models.DBContextURL))
	period := month.Period()

	return BudgetOverview{
		Budget:           o.Budget,
		Month:            month,
		Balance:          o.Balance,
		ExpectedIncome:   o.ExpectedIncome,
		ActualIncome:     o.ActualIncome,
		ExpectedExpenses: o.ExpectedExpenses,
		ActualExpenses:   o.ActualExpenses,
		IncomeProgress:   o.IncomeProgress(),
		ExpensesProgress: o.ExpensesProgress(),
		Stale:            stale,
		Links: BudgetOverviewLinks{
			Self:         fmt.Sprintf("%s/v4/budgets/%s/overview?month=%s", url, o.Budget.ID, month),
			Budget:       fmt.Sprintf("%s/v4/budgets/%s", url, o.Budget.ID),
			Transactions: fmt.Sprintf("%s/v4/transactions?budget=%s&from=%s&until=%s", url, o.Budget.ID, period.Start.Format(time.RFC3339), period.End.Format(time.RFC3339)),
		},
	}
}

type BudgetOverviewResponse struct {
	Error *string         `json:"error" example:"the budget data is currently unavailable"` // The error, if any occurred
	Data  *BudgetOverview `json:"data"`                                                     // Data for the overview
}
