package v4

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/twigs-app/backend/internal/models"
)

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	Name        string  `json:"name" example:"Household" default:""`                  // Name of the budget
	Description *string `json:"description" example:"Money for the family household"` // A longer description of the budget
	Currency    string  `json:"currency" example:"EUR" default:""`                    // ISO 4217 code of the currency used in the budget
}

func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		Name:        editable.Name,
		Description: editable.Description,
		Currency:    editable.Currency,
	}
}

type BudgetLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v4/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                     // The budget itself
	Overview     string `json:"overview" example:"https://example.com/api/v4/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf/overview"`        // The overview of the budget for the current month
	Categories   string `json:"categories" example:"https://example.com/api/v4/categories?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf"`     // Categories of this budget
	Transactions string `json:"transactions" example:"https://example.com/api/v4/transactions?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // Transactions of this budget
}

// Budget is the API v4 representation of a Budget.
type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	url := c.GetString(string(models.DBContextURL))

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			Name:        model.Name,
			Description: model.Description,
			Currency:    model.Currency,
		},
		Links: BudgetLinks{
			Self:         fmt.Sprintf("%s/v4/budgets/%s", url, model.ID),
			Overview:     fmt.Sprintf("%s/v4/budgets/%s/overview", url, model.ID),
			Categories:   fmt.Sprintf("%s/v4/categories?budget=%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v4/transactions?budget=%s", url, model.ID),
		},
	}
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                          // List of budgets
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BudgetCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BudgetResponse `json:"data"`                                                          // List of created Budgets
}

type BudgetResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Budget `json:"data"`                                                          // Data for the budget
}

type BudgetQueryFilter struct {
	Name        string `form:"name" filterField:"false"`        // By name
	Description string `form:"description" filterField:"false"` // By description
	Currency    string `form:"currency"`                        // By currency
	Search      string `form:"search" filterField:"false"`      // By string in name or description
	Offset      uint   `form:"offset" filterField:"false"`      // The offset of the first Budget returned. Defaults to 0.
	Limit       int    `form:"limit" filterField:"false"`       // Maximum number of Budgets to return. Defaults to 50.
}

func (f BudgetQueryFilter) model() models.Budget {
	return models.Budget{
		Currency: f.Currency,
	}
}
