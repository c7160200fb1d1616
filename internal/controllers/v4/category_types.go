package v4

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/twigs-app/backend/internal/models"
	twigs_uuid "github.com/twigs-app/backend/internal/uuid"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	BudgetID    uuid.UUID `json:"budgetId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`      // ID of the budget the category belongs to
	Title       string    `json:"title" example:"Groceries" default:""`                         // Title of the category
	Description string    `json:"description" example:"Food and household supplies" default:""` // A longer description of the category

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount   decimal.Decimal `json:"amount" example:"250" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount planned for the category per month
	Expense  bool            `json:"expense" example:"true" default:"false"`                                                   // Is this an expense category? If not, it is an income category
	Archived bool            `json:"archived" example:"false" default:"false"`                                                 // Is the category archived? Archived categories do not count towards the expected amounts
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		BudgetID:    editable.BudgetID,
		Title:       editable.Title,
		Description: editable.Description,
		Amount:      editable.Amount,
		Expense:     editable.Expense,
		Archived:    editable.Archived,
	}
}

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v4/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`                    // The category itself
	Transactions string `json:"transactions" example:"https://example.com/api/v4/transactions?category=3b1ea324-d438-4419-882a-2fc91d71772f"` // Transactions of this category
}

// Category is the API v4 representation of a Category.
type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			BudgetID:    model.BudgetID,
			Title:       model.Title,
			Description: model.Description,
			Amount:      model.Amount,
			Expense:     model.Expense,
			Archived:    model.Archived,
		},
		Links: CategoryLinks{
			Self:         fmt.Sprintf("%s/v4/categories/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v4/transactions?category=%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`                                                          // List of Categories
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CategoryCreateResponse struct {
	Data  []CategoryResponse `json:"data"`                                                          // List of the created Categories or their respective error
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // Data for the Category
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryQueryFilter struct {
	BudgetID    twigs_uuid.UUID `form:"budget"`                          // By ID of the Budget
	Title       string          `form:"title" filterField:"false"`       // By title
	Description string          `form:"description" filterField:"false"` // By description
	Expense     bool            `form:"expense"`                         // Is the Category an expense category?
	Archived    bool            `form:"archived"`                        // Is the Category archived?
	Search      string          `form:"search" filterField:"false"`      // By string in title or description
	Offset      uint            `form:"offset" filterField:"false"`      // The offset of the first Category returned. Defaults to 0.
	Limit       int             `form:"limit" filterField:"false"`       // Maximum number of Categories to return. Defaults to 50.
}

func (f CategoryQueryFilter) model() models.Category {
	return models.Category{
		BudgetID: f.BudgetID.UUID,
		Expense:  f.Expense,
		Archived: f.Archived,
	}
}
