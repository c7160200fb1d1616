package v4

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/twigs-app/backend/internal/models"
	twigs_uuid "github.com/twigs-app/backend/internal/uuid"
)

type TransactionEditable struct {
	BudgetID    uuid.UUID  `json:"budgetId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`             // ID of the budget
	CategoryID  *uuid.UUID `json:"categoryId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"`           // ID of the category
	Title       string     `json:"title" example:"Weekly shopping" default:""`                          // Title of the transaction
	Description string     `json:"description" example:"Including the drinks for the party" default:""` // A longer description
	Date        time.Time  `json:"date" example:"2024-03-15T18:43:00.271152Z"`                          // Date of the transaction. Defaults to now

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount  decimal.Decimal `json:"amount" example:"14.03" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount of the transaction
	Expense bool            `json:"expense" example:"true" default:"false"`                                                     // Is this an expense? If not, it is income
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		BudgetID:    editable.BudgetID,
		CategoryID:  editable.CategoryID,
		Title:       editable.Title,
		Description: editable.Description,
		Date:        editable.Date,
		Amount:      editable.Amount,
		Expense:     editable.Expense,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v4/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

// Transaction is the representation of a Transaction in API v4.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

// newTransaction returns the API v4 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			BudgetID:    model.BudgetID,
			CategoryID:  model.CategoryID,
			Title:       model.Title,
			Description: model.Description,
			Date:        model.Date,
			Amount:      model.Amount,
			Expense:     model.Expense,
		},
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v4/transactions/%s", url, model.ID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created Transactions
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                                          // The Transaction data, if creation was successful
}

type TransactionQueryFilter struct {
	BudgetID          twigs_uuid.UUID `form:"budget"`                                // ID of the budget
	CategoryID        twigs_uuid.UUID `form:"category" filterField:"false"`          // ID of the category
	Expense           bool            `form:"expense"`                               // Is the transaction an expense?
	From              time.Time       `form:"from" filterField:"false"`              // Transactions at or after this time
	Until             time.Time       `form:"until" filterField:"false"`             // Transactions before this time
	Amount            decimal.Decimal `form:"amount"`                                // Exact amount
	AmountLessOrEqual decimal.Decimal `form:"amountLessOrEqual" filterField:"false"` // Amount less than or equal to this
	AmountMoreOrEqual decimal.Decimal `form:"amountMoreOrEqual" filterField:"false"` // Amount more than or equal to this
	Title             string          `form:"title" filterField:"false"`             // Title contains this string
	Description       string          `form:"description" filterField:"false"`       // Description contains this string
	Search            string          `form:"search" filterField:"false"`            // By string in title or description
	Offset            uint            `form:"offset" filterField:"false"`            // The offset of the first Transaction returned. Defaults to 0.
	Limit             int             `form:"limit" filterField:"false"`             // Maximum number of transactions to return. Defaults to 50.
}

// model returns the fields that can be used in a gorm query directly.
// Strings, dates, amount ranges and the category are handled in the
// controller function.
func (f TransactionQueryFilter) model() models.Transaction {
	return models.Transaction{
		BudgetID: f.BudgetID.UUID,
		Expense:  f.Expense,
		Amount:   f.Amount,
	}
}
