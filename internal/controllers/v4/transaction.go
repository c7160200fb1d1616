package v4

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/twigs-app/backend/internal/httputil"
	"github.com/twigs-app/backend/internal/models"
	twigs_uuid "github.com/twigs-app/backend/internal/uuid"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsTransactionList)
	r.GET("", co.GetTransactions)
	r.POST("", co.CreateTransactions)

	r.OPTIONS("/:id", OptionsTransactionDetail)
	r.GET("/:id", co.GetTransaction)
	r.PATCH("/:id", co.UpdateTransaction)
	r.DELETE("/:id", co.DeleteTransaction)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v4/transactions [options]
func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v4/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	resourceOptionsDetail[models.Transaction](c)
}

// @Summary		Create transactions
// @Description	Creates transactions from the list of submitted transaction data. The response code is the highest response code number that a single transaction creation would have caused. If it is not equal to 201, at least one transaction has an error.
// @Tags			Transactions
// @Produce		json
// @Success		201				{object}	TransactionCreateResponse
// @Failure		400				{object}	TransactionCreateResponse
// @Failure		404				{object}	TransactionCreateResponse
// @Failure		500				{object}	TransactionCreateResponse
// @Param			transactions	body		[]TransactionEditable	true	"Transactions"
// @Router			/v4/transactions [post]
func (co Controller) CreateTransactions(c *gin.Context) {
	results, code, ok := createResources[models.Transaction, TransactionEditable](c)
	if !ok {
		return
	}

	r := TransactionCreateResponse{}
	for _, result := range results {
		if result.err != nil {
			e := result.err.Error()
			r.Data = append(r.Data, TransactionResponse{Error: &e})
			continue
		}

		co.Overviews.Invalidate(result.resource.BudgetID)

		data := newTransaction(c, result.resource)
		r.Data = append(r.Data, TransactionResponse{Data: &data})
	}

	c.JSON(code, r)
}

// @Summary		Get transactions
// @Description	Returns a list of transactions
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	TransactionListResponse
// @Failure		500	{object}	TransactionListResponse
// @Router			/v4/transactions [get]
// @Param			budget				query	string	false	"Filter by budget ID"
// @Param			category			query	string	false	"Filter by category ID. If set to the empty string, returns transactions without category"
// @Param			expense				query	bool	false	"Is the transaction an expense?"
// @Param			from				query	string	false	"Transactions at or after this RFC3339 timestamp"
// @Param			until				query	string	false	"Transactions before this RFC3339 timestamp"
// @Param			amount				query	string	false	"Filter by amount"
// @Param			amountLessOrEqual	query	string	false	"Amount less than or equal to this"
// @Param			amountMoreOrEqual	query	string	false	"Amount more than or equal to this"
// @Param			title				query	string	false	"Filter by title"
// @Param			description			query	string	false	"Filter by description"
// @Param			search				query	string	false	"Search for this text in title and description"
// @Param			offset				query	uint	false	"The offset of the first Transaction returned. Defaults to 0."
// @Param			limit				query	int		false	"Maximum number of Transactions to return. Defaults to 50."
func (co Controller) GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	err := c.ShouldBindQuery(&filter)
	if err != nil {
		fail(c, err)
		return
	}

	if !filter.From.IsZero() && !filter.Until.IsZero() && !filter.From.Before(filter.Until) {
		fail(c, errDateRangeInvalid)
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("transactions.date DESC, transactions.created_at DESC").
		Where(filter.model(), queryFields...)
	q = transactionFilters(q, filter, setFields)
	q = stringFilters(models.DB, q, setFields, "title", filter.Title, filter.Description, filter.Search)

	data, pagination, err := listResources(c, q, setFields, filter.Offset, filter.Limit, newTransaction)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data:       data,
		Pagination: pagination,
	})
}

// transactionFilters adds the date range, amount range and category filters.
//
// A category filter that is set to the empty string matches transactions
// without a category.
func transactionFilters(q *gorm.DB, filter TransactionQueryFilter, setFields []string) *gorm.DB {
	if !filter.From.IsZero() {
		q = q.Where("transactions.date >= ?", filter.From.UTC())
	}

	if !filter.Until.IsZero() {
		q = q.Where("transactions.date < ?", filter.Until.UTC())
	}

	if !filter.AmountLessOrEqual.IsZero() {
		q = q.Where("transactions.amount <= ?", filter.AmountLessOrEqual)
	}

	if !filter.AmountMoreOrEqual.IsZero() {
		q = q.Where("transactions.amount >= ?", filter.AmountMoreOrEqual)
	}

	switch {
	case filter.CategoryID != twigs_uuid.Nil:
		q = q.Where("transactions.category_id = ?", filter.CategoryID)
	case slices.Contains(setFields, "CategoryID"):
		q = q.Where("transactions.category_id IS NULL")
	}

	return q
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Failure		500	{object}	TransactionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v4/transactions/{id} [get]
func (co Controller) GetTransaction(c *gin.Context) {
	transaction, ok := find[models.Transaction](c)
	if !ok {
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Update transaction
// @Description	Updates an existing transaction. Only values to be updated need to be specified.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		404			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v4/transactions/{id} [patch]
func (co Controller) UpdateTransaction(c *gin.Context) {
	previous, transaction, ok := updateResource[models.Transaction, TransactionEditable](c)
	if !ok {
		return
	}

	co.Overviews.Invalidate(previous.BudgetID)
	if transaction.BudgetID != previous.BudgetID {
		co.Overviews.Invalidate(transaction.BudgetID)
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v4/transactions/{id} [delete]
func (co Controller) DeleteTransaction(c *gin.Context) {
	transaction, ok := deleteResource[models.Transaction](c)
	if ok {
		co.Overviews.Invalidate(transaction.BudgetID)
	}
}
