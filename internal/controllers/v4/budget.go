package v4

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/twigs-app/backend/internal/httputil"
	"github.com/twigs-app/backend/internal/models"
)

// RegisterBudgetRoutes registers the routes for budgets and their overviews
// with the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsBudgetList)
	r.GET("", co.GetBudgets)
	r.POST("", co.CreateBudgets)

	r.OPTIONS("/:id", OptionsBudgetDetail)
	r.GET("/:id", co.GetBudget)
	r.PATCH("/:id", co.UpdateBudget)
	r.DELETE("/:id", co.DeleteBudget)

	r.OPTIONS("/:id/overview", OptionsBudgetOverview)
	r.GET("/:id/overview", co.GetBudgetOverview)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v4/budgets [options]
func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v4/budgets/{id} [options]
func OptionsBudgetDetail(c *gin.Context) {
	resourceOptionsDetail[models.Budget](c)
}

// @Summary		Create budget
// @Description	Creates a new budget
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		201		{object}	BudgetCreateResponse
// @Failure		400		{object}	BudgetCreateResponse
// @Failure		500		{object}	BudgetCreateResponse
// @Param			budgets	body		[]BudgetEditable	true	"Budgets"
// @Router			/v4/budgets [post]
func (co Controller) CreateBudgets(c *gin.Context) {
	results, code, ok := createResources[models.Budget, BudgetEditable](c)
	if !ok {
		return
	}

	r := BudgetCreateResponse{}
	for _, result := range results {
		if result.err != nil {
			e := result.err.Error()
			r.Data = append(r.Data, BudgetResponse{Error: &e})
			continue
		}

		data := newBudget(c, result.resource)
		r.Data = append(r.Data, BudgetResponse{Data: &data})
	}

	c.JSON(code, r)
}

// @Summary		List budgets
// @Description	Returns a list of budgets
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetListResponse
// @Failure		500	{object}	BudgetListResponse
// @Router			/v4/budgets [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			description	query	string	false	"Filter by description"
// @Param			currency	query	string	false	"Filter by currency"
// @Param			search		query	string	false	"Search for this text in name and description"
// @Param			offset		query	uint	false	"The offset of the first Budget returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Budgets to return. Defaults to 50."
func (co Controller) GetBudgets(c *gin.Context) {
	var filter BudgetQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("name ASC").
		Where(filter.model(), queryFields...)
	q = stringFilters(models.DB, q, setFields, "name", filter.Name, filter.Description, filter.Search)

	data, pagination, err := listResources(c, q, setFields, filter.Offset, filter.Limit, newBudget)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, BudgetListResponse{
		Data:       data,
		Pagination: pagination,
	})
}

// @Summary		Get budget
// @Description	Returns a specific budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	BudgetResponse
// @Failure		404	{object}	BudgetResponse
// @Failure		500	{object}	BudgetResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v4/budgets/{id} [get]
func (co Controller) GetBudget(c *gin.Context) {
	budget, ok := find[models.Budget](c)
	if !ok {
		return
	}

	data := newBudget(c, budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// @Summary		Update budget
// @Description	Update an existing budget. Only values to be updated need to be specified.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		404		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v4/budgets/{id} [patch]
func (co Controller) UpdateBudget(c *gin.Context) {
	_, budget, ok := updateResource[models.Budget, BudgetEditable](c)
	if !ok {
		return
	}

	// Overviews carry the name and currency of the budget
	co.Overviews.Invalidate(budget.ID)

	data := newBudget(c, budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// @Summary		Delete budget
// @Description	Deletes a budget
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v4/budgets/{id} [delete]
func (co Controller) DeleteBudget(c *gin.Context) {
	budget, ok := deleteResource[models.Budget](c)
	if ok {
		co.Overviews.Invalidate(budget.ID)
	}
}
