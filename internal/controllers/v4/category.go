package v4

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/twigs-app/backend/internal/httputil"
	"github.com/twigs-app/backend/internal/models"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCategoryList)
	r.GET("", co.GetCategories)
	r.POST("", co.CreateCategories)

	r.OPTIONS("/:id", OptionsCategoryDetail)
	r.GET("/:id", co.GetCategory)
	r.PATCH("/:id", co.UpdateCategory)
	r.DELETE("/:id", co.DeleteCategory)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v4/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v4/categories/{id} [options]
func OptionsCategoryDetail(c *gin.Context) {
	resourceOptionsDetail[models.Category](c)
}

// @Summary		Create category
// @Description	Creates a new category
// @Tags			Categories
// @Produce		json
// @Success		201			{object}	CategoryCreateResponse
// @Failure		400			{object}	CategoryCreateResponse
// @Failure		404			{object}	CategoryCreateResponse
// @Failure		500			{object}	CategoryCreateResponse
// @Param			categories	body		[]CategoryEditable	true	"Categories"
// @Router			/v4/categories [post]
func (co Controller) CreateCategories(c *gin.Context) {
	results, code, ok := createResources[models.Category, CategoryEditable](c)
	if !ok {
		return
	}

	r := CategoryCreateResponse{}
	for _, result := range results {
		if result.err != nil {
			e := result.err.Error()
			r.Data = append(r.Data, CategoryResponse{Error: &e})
			continue
		}

		// New categories change the expected amounts of their budget
		co.Overviews.Invalidate(result.resource.BudgetID)

		data := newCategory(c, result.resource)
		r.Data = append(r.Data, CategoryResponse{Data: &data})
	}

	c.JSON(code, r)
}

// @Summary		Get categories
// @Description	Returns a list of categories
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		400	{object}	CategoryListResponse
// @Failure		500	{object}	CategoryListResponse
// @Router			/v4/categories [get]
// @Param			title		query	string	false	"Filter by title"
// @Param			description	query	string	false	"Filter by description"
// @Param			budget		query	string	false	"Filter by budget ID"
// @Param			expense		query	bool	false	"Is the category an expense category?"
// @Param			archived	query	bool	false	"Is the category archived?"
// @Param			search		query	string	false	"Search for this text in title and description"
// @Param			offset		query	uint	false	"The offset of the first Category returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Categories to return. Defaults to 50."
func (co Controller) GetCategories(c *gin.Context) {
	var filter CategoryQueryFilter
	err := c.ShouldBindQuery(&filter)
	if err != nil {
		fail(c, err)
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("title ASC").
		Where(filter.model(), queryFields...)
	q = stringFilters(models.DB, q, setFields, "title", filter.Title, filter.Description, filter.Search)

	data, pagination, err := listResources(c, q, setFields, filter.Offset, filter.Limit, newCategory)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoryListResponse{
		Data:       data,
		Pagination: pagination,
	})
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryResponse
// @Failure		400	{object}	CategoryResponse
// @Failure		404	{object}	CategoryResponse
// @Failure		500	{object}	CategoryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v4/categories/{id} [get]
func (co Controller) GetCategory(c *gin.Context) {
	category, ok := find[models.Category](c)
	if !ok {
		return
	}

	data := newCategory(c, category)
	c.JSON(http.StatusOK, CategoryResponse{Data: &data})
}

// @Summary		Update category
// @Description	Update an existing category. Only values to be updated need to be specified.
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		404			{object}	CategoryResponse
// @Failure		500			{object}	CategoryResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v4/categories/{id} [patch]
func (co Controller) UpdateCategory(c *gin.Context) {
	previous, category, ok := updateResource[models.Category, CategoryEditable](c)
	if !ok {
		return
	}

	co.Overviews.Invalidate(previous.BudgetID)
	if category.BudgetID != previous.BudgetID {
		co.Overviews.Invalidate(category.BudgetID)
	}

	data := newCategory(c, category)
	c.JSON(http.StatusOK, CategoryResponse{Data: &data})
}

// @Summary		Delete category
// @Description	Deletes a category
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v4/categories/{id} [delete]
func (co Controller) DeleteCategory(c *gin.Context) {
	category, ok := deleteResource[models.Category](c)
	if ok {
		co.Overviews.Invalidate(category.BudgetID)
	}
}
