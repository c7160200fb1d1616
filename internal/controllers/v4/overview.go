package v4

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/twigs-app/backend/internal/httputil"
	"github.com/twigs-app/backend/internal/overview"
	"github.com/twigs-app/backend/internal/types"
)

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v4/budgets/{id}/overview [options]
func OptionsBudgetOverview(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get budget overview
// @Description	Returns the balance, the expected and actual income and expenses and their progress values for a budget
// @Description	and month. If the overview cannot be computed but has been computed before, the last known values are
// @Description	returned with "stale" set to true.
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetOverviewResponse
// @Failure		400		{object}	BudgetOverviewResponse
// @Failure		404		{object}	BudgetOverviewResponse
// @Failure		503		{object}	BudgetOverviewResponse
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			month	query		string	false	"The month in YYYY-MM format. Defaults to the current month"
// @Router			/v4/budgets/{id}/overview [get]
func (co Controller) GetBudgetOverview(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetOverviewResponse{
			Error: &s,
		})
		return
	}

	var query QueryMonth
	err = c.ShouldBindQuery(&query)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetOverviewResponse{
			Error: &s,
		})
		return
	}

	month := types.MonthOf(time.Now())
	if !query.Month.IsZero() {
		month = types.MonthOf(query.Month)
	}
	period := month.Period()

	o, err := co.Overviews.Refresh(c.Request.Context(), uri.ID.UUID, period)
	stale := false

	// Serve the last known good overview if the current one is unavailable
	if errors.Is(err, overview.ErrUnavailable) {
		latest, ok := co.Overviews.Latest(uri.ID.UUID, period)
		if ok {
			log.Warn().Str("request-id", requestid.Get(c)).Err(err).Str("budget", uri.ID.String()).Str("month", month.String()).Msg("serving stale overview")
			o, err, stale = latest, nil, true
		}
	}

	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetOverviewResponse{
			Error: &s,
		})
		return
	}

	data := newBudgetOverview(c, month, o, stale)
	c.JSON(http.StatusOK, BudgetOverviewResponse{Data: &data})
}
