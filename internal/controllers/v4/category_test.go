package v4_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	v4 "github.com/twigs-app/backend/internal/controllers/v4"
	"github.com/twigs-app/backend/test"
)

func (suite *TestSuiteStandard) createTestCategory(t *testing.T, c v4.CategoryEditable, expectedStatus ...int) v4.CategoryResponse {
	if c.BudgetID == uuid.Nil {
		c.BudgetID = createTestBudget(t, v4.BudgetEditable{Name: "Testing budget"}).Data.ID
	}

	if c.Title == "" {
		c.Title = "Testing category"
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v4/categories", []v4.CategoryEditable{c})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var a v4.CategoryCreateResponse
	test.DecodeResponse(t, &r, &a)

	if r.Code == http.StatusCreated {
		return a.Data[0]
	}

	return v4.CategoryResponse{}
}

func (suite *TestSuiteStandard) TestCategoriesCreateFails() {
	budget := createTestBudget(suite.T(), v4.BudgetEditable{})

	tests := []struct {
		name     string
		category v4.CategoryEditable
		status   int
	}{
		{"Budget does not exist", v4.CategoryEditable{BudgetID: uuid.New(), Title: "Rent"}, http.StatusBadRequest},
		{"Negative amount", v4.CategoryEditable{BudgetID: budget.Data.ID, Title: "Rent", Amount: decimal.NewFromInt(-10)}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v4/categories", []v4.CategoryEditable{tt.category})
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v4.CategoryCreateResponse
			test.DecodeResponse(t, &r, &response)
			assert.NotNil(t, response.Data[0].Error)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesGetFilter() {
	b1 := createTestBudget(suite.T(), v4.BudgetEditable{Name: "Household"})
	b2 := createTestBudget(suite.T(), v4.BudgetEditable{Name: "Holiday"})

	_ = suite.createTestCategory(suite.T(), v4.CategoryEditable{BudgetID: b1.Data.ID, Title: "Salary", Amount: decimal.NewFromInt(2000)})
	_ = suite.createTestCategory(suite.T(), v4.CategoryEditable{BudgetID: b1.Data.ID, Title: "Rent", Amount: decimal.NewFromInt(900), Expense: true})
	_ = suite.createTestCategory(suite.T(), v4.CategoryEditable{BudgetID: b1.Data.ID, Title: "Gym", Description: "Cancelled in May", Amount: decimal.NewFromInt(30), Expense: true, Archived: true})
	_ = suite.createTestCategory(suite.T(), v4.CategoryEditable{BudgetID: b2.Data.ID, Title: "Flights", Amount: decimal.NewFromInt(600), Expense: true})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Budget 1", fmt.Sprintf("budget=%s", b1.Data.ID), 3},
		{"Budget 2", fmt.Sprintf("budget=%s", b2.Data.ID), 1},
		{"Expense", "expense=true", 3},
		{"Income", "expense=false", 1},
		{"Archived", "archived=true", 1},
		{"Budget 1 expenses, not archived", fmt.Sprintf("budget=%s&expense=true&archived=false", b1.Data.ID), 1},
		{"Title", "title=en", 1},
		{"Description empty", "description=", 3},
		{"Search", "search=may", 1},
		{"Limit", "limit=2", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v4.CategoryListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v4/categories?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesGetInvalidFilter() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v4/categories?budget=NotAUUID", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v4/categories?expense=maybe", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoriesGetSingle() {
	category := suite.createTestCategory(suite.T(), v4.CategoryEditable{Amount: decimal.NewFromFloat(12.5)})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing category", category.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET No category with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"OPTIONS Existing category", category.Data.ID.String(), http.StatusNoContent, http.MethodOptions},
		{"OPTIONS No category with this ID", uuid.New().String(), http.StatusNotFound, http.MethodOptions},
		{"PATCH No category with this ID", uuid.New().String(), http.StatusNotFound, http.MethodPatch},
		{"DELETE No category with this ID", uuid.New().String(), http.StatusNotFound, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v4/categories/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.method == http.MethodOptions && tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}

	var response v4.CategoryResponse
	r := test.Request(suite.T(), http.MethodGet, category.Data.Links.Self, "")
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(decimal.NewFromFloat(12.5).Equal(response.Data.Amount), "Amount is %s", response.Data.Amount)
}

func (suite *TestSuiteStandard) TestCategoriesUpdate() {
	category := suite.createTestCategory(suite.T(), v4.CategoryEditable{Title: "Groceries", Amount: decimal.NewFromInt(300), Expense: true})

	r := test.Request(suite.T(), http.MethodPatch, category.Data.Links.Self, map[string]any{
		"archived": true,
		"amount":   "350",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v4.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(response.Data.Archived)
	suite.Assert().True(response.Data.Expense, "Fields not in the body must not be changed")
	suite.Assert().Equal("Groceries", response.Data.Title)
	suite.Assert().True(decimal.NewFromInt(350).Equal(response.Data.Amount))

	r = test.Request(suite.T(), http.MethodPatch, category.Data.Links.Self, map[string]any{
		"amount": "-1",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPatch, category.Data.Links.Self, map[string]any{
		"budgetId": uuid.New(),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoriesDelete() {
	category := suite.createTestCategory(suite.T(), v4.CategoryEditable{})

	r := test.Request(suite.T(), http.MethodDelete, category.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, category.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
