package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/fluxo-app/backend/internal/controllers/v1"
	"github.com/fluxo-app/backend/internal/models"
	"github.com/fluxo-app/backend/internal/types"
	"github.com/fluxo-app/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) createTestBudgetEntry(budgetID uuid.UUID, editable v1.BudgetEntryEditable) v1.BudgetEntry {
	recorder := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("/v1/budgets/%s/entries", budgetID), editable)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var response v1.BudgetEntryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	return *response.Data
}

func (suite *TestSuiteStandard) TestBudgetEntriesCreate() {
	budget := suite.createTestBudget(v1.BudgetEditable{Name: "With entries"})
	category := suite.createTestCategory(v1.CategoryEditable{})
	tag := suite.createTestTag(v1.TagEditable{})

	entry := suite.createTestBudgetEntry(budget.ID, v1.BudgetEntryEditable{
		Description: "Venue rent",
		Type:        models.ExpenseEntry,
		CategoryID:  category.ID,
		TagIDs:      []uuid.UUID{tag.ID},
		Values: []v1.BudgetEntryValueEditable{
			{Month: types.NewMonth(2024, 1), Amount: decimal.NewFromFloat(1200)},
			{Month: types.NewMonth(2024, 2), Amount: decimal.NewFromFloat(1250.50)},
		},
	})

	assert.True(suite.T(), entry.Total.Equal(decimal.NewFromFloat(2450.50)), entry.Total.String())
	require.Len(suite.T(), entry.Tags, 1)
	assert.Equal(suite.T(), tag.ID, entry.Tags[0].ID)
}

func (suite *TestSuiteStandard) TestBudgetEntriesCreateInvalid() {
	budget := suite.createTestBudget(v1.BudgetEditable{Name: "Invalid entries"})
	category := suite.createTestCategory(v1.CategoryEditable{})

	tests := []struct {
		name   string
		entry  v1.BudgetEntryEditable
		status int
	}{
		{
			"No values",
			v1.BudgetEntryEditable{Description: "Empty", Type: models.IncomeEntry, CategoryID: category.ID},
			http.StatusBadRequest,
		},
		{
			"Month outside budget period",
			v1.BudgetEntryEditable{
				Description: "Out of range",
				Type:        models.IncomeEntry,
				CategoryID:  category.ID,
				Values:      []v1.BudgetEntryValueEditable{{Month: types.NewMonth(2025, 6), Amount: decimal.NewFromFloat(10)}},
			},
			http.StatusBadRequest,
		},
		{
			"Duplicate month",
			v1.BudgetEntryEditable{
				Description: "Twice January",
				Type:        models.IncomeEntry,
				CategoryID:  category.ID,
				Values: []v1.BudgetEntryValueEditable{
					{Month: types.NewMonth(2024, 1), Amount: decimal.NewFromFloat(10)},
					{Month: types.NewMonth(2024, 1), Amount: decimal.NewFromFloat(20)},
				},
			},
			http.StatusBadRequest,
		},
		{
			"Category does not exist",
			v1.BudgetEntryEditable{
				Description: "Ghost category",
				Type:        models.IncomeEntry,
				CategoryID:  uuid.New(),
				Values:      []v1.BudgetEntryValueEditable{{Month: types.NewMonth(2024, 3), Amount: decimal.NewFromFloat(10)}},
			},
			http.StatusNotFound,
		},
		{
			"Tag does not exist",
			v1.BudgetEntryEditable{
				Description: "Ghost tag",
				Type:        models.IncomeEntry,
				CategoryID:  category.ID,
				TagIDs:      []uuid.UUID{uuid.New()},
				Values:      []v1.BudgetEntryValueEditable{{Month: types.NewMonth(2024, 3), Amount: decimal.NewFromFloat(10)}},
			},
			http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, fmt.Sprintf("/v1/budgets/%s/entries", budget.ID), tt.entry)
			test.AssertHTTPStatus(t, tt.status, &recorder)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetEntriesCreateBudgetNotFound() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/budgets/5b95dcd1-70b4-4dfc-ae8d-a346f5d51d0c/entries", v1.BudgetEntryEditable{})
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}

func (suite *TestSuiteStandard) TestBudgetEntriesGet() {
	budget := suite.createTestBudget(v1.BudgetEditable{Name: "Listing"})
	category := suite.createTestCategory(v1.CategoryEditable{})

	_ = suite.createTestBudgetEntry(budget.ID, v1.BudgetEntryEditable{
		Description: "Ticket sales",
		Type:        models.IncomeEntry,
		CategoryID:  category.ID,
		Values:      []v1.BudgetEntryValueEditable{{Month: types.NewMonth(2024, 1), Amount: decimal.NewFromFloat(500)}},
	})
	_ = suite.createTestBudgetEntry(budget.ID, v1.BudgetEntryEditable{
		Description: "Cleaning",
		Type:        models.ExpenseEntry,
		CategoryID:  category.ID,
		Values:      []v1.BudgetEntryValueEditable{{Month: types.NewMonth(2024, 2), Amount: decimal.NewFromFloat(80)}},
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All entries", "", 2},
		{"Incomes only", "type=income", 1},
		{"Expenses only", "type=expense", 1},
		{"By month", "month=2024-02", 1},
		{"Month without values", "month=2024-05", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("/v1/budgets/%s/entries?%s", budget.ID, tt.query), nil)
			test.AssertHTTPStatus(t, http.StatusOK, &recorder)

			var response v1.BudgetEntryListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetEntriesGetInvalidMonth() {
	budget := suite.createTestBudget(v1.BudgetEditable{Name: "Bad month"})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/budgets/%s/entries?month=January", budget.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestBudgetCashFlow() {
	budget := suite.createTestBudget(v1.BudgetEditable{
		Name:      "Cash flow",
		StartDate: types.NewMonth(2024, 1),
		EndDate:   types.NewMonth(2024, 3),
	})
	category := suite.createTestCategory(v1.CategoryEditable{})

	_ = suite.createTestBudgetEntry(budget.ID, v1.BudgetEntryEditable{
		Description: "Sponsoring",
		Type:        models.IncomeEntry,
		CategoryID:  category.ID,
		Values: []v1.BudgetEntryValueEditable{
			{Month: types.NewMonth(2024, 1), Amount: decimal.NewFromFloat(1000)},
			{Month: types.NewMonth(2024, 2), Amount: decimal.NewFromFloat(1000)},
		},
	})
	_ = suite.createTestBudgetEntry(budget.ID, v1.BudgetEntryEditable{
		Description: "Rent",
		Type:        models.ExpenseEntry,
		CategoryID:  category.ID,
		Values: []v1.BudgetEntryValueEditable{
			{Month: types.NewMonth(2024, 2), Amount: decimal.NewFromFloat(600.50)},
		},
	})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/budgets/%s/cash-flow", budget.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.CashFlowResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// One row per month of the budget period
	require.Len(suite.T(), response.Data, 3)

	january := response.Data[0]
	assert.Equal(suite.T(), types.NewMonth(2024, 1), january.Month)
	assert.True(suite.T(), january.TotalIncomes.Equal(decimal.NewFromFloat(1000)), january.TotalIncomes.String())
	assert.True(suite.T(), january.Balance.Equal(decimal.NewFromFloat(1000)), january.Balance.String())

	february := response.Data[1]
	assert.True(suite.T(), february.TotalExpenses.Equal(decimal.NewFromFloat(600.50)), february.TotalExpenses.String())
	assert.True(suite.T(), february.Balance.Equal(decimal.NewFromFloat(399.50)), february.Balance.String())

	march := response.Data[2]
	assert.True(suite.T(), march.TotalIncomes.IsZero())
	assert.True(suite.T(), march.TotalExpenses.IsZero())
	assert.True(suite.T(), march.Balance.IsZero())
}

func (suite *TestSuiteStandard) TestBudgetCashFlowNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/budgets/4a0c0073-5f9c-4d5e-bd27-2bc29ff57ca9/cash-flow", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}
