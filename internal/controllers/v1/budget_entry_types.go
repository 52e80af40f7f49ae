package v1

import (
	"github.com/fluxo-app/backend/internal/models"
	"github.com/fluxo-app/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetEntryValueEditable is the amount planned for a single month.
type BudgetEntryValueEditable struct {
	Month  types.Month     `json:"month" example:"2024-03"` // Month the value is planned for
	Amount decimal.Decimal `json:"amount" example:"150.00"` // Planned amount
}

// BudgetEntryEditable represents all user configurable parameters
type BudgetEntryEditable struct {
	Description string                     `json:"description" example:"Monthly venue rent" default:""` // Description of the entry
	Type        models.EntryType           `json:"type" example:"expense"`                               // income or expense
	CategoryID  uuid.UUID                  `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the category of the entry
	TagIDs      []uuid.UUID                `json:"tagIds"`                                               // IDs of the tags attached to the entry
	Values      []BudgetEntryValueEditable `json:"values"`                                               // One planned value per month
}

func (editable BudgetEntryEditable) model(budgetID uuid.UUID) models.BudgetEntry {
	entry := models.BudgetEntry{
		BudgetID:    budgetID,
		Description: editable.Description,
		Type:        editable.Type,
		CategoryID:  editable.CategoryID,
	}

	for _, id := range editable.TagIDs {
		entry.Tags = append(entry.Tags, models.Tag{DefaultModel: models.DefaultModel{ID: id}})
	}

	for _, value := range editable.Values {
		entry.Values = append(entry.Values, models.BudgetEntryValue{
			Month:  value.Month,
			Amount: value.Amount,
		})
	}

	return entry
}

type BudgetEntry struct {
	models.DefaultModel
	BudgetID    uuid.UUID                  `json:"budgetId"`
	Description string                     `json:"description"`
	Type        models.EntryType           `json:"type"`
	CategoryID  uuid.UUID                  `json:"categoryId"`
	Tags        []Tag                      `json:"tags"`
	Values      []BudgetEntryValueEditable `json:"values"`

	// The total is computed over all values
	Total decimal.Decimal `json:"total" example:"1800.00"`
}

func newBudgetEntry(model models.BudgetEntry) BudgetEntry {
	entry := BudgetEntry{
		DefaultModel: model.DefaultModel,
		BudgetID:     model.BudgetID,
		Description:  model.Description,
		Type:         model.Type,
		CategoryID:   model.CategoryID,
		Tags:         make([]Tag, 0),
		Values:       make([]BudgetEntryValueEditable, 0),
		Total:        model.Total(),
	}

	for _, tag := range model.Tags {
		entry.Tags = append(entry.Tags, newTag(tag))
	}

	for _, value := range model.Values {
		entry.Values = append(entry.Values, BudgetEntryValueEditable{
			Month:  value.Month,
			Amount: value.Amount,
		})
	}

	return entry
}

type BudgetEntryResponse struct {
	Data  *BudgetEntry `json:"data"`                                                          // Data for the entry
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetEntryListResponse struct {
	Data  []BudgetEntry `json:"data"`                                                          // List of entries
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetEntryQueryFilter struct {
	Type  string `form:"type"`  // By entry type
	Month string `form:"month"` // Only entries with a value in this month, in YYYY-MM format
}

// CashFlowRow is the aggregation of all entry values of one month.
type CashFlowRow struct {
	Month         types.Month     `json:"month" example:"2024-03"`        // Month the row aggregates
	TotalIncomes  decimal.Decimal `json:"totalIncomes" example:"2500.00"` // Sum of all income values of the month
	TotalExpenses decimal.Decimal `json:"totalExpenses" example:"1800.00"` // Sum of all expense values of the month
	Balance       decimal.Decimal `json:"balance" example:"700.00"`       // Incomes minus expenses
}

type CashFlowResponse struct {
	Data  []CashFlowRow `json:"data"`                                                          // One row per month of the budget period
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
