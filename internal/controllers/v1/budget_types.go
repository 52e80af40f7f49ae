package v1

import (
	"github.com/fluxo-app/backend/internal/models"
	"github.com/fluxo-app/backend/internal/types"
)

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	Name        string      `json:"name" example:"Orçamento 2024" default:""`          // Name of the budget
	Description string      `json:"description" example:"Planning for 2024" default:""` // Description of the budget
	StartDate   types.Month `json:"startDate" example:"2024-01"`                        // First month of the budget period
	EndDate     types.Month `json:"endDate" example:"2024-12"`                          // Last month of the budget period
}

func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		Name:        editable.Name,
		Description: editable.Description,
		StartDate:   editable.StartDate,
		EndDate:     editable.EndDate,
	}
}

type Budget struct {
	models.DefaultModel
	BudgetEditable
}

func newBudget(model models.Budget) Budget {
	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			Name:        model.Name,
			Description: model.Description,
			StartDate:   model.StartDate,
			EndDate:     model.EndDate,
		},
	}
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                          // Data for the Budget
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                          // List of Budgets
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BudgetQueryFilter struct {
	Name        string `form:"name" filterField:"false"`        // By name
	Description string `form:"description" filterField:"false"` // By description
	Search      string `form:"search" filterField:"false"`      // Search for this text in name and description
	Offset      uint   `form:"offset" filterField:"false"`      // The offset of the first Budget returned. Defaults to 0.
	Limit       int    `form:"limit" filterField:"false"`       // Maximum number of Budgets to return. Defaults to 50.
}

func (f BudgetQueryFilter) model() models.Budget {
	return models.Budget{}
}
