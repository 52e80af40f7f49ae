package v1

import (
	"time"

	"github.com/fluxo-app/backend/internal/models"
	"github.com/fluxo-app/backend/internal/types"
)

// CashRegisterEditable represents all user configurable parameters
type CashRegisterEditable struct {
	Name        string      `json:"name" example:"Caixa 2024" default:""`                 // Name of the cash register
	Description string      `json:"description" example:"Day to day money" default:""` // Description of the cash register
	StartDate   types.Month `json:"startDate" example:"2024-01"`                          // First month of the register period
	EndDate     types.Month `json:"endDate" example:"2024-12"`                            // Last month of the register period
}

func (editable CashRegisterEditable) model() models.CashRegister {
	return models.CashRegister{
		Name:        editable.Name,
		Description: editable.Description,
		StartDate:   editable.StartDate,
		EndDate:     editable.EndDate,
	}
}

type CashRegister struct {
	models.DefaultModel
	CashRegisterEditable
	ClosedAt *time.Time `json:"closedAt"` // When the register was closed. Unset for open registers
}

func newCashRegister(model models.CashRegister) CashRegister {
	return CashRegister{
		DefaultModel: model.DefaultModel,
		CashRegisterEditable: CashRegisterEditable{
			Name:        model.Name,
			Description: model.Description,
			StartDate:   model.StartDate,
			EndDate:     model.EndDate,
		},
		ClosedAt: model.ClosedAt,
	}
}

type CashRegisterResponse struct {
	Data  *CashRegister `json:"data"`                                                          // Data for the cash register
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CashRegisterListResponse struct {
	Data       []CashRegister `json:"data"`                                                          // List of cash registers
	Error      *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                                    // Pagination information
}

type CashRegisterQueryFilter struct {
	Name        string `form:"name" filterField:"false"`        // By name
	Description string `form:"description" filterField:"false"` // By description
	Search      string `form:"search" filterField:"false"`      // Search for this text in name and description
	Closed      bool   `form:"closed" filterField:"false"`      // Only closed (true) or only open (false) registers
	Offset      uint   `form:"offset" filterField:"false"`      // The offset of the first register returned. Defaults to 0.
	Limit       int    `form:"limit" filterField:"false"`       // Maximum number of registers to return. Defaults to 50.
}

func (f CashRegisterQueryFilter) model() models.CashRegister {
	return models.CashRegister{}
}
