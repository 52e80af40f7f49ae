package v1

import (
	"github.com/fluxo-app/backend/internal/models"
	"github.com/shopspring/decimal"
)

// BankAccountEditable represents all user configurable parameters
type BankAccountEditable struct {
	Name           string          `json:"name" example:"Conta corrente" default:""` // Name of the account
	Number         string          `json:"number" example:"12345-6" default:""`      // Account number at the bank
	BranchCode     string          `json:"branchCode" example:"0001" default:""`     // Branch the account belongs to
	Bank           models.Bank     `json:"bank" example:"CRESOL"`                    // Bank the account is held at
	CurrentBalance decimal.Decimal `json:"currentBalance" example:"1523.75"`         // Current balance of the account
}

func (editable BankAccountEditable) model() models.BankAccount {
	return models.BankAccount{
		Name:           editable.Name,
		Number:         editable.Number,
		BranchCode:     editable.BranchCode,
		Bank:           editable.Bank,
		CurrentBalance: editable.CurrentBalance,
	}
}

type BankAccount struct {
	models.DefaultModel
	BankAccountEditable
}

func newBankAccount(model models.BankAccount) BankAccount {
	return BankAccount{
		DefaultModel: model.DefaultModel,
		BankAccountEditable: BankAccountEditable{
			Name:           model.Name,
			Number:         model.Number,
			BranchCode:     model.BranchCode,
			Bank:           model.Bank,
			CurrentBalance: model.CurrentBalance,
		},
	}
}

type BankAccountResponse struct {
	Data  *BankAccount `json:"data"`                                                          // Data for the account
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BankAccountListResponse struct {
	Data       []BankAccount `json:"data"`                                                          // List of accounts
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type BankAccountQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // By name
	Bank   string `form:"bank"`                       // By bank
	Search string `form:"search" filterField:"false"` // Search for this text in the name
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first account returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of accounts to return. Defaults to 50.
}

func (f BankAccountQueryFilter) model() models.BankAccount {
	return models.BankAccount{
		Bank: models.Bank(f.Bank),
	}
}
