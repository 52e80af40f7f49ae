package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Bank identifies the institution a bank account belongs to.
type Bank string

const (
	BankBancoDoBrasil Bank = "BANCO_DO_BRASIL"
	BankCresol        Bank = "CRESOL"
)

// Valid reports whether the bank is one of the supported institutions.
func (b Bank) Valid() bool {
	return b == BankBancoDoBrasil || b == BankCresol
}

// BankAccount is an account at a bank that cash entry items are booked
// against.
type BankAccount struct {
	DefaultModel
	Name           string          `json:"name"`
	Number         string          `json:"number" gorm:"uniqueIndex:bank_account_identity"`
	BranchCode     string          `json:"branchCode" gorm:"uniqueIndex:bank_account_identity"`
	Bank           Bank            `json:"bank" gorm:"uniqueIndex:bank_account_identity"`
	CurrentBalance decimal.Decimal `json:"currentBalance" gorm:"type:DECIMAL(20,8)"`
}

var (
	ErrBankInvalid          = errors.New("the specified bank is not supported")
	ErrBankAccountNotUnique = errors.New("a bank account with this bank, branch and number already exists")
)

func (a *BankAccount) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Number = strings.TrimSpace(a.Number)
	a.BranchCode = strings.TrimSpace(a.BranchCode)

	return nil
}

func (a *BankAccount) AfterSave(_ *gorm.DB) error {
	if !a.Bank.Valid() {
		return ErrBankInvalid
	}

	return nil
}
