package models_test

import (
	"time"

	"github.com/fluxo-app/backend/internal/models"
	"github.com/fluxo-app/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestCashRegisterTrimWhitespace() {
	register := suite.createTestCashRegister(models.CashRegister{
		Name:        " Caixa 2024 ",
		Description: "\tDay to day transactions ",
	})

	suite.Assert().Equal("Caixa 2024", register.Name)
	suite.Assert().Equal("Day to day transactions", register.Description)
}

func (suite *TestSuiteStandard) TestCashRegisterAfterSave() {
	tests := []struct {
		name     string
		register models.CashRegister
		err      error
	}{
		{
			"Valid period",
			models.CashRegister{StartDate: types.NewMonth(2024, 1), EndDate: types.NewMonth(2024, 12)},
			nil,
		},
		{
			"End before start",
			models.CashRegister{StartDate: types.NewMonth(2024, 5), EndDate: types.NewMonth(2024, 4)},
			models.ErrCashRegisterPeriodInvalid,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			err := tt.register.AfterSave(&gorm.DB{})
			suite.Assert().ErrorIs(err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestCashRegisterClose() {
	register := suite.createTestCashRegister(models.CashRegister{Name: "Closable"})
	suite.Require().False(register.Closed())

	err := register.Close(models.DB)
	suite.Require().NoError(err)

	var reloaded models.CashRegister
	suite.Require().NoError(models.DB.First(&reloaded, register.ID).Error)
	suite.Assert().True(reloaded.Closed())

	// Closing is terminal, a second close must fail.
	err = reloaded.Close(models.DB)
	suite.Assert().ErrorIs(err, models.ErrCashRegisterAlreadyClosed)
}

func (suite *TestSuiteStandard) TestCashRegisterClosedRejectsEntries() {
	register := suite.createTestCashRegister(models.CashRegister{})
	category := suite.createTestCategory(models.Category{})
	party := suite.createTestParty(models.Party{})
	account := suite.createTestBankAccount(models.BankAccount{})

	suite.Require().NoError(register.Close(models.DB))
	suite.Require().NoError(models.DB.First(&register, register.ID).Error)

	err := models.DB.Create(&models.CashEntry{
		CashRegisterID: register.ID,
		CategoryID:     category.ID,
		PartyID:        party.ID,
		Type:           models.ExpenseEntry,
		PaymentType:    models.PaymentPix,
		Items: []models.CashEntryItem{
			{BankAccountID: account.ID, Amount: decimal.NewFromInt(10)},
		},
	}).Error

	suite.Assert().ErrorIs(err, models.ErrCashRegisterClosed)
}

func (suite *TestSuiteStandard) TestCashRegisterEntries() {
	register := suite.createTestCashRegister(models.CashRegister{})
	category := suite.createTestCategory(models.Category{})
	party := suite.createTestParty(models.Party{})
	account := suite.createTestBankAccount(models.BankAccount{})

	later := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	earlier := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)

	_ = suite.createTestCashEntry(models.CashEntry{
		CashRegisterID:  register.ID,
		CategoryID:      category.ID,
		PartyID:         party.ID,
		Description:     "Second",
		TransactionDate: later,
		Items: []models.CashEntryItem{
			{BankAccountID: account.ID, Amount: decimal.NewFromInt(20)},
		},
	})
	_ = suite.createTestCashEntry(models.CashEntry{
		CashRegisterID:  register.ID,
		CategoryID:      category.ID,
		PartyID:         party.ID,
		Description:     "First",
		TransactionDate: earlier,
		Items: []models.CashEntryItem{
			{BankAccountID: account.ID, Amount: decimal.NewFromInt(10)},
		},
	})

	entries, err := register.Entries(models.DB)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)

	// Ordered by transaction date, not insertion order
	suite.Assert().Equal("First", entries[0].Description)
	suite.Assert().Equal("Second", entries[1].Description)
}
