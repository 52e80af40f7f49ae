package models_test

import (
	"github.com/fluxo-app/backend/internal/models"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestBankAccountTrimWhitespace() {
	account := suite.createTestBankAccount(models.BankAccount{
		Name:       " Conta corrente ",
		Number:     " 12345-6 ",
		BranchCode: " 0001 ",
	})

	suite.Assert().Equal("Conta corrente", account.Name)
	suite.Assert().Equal("12345-6", account.Number)
	suite.Assert().Equal("0001", account.BranchCode)
}

func (suite *TestSuiteStandard) TestBankAccountAfterSave() {
	tests := []struct {
		name    string
		account models.BankAccount
		err     error
	}{
		{"Banco do Brasil", models.BankAccount{Bank: models.BankBancoDoBrasil}, nil},
		{"Cresol", models.BankAccount{Bank: models.BankCresol}, nil},
		{"Empty bank", models.BankAccount{}, models.ErrBankInvalid},
		{"Unknown bank", models.BankAccount{Bank: "NUBANK"}, models.ErrBankInvalid},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			err := tt.account.AfterSave(&gorm.DB{})
			suite.Assert().ErrorIs(err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestBankAccountDuplicateIdentity() {
	_ = suite.createTestBankAccount(models.BankAccount{
		Number:     "9876",
		BranchCode: "0001",
		Bank:       models.BankCresol,
	})

	err := models.DB.Create(&models.BankAccount{
		Name:       "Different name, same identity",
		Number:     "9876",
		BranchCode: "0001",
		Bank:       models.BankCresol,
	}).Error

	suite.Assert().ErrorIs(err, models.ErrBankAccountNotUnique)
}

func (suite *TestSuiteStandard) TestBankAccountSameNumberOtherBank() {
	_ = suite.createTestBankAccount(models.BankAccount{
		Number:     "555",
		BranchCode: "0001",
		Bank:       models.BankBancoDoBrasil,
	})

	err := models.DB.Create(&models.BankAccount{
		Number:     "555",
		BranchCode: "0001",
		Bank:       models.BankCresol,
	}).Error

	suite.Assert().NoError(err)
}
