package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/fluxo-app/backend/internal/controllers/v1"
	"github.com/fluxo-app/backend/internal/models"
	"github.com/fluxo-app/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cashEntryEnv groups the resources a cash entry references.
type cashEntryEnv struct {
	register v1.CashRegister
	category v1.Category
	party    v1.Party
	account  v1.BankAccount
}

func (suite *TestSuiteStandard) createTestCashEntryEnv() cashEntryEnv {
	return cashEntryEnv{
		register: suite.createTestCashRegister(v1.CashRegisterEditable{}),
		category: suite.createTestCategory(v1.CategoryEditable{}),
		party:    suite.createTestParty(v1.PartyEditable{}),
		account:  suite.createTestBankAccount(v1.BankAccountEditable{}),
	}
}

func (suite *TestSuiteStandard) createTestCashEntry(registerID uuid.UUID, editable v1.CashEntryEditable) v1.CashEntry {
	recorder := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("/v1/cash-registers/%s/entries", registerID), editable)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var response v1.CashEntryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	return *response.Data
}

func (suite *TestSuiteStandard) TestCashEntriesCreate() {
	env := suite.createTestCashEntryEnv()
	other := suite.createTestBankAccount(v1.BankAccountEditable{Bank: models.BankCresol})

	entry := suite.createTestCashEntry(env.register.ID, v1.CashEntryEditable{
		Description:     "Venue rental",
		Type:            models.ExpenseEntry,
		PaymentType:     models.PaymentPix,
		CategoryID:      env.category.ID,
		PartyID:         env.party.ID,
		TransactionDate: time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC),
		Items: []v1.CashEntryItemEditable{
			{BankAccountID: env.account.ID, Amount: decimal.NewFromFloat(120.25)},
			{BankAccountID: other.ID, Amount: decimal.NewFromFloat(79.75)},
		},
	})

	assert.True(suite.T(), entry.Amount.Equal(decimal.NewFromFloat(200)), entry.Amount.String())
	require.Len(suite.T(), entry.Items, 2)
}

func (suite *TestSuiteStandard) TestCashEntriesCreateInvalid() {
	env := suite.createTestCashEntryEnv()

	valid := func() v1.CashEntryEditable {
		return v1.CashEntryEditable{
			Description: "Valid",
			Type:        models.ExpenseEntry,
			PaymentType: models.PaymentPix,
			CategoryID:  env.category.ID,
			PartyID:     env.party.ID,
			Items:       []v1.CashEntryItemEditable{{BankAccountID: env.account.ID, Amount: decimal.NewFromFloat(10)}},
		}
	}

	tests := []struct {
		name   string
		modify func(*v1.CashEntryEditable)
		status int
	}{
		{"No items", func(e *v1.CashEntryEditable) { e.Items = nil }, http.StatusBadRequest},
		{"Zero amount item", func(e *v1.CashEntryEditable) { e.Items[0].Amount = decimal.Zero }, http.StatusBadRequest},
		{"Unknown payment type", func(e *v1.CashEntryEditable) { e.PaymentType = "cheque" }, http.StatusBadRequest},
		{"Party does not exist", func(e *v1.CashEntryEditable) { e.PartyID = uuid.New() }, http.StatusNotFound},
		{"Tag does not exist", func(e *v1.CashEntryEditable) { e.TagIDs = []uuid.UUID{uuid.New()} }, http.StatusNotFound},
		{"Bank account does not exist", func(e *v1.CashEntryEditable) { e.Items[0].BankAccountID = uuid.New() }, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			entry := valid()
			tt.modify(&entry)

			recorder := test.Request(t, http.MethodPost, fmt.Sprintf("/v1/cash-registers/%s/entries", env.register.ID), entry)
			test.AssertHTTPStatus(t, tt.status, &recorder)
		})
	}
}

func (suite *TestSuiteStandard) TestCashEntriesCreateUnknownTagNotPersisted() {
	env := suite.createTestCashEntryEnv()

	recorder := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("/v1/cash-registers/%s/entries", env.register.ID), v1.CashEntryEditable{
		Description: "Ghost tag",
		Type:        models.ExpenseEntry,
		PaymentType: models.PaymentPix,
		CategoryID:  env.category.ID,
		PartyID:     env.party.ID,
		TagIDs:      []uuid.UUID{uuid.New()},
		Items:       []v1.CashEntryItemEditable{{BankAccountID: env.account.ID, Amount: decimal.NewFromFloat(10)}},
	})
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)

	// The failed create must not leave a tag row behind
	recorder = test.Request(suite.T(), http.MethodGet, "/v1/tags", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.TagListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 0)
}

func (suite *TestSuiteStandard) TestCashEntriesCreateClosedRegister() {
	env := suite.createTestCashEntryEnv()
	suite.closeTestCashRegister(env.register.ID.String())

	recorder := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("/v1/cash-registers/%s/entries", env.register.ID), v1.CashEntryEditable{
		Description: "Too late",
		Type:        models.ExpenseEntry,
		PaymentType: models.PaymentPix,
		CategoryID:  env.category.ID,
		PartyID:     env.party.ID,
		Items:       []v1.CashEntryItemEditable{{BankAccountID: env.account.ID, Amount: decimal.NewFromFloat(10)}},
	})

	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)

	var response v1.CashEntryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Contains(suite.T(), *response.Error, "cash register is closed")
}

func (suite *TestSuiteStandard) TestCashEntriesGet() {
	env := suite.createTestCashEntryEnv()

	_ = suite.createTestCashEntry(env.register.ID, v1.CashEntryEditable{
		Description:     "Donation",
		Type:            models.IncomeEntry,
		PaymentType:     models.PaymentPix,
		CategoryID:      env.category.ID,
		PartyID:         env.party.ID,
		TransactionDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		Items:           []v1.CashEntryItemEditable{{BankAccountID: env.account.ID, Amount: decimal.NewFromFloat(300)}},
	})
	_ = suite.createTestCashEntry(env.register.ID, v1.CashEntryEditable{
		Description:     "Utilities",
		Type:            models.ExpenseEntry,
		PaymentType:     models.PaymentBoleto,
		CategoryID:      env.category.ID,
		PartyID:         env.party.ID,
		TransactionDate: time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
		Items:           []v1.CashEntryItemEditable{{BankAccountID: env.account.ID, Amount: decimal.NewFromFloat(150)}},
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All entries", "", 2},
		{"Incomes only", "type=income", 1},
		{"By payment type", "paymentType=boleto", 1},
		{"By month", "month=2024-02", 1},
		{"Month without entries", "month=2024-06", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("/v1/cash-registers/%s/entries?%s", env.register.ID, tt.query), nil)
			test.AssertHTTPStatus(t, http.StatusOK, &recorder)

			var response v1.CashEntryListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestCashEntriesGetRegisterNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/cash-registers/9c8a3b77-2a2f-4f4a-b6f8-8c2ee29c0f6d/entries", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}
