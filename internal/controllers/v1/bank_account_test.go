package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/fluxo-app/backend/internal/controllers/v1"
	"github.com/fluxo-app/backend/internal/models"
	"github.com/fluxo-app/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBankAccountsCreate() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/bank-accounts", v1.BankAccountEditable{
		Name:           "Conta corrente",
		Number:         "12345-6",
		BranchCode:     "0001",
		Bank:           models.BankCresol,
		CurrentBalance: decimal.NewFromFloat(1523.75),
	})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var response v1.BankAccountResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), models.BankCresol, response.Data.Bank)
	assert.True(suite.T(), response.Data.CurrentBalance.Equal(decimal.NewFromFloat(1523.75)))
}

func (suite *TestSuiteStandard) TestBankAccountsCreateInvalidBank() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/bank-accounts", v1.BankAccountEditable{
		Name:   "Unknown bank",
		Number: "1",
		Bank:   "NOT_A_BANK",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestBankAccountsCreateDuplicate() {
	editable := v1.BankAccountEditable{
		Name:       "First",
		Number:     "12345-6",
		BranchCode: "0001",
		Bank:       models.BankBancoDoBrasil,
	}
	_ = suite.createTestBankAccount(editable)

	editable.Name = "Second"
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/bank-accounts", editable)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)

	var response v1.BankAccountResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Contains(suite.T(), *response.Error, "already exists")

	// The same number at another bank is fine
	editable.Bank = models.BankCresol
	_ = suite.createTestBankAccount(editable)
}

func (suite *TestSuiteStandard) TestBankAccountsGetFilter() {
	_ = suite.createTestBankAccount(v1.BankAccountEditable{Name: "Movimento", Bank: models.BankBancoDoBrasil})
	_ = suite.createTestBankAccount(v1.BankAccountEditable{Name: "Poupança", Bank: models.BankCresol})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"No filter", "", 2},
		{"Name", "name=Movimento", 1},
		{"Bank", "bank=CRESOL", 1},
		{"Search", "search=poup", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("/v1/bank-accounts?%s", tt.query), nil)
			test.AssertHTTPStatus(t, http.StatusOK, &recorder)

			var response v1.BankAccountListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestBankAccountsUpdate() {
	account := suite.createTestBankAccount(v1.BankAccountEditable{Name: "Before"})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/bank-accounts/%s", account.ID), map[string]any{
		"currentBalance": "2000.00",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.BankAccountResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), "Before", response.Data.Name)
	assert.True(suite.T(), response.Data.CurrentBalance.Equal(decimal.NewFromFloat(2000)))
}

func (suite *TestSuiteStandard) TestBankAccountsDelete() {
	account := suite.createTestBankAccount(v1.BankAccountEditable{Name: "To be deleted"})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/bank-accounts/%s", account.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/bank-accounts/%s", account.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}
