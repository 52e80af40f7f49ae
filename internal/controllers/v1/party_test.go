package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/fluxo-app/backend/internal/controllers/v1"
	"github.com/fluxo-app/backend/internal/models"
	"github.com/fluxo-app/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestPartiesCreate() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/parties", v1.PartyEditable{
		Name:     "Fornecedora de Eventos Ltda",
		Document: "12.345.678/0001-90",
		Email:    "contact@example.com",
		Types:    []models.PartyKind{models.PartySupplier, models.PartySponsor},
		Address: models.Address{
			ZipCode: "80010-000",
			State:   "PR",
			City:    "Curitiba",
			Street:  "Rua XV de Novembro",
		},
	})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var response v1.PartyResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data.Types, 2)
	assert.Equal(suite.T(), "Curitiba", response.Data.Address.City)
}

func (suite *TestSuiteStandard) TestPartiesCreateInvalidType() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/parties", v1.PartyEditable{
		Name:  "Invalid",
		Types: []models.PartyKind{"shareholder"},
	})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestPartiesGetFilter() {
	_ = suite.createTestParty(v1.PartyEditable{
		Name:     "Fornecedora de Eventos Ltda",
		Document: "12.345.678/0001-90",
		Types:    []models.PartyKind{models.PartySupplier},
	})
	_ = suite.createTestParty(v1.PartyEditable{
		Name:     "Patrocinadora SA",
		Document: "98.765.432/0001-10",
		Types:    []models.PartyKind{models.PartySponsor, models.PartyCustomer},
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"No filter", "", 2},
		{"Name", "name=Patrocinadora SA", 1},
		{"Document", "document=12.345.678%2F0001-90", 1},
		{"Type supplier", "type=supplier", 1},
		{"Type sponsor", "type=sponsor", 1},
		{"Type without matches", "type=collaborator", 0},
		{"Search by document", "search=98.765", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("/v1/parties?%s", tt.query), nil)
			test.AssertHTTPStatus(t, http.StatusOK, &recorder)

			var response v1.PartyListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestPartiesUpdate() {
	party := suite.createTestParty(v1.PartyEditable{Name: "Before"})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/parties/%s", party.ID), map[string]any{
		"phoneNumber": "+55 41 99999-0000",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.PartyResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "Before", response.Data.Name)
	assert.Equal(suite.T(), "+55 41 99999-0000", response.Data.PhoneNumber)
}

func (suite *TestSuiteStandard) TestPartiesDelete() {
	party := suite.createTestParty(v1.PartyEditable{})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/parties/%s", party.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/parties/%s", party.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}
