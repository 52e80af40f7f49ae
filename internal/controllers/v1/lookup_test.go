package v1_test

import (
	"net/http"
	"net/http/httptest"

	"github.com/fluxo-app/backend/internal/brasilapi"
	v1 "github.com/fluxo-app/backend/internal/controllers/v1"
	"github.com/fluxo-app/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withLookupServer points the lookup client at a local server for the
// duration of the test.
func (suite *TestSuiteStandard) withLookupServer(handler http.Handler) {
	server := httptest.NewServer(handler)
	suite.T().Cleanup(server.Close)

	previous := v1.LookupClient
	suite.T().Cleanup(func() { v1.LookupClient = previous })

	client := brasilapi.New()
	client.BaseURL = server.URL
	client.ViaCEPBaseURL = server.URL
	v1.LookupClient = client
}

func (suite *TestSuiteStandard) TestLookupStates() {
	suite.withLookupServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id": 41, "sigla": "PR", "nome": "Paraná"}]`))
	}))

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/lookup/states", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.StateListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "PR", response.Data[0].Code)
}

func (suite *TestSuiteStandard) TestLookupMunicipalities() {
	suite.withLookupServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(suite.T(), "/ibge/municipios/v1/PR", r.URL.Path)
		_, _ = w.Write([]byte(`[{"nome": "CURITIBA", "codigo_ibge": "4106902"}]`))
	}))

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/lookup/states/PR/municipalities", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.MunicipalityListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "CURITIBA", response.Data[0].Name)
}

func (suite *TestSuiteStandard) TestLookupZipCode() {
	suite.withLookupServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"cep": "80010-000", "state": "PR", "city": "Curitiba", "street": "Rua XV de Novembro"}`))
	}))

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/lookup/zip/80010000", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.AddressResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "Curitiba", response.Data.City)
}

func (suite *TestSuiteStandard) TestLookupUpstreamDown() {
	suite.withLookupServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/lookup/states", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusBadGateway, &recorder)
}
