package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/fluxo-app/backend/internal/controllers/v1"
	"github.com/fluxo-app/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCategoriesCreate() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/categories", v1.CategoryEditable{
		Name:        "Marketing",
		Description: "Everything promotion",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "Marketing", response.Data.Name)
}

func (suite *TestSuiteStandard) TestCategoriesCreateDuplicateName() {
	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Marketing"})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/categories", v1.CategoryEditable{Name: "Marketing"})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "a category with this name already exists", *response.Error)
}

func (suite *TestSuiteStandard) TestCategoriesGetFilter() {
	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Marketing", Description: "Everything promotion"})
	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Infrastructure", Description: "Venue and hardware"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"No filter", "", 2},
		{"Name", "name=Marketing", 1},
		{"Search", "search=venue", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("/v1/categories?%s", tt.query), nil)
			test.AssertHTTPStatus(t, http.StatusOK, &recorder)

			var response v1.CategoryListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesUpdate() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Before"})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/categories/%s", category.ID), map[string]any{
		"description": "Updated",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "Before", response.Data.Name)
	assert.Equal(suite.T(), "Updated", response.Data.Description)
}

func (suite *TestSuiteStandard) TestCategoriesDelete() {
	category := suite.createTestCategory(v1.CategoryEditable{})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/categories/%s", category.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/categories/%s", category.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}
