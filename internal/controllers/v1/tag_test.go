package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/fluxo-app/backend/internal/controllers/v1"
	"github.com/fluxo-app/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTagsCreate() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/tags", v1.TagEditable{
		Name:        "recurring",
		Description: "Repeats every month",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var response v1.TagResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "recurring", response.Data.Name)
}

func (suite *TestSuiteStandard) TestTagsCreateDuplicateName() {
	_ = suite.createTestTag(v1.TagEditable{Name: "recurring"})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/tags", v1.TagEditable{Name: "recurring"})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)

	var response v1.TagResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "a tag with this name already exists", *response.Error)
}

func (suite *TestSuiteStandard) TestTagsUpdate() {
	tag := suite.createTestTag(v1.TagEditable{Name: "Before"})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/tags/%s", tag.ID), map[string]any{
		"name": "After",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.TagResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "After", response.Data.Name)
}

func (suite *TestSuiteStandard) TestTagsDelete() {
	tag := suite.createTestTag(v1.TagEditable{})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/tags/%s", tag.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/tags/%s", tag.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}
