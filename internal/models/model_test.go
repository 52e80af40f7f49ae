package models_test

import (
	"time"

	"github.com/fluxo-app/backend/internal/models"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestDefaultModelIDSetOnCreate() {
	category := suite.createTestCategory(models.Category{})
	suite.Assert().NotEqual(uuid.Nil, category.ID)
}

func (suite *TestSuiteStandard) TestDefaultModelTimestampsUTC() {
	category := suite.createTestCategory(models.Category{})

	var reloaded models.Category
	err := models.DB.First(&reloaded, category.ID).Error
	suite.Require().NoError(err)

	suite.Assert().Equal(time.UTC, reloaded.CreatedAt.Location())
	suite.Assert().Equal(time.UTC, reloaded.UpdatedAt.Location())
}
