package models_test

import (
	"github.com/fluxo-app/backend/internal/models"
)

func (suite *TestSuiteStandard) TestCategoryTrimWhitespace() {
	category := suite.createTestCategory(models.Category{
		Name:        " Office supplies ",
		Description: " Pens, paper and the like ",
	})

	suite.Assert().Equal("Office supplies", category.Name)
	suite.Assert().Equal("Pens, paper and the like", category.Description)
}

func (suite *TestSuiteStandard) TestCategoryDuplicateName() {
	_ = suite.createTestCategory(models.Category{Name: "Utilities"})

	err := models.DB.Create(&models.Category{Name: "Utilities"}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryNameNotUnique)
}

func (suite *TestSuiteStandard) TestTagTrimWhitespace() {
	tag := suite.createTestTag(models.Tag{Name: " urgent "})
	suite.Assert().Equal("urgent", tag.Name)
}

func (suite *TestSuiteStandard) TestTagDuplicateName() {
	_ = suite.createTestTag(models.Tag{Name: "recurring"})

	err := models.DB.Create(&models.Tag{Name: "recurring"}).Error
	suite.Assert().ErrorIs(err, models.ErrTagNameNotUnique)
}
