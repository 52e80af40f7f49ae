package models_test

import (
	"github.com/fluxo-app/backend/internal/models"
	"github.com/fluxo-app/backend/internal/types"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestBudgetTrimWhitespace() {
	name := " Operational budget 2024\t"
	description := "  Everything we plan to spend this year "

	budget := suite.createTestBudget(models.Budget{
		Name:        name,
		Description: description,
	})

	suite.Assert().Equal("Operational budget 2024", budget.Name)
	suite.Assert().Equal("Everything we plan to spend this year", budget.Description)
}

func (suite *TestSuiteStandard) TestBudgetAfterSave() {
	tests := []struct {
		name   string
		budget models.Budget
		err    error
	}{
		{
			"Valid period",
			models.Budget{StartDate: types.NewMonth(2024, 1), EndDate: types.NewMonth(2024, 12)},
			nil,
		},
		{
			"Single month period",
			models.Budget{StartDate: types.NewMonth(2024, 3), EndDate: types.NewMonth(2024, 3)},
			nil,
		},
		{
			"Missing start",
			models.Budget{EndDate: types.NewMonth(2024, 12)},
			models.ErrBudgetPeriodRequired,
		},
		{
			"Missing end",
			models.Budget{StartDate: types.NewMonth(2024, 1)},
			models.ErrBudgetPeriodRequired,
		},
		{
			"End before start",
			models.Budget{StartDate: types.NewMonth(2024, 6), EndDate: types.NewMonth(2024, 1)},
			models.ErrBudgetPeriodInvalid,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			err := tt.budget.AfterSave(&gorm.DB{})
			suite.Assert().ErrorIs(err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetMonths() {
	budget := models.Budget{
		StartDate: types.NewMonth(2024, 11),
		EndDate:   types.NewMonth(2025, 2),
	}

	months := budget.Months()
	suite.Require().Len(months, 4)
	suite.Assert().Equal(types.NewMonth(2024, 11), months[0])
	suite.Assert().Equal(types.NewMonth(2025, 2), months[3])
}

func (suite *TestSuiteStandard) TestBudgetContains() {
	budget := models.Budget{
		StartDate: types.NewMonth(2024, 3),
		EndDate:   types.NewMonth(2024, 6),
	}

	suite.Assert().True(budget.Contains(types.NewMonth(2024, 3)))
	suite.Assert().True(budget.Contains(types.NewMonth(2024, 6)))
	suite.Assert().False(budget.Contains(types.NewMonth(2024, 2)))
	suite.Assert().False(budget.Contains(types.NewMonth(2024, 7)))
}

func (suite *TestSuiteStandard) TestBudgetEntries() {
	budget := suite.createTestBudget(models.Budget{Name: "Entries test"})
	category := suite.createTestCategory(models.Category{})

	_ = suite.createTestBudgetEntry(models.BudgetEntry{
		BudgetID:   budget.ID,
		CategoryID: category.ID,
	})
	_ = suite.createTestBudgetEntry(models.BudgetEntry{
		BudgetID:   budget.ID,
		CategoryID: category.ID,
	})

	entries, err := budget.Entries(models.DB)
	suite.Require().NoError(err)
	suite.Assert().Len(entries, 2)
	suite.Assert().Len(entries[0].Values, 1)
}
