package models_test

import (
	"strings"
	"time"

	"github.com/fluxo-app/backend/internal/models"
	"github.com/fluxo-app/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestBudgetEntryAfterSave() {
	value := func(month time.Month, amount float64) models.BudgetEntryValue {
		return models.BudgetEntryValue{
			Month:  types.NewMonth(2024, month),
			Amount: decimal.NewFromFloat(amount),
		}
	}

	tests := []struct {
		name  string
		entry models.BudgetEntry
		err   error
	}{
		{
			"Valid entry",
			models.BudgetEntry{Type: models.IncomeEntry, Values: []models.BudgetEntryValue{value(1, 100)}},
			nil,
		},
		{
			"Zero value allowed next to positive one",
			models.BudgetEntry{Type: models.ExpenseEntry, Values: []models.BudgetEntryValue{value(1, 0), value(2, 50)}},
			nil,
		},
		{
			"Description too long",
			models.BudgetEntry{Description: strings.Repeat("x", 41), Type: models.IncomeEntry, Values: []models.BudgetEntryValue{value(1, 1)}},
			models.ErrEntryDescriptionTooLong,
		},
		{
			"Invalid type",
			models.BudgetEntry{Type: "investment", Values: []models.BudgetEntryValue{value(1, 1)}},
			models.ErrEntryTypeInvalid,
		},
		{
			"No values",
			models.BudgetEntry{Type: models.IncomeEntry},
			models.ErrEntryValuesEmpty,
		},
		{
			"Negative value",
			models.BudgetEntry{Type: models.IncomeEntry, Values: []models.BudgetEntryValue{value(1, 100), value(2, -1)}},
			models.ErrEntryValueNegative,
		},
		{
			"All values zero",
			models.BudgetEntry{Type: models.IncomeEntry, Values: []models.BudgetEntryValue{value(1, 0), value(2, 0)}},
			models.ErrEntryValuesNotPositive,
		},
		{
			"Duplicate month",
			models.BudgetEntry{Type: models.IncomeEntry, Values: []models.BudgetEntryValue{value(1, 100), value(1, 50)}},
			models.ErrEntryMonthDuplicate,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			err := tt.entry.AfterSave(&gorm.DB{})
			suite.Assert().ErrorIs(err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetEntryCreate() {
	budget := suite.createTestBudget(models.Budget{Name: "Plan"})
	category := suite.createTestCategory(models.Category{})

	entry := suite.createTestBudgetEntry(models.BudgetEntry{
		BudgetID:    budget.ID,
		CategoryID:  category.ID,
		Description: "Printer paper",
		Type:        models.ExpenseEntry,
		Values: []models.BudgetEntryValue{
			{Month: types.NewMonth(2024, 1), Amount: decimal.NewFromFloat(12.5)},
			{Month: types.NewMonth(2024, 2), Amount: decimal.NewFromFloat(7.5)},
		},
	})

	suite.Assert().True(entry.Total().Equal(decimal.NewFromInt(20)), "Total is %s, should be 20", entry.Total())

	var reloaded models.BudgetEntry
	err := models.DB.Preload("Values").First(&reloaded, entry.ID).Error
	suite.Require().NoError(err)
	suite.Assert().Len(reloaded.Values, 2)
}

func (suite *TestSuiteStandard) TestBudgetEntryCreateBudgetMissing() {
	category := suite.createTestCategory(models.Category{})

	err := models.DB.Create(&models.BudgetEntry{
		BudgetID:   uuid.New(),
		CategoryID: category.ID,
		Type:       models.IncomeEntry,
		Values: []models.BudgetEntryValue{
			{Month: types.NewMonth(2024, 1), Amount: decimal.NewFromInt(1)},
		},
	}).Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestBudgetEntryCreateCategoryMissing() {
	budget := suite.createTestBudget(models.Budget{})

	err := models.DB.Create(&models.BudgetEntry{
		BudgetID:   budget.ID,
		CategoryID: uuid.New(),
		Type:       models.IncomeEntry,
		Values: []models.BudgetEntryValue{
			{Month: types.NewMonth(2024, 1), Amount: decimal.NewFromInt(1)},
		},
	}).Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestBudgetEntryCreateTagMissing() {
	budget := suite.createTestBudget(models.Budget{})
	category := suite.createTestCategory(models.Category{})

	err := models.DB.Create(&models.BudgetEntry{
		BudgetID:   budget.ID,
		CategoryID: category.ID,
		Type:       models.IncomeEntry,
		Tags:       []models.Tag{{DefaultModel: models.DefaultModel{ID: uuid.New()}}},
		Values: []models.BudgetEntryValue{
			{Month: types.NewMonth(2024, 1), Amount: decimal.NewFromInt(1)},
		},
	}).Error

	suite.Require().ErrorIs(err, models.ErrResourceNotFound)

	// The association upsert must not have created a tag row
	var count int64
	suite.Require().NoError(models.DB.Model(&models.Tag{}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestBudgetEntryCreateMonthOutOfRange() {
	budget := suite.createTestBudget(models.Budget{
		StartDate: types.NewMonth(2024, 1),
		EndDate:   types.NewMonth(2024, 6),
	})
	category := suite.createTestCategory(models.Category{})

	err := models.DB.Create(&models.BudgetEntry{
		BudgetID:   budget.ID,
		CategoryID: category.ID,
		Type:       models.IncomeEntry,
		Values: []models.BudgetEntryValue{
			{Month: types.NewMonth(2024, 6), Amount: decimal.NewFromInt(1)},
			{Month: types.NewMonth(2024, 7), Amount: decimal.NewFromInt(1)},
		},
	}).Error

	suite.Assert().ErrorIs(err, models.ErrEntryMonthOutOfRange)
}

func (suite *TestSuiteStandard) TestBudgetEntryCreateInvalidNotPersisted() {
	budget := suite.createTestBudget(models.Budget{})
	category := suite.createTestCategory(models.Category{})

	err := models.DB.Create(&models.BudgetEntry{
		BudgetID:   budget.ID,
		CategoryID: category.ID,
		Type:       models.IncomeEntry,
		Values: []models.BudgetEntryValue{
			{Month: types.NewMonth(2024, 1), Amount: decimal.NewFromInt(-5)},
		},
	}).Error
	suite.Require().ErrorIs(err, models.ErrEntryValueNegative)

	var count int64
	suite.Require().NoError(models.DB.Model(&models.BudgetEntry{}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestBudgetEntryTags() {
	budget := suite.createTestBudget(models.Budget{})
	category := suite.createTestCategory(models.Category{})
	tag := suite.createTestTag(models.Tag{Name: "recurring"})

	entry := suite.createTestBudgetEntry(models.BudgetEntry{
		BudgetID:   budget.ID,
		CategoryID: category.ID,
		Tags:       []models.Tag{tag},
	})

	var reloaded models.BudgetEntry
	err := models.DB.Preload("Tags").First(&reloaded, entry.ID).Error
	suite.Require().NoError(err)
	suite.Require().Len(reloaded.Tags, 1)
	suite.Assert().Equal("recurring", reloaded.Tags[0].Name)
}
