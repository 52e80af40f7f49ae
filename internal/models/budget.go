package models

import (
	"errors"
	"strings"

	"github.com/fluxo-app/backend/internal/types"
	"gorm.io/gorm"
)

// Budget represents a planning period.
//
// Its start and end months constrain the months that entries attached
// to it may use.
type Budget struct {
	DefaultModel
	Name        string      `json:"name"`
	Description string      `json:"description"`
	StartDate   types.Month `json:"startDate"`
	EndDate     types.Month `json:"endDate"`
}

var (
	ErrBudgetPeriodRequired = errors.New("budgets need a start and an end month")
	ErrBudgetPeriodInvalid  = errors.New("the budget end month must not be before the start month")
)

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Description = strings.TrimSpace(b.Description)

	return nil
}

func (b *Budget) AfterSave(_ *gorm.DB) error {
	if b.StartDate.IsZero() || b.EndDate.IsZero() {
		return ErrBudgetPeriodRequired
	}

	if b.EndDate.Before(b.StartDate) {
		return ErrBudgetPeriodInvalid
	}

	return nil
}

// Months returns all months of the budget period, in order.
func (b Budget) Months() []types.Month {
	return types.MonthsBetween(b.StartDate, b.EndDate)
}

// Contains reports whether a month is within the budget period.
func (b Budget) Contains(month types.Month) bool {
	return !month.Before(b.StartDate) && !month.After(b.EndDate)
}

// Entries returns all entries for the budget.
func (b Budget) Entries(db *gorm.DB) ([]BudgetEntry, error) {
	var entries []BudgetEntry

	err := db.
		Preload("Values").
		Preload("Tags").
		Where(&BudgetEntry{BudgetID: b.ID}).
		Order("created_at ASC").
		Find(&entries).Error

	return entries, err
}
