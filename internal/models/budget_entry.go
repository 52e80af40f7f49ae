package models

import (
	"errors"
	"strings"

	"github.com/fluxo-app/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetEntry is a planned income or expense line of a budget, with one
// value per month of the months it applies to.
type BudgetEntry struct {
	DefaultModel
	BudgetID    uuid.UUID          `json:"budgetId"`
	Budget      Budget             `json:"-"`
	Description string             `json:"description"`
	Type        EntryType          `json:"type"`
	CategoryID  uuid.UUID          `json:"categoryId"`
	Category    Category           `json:"-"`
	Tags        []Tag              `json:"tags" gorm:"many2many:budget_entry_tags"`
	Values      []BudgetEntryValue `json:"values"`
}

// BudgetEntryValue is the amount a budget entry plans for a single month.
type BudgetEntryValue struct {
	DefaultModel
	BudgetEntryID uuid.UUID       `json:"budgetEntryId"`
	Month         types.Month     `json:"month"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
}

var (
	ErrEntryDescriptionTooLong = errors.New("the description must not be longer than 40 characters")
	ErrEntryValuesEmpty        = errors.New("entries need at least one value")
	ErrEntryValueNegative      = errors.New("entry values must not be negative")
	ErrEntryValuesNotPositive  = errors.New("at least one entry value must be larger than zero")
	ErrEntryMonthOutOfRange    = errors.New("all entry months must be within the budget period")
	ErrEntryMonthDuplicate     = errors.New("each month can only appear once in the entry values")
)

func (e *BudgetEntry) BeforeSave(_ *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)
	return nil
}

func (e *BudgetEntry) BeforeCreate(tx *gorm.DB) error {
	err := e.DefaultModel.BeforeCreate(tx)
	if err != nil {
		return err
	}

	toSave := tx.Statement.Dest.(*BudgetEntry)
	return e.checkIntegrity(tx, *toSave)
}

// checkIntegrity verifies that the referenced resources exist and that
// every value month is within the budget period.
func (e *BudgetEntry) checkIntegrity(tx *gorm.DB, toSave BudgetEntry) error {
	var budget Budget
	err := tx.First(&budget, toSave.BudgetID).Error
	if err != nil {
		return err
	}

	err = tx.First(&Category{}, toSave.CategoryID).Error
	if err != nil {
		return err
	}

	for _, tag := range toSave.Tags {
		err = tx.First(&Tag{}, tag.ID).Error
		if err != nil {
			return err
		}
	}

	for _, value := range toSave.Values {
		if !budget.Contains(value.Month) {
			return ErrEntryMonthOutOfRange
		}
	}

	return nil
}

func (e *BudgetEntry) AfterSave(_ *gorm.DB) error {
	if len(e.Description) > 40 {
		return ErrEntryDescriptionTooLong
	}

	if !e.Type.Valid() {
		return ErrEntryTypeInvalid
	}

	if len(e.Values) == 0 {
		return ErrEntryValuesEmpty
	}

	months := make(map[string]bool, len(e.Values))
	positive := false
	for _, value := range e.Values {
		if months[value.Month.String()] {
			return ErrEntryMonthDuplicate
		}
		months[value.Month.String()] = true

		if value.Amount.IsNegative() {
			return ErrEntryValueNegative
		}

		if value.Amount.IsPositive() {
			positive = true
		}
	}

	if !positive {
		return ErrEntryValuesNotPositive
	}

	return nil
}

// Total returns the sum of all month values of the entry.
func (e BudgetEntry) Total() decimal.Decimal {
	total := decimal.Zero
	for _, value := range e.Values {
		total = total.Add(value.Amount)
	}

	return total
}
