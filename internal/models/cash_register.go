package models

import (
	"errors"
	"strings"
	"time"

	"github.com/fluxo-app/backend/internal/types"
	"gorm.io/gorm"
)

// CashRegister is a container for cash entries over a period.
//
// A register can be closed. Closing is terminal: a closed register
// rejects further entry creation and cannot be reopened.
type CashRegister struct {
	DefaultModel
	Name        string      `json:"name"`
	Description string      `json:"description"`
	StartDate   types.Month `json:"startDate"`
	EndDate     types.Month `json:"endDate"`
	ClosedAt    *time.Time  `json:"closedAt"`
}

var (
	ErrCashRegisterPeriodInvalid = errors.New("the cash register end month must not be before the start month")
	ErrCashRegisterClosed        = errors.New("this cash register is closed, no entries can be added to it")
	ErrCashRegisterAlreadyClosed = errors.New("this cash register is already closed")
)

func (r *CashRegister) BeforeSave(_ *gorm.DB) error {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)

	return nil
}

func (r *CashRegister) AfterSave(_ *gorm.DB) error {
	if r.EndDate.Before(r.StartDate) {
		return ErrCashRegisterPeriodInvalid
	}

	return nil
}

// Closed reports whether the register has been closed.
func (r CashRegister) Closed() bool {
	return r.ClosedAt != nil
}

// Close marks the register as closed. It errors when the register is
// already closed since closing is irreversible.
func (r *CashRegister) Close(db *gorm.DB) error {
	if r.Closed() {
		return ErrCashRegisterAlreadyClosed
	}

	now := time.Now().In(time.UTC)
	return db.Model(r).Select("ClosedAt").Updates(CashRegister{ClosedAt: &now}).Error
}

// Entries returns all entries for the cash register.
func (r CashRegister) Entries(db *gorm.DB) ([]CashEntry, error) {
	var entries []CashEntry

	err := db.
		Preload("Items").
		Preload("Tags").
		Where(&CashEntry{CashRegisterID: r.ID}).
		Order("transaction_date ASC").
		Find(&entries).Error

	return entries, err
}
