package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CashEntry is a single transaction in a cash register. Its amount is
// split across one or more bank accounts via its items.
type CashEntry struct {
	DefaultModel
	CashRegisterID  uuid.UUID       `json:"cashRegisterId"`
	CashRegister    CashRegister    `json:"-"`
	Description     string          `json:"description"`
	Type            EntryType       `json:"type"`
	PaymentType     PaymentType     `json:"paymentType"`
	CategoryID      uuid.UUID       `json:"categoryId"`
	Category        Category        `json:"-"`
	PartyID         uuid.UUID       `json:"partyId"`
	Party           Party           `json:"-"`
	TransactionDate time.Time       `json:"transactionDate"`
	Tags            []Tag           `json:"tags" gorm:"many2many:cash_entry_tags"`
	Items           []CashEntryItem `json:"items"`
}

// CashEntryItem is one slice of a cash entry's amount, booked against a
// specific bank account.
type CashEntryItem struct {
	DefaultModel
	CashEntryID   uuid.UUID       `json:"cashEntryId"`
	BankAccountID uuid.UUID       `json:"bankAccountId"`
	BankAccount   BankAccount     `json:"-"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
}

var (
	ErrEntryItemsEmpty            = errors.New("entries need at least one item")
	ErrEntryItemAmountNotPositive = errors.New("all item amounts must be larger than zero")
)

func (e *CashEntry) BeforeSave(_ *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)

	if e.TransactionDate.IsZero() {
		e.TransactionDate = time.Now().In(time.UTC)
	} else {
		e.TransactionDate = e.TransactionDate.In(time.UTC)
	}

	return nil
}

// AfterFind updates the transaction date to use UTC as timezone, not +0000.
func (e *CashEntry) AfterFind(_ *gorm.DB) error {
	e.TransactionDate = e.TransactionDate.In(time.UTC)
	return nil
}

func (e *CashEntry) BeforeCreate(tx *gorm.DB) error {
	err := e.DefaultModel.BeforeCreate(tx)
	if err != nil {
		return err
	}

	toSave := tx.Statement.Dest.(*CashEntry)
	return e.checkIntegrity(tx, *toSave)
}

// checkIntegrity verifies that the referenced resources exist and that
// the cash register still accepts entries.
func (e *CashEntry) checkIntegrity(tx *gorm.DB, toSave CashEntry) error {
	var register CashRegister
	err := tx.First(&register, toSave.CashRegisterID).Error
	if err != nil {
		return err
	}

	if register.Closed() {
		return ErrCashRegisterClosed
	}

	err = tx.First(&Category{}, toSave.CategoryID).Error
	if err != nil {
		return err
	}

	err = tx.First(&Party{}, toSave.PartyID).Error
	if err != nil {
		return err
	}

	for _, tag := range toSave.Tags {
		err = tx.First(&Tag{}, tag.ID).Error
		if err != nil {
			return err
		}
	}

	for _, item := range toSave.Items {
		err = tx.First(&BankAccount{}, item.BankAccountID).Error
		if err != nil {
			return err
		}
	}

	return nil
}

func (e *CashEntry) AfterSave(_ *gorm.DB) error {
	if len(e.Description) > 40 {
		return ErrEntryDescriptionTooLong
	}

	if !e.Type.Valid() {
		return ErrEntryTypeInvalid
	}

	if !e.PaymentType.Valid() {
		return ErrPaymentTypeInvalid
	}

	if len(e.Items) == 0 {
		return ErrEntryItemsEmpty
	}

	for _, item := range e.Items {
		if !item.Amount.IsPositive() {
			return ErrEntryItemAmountNotPositive
		}
	}

	return nil
}

// Amount returns the full amount of the entry, the sum of its items.
func (e CashEntry) Amount() decimal.Decimal {
	amount := decimal.Zero
	for _, item := range e.Items {
		amount = amount.Add(item.Amount)
	}

	return amount
}
