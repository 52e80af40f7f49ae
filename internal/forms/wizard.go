package forms

import (
	"fmt"
	"time"

	"github.com/fluxo-app/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Step identifies a page of the entry wizard.
type Step int

const (
	StepGeneralInfo Step = iota
	StepValuesAndAccounts
)

// GeneralInfo is the first wizard page: what the entry is, who it
// settles with and how it was paid.
type GeneralInfo struct {
	Description     string             `form:"description" validate:"required,max=40"`
	Type            models.EntryType   `form:"type" validate:"required,oneof=income expense"`
	PaymentType     models.PaymentType `form:"paymentType" validate:"required,oneof=boleto ted pix credit_card debit_card direct_debit cash"`
	CategoryID      uuid.UUID          `form:"categoryId" validate:"required"`
	PartyID         uuid.UUID          `form:"partyId" validate:"required"`
	TransactionDate time.Time          `form:"transactionDate" validate:"required"`
}

// EntryItem is one bank account split on the second wizard page,
// edited in cents.
type EntryItem struct {
	BankAccountID uuid.UUID
	Cents         int64
}

// Wizard drives the two-step cash entry dialog.
//
// Step changes are guarded: Next only advances when the current page
// validates, Submit only succeeds when the items validate and the
// backend accepts the entry. A failed submission keeps every field so
// the user can correct and retry.
type Wizard struct {
	Step           Step
	CashRegisterID uuid.UUID
	General        GeneralInfo
	Items          *FieldArray[EntryItem]
	TagIDs         []uuid.UUID
	Errors         Errors
}

// NewWizard returns a wizard for creating entries in a cash register.
func NewWizard(cashRegisterID uuid.UUID) *Wizard {
	return &Wizard{
		CashRegisterID: cashRegisterID,
		Items:          NewFieldArray(1, 0, func() EntryItem { return EntryItem{} }),
	}
}

// Open resets the wizard to the first step with cleared fields.
func (w *Wizard) Open() {
	w.Step = StepGeneralInfo
	w.General = GeneralInfo{}
	w.TagIDs = nil
	w.Errors = nil
	w.Items.Reset()
}

// Next advances to the next step. From the first step it validates the
// general info and stays put on validation errors.
func (w *Wizard) Next() {
	if w.Step != StepGeneralInfo {
		return
	}

	if errs := Validate(w.General); !errs.Empty() {
		w.Errors = errs
		return
	}

	w.Errors = nil
	w.Step = StepValuesAndAccounts
}

// Back returns to the previous step. It never discards any input.
func (w *Wizard) Back() {
	if w.Step > StepGeneralInfo {
		w.Step--
	}
}

// Submit validates the items and hands the assembled entry to send.
// On success the wizard resets for the next entry. On failure all
// state is kept and the error is returned.
func (w *Wizard) Submit(send func(models.CashEntry) error) error {
	if w.Step != StepValuesAndAccounts {
		return fmt.Errorf("the entry can only be submitted from the last step")
	}

	if errs := w.validateItems(); !errs.Empty() {
		w.Errors = errs
		return fmt.Errorf("the entry items are not valid")
	}

	w.Errors = nil

	err := send(w.entry())
	if err != nil {
		return err
	}

	w.Open()
	return nil
}

func (w *Wizard) validateItems() Errors {
	errs := Errors{}

	for i, item := range w.Items.Items {
		if item.BankAccountID == uuid.Nil {
			errs[fmt.Sprintf("items[%d].bankAccountId", i)] = "this field is required"
		}

		if item.Cents <= 0 {
			errs[fmt.Sprintf("items[%d].amount", i)] = "the amount must be larger than zero"
		}
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func (w *Wizard) entry() models.CashEntry {
	entry := models.CashEntry{
		CashRegisterID:  w.CashRegisterID,
		Description:     w.General.Description,
		Type:            w.General.Type,
		PaymentType:     w.General.PaymentType,
		CategoryID:      w.General.CategoryID,
		PartyID:         w.General.PartyID,
		TransactionDate: w.General.TransactionDate,
	}

	for _, id := range w.TagIDs {
		entry.Tags = append(entry.Tags, models.Tag{DefaultModel: models.DefaultModel{ID: id}})
	}

	for _, item := range w.Items.Items {
		entry.Items = append(entry.Items, models.CashEntryItem{
			BankAccountID: item.BankAccountID,
			Amount:        decimal.New(item.Cents, -2),
		})
	}

	return entry
}
