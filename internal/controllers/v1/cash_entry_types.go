package v1

import (
	"time"

	"github.com/fluxo-app/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CashEntryItemEditable is one slice of the entry amount, booked
// against a bank account.
type CashEntryItemEditable struct {
	BankAccountID uuid.UUID       `json:"bankAccountId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the bank account
	Amount        decimal.Decimal `json:"amount" example:"150.75"`                                      // Amount booked against the account
}

// CashEntryEditable represents all user configurable parameters
type CashEntryEditable struct {
	Description     string                  `json:"description" example:"Venue rental" default:""` // Description of the entry
	Type            models.EntryType        `json:"type" example:"expense"`                        // income or expense
	PaymentType     models.PaymentType      `json:"paymentType" example:"pix"`                     // How the entry was paid
	CategoryID      uuid.UUID               `json:"categoryId"`                                    // ID of the category of the entry
	PartyID         uuid.UUID               `json:"partyId"`                                       // ID of the party the entry settles with
	TransactionDate time.Time               `json:"transactionDate"`                               // When the transaction happened. Defaults to now
	TagIDs          []uuid.UUID             `json:"tagIds"`                                        // IDs of the tags attached to the entry
	Items           []CashEntryItemEditable `json:"items"`                                         // Amount slices per bank account
}

func (editable CashEntryEditable) model(cashRegisterID uuid.UUID) models.CashEntry {
	entry := models.CashEntry{
		CashRegisterID:  cashRegisterID,
		Description:     editable.Description,
		Type:            editable.Type,
		PaymentType:     editable.PaymentType,
		CategoryID:      editable.CategoryID,
		PartyID:         editable.PartyID,
		TransactionDate: editable.TransactionDate,
	}

	for _, id := range editable.TagIDs {
		entry.Tags = append(entry.Tags, models.Tag{DefaultModel: models.DefaultModel{ID: id}})
	}

	for _, item := range editable.Items {
		entry.Items = append(entry.Items, models.CashEntryItem{
			BankAccountID: item.BankAccountID,
			Amount:        item.Amount,
		})
	}

	return entry
}

type CashEntry struct {
	models.DefaultModel
	CashRegisterID  uuid.UUID               `json:"cashRegisterId"`
	Description     string                  `json:"description"`
	Type            models.EntryType        `json:"type"`
	PaymentType     models.PaymentType      `json:"paymentType"`
	CategoryID      uuid.UUID               `json:"categoryId"`
	PartyID         uuid.UUID               `json:"partyId"`
	TransactionDate time.Time               `json:"transactionDate"`
	Tags            []Tag                   `json:"tags"`
	Items           []CashEntryItemEditable `json:"items"`

	// The amount is computed over all items
	Amount decimal.Decimal `json:"amount" example:"200.00"`
}

func newCashEntry(model models.CashEntry) CashEntry {
	entry := CashEntry{
		DefaultModel:    model.DefaultModel,
		CashRegisterID:  model.CashRegisterID,
		Description:     model.Description,
		Type:            model.Type,
		PaymentType:     model.PaymentType,
		CategoryID:      model.CategoryID,
		PartyID:         model.PartyID,
		TransactionDate: model.TransactionDate,
		Tags:            make([]Tag, 0),
		Items:           make([]CashEntryItemEditable, 0),
		Amount:          model.Amount(),
	}

	for _, tag := range model.Tags {
		entry.Tags = append(entry.Tags, newTag(tag))
	}

	for _, item := range model.Items {
		entry.Items = append(entry.Items, CashEntryItemEditable{
			BankAccountID: item.BankAccountID,
			Amount:        item.Amount,
		})
	}

	return entry
}

type CashEntryResponse struct {
	Data  *CashEntry `json:"data"`                                                          // Data for the entry
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CashEntryListResponse struct {
	Data  []CashEntry `json:"data"`                                                          // List of entries
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CashEntryQueryFilter struct {
	Type        string `form:"type"`        // By entry type
	PaymentType string `form:"paymentType"` // By payment type
	Month       string `form:"month"`       // Only entries with a transaction date in this month, in YYYY-MM format
}
