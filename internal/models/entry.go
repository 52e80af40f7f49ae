package models

import "errors"

// EntryType classifies an entry as money coming in or going out.
type EntryType string

const (
	IncomeEntry  EntryType = "income"
	ExpenseEntry EntryType = "expense"
)

var ErrEntryTypeInvalid = errors.New("the entry type must be income or expense")

// Valid reports whether the entry type is one of the allowed values.
func (t EntryType) Valid() bool {
	return t == IncomeEntry || t == ExpenseEntry
}

// PaymentType is the payment method used for a cash entry.
type PaymentType string

const (
	PaymentBoleto      PaymentType = "boleto"
	PaymentTED         PaymentType = "ted"
	PaymentPix         PaymentType = "pix"
	PaymentCreditCard  PaymentType = "credit_card"
	PaymentDebitCard   PaymentType = "debit_card"
	PaymentDirectDebit PaymentType = "direct_debit"
	PaymentCash        PaymentType = "cash"
)

var ErrPaymentTypeInvalid = errors.New("the specified payment type is invalid")

// Valid reports whether the payment type is one of the allowed values.
func (p PaymentType) Valid() bool {
	switch p {
	case PaymentBoleto, PaymentTED, PaymentPix, PaymentCreditCard, PaymentDebitCard, PaymentDirectDebit, PaymentCash:
		return true
	}

	return false
}
