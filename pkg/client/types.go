package client

import (
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListOptions are the query parameters shared by all list endpoints.
type ListOptions struct {
	Name   string
	Search string
	Offset uint
	Limit  int
}

func (o ListOptions) values() url.Values {
	query := url.Values{}

	if o.Name != "" {
		query.Set("name", o.Name)
	}

	if o.Search != "" {
		query.Set("search", o.Search)
	}

	if o.Offset != 0 {
		query.Set("offset", strconv.FormatUint(uint64(o.Offset), 10))
	}

	if o.Limit != 0 {
		query.Set("limit", strconv.Itoa(o.Limit))
	}

	return query
}

type Budget struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
}

// BudgetCreate is the payload for creating a budget. Months use the
// YYYY-MM format.
type BudgetCreate struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

type BudgetEntryValue struct {
	Month  time.Time       `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

type BudgetEntry struct {
	ID          uuid.UUID          `json:"id"`
	BudgetID    uuid.UUID          `json:"budgetId"`
	Description string             `json:"description"`
	Type        string             `json:"type"`
	CategoryID  uuid.UUID          `json:"categoryId"`
	Tags        []Tag              `json:"tags"`
	Values      []BudgetEntryValue `json:"values"`
	Total       decimal.Decimal    `json:"total"`
}

type BudgetEntryValueCreate struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

type BudgetEntryCreate struct {
	Description string                   `json:"description"`
	Type        string                   `json:"type"`
	CategoryID  uuid.UUID                `json:"categoryId"`
	TagIDs      []uuid.UUID              `json:"tagIds,omitempty"`
	Values      []BudgetEntryValueCreate `json:"values"`
}

// CashFlowRow is the aggregation of all entry values of one month.
type CashFlowRow struct {
	Month         time.Time       `json:"month"`
	TotalIncomes  decimal.Decimal `json:"totalIncomes"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	Balance       decimal.Decimal `json:"balance"`
}

type CashRegister struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     time.Time  `json:"endDate"`
	ClosedAt    *time.Time `json:"closedAt"`
}

// Closed reports whether the register has been closed.
func (r CashRegister) Closed() bool {
	return r.ClosedAt != nil
}

type CashRegisterCreate struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

type CashEntryItem struct {
	BankAccountID uuid.UUID       `json:"bankAccountId"`
	Amount        decimal.Decimal `json:"amount"`
}

type CashEntry struct {
	ID              uuid.UUID       `json:"id"`
	CashRegisterID  uuid.UUID       `json:"cashRegisterId"`
	Description     string          `json:"description"`
	Type            string          `json:"type"`
	PaymentType     string          `json:"paymentType"`
	CategoryID      uuid.UUID       `json:"categoryId"`
	PartyID         uuid.UUID       `json:"partyId"`
	TransactionDate time.Time       `json:"transactionDate"`
	Tags            []Tag           `json:"tags"`
	Items           []CashEntryItem `json:"items"`
	Amount          decimal.Decimal `json:"amount"`
}

type CashEntryCreate struct {
	Description     string          `json:"description"`
	Type            string          `json:"type"`
	PaymentType     string          `json:"paymentType"`
	CategoryID      uuid.UUID       `json:"categoryId"`
	PartyID         uuid.UUID       `json:"partyId"`
	TransactionDate time.Time       `json:"transactionDate,omitzero"`
	TagIDs          []uuid.UUID     `json:"tagIds,omitempty"`
	Items           []CashEntryItem `json:"items"`
}

type BankAccount struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Number         string          `json:"number"`
	BranchCode     string          `json:"branchCode"`
	Bank           string          `json:"bank"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
}

type BankAccountCreate struct {
	Name           string          `json:"name"`
	Number         string          `json:"number"`
	BranchCode     string          `json:"branchCode,omitempty"`
	Bank           string          `json:"bank"`
	CurrentBalance decimal.Decimal `json:"currentBalance,omitzero"`
}

type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

type CategoryCreate struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type Tag struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

type TagCreate struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type Address struct {
	Street       string `json:"street,omitempty"`
	Number       string `json:"number,omitempty"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	Country      string `json:"country,omitempty"`
	ZipCode      string `json:"zipCode,omitempty"`
}

type Party struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Document    string    `json:"document"`
	PhoneNumber string    `json:"phoneNumber"`
	Email       string    `json:"email"`
	Types       []string  `json:"types"`
	Address     Address   `json:"address"`
}

type PartyCreate struct {
	Name        string   `json:"name"`
	Document    string   `json:"document,omitempty"`
	PhoneNumber string   `json:"phoneNumber,omitempty"`
	Email       string   `json:"email,omitempty"`
	Types       []string `json:"types"`
	Address     Address  `json:"address,omitzero"`
}

// State is a Brazilian federative unit.
type State struct {
	ID   int    `json:"id"`
	Code string `json:"sigla"`
	Name string `json:"nome"`
}

// Municipality is a city of a state.
type Municipality struct {
	Name string `json:"nome"`
	Code string `json:"codigo_ibge"`
}

// LookupAddress is the address registered for a zip code.
type LookupAddress struct {
	ZipCode      string `json:"cep"`
	State        string `json:"state"`
	City         string `json:"city"`
	Neighborhood string `json:"neighborhood"`
	Street       string `json:"street"`
	Service      string `json:"service"`
}
