package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/uuid"
)

// CashRegistersService wraps the cash register endpoints.
type CashRegistersService struct {
	client *Client
}

// CashRegisterListOptions are the query parameters for listing cash
// registers.
type CashRegisterListOptions struct {
	Name   string
	Search string

	// Closed restricts the list to only closed (true) or only open
	// (false) registers when set.
	Closed *bool

	Offset uint
	Limit  int
}

func (o CashRegisterListOptions) values() url.Values {
	query := ListOptions{
		Name:   o.Name,
		Search: o.Search,
		Offset: o.Offset,
		Limit:  o.Limit,
	}.values()

	if o.Closed != nil {
		query.Set("closed", strconv.FormatBool(*o.Closed))
	}

	return query
}

func (s *CashRegistersService) List(ctx context.Context, options CashRegisterListOptions) ([]CashRegister, error) {
	return fetch[[]CashRegister](ctx, s.client, ResourceCashRegisters, "/v1/cash-registers", options.values())
}

func (s *CashRegistersService) Get(ctx context.Context, id uuid.UUID) (CashRegister, error) {
	return fetch[CashRegister](ctx, s.client, ResourceCashRegisters, fmt.Sprintf("/v1/cash-registers/%s", id), nil)
}

func (s *CashRegistersService) Create(ctx context.Context, register CashRegisterCreate) (CashRegister, error) {
	return create[CashRegister](ctx, s.client, ResourceCashRegisters, "/v1/cash-registers", register)
}

// Update patches the fields passed, all others stay untouched.
func (s *CashRegistersService) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (CashRegister, error) {
	return update[CashRegister](ctx, s.client, ResourceCashRegisters, fmt.Sprintf("/v1/cash-registers/%s", id), fields)
}

func (s *CashRegistersService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.remove(ctx, ResourceCashRegisters, fmt.Sprintf("/v1/cash-registers/%s", id))
}

// Close closes the register. Closing is irreversible, closed registers
// reject new entries.
func (s *CashRegistersService) Close(ctx context.Context, id uuid.UUID) (CashRegister, error) {
	return create[CashRegister](ctx, s.client, ResourceCashRegisters, fmt.Sprintf("/v1/cash-registers/%s/close", id), nil)
}

// CashEntryListOptions filter the entries of a cash register.
type CashEntryListOptions struct {
	Type        string // income or expense
	PaymentType string
	Month       string // only entries with a transaction date in this month, in YYYY-MM format
}

func (o CashEntryListOptions) values() url.Values {
	query := url.Values{}

	if o.Type != "" {
		query.Set("type", o.Type)
	}

	if o.PaymentType != "" {
		query.Set("paymentType", o.PaymentType)
	}

	if o.Month != "" {
		query.Set("month", o.Month)
	}

	return query
}

func (s *CashRegistersService) Entries(ctx context.Context, id uuid.UUID, options CashEntryListOptions) ([]CashEntry, error) {
	return fetch[[]CashEntry](ctx, s.client, ResourceCashEntries, fmt.Sprintf("/v1/cash-registers/%s/entries", id), options.values())
}

func (s *CashRegistersService) CreateEntry(ctx context.Context, id uuid.UUID, entry CashEntryCreate) (CashEntry, error) {
	return create[CashEntry](ctx, s.client, ResourceCashEntries, fmt.Sprintf("/v1/cash-registers/%s/entries", id), entry)
}
