package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"
)

// BudgetsService wraps the budget endpoints.
type BudgetsService struct {
	client *Client
}

func (s *BudgetsService) List(ctx context.Context, options ListOptions) ([]Budget, error) {
	return fetch[[]Budget](ctx, s.client, ResourceBudgets, "/v1/budgets", options.values())
}

func (s *BudgetsService) Get(ctx context.Context, id uuid.UUID) (Budget, error) {
	return fetch[Budget](ctx, s.client, ResourceBudgets, fmt.Sprintf("/v1/budgets/%s", id), nil)
}

func (s *BudgetsService) Create(ctx context.Context, budget BudgetCreate) (Budget, error) {
	return create[Budget](ctx, s.client, ResourceBudgets, "/v1/budgets", budget)
}

// Update patches the fields passed, all others stay untouched.
func (s *BudgetsService) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (Budget, error) {
	return update[Budget](ctx, s.client, ResourceBudgets, fmt.Sprintf("/v1/budgets/%s", id), fields)
}

func (s *BudgetsService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.remove(ctx, ResourceBudgets, fmt.Sprintf("/v1/budgets/%s", id))
}

// BudgetEntryListOptions filter the entries of a budget.
type BudgetEntryListOptions struct {
	Type  string // income or expense
	Month string // only entries with a value in this month, in YYYY-MM format
}

func (o BudgetEntryListOptions) values() url.Values {
	query := url.Values{}

	if o.Type != "" {
		query.Set("type", o.Type)
	}

	if o.Month != "" {
		query.Set("month", o.Month)
	}

	return query
}

func (s *BudgetsService) Entries(ctx context.Context, id uuid.UUID, options BudgetEntryListOptions) ([]BudgetEntry, error) {
	return fetch[[]BudgetEntry](ctx, s.client, ResourceBudgetEntries, fmt.Sprintf("/v1/budgets/%s/entries", id), options.values())
}

func (s *BudgetsService) CreateEntry(ctx context.Context, id uuid.UUID, entry BudgetEntryCreate) (BudgetEntry, error) {
	return create[BudgetEntry](ctx, s.client, ResourceBudgetEntries, fmt.Sprintf("/v1/budgets/%s/entries", id), entry)
}

// CashFlow returns the monthly aggregation of all entry values of the
// budget. It is derived from the entries, so it shares their cache
// family and is invalidated together with them.
func (s *BudgetsService) CashFlow(ctx context.Context, id uuid.UUID) ([]CashFlowRow, error) {
	return fetch[[]CashFlowRow](ctx, s.client, ResourceBudgetEntries, fmt.Sprintf("/v1/budgets/%s/cash-flow", id), nil)
}
