package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"
)

// BankAccountsService wraps the bank account endpoints.
type BankAccountsService struct {
	client *Client
}

// BankAccountListOptions are the query parameters for listing bank
// accounts.
type BankAccountListOptions struct {
	Name   string
	Bank   string
	Search string
	Offset uint
	Limit  int
}

func (o BankAccountListOptions) values() url.Values {
	query := ListOptions{
		Name:   o.Name,
		Search: o.Search,
		Offset: o.Offset,
		Limit:  o.Limit,
	}.values()

	if o.Bank != "" {
		query.Set("bank", o.Bank)
	}

	return query
}

func (s *BankAccountsService) List(ctx context.Context, options BankAccountListOptions) ([]BankAccount, error) {
	return fetch[[]BankAccount](ctx, s.client, ResourceBankAccounts, "/v1/bank-accounts", options.values())
}

func (s *BankAccountsService) Get(ctx context.Context, id uuid.UUID) (BankAccount, error) {
	return fetch[BankAccount](ctx, s.client, ResourceBankAccounts, fmt.Sprintf("/v1/bank-accounts/%s", id), nil)
}

func (s *BankAccountsService) Create(ctx context.Context, account BankAccountCreate) (BankAccount, error) {
	return create[BankAccount](ctx, s.client, ResourceBankAccounts, "/v1/bank-accounts", account)
}

func (s *BankAccountsService) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (BankAccount, error) {
	return update[BankAccount](ctx, s.client, ResourceBankAccounts, fmt.Sprintf("/v1/bank-accounts/%s", id), fields)
}

func (s *BankAccountsService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.remove(ctx, ResourceBankAccounts, fmt.Sprintf("/v1/bank-accounts/%s", id))
}

// CategoriesService wraps the category endpoints.
type CategoriesService struct {
	client *Client
}

func (s *CategoriesService) List(ctx context.Context, options ListOptions) ([]Category, error) {
	return fetch[[]Category](ctx, s.client, ResourceCategories, "/v1/categories", options.values())
}

func (s *CategoriesService) Get(ctx context.Context, id uuid.UUID) (Category, error) {
	return fetch[Category](ctx, s.client, ResourceCategories, fmt.Sprintf("/v1/categories/%s", id), nil)
}

func (s *CategoriesService) Create(ctx context.Context, category CategoryCreate) (Category, error) {
	return create[Category](ctx, s.client, ResourceCategories, "/v1/categories", category)
}

func (s *CategoriesService) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (Category, error) {
	return update[Category](ctx, s.client, ResourceCategories, fmt.Sprintf("/v1/categories/%s", id), fields)
}

func (s *CategoriesService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.remove(ctx, ResourceCategories, fmt.Sprintf("/v1/categories/%s", id))
}

// TagsService wraps the tag endpoints.
type TagsService struct {
	client *Client
}

func (s *TagsService) List(ctx context.Context, options ListOptions) ([]Tag, error) {
	return fetch[[]Tag](ctx, s.client, ResourceTags, "/v1/tags", options.values())
}

func (s *TagsService) Get(ctx context.Context, id uuid.UUID) (Tag, error) {
	return fetch[Tag](ctx, s.client, ResourceTags, fmt.Sprintf("/v1/tags/%s", id), nil)
}

func (s *TagsService) Create(ctx context.Context, tag TagCreate) (Tag, error) {
	return create[Tag](ctx, s.client, ResourceTags, "/v1/tags", tag)
}

func (s *TagsService) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (Tag, error) {
	return update[Tag](ctx, s.client, ResourceTags, fmt.Sprintf("/v1/tags/%s", id), fields)
}

func (s *TagsService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.remove(ctx, ResourceTags, fmt.Sprintf("/v1/tags/%s", id))
}

// PartiesService wraps the party endpoints.
type PartiesService struct {
	client *Client
}

// PartyListOptions are the query parameters for listing parties.
type PartyListOptions struct {
	Name     string
	Document string
	Type     string
	Search   string
	Offset   uint
	Limit    int
}

func (o PartyListOptions) values() url.Values {
	query := ListOptions{
		Name:   o.Name,
		Search: o.Search,
		Offset: o.Offset,
		Limit:  o.Limit,
	}.values()

	if o.Document != "" {
		query.Set("document", o.Document)
	}

	if o.Type != "" {
		query.Set("type", o.Type)
	}

	return query
}

func (s *PartiesService) List(ctx context.Context, options PartyListOptions) ([]Party, error) {
	return fetch[[]Party](ctx, s.client, ResourceParties, "/v1/parties", options.values())
}

func (s *PartiesService) Get(ctx context.Context, id uuid.UUID) (Party, error) {
	return fetch[Party](ctx, s.client, ResourceParties, fmt.Sprintf("/v1/parties/%s", id), nil)
}

func (s *PartiesService) Create(ctx context.Context, party PartyCreate) (Party, error) {
	return create[Party](ctx, s.client, ResourceParties, "/v1/parties", party)
}

func (s *PartiesService) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (Party, error) {
	return update[Party](ctx, s.client, ResourceParties, fmt.Sprintf("/v1/parties/%s", id), fields)
}

func (s *PartiesService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.remove(ctx, ResourceParties, fmt.Sprintf("/v1/parties/%s", id))
}
