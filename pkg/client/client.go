// Package client provides a typed client for the backend API.
//
// Read requests are cached by resource family and request parameters,
// concurrent identical requests are collapsed into a single HTTP call.
// Mutations invalidate the cache for the resource family they touch, so
// the next read fetches fresh data from the server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// Client is the API client. The zero value is not usable, use New.
type Client struct {
	// BaseURL is the address of the backend, without a trailing slash.
	BaseURL string

	// Token is sent as bearer token with every request when set.
	Token string

	HTTP *http.Client

	cache *Cache

	Budgets       *BudgetsService
	CashRegisters *CashRegistersService
	BankAccounts  *BankAccountsService
	Categories    *CategoriesService
	Tags          *TagsService
	Parties       *PartiesService
	Lookup        *LookupService
}

// New returns a client for the backend at the base URL.
func New(baseURL string) *Client {
	c := &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTP: &http.Client{
			Timeout: defaultTimeout,
		},
		cache: newCache(),
	}

	c.Budgets = &BudgetsService{client: c}
	c.CashRegisters = &CashRegistersService{client: c}
	c.BankAccounts = &BankAccountsService{client: c}
	c.Categories = &CategoriesService{client: c}
	c.Tags = &TagsService{client: c}
	c.Parties = &PartiesService{client: c}
	c.Lookup = &LookupService{client: c}

	return c
}

// Invalidate discards the cached responses of the resource families
// passed. The next read for them fetches from the server again.
func (c *Client) Invalidate(resources ...string) {
	c.cache.Invalidate(resources...)
}

// APIError is an error response from the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("the server responded with status %d: %s", e.Status, e.Message)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	requestURL := c.BaseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var envelope struct {
			Error string `json:"error"`
		}

		message := http.StatusText(resp.StatusCode)
		if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error != "" {
			message = envelope.Error
		}

		return nil, &APIError{Status: resp.StatusCode, Message: message}
	}

	return raw, nil
}

// response is the envelope the backend wraps all data in.
type response[T any] struct {
	Data T `json:"data"`
}

func decode[T any](raw []byte) (T, error) {
	var envelope response[T]
	err := json.Unmarshal(raw, &envelope)
	return envelope.Data, err
}

// fetch returns the response for the request, served from the cache when
// possible.
func fetch[T any](ctx context.Context, c *Client, resource, path string, query url.Values) (T, error) {
	raw, err := c.cache.fetch(cacheKey(resource, path, query), func() ([]byte, error) {
		return c.do(ctx, http.MethodGet, path, query, nil)
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return decode[T](raw)
}

// create posts the body and invalidates the resource family.
func create[T any](ctx context.Context, c *Client, resource, path string, body any) (T, error) {
	raw, err := c.do(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		var zero T
		return zero, err
	}

	c.cache.Invalidate(resource)
	return decode[T](raw)
}

// update patches the resource and invalidates its family.
func update[T any](ctx context.Context, c *Client, resource, path string, body any) (T, error) {
	raw, err := c.do(ctx, http.MethodPatch, path, nil, body)
	if err != nil {
		var zero T
		return zero, err
	}

	c.cache.Invalidate(resource)
	return decode[T](raw)
}

// remove deletes the resource and invalidates its family.
func (c *Client) remove(ctx context.Context, resource, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return err
	}

	c.cache.Invalidate(resource)
	return nil
}
