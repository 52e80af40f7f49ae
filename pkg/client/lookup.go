package client

import (
	"context"
	"fmt"
)

// LookupService wraps the address lookup endpoints. The backend proxies
// them to BrasilAPI with a ViaCEP fallback for zip codes.
type LookupService struct {
	client *Client
}

func (s *LookupService) States(ctx context.Context) ([]State, error) {
	return fetch[[]State](ctx, s.client, ResourceLookup, "/v1/lookup/states", nil)
}

func (s *LookupService) Municipalities(ctx context.Context, uf string) ([]Municipality, error) {
	return fetch[[]Municipality](ctx, s.client, ResourceLookup, fmt.Sprintf("/v1/lookup/states/%s/municipalities", uf), nil)
}

func (s *LookupService) ZipCode(ctx context.Context, code string) (LookupAddress, error) {
	return fetch[LookupAddress](ctx, s.client, ResourceLookup, fmt.Sprintf("/v1/lookup/zip/%s", code), nil)
}
