// Package brasilapi looks up Brazilian states, municipalities and zip
// codes from public APIs. BrasilAPI is the primary source, zip code
// lookups fall back to ViaCEP when BrasilAPI is unavailable.
package brasilapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defaultBaseURL       = "https://brasilapi.com.br/api"
	defaultViaCEPBaseURL = "https://viacep.com.br/ws"
)

var (
	ErrZipCodeNotFound = errors.New("no address was found for this zip code")
	ErrLookupFailed    = errors.New("the address lookup service could not be reached")
)

// Client queries the lookup APIs.
type Client struct {
	BaseURL       string
	ViaCEPBaseURL string
	HTTP          *http.Client
}

// New returns a client using the public API endpoints.
func New() *Client {
	return &Client{
		BaseURL:       defaultBaseURL,
		ViaCEPBaseURL: defaultViaCEPBaseURL,
		HTTP: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
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

// Address is the address registered for a zip code.
type Address struct {
	ZipCode      string `json:"cep"`
	State        string `json:"state"`
	City         string `json:"city"`
	Neighborhood string `json:"neighborhood"`
	Street       string `json:"street"`
	Service      string `json:"service"`
}

// States returns all federative units.
func (c *Client) States(ctx context.Context) ([]State, error) {
	var states []State

	err := c.get(ctx, fmt.Sprintf("%s/ibge/uf/v1", c.BaseURL), &states)
	if err != nil {
		return nil, err
	}

	return states, nil
}

// Municipalities returns all municipalities of a state, identified by
// its two letter code.
func (c *Client) Municipalities(ctx context.Context, uf string) ([]Municipality, error) {
	var municipalities []Municipality

	err := c.get(ctx, fmt.Sprintf("%s/ibge/municipios/v1/%s", c.BaseURL, uf), &municipalities)
	if err != nil {
		return nil, err
	}

	return municipalities, nil
}

// ZipCode returns the address for a zip code. When BrasilAPI cannot
// answer, ViaCEP is tried before giving up.
func (c *Client) ZipCode(ctx context.Context, code string) (Address, error) {
	var address Address

	err := c.get(ctx, fmt.Sprintf("%s/cep/v1/%s", c.BaseURL, code), &address)
	if err == nil {
		return address, nil
	}

	if errors.Is(err, ErrZipCodeNotFound) {
		return Address{}, err
	}

	log.Warn().Err(err).Msg("BrasilAPI zip code lookup failed, falling back to ViaCEP")
	return c.viaCEP(ctx, code)
}

// viaCEP looks up a zip code with the ViaCEP API.
func (c *Client) viaCEP(ctx context.Context, code string) (Address, error) {
	var response struct {
		ZipCode      string   `json:"cep"`
		Street       string   `json:"logradouro"`
		Neighborhood string   `json:"bairro"`
		City         string   `json:"localidade"`
		State        string   `json:"uf"`
		Error        flexBool `json:"erro"`
	}

	err := c.get(ctx, fmt.Sprintf("%s/%s/json/", c.ViaCEPBaseURL, code), &response)
	if err != nil {
		return Address{}, err
	}

	if bool(response.Error) {
		return Address{}, ErrZipCodeNotFound
	}

	return Address{
		ZipCode:      response.ZipCode,
		State:        response.State,
		City:         response.City,
		Neighborhood: response.Neighborhood,
		Street:       response.Street,
		Service:      "viacep",
	}, nil
}

// flexBool accepts both the boolean and the quoted string form ViaCEP
// has used for its "erro" field over time.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "true", `"true"`:
		*b = true
	default:
		*b = false
	}

	return nil
}

func (c *Client) get(ctx context.Context, url string, data any) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	response, err := c.HTTP.Do(request)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrLookupFailed, err)
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusNotFound {
		return ErrZipCodeNotFound
	}

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status %d", ErrLookupFailed, response.StatusCode)
	}

	return json.NewDecoder(response.Body).Decode(data)
}
