package dogfact

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"animal-facts/internal/platform/httpclient"
	"animal-facts/internal/ports/provider"
)

// DefaultURL es el endpoint público de dog facts.
const DefaultURL = "http://dog-api.kinduff.com/api/facts"

// FallbackFact se devuelve cuando el upstream manda una lista vacía.
// Lista vacía es un caso normal de este API, no un error.
const FallbackFact = "Not available"

type Config struct {
	// URL completa del endpoint. Vacío => DefaultURL.
	URL string
}

// Client implementa provider.FactProvider contra el API de dog facts.
// El upstream responde {"facts": ["<fact>", ...]}; usamos el primero.
type Client struct {
	url  string
	http *httpclient.Client
}

func NewClient(cfg Config, hc *httpclient.Client) *Client {
	url := strings.TrimSpace(cfg.URL)
	if url == "" {
		url = DefaultURL
	}
	return &Client{
		url:  url,
		http: hc,
	}
}

type dogFacts struct {
	Facts []string `json:"facts"`
}

func (c *Client) FetchFact(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", provider.ErrAPIRequest, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", provider.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// con status no-2xx el body no se parsea
		return "", fmt.Errorf("%w: status=%d", provider.ErrAPIResponse, resp.StatusCode)
	}

	raw, err := httpclient.ReadBody(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", provider.ErrToText, err)
	}

	var out dogFacts
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("%w: %v", provider.ErrDeserialization, err)
	}

	if len(out.Facts) == 0 {
		return FallbackFact, nil
	}
	return out.Facts[0], nil
}
