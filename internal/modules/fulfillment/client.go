package fulfillment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/cathedralnet/storefront/internal/money"
)

// ErrNotConfigured is returned by every call when no API key is present.
// Callers treat it as "feature unavailable", not as a failure.
var ErrNotConfigured = errors.New("fulfillment provider not configured")

// Client talks to the print-on-demand provider's REST API. All external
// payloads are decoded into the typed structs in model.go at this boundary.
type Client struct {
	apiKey  string
	storeID string
	baseURL string
	http    *http.Client
}

func NewClient(apiKey, storeID, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		storeID: storeID,
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool { return c.apiKey != "" }

// envelope is the provider's standard response wrapper.
type envelope struct {
	Code   int             `json:"code"`
	Result json.RawMessage `json:"result"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
}

// GetStoreProducts lists the products available in our provider store.
func (c *Client) GetStoreProducts(ctx context.Context) ([]StoreProduct, error) {
	var products []StoreProduct
	if err := c.get(ctx, "/store/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProductVariants returns the size/color/price variants of one product.
func (c *Client) GetProductVariants(ctx context.Context, productID int) ([]Variant, error) {
	var result struct {
		Variants []Variant `json:"variants"`
	}
	if err := c.get(ctx, "/products/"+strconv.Itoa(productID), &result); err != nil {
		return nil, err
	}
	for i := range result.Variants {
		cents, err := money.ParseDecimal(result.Variants[i].Price)
		if err != nil {
			return nil, fmt.Errorf("variant %d: bad price %q: %w", result.Variants[i].ID, result.Variants[i].Price, err)
		}
		result.Variants[i].PriceCents = cents
	}
	return result.Variants, nil
}

// CreateDraftOrder submits an unconfirmed order to the provider and returns
// its reference together with the cost the provider will charge us.
func (c *Client) CreateDraftOrder(ctx context.Context, recipient Recipient, items []OrderItem) (*DraftOrder, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	body := map[string]interface{}{
		"recipient": recipient,
		"items":     items,
		"confirm":   false,
		"shipping":  "STANDARD",
	}
	var result struct {
		ID    int64 `json:"id"`
		Costs struct {
			Total string `json:"total"`
		} `json:"costs"`
	}
	if err := c.post(ctx, "/orders", body, &result); err != nil {
		return nil, err
	}
	cost, err := money.ParseDecimal(result.Costs.Total)
	if err != nil {
		return nil, fmt.Errorf("draft order %d: bad cost %q: %w", result.ID, result.Costs.Total, err)
	}
	return &DraftOrder{
		ExternalID: strconv.FormatInt(result.ID, 10),
		CostCents:  cost,
	}, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	if c.storeID != "" {
		req.Header.Set("X-PF-Store-Id", c.storeID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("fulfillment request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("fulfillment response %s %s: %w", method, path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := env.Error.Message
		if msg == "" {
			msg = resp.Status
		}
		return fmt.Errorf("fulfillment API error (%d): %s", resp.StatusCode, msg)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(env.Result, out); err != nil {
		return fmt.Errorf("fulfillment result %s %s: %w", method, path, err)
	}
	return nil
}
