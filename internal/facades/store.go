package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sfomin/gw-currency-rates/internal/logger"
	"github.com/sfomin/gw-currency-rates/internal/models"
	"github.com/sfomin/gw-currency-rates/internal/services"
)

// ErrStoreUnavailable marks calls whose outcome is unknown: the request
// never produced a definite answer, so the caller must not assume the
// mutation either happened or did not.
var ErrStoreUnavailable = errors.New("currency store unavailable")

// TokenGenerator signs service tokens for mutation requests.
type TokenGenerator interface {
	Generate(ctx context.Context, service string) (string, error)
}

// StoreClient is the single client over both physical store services:
// the currency manager (mutations) and the data manager (queries).
// Every call is one request with a bounded timeout and no retry, since
// add and update are not safely retryable.
type StoreClient struct {
	httpc     *http.Client
	manageURL string
	queryURL  string
	timeout   time.Duration
	tokens    TokenGenerator
}

// NewStoreClient creates a client for the two store services.
func NewStoreClient(manageURL, queryURL string, timeout time.Duration, tokens TokenGenerator) *StoreClient {
	return &StoreClient{
		httpc:     &http.Client{},
		manageURL: manageURL,
		queryURL:  queryURL,
		timeout:   timeout,
		tokens:    tokens,
	}
}

type mutationRequest struct {
	Code string           `json:"code"`
	Rate *decimal.Decimal `json:"rate,omitempty"`
}

// Add creates a new currency. Returns services.ErrCurrencyAlreadyExists
// when the code is already present.
func (c *StoreClient) Add(ctx context.Context, code string, rate decimal.Decimal) error {
	status, _, err := c.postManage(ctx, "/load", mutationRequest{Code: code, Rate: &rate})
	if err != nil {
		return err
	}
	switch status {
	case http.StatusOK:
		return nil
	case http.StatusBadRequest:
		return services.ErrCurrencyAlreadyExists
	default:
		return fmt.Errorf("%w: unexpected status %d", ErrStoreUnavailable, status)
	}
}

// Update changes the rate of an existing currency. Returns
// services.ErrCurrencyNotFound when the code is absent.
func (c *StoreClient) Update(ctx context.Context, code string, rate decimal.Decimal) error {
	status, _, err := c.postManage(ctx, "/update_currency", mutationRequest{Code: code, Rate: &rate})
	if err != nil {
		return err
	}
	switch status {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return services.ErrCurrencyNotFound
	default:
		return fmt.Errorf("%w: unexpected status %d", ErrStoreUnavailable, status)
	}
}

// Delete removes a currency. Returns services.ErrCurrencyNotFound when
// the code is absent.
func (c *StoreClient) Delete(ctx context.Context, code string) error {
	status, _, err := c.postManage(ctx, "/delete", mutationRequest{Code: code})
	if err != nil {
		return err
	}
	switch status {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return services.ErrCurrencyNotFound
	default:
		return fmt.Errorf("%w: unexpected status %d", ErrStoreUnavailable, status)
	}
}

// List returns all currencies ordered by code.
func (c *StoreClient) List(ctx context.Context) ([]models.Currency, error) {
	body, status, err := c.getQuery(ctx, "/currencies", nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrStoreUnavailable, status)
	}

	var currencies []models.Currency
	if err := json.Unmarshal(body, &currencies); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return currencies, nil
}

// Convert converts amount of code to RUB. Returns
// services.ErrCurrencyNotFound when the code is absent.
func (c *StoreClient) Convert(ctx context.Context, code string, amount decimal.Decimal) (*models.Conversion, error) {
	params := url.Values{}
	params.Set("code", code)
	params.Set("amount", amount.String())

	body, status, err := c.getQuery(ctx, "/convert", params)
	if err != nil {
		return nil, err
	}
	switch status {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, services.ErrCurrencyNotFound
	default:
		return nil, fmt.Errorf("%w: unexpected status %d", ErrStoreUnavailable, status)
	}

	var conversion models.Conversion
	if err := json.Unmarshal(body, &conversion); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return &conversion, nil
}

// postManage sends one authorized mutation request to the currency manager.
func (c *StoreClient) postManage(ctx context.Context, path string, payload any) (int, []byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	raw, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.manageURL+path, bytes.NewReader(raw))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	if c.tokens != nil {
		token, err := c.tokens.Generate(ctx, "bot-gateway")
		if err != nil {
			return 0, nil, err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.do(req)
}

// getQuery sends one request to the data manager.
func (c *StoreClient) getQuery(ctx context.Context, path string, params url.Values) ([]byte, int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	target := c.queryURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, 0, err
	}

	status, body, err := c.do(req)
	return body, status, err
}

func (c *StoreClient) do(req *http.Request) (int, []byte, error) {
	resp, err := c.httpc.Do(req)
	if err != nil {
		logger.Log.Errorw("store request failed",
			"method", req.Method,
			"url", req.URL.String(),
			"err", err,
		)
		return 0, nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return resp.StatusCode, body, nil
}
