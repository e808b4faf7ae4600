// Package api implements the HTTP client for the external billing
// API. The billing core consumes these endpoints; it never serves
// them itself.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/airis-ai/airis-billing/internal/models"
)

const (
	defaultTimeout   = 30 * time.Second
	maxErrorBodySize = 4096
)

// RequestError is returned for non-2xx billing API responses. The
// body is retained so callers can decode structured error payloads
// (billing-blocked details in particular).
type RequestError struct {
	Status int
	Body   string
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("billing api returned status %d", e.Status)
	}
	return fmt.Sprintf("billing api returned status %d: %s", e.Status, e.Body)
}

// Client talks to the billing API. All methods are safe for
// concurrent use. Requests carry the configured bearer token and are
// never retried; retry policy belongs to the caller.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient builds a billing API client. A zero timeout falls back to
// the default.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// GetLedger fetches a page of wallet ledger entries, newest first.
func (c *Client) GetLedger(ctx context.Context, limit, skip int) ([]models.LedgerEntry, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("skip", strconv.Itoa(skip))

	var entries []models.LedgerEntry
	if errDo := c.doJSON(ctx, http.MethodGet, "/billing/ledger", query, nil, &entries); errDo != nil {
		return nil, errDo
	}
	return entries, nil
}

// GetUsageEvents fetches a page of usage events, newest first.
// billingSource filters by source when non-empty.
func (c *Client) GetUsageEvents(ctx context.Context, limit, skip int, billingSource string) ([]models.UsageEvent, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("skip", strconv.Itoa(skip))
	if billingSource != "" {
		query.Set("billing_source", billingSource)
	}

	var events []models.UsageEvent
	if errDo := c.doJSON(ctx, http.MethodGet, "/billing/usage-events", query, nil, &events); errDo != nil {
		return nil, errDo
	}
	return events, nil
}

// GetBalance fetches the caller's wallet snapshot.
func (c *Client) GetBalance(ctx context.Context) (*models.WalletBalance, error) {
	var balance models.WalletBalance
	if errDo := c.doJSON(ctx, http.MethodGet, "/billing/balance", nil, nil, &balance); errDo != nil {
		return nil, errDo
	}
	return &balance, nil
}

// CreateTopup starts a wallet top-up payment and returns the payment
// confirmation hand-off.
func (c *Client) CreateTopup(ctx context.Context, req models.TopupRequest) (*models.TopupResponse, error) {
	var resp models.TopupResponse
	if errDo := c.doJSON(ctx, http.MethodPost, "/billing/topup", nil, req, &resp); errDo != nil {
		return nil, errDo
	}
	return &resp, nil
}

// AdjustUserWallet applies an admin balance adjustment to userID's
// wallet and returns the updated wallet with the recorded entry.
func (c *Client) AdjustUserWallet(ctx context.Context, userID string, req models.AdjustWalletRequest) (*models.AdjustWalletResponse, error) {
	path := "/admin/billing/users/" + url.PathEscape(userID) + "/wallet/adjust"
	var resp models.AdjustWalletResponse
	if errDo := c.doJSON(ctx, http.MethodPost, path, nil, req, &resp); errDo != nil {
		return nil, errDo
	}
	return &resp, nil
}

// RateCardQuery filters a rate card listing. Zero values mean no
// filter; Page and PageSize fall back to the API defaults.
type RateCardQuery struct {
	ModelID  string
	Modality string
	Unit     string
	Version  string
	Provider string
	IsActive *bool
	Page     int
	PageSize int
}

// RateCardPage is one page of the admin rate card listing.
type RateCardPage struct {
	Items      []models.RateCard `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

// ListRateCards fetches one page of rate card records.
func (c *Client) ListRateCards(ctx context.Context, q RateCardQuery) (*RateCardPage, error) {
	query := url.Values{}
	if q.ModelID != "" {
		query.Set("model_id", q.ModelID)
	}
	if q.Modality != "" {
		query.Set("modality", q.Modality)
	}
	if q.Unit != "" {
		query.Set("unit", q.Unit)
	}
	if q.Version != "" {
		query.Set("version", q.Version)
	}
	if q.Provider != "" {
		query.Set("provider", q.Provider)
	}
	if q.IsActive != nil {
		query.Set("is_active", strconv.FormatBool(*q.IsActive))
	}
	if q.Page > 0 {
		query.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		query.Set("page_size", strconv.Itoa(q.PageSize))
	}

	var page RateCardPage
	if errDo := c.doJSON(ctx, http.MethodGet, "/admin/billing/rate-card", query, nil, &page); errDo != nil {
		return nil, errDo
	}
	return &page, nil
}

// ListAllRateCards walks every page of the rate card listing and
// returns the concatenated records.
func (c *Client) ListAllRateCards(ctx context.Context, q RateCardQuery) ([]models.RateCard, error) {
	if q.PageSize <= 0 {
		q.PageSize = 200
	}
	q.Page = 1

	var all []models.RateCard
	for {
		page, errList := c.ListRateCards(ctx, q)
		if errList != nil {
			return nil, errList
		}
		all = append(all, page.Items...)
		if page.TotalPages <= q.Page || len(page.Items) == 0 {
			return all, nil
		}
		q.Page++
	}
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body any, out any) (err error) {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, errMarshal := json.Marshal(body)
		if errMarshal != nil {
			return fmt.Errorf("failed to encode request body: %w", errMarshal)
		}
		reader = bytes.NewReader(payload)
	}

	req, errReq := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if errReq != nil {
		return fmt.Errorf("failed to create request: %w", errReq)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, errDo := c.httpClient.Do(req)
	if errDo != nil {
		return fmt.Errorf("failed to call billing api: %w", errDo)
	}
	defer func() {
		if errClose := resp.Body.Close(); errClose != nil {
			if err == nil {
				err = fmt.Errorf("failed to close response body: %w", errClose)
			}
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return &RequestError{Status: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if out == nil {
		return nil
	}
	if errDecode := json.NewDecoder(resp.Body).Decode(out); errDecode != nil {
		return fmt.Errorf("failed to decode response: %w", errDecode)
	}
	return nil
}
