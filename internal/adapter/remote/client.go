package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iho/bankview/internal/domain"
)

// maxBodyBytes caps the size of a collection response.
const maxBodyBytes = 10 << 20

// Config configures the remote API client.
type Config struct {
	CreditsURL string
	DebitsURL  string
	Timeout    time.Duration
	HTTPClient *http.Client // optional
}

// Client fetches credit and debit collections over HTTP. It does not retry.
type Client struct {
	creditsURL string
	debitsURL  string
	httpClient *http.Client
}

// NewClient creates a new Client.
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		creditsURL: cfg.CreditsURL,
		debitsURL:  cfg.DebitsURL,
		httpClient: httpClient,
	}
}

// FetchCredits retrieves the credit collection.
func (c *Client) FetchCredits(ctx context.Context) ([]domain.Transaction, error) {
	return c.fetch(ctx, domain.KindCredit, c.creditsURL)
}

// FetchDebits retrieves the debit collection.
func (c *Client) FetchDebits(ctx context.Context) ([]domain.Transaction, error) {
	return c.fetch(ctx, domain.KindDebit, c.debitsURL)
}

func (c *Client) fetch(ctx context.Context, kind domain.Kind, url string) ([]domain.Transaction, error) {
	fail := func(status int, err error) error {
		return &domain.FetchError{Kind: kind, URL: url, StatusCode: status, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fail(0, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fail(0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, fail(resp.StatusCode, fmt.Errorf("unexpected status %s", resp.Status))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fail(resp.StatusCode, fmt.Errorf("read body: %w", err))
	}

	txs, err := DecodeTransactions(body)
	if err != nil {
		return nil, fail(0, err)
	}

	return txs, nil
}
