// Package plaid is a thin client for the Plaid transactions API. It is a
// separate ingestion path from the PDF pipeline: its output is its own
// table and never enters the statement hash/dedup logic.
package plaid

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

var hosts = map[string]string{
	"sandbox":     "https://sandbox.plaid.com",
	"development": "https://development.plaid.com",
	"production":  "https://production.plaid.com",
}

// Client calls the Plaid API with credentials from the environment.
type Client struct {
	BaseURL  string
	ClientID string
	Secret   string
	HTTP     *http.Client
}

// NewFromEnv builds a client from PLAID_ENV, PLAID_CLIENT_ID and
// PLAID_SECRET. Unknown or empty PLAID_ENV falls back to sandbox.
func NewFromEnv() *Client {
	baseURL, ok := hosts[os.Getenv("PLAID_ENV")]
	if !ok {
		baseURL = hosts["sandbox"]
	}
	return &Client{
		BaseURL:  baseURL,
		ClientID: os.Getenv("PLAID_CLIENT_ID"),
		Secret:   os.Getenv("PLAID_SECRET"),
		HTTP:     &http.Client{Timeout: 30 * time.Second},
	}
}

// Transaction is the subset of Plaid's transaction schema carried into
// the CSV export.
type Transaction struct {
	Date     string  `json:"date" csv:"Date"`
	Name     string  `json:"name" csv:"Name"`
	Amount   float64 `json:"amount" csv:"Amount"`
	Currency string  `json:"iso_currency_code" csv:"Currency"`
	Pending  bool    `json:"pending" csv:"Pending"`
}

type transactionsGetOptions struct {
	Count int `json:"count"`
}

type transactionsGetRequest struct {
	ClientID    string                 `json:"client_id"`
	Secret      string                 `json:"secret"`
	AccessToken string                 `json:"access_token"`
	StartDate   string                 `json:"start_date"`
	EndDate     string                 `json:"end_date"`
	Options     transactionsGetOptions `json:"options"`
}

type transactionsGetResponse struct {
	Transactions []Transaction `json:"transactions"`
	ErrorType    string        `json:"error_type"`
	ErrorMessage string        `json:"error_message"`
}

// RecentTransactions fetches up to 100 transactions from the last days
// days for the account behind accessToken.
func (c *Client) RecentTransactions(ctx context.Context, accessToken string, days int) ([]Transaction, error) {
	if days <= 0 {
		days = 30
	}
	end := time.Now()
	start := end.AddDate(0, 0, -days)

	payload, err := json.Marshal(transactionsGetRequest{
		ClientID:    c.ClientID,
		Secret:      c.Secret,
		AccessToken: accessToken,
		StartDate:   start.Format("2006-01-02"),
		EndDate:     end.Format("2006-01-02"),
		Options:     transactionsGetOptions{Count: 100},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/transactions/get", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body transactionsGetResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding plaid response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("plaid error %s: %s", body.ErrorType, body.ErrorMessage)
	}

	return body.Transactions, nil
}
