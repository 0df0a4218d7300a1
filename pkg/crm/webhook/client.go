// Package webhook provides a crm.Client that posts leads as JSON to a
// configured URL (Zapier, HubSpot workflows, a custom endpoint).
package webhook

import (
	"bus2ride/pkg/crm"
	"bus2ride/pkg/domain"
	"bus2ride/pkg/upstream"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Client posts leads to a webhook. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	url        string
	token      string // token is sent as a bearer token when set
}

// DeliverLead posts the lead. The lead id doubles as the idempotency key.
func (c *Client) DeliverLead(ctx context.Context, lead domain.Lead) error {
	body, err := json.Marshal(lead)
	if err != nil {
		return fmt.Errorf("could not marshal lead: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", string(lead.ID))
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	if _, err := upstream.Do(c.httpClient, req, "deliver lead"); err != nil {
		return err
	}

	return nil
}

// Ensure Client conforms to the crm.Client interface at compile time.
var _ crm.Client = (*Client)(nil)

// New constructs a Client posting to url, authenticating with token when it
// is not empty.
func New(httpClient *http.Client, url string, token string) *Client {
	return &Client{httpClient: httpClient, url: url, token: token}
}
