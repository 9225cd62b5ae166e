// Package notify delivers message notifications to the configured HTTP
// endpoint. Delivery is fire-and-forget from the caller's point of view:
// failures are returned for logging but never block the message flow.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const dispatchTimeout = 2 * time.Second

// Payload is the JSON body posted to the notification endpoint.
type Payload struct {
	SellerEmail string `json:"sellerEmail"`
	BuyerEmail  string `json:"buyerEmail"`
	BuyerName   string `json:"buyerName"`
	Message     string `json:"message"`
	ListingID   string `json:"listingId"`
}

type Client struct {
	endpoint string
	httpc    *http.Client
}

// NewClient returns nil when no endpoint is configured; a nil client skips
// dispatch and reports success.
func NewClient(endpoint string) *Client {
	if endpoint == "" {
		return nil
	}
	return &Client{
		endpoint: endpoint,
		httpc:    &http.Client{Timeout: dispatchTimeout},
	}
}

// Notify posts the payload under a short deadline so a slow endpoint cannot
// hold up message submission.
func (c *Client) Notify(ctx context.Context, p Payload) error {
	if c == nil {
		return nil
	}
	body, err := json.Marshal(p)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, dispatchTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("notification endpoint returned %d", resp.StatusCode)
	}
	return nil
}
