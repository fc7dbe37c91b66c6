package subtrack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// API defines the subset of the subtrack backend the client exposes.
// This interface is implemented by *Client and can be used for testing.
type API interface {
	ListSubscriptions(ctx context.Context, values url.Values) (ListPage, error)
	DeleteSubscription(ctx context.Context, id int64) error
	RestoreSubscription(ctx context.Context, id int64) (Subscription, error)
	CreateSubscription(ctx context.Context, input SubscriptionInput) (Subscription, error)
	UpdateSubscription(ctx context.Context, id int64, input SubscriptionInput) (Subscription, error)
	CancelSubscription(ctx context.Context, id int64, input CancelInput) (Subscription, error)
	ReactivateSubscription(ctx context.Context, id int64) (Subscription, error)
}

// Ensure Client implements API at compile time.
var _ API = (*Client)(nil)

// Client talks to the subtrack HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	token     string
	userAgent string
}

const (
	defaultUserAgent = "subdeck/0.1"
	requestTimeout   = 10 * time.Second
)

// NewClient builds a Client for the given base URL and bearer token.
func NewClient(baseURL, token string) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		token:     strings.TrimSpace(token),
		userAgent: defaultUserAgent,
	}, nil
}

// ListSubscriptions retrieves one page of the subscription list. The caller
// supplies pre-encoded query values; unset filters must simply be absent.
func (c *Client) ListSubscriptions(ctx context.Context, values url.Values) (ListPage, error) {
	if c == nil {
		return ListPage{}, fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: "/subscriptions", RawQuery: values.Encode()}
	var page ListPage
	if err := c.doURL(ctx, http.MethodGet, rel, nil, &page); err != nil {
		return ListPage{}, err
	}
	return page, nil
}

// DeleteSubscription removes a subscription. A 404 is returned as ErrNotFound
// so callers can reconcile an already-deleted record.
func (c *Client) DeleteSubscription(ctx context.Context, id int64) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/subscriptions/%d", id), nil, nil)
}

// RestoreSubscription undoes a prior delete and returns the restored record.
// A 400 from the backend means the record was never deleted.
func (c *Client) RestoreSubscription(ctx context.Context, id int64) (Subscription, error) {
	if c == nil {
		return Subscription{}, fmt.Errorf("client is nil")
	}
	var sub Subscription
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/subscriptions/%d/restore", id), nil, &sub)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusBadRequest {
			return Subscription{}, ErrNotDeleted
		}
		return Subscription{}, err
	}
	return sub, nil
}

// CreateSubscription creates a new subscription record.
func (c *Client) CreateSubscription(ctx context.Context, input SubscriptionInput) (Subscription, error) {
	if c == nil {
		return Subscription{}, fmt.Errorf("client is nil")
	}
	var sub Subscription
	if err := c.do(ctx, http.MethodPost, "/subscriptions", input, &sub); err != nil {
		return Subscription{}, err
	}
	return sub, nil
}

// UpdateSubscription replaces the writable fields of an existing record.
func (c *Client) UpdateSubscription(ctx context.Context, id int64, input SubscriptionInput) (Subscription, error) {
	if c == nil {
		return Subscription{}, fmt.Errorf("client is nil")
	}
	var sub Subscription
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/subscriptions/%d", id), input, &sub); err != nil {
		return Subscription{}, err
	}
	return sub, nil
}

// CancelSubscription marks a subscription cancelled with optional metadata.
func (c *Client) CancelSubscription(ctx context.Context, id int64, input CancelInput) (Subscription, error) {
	if c == nil {
		return Subscription{}, fmt.Errorf("client is nil")
	}
	var sub Subscription
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/subscriptions/%d/cancel", id), input, &sub); err != nil {
		return Subscription{}, err
	}
	return sub, nil
}

// ReactivateSubscription returns a cancelled subscription to active status.
func (c *Client) ReactivateSubscription(ctx context.Context, id int64) (Subscription, error) {
	if c == nil {
		return Subscription{}, fmt.Errorf("client is nil")
	}
	var sub Subscription
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/subscriptions/%d/reactivate", id), nil, &sub); err != nil {
		return Subscription{}, err
	}
	return sub, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	rel := &url.URL{Path: path}
	return c.doURL(ctx, method, rel, body, dest)
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, body, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("api base url is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_base %q: %w", raw, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
