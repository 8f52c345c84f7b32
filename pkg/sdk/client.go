// Package sdk provides the client library for the registro service.
// It supports both remote access over HTTP and local embedded mode behind
// the same registry.Service interface.
package sdk

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/registrolabs/registro/pkg/registry"
	"github.com/registrolabs/registro/pkg/schema"
)

// Client is a remote registro client. It implements registry.Service, so
// code written against the interface works unchanged against a daemon.
type Client struct {
	http *resty.Client
}

// Connect returns a client for the daemon at baseURL, e.g.
// "http://localhost:8080". No connection is made until the first call.
func Connect(baseURL string) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(30 * time.Second).
		SetHeader("Accept", "application/json")
	return &Client{http: rc}
}

// envelope mirrors schema.Envelope with a raw payload so each call can
// decode data into its own type.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Create submits a new record. Validation runs locally first so the
// client reports the same *registry.ValidationError the embedded registry
// would, without a round trip.
func (c *Client) Create(name, email string) (schema.Record, error) {
	payload := schema.NewRecord{
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
	}

	var missing []string
	if payload.Name == "" {
		missing = append(missing, "name")
	}
	if payload.Email == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return schema.Record{}, &registry.ValidationError{Fields: missing}
	}

	var env envelope
	resp, err := c.http.R().
		SetBody(payload).
		SetResult(&env).
		SetError(&env).
		Post("/resources")
	if err != nil {
		return schema.Record{}, fmt.Errorf("create record: %w", err)
	}
	if resp.IsError() {
		return schema.Record{}, apiError(resp.StatusCode(), env.Error)
	}

	var rec schema.Record
	if err := json.Unmarshal(env.Data, &rec); err != nil {
		return schema.Record{}, fmt.Errorf("decode record: %w", err)
	}
	return rec, nil
}

// Get fetches a single record by id.
func (c *Client) Get(id int) (schema.Record, error) {
	if id <= 0 {
		return schema.Record{}, registry.ErrInvalidID
	}

	var env envelope
	resp, err := c.http.R().
		SetResult(&env).
		SetError(&env).
		Get(fmt.Sprintf("/resources/%d", id))
	if err != nil {
		return schema.Record{}, fmt.Errorf("get record %d: %w", id, err)
	}
	if resp.IsError() {
		return schema.Record{}, apiError(resp.StatusCode(), env.Error)
	}

	var rec schema.Record
	if err := json.Unmarshal(env.Data, &rec); err != nil {
		return schema.Record{}, fmt.Errorf("decode record: %w", err)
	}
	return rec, nil
}

// List fetches all records in insertion order.
func (c *Client) List() ([]schema.Record, error) {
	var env envelope
	resp, err := c.http.R().
		SetResult(&env).
		SetError(&env).
		Get("/resources")
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	if resp.IsError() {
		return nil, apiError(resp.StatusCode(), env.Error)
	}

	var records []schema.Record
	if err := json.Unmarshal(env.Data, &records); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	return records, nil
}

// Health reports whether the daemon is reachable and healthy.
func (c *Client) Health() error {
	var env envelope
	resp, err := c.http.R().
		SetResult(&env).
		SetError(&env).
		Get("/health")
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	if resp.IsError() || !env.Success {
		return fmt.Errorf("daemon unhealthy: status %d", resp.StatusCode())
	}
	return nil
}

// apiError maps response statuses back onto the registry error taxonomy
// so remote and embedded callers can branch on the same sentinels.
func apiError(status int, msg string) error {
	switch status {
	case http.StatusNotFound:
		return registry.ErrNotFound
	case http.StatusBadRequest:
		if msg == registry.ErrInvalidID.Error() {
			return registry.ErrInvalidID
		}
		return fmt.Errorf("rejected by server: %s", msg)
	}
	if msg == "" {
		msg = "unknown error"
	}
	return fmt.Errorf("server error (%d): %s", status, msg)
}
