package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/nattavat/prdir/internal/client/models"
	"github.com/nattavat/prdir/internal/common"
)

// Write protocol actions.
const (
	actionCreate     = "create"
	actionUpdate     = "update"
	actionDelete     = "delete"
	actionSaveUser   = "saveUser"
	actionDeleteUser = "deleteUser"
)

// HTTPClient implements Client against a single HTTP endpoint.
type HTTPClient struct {
	endpointURL string
	httpClient  *http.Client
	now         func() time.Time
}

// NewHTTPClient returns an HTTPClient for the given endpoint URL. timeout
// bounds every request; the endpoint is a slow spreadsheet script, so the
// caller should allow several seconds.
func NewHTTPClient(endpointURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		endpointURL: endpointURL,
		httpClient:  &http.Client{Timeout: timeout},
		now:         time.Now,
	}
}

// get issues a read for the given entity action and returns the raw rows.
// A cache-busting timestamp is added because the script endpoint sits behind
// an aggressive GET cache.
func (c *HTTPClient) get(ctx context.Context, action string) ([]json.RawMessage, error) {
	u, err := url.Parse(c.endpointURL)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint url: %w", err)
	}
	q := u.Query()
	q.Set("action", action)
	q.Set("t", strconv.FormatInt(c.now().UnixMilli(), 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", common.ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}

	rows, err := decodeRows(body)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed body: %v", common.ErrUnavailable, err)
	}
	return rows, nil
}

// notify posts a one-way write. The response body and status are deliberately
// not consulted: the script endpoint acknowledges nothing useful, so the only
// failure mode surfaced here is a transport-level one.
func (c *HTTPClient) notify(ctx context.Context, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.Body.Close()
}

// GetContacts reads all contact rows in sheet order.
func (c *HTTPClient) GetContacts(ctx context.Context) ([]models.Contact, error) {
	rows, err := c.get(ctx, "getContacts")
	if err != nil {
		return nil, err
	}

	contacts := make([]models.Contact, 0, len(rows))
	for _, raw := range rows {
		var r contactRow
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, fmt.Errorf("%w: malformed contact row: %v", common.ErrUnavailable, err)
		}
		contacts = append(contacts, r.toContact())
	}
	return contacts, nil
}

// GetUsers reads all account rows.
func (c *HTTPClient) GetUsers(ctx context.Context) ([]models.User, error) {
	rows, err := c.get(ctx, "getUsers")
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, len(rows))
	for _, raw := range rows {
		var r userRow
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, fmt.Errorf("%w: malformed user row: %v", common.ErrUnavailable, err)
		}
		users = append(users, r.toUser())
	}
	return users, nil
}

// contactPayload carries the labelled fields both flat and nested under
// "data": older script versions read the flat keys, newer ones read "data".
func contactPayload(action string, c models.Contact) map[string]any {
	fields := contactFields(c)
	payload := make(map[string]any, len(fields)+3)
	for k, v := range fields {
		payload[k] = v
	}
	payload["action"] = action
	payload["data"] = fields
	return payload
}

// CreateContact dispatches a one-way create.
func (c *HTTPClient) CreateContact(ctx context.Context, contact models.Contact) error {
	return c.notify(ctx, contactPayload(actionCreate, contact))
}

// UpdateContact dispatches a one-way update keyed by row id.
func (c *HTTPClient) UpdateContact(ctx context.Context, contact models.Contact) error {
	payload := contactPayload(actionUpdate, contact)
	payload["rowId"] = contact.ID
	return c.notify(ctx, payload)
}

// DeleteContact dispatches a one-way delete keyed by row id.
func (c *HTTPClient) DeleteContact(ctx context.Context, id string) error {
	return c.notify(ctx, map[string]any{"action": actionDelete, "rowId": id})
}

// SaveUser dispatches a one-way account upsert.
func (c *HTTPClient) SaveUser(ctx context.Context, u models.User) error {
	return c.notify(ctx, map[string]any{
		"action":   actionSaveUser,
		"id":       u.ID,
		"username": u.Username,
		"password": u.Password,
		"name":     u.Name,
		"role":     string(u.Role),
	})
}

// DeleteUser dispatches a one-way account delete.
func (c *HTTPClient) DeleteUser(ctx context.Context, id string) error {
	return c.notify(ctx, map[string]any{"action": actionDeleteUser, "id": id})
}
