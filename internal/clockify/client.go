package clockify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cloclify/internal/domain"
	"cloclify/internal/errors"
)

// API defines one operation per remote action against the Clockify service.
// Each operation performs exactly one HTTP request; there is no retry,
// batching or caching. Satisfied by Client and by test doubles.
type API interface {
	GetUser(ctx context.Context) (domain.User, error)
	ListWorkspaces(ctx context.Context) ([]domain.Workspace, error)
	ListProjects(ctx context.Context, workspaceID string) ([]domain.Project, error)
	ListTags(ctx context.Context, workspaceID string) ([]domain.Tag, error)
	ListTimeEntries(ctx context.Context, workspaceID, userID string, from, to time.Time) ([]domain.TimeEntry, error)
	GetTimeEntry(ctx context.Context, workspaceID, id string) (domain.TimeEntry, error)
	CreateTimeEntry(ctx context.Context, workspaceID string, entry NewEntry) (domain.TimeEntry, error)
	StopTimeEntry(ctx context.Context, workspaceID, userID string, end time.Time) (domain.TimeEntry, error)
	UpdateTimeEntry(ctx context.Context, workspaceID, id string, entry EntryUpdate) (domain.TimeEntry, error)
}

// Client implements API using the Clockify REST API v1.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     *slog.Logger
}

// NewClient creates an authenticated Clockify client. The timeout bounds
// each individual request; callers bound the whole invocation via ctx.
func NewClient(baseURL, apiKey string, timeout time.Duration, log *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = "https://api.clockify.me/api/v1"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// errorBody mirrors the message object Clockify returns on failures.
type errorBody struct {
	Message string `json:"message"`
}

// do performs one request and decodes the JSON response into out.
// Transport failures map to network errors, non-2xx statuses to API errors.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, out interface{}) error {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s %s request: %w", method, path, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("building %s %s request: %w", method, path, err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debug("api request", "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.NewNetworkError(fmt.Sprintf("%s %s", method, path), err)
	}
	defer resp.Body.Close()

	c.log.Debug("api response", "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		message := strings.TrimSpace(string(raw))
		var parsed errorBody
		if json.Unmarshal(raw, &parsed) == nil && parsed.Message != "" {
			message = parsed.Message
		}
		return errors.NewAPIError(method, path, resp.StatusCode, message)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

// GetUser fetches the authenticated user's profile.
func (c *Client) GetUser(ctx context.Context) (domain.User, error) {
	var raw rawUser
	if err := c.do(ctx, http.MethodGet, "user", nil, nil, &raw); err != nil {
		return domain.User{}, err
	}
	return domain.User{
		ID:               raw.ID,
		Name:             raw.Name,
		DefaultWorkspace: raw.DefaultWorkspace,
		TimeZone:         raw.Settings.TimeZone,
	}, nil
}

// ListWorkspaces fetches the workspaces visible to the configured key.
func (c *Client) ListWorkspaces(ctx context.Context) ([]domain.Workspace, error) {
	var raw []rawWorkspace
	if err := c.do(ctx, http.MethodGet, "workspaces", nil, nil, &raw); err != nil {
		return nil, err
	}
	out := make([]domain.Workspace, 0, len(raw))
	for _, w := range raw {
		out = append(out, domain.Workspace{ID: w.ID, Name: w.Name})
	}
	return out, nil
}

// ListProjects fetches the projects of a workspace.
func (c *Client) ListProjects(ctx context.Context, workspaceID string) ([]domain.Project, error) {
	path := fmt.Sprintf("workspaces/%s/projects", workspaceID)
	var raw []rawProject
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &raw); err != nil {
		return nil, err
	}
	out := make([]domain.Project, 0, len(raw))
	for _, p := range raw {
		out = append(out, p.toDomain())
	}
	return out, nil
}

// ListTags fetches the tags of a workspace.
func (c *Client) ListTags(ctx context.Context, workspaceID string) ([]domain.Tag, error) {
	path := fmt.Sprintf("workspaces/%s/tags", workspaceID)
	var raw []rawTag
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &raw); err != nil {
		return nil, err
	}
	out := make([]domain.Tag, 0, len(raw))
	for _, t := range raw {
		out = append(out, domain.Tag{ID: t.ID, Name: t.Name})
	}
	return out, nil
}

// ListTimeEntries fetches the user's entries in [from, to], in the order
// the service returns them. The range bounds keep their wall-clock reading:
// unlike entry timestamps, the service reads them in the user's time zone.
func (c *Client) ListTimeEntries(ctx context.Context, workspaceID, userID string, from, to time.Time) ([]domain.TimeEntry, error) {
	path := fmt.Sprintf("workspaces/%s/user/%s/time-entries", workspaceID, userID)
	params := url.Values{}
	params.Set("start", queryTimestamp(from))
	params.Set("end", queryTimestamp(to))

	var raw []rawTimeEntry
	if err := c.do(ctx, http.MethodGet, path, params, nil, &raw); err != nil {
		return nil, err
	}
	out := make([]domain.TimeEntry, 0, len(raw))
	for _, r := range raw {
		entry, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, nil
}

// GetTimeEntry fetches a single entry by id.
func (c *Client) GetTimeEntry(ctx context.Context, workspaceID, id string) (domain.TimeEntry, error) {
	path := fmt.Sprintf("workspaces/%s/time-entries/%s", workspaceID, id)
	var raw rawTimeEntry
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &raw); err != nil {
		return domain.TimeEntry{}, err
	}
	return raw.toDomain()
}

// CreateTimeEntry creates an entry; with a nil End it starts a running one.
// The service owns the one-running-entry invariant and rejects conflicts.
func (c *Client) CreateTimeEntry(ctx context.Context, workspaceID string, entry NewEntry) (domain.TimeEntry, error) {
	path := fmt.Sprintf("workspaces/%s/time-entries", workspaceID)
	var raw rawTimeEntry
	if err := c.do(ctx, http.MethodPost, path, nil, entry.toRequest(), &raw); err != nil {
		return domain.TimeEntry{}, err
	}
	return raw.toDomain()
}

// StopTimeEntry ends the user's currently running entry. The service
// answers 404 when nothing is running.
func (c *Client) StopTimeEntry(ctx context.Context, workspaceID, userID string, end time.Time) (domain.TimeEntry, error) {
	path := fmt.Sprintf("workspaces/%s/user/%s/time-entries", workspaceID, userID)
	body := stopTimeEntryRequest{End: apiTimestamp(end)}
	var raw rawTimeEntry
	if err := c.do(ctx, http.MethodPatch, path, nil, body, &raw); err != nil {
		return domain.TimeEntry{}, err
	}
	return raw.toDomain()
}

// UpdateTimeEntry replaces an entry's state.
func (c *Client) UpdateTimeEntry(ctx context.Context, workspaceID, id string, entry EntryUpdate) (domain.TimeEntry, error) {
	path := fmt.Sprintf("workspaces/%s/time-entries/%s", workspaceID, id)
	var raw rawTimeEntry
	if err := c.do(ctx, http.MethodPut, path, nil, entry.toRequest(), &raw); err != nil {
		return domain.TimeEntry{}, err
	}
	return raw.toDomain()
}
