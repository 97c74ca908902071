package cli

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/fatih/color"

	"cloclify/internal/clockify"
	"cloclify/internal/config"
	"cloclify/internal/domain"
	"cloclify/internal/errors"
)

func TestMain(m *testing.M) {
	// Plain output so assertions see text, not escape codes
	color.NoColor = true
	m.Run()
}

// entryFixture builds a minimal time entry for seeding the mock.
func entryFixture(id, description string, start time.Time, end *time.Time) domain.TimeEntry {
	return domain.TimeEntry{ID: id, Description: description, Start: start, End: end}
}

// withFixedNow pins the clock for one test.
func withFixedNow(t *testing.T, now time.Time) {
	t.Helper()
	old := timeNow
	timeNow = func() time.Time { return now }
	t.Cleanup(func() { timeNow = old })
}

// mockAPI implements clockify.API against in-memory data and records the
// operations invoked, so tests can assert that usage errors cause no
// network activity.
type mockAPI struct {
	calls []string

	user       domain.User
	workspaces []domain.Workspace
	projects   []domain.Project
	tags       []domain.Tag
	entries    []domain.TimeEntry
	running    *domain.TimeEntry

	created []clockify.NewEntry
	updated []clockify.EntryUpdate

	listFrom, listTo time.Time

	failWith error // when set, every remote operation fails with it
	nextID   int
}

// newMockAPI creates a mock with one workspace, two projects and two tags.
func newMockAPI() *mockAPI {
	return &mockAPI{
		user: domain.User{
			ID:               "user1",
			Name:             "Jane",
			DefaultWorkspace: "ws1",
			TimeZone:         "UTC",
		},
		workspaces: []domain.Workspace{
			{ID: "ws1", Name: "Personal"},
			{ID: "ws2", Name: "Work"},
		},
		projects: []domain.Project{
			{ID: "p1", Name: "qutebrowser", Color: "#FF5722"},
			{ID: "p2", Name: "cloclify", Color: "#4CAF50"},
		},
		tags: []domain.Tag{
			{ID: "t1", Name: "dev"},
			{ID: "t2", Name: "review"},
		},
		nextID: 1,
	}
}

func (m *mockAPI) record(name string) {
	m.calls = append(m.calls, name)
}

func (m *mockAPI) callCount(name string) int {
	count := 0
	for _, call := range m.calls {
		if call == name {
			count++
		}
	}
	return count
}

func (m *mockAPI) GetUser(ctx context.Context) (domain.User, error) {
	m.record("GetUser")
	if m.failWith != nil {
		return domain.User{}, m.failWith
	}
	return m.user, nil
}

func (m *mockAPI) ListWorkspaces(ctx context.Context) ([]domain.Workspace, error) {
	m.record("ListWorkspaces")
	if m.failWith != nil {
		return nil, m.failWith
	}
	return m.workspaces, nil
}

func (m *mockAPI) ListProjects(ctx context.Context, workspaceID string) ([]domain.Project, error) {
	m.record("ListProjects")
	if m.failWith != nil {
		return nil, m.failWith
	}
	return m.projects, nil
}

func (m *mockAPI) ListTags(ctx context.Context, workspaceID string) ([]domain.Tag, error) {
	m.record("ListTags")
	if m.failWith != nil {
		return nil, m.failWith
	}
	return m.tags, nil
}

func (m *mockAPI) ListTimeEntries(ctx context.Context, workspaceID, userID string, from, to time.Time) ([]domain.TimeEntry, error) {
	m.record("ListTimeEntries")
	if m.failWith != nil {
		return nil, m.failWith
	}
	m.listFrom, m.listTo = from, to
	return m.entries, nil
}

func (m *mockAPI) GetTimeEntry(ctx context.Context, workspaceID, id string) (domain.TimeEntry, error) {
	m.record("GetTimeEntry")
	if m.failWith != nil {
		return domain.TimeEntry{}, m.failWith
	}
	for _, entry := range m.entries {
		if entry.ID == id {
			return entry, nil
		}
	}
	return domain.TimeEntry{}, errors.NewAPIError("GET",
		fmt.Sprintf("workspaces/%s/time-entries/%s", workspaceID, id),
		http.StatusNotFound, "time entry not found")
}

func (m *mockAPI) CreateTimeEntry(ctx context.Context, workspaceID string, entry clockify.NewEntry) (domain.TimeEntry, error) {
	m.record("CreateTimeEntry")
	if m.failWith != nil {
		return domain.TimeEntry{}, m.failWith
	}
	m.created = append(m.created, entry)

	created := domain.TimeEntry{
		ID:          fmt.Sprintf("e%d", m.nextID),
		Description: entry.Description,
		Start:       entry.Start,
		End:         entry.End,
		ProjectID:   entry.ProjectID,
		TagIDs:      entry.TagIDs,
		Billable:    entry.Billable,
	}
	m.nextID++
	m.entries = append(m.entries, created)
	if created.End == nil {
		m.running = &created
	}
	return created, nil
}

func (m *mockAPI) StopTimeEntry(ctx context.Context, workspaceID, userID string, end time.Time) (domain.TimeEntry, error) {
	m.record("StopTimeEntry")
	if m.failWith != nil {
		return domain.TimeEntry{}, m.failWith
	}
	if m.running == nil {
		return domain.TimeEntry{}, errors.NewAPIError("PATCH",
			fmt.Sprintf("workspaces/%s/user/%s/time-entries", workspaceID, userID),
			http.StatusNotFound, "no running time entry")
	}
	stopped := m.running.Stop(end)
	m.running = nil
	return stopped, nil
}

func (m *mockAPI) UpdateTimeEntry(ctx context.Context, workspaceID, id string, entry clockify.EntryUpdate) (domain.TimeEntry, error) {
	m.record("UpdateTimeEntry")
	if m.failWith != nil {
		return domain.TimeEntry{}, m.failWith
	}
	m.updated = append(m.updated, entry)
	return domain.TimeEntry{
		ID:          id,
		Description: entry.Description,
		Start:       entry.Start,
		End:         entry.End,
		ProjectID:   entry.ProjectID,
		TagIDs:      entry.TagIDs,
		Billable:    entry.Billable,
	}, nil
}

// setupTestApp wires an App against a fresh mock, capturing output.
func setupTestApp(t *testing.T) (*App, *mockAPI, *bytes.Buffer) {
	t.Helper()
	mock := newMockAPI()
	app := NewApp(mock, config.NewConfig())
	buf := &bytes.Buffer{}
	app.SetOutput(buf)
	return app, mock, buf
}
