package clockify

import (
	"fmt"
	"time"

	"cloclify/internal/domain"
)

// apiTimestamp converts a time to the format Clockify expects. The API
// documents ISO-8601 but rejects any suffix other than a literal "Z", so
// times are always sent in UTC.
func apiTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05Z")
}

// queryTimestamp formats a time-entry range bound. The service interprets
// these bounds in the user's profile time zone, so the wall-clock reading is
// kept as-is and only the mandatory "Z" suffix is appended.
func queryTimestamp(t time.Time) string {
	return t.Format("2006-01-02T15:04:05") + "Z"
}

// rawTimeInterval mirrors the timeInterval object from the Clockify API.
type rawTimeInterval struct {
	Start string  `json:"start"`
	End   *string `json:"end"`
}

// rawTimeEntry mirrors a time entry as returned by the Clockify API.
type rawTimeEntry struct {
	ID           string          `json:"id"`
	Description  string          `json:"description"`
	Billable     bool            `json:"billable"`
	ProjectID    *string         `json:"projectId"`
	TagIDs       []string        `json:"tagIds"`
	UserID       string          `json:"userId"`
	WorkspaceID  string          `json:"workspaceId"`
	TimeInterval rawTimeInterval `json:"timeInterval"`
}

func (r rawTimeEntry) toDomain() (domain.TimeEntry, error) {
	start, err := time.Parse(time.RFC3339, r.TimeInterval.Start)
	if err != nil {
		return domain.TimeEntry{}, fmt.Errorf("invalid start timestamp %q: %w", r.TimeInterval.Start, err)
	}

	entry := domain.TimeEntry{
		ID:          r.ID,
		Description: r.Description,
		Start:       start,
		Billable:    r.Billable,
		TagIDs:      r.TagIDs,
	}

	if r.TimeInterval.End != nil {
		end, err := time.Parse(time.RFC3339, *r.TimeInterval.End)
		if err != nil {
			return domain.TimeEntry{}, fmt.Errorf("invalid end timestamp %q: %w", *r.TimeInterval.End, err)
		}
		entry.End = &end
	}

	if r.ProjectID != nil {
		entry.ProjectID = *r.ProjectID
	}

	return entry, nil
}

type rawProject struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	Archived bool   `json:"archived"`
}

func (r rawProject) toDomain() domain.Project {
	return domain.Project{
		ID:       r.ID,
		Name:     r.Name,
		Color:    r.Color,
		Archived: r.Archived,
	}
}

type rawTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type rawWorkspace struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type rawUserSettings struct {
	TimeZone string `json:"timeZone"`
}

type rawUser struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	DefaultWorkspace string          `json:"defaultWorkspace"`
	Settings         rawUserSettings `json:"settings"`
}

// createTimeEntryRequest is the POST body for a new time entry.
type createTimeEntryRequest struct {
	Start       string   `json:"start"`
	End         *string  `json:"end,omitempty"`
	Description string   `json:"description"`
	Billable    bool     `json:"billable"`
	ProjectID   string   `json:"projectId,omitempty"`
	TagIDs      []string `json:"tagIds"`
}

// stopTimeEntryRequest is the PATCH body ending the running entry.
type stopTimeEntryRequest struct {
	End string `json:"end"`
}

// NewEntry holds the validated parameters for creating a time entry.
// A nil End creates a running entry.
type NewEntry struct {
	Start       time.Time
	End         *time.Time
	Description string
	Billable    bool
	ProjectID   string
	TagIDs      []string
}

func (e NewEntry) toRequest() createTimeEntryRequest {
	req := createTimeEntryRequest{
		Start:       apiTimestamp(e.Start),
		Description: e.Description,
		Billable:    e.Billable,
		ProjectID:   e.ProjectID,
		TagIDs:      e.TagIDs,
	}
	if req.TagIDs == nil {
		req.TagIDs = []string{}
	}
	if e.End != nil {
		end := apiTimestamp(*e.End)
		req.End = &end
	}
	return req
}

// EntryUpdate holds the full replacement state for an existing entry;
// the Clockify update endpoint is a full PUT, not a partial patch.
type EntryUpdate struct {
	Start       time.Time
	End         *time.Time
	Description string
	Billable    bool
	ProjectID   string
	TagIDs      []string
}

func (e EntryUpdate) toRequest() createTimeEntryRequest {
	return NewEntry(e).toRequest()
}
