package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"cloclify/internal/clockify"
	"cloclify/internal/config"
	"cloclify/internal/errors"
	"cloclify/internal/format"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

var clockRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// App represents the main CLI application
type App struct {
	api       clockify.API
	config    *config.Config
	out       io.Writer
	workspace string // --workspace override; empty means config/env/default
	session   *clockify.Session
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(api clockify.API, cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &App{
		api:    api,
		config: cfg,
		out:    os.Stdout,
	}
}

// SetOutput redirects command output, primarily for tests.
func (a *App) SetOutput(w io.Writer) {
	a.out = w
}

// SetWorkspace overrides the workspace name for this invocation.
func (a *App) SetWorkspace(name string) {
	a.workspace = name
}

// Session resolves the workspace/user context on first use and reuses it
// for the rest of the invocation.
func (a *App) Session(ctx context.Context) (*clockify.Session, error) {
	if a.session != nil {
		return a.session, nil
	}
	workspace := a.workspace
	if workspace == "" {
		workspace = a.config.API.Workspace
	}
	session, err := clockify.ResolveSession(ctx, a.api, workspace)
	if err != nil {
		return nil, err
	}
	a.session = session
	return session, nil
}

// renderer builds the entry renderer for the session's time zone.
func (a *App) renderer(session *clockify.Session) *format.Renderer {
	r := format.NewRenderer(session.Location)
	r.TimeFormat = a.config.Display.TimeFormat
	r.DateFormat = a.config.Display.DateFormat
	r.RunningStatus = a.config.Display.RunningStatus
	return r
}

// resolveProject maps a project name to its record, failing with the list
// of available names when it is unknown.
func resolveProject(session *clockify.Session, name string) (string, error) {
	if name == "" {
		return "", nil
	}
	project, ok := session.ProjectByName(name)
	if !ok {
		return "", errors.NewUsageError(fmt.Sprintf(
			"unknown project %q (available: %s)",
			name, strings.Join(session.ProjectNames(), ", ")))
	}
	return project.ID, nil
}

// resolveTags maps tag names to identifiers, failing on the first
// unknown name.
func resolveTags(session *clockify.Session, names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}
	ids := make([]string, 0, len(names))
	for _, name := range names {
		tag, ok := session.TagByName(name)
		if !ok {
			return nil, errors.NewUsageError(fmt.Sprintf(
				"unknown tag %q (available: %s)",
				name, strings.Join(session.TagNames(), ", ")))
		}
		ids = append(ids, tag.ID)
	}
	return ids, nil
}

// parseDate parses "today", "yesterday" or a YYYY-MM-DD date into
// midnight of that day in the given location.
func parseDate(s string, loc *time.Location) (time.Time, error) {
	now := timeNow().In(loc)
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	switch s {
	case "", "today":
		return midnight, nil
	case "yesterday":
		return midnight.AddDate(0, 0, -1), nil
	}

	parsed, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		return time.Time{}, errors.NewUsageError(fmt.Sprintf(
			"invalid date %q (use YYYY-MM-DD, today or yesterday)", s))
	}
	return parsed, nil
}

// parseClock combines an HH:MM string (or "now") with the given day.
func parseClock(s string, day time.Time, loc *time.Location) (time.Time, error) {
	if s == "now" {
		return timeNow().In(loc), nil
	}
	matches := clockRe.FindStringSubmatch(s)
	if matches == nil {
		return time.Time{}, errors.NewUsageError(fmt.Sprintf(
			"invalid time %q (use HH:MM or now)", s))
	}
	hour, _ := strconv.Atoi(matches[1])
	minute, _ := strconv.Atoi(matches[2])
	if hour > 23 || minute > 59 {
		return time.Time{}, errors.NewUsageError(fmt.Sprintf(
			"invalid time %q (use HH:MM or now)", s))
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		hour, minute, 0, 0, loc), nil
}

// endOfDay returns the last instant of the day that starts at midnight.
func endOfDay(midnight time.Time) time.Time {
	return midnight.AddDate(0, 0, 1).Add(-time.Second)
}

// shiftToDay moves a timestamp to another day, keeping its local clock time.
func shiftToDay(t time.Time, midnight time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(midnight.Year(), midnight.Month(), midnight.Day(),
		local.Hour(), local.Minute(), local.Second(), 0, loc)
}
