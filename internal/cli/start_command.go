package cli

import (
	"context"
	"fmt"
	"strings"

	"cloclify/internal/clockify"
)

// StartOptions holds the parsed flags for the start command
type StartOptions struct {
	Description []string
	Project     string
	Tags        []string
	Billable    bool
	At          string // HH:MM or "now"; empty means now
}

// StartCommand handles the start command
type StartCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewStartCommand creates a new start command handler
func NewStartCommand(app *App) *StartCommand {
	return &StartCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the start command: it creates a running entry and renders it.
func (c *StartCommand) Execute(ctx context.Context, opts StartOptions) error {
	session, err := c.app.Session(ctx)
	if err != nil {
		return c.errorHandler.Handle("resolve workspace", err)
	}

	projectID, err := resolveProject(session, opts.Project)
	if err != nil {
		return err
	}
	tagIDs, err := resolveTags(session, opts.Tags)
	if err != nil {
		return err
	}

	at := opts.At
	if at == "" {
		at = "now"
	}
	today, err := parseDate("today", session.Location)
	if err != nil {
		return err
	}
	start, err := parseClock(at, today, session.Location)
	if err != nil {
		return err
	}

	entry, err := c.app.api.CreateTimeEntry(ctx, session.WorkspaceID, clockify.NewEntry{
		Start:       start,
		Description: strings.Join(opts.Description, " "),
		Billable:    opts.Billable,
		ProjectID:   projectID,
		TagIDs:      tagIDs,
	})
	if err != nil {
		return c.errorHandler.Handle("start time entry", err)
	}

	fmt.Fprintln(c.app.out, "Started time entry:")
	fmt.Fprintln(c.app.out, c.app.renderer(session).Entry(entry, session))
	return nil
}
