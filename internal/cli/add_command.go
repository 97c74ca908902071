package cli

import (
	"context"
	"fmt"
	"strings"

	"cloclify/internal/clockify"
	"cloclify/internal/errors"
)

// AddOptions holds the parsed flags for the add command
type AddOptions struct {
	Description []string
	From        string // HH:MM, required
	To          string // HH:MM, required
	Date        string // YYYY-MM-DD, today or yesterday; empty means today
	Project     string
	Tags        []string
	Billable    bool
}

// AddCommand handles the add command
type AddCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the add command: it creates one finished entry.
func (c *AddCommand) Execute(ctx context.Context, opts AddOptions) error {
	if opts.From == "" || opts.To == "" {
		return errors.NewUsageError("add requires both --from and --to times")
	}

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

	day, err := parseDate(opts.Date, session.Location)
	if err != nil {
		return err
	}
	start, err := parseClock(opts.From, day, session.Location)
	if err != nil {
		return err
	}
	end, err := parseClock(opts.To, day, session.Location)
	if err != nil {
		return err
	}
	if !end.After(start) {
		return errors.NewUsageError(fmt.Sprintf(
			"end time %s is not after start time %s", opts.To, opts.From))
	}

	entry, err := c.app.api.CreateTimeEntry(ctx, session.WorkspaceID, clockify.NewEntry{
		Start:       start,
		End:         &end,
		Description: strings.Join(opts.Description, " "),
		Billable:    opts.Billable,
		ProjectID:   projectID,
		TagIDs:      tagIDs,
	})
	if err != nil {
		return c.errorHandler.Handle("add time entry", err)
	}

	fmt.Fprintln(c.app.out, "Added time entry:")
	fmt.Fprintln(c.app.out, c.app.renderer(session).Entry(entry, session))
	return nil
}
