package cli

import (
	"context"
	"fmt"
)

// StopOptions holds the parsed flags for the stop command
type StopOptions struct {
	At string // HH:MM or "now"; empty means now
}

// StopCommand handles the stop command
type StopCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewStopCommand creates a new stop command handler
func NewStopCommand(app *App) *StopCommand {
	return &StopCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the stop command: it ends the currently running entry.
func (c *StopCommand) Execute(ctx context.Context, opts StopOptions) error {
	session, err := c.app.Session(ctx)
	if err != nil {
		return c.errorHandler.Handle("resolve workspace", err)
	}

	at := opts.At
	if at == "" {
		at = "now"
	}
	today, err := parseDate("today", session.Location)
	if err != nil {
		return err
	}
	end, err := parseClock(at, today, session.Location)
	if err != nil {
		return err
	}

	entry, err := c.app.api.StopTimeEntry(ctx, session.WorkspaceID, session.UserID, end)
	if err != nil {
		return c.errorHandler.HandleStop(err)
	}

	fmt.Fprintln(c.app.out, "Stopped time entry:")
	fmt.Fprintln(c.app.out, c.app.renderer(session).Entry(entry, session))
	return nil
}
