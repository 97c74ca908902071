package cli

import (
	"context"
	"fmt"
	"time"

	"cloclify/internal/errors"
)

// ListOptions holds the parsed flags for the list command
type ListOptions struct {
	From  string // date of the first day to include
	To    string // date of the last day to include
	Date  string // single day shorthand
	Month string // whole-month shorthand, YYYY-MM
	Year  string // whole-year shorthand, YYYY
}

// ListCommand handles the list command
type ListCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the list command: it fetches the entries of the requested
// date range and prints them in the order the service returned them.
// Ranges longer than one day get a date heading per day.
func (c *ListCommand) Execute(ctx context.Context, opts ListOptions) error {
	exclusive := 0
	if opts.Date != "" {
		exclusive++
	}
	if opts.Month != "" {
		exclusive++
	}
	if opts.Year != "" {
		exclusive++
	}
	if opts.From != "" || opts.To != "" {
		exclusive++
	}
	if exclusive > 1 {
		return errors.NewUsageError("--date, --month, --year and --from/--to are mutually exclusive")
	}

	session, err := c.app.Session(ctx)
	if err != nil {
		return c.errorHandler.Handle("resolve workspace", err)
	}

	var from, lastDay time.Time
	switch {
	case opts.Month != "":
		month, err := time.ParseInLocation("2006-01", opts.Month, session.Location)
		if err != nil {
			return errors.NewUsageError(fmt.Sprintf(
				"invalid month %q (use YYYY-MM)", opts.Month))
		}
		from = month
		lastDay = month.AddDate(0, 1, -1)
	case opts.Year != "":
		year, err := time.ParseInLocation("2006", opts.Year, session.Location)
		if err != nil {
			return errors.NewUsageError(fmt.Sprintf(
				"invalid year %q (use YYYY)", opts.Year))
		}
		from = year
		lastDay = year.AddDate(1, 0, -1)
	default:
		fromArg, toArg := opts.From, opts.To
		if opts.Date != "" {
			fromArg, toArg = opts.Date, opts.Date
		}
		if toArg == "" {
			toArg = fromArg // single --from lists just that day
		}
		if from, err = parseDate(fromArg, session.Location); err != nil {
			return err
		}
		if lastDay, err = parseDate(toArg, session.Location); err != nil {
			return err
		}
		if lastDay.Before(from) {
			return errors.NewUsageError(fmt.Sprintf(
				"--to %s is before --from %s", toArg, fromArg))
		}
	}
	to := endOfDay(lastDay)

	entries, err := c.app.api.ListTimeEntries(ctx, session.WorkspaceID, session.UserID, from, to)
	if err != nil {
		return c.errorHandler.Handle("list time entries", err)
	}

	renderer := c.app.renderer(session)
	renderer.ShowIDs = true
	renderer.GroupByDay = !from.Equal(lastDay)
	fmt.Fprintf(c.app.out, "Workspace: %s\n", session.WorkspaceName)
	fmt.Fprint(c.app.out, renderer.Entries(entries, session))
	return nil
}
