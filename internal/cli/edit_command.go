package cli

import (
	"context"
	"fmt"
	"time"

	"cloclify/internal/clockify"
	"cloclify/internal/errors"
)

// EditOptions holds the parsed flags for the edit command. The Set* flags
// record which values were actually given, so unset fields keep their
// remote state.
type EditOptions struct {
	ID string

	Description    string
	SetDescription bool

	Project    string
	SetProject bool

	Tags    []string
	SetTags bool

	From    string
	SetFrom bool

	To    string
	SetTo bool

	Date    string
	SetDate bool

	Billable    bool
	SetBillable bool
}

// EditCommand handles the edit command
type EditCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the edit command: fetch the entry, apply the given flags and
// replace it remotely. The update endpoint is a full PUT, so the fetched
// state fills every field the user did not change.
func (c *EditCommand) Execute(ctx context.Context, opts EditOptions) error {
	if opts.ID == "" {
		return errors.NewUsageError("edit requires a time entry id")
	}
	if !opts.SetDescription && !opts.SetProject && !opts.SetTags &&
		!opts.SetFrom && !opts.SetTo && !opts.SetDate && !opts.SetBillable {
		return errors.NewUsageError("edit requires at least one field to change")
	}

	session, err := c.app.Session(ctx)
	if err != nil {
		return c.errorHandler.Handle("resolve workspace", err)
	}

	entry, err := c.app.api.GetTimeEntry(ctx, session.WorkspaceID, opts.ID)
	if err != nil {
		return c.errorHandler.Handle("fetch time entry", err)
	}

	update := clockify.EntryUpdate{
		Start:       entry.Start,
		End:         entry.End,
		Description: entry.Description,
		Billable:    entry.Billable,
		ProjectID:   entry.ProjectID,
		TagIDs:      entry.TagIDs,
	}

	if opts.SetDescription {
		update.Description = opts.Description
	}
	if opts.SetProject {
		projectID, err := resolveProject(session, opts.Project)
		if err != nil {
			return err
		}
		update.ProjectID = projectID
	}
	if opts.SetTags {
		tagIDs, err := resolveTags(session, opts.Tags)
		if err != nil {
			return err
		}
		update.TagIDs = tagIDs
	}
	if opts.SetBillable {
		update.Billable = opts.Billable
	}

	// Times: the day defaults to the entry's own start day so that
	// adjusting only the clock does not move the entry to today.
	day := entry.Start.In(session.Location)
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, session.Location)
	if opts.SetDate {
		midnight, err = parseDate(opts.Date, session.Location)
		if err != nil {
			return err
		}
		// Keep the existing clock times on the new day.
		update.Start = shiftToDay(entry.Start, midnight, session.Location)
		if entry.End != nil {
			moved := shiftToDay(*entry.End, midnight, session.Location)
			update.End = &moved
		}
	}
	if opts.SetFrom {
		start, err := parseClock(opts.From, midnight, session.Location)
		if err != nil {
			return err
		}
		update.Start = start
	}
	if opts.SetTo {
		end, err := parseClock(opts.To, midnight, session.Location)
		if err != nil {
			return err
		}
		update.End = &end
	}
	if update.End != nil && !update.End.After(update.Start) {
		return errors.NewUsageError(fmt.Sprintf(
			"end time %s is not after start time %s",
			update.End.In(session.Location).Format("15:04"),
			update.Start.In(session.Location).Format("15:04")))
	}

	updated, err := c.app.api.UpdateTimeEntry(ctx, session.WorkspaceID, opts.ID, update)
	if err != nil {
		return c.errorHandler.Handle("update time entry", err)
	}

	fmt.Fprintln(c.app.out, "Updated time entry:")
	fmt.Fprintln(c.app.out, c.app.renderer(session).Entry(updated, session))
	return nil
}
