package cli

import (
	"context"
	"fmt"
)

// ProjectsCommand handles the projects command
type ProjectsCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewProjectsCommand creates a new projects command handler
func NewProjectsCommand(app *App) *ProjectsCommand {
	return &ProjectsCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute lists the workspace's projects.
func (c *ProjectsCommand) Execute(ctx context.Context) error {
	session, err := c.app.Session(ctx)
	if err != nil {
		return c.errorHandler.Handle("resolve workspace", err)
	}
	fmt.Fprintf(c.app.out, "Workspace: %s\n", session.WorkspaceName)
	fmt.Fprint(c.app.out, c.app.renderer(session).Projects(session.Projects()))
	return nil
}

// TagsCommand handles the tags command
type TagsCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewTagsCommand creates a new tags command handler
func NewTagsCommand(app *App) *TagsCommand {
	return &TagsCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute lists the workspace's tags.
func (c *TagsCommand) Execute(ctx context.Context) error {
	session, err := c.app.Session(ctx)
	if err != nil {
		return c.errorHandler.Handle("resolve workspace", err)
	}
	fmt.Fprintf(c.app.out, "Workspace: %s\n", session.WorkspaceName)
	fmt.Fprint(c.app.out, c.app.renderer(session).Tags(session.Tags()))
	return nil
}
