package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"cloclify/internal/clockify"
	"cloclify/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	app    *App
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(api clockify.API, cfg *config.Config) *RootCommand {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	root := &RootCommand{
		app:    NewApp(api, cfg),
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "cloclify",
		Short: "A command-line client for the Clockify time tracker",
		Long: `cloclify is a command-line client for the Clockify time-tracking service.

It authenticates with your API key, manages time entries (start, stop, add,
list, edit) and renders the results as colorized terminal output.

EXAMPLES:
  cloclify start "writing docs" --project docs      # Start a running entry
  cloclify stop                                     # Stop the running entry
  cloclify add "standup" --from 09:00 --to 09:15    # Add a finished entry
  cloclify list --from 2024-01-01 --to 2024-01-07   # List a week of entries
  cloclify edit 5f1e...b9 --description "review"    # Change an entry
  cloclify projects                                 # List project names

CONFIGURATION:
  CLOCKIFY_API_KEY       API key (required)
  CLOCKIFY_WORKSPACE     Workspace name (default: the account's default)
  CLOCKIFY_API_URL       API base URL (default: https://api.clockify.me/api/v1)
  CLOCKIFY_API_TIMEOUT   Per-request timeout (default: 30s)
  CLOCKIFY_TIMEOUT       Whole-invocation timeout (default: 60s)
  CLOCKIFY_DEBUG         Trace API requests on stderr

TIME FORMATS:
  Clock times:  HH:MM or "now"
  Dates:        YYYY-MM-DD, "today" or "yesterday"
  All times are interpreted in your Clockify profile's time zone.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Runs only when a subcommand actually executes, so --help and
		// usage output never require a configured API key.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := root.config.Validate(); err != nil {
				return err
			}
			if workspace, _ := cmd.Flags().GetString("workspace"); workspace != "" {
				root.app.SetWorkspace(workspace)
			}
			return nil
		},
	}

	root.cmd.PersistentFlags().String("workspace", "", "Workspace name (overrides CLOCKIFY_WORKSPACE)")
	root.cmd.PersistentFlags().Bool("debug", false, "Trace API requests on stderr (overrides CLOCKIFY_DEBUG)")

	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// App exposes the underlying application, primarily for tests.
func (r *RootCommand) App() *App {
	return r.app
}

// SetArgs overrides the arguments to parse instead of os.Args, for tests.
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// timeout builds the context bounding one command invocation.
func (r *RootCommand) timeout() (context.Context, context.CancelFunc) {
	d := r.config.Application.Timeout
	if d <= 0 {
		d = 60 * time.Second
	}
	return context.WithTimeout(context.Background(), d)
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	// Start command
	startCmd := &cobra.Command{
		Use:   "start [description...]",
		Short: "Start a running time entry",
		Long: `Start tracking time now. The entry keeps running until "cloclify stop".

The service allows at most one running entry; starting while another entry
runs is rejected by the service, not by this client.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.timeout()
			defer cancel()

			opts := StartOptions{Description: args}
			opts.Project, _ = cmd.Flags().GetString("project")
			opts.Tags, _ = cmd.Flags().GetStringArray("tag")
			opts.Billable, _ = cmd.Flags().GetBool("billable")
			opts.At, _ = cmd.Flags().GetString("at")

			return NewStartCommand(r.app).Execute(ctx, opts)
		},
	}
	startCmd.Flags().String("project", "", "Project name")
	startCmd.Flags().StringArray("tag", nil, "Tag name (repeatable)")
	startCmd.Flags().Bool("billable", false, "Mark the entry as billable")
	startCmd.Flags().String("at", "", "Start time (HH:MM, default now)")

	// Stop command
	stopCmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop the running time entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.timeout()
			defer cancel()

			opts := StopOptions{}
			opts.At, _ = cmd.Flags().GetString("at")

			return NewStopCommand(r.app).Execute(ctx, opts)
		},
	}
	stopCmd.Flags().String("at", "", "End time (HH:MM, default now)")

	// Add command
	addCmd := &cobra.Command{
		Use:   "add [description...]",
		Short: "Add a finished time entry",
		Long: `Add a time entry with explicit start and end times.

Examples:
  cloclify add "standup" --from 09:00 --to 09:15
  cloclify add "deep work" --from 13:00 --to 17:00 --date yesterday --project x`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.timeout()
			defer cancel()

			opts := AddOptions{Description: args}
			opts.From, _ = cmd.Flags().GetString("from")
			opts.To, _ = cmd.Flags().GetString("to")
			opts.Date, _ = cmd.Flags().GetString("date")
			opts.Project, _ = cmd.Flags().GetString("project")
			opts.Tags, _ = cmd.Flags().GetStringArray("tag")
			opts.Billable, _ = cmd.Flags().GetBool("billable")

			return NewAddCommand(r.app).Execute(ctx, opts)
		},
	}
	addCmd.Flags().String("from", "", "Start time (HH:MM, required)")
	addCmd.Flags().String("to", "", "End time (HH:MM, required)")
	addCmd.Flags().String("date", "", "Day of the entry (YYYY-MM-DD, default today)")
	addCmd.Flags().String("project", "", "Project name")
	addCmd.Flags().StringArray("tag", nil, "Tag name (repeatable)")
	addCmd.Flags().Bool("billable", false, "Mark the entry as billable")

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List time entries",
		Long: `List time entries for a date range, in the order the service returns them.

Examples:
  cloclify list                                   # today
  cloclify list --date yesterday                  # one specific day
  cloclify list --from 2024-01-01 --to 2024-01-07 # an inclusive range
  cloclify list --month 2024-01                   # a whole month, grouped by day
  cloclify list --year 2024                       # a whole year, grouped by day`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.timeout()
			defer cancel()

			opts := ListOptions{}
			opts.From, _ = cmd.Flags().GetString("from")
			opts.To, _ = cmd.Flags().GetString("to")
			opts.Date, _ = cmd.Flags().GetString("date")
			opts.Month, _ = cmd.Flags().GetString("month")
			opts.Year, _ = cmd.Flags().GetString("year")

			return NewListCommand(r.app).Execute(ctx, opts)
		},
	}
	listCmd.Flags().String("from", "", "First day to include (YYYY-MM-DD)")
	listCmd.Flags().String("to", "", "Last day to include (YYYY-MM-DD)")
	listCmd.Flags().String("date", "", "Single day to list (YYYY-MM-DD, today or yesterday)")
	listCmd.Flags().String("month", "", "Whole month to list (YYYY-MM)")
	listCmd.Flags().String("year", "", "Whole year to list (YYYY)")

	// Edit command
	editCmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit an existing time entry",
		Long: `Change fields of an existing time entry. Only the given flags change;
everything else keeps its current value. Entry ids are shown by "list".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.timeout()
			defer cancel()

			opts := EditOptions{ID: args[0]}
			opts.Description, _ = cmd.Flags().GetString("description")
			opts.SetDescription = cmd.Flags().Changed("description")
			opts.Project, _ = cmd.Flags().GetString("project")
			opts.SetProject = cmd.Flags().Changed("project")
			opts.Tags, _ = cmd.Flags().GetStringArray("tag")
			opts.SetTags = cmd.Flags().Changed("tag")
			opts.From, _ = cmd.Flags().GetString("from")
			opts.SetFrom = cmd.Flags().Changed("from")
			opts.To, _ = cmd.Flags().GetString("to")
			opts.SetTo = cmd.Flags().Changed("to")
			opts.Date, _ = cmd.Flags().GetString("date")
			opts.SetDate = cmd.Flags().Changed("date")
			opts.Billable, _ = cmd.Flags().GetBool("billable")
			opts.SetBillable = cmd.Flags().Changed("billable")

			return NewEditCommand(r.app).Execute(ctx, opts)
		},
	}
	editCmd.Flags().String("description", "", "New description")
	editCmd.Flags().String("project", "", "New project name (empty clears it)")
	editCmd.Flags().StringArray("tag", nil, "New tag set (repeatable, replaces all tags)")
	editCmd.Flags().String("from", "", "New start time (HH:MM)")
	editCmd.Flags().String("to", "", "New end time (HH:MM)")
	editCmd.Flags().String("date", "", "Move the entry to another day (YYYY-MM-DD)")
	editCmd.Flags().Bool("billable", false, "New billable state")

	// Projects command
	projectsCmd := &cobra.Command{
		Use:   "projects",
		Short: "List the workspace's projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.timeout()
			defer cancel()
			return NewProjectsCommand(r.app).Execute(ctx)
		},
	}

	// Tags command
	tagsCmd := &cobra.Command{
		Use:   "tags",
		Short: "List the workspace's tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.timeout()
			defer cancel()
			return NewTagsCommand(r.app).Execute(ctx)
		},
	}

	r.cmd.AddCommand(
		startCmd,
		stopCmd,
		addCmd,
		listCmd,
		editCmd,
		projectsCmd,
		tagsCmd,
	)
}
