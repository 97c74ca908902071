package format

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"cloclify/internal/domain"
)

var (
	timeColor     = color.New(color.FgCyan)
	descColor     = color.New(color.FgYellow)
	tagColor      = color.New(color.FgBlue)
	runningColor  = color.New(color.FgGreen)
	billableColor = color.New(color.FgMagenta)
	totalColor    = color.New(color.Bold)
	idColor       = color.New(color.Faint)
	dayColor      = color.New(color.FgCyan, color.Bold)
)

// Resolver turns the identifiers on a time entry back into names.
// Satisfied by clockify.Session.
type Resolver interface {
	ProjectByID(id string) (domain.Project, bool)
	TagByID(id string) (domain.Tag, bool)
}

// Renderer converts domain records into human-readable terminal text.
// Pure: no I/O, no clock access; timestamps are converted into Location.
type Renderer struct {
	Location      *time.Location
	TimeFormat    string
	DateFormat    string
	RunningStatus string
	ShowIDs       bool // append the entry id, needed as input for "edit"
	GroupByDay    bool // print a date heading whenever the day changes
}

// NewRenderer creates a renderer with the given display location.
func NewRenderer(loc *time.Location) *Renderer {
	if loc == nil {
		loc = time.Local
	}
	return &Renderer{
		Location:      loc,
		TimeFormat:    "15:04",
		DateFormat:    "2006-01-02",
		RunningStatus: "running",
	}
}

// FormatDuration renders a duration as hours:minutes, e.g. 90 minutes
// as "1:30". Durations of a day or more keep accumulating hours.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int(d.Minutes())
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}

// Entry renders a single time entry as one line:
//
//	2024-01-01 10:00 - 11:30 (1:30)  description  @project  +tag  $
//
// A running entry shows the running label instead of an end time and no
// duration. Missing optional fields simply drop their segment.
func (r *Renderer) Entry(entry domain.TimeEntry, resolver Resolver) string {
	var b strings.Builder

	start := entry.Start.In(r.Location)
	b.WriteString(timeColor.Sprint(start.Format(r.DateFormat + " " + r.TimeFormat)))
	b.WriteString(" - ")

	if entry.End == nil {
		b.WriteString(runningColor.Sprint(r.RunningStatus))
	} else {
		end := entry.End.In(r.Location)
		endFormat := r.TimeFormat
		if !sameDay(start, end) {
			endFormat = r.DateFormat + " " + r.TimeFormat
		}
		b.WriteString(timeColor.Sprint(end.Format(endFormat)))
		if d, ok := entry.Duration(); ok {
			b.WriteString(fmt.Sprintf(" (%s)", FormatDuration(d)))
		}
	}

	if entry.Description != "" {
		b.WriteString("  ")
		b.WriteString(descColor.Sprint(entry.Description))
	}

	if entry.ProjectID != "" && resolver != nil {
		if project, ok := resolver.ProjectByID(entry.ProjectID); ok {
			b.WriteString("  ")
			b.WriteString(projectColor(project).Sprint("@" + project.Name))
		}
	}

	if len(entry.TagIDs) > 0 && resolver != nil {
		names := make([]string, 0, len(entry.TagIDs))
		for _, id := range entry.TagIDs {
			if tag, ok := resolver.TagByID(id); ok {
				names = append(names, "+"+tag.Name)
			}
		}
		if len(names) > 0 {
			b.WriteString("  ")
			b.WriteString(tagColor.Sprint(strings.Join(names, " ")))
		}
	}

	if entry.Billable {
		b.WriteString("  ")
		b.WriteString(billableColor.Sprint("$"))
	}

	if r.ShowIDs && entry.ID != "" {
		b.WriteString("  ")
		b.WriteString(idColor.Sprintf("[%s]", entry.ID))
	}

	return b.String()
}

// Entries renders one line per entry, in exactly the order given,
// followed by a totals footer when any entry has finished. With GroupByDay
// set, a date heading precedes each run of same-day entries; the order of
// the entries themselves never changes.
func (r *Renderer) Entries(entries []domain.TimeEntry, resolver Resolver) string {
	if len(entries) == 0 {
		return "No time entries found\n"
	}

	var b strings.Builder
	var lastDay string
	for _, entry := range entries {
		if r.GroupByDay {
			day := entry.Start.In(r.Location).Format(r.DateFormat)
			if day != lastDay {
				b.WriteString(dayColor.Sprint(day))
				b.WriteString("\n")
				lastDay = day
			}
		}
		b.WriteString(r.Entry(entry, resolver))
		b.WriteString("\n")
	}
	if footer := r.totals(entries, resolver); footer != "" {
		b.WriteString(footer)
	}
	return b.String()
}

// totals sums finished entries overall and per project. Running entries
// have no end timestamp and are left out of the sums.
func (r *Renderer) totals(entries []domain.TimeEntry, resolver Resolver) string {
	var total time.Duration
	perProject := make(map[string]time.Duration)
	finished := 0

	for _, entry := range entries {
		d, ok := entry.Duration()
		if !ok {
			continue
		}
		finished++
		total += d

		name := "(no project)"
		if entry.ProjectID != "" && resolver != nil {
			if project, ok := resolver.ProjectByID(entry.ProjectID); ok {
				name = project.Name
			}
		}
		perProject[name] += d
	}

	if finished == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(totalColor.Sprintf("Total: %s", FormatDuration(total)))
	b.WriteString("\n")

	names := make([]string, 0, len(perProject))
	for name := range perProject {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b.WriteString(fmt.Sprintf("  %s: %s\n", name, FormatDuration(perProject[name])))
	}
	return b.String()
}

// Projects renders a project listing, one colored name per line.
func (r *Renderer) Projects(projects []domain.Project) string {
	if len(projects) == 0 {
		return "No projects found\n"
	}
	var b strings.Builder
	for _, p := range projects {
		b.WriteString(projectColor(p).Sprint(p.Name))
		if p.Archived {
			b.WriteString(" (archived)")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Tags renders a tag listing, one name per line.
func (r *Renderer) Tags(tags []domain.Tag) string {
	if len(tags) == 0 {
		return "No tags found\n"
	}
	var b strings.Builder
	for _, t := range tags {
		b.WriteString(tagColor.Sprint(t.Name))
		b.WriteString("\n")
	}
	return b.String()
}

// projectColor builds a color from the hex value Clockify stores per
// project, falling back to plain text when the value does not parse.
func projectColor(p domain.Project) *color.Color {
	r, g, b, ok := parseHexColor(p.Color)
	if !ok {
		return color.New()
	}
	return color.RGB(r, g, b)
}

func parseHexColor(s string) (r, g, b int, ok bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
