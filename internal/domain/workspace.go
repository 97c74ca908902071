package domain

// Workspace is a top-level grouping in Clockify, scoping projects,
// tags and time entries.
type Workspace struct {
	ID   string
	Name string
}

// User holds the account information needed to scope requests.
type User struct {
	ID               string
	Name             string
	DefaultWorkspace string
	TimeZone         string // IANA name from the user's Clockify settings
}
