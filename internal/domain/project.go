package domain

// Project is a Clockify project, fetched to resolve human-readable
// names to identifiers and back. Read-only from this client's perspective.
type Project struct {
	ID       string
	Name     string
	Color    string // hex string as reported by the service, e.g. "#FF5722"
	Archived bool
}

// Tag is a Clockify tag. Same read-only role as Project.
type Tag struct {
	ID   string
	Name string
}
