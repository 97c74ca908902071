package clockify

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"cloclify/internal/domain"
	"cloclify/internal/errors"
)

// Session is the workspace/user context resolved once at startup and used
// to scope all subsequent requests. It also carries the project and tag
// catalogs so names can be resolved to identifiers and back.
type Session struct {
	UserID        string
	WorkspaceID   string
	WorkspaceName string
	Location      *time.Location

	projectsByName map[string]domain.Project
	projectsByID   map[string]domain.Project
	tagsByName     map[string]domain.Tag
	tagsByID       map[string]domain.Tag
}

// ResolveSession fetches the user, picks the workspace and loads the
// project and tag catalogs. Workspace selection: the given name wins over
// the account's default; an unknown name is a usage error listing what is
// available.
func ResolveSession(ctx context.Context, api API, workspaceName string) (*Session, error) {
	user, err := api.GetUser(ctx)
	if err != nil {
		return nil, err
	}

	sess := &Session{UserID: user.ID}

	sess.Location = time.Local
	if user.TimeZone != "" {
		if loc, err := time.LoadLocation(user.TimeZone); err == nil {
			sess.Location = loc
		}
	}

	workspaces, err := api.ListWorkspaces(ctx)
	if err != nil {
		return nil, err
	}

	if workspaceName != "" {
		for _, ws := range workspaces {
			if ws.Name == workspaceName {
				sess.WorkspaceID = ws.ID
				sess.WorkspaceName = ws.Name
				break
			}
		}
		if sess.WorkspaceID == "" {
			names := make([]string, 0, len(workspaces))
			for _, ws := range workspaces {
				names = append(names, ws.Name)
			}
			return nil, errors.NewUsageError(fmt.Sprintf(
				"no workspace named %q found (available: %s)",
				workspaceName, strings.Join(names, ", ")))
		}
	} else {
		sess.WorkspaceID = user.DefaultWorkspace
		for _, ws := range workspaces {
			if ws.ID == sess.WorkspaceID {
				sess.WorkspaceName = ws.Name
				break
			}
		}
	}

	projects, err := api.ListProjects(ctx, sess.WorkspaceID)
	if err != nil {
		return nil, err
	}
	sess.projectsByName = make(map[string]domain.Project, len(projects))
	sess.projectsByID = make(map[string]domain.Project, len(projects))
	for _, p := range projects {
		sess.projectsByName[p.Name] = p
		sess.projectsByID[p.ID] = p
	}

	tags, err := api.ListTags(ctx, sess.WorkspaceID)
	if err != nil {
		return nil, err
	}
	sess.tagsByName = make(map[string]domain.Tag, len(tags))
	sess.tagsByID = make(map[string]domain.Tag, len(tags))
	for _, t := range tags {
		sess.tagsByName[t.Name] = t
		sess.tagsByID[t.ID] = t
	}

	return sess, nil
}

// ProjectByName looks up a project by its human-readable name.
func (s *Session) ProjectByName(name string) (domain.Project, bool) {
	p, ok := s.projectsByName[name]
	return p, ok
}

// ProjectByID looks up a project by identifier.
func (s *Session) ProjectByID(id string) (domain.Project, bool) {
	p, ok := s.projectsByID[id]
	return p, ok
}

// TagByName looks up a tag by its human-readable name.
func (s *Session) TagByName(name string) (domain.Tag, bool) {
	t, ok := s.tagsByName[name]
	return t, ok
}

// TagByID looks up a tag by identifier.
func (s *Session) TagByID(id string) (domain.Tag, bool) {
	t, ok := s.tagsByID[id]
	return t, ok
}

// ProjectNames returns the known project names, sorted.
func (s *Session) ProjectNames() []string {
	names := make([]string, 0, len(s.projectsByName))
	for name := range s.projectsByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TagNames returns the known tag names, sorted.
func (s *Session) TagNames() []string {
	names := make([]string, 0, len(s.tagsByName))
	for name := range s.tagsByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Projects returns the workspace's projects sorted by name.
func (s *Session) Projects() []domain.Project {
	out := make([]domain.Project, 0, len(s.projectsByID))
	for _, p := range s.projectsByID {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Tags returns the workspace's tags sorted by name.
func (s *Session) Tags() []domain.Tag {
	out := make([]domain.Tag, 0, len(s.tagsByID))
	for _, t := range s.tagsByID {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
