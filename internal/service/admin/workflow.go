// Package admin orchestrates the admin area: listing, form prefill, and the
// create, update, delete and toggle operations for projects, developers and
// users, including image uploads for projects and developers.
package admin

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"estateadmin/internal/domain/services"
	"estateadmin/internal/formoptions"
)

// Kinds as they appear in admin URLs
const (
	KindProjects   = "projects"
	KindDevelopers = "developers"
	KindUsers      = "users"
)

// ListPath returns /admin/<kind>
func ListPath(kind string) string { return "/admin/" + kind }

// CreatePath returns /admin/<kind>/create
func CreatePath(kind string) string { return "/admin/" + kind + "/create" }

// EditPath returns /admin/<kind>/edit/<id>
func EditPath(kind string, id int64) string {
	return "/admin/" + kind + "/edit/" + strconv.FormatInt(id, 10)
}

// Config holds workflow settings
type Config struct {
	// District is the formoptions key whose wards the project form offers
	District string
}

// Deps are the collaborators of the workflow
type Deps struct {
	Projects   services.ProjectService
	Developers services.DeveloperService
	Users      services.UserService
	Uploads    services.FileStore
	Options    *formoptions.Registry
	Config     Config
	Logger     *slog.Logger
}

// Workflow holds no per-request state and is safe for concurrent use
type Workflow struct {
	projects   services.ProjectService
	developers services.DeveloperService
	users      services.UserService
	uploads    services.FileStore
	district   formoptions.District
	logger     *slog.Logger
}

// NewWorkflow resolves the configured district up front so form preparation cannot fail on it
func NewWorkflow(deps Deps) (*Workflow, error) {
	if deps.Projects == nil || deps.Developers == nil || deps.Users == nil || deps.Uploads == nil {
		return nil, fmt.Errorf("admin workflow: missing collaborator")
	}
	if deps.Options == nil {
		return nil, fmt.Errorf("admin workflow: missing form options")
	}

	district, err := deps.Options.District(deps.Config.District)
	if err != nil {
		return nil, fmt.Errorf("admin workflow: %w", err)
	}

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Workflow{
		projects:   deps.Projects,
		developers: deps.Developers,
		users:      deps.Users,
		uploads:    deps.Uploads,
		district:   district,
		logger:     logger,
	}, nil
}

// wards returns a fresh copy so callers may not alter the resolved district
func (w *Workflow) wards() []string {
	return append([]string(nil), w.district.Wards...)
}

// store saves file when one was supplied and reports the public path
func (w *Workflow) store(ctx context.Context, file *services.UploadedFile, subDir string) (string, bool, error) {
	if file.IsEmpty() {
		return "", false, nil
	}
	p, err := w.uploads.Save(ctx, file, subDir)
	if err != nil {
		return "", false, err
	}
	return p, true, nil
}

func (w *Workflow) logFailure(op string, err error, attrs ...any) {
	w.logger.Warn("admin operation failed", append([]any{"op", op, "error", err}, attrs...)...)
}
