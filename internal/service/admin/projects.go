package admin

import (
	"context"
	"errors"

	"estateadmin/internal/domain"
	"estateadmin/internal/domain/models"
	"estateadmin/internal/domain/services"
	"estateadmin/internal/upload"
	"estateadmin/internal/view"
)

const (
	msgProjectCreated     = "Tạo dự án thành công!"
	msgProjectUpdated     = "Cập nhật dự án thành công!"
	msgProjectDeleted     = "Xóa dự án thành công!"
	msgProjectDeactivated = "Đã ẩn dự án!"
	msgProjectActivated   = "Đã kích hoạt dự án!"
)

// ListProjects renders every project
func (w *Workflow) ListProjects(ctx context.Context) Page {
	page := Page{View: view.ProjectList, Data: map[string]any{"projects": []models.Project{}}}

	projects, err := w.projects.ListProjects(ctx)
	if err != nil {
		w.logFailure("list projects", err)
		page.Outcome = Failure(err, "")
		return page
	}

	page.Data["projects"] = projects
	return page
}

// NewProjectForm prepares a blank project form
func (w *Workflow) NewProjectForm(ctx context.Context) Page {
	return w.projectForm(ctx, &models.Project{}, CreatePath(KindProjects))
}

// EditProjectForm prepares the form for an existing project
func (w *Workflow) EditProjectForm(ctx context.Context, id int64) Page {
	project, err := w.projects.GetProject(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return Page{Outcome: redirectOnly(ListPath(KindProjects))}
		}
		w.logFailure("edit project form", err, "id", id)
		return Page{Outcome: Failure(err, ListPath(KindProjects))}
	}
	return w.projectForm(ctx, project, EditPath(KindProjects, id))
}

func (w *Workflow) projectForm(ctx context.Context, project *models.Project, action string) Page {
	page := Page{
		View: view.ProjectForm,
		Data: map[string]any{
			"project":         project,
			"developers":      []models.Developer{},
			"projectTypes":    models.ProjectTypes(),
			"projectStatuses": models.ProjectStatuses(),
			"wards":           w.wards(),
			"district":        w.district.Name,
			"action":          action,
		},
	}

	developers, err := w.developers.ListActiveDevelopers(ctx)
	if err != nil {
		w.logFailure("list active developers", err)
		page.Outcome = Failure(err, "")
		return page
	}
	page.Data["developers"] = developers
	return page
}

// CreateProject stores the optional thumbnail and then the project
func (w *Workflow) CreateProject(ctx context.Context, project *models.Project, thumbnail *services.UploadedFile) Outcome {
	if err := w.attachThumbnail(ctx, project, thumbnail); err != nil {
		w.logFailure("create project", err)
		return Failure(err, CreatePath(KindProjects))
	}

	if _, err := w.projects.CreateProject(ctx, project); err != nil {
		w.logFailure("create project", err, "name", project.Name)
		return Failure(err, CreatePath(KindProjects))
	}

	return success(msgProjectCreated, ListPath(KindProjects))
}

// UpdateProject persists project under the path id, whatever id the form carried
func (w *Workflow) UpdateProject(ctx context.Context, id int64, project *models.Project, thumbnail *services.UploadedFile) Outcome {
	project.ID = id

	if err := w.attachThumbnail(ctx, project, thumbnail); err != nil {
		w.logFailure("update project", err, "id", id)
		return Failure(err, EditPath(KindProjects, id))
	}

	if _, err := w.projects.UpdateProject(ctx, project); err != nil {
		w.logFailure("update project", err, "id", id)
		return Failure(err, EditPath(KindProjects, id))
	}

	return success(msgProjectUpdated, ListPath(KindProjects))
}

// DeleteProject always ends on the list
func (w *Workflow) DeleteProject(ctx context.Context, id int64) Outcome {
	if err := w.projects.DeleteProject(ctx, id); err != nil {
		w.logFailure("delete project", err, "id", id)
		return Failure(err, ListPath(KindProjects))
	}
	return success(msgProjectDeleted, ListPath(KindProjects))
}

// ToggleProjectStatus flips the active flag; a missing project is ignored
func (w *Workflow) ToggleProjectStatus(ctx context.Context, id int64) Outcome {
	list := ListPath(KindProjects)

	project, err := w.projects.GetProject(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return redirectOnly(list)
		}
		w.logFailure("toggle project", err, "id", id)
		return Failure(err, list)
	}

	if project.IsActive {
		if err := w.projects.DeactivateProject(ctx, id); err != nil {
			w.logFailure("deactivate project", err, "id", id)
			return Failure(err, list)
		}
		return success(msgProjectDeactivated, list)
	}

	if err := w.projects.ActivateProject(ctx, id); err != nil {
		w.logFailure("activate project", err, "id", id)
		return Failure(err, list)
	}
	return success(msgProjectActivated, list)
}

// attachThumbnail leaves Thumbnail as bound unless a file was supplied
func (w *Workflow) attachThumbnail(ctx context.Context, project *models.Project, file *services.UploadedFile) error {
	p, ok, err := w.store(ctx, file, upload.SubDirProjects)
	if err != nil {
		return err
	}
	if ok {
		project.Thumbnail = &p
	}
	return nil
}
