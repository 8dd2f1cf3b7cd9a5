package handler

import (
	"net/http"

	"estateadmin/internal/httputil"
	"estateadmin/internal/service/admin"
)

// ListProjects renders all projects
// GET /admin/projects
func (h *AdminHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, h.workflow.ListProjects(r.Context()))
}

// NewProjectForm renders an empty project form
// GET /admin/projects/create
func (h *AdminHandler) NewProjectForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, h.workflow.NewProjectForm(r.Context()))
}

// EditProjectForm renders the form for one project
// GET /admin/projects/edit/{id}
func (h *AdminHandler) EditProjectForm(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, admin.KindProjects)
	if !ok {
		return
	}
	h.render(w, r, h.workflow.EditProjectForm(r.Context(), id))
}

// CreateProject binds the form and its optional thumbnail
// POST /admin/projects/create
func (h *AdminHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	back := admin.CreatePath(admin.KindProjects)
	if !h.parseForm(w, r, back) {
		return
	}
	defer cleanupMultipart(r)

	v := httputil.NewFormValues(r)
	project := bindProject(v)
	if err := v.Err(); err != nil {
		h.reject(w, r, err, back)
		return
	}

	file, closeFile, err := httputil.FormFile(r, fieldThumbnailFile)
	if err != nil {
		h.reject(w, r, err, back)
		return
	}
	defer closeFile()

	h.finish(w, r, h.workflow.CreateProject(r.Context(), project, file))
}

// UpdateProject binds the form under the path id
// POST /admin/projects/edit/{id}
func (h *AdminHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, admin.KindProjects)
	if !ok {
		return
	}

	back := admin.EditPath(admin.KindProjects, id)
	if !h.parseForm(w, r, back) {
		return
	}
	defer cleanupMultipart(r)

	v := httputil.NewFormValues(r)
	project := bindProject(v)
	if err := v.Err(); err != nil {
		h.reject(w, r, err, back)
		return
	}

	file, closeFile, err := httputil.FormFile(r, fieldThumbnailFile)
	if err != nil {
		h.reject(w, r, err, back)
		return
	}
	defer closeFile()

	h.finish(w, r, h.workflow.UpdateProject(r.Context(), id, project, file))
}

// DeleteProject removes one project
// POST /admin/projects/delete/{id}
func (h *AdminHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, admin.KindProjects)
	if !ok {
		return
	}
	h.finish(w, r, h.workflow.DeleteProject(r.Context(), id))
}

// ToggleProjectStatus hides or shows one project
// POST /admin/projects/toggle-status/{id}
func (h *AdminHandler) ToggleProjectStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, admin.KindProjects)
	if !ok {
		return
	}
	h.finish(w, r, h.workflow.ToggleProjectStatus(r.Context(), id))
}
