package handler

import (
	"log/slog"
	"net/http"

	"estateadmin/internal/flash"
	"estateadmin/internal/httputil"
	"estateadmin/internal/service/admin"
	"estateadmin/internal/view"
)

// AdminHandler serves the server-rendered admin pages
type AdminHandler struct {
	workflow       *admin.Workflow
	flash          flash.Store
	renderer       view.Renderer
	maxUploadBytes int64
	logger         *slog.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	workflow *admin.Workflow,
	flashStore flash.Store,
	renderer view.Renderer,
	maxUploadBytes int64,
	logger *slog.Logger,
) *AdminHandler {
	return &AdminHandler{
		workflow:       workflow,
		flash:          flashStore,
		renderer:       renderer,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// RegisterRoutes mounts every admin route on mux
func (h *AdminHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /admin", h.Dashboard)
	mux.HandleFunc("GET /admin/{$}", h.Dashboard)

	mux.HandleFunc("GET /admin/projects", h.ListProjects)
	mux.HandleFunc("GET /admin/projects/create", h.NewProjectForm)
	mux.HandleFunc("POST /admin/projects/create", h.CreateProject)
	mux.HandleFunc("GET /admin/projects/edit/{id}", h.EditProjectForm)
	mux.HandleFunc("POST /admin/projects/edit/{id}", h.UpdateProject)
	mux.HandleFunc("POST /admin/projects/delete/{id}", h.DeleteProject)
	mux.HandleFunc("POST /admin/projects/toggle-status/{id}", h.ToggleProjectStatus)

	mux.HandleFunc("GET /admin/developers", h.ListDevelopers)
	mux.HandleFunc("GET /admin/developers/create", h.NewDeveloperForm)
	mux.HandleFunc("POST /admin/developers/create", h.CreateDeveloper)
	mux.HandleFunc("GET /admin/developers/edit/{id}", h.EditDeveloperForm)
	mux.HandleFunc("POST /admin/developers/edit/{id}", h.UpdateDeveloper)
	mux.HandleFunc("POST /admin/developers/delete/{id}", h.DeleteDeveloper)
	mux.HandleFunc("POST /admin/developers/toggle-status/{id}", h.ToggleDeveloperStatus)

	mux.HandleFunc("GET /admin/users", h.ListUsers)
	mux.HandleFunc("GET /admin/users/create", h.NewUserForm)
	mux.HandleFunc("POST /admin/users/create", h.CreateUser)
	mux.HandleFunc("GET /admin/users/edit/{id}", h.EditUserForm)
	mux.HandleFunc("POST /admin/users/edit/{id}", h.UpdateUser)
	mux.HandleFunc("POST /admin/users/delete/{id}", h.DeleteUser)
}

// Dashboard renders the summary page
// GET /admin
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, h.workflow.Dashboard(r.Context()))
}

// render follows the page's redirect if it has one, otherwise renders the
// view with the pending flash message. A failure raised while building the
// page wins over the flash.
func (h *AdminHandler) render(w http.ResponseWriter, r *http.Request, page admin.Page) {
	if page.Outcome.Redirect != "" {
		h.finish(w, r, page.Outcome)
		return
	}

	pending, err := h.flash.Pop(w, r)
	if err != nil {
		h.logger.Warn("flash pop failed", "error", err, "path", r.URL.Path)
	}

	data := flash.Attrs(pending)
	for k, v := range page.Data {
		data[k] = v
	}
	if page.Outcome.Failed() {
		data["error"] = page.Outcome.Message
	}

	if err := h.renderer.Render(w, http.StatusOK, page.View, data); err != nil {
		h.logger.Error("render failed", "view", page.View, "error", err)
		httputil.RespondError(w, http.StatusInternalServerError, "failed to render page")
	}
}

// finish stores the outcome's message for the next page and redirects with 303
func (h *AdminHandler) finish(w http.ResponseWriter, r *http.Request, outcome admin.Outcome) {
	if outcome.Message != "" {
		kind := flash.KindSuccess
		if outcome.Failed() {
			kind = flash.KindError
		}
		if err := h.flash.Set(w, r, flash.Message{Kind: kind, Text: outcome.Message}); err != nil {
			h.logger.Warn("flash set failed", "error", err, "path", r.URL.Path)
		}
	}
	httputil.SeeOther(w, r, outcome.Redirect)
}

// reject reports a request that never reached the workflow
func (h *AdminHandler) reject(w http.ResponseWriter, r *http.Request, err error, redirect string) {
	h.logger.Warn("rejected admin request", "path", r.URL.Path, "error", err)
	h.finish(w, r, admin.Failure(err, redirect))
}

// pathID parses {id}; on failure the caller is sent back to the kind's list
func (h *AdminHandler) pathID(w http.ResponseWriter, r *http.Request, kind string) (int64, bool) {
	id, err := httputil.PathID(r, "id")
	if err != nil {
		h.reject(w, r, err, admin.ListPath(kind))
		return 0, false
	}
	return id, true
}

// parseForm caps and parses the body; multipart temp files are removed when the request ends
func (h *AdminHandler) parseForm(w http.ResponseWriter, r *http.Request, redirect string) bool {
	if err := httputil.ParseForm(w, r, h.maxUploadBytes); err != nil {
		h.reject(w, r, err, redirect)
		return false
	}
	return true
}

func cleanupMultipart(r *http.Request) {
	if r.MultipartForm != nil {
		_ = r.MultipartForm.RemoveAll()
	}
}
