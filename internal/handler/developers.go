package handler

import (
	"net/http"

	"estateadmin/internal/httputil"
	"estateadmin/internal/service/admin"
)

// ListDevelopers renders all developers
// GET /admin/developers
func (h *AdminHandler) ListDevelopers(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, h.workflow.ListDevelopers(r.Context()))
}

// GET /admin/developers/create
func (h *AdminHandler) NewDeveloperForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, h.workflow.NewDeveloperForm(r.Context()))
}

// GET /admin/developers/edit/{id}
func (h *AdminHandler) EditDeveloperForm(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, admin.KindDevelopers)
	if !ok {
		return
	}
	h.render(w, r, h.workflow.EditDeveloperForm(r.Context(), id))
}

// CreateDeveloper binds the form and its optional logo
// POST /admin/developers/create
func (h *AdminHandler) CreateDeveloper(w http.ResponseWriter, r *http.Request) {
	back := admin.CreatePath(admin.KindDevelopers)
	if !h.parseForm(w, r, back) {
		return
	}
	defer cleanupMultipart(r)

	v := httputil.NewFormValues(r)
	developer := bindDeveloper(v)
	if err := v.Err(); err != nil {
		h.reject(w, r, err, back)
		return
	}

	file, closeFile, err := httputil.FormFile(r, fieldLogoFile)
	if err != nil {
		h.reject(w, r, err, back)
		return
	}
	defer closeFile()

	h.finish(w, r, h.workflow.CreateDeveloper(r.Context(), developer, file))
}

// POST /admin/developers/edit/{id}
func (h *AdminHandler) UpdateDeveloper(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, admin.KindDevelopers)
	if !ok {
		return
	}

	back := admin.EditPath(admin.KindDevelopers, id)
	if !h.parseForm(w, r, back) {
		return
	}
	defer cleanupMultipart(r)

	v := httputil.NewFormValues(r)
	developer := bindDeveloper(v)
	if err := v.Err(); err != nil {
		h.reject(w, r, err, back)
		return
	}

	file, closeFile, err := httputil.FormFile(r, fieldLogoFile)
	if err != nil {
		h.reject(w, r, err, back)
		return
	}
	defer closeFile()

	h.finish(w, r, h.workflow.UpdateDeveloper(r.Context(), id, developer, file))
}

// POST /admin/developers/delete/{id}
func (h *AdminHandler) DeleteDeveloper(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, admin.KindDevelopers)
	if !ok {
		return
	}
	h.finish(w, r, h.workflow.DeleteDeveloper(r.Context(), id))
}

// POST /admin/developers/toggle-status/{id}
func (h *AdminHandler) ToggleDeveloperStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, admin.KindDevelopers)
	if !ok {
		return
	}
	h.finish(w, r, h.workflow.ToggleDeveloperStatus(r.Context(), id))
}
