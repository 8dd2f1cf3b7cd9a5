package handler

import (
	"net/http"

	"estateadmin/internal/httputil"
	"estateadmin/internal/service/admin"
)

// GET /admin/users
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, h.workflow.ListUsers(r.Context()))
}

// GET /admin/users/create
func (h *AdminHandler) NewUserForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, h.workflow.NewUserForm(r.Context()))
}

// GET /admin/users/edit/{id}
func (h *AdminHandler) EditUserForm(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, admin.KindUsers)
	if !ok {
		return
	}
	h.render(w, r, h.workflow.EditUserForm(r.Context(), id))
}

// POST /admin/users/create
func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	back := admin.CreatePath(admin.KindUsers)
	if !h.parseForm(w, r, back) {
		return
	}
	defer cleanupMultipart(r)

	v := httputil.NewFormValues(r)
	user := bindUser(v)
	if err := v.Err(); err != nil {
		h.reject(w, r, err, back)
		return
	}

	h.finish(w, r, h.workflow.CreateUser(r.Context(), user))
}

// POST /admin/users/edit/{id}
func (h *AdminHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, admin.KindUsers)
	if !ok {
		return
	}

	back := admin.EditPath(admin.KindUsers, id)
	if !h.parseForm(w, r, back) {
		return
	}
	defer cleanupMultipart(r)

	v := httputil.NewFormValues(r)
	user := bindUser(v)
	if err := v.Err(); err != nil {
		h.reject(w, r, err, back)
		return
	}

	h.finish(w, r, h.workflow.UpdateUser(r.Context(), id, user))
}

// POST /admin/users/delete/{id}
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, admin.KindUsers)
	if !ok {
		return
	}
	h.finish(w, r, h.workflow.DeleteUser(r.Context(), id))
}
