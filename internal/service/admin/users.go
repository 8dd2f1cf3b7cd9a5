package admin

import (
	"context"
	"errors"

	"estateadmin/internal/domain"
	"estateadmin/internal/domain/models"
	"estateadmin/internal/view"
)

const (
	msgUserCreated = "Tạo người dùng thành công!"
	msgUserUpdated = "Cập nhật người dùng thành công!"
	msgUserDeleted = "Xóa người dùng thành công!"
)

func (w *Workflow) ListUsers(ctx context.Context) Page {
	page := Page{View: view.UserList, Data: map[string]any{"users": []models.User{}}}

	users, err := w.users.ListUsers(ctx)
	if err != nil {
		w.logFailure("list users", err)
		page.Outcome = Failure(err, "")
		return page
	}

	page.Data["users"] = users
	return page
}

func (w *Workflow) NewUserForm(ctx context.Context) Page {
	return userForm(&models.User{}, CreatePath(KindUsers))
}

func (w *Workflow) EditUserForm(ctx context.Context, id int64) Page {
	user, err := w.users.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return Page{Outcome: redirectOnly(ListPath(KindUsers))}
		}
		w.logFailure("edit user form", err, "id", id)
		return Page{Outcome: Failure(err, ListPath(KindUsers))}
	}
	return userForm(user, EditPath(KindUsers, id))
}

func userForm(user *models.User, action string) Page {
	return Page{
		View: view.UserForm,
		Data: map[string]any{
			"user":      user,
			"userRoles": models.UserRoles(),
			"action":    action,
		},
	}
}

func (w *Workflow) CreateUser(ctx context.Context, user *models.User) Outcome {
	if _, err := w.users.CreateUser(ctx, user); err != nil {
		w.logFailure("create user", err, "username", user.Username)
		return Failure(err, CreatePath(KindUsers))
	}
	return success(msgUserCreated, ListPath(KindUsers))
}

// UpdateUser persists user under the path id
func (w *Workflow) UpdateUser(ctx context.Context, id int64, user *models.User) Outcome {
	user.ID = id

	if _, err := w.users.UpdateUser(ctx, user); err != nil {
		w.logFailure("update user", err, "id", id)
		return Failure(err, EditPath(KindUsers, id))
	}
	return success(msgUserUpdated, ListPath(KindUsers))
}

func (w *Workflow) DeleteUser(ctx context.Context, id int64) Outcome {
	if err := w.users.DeleteUser(ctx, id); err != nil {
		w.logFailure("delete user", err, "id", id)
		return Failure(err, ListPath(KindUsers))
	}
	return success(msgUserDeleted, ListPath(KindUsers))
}
