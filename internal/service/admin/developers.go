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
	msgDeveloperCreated     = "Tạo chủ đầu tư thành công!"
	msgDeveloperUpdated     = "Cập nhật chủ đầu tư thành công!"
	msgDeveloperDeleted     = "Xóa chủ đầu tư thành công!"
	msgDeveloperDeactivated = "Đã ẩn chủ đầu tư!"
	msgDeveloperActivated   = "Đã kích hoạt chủ đầu tư!"
)

func (w *Workflow) ListDevelopers(ctx context.Context) Page {
	page := Page{View: view.DeveloperList, Data: map[string]any{"developers": []models.Developer{}}}

	developers, err := w.developers.ListDevelopers(ctx)
	if err != nil {
		w.logFailure("list developers", err)
		page.Outcome = Failure(err, "")
		return page
	}

	page.Data["developers"] = developers
	return page
}

func (w *Workflow) NewDeveloperForm(ctx context.Context) Page {
	return developerForm(&models.Developer{}, CreatePath(KindDevelopers))
}

func (w *Workflow) EditDeveloperForm(ctx context.Context, id int64) Page {
	developer, err := w.developers.GetDeveloper(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return Page{Outcome: redirectOnly(ListPath(KindDevelopers))}
		}
		w.logFailure("edit developer form", err, "id", id)
		return Page{Outcome: Failure(err, ListPath(KindDevelopers))}
	}
	return developerForm(developer, EditPath(KindDevelopers, id))
}

func developerForm(developer *models.Developer, action string) Page {
	return Page{
		View: view.DeveloperForm,
		Data: map[string]any{
			"developer": developer,
			"action":    action,
		},
	}
}

func (w *Workflow) CreateDeveloper(ctx context.Context, developer *models.Developer, logo *services.UploadedFile) Outcome {
	if err := w.attachLogo(ctx, developer, logo); err != nil {
		w.logFailure("create developer", err)
		return Failure(err, CreatePath(KindDevelopers))
	}

	if _, err := w.developers.CreateDeveloper(ctx, developer); err != nil {
		w.logFailure("create developer", err, "name", developer.Name)
		return Failure(err, CreatePath(KindDevelopers))
	}

	return success(msgDeveloperCreated, ListPath(KindDevelopers))
}

func (w *Workflow) UpdateDeveloper(ctx context.Context, id int64, developer *models.Developer, logo *services.UploadedFile) Outcome {
	developer.ID = id

	if err := w.attachLogo(ctx, developer, logo); err != nil {
		w.logFailure("update developer", err, "id", id)
		return Failure(err, EditPath(KindDevelopers, id))
	}

	if _, err := w.developers.UpdateDeveloper(ctx, developer); err != nil {
		w.logFailure("update developer", err, "id", id)
		return Failure(err, EditPath(KindDevelopers, id))
	}

	return success(msgDeveloperUpdated, ListPath(KindDevelopers))
}

func (w *Workflow) DeleteDeveloper(ctx context.Context, id int64) Outcome {
	if err := w.developers.DeleteDeveloper(ctx, id); err != nil {
		w.logFailure("delete developer", err, "id", id)
		return Failure(err, ListPath(KindDevelopers))
	}
	return success(msgDeveloperDeleted, ListPath(KindDevelopers))
}

func (w *Workflow) ToggleDeveloperStatus(ctx context.Context, id int64) Outcome {
	list := ListPath(KindDevelopers)

	developer, err := w.developers.GetDeveloper(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return redirectOnly(list)
		}
		w.logFailure("toggle developer", err, "id", id)
		return Failure(err, list)
	}

	if developer.IsActive {
		if err := w.developers.DeactivateDeveloper(ctx, id); err != nil {
			w.logFailure("deactivate developer", err, "id", id)
			return Failure(err, list)
		}
		return success(msgDeveloperDeactivated, list)
	}

	if err := w.developers.ActivateDeveloper(ctx, id); err != nil {
		w.logFailure("activate developer", err, "id", id)
		return Failure(err, list)
	}
	return success(msgDeveloperActivated, list)
}

func (w *Workflow) attachLogo(ctx context.Context, developer *models.Developer, file *services.UploadedFile) error {
	p, ok, err := w.store(ctx, file, upload.SubDirDevelopers)
	if err != nil {
		return err
	}
	if ok {
		developer.LogoURL = &p
	}
	return nil
}
