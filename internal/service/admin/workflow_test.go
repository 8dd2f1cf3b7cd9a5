package admin_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"estateadmin/internal/domain"
	"estateadmin/internal/domain/models"
	"estateadmin/internal/domain/services"
	"estateadmin/internal/domain/services/mocks"
	"estateadmin/internal/formoptions"
	"estateadmin/internal/service/admin"
	"estateadmin/internal/upload"
	"estateadmin/internal/view"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	projects   *mocks.ProjectService
	developers *mocks.DeveloperService
	users      *mocks.UserService
	uploads    *mocks.FileStore
	workflow   *admin.Workflow
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		projects:   &mocks.ProjectService{},
		developers: &mocks.DeveloperService{},
		users:      &mocks.UserService{},
		uploads:    &mocks.FileStore{},
	}
	f.workflow = newWorkflow(t, f.projects, f.developers, f.users, f.uploads)
	return f
}

func newWorkflow(t *testing.T, p services.ProjectService, d services.DeveloperService, u services.UserService, store services.FileStore) *admin.Workflow {
	t.Helper()
	options, err := formoptions.NewRegistry()
	require.NoError(t, err)

	w, err := admin.NewWorkflow(admin.Deps{
		Projects:   p,
		Developers: d,
		Users:      u,
		Uploads:    store,
		Options:    options,
		Config:     admin.Config{District: "quan-7"},
		Logger:     discardLogger(),
	})
	require.NoError(t, err)
	return w
}

// diskWorkflow wires a real LocalStore rooted in a temp dir
func diskWorkflow(t *testing.T, p *mocks.ProjectService, d *mocks.DeveloperService, token upload.TokenFunc) (*admin.Workflow, string) {
	t.Helper()
	root := filepath.Join(t.TempDir(), "uploads")
	store := upload.NewLocalStoreWithTokens(upload.Config{Dir: root, URLPrefix: "/uploads"}, token, discardLogger())
	return newWorkflow(t, p, d, &mocks.UserService{}, store), root
}

func fileOf(name string, content []byte) *services.UploadedFile {
	return &services.UploadedFile{Filename: name, Size: int64(len(content)), Content: bytes.NewReader(content)}
}

func strPtr(s string) *string { return &s }

func TestNewWorkflow_UnknownDistrict(t *testing.T) {
	options, err := formoptions.NewRegistry()
	require.NoError(t, err)

	_, err = admin.NewWorkflow(admin.Deps{
		Projects:   &mocks.ProjectService{},
		Developers: &mocks.DeveloperService{},
		Users:      &mocks.UserService{},
		Uploads:    &mocks.FileStore{},
		Options:    options,
		Config:     admin.Config{District: "atlantis"},
	})
	require.Error(t, err)
}

func TestCreateProject_WithFile(t *testing.T) {
	ctx := context.Background()
	projects := &mocks.ProjectService{}
	token := "3f2c9a1e-0000-4000-8000-000000000001"
	w, root := diskWorkflow(t, projects, &mocks.DeveloperService{}, func() string { return token })

	var persisted *models.Project
	projects.On("CreateProject", ctx, mock.AnythingOfType("*models.Project")).
		Run(func(args mock.Arguments) { persisted = args.Get(1).(*models.Project) }).
		Return(&models.Project{ID: 1}, nil)

	content := []byte{0xff, 0xd8, 0xff, 0xe0, 'j', 'p', 'g'}
	out := w.CreateProject(ctx, &models.Project{
		Name:   "Sunrise",
		Type:   models.ProjectTypeApartment,
		Status: models.ProjectStatusOpen,
	}, fileOf("a.jpg", content))

	assert.Equal(t, admin.StatusSuccess, out.Status)
	assert.Equal(t, "Tạo dự án thành công!", out.Message)
	assert.Equal(t, "/admin/projects", out.Redirect)

	require.NotNil(t, persisted)
	require.NotNil(t, persisted.Thumbnail)
	assert.Equal(t, "/uploads/projects/"+token+"_a.jpg", *persisted.Thumbnail)

	written, err := os.ReadFile(filepath.Join(root, "projects", token+"_a.jpg"))
	require.NoError(t, err)
	assert.Equal(t, content, written)
}

func TestCreateProject_DefaultTokenIsUUID(t *testing.T) {
	ctx := context.Background()
	projects := &mocks.ProjectService{}
	w, _ := diskWorkflow(t, projects, &mocks.DeveloperService{}, uuid.NewString)

	var persisted *models.Project
	projects.On("CreateProject", ctx, mock.Anything).
		Run(func(args mock.Arguments) { persisted = args.Get(1).(*models.Project) }).
		Return(&models.Project{}, nil)

	out := w.CreateProject(ctx, &models.Project{}, fileOf("a.jpg", []byte("x")))
	require.Equal(t, admin.StatusSuccess, out.Status)

	rest := strings.TrimPrefix(*persisted.Thumbnail, "/uploads/projects/")
	tok, name, ok := strings.Cut(rest, "_")
	require.True(t, ok)
	assert.Equal(t, "a.jpg", name)
	_, err := uuid.Parse(tok)
	assert.NoError(t, err)
}

func TestCreateProject_WithoutFileKeepsThumbnail(t *testing.T) {
	tests := []struct {
		name string
		file *services.UploadedFile
	}{
		{"nil file", nil},
		{"empty filename", &services.UploadedFile{Size: 3, Content: strings.NewReader("abc")}},
		{"zero size", &services.UploadedFile{Filename: "a.jpg", Content: strings.NewReader("")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newFixture(t)
			f.projects.On("CreateProject", ctx, mock.MatchedBy(func(p *models.Project) bool {
				return p.Thumbnail != nil && *p.Thumbnail == "/uploads/projects/old.jpg"
			})).Return(&models.Project{}, nil)

			out := f.workflow.CreateProject(ctx, &models.Project{Thumbnail: strPtr("/uploads/projects/old.jpg")}, tt.file)

			assert.Equal(t, admin.StatusSuccess, out.Status)
			f.uploads.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
			f.projects.AssertExpectations(t)
		})
	}
}

func TestCreateProject_NilThumbnailStaysNil(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.projects.On("CreateProject", ctx, mock.MatchedBy(func(p *models.Project) bool {
		return p.Thumbnail == nil
	})).Return(&models.Project{}, nil)

	out := f.workflow.CreateProject(ctx, &models.Project{}, nil)
	assert.Equal(t, admin.StatusSuccess, out.Status)
	f.projects.AssertExpectations(t)
}

func TestCreateProject_PersistenceFailure(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.projects.On("CreateProject", ctx, mock.Anything).Return(nil, errors.New("duplicate name"))

	out := f.workflow.CreateProject(ctx, &models.Project{Name: "x"}, nil)

	assert.Equal(t, admin.StatusFailure, out.Status)
	assert.Equal(t, "Lỗi: duplicate name", out.Message)
	assert.Equal(t, "/admin/projects/create", out.Redirect)
}

func TestCreateProject_UploadFailureSkipsPersistence(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.uploads.On("Save", ctx, mock.Anything, upload.SubDirProjects).
		Return("", &domain.UploadError{Op: "mkdir", SubDir: "projects", Err: errors.New("read-only file system")})

	out := f.workflow.CreateProject(ctx, &models.Project{}, fileOf("a.jpg", []byte("x")))

	assert.Equal(t, admin.StatusFailure, out.Status)
	assert.Equal(t, "Lỗi: upload mkdir projects: read-only file system", out.Message)
	assert.Equal(t, "/admin/projects/create", out.Redirect)
	f.projects.AssertNotCalled(t, "CreateProject", mock.Anything, mock.Anything)
}

func TestConcurrentUploadsSameName(t *testing.T) {
	ctx := context.Background()
	projects := &mocks.ProjectService{}
	w, root := diskWorkflow(t, projects, &mocks.DeveloperService{}, uuid.NewString)
	projects.On("CreateProject", ctx, mock.Anything).Return(&models.Project{}, nil)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w.CreateProject(ctx, &models.Project{}, fileOf("same.png", []byte{byte(i)}))
		}(i)
	}
	wg.Wait()

	entries, err := os.ReadDir(filepath.Join(root, "projects"))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.NotEqual(t, entries[0].Name(), entries[1].Name())
	for _, e := range entries {
		assert.True(t, strings.HasSuffix(e.Name(), "_same.png"))
	}
}

func TestUpdateProject_UsesPathID(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.projects.On("UpdateProject", ctx, mock.MatchedBy(func(p *models.Project) bool {
		return p.ID == 5
	})).Return(&models.Project{ID: 5}, nil)

	out := f.workflow.UpdateProject(ctx, 5, &models.Project{ID: 999}, nil)

	assert.Equal(t, admin.StatusSuccess, out.Status)
	assert.Equal(t, "Cập nhật dự án thành công!", out.Message)
	assert.Equal(t, "/admin/projects", out.Redirect)
	f.projects.AssertExpectations(t)
}

func TestUpdateProject_FailureRedirectsToEdit(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.projects.On("UpdateProject", ctx, mock.Anything).Return(nil, &domain.NotFoundError{Kind: "project", ID: 5})

	out := f.workflow.UpdateProject(ctx, 5, &models.Project{}, nil)

	assert.Equal(t, admin.StatusFailure, out.Status)
	assert.Equal(t, "Lỗi: project 5 not found", out.Message)
	assert.Equal(t, "/admin/projects/edit/5", out.Redirect)
}

func TestUpdateProject_NewFileReplacesThumbnail(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	file := fileOf("b.png", []byte("png"))
	f.uploads.On("Save", ctx, file, "projects").Return("/uploads/projects/t_b.png", nil)
	f.projects.On("UpdateProject", ctx, mock.MatchedBy(func(p *models.Project) bool {
		return p.Thumbnail != nil && *p.Thumbnail == "/uploads/projects/t_b.png"
	})).Return(&models.Project{}, nil)

	out := f.workflow.UpdateProject(ctx, 2, &models.Project{Thumbnail: strPtr("/uploads/projects/old.png")}, file)

	assert.Equal(t, admin.StatusSuccess, out.Status)
	f.projects.AssertExpectations(t)
}

func TestDeleteProject(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		f.projects.On("DeleteProject", ctx, int64(3)).Return(nil)

		out := f.workflow.DeleteProject(ctx, 3)
		assert.Equal(t, admin.Outcome{Status: admin.StatusSuccess, Message: "Xóa dự án thành công!", Redirect: "/admin/projects"}, out)
	})

	t.Run("failure still goes to list", func(t *testing.T) {
		f := newFixture(t)
		f.projects.On("DeleteProject", ctx, int64(3)).Return(&domain.ConflictError{Message: "project 3 is referenced by other records"})

		out := f.workflow.DeleteProject(ctx, 3)
		assert.Equal(t, admin.StatusFailure, out.Status)
		assert.Equal(t, "Lỗi: project 3 is referenced by other records", out.Message)
		assert.Equal(t, "/admin/projects", out.Redirect)
	})
}

func TestToggleProjectStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("missing project is a silent no-op", func(t *testing.T) {
		f := newFixture(t)
		f.projects.On("GetProject", ctx, int64(8)).Return(nil, &domain.NotFoundError{Kind: "project", ID: 8})

		out := f.workflow.ToggleProjectStatus(ctx, 8)

		assert.Equal(t, admin.Outcome{Status: admin.StatusNone, Redirect: "/admin/projects"}, out)
		f.projects.AssertNotCalled(t, "ActivateProject", mock.Anything, mock.Anything)
		f.projects.AssertNotCalled(t, "DeactivateProject", mock.Anything, mock.Anything)
	})

	t.Run("active project is deactivated", func(t *testing.T) {
		f := newFixture(t)
		f.projects.On("GetProject", ctx, int64(1)).Return(&models.Project{ID: 1, IsActive: true}, nil)
		f.projects.On("DeactivateProject", ctx, int64(1)).Return(nil).Once()

		out := f.workflow.ToggleProjectStatus(ctx, 1)

		assert.Equal(t, "Đã ẩn dự án!", out.Message)
		f.projects.AssertNumberOfCalls(t, "DeactivateProject", 1)
		f.projects.AssertNotCalled(t, "ActivateProject", mock.Anything, mock.Anything)
	})

	t.Run("inactive project is activated", func(t *testing.T) {
		f := newFixture(t)
		f.projects.On("GetProject", ctx, int64(1)).Return(&models.Project{ID: 1, IsActive: false}, nil)
		f.projects.On("ActivateProject", ctx, int64(1)).Return(nil).Once()

		out := f.workflow.ToggleProjectStatus(ctx, 1)

		assert.Equal(t, "Đã kích hoạt dự án!", out.Message)
		f.projects.AssertNumberOfCalls(t, "ActivateProject", 1)
		f.projects.AssertNotCalled(t, "DeactivateProject", mock.Anything, mock.Anything)
	})

	t.Run("lookup failure", func(t *testing.T) {
		f := newFixture(t)
		f.projects.On("GetProject", ctx, int64(1)).Return(nil, errors.New("connection reset"))

		out := f.workflow.ToggleProjectStatus(ctx, 1)

		assert.Equal(t, admin.StatusFailure, out.Status)
		assert.Equal(t, "Lỗi: connection reset", out.Message)
		assert.Equal(t, "/admin/projects", out.Redirect)
	})
}

func TestProjectForms(t *testing.T) {
	ctx := context.Background()
	active := []models.Developer{{ID: 1, Name: "Novaland", IsActive: true}}

	t.Run("new form", func(t *testing.T) {
		f := newFixture(t)
		f.developers.On("ListActiveDevelopers", ctx).Return(active, nil)

		page := f.workflow.NewProjectForm(ctx)

		assert.Equal(t, view.ProjectForm, page.View)
		assert.Empty(t, page.Outcome.Redirect)
		assert.Equal(t, &models.Project{}, page.Data["project"])
		assert.Equal(t, active, page.Data["developers"])
		assert.Equal(t, models.ProjectTypes(), page.Data["projectTypes"])
		assert.Equal(t, models.ProjectStatuses(), page.Data["projectStatuses"])
		assert.Equal(t, "Quận 7", page.Data["district"])
		assert.Equal(t, "/admin/projects/create", page.Data["action"])

		wards := page.Data["wards"].([]string)
		require.Len(t, wards, 10)
		assert.Equal(t, "Phường Tân Thuận Đông", wards[0])
		assert.Equal(t, "Phường Phú Mỹ", wards[9])
	})

	t.Run("edit form", func(t *testing.T) {
		f := newFixture(t)
		project := &models.Project{ID: 4, Name: "Sky"}
		f.projects.On("GetProject", ctx, int64(4)).Return(project, nil)
		f.developers.On("ListActiveDevelopers", ctx).Return(active, nil)

		page := f.workflow.EditProjectForm(ctx, 4)

		assert.Equal(t, view.ProjectForm, page.View)
		assert.Same(t, project, page.Data["project"])
		assert.Equal(t, "/admin/projects/edit/4", page.Data["action"])
	})

	t.Run("edit form for missing project redirects", func(t *testing.T) {
		f := newFixture(t)
		f.projects.On("GetProject", ctx, int64(4)).Return(nil, &domain.NotFoundError{Kind: "project", ID: 4})

		page := f.workflow.EditProjectForm(ctx, 4)

		assert.Equal(t, admin.Outcome{Status: admin.StatusNone, Redirect: "/admin/projects"}, page.Outcome)
		f.developers.AssertNotCalled(t, "ListActiveDevelopers", mock.Anything)
	})
}

func TestListProjects(t *testing.T) {
	ctx := context.Background()

	t.Run("pass-through", func(t *testing.T) {
		f := newFixture(t)
		list := []models.Project{{ID: 2}, {ID: 1}}
		f.projects.On("ListProjects", ctx).Return(list, nil)

		page := f.workflow.ListProjects(ctx)
		assert.Equal(t, view.ProjectList, page.View)
		assert.Equal(t, list, page.Data["projects"])
		assert.Equal(t, admin.StatusNone, page.Outcome.Status)
	})

	t.Run("failure renders empty list with message", func(t *testing.T) {
		f := newFixture(t)
		f.projects.On("ListProjects", ctx).Return(nil, errors.New("db down"))

		page := f.workflow.ListProjects(ctx)
		assert.Equal(t, "Lỗi: db down", page.Outcome.Message)
		assert.Empty(t, page.Outcome.Redirect)
		assert.Empty(t, page.Data["projects"])
	})
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()

	t.Run("summary", func(t *testing.T) {
		f := newFixture(t)
		f.projects.On("CountActiveProjects", ctx).Return(int64(12), nil)
		f.projects.On("CountProjectsByType", ctx, models.ProjectTypeApartment).Return(int64(7), nil)
		f.projects.On("CountProjectsByType", ctx, models.ProjectTypeVilla).Return(int64(3), nil)
		f.projects.On("CountProjectsByType", ctx, models.ProjectTypeOffice).Return(int64(2), nil)
		f.projects.On("ListProjects", ctx).Return(make([]models.Project, 8), nil)
		f.developers.On("CountActiveDevelopers", ctx).Return(int64(4), nil)

		page := f.workflow.Dashboard(ctx)

		assert.Equal(t, view.Dashboard, page.View)
		assert.Equal(t, int64(12), page.Data["totalProjects"])
		assert.Equal(t, int64(7), page.Data["apartmentCount"])
		assert.Equal(t, int64(3), page.Data["villaCount"])
		assert.Equal(t, int64(2), page.Data["officeCount"])
		assert.Equal(t, int64(4), page.Data["activeDevelopers"])
		assert.Len(t, page.Data["recentProjects"], 5)
	})

	t.Run("failure zeroes summary", func(t *testing.T) {
		f := newFixture(t)
		f.projects.On("CountActiveProjects", ctx).Return(int64(0), errors.New("timeout"))

		page := f.workflow.Dashboard(ctx)

		assert.Equal(t, admin.StatusFailure, page.Outcome.Status)
		assert.Equal(t, int64(0), page.Data["totalProjects"])
		assert.Empty(t, page.Data["recentProjects"])
	})
}

func TestDeveloperOperations(t *testing.T) {
	ctx := context.Background()

	t.Run("create with logo", func(t *testing.T) {
		developers := &mocks.DeveloperService{}
		w, root := diskWorkflow(t, &mocks.ProjectService{}, developers, func() string { return "tok" })
		developers.On("CreateDeveloper", ctx, mock.MatchedBy(func(d *models.Developer) bool {
			return d.LogoURL != nil && *d.LogoURL == "/uploads/developers/tok_logo.svg"
		})).Return(&models.Developer{ID: 1}, nil)

		out := w.CreateDeveloper(ctx, &models.Developer{Name: "Novaland"}, fileOf("logo.svg", []byte("<svg/>")))

		assert.Equal(t, admin.Outcome{Status: admin.StatusSuccess, Message: "Tạo chủ đầu tư thành công!", Redirect: "/admin/developers"}, out)
		_, err := os.Stat(filepath.Join(root, "developers", "tok_logo.svg"))
		assert.NoError(t, err)
	})

	t.Run("create without logo keeps bound url", func(t *testing.T) {
		f := newFixture(t)
		f.developers.On("CreateDeveloper", ctx, mock.MatchedBy(func(d *models.Developer) bool {
			return d.LogoURL != nil && *d.LogoURL == "https://cdn.example.com/logo.png"
		})).Return(&models.Developer{}, nil)

		out := f.workflow.CreateDeveloper(ctx, &models.Developer{LogoURL: strPtr("https://cdn.example.com/logo.png")}, nil)
		assert.Equal(t, admin.StatusSuccess, out.Status)
		f.developers.AssertExpectations(t)
	})

	t.Run("create failure", func(t *testing.T) {
		f := newFixture(t)
		f.developers.On("CreateDeveloper", ctx, mock.Anything).Return(nil, errors.New("name required"))

		out := f.workflow.CreateDeveloper(ctx, &models.Developer{}, nil)
		assert.Equal(t, "/admin/developers/create", out.Redirect)
		assert.Equal(t, "Lỗi: name required", out.Message)
	})

	t.Run("update uses path id", func(t *testing.T) {
		f := newFixture(t)
		f.developers.On("UpdateDeveloper", ctx, mock.MatchedBy(func(d *models.Developer) bool { return d.ID == 5 })).
			Return(&models.Developer{}, nil)

		out := f.workflow.UpdateDeveloper(ctx, 5, &models.Developer{ID: 999}, nil)
		assert.Equal(t, "Cập nhật chủ đầu tư thành công!", out.Message)
	})

	t.Run("update failure", func(t *testing.T) {
		f := newFixture(t)
		f.developers.On("UpdateDeveloper", ctx, mock.Anything).Return(nil, errors.New("boom"))

		out := f.workflow.UpdateDeveloper(ctx, 6, &models.Developer{}, nil)
		assert.Equal(t, "/admin/developers/edit/6", out.Redirect)
	})

	t.Run("delete failure", func(t *testing.T) {
		f := newFixture(t)
		f.developers.On("DeleteDeveloper", ctx, int64(2)).Return(errors.New("in use"))

		out := f.workflow.DeleteDeveloper(ctx, 2)
		assert.Equal(t, admin.Outcome{Status: admin.StatusFailure, Message: "Lỗi: in use", Redirect: "/admin/developers"}, out)
	})

	t.Run("toggle active", func(t *testing.T) {
		f := newFixture(t)
		f.developers.On("GetDeveloper", ctx, int64(2)).Return(&models.Developer{ID: 2, IsActive: true}, nil)
		f.developers.On("DeactivateDeveloper", ctx, int64(2)).Return(nil).Once()

		out := f.workflow.ToggleDeveloperStatus(ctx, 2)
		assert.Equal(t, "Đã ẩn chủ đầu tư!", out.Message)
		f.developers.AssertNotCalled(t, "ActivateDeveloper", mock.Anything, mock.Anything)
	})

	t.Run("toggle inactive", func(t *testing.T) {
		f := newFixture(t)
		f.developers.On("GetDeveloper", ctx, int64(2)).Return(&models.Developer{ID: 2}, nil)
		f.developers.On("ActivateDeveloper", ctx, int64(2)).Return(nil).Once()

		out := f.workflow.ToggleDeveloperStatus(ctx, 2)
		assert.Equal(t, "Đã kích hoạt chủ đầu tư!", out.Message)
		f.developers.AssertNotCalled(t, "DeactivateDeveloper", mock.Anything, mock.Anything)
	})

	t.Run("toggle missing", func(t *testing.T) {
		f := newFixture(t)
		f.developers.On("GetDeveloper", ctx, int64(2)).Return(nil, &domain.NotFoundError{Kind: "developer", ID: 2})

		out := f.workflow.ToggleDeveloperStatus(ctx, 2)
		assert.Equal(t, admin.Outcome{Status: admin.StatusNone, Redirect: "/admin/developers"}, out)
		f.developers.AssertNotCalled(t, "ActivateDeveloper", mock.Anything, mock.Anything)
		f.developers.AssertNotCalled(t, "DeactivateDeveloper", mock.Anything, mock.Anything)
	})

	t.Run("forms", func(t *testing.T) {
		f := newFixture(t)
		page := f.workflow.NewDeveloperForm(ctx)
		assert.Equal(t, view.DeveloperForm, page.View)
		assert.Equal(t, "/admin/developers/create", page.Data["action"])

		f.developers.On("GetDeveloper", ctx, int64(9)).Return(nil, &domain.NotFoundError{Kind: "developer", ID: 9})
		page = f.workflow.EditDeveloperForm(ctx, 9)
		assert.Equal(t, "/admin/developers", page.Outcome.Redirect)
	})
}

func TestUserOperations(t *testing.T) {
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		f := newFixture(t)
		f.users.On("CreateUser", ctx, mock.Anything).Return(&models.User{ID: 1}, nil)

		out := f.workflow.CreateUser(ctx, &models.User{Username: "agent"})
		assert.Equal(t, admin.Outcome{Status: admin.StatusSuccess, Message: "Tạo người dùng thành công!", Redirect: "/admin/users"}, out)
	})

	t.Run("create failure", func(t *testing.T) {
		f := newFixture(t)
		f.users.On("CreateUser", ctx, mock.Anything).Return(nil, &domain.ConflictError{Message: "user already exists (users_username_key)"})

		out := f.workflow.CreateUser(ctx, &models.User{})
		assert.Equal(t, "Lỗi: user already exists (users_username_key)", out.Message)
		assert.Equal(t, "/admin/users/create", out.Redirect)
	})

	t.Run("update uses path id", func(t *testing.T) {
		f := newFixture(t)
		f.users.On("UpdateUser", ctx, mock.MatchedBy(func(u *models.User) bool { return u.ID == 5 })).
			Return(&models.User{}, nil)

		out := f.workflow.UpdateUser(ctx, 5, &models.User{ID: 999})
		assert.Equal(t, "Cập nhật người dùng thành công!", out.Message)
		f.users.AssertExpectations(t)
	})

	t.Run("update failure", func(t *testing.T) {
		f := newFixture(t)
		f.users.On("UpdateUser", ctx, mock.Anything).Return(nil, errors.New("bad email"))

		out := f.workflow.UpdateUser(ctx, 5, &models.User{})
		assert.Equal(t, "/admin/users/edit/5", out.Redirect)
	})

	t.Run("delete", func(t *testing.T) {
		f := newFixture(t)
		f.users.On("DeleteUser", ctx, int64(3)).Return(nil)

		out := f.workflow.DeleteUser(ctx, 3)
		assert.Equal(t, "Xóa người dùng thành công!", out.Message)
		assert.Equal(t, "/admin/users", out.Redirect)
	})

	t.Run("forms", func(t *testing.T) {
		f := newFixture(t)
		page := f.workflow.NewUserForm(ctx)
		assert.Equal(t, view.UserForm, page.View)
		assert.Equal(t, models.UserRoles(), page.Data["userRoles"])

		user := &models.User{ID: 3}
		f.users.On("GetUser", ctx, int64(3)).Return(user, nil)
		page = f.workflow.EditUserForm(ctx, 3)
		assert.Same(t, user, page.Data["user"])
		assert.Equal(t, "/admin/users/edit/3", page.Data["action"])
	})

	t.Run("list failure", func(t *testing.T) {
		f := newFixture(t)
		f.users.On("ListUsers", ctx).Return(nil, errors.New("db down"))

		page := f.workflow.ListUsers(ctx)
		assert.Equal(t, admin.StatusFailure, page.Outcome.Status)
	})
}
