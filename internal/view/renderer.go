// Package view renders the admin pages from embedded html/template files.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"estateadmin/internal/domain/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed templates
var templateFS embed.FS

// View names
const (
	Dashboard     = "admin/dashboard"
	ProjectList   = "admin/projects/list"
	ProjectForm   = "admin/projects/form"
	DeveloperList = "admin/developers/list"
	DeveloperForm = "admin/developers/form"
	UserList      = "admin/users/list"
	UserForm      = "admin/users/form"
)

// Names lists every view the renderer knows
var Names = []string{
	Dashboard,
	ProjectList, ProjectForm,
	DeveloperList, DeveloperForm,
	UserList, UserForm,
}

// Renderer writes a named view with its attributes
type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, data map[string]any) error
}

// TemplateRenderer renders each view inside the shared layout
type TemplateRenderer struct {
	pages map[string]*template.Template
}

// NewTemplateRenderer parses all embedded views
func NewTemplateRenderer() (*TemplateRenderer, error) {
	funcs := templateFuncs()

	pages := make(map[string]*template.Template, len(Names))
	for _, name := range Names {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse view %s: %w", name, err)
		}
		pages[name] = t
	}

	return &TemplateRenderer{pages: pages}, nil
}

// Render executes into a buffer first so a template error never leaves a half-written page
func (r *TemplateRenderer) Render(w http.ResponseWriter, status int, name string, data map[string]any) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown view: %s", name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

func templateFuncs() template.FuncMap {
	printer := message.NewPrinter(language.Vietnamese)

	return template.FuncMap{
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
		"derefID": func(id *int64) int64 {
			if id == nil {
				return 0
			}
			return *id
		},
		"vnd": func(amount int64) string {
			return printer.Sprintf("%d ₫", amount)
		},
		"typeLabel": func(t models.ProjectType) string {
			return t.Label()
		},
		"statusLabel": func(s models.ProjectStatus) string {
			return s.Label()
		},
	}
}
