package admin

import (
	"context"

	"estateadmin/internal/config"
	"estateadmin/internal/domain/models"
	"estateadmin/internal/view"
)

// Dashboard summarizes active listings; any failed read zeroes the summary
func (w *Workflow) Dashboard(ctx context.Context) Page {
	page := Page{
		View: view.Dashboard,
		Data: map[string]any{
			"totalProjects":    int64(0),
			"apartmentCount":   int64(0),
			"villaCount":       int64(0),
			"officeCount":      int64(0),
			"activeDevelopers": int64(0),
			"recentProjects":   []models.Project{},
		},
	}

	summary, err := w.summarize(ctx)
	if err != nil {
		w.logFailure("dashboard", err)
		page.Outcome = Failure(err, "")
		return page
	}

	for k, v := range summary {
		page.Data[k] = v
	}
	return page
}

func (w *Workflow) summarize(ctx context.Context) (map[string]any, error) {
	total, err := w.projects.CountActiveProjects(ctx)
	if err != nil {
		return nil, err
	}

	byType := map[string]models.ProjectType{
		"apartmentCount": models.ProjectTypeApartment,
		"villaCount":     models.ProjectTypeVilla,
		"officeCount":    models.ProjectTypeOffice,
	}
	summary := map[string]any{"totalProjects": total}
	for key, projectType := range byType {
		n, err := w.projects.CountProjectsByType(ctx, projectType)
		if err != nil {
			return nil, err
		}
		summary[key] = n
	}

	projects, err := w.projects.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	if len(projects) > config.RecentProjectsLimit {
		projects = projects[:config.RecentProjectsLimit]
	}
	summary["recentProjects"] = projects

	developers, err := w.developers.CountActiveDevelopers(ctx)
	if err != nil {
		return nil, err
	}
	summary["activeDevelopers"] = developers

	return summary, nil
}
