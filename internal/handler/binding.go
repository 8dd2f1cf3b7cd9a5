package handler

import (
	"estateadmin/internal/domain/models"
	"estateadmin/internal/httputil"
)

// Form field names shared with the templates
const (
	fieldThumbnailFile = "thumbnailFile"
	fieldLogoFile      = "logoFile"
)

func bindProject(v *httputil.FormValues) *models.Project {
	return &models.Project{
		ID:          v.Int64("id"),
		Name:        v.String("name"),
		Description: v.String("description"),
		Address:     v.String("address"),
		Ward:        v.String("ward"),
		District:    v.String("district"),
		DeveloperID: v.OptionalInt64("developerId"),
		Type:        models.ProjectType(v.String("type")),
		Status:      models.ProjectStatus(v.String("status")),
		Area:        v.Float64("area"),
		PriceFrom:   v.Int64("priceFrom"),
		PriceTo:     v.Int64("priceTo"),
		TotalUnits:  v.Int("totalUnits"),
		Thumbnail:   v.OptionalString("thumbnail"),
	}
}

func bindDeveloper(v *httputil.FormValues) *models.Developer {
	return &models.Developer{
		ID:          v.Int64("id"),
		Name:        v.String("name"),
		Description: v.String("description"),
		Website:     v.String("website"),
		Phone:       v.String("phone"),
		Email:       v.String("email"),
		LogoURL:     v.OptionalString("logoUrl"),
	}
}

func bindUser(v *httputil.FormValues) *models.User {
	return &models.User{
		ID:       v.Int64("id"),
		Username: v.String("username"),
		Email:    v.String("email"),
		FullName: v.String("fullName"),
		Phone:    v.String("phone"),
		Role:     models.UserRole(v.String("role")),
		Password: v.Raw("password"),
	}
}
