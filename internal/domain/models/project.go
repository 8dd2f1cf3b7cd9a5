package models

import "time"

// ProjectType classifies a listing
type ProjectType string

const (
	ProjectTypeApartment ProjectType = "APARTMENT"
	ProjectTypeVilla     ProjectType = "VILLA"
	ProjectTypeOffice    ProjectType = "OFFICE"
	ProjectTypeTownhouse ProjectType = "TOWNHOUSE"
	ProjectTypeShophouse ProjectType = "SHOPHOUSE"
)

// ProjectTypes returns every project type in display order
func ProjectTypes() []ProjectType {
	return []ProjectType{
		ProjectTypeApartment,
		ProjectTypeVilla,
		ProjectTypeOffice,
		ProjectTypeTownhouse,
		ProjectTypeShophouse,
	}
}

// Label returns the Vietnamese display name
func (t ProjectType) Label() string {
	switch t {
	case ProjectTypeApartment:
		return "Căn hộ"
	case ProjectTypeVilla:
		return "Biệt thự"
	case ProjectTypeOffice:
		return "Văn phòng"
	case ProjectTypeTownhouse:
		return "Nhà phố"
	case ProjectTypeShophouse:
		return "Shophouse"
	default:
		return string(t)
	}
}

// ProjectStatus is the sales stage of a listing
type ProjectStatus string

const (
	ProjectStatusUpcoming  ProjectStatus = "UPCOMING"
	ProjectStatusOpen      ProjectStatus = "OPEN"
	ProjectStatusSoldOut   ProjectStatus = "SOLD_OUT"
	ProjectStatusCompleted ProjectStatus = "COMPLETED"
)

// ProjectStatuses returns every project status in display order
func ProjectStatuses() []ProjectStatus {
	return []ProjectStatus{
		ProjectStatusUpcoming,
		ProjectStatusOpen,
		ProjectStatusSoldOut,
		ProjectStatusCompleted,
	}
}

// Label returns the Vietnamese display name
func (s ProjectStatus) Label() string {
	switch s {
	case ProjectStatusUpcoming:
		return "Sắp mở bán"
	case ProjectStatusOpen:
		return "Đang mở bán"
	case ProjectStatusSoldOut:
		return "Đã bán hết"
	case ProjectStatusCompleted:
		return "Đã bàn giao"
	default:
		return string(s)
	}
}

// Project is a real-estate listing
type Project struct {
	ID          int64         `json:"id" db:"id"`
	Name        string        `json:"name" db:"name"`
	Description string        `json:"description" db:"description"`
	Address     string        `json:"address" db:"address"`
	Ward        string        `json:"ward" db:"ward"`
	District    string        `json:"district" db:"district"`
	DeveloperID *int64        `json:"developer_id,omitempty" db:"developer_id"`
	Type        ProjectType   `json:"type" db:"type"`
	Status      ProjectStatus `json:"status" db:"status"`
	Area        float64       `json:"area" db:"area"`             // m²
	PriceFrom   int64         `json:"price_from" db:"price_from"` // VND
	PriceTo     int64         `json:"price_to" db:"price_to"`     // VND
	TotalUnits  int           `json:"total_units" db:"total_units"`
	IsActive    bool          `json:"is_active" db:"is_active"`
	Thumbnail   *string       `json:"thumbnail,omitempty" db:"thumbnail"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" db:"updated_at"`

	// Populated by list queries only
	DeveloperName string `json:"developer_name,omitempty" db:"-"`
}
