package postgres

import (
	"context"
	"fmt"

	"estateadmin/internal/domain/models"
	"estateadmin/internal/domain/repositories"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresProjectRepository implements the ProjectRepository interface
type PostgresProjectRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(config *RepositoryConfig) repositories.ProjectRepository {
	return &PostgresProjectRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

const projectColumns = `p.id, p.name, p.description, p.address, p.ward, p.district, p.developer_id,
	p.type, p.status, p.area, p.price_from, p.price_to, p.total_units, p.is_active, p.thumbnail,
	p.created_at, p.updated_at, COALESCE(d.name, '')`

func scanProject(row rowScanner, p *models.Project) error {
	return row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Address,
		&p.Ward,
		&p.District,
		&p.DeveloperID,
		&p.Type,
		&p.Status,
		&p.Area,
		&p.PriceFrom,
		&p.PriceTo,
		&p.TotalUnits,
		&p.IsActive,
		&p.Thumbnail,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.DeveloperName,
	)
}

// Create inserts a project; new projects always start active
func (r *PostgresProjectRepository) Create(ctx context.Context, project *models.Project) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, description, address, ward, district, developer_id, type, status,
			area, price_from, price_to, total_units, is_active, thumbnail, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, TRUE, $13, $14, $15)
		RETURNING id, is_active, created_at, updated_at
	`, r.tables.Projects)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		project.Name,
		project.Description,
		project.Address,
		project.Ward,
		project.District,
		project.DeveloperID,
		project.Type,
		project.Status,
		project.Area,
		project.PriceFrom,
		project.PriceTo,
		project.TotalUnits,
		project.Thumbnail,
		project.CreatedAt,
		project.UpdatedAt,
	).Scan(&project.ID, &project.IsActive, &project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		return mapWriteError("create", "project", 0, err)
	}

	return nil
}

// GetByID retrieves a project by ID
func (r *PostgresProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s p
		LEFT JOIN %s d ON d.id = p.developer_id
		WHERE p.id = $1
	`, projectColumns, r.tables.Projects, r.tables.Developers)

	var project models.Project
	executor := GetExecutor(ctx, r.pool)
	if err := scanProject(executor.QueryRow(ctx, query, id), &project); err != nil {
		if IsPgNoRowsError(err) {
			return nil, notFound("project", id)
		}
		return nil, fmt.Errorf("get project: %w", err)
	}

	return &project, nil
}

// List retrieves all projects, newest first
func (r *PostgresProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s p
		LEFT JOIN %s d ON d.id = p.developer_id
		ORDER BY p.created_at DESC, p.id DESC
	`, projectColumns, r.tables.Projects, r.tables.Developers)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		var project models.Project
		if err := scanProject(rows, &project); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}

	return projects, nil
}

// Update overwrites the editable fields; is_active is only changed by SetActive
func (r *PostgresProjectRepository) Update(ctx context.Context, project *models.Project) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, description = $2, address = $3, ward = $4, district = $5, developer_id = $6,
			type = $7, status = $8, area = $9, price_from = $10, price_to = $11, total_units = $12,
			thumbnail = $13, updated_at = $14
		WHERE id = $15
		RETURNING is_active, created_at
	`, r.tables.Projects)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		project.Name,
		project.Description,
		project.Address,
		project.Ward,
		project.District,
		project.DeveloperID,
		project.Type,
		project.Status,
		project.Area,
		project.PriceFrom,
		project.PriceTo,
		project.TotalUnits,
		project.Thumbnail,
		project.UpdatedAt,
		project.ID,
	).Scan(&project.IsActive, &project.CreatedAt)
	if err != nil {
		if IsPgNoRowsError(err) {
			return notFound("project", project.ID)
		}
		return mapWriteError("update", "project", project.ID, err)
	}

	return nil
}

// Delete removes a project
func (r *PostgresProjectRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Projects)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id)
	if err != nil {
		return mapWriteError("delete", "project", id, err)
	}
	if result.RowsAffected() == 0 {
		return notFound("project", id)
	}

	return nil
}

// SetActive flips the active flag
func (r *PostgresProjectRepository) SetActive(ctx context.Context, id int64, active bool) error {
	query := fmt.Sprintf(`UPDATE %s SET is_active = $1, updated_at = NOW() WHERE id = $2`, r.tables.Projects)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, active, id)
	if err != nil {
		return fmt.Errorf("set project active: %w", err)
	}
	if result.RowsAffected() == 0 {
		return notFound("project", id)
	}

	return nil
}

// CountByType counts active projects of the given type
func (r *PostgresProjectRepository) CountByType(ctx context.Context, projectType models.ProjectType) (int64, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE type = $1 AND is_active`, r.tables.Projects)

	var count int64
	executor := GetExecutor(ctx, r.pool)
	if err := executor.QueryRow(ctx, query, projectType).Scan(&count); err != nil {
		return 0, fmt.Errorf("count projects by type: %w", err)
	}
	return count, nil
}

// CountActive counts active projects
func (r *PostgresProjectRepository) CountActive(ctx context.Context) (int64, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE is_active`, r.tables.Projects)

	var count int64
	executor := GetExecutor(ctx, r.pool)
	if err := executor.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("count active projects: %w", err)
	}
	return count, nil
}
