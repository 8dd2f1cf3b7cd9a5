package postgres

import (
	"context"
	"fmt"

	"estateadmin/internal/domain/models"
	"estateadmin/internal/domain/repositories"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresDeveloperRepository implements the DeveloperRepository interface
type PostgresDeveloperRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewDeveloperRepository creates a new developer repository
func NewDeveloperRepository(config *RepositoryConfig) repositories.DeveloperRepository {
	return &PostgresDeveloperRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

const developerColumns = `id, name, description, website, phone, email, logo_url, is_active, created_at, updated_at`

func scanDeveloper(row rowScanner, d *models.Developer) error {
	return row.Scan(
		&d.ID,
		&d.Name,
		&d.Description,
		&d.Website,
		&d.Phone,
		&d.Email,
		&d.LogoURL,
		&d.IsActive,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
}

// Create inserts an active developer
func (r *PostgresDeveloperRepository) Create(ctx context.Context, developer *models.Developer) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, description, website, phone, email, logo_url, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE, $7, $8)
		RETURNING id, is_active, created_at, updated_at
	`, r.tables.Developers)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		developer.Name,
		developer.Description,
		developer.Website,
		developer.Phone,
		developer.Email,
		developer.LogoURL,
		developer.CreatedAt,
		developer.UpdatedAt,
	).Scan(&developer.ID, &developer.IsActive, &developer.CreatedAt, &developer.UpdatedAt)
	if err != nil {
		return mapWriteError("create", "developer", 0, err)
	}

	return nil
}

// GetByID retrieves a developer by ID
func (r *PostgresDeveloperRepository) GetByID(ctx context.Context, id int64) (*models.Developer, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, developerColumns, r.tables.Developers)

	var developer models.Developer
	executor := GetExecutor(ctx, r.pool)
	if err := scanDeveloper(executor.QueryRow(ctx, query, id), &developer); err != nil {
		if IsPgNoRowsError(err) {
			return nil, notFound("developer", id)
		}
		return nil, fmt.Errorf("get developer: %w", err)
	}

	return &developer, nil
}

// List retrieves all developers, newest first
func (r *PostgresDeveloperRepository) List(ctx context.Context) ([]models.Developer, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY created_at DESC, id DESC`, developerColumns, r.tables.Developers)
	return r.list(ctx, query)
}

// ListActive retrieves active developers ordered by name
func (r *PostgresDeveloperRepository) ListActive(ctx context.Context) ([]models.Developer, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE is_active ORDER BY name, id`, developerColumns, r.tables.Developers)
	return r.list(ctx, query)
}

func (r *PostgresDeveloperRepository) list(ctx context.Context, query string) ([]models.Developer, error) {
	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list developers: %w", err)
	}
	defer rows.Close()

	developers := []models.Developer{}
	for rows.Next() {
		var developer models.Developer
		if err := scanDeveloper(rows, &developer); err != nil {
			return nil, fmt.Errorf("scan developer: %w", err)
		}
		developers = append(developers, developer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate developers: %w", err)
	}

	return developers, nil
}

// Update overwrites the editable fields of a developer
func (r *PostgresDeveloperRepository) Update(ctx context.Context, developer *models.Developer) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, description = $2, website = $3, phone = $4, email = $5, logo_url = $6, updated_at = $7
		WHERE id = $8
		RETURNING is_active, created_at
	`, r.tables.Developers)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		developer.Name,
		developer.Description,
		developer.Website,
		developer.Phone,
		developer.Email,
		developer.LogoURL,
		developer.UpdatedAt,
		developer.ID,
	).Scan(&developer.IsActive, &developer.CreatedAt)
	if err != nil {
		if IsPgNoRowsError(err) {
			return notFound("developer", developer.ID)
		}
		return mapWriteError("update", "developer", developer.ID, err)
	}

	return nil
}

// Delete removes a developer; projects still pointing at it block the delete
func (r *PostgresDeveloperRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Developers)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id)
	if err != nil {
		return mapWriteError("delete", "developer", id, err)
	}
	if result.RowsAffected() == 0 {
		return notFound("developer", id)
	}

	return nil
}

// SetActive flips the active flag
func (r *PostgresDeveloperRepository) SetActive(ctx context.Context, id int64, active bool) error {
	query := fmt.Sprintf(`UPDATE %s SET is_active = $1, updated_at = NOW() WHERE id = $2`, r.tables.Developers)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, active, id)
	if err != nil {
		return fmt.Errorf("set developer active: %w", err)
	}
	if result.RowsAffected() == 0 {
		return notFound("developer", id)
	}

	return nil
}

// CountActive counts active developers
func (r *PostgresDeveloperRepository) CountActive(ctx context.Context) (int64, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE is_active`, r.tables.Developers)

	var count int64
	executor := GetExecutor(ctx, r.pool)
	if err := executor.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("count active developers: %w", err)
	}
	return count, nil
}
