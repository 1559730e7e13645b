package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/cat_finder_system/internal/models"
	"github.com/shenikar/cat_finder_system/internal/service"
)

type ReportRepository struct {
	db *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) service.ReportRepository {
	return &ReportRepository{
		db: db,
	}
}

// Create сохраняет репорт и обновляет last_seen кота одной транзакцией:
// сбой между двумя записями не оставит кота с отставшим местоположением
func (r *ReportRepository) Create(ctx context.Context, report *models.Report) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	insertQuery := `
		INSERT INTO reports (id, cat_id, reporter_id, description, location, photos)
		VALUES ($1, $2, $3, $4, ST_SetSRID(ST_MakePoint($5, $6), 4326), $7)
		RETURNING created_at, updated_at;
	`
	err = tx.QueryRow(ctx, insertQuery,
		report.ID,
		report.CatID,
		report.ReporterID,
		report.Description,
		report.Longitude,
		report.Latitude,
		report.Photos,
	).Scan(&report.CreatedAt, &report.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}

	updateQuery := `
		UPDATE cats SET
			last_seen_location = ST_SetSRID(ST_MakePoint($1, $2), 4326),
			last_seen_at = $3,
			updated_at = NOW()
		WHERE id = $4;
	`
	cmdTag, err := tx.Exec(ctx, updateQuery,
		report.Longitude,
		report.Latitude,
		report.CreatedAt,
		report.CatID,
	)
	if err != nil {
		return fmt.Errorf("failed to update cat last_seen: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("cat with id %s not found for report: %w", report.CatID, service.ErrNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit report transaction: %w", err)
	}
	return nil
}

// ListByCat возвращает все репорты кота вместе с именами авторов
func (r *ReportRepository) ListByCat(ctx context.Context, catID uuid.UUID) ([]*models.Report, error) {
	query := `
		SELECT
			r.id,
			r.cat_id,
			r.reporter_id,
			r.description,
			ST_Y(r.location::geometry) as latitude,
			ST_X(r.location::geometry) as longitude,
			r.photos,
			r.created_at,
			r.updated_at,
			COALESCE(u.name, '') as reporter_name
		FROM reports r
		LEFT JOIN users u ON u.id = r.reporter_id
		WHERE r.cat_id = $1
		ORDER BY r.created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, catID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports by cat: %w", err)
	}
	defer rows.Close()

	return scanReports(rows)
}

// ListByReporter возвращает все репорты, оставленные пользователем
func (r *ReportRepository) ListByReporter(ctx context.Context, reporterID uuid.UUID) ([]*models.Report, error) {
	query := `
		SELECT
			r.id,
			r.cat_id,
			r.reporter_id,
			r.description,
			ST_Y(r.location::geometry) as latitude,
			ST_X(r.location::geometry) as longitude,
			r.photos,
			r.created_at,
			r.updated_at,
			COALESCE(u.name, '') as reporter_name
		FROM reports r
		LEFT JOIN users u ON u.id = r.reporter_id
		WHERE r.reporter_id = $1
		ORDER BY r.created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, reporterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports by reporter: %w", err)
	}
	defer rows.Close()

	return scanReports(rows)
}

// DeleteByCat удаляет все репорты кота
func (r *ReportRepository) DeleteByCat(ctx context.Context, catID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM reports WHERE cat_id = $1;`, catID); err != nil {
		return fmt.Errorf("failed to delete reports by cat: %w", err)
	}
	return nil
}

func scanReports(rows pgx.Rows) ([]*models.Report, error) {
	reports := make([]*models.Report, 0)
	for rows.Next() {
		report := &models.Report{}
		err := rows.Scan(
			&report.ID,
			&report.CatID,
			&report.ReporterID,
			&report.Description,
			&report.Latitude,
			&report.Longitude,
			&report.Photos,
			&report.CreatedAt,
			&report.UpdatedAt,
			&report.ReporterName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error report iteration: %w", err)
	}
	return reports, nil
}
