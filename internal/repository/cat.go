package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/cat_finder_system/internal/models"
	"github.com/shenikar/cat_finder_system/internal/service"
)

const catColumns = `
	id,
	name,
	description,
	status,
	photos,
	owner_id,
	ST_Y(last_seen_location::geometry) as latitude,
	ST_X(last_seen_location::geometry) as longitude,
	last_seen_at,
	created_at,
	updated_at`

type CatRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewCatRepository(db *pgxpool.Pool, redisClient *redis.Client) service.CatRepository {
	return &CatRepository{
		db:          db,
		redisClient: redisClient,
	}
}

func scanCat(row pgx.Row) (*models.Cat, error) {
	cat := &models.Cat{}
	err := row.Scan(
		&cat.ID,
		&cat.Name,
		&cat.Description,
		&cat.Status,
		&cat.Photos,
		&cat.OwnerID,
		&cat.LastSeen.Latitude,
		&cat.LastSeen.Longitude,
		&cat.LastSeen.Timestamp,
		&cat.CreatedAt,
		&cat.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return cat, nil
}

// Create создает новую карточку кота в бд
func (r *CatRepository) Create(ctx context.Context, cat *models.Cat) error {
	query := `
		INSERT INTO cats (id, name, description, status, photos, owner_id, last_seen_location, last_seen_at)
		VALUES ($1, $2, $3, $4, $5, $6, ST_SetSRID(ST_MakePoint($7, $8), 4326), $9)
		RETURNING created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		cat.ID,
		cat.Name,
		cat.Description,
		cat.Status,
		cat.Photos,
		cat.OwnerID,
		cat.LastSeen.Longitude,
		cat.LastSeen.Latitude,
		cat.LastSeen.Timestamp,
	).Scan(&cat.CreatedAt, &cat.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create cat: %w", err)
	}
	return nil
}

// GetByID возвращает кота по его UUID
func (r *CatRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Cat, error) {
	query := `SELECT ` + catColumns + ` FROM cats WHERE id = $1;`

	cat, err := scanCat(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("cat with id %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get cat by id: %w", err)
	}
	return cat, nil
}

// List возвращает страницу котов и общее число подходящих записей.
// Гео-фильтр (радиус в километрах по дуге большого круга) применяется
// только когда заданы обе координаты.
func (r *CatRepository) List(ctx context.Context, filter service.CatFilter) ([]*models.Cat, int, error) {
	offset := (filter.Page - 1) * filter.Limit

	where := ""
	args := []any{}
	if filter.Lat != nil && filter.Lng != nil {
		where = `WHERE ST_DWithin(
			last_seen_location,
			ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
			$3
		)`
		args = append(args, *filter.Lng, *filter.Lat, filter.RadiusKm*1000)
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM cats ` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count cats: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM cats %s ORDER BY last_seen_at DESC LIMIT $%d OFFSET $%d;`,
		catColumns, where, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list cats: %w", err)
	}
	defer rows.Close()

	cats := make([]*models.Cat, 0)
	for rows.Next() {
		cat, err := scanCat(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan cat row: %w", err)
		}
		cats = append(cats, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error list iteration: %w", err)
	}
	return cats, total, nil
}

// ListByOwner возвращает всех котов пользователя
func (r *CatRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Cat, error) {
	query := `SELECT ` + catColumns + ` FROM cats WHERE owner_id = $1 ORDER BY created_at DESC;`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cats by owner: %w", err)
	}
	defer rows.Close()

	cats := make([]*models.Cat, 0)
	for rows.Next() {
		cat, err := scanCat(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cat row in ListByOwner: %w", err)
		}
		cats = append(cats, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in ListByOwner: %w", err)
	}
	return cats, nil
}

// UpdateStatus меняет статус кота
func (r *CatRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `
		UPDATE cats SET
			status = $1,
			updated_at = NOW()
		WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update cat status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("cat with id %s not found for status update: %w", id, service.ErrNotFound)
	}
	return nil
}

// Delete удаляет карточку кота
func (r *CatRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM cats WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete cat: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("cat with id %s not found for delete: %w", id, service.ErrNotFound)
	}
	return nil
}

// RepairLastSeen подтягивает last_seen котов до их последнего репорта.
// Возвращает количество исправленных записей.
func (r *CatRepository) RepairLastSeen(ctx context.Context) (int64, error) {
	query := `
		UPDATE cats c SET
			last_seen_location = latest.location,
			last_seen_at = latest.created_at,
			updated_at = NOW()
		FROM (
			SELECT DISTINCT ON (cat_id) cat_id, location, created_at
			FROM reports
			ORDER BY cat_id, created_at DESC
		) latest
		WHERE latest.cat_id = c.id
		  AND c.last_seen_at < latest.created_at;
	`
	cmdTag, err := r.db.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to repair stale last_seen: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// GetCatFromCache пытается получить кота из Redis
func (r *CatRepository) GetCatFromCache(ctx context.Context, id uuid.UUID) (*models.Cat, error) {
	key := fmt.Sprintf("cat:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cat from cache: %w", err)
	}

	cat := &models.Cat{}
	if err := json.Unmarshal(val, cat); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cat from cache: %w", err)
	}
	return cat, nil
}

// SetCatCache сохраняет кота в Redis
func (r *CatRepository) SetCatCache(ctx context.Context, cat *models.Cat) error {
	key := fmt.Sprintf("cat:%s", cat.ID.String())
	val, err := json.Marshal(cat)
	if err != nil {
		return fmt.Errorf("failed to marshal cat for cache: %w", err)
	}
	// Устанавливаем срок жизни кэша, например, 5 минут
	if err := r.redisClient.Set(ctx, key, val, 5*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set cat in cache: %w", err)
	}
	return nil
}

// InvalidateCatCache удаляет кота из Redis кэша
func (r *CatRepository) InvalidateCatCache(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf("cat:%s", id.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cat cache: %w", err)
	}
	return nil
}
