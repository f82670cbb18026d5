package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"fineart/internal/domain/entity"
	"fineart/internal/pkg/search"
	"fineart/internal/repository"
)

const exhibitionColumns = "id, title, description, artist, start_date, end_date, image_url, location, category, created_at"

// ExhibitionRepo implements repository.ExhibitionRepository using PostgreSQL.
// Category follows the same strict-on-scan rule as artwork status.
type ExhibitionRepo struct{ db *sql.DB }

func NewExhibitionRepo(db *sql.DB) repository.ExhibitionRepository {
	return &ExhibitionRepo{db: db}
}

func scanExhibition(scanner interface{ Scan(...interface{}) error }) (*entity.Exhibition, error) {
	var ex entity.Exhibition
	var category string
	err := scanner.Scan(
		&ex.ID, &ex.Title, &ex.Description, &ex.Artist,
		&ex.StartDate, &ex.EndDate, &ex.ImageURL, &ex.Location,
		&category, &ex.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	parsed, err := entity.ParseExhibitionCategory(category)
	if err != nil {
		return nil, fmt.Errorf("stored category for exhibition %d: %w", ex.ID, err)
	}
	ex.Category = parsed
	return &ex, nil
}

func buildExhibitionWhere(filter repository.ExhibitionFilter) (clause string, args []interface{}) {
	var conditions []string
	paramIndex := 1

	if filter.Keyword != "" {
		pattern := "%" + search.EscapeLike(filter.Keyword) + "%"
		conditions = append(conditions, fmt.Sprintf("title ILIKE $%d", paramIndex))
		args = append(args, pattern)
		paramIndex++
	}
	if filter.Category != nil {
		conditions = append(conditions, fmt.Sprintf("category = $%d", paramIndex))
		args = append(args, filter.Category.String())
		paramIndex++
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func exhibitionOrderBy(sort repository.ExhibitionSort) string {
	if sort == repository.ExhibitionSortOldest {
		return "ORDER BY start_date ASC, id ASC"
	}
	return "ORDER BY start_date DESC, id DESC"
}

func (repo *ExhibitionRepo) Get(ctx context.Context, id int64) (*entity.Exhibition, error) {
	query := `
SELECT ` + exhibitionColumns + `
FROM exhibitions
WHERE id = $1
LIMIT 1`
	ex, err := scanExhibition(repo.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("Get: QueryRowContext: %w", err)
	}
	return ex, nil
}

func (repo *ExhibitionRepo) Query(ctx context.Context, filter repository.ExhibitionFilter, sort repository.ExhibitionSort, offset, limit int) ([]*entity.Exhibition, error) {
	where, args := buildExhibitionWhere(filter)
	query := fmt.Sprintf(`
SELECT %s
FROM exhibitions
%s
%s
LIMIT $%d OFFSET $%d`,
		exhibitionColumns, where, exhibitionOrderBy(sort),
		len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("Query: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	exhibitions := make([]*entity.Exhibition, 0, limit)
	for rows.Next() {
		ex, err := scanExhibition(rows)
		if err != nil {
			return nil, fmt.Errorf("Query: Scan: %w", err)
		}
		exhibitions = append(exhibitions, ex)
	}
	return exhibitions, rows.Err()
}

func (repo *ExhibitionRepo) Count(ctx context.Context, filter repository.ExhibitionFilter) (int64, error) {
	where, args := buildExhibitionWhere(filter)
	query := fmt.Sprintf("SELECT COUNT(*) FROM exhibitions %s", where)

	var count int64
	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *ExhibitionRepo) Create(ctx context.Context, ex *entity.Exhibition) error {
	const query = `
INSERT INTO exhibitions
(title, description, artist, start_date, end_date, image_url, location, category, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		ex.Title, ex.Description, ex.Artist, ex.StartDate, ex.EndDate,
		ex.ImageURL, ex.Location, ex.Category.String(), ex.CreatedAt,
	).Scan(&ex.ID)
	if err != nil {
		return fmt.Errorf("Create: QueryRowContext: %w", err)
	}
	return nil
}

func (repo *ExhibitionRepo) Update(ctx context.Context, ex *entity.Exhibition) error {
	const query = `
UPDATE exhibitions SET
	title       = $1,
	description = $2,
	artist      = $3,
	start_date  = $4,
	end_date    = $5,
	image_url   = $6,
	location    = $7,
	category    = $8
WHERE id = $9`
	res, err := repo.db.ExecContext(ctx, query,
		ex.Title, ex.Description, ex.Artist, ex.StartDate, ex.EndDate,
		ex.ImageURL, ex.Location, ex.Category.String(), ex.ID,
	)
	if err != nil {
		return fmt.Errorf("Update: ExecContext: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Update: RowsAffected: %w", err)
	}
	if n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (repo *ExhibitionRepo) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM exhibitions WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("Delete: ExecContext: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("Delete: RowsAffected: %w", err)
	}
	return n > 0, nil
}
