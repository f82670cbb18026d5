package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fineart/internal/domain/entity"
	"fineart/internal/pkg/search"
	"fineart/internal/repository"
)

// ArtworkRepo implements repository.ArtworkRepository using PostgreSQL.
// Status is persisted as its canonical string; a stored value that does not
// parse is surfaced as a scan error rather than silently defaulted, so data
// corruption cannot masquerade as ForSale.
type ArtworkRepo struct {
	db           *sql.DB
	queryBuilder *ArtworkQueryBuilder
}

func NewArtworkRepo(db *sql.DB) repository.ArtworkRepository {
	return &ArtworkRepo{
		db:           db,
		queryBuilder: NewArtworkQueryBuilder(),
	}
}

func scanArtwork(scanner interface{ Scan(...interface{}) error }, extra ...interface{}) (*entity.Artwork, error) {
	var artwork entity.Artwork
	var status string
	dest := []interface{}{
		&artwork.ID, &artwork.Title, &artwork.Price, &artwork.ImageURL,
		&status, &artwork.ArtistID, &artwork.CreatedAt,
	}
	dest = append(dest, extra...)
	if err := scanner.Scan(dest...); err != nil {
		return nil, err
	}
	parsed, err := entity.ParseArtworkStatus(status)
	if err != nil {
		return nil, fmt.Errorf("stored status for artwork %d: %w", artwork.ID, err)
	}
	artwork.Status = parsed
	return &artwork, nil
}

func (repo *ArtworkRepo) Get(ctx context.Context, id int64) (*entity.Artwork, error) {
	const query = `
SELECT id, title, price, image_url, status, artist_id, created_at
FROM artworks
WHERE id = $1
LIMIT 1`
	artwork, err := scanArtwork(repo.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("Get: QueryRowContext: %w", err)
	}
	return artwork, nil
}

func (repo *ArtworkRepo) GetWithArtist(ctx context.Context, id int64) (*entity.Artwork, string, error) {
	const query = `
SELECT a.id, a.title, a.price, a.image_url, a.status, a.artist_id, a.created_at, ar.name AS artist_name
FROM artworks a
INNER JOIN artists ar ON a.artist_id = ar.id
WHERE a.id = $1
LIMIT 1`
	var artistName string
	artwork, err := scanArtwork(repo.db.QueryRowContext(ctx, query, id), &artistName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", nil
		}
		return nil, "", fmt.Errorf("GetWithArtist: QueryRowContext: %w", err)
	}
	return artwork, artistName, nil
}

// QueryWithArtist returns one window of the filtered, sorted artwork
// collection with artist names joined in.
func (repo *ArtworkRepo) QueryWithArtist(ctx context.Context, filter repository.ArtworkFilter, sort repository.ArtworkSort, offset, limit int) ([]repository.ArtworkWithArtist, error) {
	if filter.Keyword != "" {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, search.DefaultSearchTimeout)
		defer cancel()
	}

	where, args := repo.queryBuilder.BuildWhereClause(filter, "a")
	query := fmt.Sprintf(`
SELECT a.id, a.title, a.price, a.image_url, a.status, a.artist_id, a.created_at, ar.name AS artist_name
FROM artworks a
INNER JOIN artists ar ON a.artist_id = ar.id
%s
%s
LIMIT $%d OFFSET $%d`,
		where, repo.queryBuilder.BuildOrderBy(sort, "a"),
		len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("QueryWithArtist: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make([]repository.ArtworkWithArtist, 0, limit)
	for rows.Next() {
		var artistName string
		artwork, err := scanArtwork(rows, &artistName)
		if err != nil {
			return nil, fmt.Errorf("QueryWithArtist: Scan: %w", err)
		}
		result = append(result, repository.ArtworkWithArtist{
			Artwork:    artwork,
			ArtistName: artistName,
		})
	}
	return result, rows.Err()
}

func (repo *ArtworkRepo) Count(ctx context.Context, filter repository.ArtworkFilter) (int64, error) {
	where, args := repo.queryBuilder.BuildWhereClause(filter, "")
	query := fmt.Sprintf("SELECT COUNT(*) FROM artworks %s", where)

	var count int64
	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *ArtworkRepo) Create(ctx context.Context, artwork *entity.Artwork) error {
	const query = `
INSERT INTO artworks
(title, price, image_url, status, artist_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		artwork.Title, artwork.Price, artwork.ImageURL,
		artwork.Status.String(), artwork.ArtistID, artwork.CreatedAt,
	).Scan(&artwork.ID)
	if err != nil {
		return fmt.Errorf("Create: QueryRowContext: %w", err)
	}
	return nil
}

func (repo *ArtworkRepo) Update(ctx context.Context, artwork *entity.Artwork) error {
	const query = `
UPDATE artworks SET
	title     = $1,
	price     = $2,
	image_url = $3,
	status    = $4,
	artist_id = $5
WHERE id = $6`
	res, err := repo.db.ExecContext(ctx, query,
		artwork.Title, artwork.Price, artwork.ImageURL,
		artwork.Status.String(), artwork.ArtistID, artwork.ID,
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

func (repo *ArtworkRepo) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM artworks WHERE id = $1`
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
