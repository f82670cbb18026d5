package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fineart/internal/domain/entity"
	"fineart/internal/repository"
)

// ArtistRepo implements repository.ArtistRepository using PostgreSQL.
// Artwork rows reference artists with ON DELETE CASCADE, so Delete removes
// the artist's artworks as a side effect of the store's referential policy.
type ArtistRepo struct{ db *sql.DB }

func NewArtistRepo(db *sql.DB) repository.ArtistRepository {
	return &ArtistRepo{db: db}
}

func scanArtist(scanner interface{ Scan(...interface{}) error }) (*entity.Artist, error) {
	var artist entity.Artist
	err := scanner.Scan(
		&artist.ID, &artist.Name, &artist.Bio,
		&artist.Nationality, &artist.ImageURL, &artist.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

func (repo *ArtistRepo) Get(ctx context.Context, id int64) (*entity.Artist, error) {
	const query = `
SELECT id, name, bio, nationality, image_url, created_at
FROM artists
WHERE id = $1
LIMIT 1`
	artist, err := scanArtist(repo.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("Get: QueryRowContext: %w", err)
	}
	return artist, nil
}

func (repo *ArtistRepo) List(ctx context.Context) ([]*entity.Artist, error) {
	const query = `
SELECT id, name, bio, nationality, image_url, created_at
FROM artists
ORDER BY name ASC, id ASC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	artists := make([]*entity.Artist, 0, 50)
	for rows.Next() {
		artist, err := scanArtist(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		artists = append(artists, artist)
	}
	return artists, rows.Err()
}

func (repo *ArtistRepo) Exists(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT 1 FROM artists WHERE id = $1 LIMIT 1`
	var exists int
	err := repo.db.QueryRowContext(ctx, query, id).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("Exists: %w", err)
	}
	return true, nil
}

func (repo *ArtistRepo) Create(ctx context.Context, artist *entity.Artist) error {
	const query = `
INSERT INTO artists
(name, bio, nationality, image_url, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		artist.Name, artist.Bio, artist.Nationality,
		artist.ImageURL, artist.CreatedAt,
	).Scan(&artist.ID)
	if err != nil {
		return fmt.Errorf("Create: QueryRowContext: %w", err)
	}
	return nil
}

func (repo *ArtistRepo) Update(ctx context.Context, artist *entity.Artist) error {
	const query = `
UPDATE artists SET
	name        = $1,
	bio         = $2,
	nationality = $3,
	image_url   = $4
WHERE id = $5`
	res, err := repo.db.ExecContext(ctx, query,
		artist.Name, artist.Bio, artist.Nationality, artist.ImageURL, artist.ID,
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

func (repo *ArtistRepo) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM artists WHERE id = $1`
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
