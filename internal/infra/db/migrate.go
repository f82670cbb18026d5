package db

import (
	"database/sql"
)

// MigrateUp creates the schema if it does not exist. Statements are
// idempotent so the function is safe to run on every startup.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS articles (
    id            BIGSERIAL PRIMARY KEY,
    title         TEXT NOT NULL,
    content       TEXT NOT NULL,
    image_url     TEXT NOT NULL DEFAULT '',
    thumbnail_url TEXT NOT NULL DEFAULT '',
    writer        TEXT NOT NULL,
    category      TEXT NOT NULL,
    views         BIGINT NOT NULL DEFAULT 0,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS artists (
    id          BIGSERIAL PRIMARY KEY,
    name        TEXT NOT NULL,
    bio         TEXT NOT NULL DEFAULT '',
    nationality TEXT NOT NULL DEFAULT '',
    image_url   TEXT NOT NULL DEFAULT '',
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	// Deleting an artist removes their artworks with it.
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS artworks (
    id         BIGSERIAL PRIMARY KEY,
    title      TEXT NOT NULL,
    price      BIGINT NOT NULL DEFAULT 0,
    image_url  TEXT NOT NULL DEFAULT '',
    status     VARCHAR(20) NOT NULL DEFAULT 'ForSale',
    artist_id  BIGINT NOT NULL REFERENCES artists(id) ON DELETE CASCADE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS exhibitions (
    id          BIGSERIAL PRIMARY KEY,
    title       TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    artist      TEXT NOT NULL DEFAULT '',
    start_date  TIMESTAMPTZ NOT NULL,
    end_date    TIMESTAMPTZ NOT NULL,
    image_url   TEXT NOT NULL DEFAULT '',
    location    TEXT NOT NULL DEFAULT '',
    category    VARCHAR(20) NOT NULL DEFAULT 'Group',
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS users (
    id            BIGSERIAL PRIMARY KEY,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    role          VARCHAR(20) NOT NULL DEFAULT 'viewer',
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	indexes := []string{
		// Category filter on the article list endpoint.
		`CREATE INDEX IF NOT EXISTS idx_articles_category ON articles(category)`,
		// Default article sort is newest first.
		`CREATE INDEX IF NOT EXISTS idx_articles_created_at ON articles(created_at DESC)`,
		// Price range filters and price sorts on artworks.
		`CREATE INDEX IF NOT EXISTS idx_artworks_price ON artworks(price)`,
		`CREATE INDEX IF NOT EXISTS idx_artworks_created_at ON artworks(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_artworks_artist_id ON artworks(artist_id)`,
		`CREATE INDEX IF NOT EXISTS idx_exhibitions_start_date ON exhibitions(start_date DESC)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	// pg_trgm speeds up the ILIKE keyword searches. Ignore errors when the
	// extension is unavailable or the role lacks privileges.
	_, _ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pg_trgm`)
	searchIndexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_articles_title_gin ON articles USING gin(title gin_trgm_ops)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_content_gin ON articles USING gin(content gin_trgm_ops)`,
		`CREATE INDEX IF NOT EXISTS idx_artworks_title_gin ON artworks USING gin(title gin_trgm_ops)`,
		`CREATE INDEX IF NOT EXISTS idx_exhibitions_title_gin ON exhibitions USING gin(title gin_trgm_ops)`,
	}
	for _, idx := range searchIndexes {
		// Fails when pg_trgm is missing, so errors are ignored.
		_, _ = db.Exec(idx)
	}

	return nil
}

// MigrateDown removes the schema in reverse dependency order.
// Use with caution: this deletes all data in the affected tables.
func MigrateDown(db *sql.DB) error {
	dropStatements := []string{
		`DROP TABLE IF EXISTS artworks CASCADE`,
		`DROP TABLE IF EXISTS artists CASCADE`,
		`DROP TABLE IF EXISTS exhibitions CASCADE`,
		`DROP TABLE IF EXISTS articles CASCADE`,
		`DROP TABLE IF EXISTS users CASCADE`,
	}

	for _, stmt := range dropStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
