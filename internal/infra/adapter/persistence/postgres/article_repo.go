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

const articleColumns = "id, title, content, image_url, thumbnail_url, writer, category, views, created_at, updated_at"

// ArticleRepo implements repository.ArticleRepository using PostgreSQL.
type ArticleRepo struct {
	db           *sql.DB
	queryBuilder *ArticleQueryBuilder
}

func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{
		db:           db,
		queryBuilder: NewArticleQueryBuilder(),
	}
}

func scanArticle(scanner interface{ Scan(...interface{}) error }) (*entity.Article, error) {
	var article entity.Article
	err := scanner.Scan(
		&article.ID, &article.Title, &article.Content,
		&article.ImageURL, &article.ThumbnailURL,
		&article.Writer, &article.Category, &article.Views,
		&article.CreatedAt, &article.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	query := `
SELECT ` + articleColumns + `
FROM articles
WHERE id = $1
LIMIT 1`
	article, err := scanArticle(repo.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("Get: QueryRowContext: %w", err)
	}
	return article, nil
}

// Query returns one window of the filtered, sorted article collection.
func (repo *ArticleRepo) Query(ctx context.Context, filter repository.ArticleFilter, sort repository.ArticleSort, offset, limit int) ([]*entity.Article, error) {
	if filter.Keyword != "" {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, search.DefaultSearchTimeout)
		defer cancel()
	}

	where, args := repo.queryBuilder.BuildWhereClause(filter)
	query := fmt.Sprintf(`
SELECT %s
FROM articles
%s
%s
LIMIT $%d OFFSET $%d`,
		articleColumns, where, repo.queryBuilder.BuildOrderBy(sort),
		len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("Query: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, limit)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("Query: Scan: %w", err)
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

// Count returns the filtered match count. It shares the WHERE builder with
// Query so the total reflects the filter, never the page.
func (repo *ArticleRepo) Count(ctx context.Context, filter repository.ArticleFilter) (int64, error) {
	where, args := repo.queryBuilder.BuildWhereClause(filter)
	query := fmt.Sprintf("SELECT COUNT(*) FROM articles %s", where)

	var count int64
	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	const query = `
INSERT INTO articles
(title, content, image_url, thumbnail_url, writer, category, views, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		article.Title, article.Content, article.ImageURL, article.ThumbnailURL,
		article.Writer, article.Category, article.Views,
		article.CreatedAt, article.UpdatedAt,
	).Scan(&article.ID)
	if err != nil {
		return fmt.Errorf("Create: QueryRowContext: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	const query = `
UPDATE articles SET
	title         = $1,
	content       = $2,
	image_url     = $3,
	thumbnail_url = $4,
	writer        = $5,
	category      = $6,
	updated_at    = $7
WHERE id = $8`
	res, err := repo.db.ExecContext(ctx, query,
		article.Title, article.Content, article.ImageURL, article.ThumbnailURL,
		article.Writer, article.Category, article.UpdatedAt, article.ID,
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

func (repo *ArticleRepo) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM articles WHERE id = $1`
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

// IncrementViews adds 1 to the view counter and returns the updated row in a
// single statement, so the increment is always based on the committed value
// at execution time.
func (repo *ArticleRepo) IncrementViews(ctx context.Context, id int64) (*entity.Article, error) {
	query := `
UPDATE articles SET views = views + 1
WHERE id = $1
RETURNING ` + articleColumns
	article, err := scanArticle(repo.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("IncrementViews: QueryRowContext: %w", err)
	}
	return article, nil
}
