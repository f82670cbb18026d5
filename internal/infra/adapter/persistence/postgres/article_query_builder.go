// Package postgres provides PostgreSQL implementations of the repository
// interfaces. It uses PostgreSQL-specific features like ILIKE and numbered
// placeholders ($1, $2, ...).
package postgres

import (
	"fmt"
	"strings"

	"fineart/internal/pkg/search"
	"fineart/internal/repository"
)

// ArticleQueryBuilder builds WHERE and ORDER BY fragments for article list
// queries. The WHERE builder is shared between COUNT and SELECT queries so
// the total always reflects the same filter as the page.
type ArticleQueryBuilder struct{}

// NewArticleQueryBuilder creates a new query builder instance.
func NewArticleQueryBuilder() *ArticleQueryBuilder {
	return &ArticleQueryBuilder{}
}

// BuildWhereClause builds the WHERE clause and arguments for an article
// filter. Zero-value filter fields contribute no condition; conditions
// compose with AND. Returns an empty clause when no filter is set.
func (qb *ArticleQueryBuilder) BuildWhereClause(filter repository.ArticleFilter) (clause string, args []interface{}) {
	var conditions []string
	paramIndex := 1

	if filter.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", paramIndex))
		args = append(args, filter.Category)
		paramIndex++
	}

	if filter.Keyword != "" {
		pattern := "%" + search.EscapeLike(filter.Keyword) + "%"
		conditions = append(conditions, fmt.Sprintf(
			"(title ILIKE $%d OR content ILIKE $%d OR writer ILIKE $%d)",
			paramIndex, paramIndex, paramIndex))
		args = append(args, pattern)
		paramIndex++
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// BuildOrderBy maps an article sort to its ORDER BY clause. Every ordering
// carries a deterministic tie-break so repeated queries against an unchanged
// dataset paginate identically.
func (qb *ArticleQueryBuilder) BuildOrderBy(sort repository.ArticleSort) string {
	switch sort {
	case repository.ArticleSortOldest:
		return "ORDER BY created_at ASC, id ASC"
	case repository.ArticleSortMostViewed:
		return "ORDER BY views DESC, created_at DESC"
	case repository.ArticleSortLeastViewed:
		return "ORDER BY views ASC, created_at DESC"
	default:
		return "ORDER BY created_at DESC, id DESC"
	}
}
