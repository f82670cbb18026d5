package postgres

import (
	"fmt"
	"strings"

	"fineart/internal/pkg/search"
	"fineart/internal/repository"
)

// ArtworkQueryBuilder builds WHERE and ORDER BY fragments for artwork list
// queries, shared between COUNT and SELECT. Columns are qualified with a
// table alias because the SELECT joins the artists table.
type ArtworkQueryBuilder struct{}

// NewArtworkQueryBuilder creates a new query builder instance.
func NewArtworkQueryBuilder() *ArtworkQueryBuilder {
	return &ArtworkQueryBuilder{}
}

// BuildWhereClause builds the WHERE clause and arguments for an artwork
// filter. tableAlias qualifies column references when non-empty.
func (qb *ArtworkQueryBuilder) BuildWhereClause(filter repository.ArtworkFilter, tableAlias string) (clause string, args []interface{}) {
	col := func(name string) string {
		if tableAlias == "" {
			return name
		}
		return tableAlias + "." + name
	}

	var conditions []string
	paramIndex := 1

	if filter.Keyword != "" {
		pattern := "%" + search.EscapeLike(filter.Keyword) + "%"
		conditions = append(conditions, fmt.Sprintf("%s ILIKE $%d", col("title"), paramIndex))
		args = append(args, pattern)
		paramIndex++
	}

	if filter.PriceMin != nil {
		conditions = append(conditions, fmt.Sprintf("%s >= $%d", col("price"), paramIndex))
		args = append(args, *filter.PriceMin)
		paramIndex++
	}

	if filter.PriceMax != nil {
		conditions = append(conditions, fmt.Sprintf("%s <= $%d", col("price"), paramIndex))
		args = append(args, *filter.PriceMax)
		paramIndex++
	}

	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("%s = $%d", col("status"), paramIndex))
		args = append(args, filter.Status.String())
		paramIndex++
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// BuildOrderBy maps an artwork sort to its ORDER BY clause.
func (qb *ArtworkQueryBuilder) BuildOrderBy(sort repository.ArtworkSort, tableAlias string) string {
	prefix := ""
	if tableAlias != "" {
		prefix = tableAlias + "."
	}
	switch sort {
	case repository.ArtworkSortCreated:
		return fmt.Sprintf("ORDER BY %screated_at DESC, %sid DESC", prefix, prefix)
	case repository.ArtworkSortPriceDesc:
		return fmt.Sprintf("ORDER BY %sprice DESC, %sid DESC", prefix, prefix)
	case repository.ArtworkSortPriceAsc:
		return fmt.Sprintf("ORDER BY %sprice ASC, %sid DESC", prefix, prefix)
	default:
		return fmt.Sprintf("ORDER BY %sid DESC", prefix)
	}
}
