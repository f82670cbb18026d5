package postgres_test

import (
	"testing"

	pg "fineart/internal/infra/adapter/persistence/postgres"
	"fineart/internal/repository"
)

func TestArticleQueryBuilder_BuildWhereClause(t *testing.T) {
	qb := pg.NewArticleQueryBuilder()

	tests := []struct {
		name       string
		filter     repository.ArticleFilter
		wantClause string
		wantArgs   []interface{}
	}{
		{
			name:       "no filter",
			filter:     repository.ArticleFilter{},
			wantClause: "",
			wantArgs:   nil,
		},
		{
			name:       "category only",
			filter:     repository.ArticleFilter{Category: "art"},
			wantClause: "WHERE category = $1",
			wantArgs:   []interface{}{"art"},
		},
		{
			name:       "keyword only",
			filter:     repository.ArticleFilter{Keyword: "monet"},
			wantClause: "WHERE (title ILIKE $1 OR content ILIKE $1 OR writer ILIKE $1)",
			wantArgs:   []interface{}{"%monet%"},
		},
		{
			name:       "both compose with AND",
			filter:     repository.ArticleFilter{Category: "art", Keyword: "monet"},
			wantClause: "WHERE category = $1 AND (title ILIKE $2 OR content ILIKE $2 OR writer ILIKE $2)",
			wantArgs:   []interface{}{"art", "%monet%"},
		},
		{
			name:       "keyword wildcards escaped",
			filter:     repository.ArticleFilter{Keyword: "100%"},
			wantClause: "WHERE (title ILIKE $1 OR content ILIKE $1 OR writer ILIKE $1)",
			wantArgs:   []interface{}{"%100\\%%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := qb.BuildWhereClause(tt.filter)
			if clause != tt.wantClause {
				t.Fatalf("clause = %q, want %q", clause, tt.wantClause)
			}
			if len(args) != len(tt.wantArgs) {
				t.Fatalf("args = %v, want %v", args, tt.wantArgs)
			}
			for i := range args {
				if args[i] != tt.wantArgs[i] {
					t.Fatalf("args[%d] = %v, want %v", i, args[i], tt.wantArgs[i])
				}
			}
		})
	}
}

func TestArticleQueryBuilder_BuildOrderBy(t *testing.T) {
	qb := pg.NewArticleQueryBuilder()

	tests := []struct {
		sort repository.ArticleSort
		want string
	}{
		{repository.ArticleSortNewest, "ORDER BY created_at DESC, id DESC"},
		{repository.ArticleSortOldest, "ORDER BY created_at ASC, id ASC"},
		{repository.ArticleSortMostViewed, "ORDER BY views DESC, created_at DESC"},
		{repository.ArticleSortLeastViewed, "ORDER BY views ASC, created_at DESC"},
	}
	for _, tt := range tests {
		if got := qb.BuildOrderBy(tt.sort); got != tt.want {
			t.Errorf("BuildOrderBy(%v) = %q, want %q", tt.sort, got, tt.want)
		}
	}
}
