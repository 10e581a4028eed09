package ports

import (
	"context"

	"github.com/99minutos/paywall-system/internal/core/domain"
)

// ArticleFilter narrows an article scan.
type ArticleFilter struct {
	MemberOnly bool // true = only articles flagged is_member_only
}

// ArticleRepository defines persistence operations for articles.
type ArticleRepository interface {
	// List returns every article matching filter, ordered by id.
	List(ctx context.Context, filter ArticleFilter) ([]*domain.Article, error)
	// FindByID returns domain.ErrArticleNotFound when no article has the id.
	FindByID(ctx context.Context, id int64) (*domain.Article, error)
	// InsertMany assigns ids to the articles and stores them.
	InsertMany(ctx context.Context, articles []*domain.Article) error
}
