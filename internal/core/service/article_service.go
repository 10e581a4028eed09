package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/99minutos/paywall-system/internal/core/domain"
	"github.com/99minutos/paywall-system/internal/core/ports"
)

type ArticleService struct {
	repo   ports.ArticleRepository
	policy *AccessPolicy
	logger zerolog.Logger
}

var _ ports.ArticleService = (*ArticleService)(nil)

func NewArticleService(repo ports.ArticleRepository, policy *AccessPolicy, logger zerolog.Logger) *ArticleService {
	return &ArticleService{repo: repo, policy: policy, logger: logger}
}

func (s *ArticleService) ListArticles(ctx context.Context) ([]*domain.Article, error) {
	articles, err := s.repo.List(ctx, ports.ArticleFilter{})
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// ReadArticle loads the article first, so a missing id never touches the pageview counter.
func (s *ArticleService) ReadArticle(ctx context.Context, sessionID string, id int64) (*domain.Article, error) {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.policy.AuthorizeArticle(ctx, sessionID, article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *ArticleService) ListMemberArticles(ctx context.Context) ([]*domain.Article, error) {
	articles, err := s.repo.List(ctx, ports.ArticleFilter{MemberOnly: true})
	if err != nil {
		return nil, fmt.Errorf("list member articles: %w", err)
	}
	return articles, nil
}

func (s *ArticleService) GetArticle(ctx context.Context, id int64) (*domain.Article, error) {
	return s.repo.FindByID(ctx, id)
}
