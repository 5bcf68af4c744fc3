package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/TheODDYSEY/sme-secuaware/internal/domain"
	"github.com/TheODDYSEY/sme-secuaware/internal/repository"
)

const (
	defaultArticleLimit = 20
	maxArticleLimit     = 100
)

// EducationService serves the published article catalog.
type EducationService struct {
	articles repository.EducationRepository
	views    repository.ViewCounter
	logger   *zap.Logger
	tracer   trace.Tracer
}

// NewEducationService wires dependencies.
func NewEducationService(articles repository.EducationRepository, views repository.ViewCounter, logger *zap.Logger) *EducationService {
	return &EducationService{
		articles: articles,
		views:    views,
		logger:   logger,
		tracer:   otel.Tracer("github.com/TheODDYSEY/sme-secuaware/internal/service"),
	}
}

// List returns published article summaries, newest first, optionally
// filtered by category and difficulty equality.
func (s *EducationService) List(ctx context.Context, filter repository.ArticleFilter) ([]ArticleSummary, error) {
	ctx, span := s.startSpan(ctx, "EducationService.List")
	defer span.End()

	if filter.Category != "" && !domain.ValidArticleCategory(filter.Category) {
		return nil, validationError("Invalid category")
	}
	if filter.Difficulty != "" && !domain.ValidDifficulty(filter.Difficulty) {
		return nil, validationError("Invalid difficulty")
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultArticleLimit
	}
	if filter.Limit > maxArticleLimit {
		filter.Limit = maxArticleLimit
	}

	articles, err := s.articles.List(ctx, filter)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list articles: %w", err)
	}

	var counterErr error
	summaries := make([]ArticleSummary, 0, len(articles))
	for _, article := range articles {
		summary := newArticleSummary(article)
		if s.views != nil {
			count, err := s.views.Get(ctx, article.ID)
			if err != nil {
				counterErr = err
			} else {
				summary.ViewCount = count
			}
		}
		summaries = append(summaries, summary)
	}
	if counterErr != nil {
		s.log().Warn("view counter read failed", zap.Error(counterErr))
	}
	return summaries, nil
}

// Get returns the full article and bumps its view counter. A counter
// failure is logged but never fails the read.
func (s *EducationService) Get(ctx context.Context, articleID int64) (ArticleView, error) {
	ctx, span := s.startSpan(ctx, "EducationService.Get")
	defer span.End()

	article, err := s.articles.GetByID(ctx, articleID)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, pgx.ErrNoRows) {
			return ArticleView{}, notFound("Article not found")
		}
		return ArticleView{}, fmt.Errorf("load article: %w", err)
	}

	summary := newArticleSummary(article)
	if s.views != nil {
		count, err := s.views.Increment(ctx, article.ID)
		if err != nil {
			s.log().Warn("view counter increment failed",
				zap.Int64("article_id", article.ID),
				zap.Error(err),
			)
		} else {
			summary.ViewCount = count
		}
	}

	return ArticleView{
		ArticleSummary: summary,
		Content:        article.Content,
		Author:         article.Author,
	}, nil
}

func (s *EducationService) log() *zap.Logger {
	if s != nil && s.logger != nil {
		return s.logger
	}
	return zap.L()
}

func (s *EducationService) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if s == nil || s.tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return s.tracer.Start(ctx, name)
}
