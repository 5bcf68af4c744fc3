package repository

import (
	"context"
	"time"

	"github.com/TheODDYSEY/sme-secuaware/internal/domain"
)

// AccountRepository exposes persistence for registered accounts.
type AccountRepository interface {
	GetByEmail(ctx context.Context, email string) (domain.Account, error)
	GetByID(ctx context.Context, accountID int64) (domain.Account, error)
	Create(ctx context.Context, account domain.Account) (domain.Account, error)
}

// AssessmentRepository persists completed questionnaires. CreateWithScoreSync
// inserts the assessment and reflects its score onto the owning account in a
// single transaction; an older completion never overwrites a newer score.
type AssessmentRepository interface {
	CreateWithScoreSync(ctx context.Context, assessment domain.Assessment) (domain.Assessment, error)
	LatestByAccount(ctx context.Context, accountID int64, limit int) ([]domain.Assessment, error)
}

// ThreatRepository exposes the threat alert catalog.
type ThreatRepository interface {
	ListForIndustry(ctx context.Context, industry string, now time.Time, limit int) ([]domain.ThreatAlert, error)
	Create(ctx context.Context, alert domain.ThreatAlert) (domain.ThreatAlert, error)
	Count(ctx context.Context) (int64, error)
}

// EducationRepository exposes the published article catalog.
type EducationRepository interface {
	List(ctx context.Context, filter ArticleFilter) ([]domain.EducationArticle, error)
	GetByID(ctx context.Context, articleID int64) (domain.EducationArticle, error)
	Create(ctx context.Context, article domain.EducationArticle) (domain.EducationArticle, error)
	Count(ctx context.Context) (int64, error)
}

// ArticleFilter narrows education listings. Empty fields match everything.
type ArticleFilter struct {
	Category   string
	Difficulty string
	Limit      int
}

// ViewCounter tracks per-article view counts.
type ViewCounter interface {
	Increment(ctx context.Context, articleID int64) (int64, error)
	Get(ctx context.Context, articleID int64) (int64, error)
}
