package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/TheODDYSEY/sme-secuaware/internal/domain"
	"github.com/TheODDYSEY/sme-secuaware/internal/repository"
	"github.com/TheODDYSEY/sme-secuaware/internal/scoring"
)

// latestAssessmentLimit caps the dashboard history query.
const latestAssessmentLimit = 5

// AssessmentService scores questionnaires and maintains the ledger.
type AssessmentService struct {
	assessments repository.AssessmentRepository
	snowflake   *snowflake.Node
	logger      *zap.Logger
	tracer      trace.Tracer
	now         func() time.Time
}

// NewAssessmentService wires dependencies.
func NewAssessmentService(assessments repository.AssessmentRepository, node *snowflake.Node, logger *zap.Logger) *AssessmentService {
	return &AssessmentService{
		assessments: assessments,
		snowflake:   node,
		logger:      logger,
		tracer:      otel.Tracer("github.com/TheODDYSEY/sme-secuaware/internal/service"),
		now:         time.Now,
	}
}

// Submit scores the responses and persists the outcome. The assessment
// insert and the account score update commit together; the record itself is
// immutable once created.
func (s *AssessmentService) Submit(ctx context.Context, accountID int64, responses domain.Responses) (AssessmentView, error) {
	ctx, span := s.startSpan(ctx, "AssessmentService.Submit")
	defer span.End()

	if len(responses) == 0 {
		return AssessmentView{}, validationError("Complete assessment responses required")
	}

	result, err := scoring.Evaluate(responses)
	if err != nil {
		if errors.Is(err, scoring.ErrIncompleteResponses) {
			return AssessmentView{}, validationError("Complete assessment responses required")
		}
		return AssessmentView{}, validationError("Assessment responses must be between 1 and 5")
	}

	assessment := domain.Assessment{
		ID:              s.snowflake.Generate().Int64(),
		AccountID:       accountID,
		Responses:       responses,
		Score:           result.Score,
		RiskLevel:       result.RiskLevel,
		Recommendations: result.Recommendations,
		CompletedAt:     s.now().UTC(),
	}

	created, err := s.assessments.CreateWithScoreSync(ctx, assessment)
	if err != nil {
		span.RecordError(err)
		return AssessmentView{}, fmt.Errorf("persist assessment: %w", err)
	}

	audit(s.logger, "assessment.completed",
		"account_id", accountID,
		"score", created.Score,
		"risk_level", created.RiskLevel,
	)
	return newAssessmentView(created), nil
}

// Latest returns the caller's most recent assessments, newest first.
func (s *AssessmentService) Latest(ctx context.Context, accountID int64) ([]AssessmentView, error) {
	ctx, span := s.startSpan(ctx, "AssessmentService.Latest")
	defer span.End()

	assessments, err := s.assessments.LatestByAccount(ctx, accountID, latestAssessmentLimit)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list assessments: %w", err)
	}

	views := make([]AssessmentView, 0, len(assessments))
	for _, assessment := range assessments {
		views = append(views, newAssessmentView(assessment))
	}
	return views, nil
}

func (s *AssessmentService) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if s == nil || s.tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return s.tracer.Start(ctx, name)
}
