package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/TheODDYSEY/sme-secuaware/internal/domain"
	"github.com/TheODDYSEY/sme-secuaware/internal/repository"
)

// threatListLimit caps industry-matched alert listings.
const threatListLimit = 20

// ThreatService serves the threat alert catalog.
type ThreatService struct {
	threats   repository.ThreatRepository
	accounts  repository.AccountRepository
	snowflake *snowflake.Node
	logger    *zap.Logger
	tracer    trace.Tracer
	now       func() time.Time
}

// NewThreatService wires dependencies.
func NewThreatService(threats repository.ThreatRepository, accounts repository.AccountRepository, node *snowflake.Node, logger *zap.Logger) *ThreatService {
	return &ThreatService{
		threats:   threats,
		accounts:  accounts,
		snowflake: node,
		logger:    logger,
		tracer:    otel.Tracer("github.com/TheODDYSEY/sme-secuaware/internal/service"),
		now:       time.Now,
	}
}

// ListForAccount returns active, unexpired alerts matched to the caller's
// industry, severity first then recency, capped at 20.
func (s *ThreatService) ListForAccount(ctx context.Context, accountID int64) ([]ThreatView, error) {
	ctx, span := s.startSpan(ctx, "ThreatService.ListForAccount")
	defer span.End()

	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound("User not found")
		}
		return nil, fmt.Errorf("load account: %w", err)
	}

	alerts, err := s.threats.ListForIndustry(ctx, account.Industry, s.now().UTC(), threatListLimit)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list threats: %w", err)
	}

	views := make([]ThreatView, 0, len(alerts))
	for _, alert := range alerts {
		views = append(views, newThreatView(alert))
	}
	return views, nil
}

// CreateThreatInput carries the admin alert creation payload.
type CreateThreatInput struct {
	Title              string
	Description        string
	Severity           string
	Category           string
	AffectedIndustries []string
	Recommendations    []string
	ExpiresAt          *time.Time
}

// Create publishes a new alert. Only admins may call it.
func (s *ThreatService) Create(ctx context.Context, callerRole string, input CreateThreatInput) (ThreatView, error) {
	ctx, span := s.startSpan(ctx, "ThreatService.Create")
	defer span.End()

	if callerRole != domain.RoleAdmin {
		return ThreatView{}, forbidden("Admin role required")
	}
	if input.Title == "" || input.Description == "" || input.Severity == "" || input.Category == "" {
		return ThreatView{}, validationError("Required fields missing")
	}
	if !domain.ValidSeverity(input.Severity) {
		return ThreatView{}, validationError("Invalid severity")
	}
	if !domain.ValidThreatCategory(input.Category) {
		return ThreatView{}, validationError("Invalid category")
	}

	industries := input.AffectedIndustries
	if len(industries) == 0 {
		industries = []string{domain.IndustryAll}
	}
	recommendations := input.Recommendations
	if recommendations == nil {
		recommendations = []string{}
	}

	alert := domain.ThreatAlert{
		ID:                 s.snowflake.Generate().Int64(),
		Title:              input.Title,
		Description:        input.Description,
		Severity:           input.Severity,
		Category:           input.Category,
		AffectedIndustries: industries,
		Recommendations:    recommendations,
		IsActive:           true,
		ExpiresAt:          input.ExpiresAt,
		Source:             domain.DefaultThreatSource,
	}

	created, err := s.threats.Create(ctx, alert)
	if err != nil {
		span.RecordError(err)
		return ThreatView{}, fmt.Errorf("create threat: %w", err)
	}

	audit(s.logger, "threat.created",
		"threat_id", created.ID,
		"severity", created.Severity,
		"category", created.Category,
	)
	return newThreatView(created), nil
}

func (s *ThreatService) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if s == nil || s.tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return s.tracer.Start(ctx, name)
}
