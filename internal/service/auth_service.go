package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/TheODDYSEY/sme-secuaware/internal/domain"
	pw "github.com/TheODDYSEY/sme-secuaware/internal/password"
	"github.com/TheODDYSEY/sme-secuaware/internal/repository"
	"github.com/TheODDYSEY/sme-secuaware/internal/token"
)

const minPasswordLength = 6

// AuthService encapsulates registration, login, and token validation.
type AuthService struct {
	accounts  repository.AccountRepository
	snowflake *snowflake.Node
	tokens    *token.Service
	logger    *zap.Logger
	tracer    trace.Tracer
}

// NewAuthService wires dependencies.
func NewAuthService(accounts repository.AccountRepository, node *snowflake.Node, tokens *token.Service, logger *zap.Logger) *AuthService {
	return &AuthService{
		accounts:  accounts,
		snowflake: node,
		tokens:    tokens,
		logger:    logger,
		tracer:    otel.Tracer("github.com/TheODDYSEY/sme-secuaware/internal/service"),
	}
}

// RegisterInput carries the registration payload.
type RegisterInput struct {
	Email       string
	Password    string
	CompanyName string
	CompanySize string
	Industry    string
}

// Register creates a new owner account and issues its first token.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (AuthResult, error) {
	ctx, span := s.startSpan(ctx, "AuthService.Register")
	defer span.End()

	normalized := normalizeEmail(input.Email)
	companyName := strings.TrimSpace(input.CompanyName)
	if normalized == "" || input.Password == "" || companyName == "" || input.CompanySize == "" || input.Industry == "" {
		return AuthResult{}, validationError("All fields are required")
	}
	if len(input.Password) < minPasswordLength {
		return AuthResult{}, validationError("Password must be at least 6 characters")
	}
	if !domain.ValidCompanySize(input.CompanySize) {
		return AuthResult{}, validationError("Invalid company size")
	}
	if !domain.ValidIndustry(input.Industry) {
		return AuthResult{}, validationError("Invalid industry")
	}

	if _, err := s.accounts.GetByEmail(ctx, normalized); err == nil {
		return AuthResult{}, validationError("User already exists")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		span.RecordError(err)
		return AuthResult{}, fmt.Errorf("check existing account: %w", err)
	}

	hashed, err := pw.Hash(input.Password)
	if err != nil {
		span.RecordError(err)
		return AuthResult{}, fmt.Errorf("hash password: %w", err)
	}

	account := domain.Account{
		ID:            s.snowflake.Generate().Int64(),
		Email:         normalized,
		PasswordHash:  hashed,
		CompanyName:   companyName,
		CompanySize:   input.CompanySize,
		Industry:      input.Industry,
		Role:          domain.RoleOwner,
		SecurityScore: domain.InitialSecurityScore,
		IsActive:      true,
	}

	created, err := s.accounts.Create(ctx, account)
	if err != nil {
		span.RecordError(err)
		return AuthResult{}, fmt.Errorf("create account: %w", err)
	}

	result, err := s.issueToken(created)
	if err != nil {
		span.RecordError(err)
		return AuthResult{}, err
	}

	s.audit("auth.register.success", "account_id", created.ID, "industry", created.Industry)
	return result, nil
}

// Login authenticates with email and password.
func (s *AuthService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	ctx, span := s.startSpan(ctx, "AuthService.Login")
	defer span.End()

	normalized := normalizeEmail(email)
	if normalized == "" || password == "" {
		return AuthResult{}, validationError("Email and password are required")
	}

	account, err := s.accounts.GetByEmail(ctx, normalized)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return AuthResult{}, invalidCredentials()
		}
		span.RecordError(err)
		return AuthResult{}, fmt.Errorf("load account: %w", err)
	}

	valid, err := pw.Verify(password, account.PasswordHash)
	if err != nil || !valid {
		return AuthResult{}, invalidCredentials()
	}

	result, err := s.issueToken(account)
	if err != nil {
		span.RecordError(err)
		return AuthResult{}, err
	}

	s.audit("auth.login.success", "account_id", account.ID)
	return result, nil
}

// Profile returns the account behind verified token claims.
func (s *AuthService) Profile(ctx context.Context, accountID int64) (AccountView, error) {
	ctx, span := s.startSpan(ctx, "AuthService.Profile")
	defer span.End()

	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, pgx.ErrNoRows) {
			return AccountView{}, notFound("User not found")
		}
		return AccountView{}, fmt.Errorf("load account: %w", err)
	}
	return newAccountView(account), nil
}

// VerifyToken checks the presented credential. Handlers call this on every
// protected request; the page gateway's structural check is never enough.
func (s *AuthService) VerifyToken(raw string) (token.Claims, error) {
	return s.tokens.Verify(raw)
}

// TokenTTL exposes the validity window for cookie max age.
func (s *AuthService) TokenTTL() time.Duration {
	return s.tokens.TTL()
}

func (s *AuthService) issueToken(account domain.Account) (AuthResult, error) {
	signed, err := s.tokens.Issue(account)
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue token: %w", err)
	}
	return AuthResult{Token: signed, User: newAccountView(account)}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if s == nil || s.tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return s.tracer.Start(ctx, name)
}

func (s *AuthService) audit(event string, attrs ...any) {
	audit(s.logger, event, attrs...)
}

func audit(logger *zap.Logger, event string, attrs ...any) {
	if logger == nil {
		logger = zap.L()
	}
	fields := make([]zap.Field, 0, len(attrs)/2+1)
	fields = append(fields, zap.String("event", event))
	for i := 0; i+1 < len(attrs); i += 2 {
		key, ok := attrs[i].(string)
		if !ok {
			continue
		}
		fields = append(fields, zap.Any(key, attrs[i+1]))
	}
	logger.Info("audit", fields...)
}
