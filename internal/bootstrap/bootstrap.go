package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/jackc/pgx/v5"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/TheODDYSEY/sme-secuaware/internal/config"
	"github.com/TheODDYSEY/sme-secuaware/internal/domain"
	"github.com/TheODDYSEY/sme-secuaware/internal/password"
	"github.com/TheODDYSEY/sme-secuaware/internal/repository"
)

// EnsureAdmin provisions the admin account on startup when ADMIN_EMAIL and
// ADMIN_PASSWORD are configured. Registration never produces admins, so this
// is the only path that creates one.
func EnsureAdmin(lc fx.Lifecycle, cfg config.Config, accounts repository.AccountRepository, node *snowflake.Node, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return ensureAdmin(ctx, cfg, accounts, node, logger)
		},
	})
}

func ensureAdmin(ctx context.Context, cfg config.Config, accounts repository.AccountRepository, node *snowflake.Node, logger *zap.Logger) error {
	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))
	if email == "" || cfg.AdminPassword == "" {
		logger.Warn("admin bootstrap skipped, ADMIN_EMAIL or ADMIN_PASSWORD not set")
		return nil
	}

	if _, err := accounts.GetByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("bootstrap lookup admin: %w", err)
	}

	hashed, err := password.Hash(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("bootstrap hash password: %w", err)
	}

	created, err := accounts.Create(ctx, domain.Account{
		ID:            node.Generate().Int64(),
		Email:         email,
		PasswordHash:  hashed,
		CompanyName:   "SME SecuAware",
		CompanySize:   "1-10",
		Industry:      "technology",
		Role:          domain.RoleAdmin,
		SecurityScore: domain.InitialSecurityScore,
		IsActive:      true,
	})
	if err != nil {
		return fmt.Errorf("bootstrap create admin: %w", err)
	}

	logger.Info("bootstrap admin account created",
		zap.String("email", created.Email),
		zap.Int64("account_id", created.ID),
	)
	return nil
}

// SeedContent loads the starter threat alerts and education articles when the
// catalogs are empty. Runs only when SEED_CONTENT is enabled, and never
// touches catalogs that already hold rows.
func SeedContent(lc fx.Lifecycle, cfg config.Config, threats repository.ThreatRepository, articles repository.EducationRepository, node *snowflake.Node, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if !cfg.SeedContent {
				return nil
			}
			return seedContent(ctx, threats, articles, node, logger)
		},
	})
}

func seedContent(ctx context.Context, threats repository.ThreatRepository, articles repository.EducationRepository, node *snowflake.Node, logger *zap.Logger) error {
	threatCount, err := threats.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed count threats: %w", err)
	}
	if threatCount == 0 {
		for _, alert := range starterThreats() {
			alert.ID = node.Generate().Int64()
			if _, err := threats.Create(ctx, alert); err != nil {
				return fmt.Errorf("seed threat %q: %w", alert.Title, err)
			}
		}
		logger.Info("seeded threat alerts", zap.Int("count", len(starterThreats())))
	}

	articleCount, err := articles.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed count articles: %w", err)
	}
	if articleCount == 0 {
		for _, article := range starterArticles() {
			article.ID = node.Generate().Int64()
			if _, err := articles.Create(ctx, article); err != nil {
				return fmt.Errorf("seed article %q: %w", article.Title, err)
			}
		}
		logger.Info("seeded education articles", zap.Int("count", len(starterArticles())))
	}

	return nil
}
