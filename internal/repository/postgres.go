package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TheODDYSEY/sme-secuaware/internal/domain"
)

// Compile-time interface assertions.
var (
	_ AccountRepository    = (*PostgresAccountRepo)(nil)
	_ AssessmentRepository = (*PostgresAssessmentRepo)(nil)
	_ ThreatRepository     = (*PostgresThreatRepo)(nil)
	_ EducationRepository  = (*PostgresEducationRepo)(nil)
)

// PostgresAccountRepo implements AccountRepository on pgx.
type PostgresAccountRepo struct {
	db *pgxpool.Pool
}

func NewPostgresAccountRepo(pool *pgxpool.Pool) *PostgresAccountRepo {
	return &PostgresAccountRepo{db: pool}
}

const accountColumns = `id, email, password_hash, company_name, company_size, industry, role, security_score, last_assessment_at, is_active, created_at, updated_at`

func scanAccount(row pgx.Row) (domain.Account, error) {
	var a domain.Account
	err := row.Scan(
		&a.ID,
		&a.Email,
		&a.PasswordHash,
		&a.CompanyName,
		&a.CompanySize,
		&a.Industry,
		&a.Role,
		&a.SecurityScore,
		&a.LastAssessmentAt,
		&a.IsActive,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

func (r *PostgresAccountRepo) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE lower(email) = lower($1)`,
		strings.TrimSpace(email),
	)
	account, err := scanAccount(row)
	if err != nil {
		return domain.Account{}, fmt.Errorf("get account by email: %w", err)
	}
	return account, nil
}

func (r *PostgresAccountRepo) GetByID(ctx context.Context, accountID int64) (domain.Account, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = $1`,
		accountID,
	)
	account, err := scanAccount(row)
	if err != nil {
		return domain.Account{}, fmt.Errorf("get account by id: %w", err)
	}
	return account, nil
}

func (r *PostgresAccountRepo) Create(ctx context.Context, account domain.Account) (domain.Account, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO accounts (id, email, password_hash, company_name, company_size, industry, role, security_score, is_active)
		VALUES ($1, lower($2), $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+accountColumns,
		account.ID,
		account.Email,
		account.PasswordHash,
		account.CompanyName,
		account.CompanySize,
		account.Industry,
		account.Role,
		account.SecurityScore,
		account.IsActive,
	)
	created, err := scanAccount(row)
	if err != nil {
		return domain.Account{}, fmt.Errorf("create account: %w", err)
	}
	return created, nil
}

// PostgresAssessmentRepo implements AssessmentRepository on pgx.
type PostgresAssessmentRepo struct {
	db *pgxpool.Pool
}

func NewPostgresAssessmentRepo(pool *pgxpool.Pool) *PostgresAssessmentRepo {
	return &PostgresAssessmentRepo{db: pool}
}

// CreateWithScoreSync wraps the assessment insert and the account score
// update in one transaction. The account update is guarded on completion
// time so concurrent submissions resolve last-writer-wins.
func (r *PostgresAssessmentRepo) CreateWithScoreSync(ctx context.Context, assessment domain.Assessment) (domain.Assessment, error) {
	responses, err := json.Marshal(assessment.Responses)
	if err != nil {
		return domain.Assessment{}, fmt.Errorf("encode responses: %w", err)
	}
	recommendations, err := json.Marshal(assessment.Recommendations)
	if err != nil {
		return domain.Assessment{}, fmt.Errorf("encode recommendations: %w", err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.Assessment{}, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO assessments (id, account_id, responses, score, risk_level, recommendations, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING completed_at`,
		assessment.ID,
		assessment.AccountID,
		responses,
		assessment.Score,
		assessment.RiskLevel,
		recommendations,
		assessment.CompletedAt,
	).Scan(&assessment.CompletedAt)
	if err != nil {
		return domain.Assessment{}, fmt.Errorf("insert assessment: %w", err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE accounts
		SET security_score = $2, last_assessment_at = $3, updated_at = now()
		WHERE id = $1 AND (last_assessment_at IS NULL OR last_assessment_at <= $3)`,
		assessment.AccountID,
		assessment.Score,
		assessment.CompletedAt,
	)
	if err != nil {
		return domain.Assessment{}, fmt.Errorf("sync account score: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Assessment{}, fmt.Errorf("commit: %w", err)
	}
	return assessment, nil
}

func (r *PostgresAssessmentRepo) LatestByAccount(ctx context.Context, accountID int64, limit int) ([]domain.Assessment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, account_id, responses, score, risk_level, recommendations, completed_at
		FROM assessments
		WHERE account_id = $1
		ORDER BY completed_at DESC
		LIMIT $2`,
		accountID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	defer rows.Close()

	assessments := make([]domain.Assessment, 0, limit)
	for rows.Next() {
		var a domain.Assessment
		var responses, recommendations []byte
		if err := rows.Scan(&a.ID, &a.AccountID, &responses, &a.Score, &a.RiskLevel, &recommendations, &a.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan assessment: %w", err)
		}
		if err := json.Unmarshal(responses, &a.Responses); err != nil {
			return nil, fmt.Errorf("decode responses: %w", err)
		}
		if len(recommendations) > 0 {
			if err := json.Unmarshal(recommendations, &a.Recommendations); err != nil {
				return nil, fmt.Errorf("decode recommendations: %w", err)
			}
		}
		assessments = append(assessments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	return assessments, nil
}

// PostgresThreatRepo implements ThreatRepository on pgx.
type PostgresThreatRepo struct {
	db *pgxpool.Pool
}

func NewPostgresThreatRepo(pool *pgxpool.Pool) *PostgresThreatRepo {
	return &PostgresThreatRepo{db: pool}
}

const threatColumns = `id, title, description, severity, category, affected_industries, recommendations, is_active, expires_at, source, created_at, updated_at`

func scanThreat(row pgx.Row) (domain.ThreatAlert, error) {
	var t domain.ThreatAlert
	err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.Severity,
		&t.Category,
		&t.AffectedIndustries,
		&t.Recommendations,
		&t.IsActive,
		&t.ExpiresAt,
		&t.Source,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	return t, err
}

// ListForIndustry mirrors domain.ThreatAlert.AppliesTo and Live in SQL:
// active, non-expired alerts whose industries contain the caller's industry,
// the literal "all", or are empty.
func (r *PostgresThreatRepo) ListForIndustry(ctx context.Context, industry string, now time.Time, limit int) ([]domain.ThreatAlert, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+threatColumns+`
		FROM threat_alerts
		WHERE is_active
		  AND (expires_at IS NULL OR expires_at > $2)
		  AND (cardinality(affected_industries) = 0 OR affected_industries && ARRAY[$1, 'all']::text[])
		ORDER BY
		  CASE severity
		    WHEN 'critical' THEN 4
		    WHEN 'high' THEN 3
		    WHEN 'medium' THEN 2
		    ELSE 1
		  END DESC,
		  created_at DESC
		LIMIT $3`,
		industry, now, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list threats: %w", err)
	}
	defer rows.Close()

	alerts := make([]domain.ThreatAlert, 0, limit)
	for rows.Next() {
		alert, err := scanThreat(rows)
		if err != nil {
			return nil, fmt.Errorf("scan threat: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list threats: %w", err)
	}
	return alerts, nil
}

func (r *PostgresThreatRepo) Create(ctx context.Context, alert domain.ThreatAlert) (domain.ThreatAlert, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO threat_alerts (id, title, description, severity, category, affected_industries, recommendations, is_active, expires_at, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+threatColumns,
		alert.ID,
		alert.Title,
		alert.Description,
		alert.Severity,
		alert.Category,
		alert.AffectedIndustries,
		alert.Recommendations,
		alert.IsActive,
		alert.ExpiresAt,
		alert.Source,
	)
	created, err := scanThreat(row)
	if err != nil {
		return domain.ThreatAlert{}, fmt.Errorf("create threat: %w", err)
	}
	return created, nil
}

func (r *PostgresThreatRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM threat_alerts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count threats: %w", err)
	}
	return count, nil
}

// PostgresEducationRepo implements EducationRepository on pgx.
type PostgresEducationRepo struct {
	db *pgxpool.Pool
}

func NewPostgresEducationRepo(pool *pgxpool.Pool) *PostgresEducationRepo {
	return &PostgresEducationRepo{db: pool}
}

const articleColumns = `id, title, content, summary, category, difficulty, estimated_read_time, tags, is_published, author, created_at, updated_at`

func scanArticle(row pgx.Row) (domain.EducationArticle, error) {
	var a domain.EducationArticle
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Content,
		&a.Summary,
		&a.Category,
		&a.Difficulty,
		&a.EstimatedReadTime,
		&a.Tags,
		&a.IsPublished,
		&a.Author,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

func (r *PostgresEducationRepo) List(ctx context.Context, filter ArticleFilter) ([]domain.EducationArticle, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM education_articles
		WHERE is_published`
	args := []any{}
	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if filter.Difficulty != "" {
		args = append(args, filter.Difficulty)
		query += fmt.Sprintf(" AND difficulty = $%d", len(args))
	}
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	articles := make([]domain.EducationArticle, 0, filter.Limit)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

func (r *PostgresEducationRepo) GetByID(ctx context.Context, articleID int64) (domain.EducationArticle, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+articleColumns+` FROM education_articles WHERE id = $1 AND is_published`,
		articleID,
	)
	article, err := scanArticle(row)
	if err != nil {
		return domain.EducationArticle{}, fmt.Errorf("get article: %w", err)
	}
	return article, nil
}

func (r *PostgresEducationRepo) Create(ctx context.Context, article domain.EducationArticle) (domain.EducationArticle, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO education_articles (id, title, content, summary, category, difficulty, estimated_read_time, tags, is_published, author)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+articleColumns,
		article.ID,
		article.Title,
		article.Content,
		article.Summary,
		article.Category,
		article.Difficulty,
		article.EstimatedReadTime,
		article.Tags,
		article.IsPublished,
		article.Author,
	)
	created, err := scanArticle(row)
	if err != nil {
		return domain.EducationArticle{}, fmt.Errorf("create article: %w", err)
	}
	return created, nil
}

func (r *PostgresEducationRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM education_articles`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return count, nil
}
