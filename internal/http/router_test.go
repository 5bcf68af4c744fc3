package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/TheODDYSEY/sme-secuaware/internal/config"
	"github.com/TheODDYSEY/sme-secuaware/internal/domain"
	httptransport "github.com/TheODDYSEY/sme-secuaware/internal/http"
	"github.com/TheODDYSEY/sme-secuaware/internal/http/handler"
	httpmiddleware "github.com/TheODDYSEY/sme-secuaware/internal/http/middleware"
	apimiddleware "github.com/TheODDYSEY/sme-secuaware/internal/middleware"
	"github.com/TheODDYSEY/sme-secuaware/internal/repository"
	"github.com/TheODDYSEY/sme-secuaware/internal/service"
	"github.com/TheODDYSEY/sme-secuaware/internal/token"
)

type testEnv struct {
	router   *gin.Engine
	accounts *fakeAccountRepo
	threats  *fakeThreatRepo
	articles *fakeArticleRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	distDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(distDir, "index.html"), []byte("<!doctype html><title>SecuAware</title>"), 0o644))

	cfg := config.Config{
		Environment: "test",
		TokenSecret: "0123456789abcdef0123456789abcdef",
		TokenTTL:    time.Hour,
		UIDistDir:   distDir,
	}

	node, err := snowflake.NewNode(9)
	require.NoError(t, err)
	logger := zap.NewNop()
	tokens := token.NewService([]byte(cfg.TokenSecret), cfg.TokenTTL)

	accounts := &fakeAccountRepo{byID: map[int64]domain.Account{}}
	assessments := &fakeAssessmentRepo{}
	threats := &fakeThreatRepo{}
	articles := &fakeArticleRepo{}

	authSvc := service.NewAuthService(accounts, node, tokens, logger)
	assessSvc := service.NewAssessmentService(assessments, node, logger)
	threatSvc := service.NewThreatService(threats, accounts, node, logger)
	eduSvc := service.NewEducationService(articles, &fakeViewCounter{}, logger)

	router := httptransport.NewRouter(
		cfg,
		handler.NewAuthHandler(authSvc, cfg),
		handler.NewAssessmentHandler(assessSvc),
		handler.NewThreatHandler(threatSvc),
		handler.NewEducationHandler(eduSvc),
		&httpmiddleware.Auth{AuthService: authSvc},
		httpmiddleware.NewGateway(),
		apimiddleware.NewRateLimiter(0),
	)

	return &testEnv{router: router, accounts: accounts, threats: threats, articles: articles}
}

func (e *testEnv) do(t *testing.T, method, path, tokenValue string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if tokenValue != "" {
		req.Header.Set("Authorization", "Bearer "+tokenValue)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) register(t *testing.T) (string, int64) {
	t.Helper()
	w := e.do(t, http.MethodPost, "/auth/register", "", gin.H{
		"email":       "owner@duka.co.ke",
		"password":    "s3cret!",
		"companyName": "Duka Traders",
		"companySize": "11-50",
		"industry":    "retail",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Message string `json:"message"`
		Token   string `json:"token"`
		User    struct {
			ID int64 `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Registration successful", resp.Message)
	require.NotEmpty(t, resp.Token)
	return resp.Token, resp.User.ID
}

func TestRegisterSetsCookieAndLoginWorks(t *testing.T) {
	env := newTestEnv(t)
	_, _ = env.register(t)

	w := env.do(t, http.MethodPost, "/auth/register", "", gin.H{
		"email":       "owner@duka.co.ke",
		"password":    "s3cret!",
		"companyName": "Duka Traders",
		"companySize": "11-50",
		"industry":    "retail",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "User already exists")

	w = env.do(t, http.MethodPost, "/auth/login", "", gin.H{"email": "owner@duka.co.ke", "password": "s3cret!"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Login successful")

	var tokenCookie *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == httpmiddleware.TokenCookieName {
			tokenCookie = cookie
		}
	}
	require.NotNil(t, tokenCookie)
	require.True(t, tokenCookie.HttpOnly)
	require.NotEmpty(t, tokenCookie.Value)

	w = env.do(t, http.MethodPost, "/auth/login", "", gin.H{"email": "owner@duka.co.ke", "password": "nope"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestLoginRepositoryOutageReturnsInternalError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	node, err := snowflake.NewNode(9)
	require.NoError(t, err)
	tokens := token.NewService([]byte("0123456789abcdef0123456789abcdef"), time.Hour)
	authSvc := service.NewAuthService(&downAccountRepo{}, node, tokens, zap.NewNop())
	authHandler := handler.NewAuthHandler(authSvc, config.Config{})

	body, err := json.Marshal(gin.H{"email": "owner@duka.co.ke", "password": "s3cret!"})
	require.NoError(t, err)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	authHandler.Login(c)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "Internal server error")
	require.NotContains(t, w.Body.String(), "Invalid credentials")
}

type downAccountRepo struct{}

func (d *downAccountRepo) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	return domain.Account{}, errors.New("connection refused")
}

func (d *downAccountRepo) GetByID(ctx context.Context, accountID int64) (domain.Account, error) {
	return domain.Account{}, errors.New("connection refused")
}

func (d *downAccountRepo) Create(ctx context.Context, account domain.Account) (domain.Account, error) {
	return domain.Account{}, errors.New("connection refused")
}

func TestProtectedEndpointsRequireToken(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/assessment", "/threats", "/education", "/auth/me"} {
		w := env.do(t, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code, path)
		require.Contains(t, w.Body.String(), "Unauthorized")
	}

	w := env.do(t, http.MethodGet, "/assessment", "not.a.token", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "Invalid token")
}

func TestAssessmentSubmitAndHistory(t *testing.T) {
	env := newTestEnv(t)
	tokenValue, _ := env.register(t)

	responses := gin.H{
		"passwordPolicy":   1,
		"dataBackup":       2,
		"employeeTraining": 4,
		"softwareUpdates":  4,
		"networkSecurity":  4,
		"incidentResponse": 4,
		"accessControl":    4,
	}

	w := env.do(t, http.MethodPost, "/assessment", tokenValue, gin.H{"responses": responses})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Message    string `json:"message"`
		Assessment struct {
			Score           int               `json:"score"`
			RiskLevel       string            `json:"riskLevel"`
			Recommendations []json.RawMessage `json:"recommendations"`
		} `json:"assessment"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Assessment completed successfully", resp.Message)
	require.Greater(t, resp.Assessment.Score, 0)
	require.Len(t, resp.Assessment.Recommendations, 2)

	w = env.do(t, http.MethodPost, "/assessment", tokenValue, gin.H{"responses": gin.H{"passwordPolicy": 3}})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Complete assessment responses required")

	w = env.do(t, http.MethodGet, "/assessment", tokenValue, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var history struct {
		Assessments []json.RawMessage `json:"assessments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	require.Len(t, history.Assessments, 1)
}

func TestThreatListAndAdminCreate(t *testing.T) {
	env := newTestEnv(t)
	tokenValue, _ := env.register(t)
	env.threats.alerts = []domain.ThreatAlert{
		{ID: 1, Title: "Retail phishing wave", Severity: domain.SeverityHigh, AffectedIndustries: []string{"retail"}, IsActive: true},
		{ID: 2, Title: "Factory malware", Severity: domain.SeverityHigh, AffectedIndustries: []string{"manufacturing"}, IsActive: true},
	}

	w := env.do(t, http.MethodGet, "/threats", tokenValue, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Retail phishing wave")
	require.NotContains(t, w.Body.String(), "Factory malware")

	// Owners cannot publish alerts.
	w = env.do(t, http.MethodPost, "/threats", tokenValue, gin.H{
		"title":       "New scam",
		"description": "desc",
		"severity":    "high",
		"category":    "phishing",
	})
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Contains(t, w.Body.String(), "Admin role required")
}

func TestEducationListAndRead(t *testing.T) {
	env := newTestEnv(t)
	tokenValue, _ := env.register(t)
	env.articles.articles = []domain.EducationArticle{
		{ID: 11, Title: "Backups 101", Summary: "s", Content: "full body", Category: "backup", Difficulty: "beginner", IsPublished: true, Author: domain.DefaultArticleAuthor},
	}

	w := env.do(t, http.MethodGet, "/education?category=backup", tokenValue, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Backups 101")
	require.NotContains(t, w.Body.String(), "full body")

	w = env.do(t, http.MethodGet, "/education/11", tokenValue, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "full body")

	w = env.do(t, http.MethodGet, "/education/999", tokenValue, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "Article not found")

	w = env.do(t, http.MethodGet, "/education/abc", tokenValue, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodGet, "/education?category=gossip", tokenValue, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Invalid category")
}

func TestMethodNotAllowedAndUnknownAPIPath(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodDelete, "/auth/login", "", nil)
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	require.Contains(t, w.Body.String(), "Method not allowed")

	w = env.do(t, http.MethodGet, "/auth/unknown", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "Not found")
}

func TestPageGatewayRedirectsAnonymousVisitors(t *testing.T) {
	env := newTestEnv(t)

	// Public pages render without a cookie.
	w := env.do(t, http.MethodGet, "/login", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "SecuAware")

	// Protected pages redirect without one.
	w = env.do(t, http.MethodGet, "/dashboard", "", nil)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/login", w.Header().Get("Location"))

	// A malformed cookie is deleted on the way out.
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: httpmiddleware.TokenCookieName, Value: "garbage"})
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/login", rec.Header().Get("Location"))
	deleted := false
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == httpmiddleware.TokenCookieName && cookie.MaxAge < 0 {
			deleted = true
		}
	}
	require.True(t, deleted)

	// A structurally plausible cookie renders the page; only the API
	// verifies the signature.
	req = httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: httpmiddleware.TokenCookieName, Value: "aaa.bbb.ccc"})
	rec = httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

type fakeAccountRepo struct {
	byID map[int64]domain.Account
}

func (f *fakeAccountRepo) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	for _, account := range f.byID {
		if account.Email == email {
			return account, nil
		}
	}
	return domain.Account{}, pgx.ErrNoRows
}

func (f *fakeAccountRepo) GetByID(ctx context.Context, accountID int64) (domain.Account, error) {
	account, ok := f.byID[accountID]
	if !ok {
		return domain.Account{}, pgx.ErrNoRows
	}
	return account, nil
}

func (f *fakeAccountRepo) Create(ctx context.Context, account domain.Account) (domain.Account, error) {
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt
	f.byID[account.ID] = account
	return account, nil
}

type fakeAssessmentRepo struct {
	created []domain.Assessment
}

func (f *fakeAssessmentRepo) CreateWithScoreSync(ctx context.Context, assessment domain.Assessment) (domain.Assessment, error) {
	f.created = append(f.created, assessment)
	return assessment, nil
}

func (f *fakeAssessmentRepo) LatestByAccount(ctx context.Context, accountID int64, limit int) ([]domain.Assessment, error) {
	matched := make([]domain.Assessment, 0, limit)
	for _, assessment := range f.created {
		if assessment.AccountID == accountID {
			matched = append(matched, assessment)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CompletedAt.After(matched[j].CompletedAt)
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

type fakeThreatRepo struct {
	alerts []domain.ThreatAlert
}

func (f *fakeThreatRepo) ListForIndustry(ctx context.Context, industry string, now time.Time, limit int) ([]domain.ThreatAlert, error) {
	matched := make([]domain.ThreatAlert, 0, limit)
	for _, alert := range f.alerts {
		if alert.Live(now) && alert.AppliesTo(industry) {
			matched = append(matched, alert)
		}
	}
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (f *fakeThreatRepo) Create(ctx context.Context, alert domain.ThreatAlert) (domain.ThreatAlert, error) {
	f.alerts = append(f.alerts, alert)
	return alert, nil
}

func (f *fakeThreatRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.alerts)), nil
}

type fakeArticleRepo struct {
	articles []domain.EducationArticle
}

func (f *fakeArticleRepo) List(ctx context.Context, filter repository.ArticleFilter) ([]domain.EducationArticle, error) {
	matched := make([]domain.EducationArticle, 0, len(f.articles))
	for _, article := range f.articles {
		if !article.IsPublished {
			continue
		}
		if filter.Category != "" && article.Category != filter.Category {
			continue
		}
		if filter.Difficulty != "" && article.Difficulty != filter.Difficulty {
			continue
		}
		matched = append(matched, article)
	}
	return matched, nil
}

func (f *fakeArticleRepo) GetByID(ctx context.Context, articleID int64) (domain.EducationArticle, error) {
	for _, article := range f.articles {
		if article.ID == articleID && article.IsPublished {
			return article, nil
		}
	}
	return domain.EducationArticle{}, pgx.ErrNoRows
}

func (f *fakeArticleRepo) Create(ctx context.Context, article domain.EducationArticle) (domain.EducationArticle, error) {
	f.articles = append(f.articles, article)
	return article, nil
}

func (f *fakeArticleRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.articles)), nil
}

type fakeViewCounter struct {
	counts map[int64]int64
}

func (f *fakeViewCounter) Increment(ctx context.Context, articleID int64) (int64, error) {
	if f.counts == nil {
		f.counts = make(map[int64]int64)
	}
	f.counts[articleID]++
	return f.counts[articleID], nil
}

func (f *fakeViewCounter) Get(ctx context.Context, articleID int64) (int64, error) {
	return f.counts[articleID], nil
}
