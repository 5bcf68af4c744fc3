package service

import (
	"time"

	"github.com/TheODDYSEY/sme-secuaware/internal/domain"
)

// AccountView represents the account profile data returned to clients.
// The password hash never leaves the service layer.
type AccountView struct {
	ID               int64      `json:"id"`
	Email            string     `json:"email"`
	CompanyName      string     `json:"companyName"`
	CompanySize      string     `json:"companySize,omitempty"`
	Industry         string     `json:"industry,omitempty"`
	Role             string     `json:"role"`
	SecurityScore    int        `json:"securityScore"`
	LastAssessmentAt *time.Time `json:"lastAssessment,omitempty"`
}

// AuthResult bundles a freshly issued token with the account profile.
type AuthResult struct {
	Token string      `json:"token"`
	User  AccountView `json:"user"`
}

func newAccountView(account domain.Account) AccountView {
	return AccountView{
		ID:               account.ID,
		Email:            account.Email,
		CompanyName:      account.CompanyName,
		CompanySize:      account.CompanySize,
		Industry:         account.Industry,
		Role:             account.Role,
		SecurityScore:    account.SecurityScore,
		LastAssessmentAt: account.LastAssessmentAt,
	}
}

// AssessmentView is the client-facing projection of a completed assessment.
type AssessmentView struct {
	ID              int64                   `json:"id"`
	Responses       domain.Responses        `json:"responses"`
	Score           int                     `json:"score"`
	RiskLevel       string                  `json:"riskLevel"`
	Recommendations []domain.Recommendation `json:"recommendations"`
	CompletedAt     time.Time               `json:"completedAt"`
}

func newAssessmentView(assessment domain.Assessment) AssessmentView {
	recommendations := assessment.Recommendations
	if recommendations == nil {
		recommendations = []domain.Recommendation{}
	}
	return AssessmentView{
		ID:              assessment.ID,
		Responses:       assessment.Responses,
		Score:           assessment.Score,
		RiskLevel:       assessment.RiskLevel,
		Recommendations: recommendations,
		CompletedAt:     assessment.CompletedAt,
	}
}

// ThreatView is the client-facing projection of a threat alert.
type ThreatView struct {
	ID                 int64      `json:"id"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	Severity           string     `json:"severity"`
	Category           string     `json:"category"`
	AffectedIndustries []string   `json:"affectedIndustries"`
	Recommendations    []string   `json:"recommendations"`
	ExpiresAt          *time.Time `json:"expiresAt,omitempty"`
	Source             string     `json:"source"`
	CreatedAt          time.Time  `json:"createdAt"`
}

func newThreatView(alert domain.ThreatAlert) ThreatView {
	return ThreatView{
		ID:                 alert.ID,
		Title:              alert.Title,
		Description:        alert.Description,
		Severity:           alert.Severity,
		Category:           alert.Category,
		AffectedIndustries: alert.AffectedIndustries,
		Recommendations:    alert.Recommendations,
		ExpiresAt:          alert.ExpiresAt,
		Source:             alert.Source,
		CreatedAt:          alert.CreatedAt,
	}
}

// ArticleSummary is the list projection of an education article, body
// omitted.
type ArticleSummary struct {
	ID                int64     `json:"id"`
	Title             string    `json:"title"`
	Summary           string    `json:"summary"`
	Category          string    `json:"category"`
	Difficulty        string    `json:"difficulty"`
	EstimatedReadTime int       `json:"estimatedReadTime"`
	Tags              []string  `json:"tags"`
	ViewCount         int64     `json:"viewCount"`
	CreatedAt         time.Time `json:"createdAt"`
}

// ArticleView is the full single-article projection including the body.
type ArticleView struct {
	ArticleSummary
	Content string `json:"content"`
	Author  string `json:"author"`
}

func newArticleSummary(article domain.EducationArticle) ArticleSummary {
	return ArticleSummary{
		ID:                article.ID,
		Title:             article.Title,
		Summary:           article.Summary,
		Category:          article.Category,
		Difficulty:        article.Difficulty,
		EstimatedReadTime: article.EstimatedReadTime,
		Tags:              article.Tags,
		CreatedAt:         article.CreatedAt,
	}
}
