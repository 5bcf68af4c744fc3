package domain

import "time"

// Risk tiers derived from the assessment score.
const (
	RiskLow      = "low"
	RiskMedium   = "medium"
	RiskHigh     = "high"
	RiskCritical = "critical"
)

// Recommendation priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Responses maps questionnaire keys to their 1-5 answers.
type Responses map[string]int

// Recommendation is a generated remediation item attached to an assessment.
// Recommendations are never edited independently.
type Recommendation struct {
	Category    string   `json:"category"`
	Priority    string   `json:"priority"`
	Description string   `json:"description"`
	ActionItems []string `json:"actionItems"`
}

// Assessment is an immutable record of one completed questionnaire together
// with its computed outputs. Resubmission creates a new record.
type Assessment struct {
	ID              int64
	AccountID       int64
	Responses       Responses
	Score           int
	RiskLevel       string
	Recommendations []Recommendation
	CompletedAt     time.Time
}
