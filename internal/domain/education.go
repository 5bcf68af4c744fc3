package domain

import "time"

// Article difficulties.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// DefaultArticleAuthor labels seeded and system-authored content.
const DefaultArticleAuthor = "SME SecuAware Team"

var articleCategories = map[string]struct{}{
	"basics":            {},
	"phishing":          {},
	"passwords":         {},
	"malware":           {},
	"backup":            {},
	"compliance":        {},
	"incident-response": {},
}

// ValidArticleCategory reports whether the category is a supported enum.
func ValidArticleCategory(category string) bool {
	_, ok := articleCategories[category]
	return ok
}

// ValidDifficulty reports whether the difficulty is a supported enum.
func ValidDifficulty(difficulty string) bool {
	switch difficulty {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// EducationArticle is a published learning resource. List endpoints project
// summaries only; the body is returned by the single-article read.
type EducationArticle struct {
	ID                int64
	Title             string
	Content           string
	Summary           string
	Category          string
	Difficulty        string
	EstimatedReadTime int
	Tags              []string
	IsPublished       bool
	Author            string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
