package domain

import "time"

// Threat severities reuse the risk tier labels.
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// IndustryAll marks an alert as universally applicable.
const IndustryAll = "all"

// DefaultThreatSource labels alerts created without an explicit source.
const DefaultThreatSource = "SME SecuAware System"

var threatCategories = map[string]struct{}{
	"phishing":           {},
	"malware":            {},
	"ransomware":         {},
	"data-breach":        {},
	"social-engineering": {},
	"other":              {},
}

// ValidThreatCategory reports whether the category is a supported enum.
func ValidThreatCategory(category string) bool {
	_, ok := threatCategories[category]
	return ok
}

// ValidSeverity reports whether the severity is a supported enum.
func ValidSeverity(severity string) bool {
	switch severity {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// SeverityRank orders severities for sorting, highest first.
func SeverityRank(severity string) int {
	switch severity {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	}
	return 0
}

// ThreatAlert is a published advisory scoped to one or more industries.
type ThreatAlert struct {
	ID                 int64
	Title              string
	Description        string
	Severity           string
	Category           string
	AffectedIndustries []string
	Recommendations    []string
	IsActive           bool
	ExpiresAt          *time.Time
	Source             string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// AppliesTo reports whether the alert targets the given industry. An empty
// industries list or the literal "all" means universally applicable.
func (t ThreatAlert) AppliesTo(industry string) bool {
	if len(t.AffectedIndustries) == 0 {
		return true
	}
	for _, candidate := range t.AffectedIndustries {
		if candidate == IndustryAll || candidate == industry {
			return true
		}
	}
	return false
}

// Live reports whether the alert is active and not expired at the given time.
func (t ThreatAlert) Live(now time.Time) bool {
	if !t.IsActive {
		return false
	}
	if t.ExpiresAt != nil && !t.ExpiresAt.After(now) {
		return false
	}
	return true
}
