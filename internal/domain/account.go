package domain

import "time"

// Account roles. Registration always creates an owner; admin accounts are
// provisioned through bootstrap.
const (
	RoleOwner    = "owner"
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

// InitialSecurityScore is assigned at registration, before any assessment.
const InitialSecurityScore = 25

// Account represents a registered SME and its primary user.
type Account struct {
	ID               int64
	Email            string
	PasswordHash     string
	CompanyName      string
	CompanySize      string
	Industry         string
	Role             string
	SecurityScore    int
	LastAssessmentAt *time.Time
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

var companySizes = map[string]struct{}{
	"1-10":    {},
	"11-50":   {},
	"51-200":  {},
	"201-500": {},
}

var industries = map[string]struct{}{
	"retail":        {},
	"manufacturing": {},
	"agriculture":   {},
	"services":      {},
	"technology":    {},
	"other":         {},
}

// ValidCompanySize reports whether the size bracket is one of the supported enums.
func ValidCompanySize(size string) bool {
	_, ok := companySizes[size]
	return ok
}

// ValidIndustry reports whether the industry is one of the supported enums.
func ValidIndustry(industry string) bool {
	_, ok := industries[industry]
	return ok
}
