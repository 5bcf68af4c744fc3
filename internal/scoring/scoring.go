// Package scoring computes security assessment scores, risk tiers, and
// remediation recommendations from questionnaire responses.
package scoring

import (
	"errors"
	"fmt"
	"math"

	"github.com/TheODDYSEY/sme-secuaware/internal/domain"
)

// QuestionCount is the number of weighted questionnaire keys a complete
// submission must answer.
const QuestionCount = 7

// ErrIncompleteResponses rejects submissions answering fewer than all seven
// weighted questions. Partial submissions would silently skew the weighting
// basis, so they are never scored.
var ErrIncompleteResponses = errors.New("scoring: incomplete assessment responses")

type question struct {
	key    string
	weight int
}

// Weights sum to 100. Declaration order drives recommendation order.
var questions = []question{
	{"passwordPolicy", 15},
	{"dataBackup", 20},
	{"employeeTraining", 15},
	{"softwareUpdates", 15},
	{"networkSecurity", 15},
	{"incidentResponse", 10},
	{"accessControl", 10},
}

// weakAnswerCeiling: answers at or below this trigger a recommendation for
// the keys that have one.
const weakAnswerCeiling = 2

// Result bundles the computed outputs for one questionnaire.
type Result struct {
	Score           int
	RiskLevel       string
	Recommendations []domain.Recommendation
}

// Evaluate scores a completed questionnaire. It is deterministic and has no
// side effects; persisting the outcome is the caller's responsibility.
//
// Unweighted keys (such as the stored-but-unscored dataEncryption field) are
// carried through untouched and never count toward completeness.
func Evaluate(responses domain.Responses) (Result, error) {
	if err := validate(responses); err != nil {
		return Result{}, err
	}

	var total float64
	var max int
	for _, q := range questions {
		value, ok := responses[q.key]
		if !ok {
			continue
		}
		total += float64(value*q.weight) / 5
		max += q.weight
	}

	score := int(math.Round(total / float64(max) * 100))

	return Result{
		Score:           score,
		RiskLevel:       RiskLevel(score),
		Recommendations: recommend(responses),
	}, nil
}

// RiskLevel maps a 0-100 score to its tier. Boundaries are inclusive on the
// lower bound of each tier.
func RiskLevel(score int) string {
	switch {
	case score >= 80:
		return domain.RiskLow
	case score >= 60:
		return domain.RiskMedium
	case score >= 40:
		return domain.RiskHigh
	default:
		return domain.RiskCritical
	}
}

func validate(responses domain.Responses) error {
	answered := 0
	for _, q := range questions {
		value, ok := responses[q.key]
		if !ok {
			continue
		}
		if value < 1 || value > 5 {
			return fmt.Errorf("scoring: response %q out of range: %d", q.key, value)
		}
		answered++
	}
	if answered < QuestionCount {
		return ErrIncompleteResponses
	}
	return nil
}

// recommend applies the fixed per-question rule set. Only passwordPolicy,
// dataBackup, and employeeTraining carry remediation content; a weak answer
// on any other question produces no recommendation. Output order follows
// question declaration order, not severity.
func recommend(responses domain.Responses) []domain.Recommendation {
	var recs []domain.Recommendation

	if responses["passwordPolicy"] <= weakAnswerCeiling {
		recs = append(recs, domain.Recommendation{
			Category:    "Password Security",
			Priority:    domain.PriorityHigh,
			Description: "Implement strong password policies",
			ActionItems: []string{
				"Require minimum 8-character passwords",
				"Enable multi-factor authentication",
				"Use password managers for employees",
			},
		})
	}

	if responses["dataBackup"] <= weakAnswerCeiling {
		recs = append(recs, domain.Recommendation{
			Category:    "Data Protection",
			Priority:    domain.PriorityHigh,
			Description: "Establish regular data backup procedures",
			ActionItems: []string{
				"Implement automated daily backups",
				"Test backup restoration monthly",
				"Store backups in multiple locations",
			},
		})
	}

	if responses["employeeTraining"] <= weakAnswerCeiling {
		recs = append(recs, domain.Recommendation{
			Category:    "Staff Training",
			Priority:    domain.PriorityMedium,
			Description: "Enhance cybersecurity awareness training",
			ActionItems: []string{
				"Conduct monthly security awareness sessions",
				"Run phishing simulation tests",
				"Create security incident reporting procedures",
			},
		})
	}

	return recs
}
