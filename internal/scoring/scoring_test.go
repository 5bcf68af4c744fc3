package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TheODDYSEY/sme-secuaware/internal/domain"
	"github.com/TheODDYSEY/sme-secuaware/internal/scoring"
)

func fullResponses(value int) domain.Responses {
	return domain.Responses{
		"passwordPolicy":   value,
		"dataBackup":       value,
		"employeeTraining": value,
		"softwareUpdates":  value,
		"networkSecurity":  value,
		"incidentResponse": value,
		"accessControl":    value,
	}
}

func TestEvaluateUniformAnswers(t *testing.T) {
	result, err := scoring.Evaluate(fullResponses(1))
	require.NoError(t, err)
	require.Equal(t, 20, result.Score)
	require.Equal(t, domain.RiskCritical, result.RiskLevel)

	result, err = scoring.Evaluate(fullResponses(5))
	require.NoError(t, err)
	require.Equal(t, 100, result.Score)
	require.Equal(t, domain.RiskLow, result.RiskLevel)
	require.Empty(t, result.Recommendations)
}

func TestEvaluateDeterministic(t *testing.T) {
	responses := domain.Responses{
		"passwordPolicy":   3,
		"dataBackup":       4,
		"employeeTraining": 2,
		"softwareUpdates":  5,
		"networkSecurity":  1,
		"incidentResponse": 4,
		"accessControl":    3,
	}

	first, err := scoring.Evaluate(responses)
	require.NoError(t, err)
	require.GreaterOrEqual(t, first.Score, 0)
	require.LessOrEqual(t, first.Score, 100)

	second, err := scoring.Evaluate(responses)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEvaluateRejectsIncomplete(t *testing.T) {
	responses := fullResponses(3)
	delete(responses, "accessControl")

	_, err := scoring.Evaluate(responses)
	require.ErrorIs(t, err, scoring.ErrIncompleteResponses)
}

func TestEvaluateUnweightedKeysDoNotCountTowardCompleteness(t *testing.T) {
	responses := fullResponses(3)
	delete(responses, "networkSecurity")
	responses["dataEncryption"] = 5

	_, err := scoring.Evaluate(responses)
	require.ErrorIs(t, err, scoring.ErrIncompleteResponses)
}

func TestEvaluateRejectsOutOfRange(t *testing.T) {
	responses := fullResponses(3)
	responses["dataBackup"] = 6

	_, err := scoring.Evaluate(responses)
	require.Error(t, err)

	responses["dataBackup"] = 0
	_, err = scoring.Evaluate(responses)
	require.Error(t, err)
}

func TestRiskLevelBoundaries(t *testing.T) {
	cases := map[int]string{
		100: domain.RiskLow,
		80:  domain.RiskLow,
		79:  domain.RiskMedium,
		60:  domain.RiskMedium,
		59:  domain.RiskHigh,
		40:  domain.RiskHigh,
		39:  domain.RiskCritical,
		0:   domain.RiskCritical,
	}
	for score, want := range cases {
		require.Equal(t, want, scoring.RiskLevel(score), "score %d", score)
	}
}

func TestWeakPasswordPolicyAlwaysRecommended(t *testing.T) {
	responses := fullResponses(5)
	responses["passwordPolicy"] = 1

	result, err := scoring.Evaluate(responses)
	require.NoError(t, err)
	require.Len(t, result.Recommendations, 1)
	require.Equal(t, "Password Security", result.Recommendations[0].Category)
	require.Equal(t, domain.PriorityHigh, result.Recommendations[0].Priority)
}

func TestMultipleWeakAnswersStackInDeclarationOrder(t *testing.T) {
	responses := fullResponses(4)
	responses["employeeTraining"] = 2
	responses["dataBackup"] = 1
	responses["passwordPolicy"] = 2

	result, err := scoring.Evaluate(responses)
	require.NoError(t, err)
	require.Len(t, result.Recommendations, 3)
	require.Equal(t, "Password Security", result.Recommendations[0].Category)
	require.Equal(t, "Data Protection", result.Recommendations[1].Category)
	require.Equal(t, "Staff Training", result.Recommendations[2].Category)
}

func TestWeakUnruledQuestionsProduceNoRecommendation(t *testing.T) {
	responses := fullResponses(5)
	responses["softwareUpdates"] = 1
	responses["networkSecurity"] = 1
	responses["incidentResponse"] = 1
	responses["accessControl"] = 1

	result, err := scoring.Evaluate(responses)
	require.NoError(t, err)
	require.Empty(t, result.Recommendations)
}
