package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suraksha-labs/occupancy-engine/pkg/models"
)

func TestAssessFlexibilityCleanResult(t *testing.T) {
	svc := NewFlexibilityService()

	report := svc.AssessFlexibility(
		"we operate a commercial laundry with industrial washers",
		[]models.TrainingExample{corpusExample("dry cleaning and laundry service", "Laundries")},
		[]models.Suggestion{{Occupancy: "Laundries", Reason: "The business activity is washing garments commercially"}},
	)

	assert.True(t, report.IsFlexible)
	assert.Empty(t, report.Concerns)
}

func TestAssessFlexibilityDetectsExampleCopying(t *testing.T) {
	svc := NewFlexibilityService()
	example := corpusExample("welding and fabrication workshop in the industrial area", "Welders")

	// Query repeats the example's opening text and the suggestion reuses
	// its exact label.
	report := svc.AssessFlexibility(
		"welding and fabrication workshop near the port",
		[]models.TrainingExample{example},
		[]models.Suggestion{{Occupancy: "Welders", Reason: "The business activity involves welding"}},
	)

	assert.False(t, report.IsFlexible)
	require.NotEmpty(t, report.Concerns)
	assert.Contains(t, report.Concerns[0], "copying")
}

func TestAssessFlexibilityFlagsKeywordOnlyReasoning(t *testing.T) {
	svc := NewFlexibilityService()

	report := svc.AssessFlexibility(
		"plastic bottle production unit",
		nil,
		[]models.Suggestion{{Occupancy: "Plastic goods mfgrs", Reason: "The description matches the keyword plastic"}},
	)

	assert.False(t, report.IsFlexible)
	require.NotEmpty(t, report.Concerns)
	assert.Contains(t, report.Concerns[0], "keyword-focused")
}

func TestAssessFlexibilityRecommendsMoreSuggestionsForComplexQuery(t *testing.T) {
	svc := NewFlexibilityService()

	report := svc.AssessFlexibility(
		"we manufacture furniture and also run a sawmill plus timber trading and transport services",
		nil,
		[]models.Suggestion{{Occupancy: "Furniture mfg", Reason: "Furniture manufacturing is the primary business activity"}},
	)

	// Advisory only: a recommendation without a concern stays flexible.
	assert.True(t, report.IsFlexible)
	require.NotEmpty(t, report.Recommendations)
	assert.Contains(t, report.Recommendations[0], "multiple occupancy suggestions")
}

func TestAssessFlexibilityFlagsNovelTypeStarvation(t *testing.T) {
	svc := NewFlexibilityService()

	report := svc.AssessFlexibility(
		"drone photography surveying startup",
		[]models.TrainingExample{corpusExample("rice milling and grain processing", "Rice millers")},
		nil,
	)

	assert.False(t, report.IsFlexible)
	require.NotEmpty(t, report.Concerns)
	assert.Contains(t, report.Concerns[0], "Novel business type")
}

func TestBuildPromptAdditionsForNovelQuery(t *testing.T) {
	svc := NewFlexibilityService()

	additions := svc.BuildPromptAdditions(
		"esports tournament organizing venture",
		[]models.TrainingExample{corpusExample("rice milling and grain processing", "Rice millers")},
	)

	assert.Contains(t, additions, "NOVEL business type")
	assert.Contains(t, additions, "FLEXIBILITY REMINDERS")
}

func TestBuildPromptAdditionsForKnownQuery(t *testing.T) {
	svc := NewFlexibilityService()

	additions := svc.BuildPromptAdditions(
		"rice milling and grain processing unit",
		[]models.TrainingExample{corpusExample("rice milling and grain processing", "Rice millers")},
	)

	assert.Contains(t, additions, "REASONING GUIDES")
	assert.NotContains(t, additions, "NOVEL business type")
}

func TestKeywordOverlapRatio(t *testing.T) {
	ratio := keywordOverlapRatio(
		"rice milling and grain processing",
		"rice milling plant with grain storage",
	)
	// Intersection {rice, milling, grain}, union has 6 keywords.
	assert.InDelta(t, 3.0/6.0, ratio, 0.001)

	assert.Zero(t, keywordOverlapRatio("welding workshop", "software consultancy"))
}
