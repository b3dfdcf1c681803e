package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/suraksha-labs/occupancy-engine/pkg/models"
)

func corpusExample(description, occupancy string) models.TrainingExample {
	return models.TrainingExample{
		BusinessDescription: description,
		CorrectOccupancy:    occupancy,
		Reason:              "Historical example from training data",
	}
}

func TestRetrieveExamplesRanksByTermOverlap(t *testing.T) {
	svc := NewRetrievalService([]models.TrainingExample{
		corpusExample("welding and fabrication workshop with heavy machinery", "Welders"),
		corpusExample("commercial laundry and dry cleaning service", "Laundries"),
		corpusExample("fabrication of steel structures and welding repair", "Engineering workshop & fabrication works (up to 9 meters)"),
	}, zap.NewNop())

	results := svc.RetrieveExamples("welding aur fabrication ka kaam", 3)

	require.Len(t, results, 2)
	for _, result := range results {
		assert.Contains(t, result.BusinessDescription, "welding")
	}
}

func TestRetrieveExamplesRespectsMaxExamples(t *testing.T) {
	examples := []models.TrainingExample{
		corpusExample("bakery producing bread and biscuits daily", "Bakeries and biscuit factories"),
		corpusExample("bakery and confectionery with bread ovens", "Bakeries and biscuit factories"),
		corpusExample("industrial bakery making bread at scale", "Bakeries and biscuit factories"),
		corpusExample("small bakery shop selling fresh bread", "Bakeries and biscuit factories"),
	}
	svc := NewRetrievalService(examples, zap.NewNop())

	results := svc.RetrieveExamples("bakery making bread and biscuits", 3)
	assert.Len(t, results, 3)
}

func TestRetrieveExamplesEnforcesRelevanceFloor(t *testing.T) {
	// The only shared term is too short to survive tokenization, so the
	// example can never reach the floor of max(3, 0.1*len(query)).
	svc := NewRetrievalService([]models.TrainingExample{
		corpusExample("we do manufacturing of precision tools", "Tools & machine tools mfg"),
	}, zap.NewNop())

	results := svc.RetrieveExamples("it shop selling computers", 3)
	assert.Empty(t, results)
}

func TestRetrieveExamplesFloorScalesWithQueryLength(t *testing.T) {
	// A single 4-letter term match scores 4. A long query raises the
	// floor above that, so the same example drops out.
	example := corpusExample("milk collection and dairy processing", "Dairies")
	svc := NewRetrievalService([]models.TrainingExample{example}, zap.NewNop())

	short := svc.RetrieveExamples("milk vendor", 3)
	require.Len(t, short, 1)

	long := svc.RetrieveExamples("milk vendor"+strings.Repeat(" unrelatedactivityzz", 3), 3)
	assert.Empty(t, long)
}

func TestRetrieveExamplesAnnotatesReason(t *testing.T) {
	svc := NewRetrievalService([]models.TrainingExample{
		corpusExample("welding workshop for gates and grills", "Welders"),
	}, zap.NewNop())

	results := svc.RetrieveExamples("welding of iron gates", 3)
	require.Len(t, results, 1)
	assert.True(t, strings.HasSuffix(results[0].Reason, "(Similarity guidance - adapt logic, don't copy)"))
}

func TestExtractKeyTermsFiltersNoise(t *testing.T) {
	terms := extractKeyTerms("hum plastic ka kaam karte hain 24 7 with the company")

	assert.Contains(t, terms, "plastic")
	assert.NotContains(t, terms, "ka")
	assert.NotContains(t, terms, "kaam")
	assert.NotContains(t, terms, "the")
	assert.NotContains(t, terms, "24")
	assert.NotContains(t, terms, "7")
}

func TestExtractKeyTermsCapsAtTen(t *testing.T) {
	terms := extractKeyTerms("alpha bravo charlie delta echo foxtrot golf hotel india juliet kilo lima")
	assert.Len(t, terms, maxQueryTerms)
}
