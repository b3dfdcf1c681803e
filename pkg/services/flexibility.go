package services

import (
	"strings"

	"github.com/suraksha-labs/occupancy-engine/pkg/models"
)

const (
	// copyDetectionPrefixLen is how much of an example description must
	// appear inside the query before an exact-label match is treated as
	// suspected copying.
	copyDetectionPrefixLen = 20
	// complexQueryTokens marks a query as describing multiple activities.
	complexQueryTokens = 8
	// novelTypeThreshold is the keyword-overlap ratio below which a query
	// counts as a novel business type during assessment.
	novelTypeThreshold = 0.3
	// promptNoveltyThreshold is the lower overlap ratio used when choosing
	// prompt guidance. More queries fall on the "novel" side here so the
	// model gets the creative-reasoning nudge earlier.
	promptNoveltyThreshold = 0.2
)

// flexibilityStopWords is a smaller set than the retrieval one. It keeps
// more function words out of the overlap ratio without starving short
// Hinglish queries of keywords.
var flexibilityStopWords = map[string]struct{}{
	"and": {}, "or": {}, "the": {}, "a": {}, "an": {}, "is": {}, "are": {},
	"was": {}, "were": {}, "have": {}, "has": {}, "had": {}, "do": {},
	"does": {}, "did": {}, "will": {}, "would": {}, "could": {},
	"should": {}, "may": {}, "might": {}, "must": {}, "can": {}, "to": {},
	"of": {}, "in": {}, "on": {}, "at": {}, "by": {}, "for": {},
	"with": {}, "about": {}, "work": {}, "kaam": {}, "hai": {}, "ka": {},
	"ke": {}, "ki": {}, "ko": {}, "mein": {}, "se": {}, "pe": {},
	"par": {}, "aur": {}, "company": {}, "business": {},
}

// FlexibilityReport describes how example-driven a prospective response
// looks. It is advisory only; nothing downstream blocks on it.
type FlexibilityReport struct {
	IsFlexible      bool     `json:"isFlexible"`
	Concerns        []string `json:"concerns"`
	Recommendations []string `json:"recommendations"`
}

// FlexibilityService guards against the model degenerating into copying
// the nearest training example instead of reasoning about the input.
type FlexibilityService interface {
	// AssessFlexibility inspects a query, its retrieved examples and the
	// model's suggestions for signs of rigid pattern matching.
	AssessFlexibility(query string, examples []models.TrainingExample, suggestions []models.Suggestion) FlexibilityReport
	// BuildPromptAdditions returns guidance text appended to the system
	// prompt, conditioned on how novel the query looks.
	BuildPromptAdditions(query string, examples []models.TrainingExample) string
}

type flexibilityService struct{}

// NewFlexibilityService creates a FlexibilityService.
func NewFlexibilityService() FlexibilityService {
	return &flexibilityService{}
}

var _ FlexibilityService = (*flexibilityService)(nil)

func (s *flexibilityService) AssessFlexibility(query string, examples []models.TrainingExample, suggestions []models.Suggestion) FlexibilityReport {
	var concerns, recommendations []string
	queryLower := strings.ToLower(query)

	if detectExampleCopying(queryLower, examples, suggestions) {
		concerns = append(concerns, "Potential exact training example copying detected")
		recommendations = append(recommendations, "Encourage more creative reasoning and adaptation")
	}

	if hasKeywordOnlyReasoning(suggestions) {
		concerns = append(concerns, "Reasoning appears keyword-focused rather than business-logic focused")
		recommendations = append(recommendations, "Emphasize business activity understanding over keyword matching")
	}

	if len(strings.Fields(query)) > complexQueryTokens && len(suggestions) == 1 {
		recommendations = append(recommendations, "Consider multiple occupancy suggestions for complex business descriptions")
	}

	if isNovelBusinessType(query, examples, novelTypeThreshold) && len(suggestions) == 0 {
		concerns = append(concerns, "Novel business type resulted in no suggestions - model may be over-constrained by training data")
		recommendations = append(recommendations, "Encourage creative reasoning for new business types using general business knowledge")
	}

	return FlexibilityReport{
		IsFlexible:      len(concerns) == 0,
		Concerns:        concerns,
		Recommendations: recommendations,
	}
}

func (s *flexibilityService) BuildPromptAdditions(query string, examples []models.TrainingExample) string {
	var b strings.Builder
	b.WriteString("\n\nFLEXIBILITY REMINDERS:\n")

	if isNovelBusinessType(query, examples, promptNoveltyThreshold) {
		b.WriteString(`
- This appears to be a NOVEL business type not well-represented in training examples
- Use CREATIVE REASONING and general business knowledge
- Focus on the CORE BUSINESS ACTIVITY and map to appropriate occupancy codes
- Don't be constrained by lack of similar training examples`)
	} else {
		b.WriteString(`
- Training examples available - use them as REASONING GUIDES, not exact templates
- ADAPT the logic patterns to this specific business description
- Consider what makes this business unique beyond the training examples`)
	}

	b.WriteString(`
- Always explain the BUSINESS ACTIVITY being performed, not just keyword matches
- Multiple valid suggestions are often better than one forced match
- Be creative while staying within the master occupancy list constraints`)

	return b.String()
}

// detectExampleCopying reports whether any suggestion carries an example's
// exact label while the query contains that example's opening text. Label
// reuse alone is legitimate; the prefix condition is what signals copying.
func detectExampleCopying(queryLower string, examples []models.TrainingExample, suggestions []models.Suggestion) bool {
	for _, example := range examples {
		prefix := strings.ToLower(example.BusinessDescription)
		if len(prefix) > copyDetectionPrefixLen {
			prefix = prefix[:copyDetectionPrefixLen]
		}
		for _, suggestion := range suggestions {
			if suggestion.Occupancy == example.CorrectOccupancy && strings.Contains(queryLower, prefix) {
				return true
			}
		}
	}
	return false
}

// hasKeywordOnlyReasoning flags justifications that talk about "matches"
// without mentioning any business-activity vocabulary.
func hasKeywordOnlyReasoning(suggestions []models.Suggestion) bool {
	for _, suggestion := range suggestions {
		reason := strings.ToLower(suggestion.Reason)
		if strings.Contains(reason, "matches") &&
			!strings.Contains(reason, "business") &&
			!strings.Contains(reason, "activity") &&
			!strings.Contains(reason, "work") {
			return true
		}
	}
	return false
}

// isNovelBusinessType reports whether no example shares at least threshold
// keyword overlap with the query.
func isNovelBusinessType(query string, examples []models.TrainingExample, threshold float64) bool {
	for _, example := range examples {
		if keywordOverlapRatio(query, example.BusinessDescription) >= threshold {
			return false
		}
	}
	return true
}

// keywordOverlapRatio is |intersection| / |union| over extracted keyword
// sets of the two descriptions.
func keywordOverlapRatio(desc1, desc2 string) float64 {
	words1 := extractBusinessKeywords(strings.ToLower(desc1))
	words2 := extractBusinessKeywords(strings.ToLower(desc2))

	set1 := make(map[string]struct{}, len(words1))
	for _, w := range words1 {
		set1[w] = struct{}{}
	}
	set2 := make(map[string]struct{}, len(words2))
	for _, w := range words2 {
		set2[w] = struct{}{}
	}

	union := make(map[string]struct{}, len(set1)+len(set2))
	common := 0
	for w := range set1 {
		union[w] = struct{}{}
		if _, ok := set2[w]; ok {
			common++
		}
	}
	for w := range set2 {
		union[w] = struct{}{}
	}

	if len(union) == 0 {
		return 0
	}
	return float64(common) / float64(len(union))
}

// extractBusinessKeywords tokenizes like extractKeyTerms but with the
// smaller stop-word set and no term cap.
func extractBusinessKeywords(textLower string) []string {
	tokens := termSplitPattern.Split(textLower, -1)
	words := make([]string, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if len(token) < minTermLen {
			continue
		}
		if numericPattern.MatchString(token) {
			continue
		}
		if _, stop := flexibilityStopWords[token]; stop {
			continue
		}
		words = append(words, token)
	}
	return words
}
