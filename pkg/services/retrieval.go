package services

import (
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/suraksha-labs/occupancy-engine/pkg/models"
)

const (
	// minTermLen is the shortest token worth scoring.
	minTermLen = 3
	// maxQueryTerms caps how many query terms participate in scoring.
	maxQueryTerms = 10
	// absoluteScoreFloor is the minimum relevance score regardless of
	// query length.
	absoluteScoreFloor = 3
	// relativeScoreFloor scales the floor with query length so longer
	// queries need proportionally more overlap.
	relativeScoreFloor = 0.1
)

// retrievalStopWords covers English plus Hindi and Hinglish function words.
// Descriptions arrive in any mix of the three.
var retrievalStopWords = map[string]struct{}{
	"and": {}, "or": {}, "the": {}, "a": {}, "an": {}, "is": {}, "are": {},
	"was": {}, "were": {}, "have": {}, "has": {}, "had": {}, "do": {},
	"does": {}, "did": {}, "will": {}, "would": {}, "could": {}, "should": {},
	"may": {}, "might": {}, "must": {}, "can": {}, "to": {}, "of": {},
	"in": {}, "on": {}, "at": {}, "by": {}, "for": {}, "with": {},
	"about": {}, "into": {}, "through": {}, "during": {}, "before": {},
	"after": {}, "above": {}, "below": {}, "up": {}, "down": {}, "out": {},
	"off": {}, "over": {}, "under": {}, "again": {}, "further": {},
	"then": {}, "once": {}, "here": {}, "there": {}, "when": {},
	"where": {}, "why": {}, "how": {}, "all": {}, "any": {}, "both": {},
	"each": {}, "few": {}, "more": {}, "most": {}, "other": {}, "some": {},
	"such": {}, "no": {}, "nor": {}, "not": {}, "only": {}, "own": {},
	"same": {}, "so": {}, "than": {}, "too": {}, "very": {}, "s": {},
	"t": {}, "just": {}, "now": {}, "also": {}, "its": {}, "my": {},
	"our": {}, "their": {}, "his": {}, "her": {},
	"hai": {}, "ka": {}, "ke": {}, "ki": {}, "ko": {}, "mein": {},
	"se": {}, "pe": {}, "par": {}, "aur": {}, "ya": {}, "yah": {},
	"wah": {}, "h": {}, "hota": {}, "hoti": {}, "hain": {}, "tha": {},
	"thi": {}, "karna": {}, "karte": {}, "kar": {}, "kaam": {},
}

var termSplitPattern = regexp.MustCompile(`[\s,.\-]+`)
var numericPattern = regexp.MustCompile(`^\d+$`)

// RetrievalService selects the historical examples most lexically similar
// to a query. Matching is deliberately shallow; semantic judgement is left
// to the model, which receives the examples as reasoning patterns.
type RetrievalService interface {
	RetrieveExamples(query string, maxExamples int) []models.TrainingExample
}

type retrievalService struct {
	examples []models.TrainingExample
	logger   *zap.Logger
}

// NewRetrievalService creates a RetrievalService over a fixed corpus.
func NewRetrievalService(examples []models.TrainingExample, logger *zap.Logger) RetrievalService {
	return &retrievalService{
		examples: examples,
		logger:   logger.Named("retrieval"),
	}
}

var _ RetrievalService = (*retrievalService)(nil)

type scoredExample struct {
	example models.TrainingExample
	score   int
}

func (s *retrievalService) RetrieveExamples(query string, maxExamples int) []models.TrainingExample {
	if len(s.examples) == 0 {
		return nil
	}

	queryLower := strings.ToLower(query)
	terms := extractKeyTerms(queryLower)

	scored := make([]scoredExample, 0, len(s.examples))
	for _, example := range s.examples {
		exampleLower := strings.ToLower(example.BusinessDescription)
		score := 0
		for _, term := range terms {
			if strings.Contains(exampleLower, term) {
				// Longer terms carry more signal.
				score += len(term)
			}
		}
		scored = append(scored, scoredExample{example: example, score: score})
	}

	// Weak coincidental matches below the floor would read as strong
	// guidance in the prompt, so they are dropped outright.
	floor := relevanceFloor(queryLower)
	relevant := scored[:0]
	for _, item := range scored {
		if float64(item.score) >= floor {
			relevant = append(relevant, item)
		}
	}

	sort.SliceStable(relevant, func(i, j int) bool {
		return relevant[i].score > relevant[j].score
	})

	if len(relevant) > maxExamples {
		relevant = relevant[:maxExamples]
	}

	results := make([]models.TrainingExample, 0, len(relevant))
	for _, item := range relevant {
		picked := item.example
		picked.Reason = picked.Reason + " (Similarity guidance - adapt logic, don't copy)"
		results = append(results, picked)
	}

	s.logger.Debug("retrieved training examples",
		zap.Int("candidates", len(s.examples)),
		zap.Int("returned", len(results)),
		zap.Float64("floor", floor))
	return results
}

func relevanceFloor(queryLower string) float64 {
	scaled := float64(len(queryLower)) * relativeScoreFloor
	if scaled < absoluteScoreFloor {
		return absoluteScoreFloor
	}
	return scaled
}

// extractKeyTerms tokenizes lowercased text into scoring terms, dropping
// stop words, short tokens and purely numeric tokens.
func extractKeyTerms(textLower string) []string {
	tokens := termSplitPattern.Split(textLower, -1)
	terms := make([]string, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if len(token) < minTermLen {
			continue
		}
		if numericPattern.MatchString(token) {
			continue
		}
		if _, stop := retrievalStopWords[token]; stop {
			continue
		}
		terms = append(terms, token)
		if len(terms) == maxQueryTerms {
			break
		}
	}
	return terms
}
