// Package prompts assembles the text sent to the classification model.
// Everything here is pure string building so prompt contents can be
// asserted in tests without an LLM in the loop.
package prompts

import (
	"fmt"
	"strings"

	"github.com/suraksha-labs/occupancy-engine/pkg/models"
)

// BuildClassificationSystemPrompt composes the system message for a
// classification call: strict matching rules, the full master list, the
// retrieved examples, recent corrections and guard additions.
func BuildClassificationSystemPrompt(
	masterList []string,
	examples []models.TrainingExample,
	corrections []*models.Feedback,
	guardAdditions string,
) string {
	var b strings.Builder

	b.WriteString(`You are an AI Occupancy Translator for an insurance platform. Your job is to analyze business descriptions (including English, Hindi, and Hinglish) and match them to exact occupancy codes from a master list.

CRITICAL RULES:
1. You MUST NOT suggest any occupancy that is not an exact match from the provided master list
2. If you cannot find a confident match, return an empty array for suggested_occupancies
3. Always provide reasoning linking your suggestions to specific phrases in the description
4. Support English, Hindi, and Hinglish language understanding
5. LEARN from recent corrections to avoid repeating mistakes
6. TRAINING EXAMPLES are GUIDANCE ONLY - never force matches, use creative reasoning
7. FLEXIBILITY FIRST - adapt reasoning patterns to new business types not in training data
8. Respond with JSON in this exact format

FLEXIBILITY SAFEGUARDS:
- Training examples show REASONING PATTERNS, not fixed input-output rules
- Always prioritize BUSINESS ACTIVITY UNDERSTANDING over keyword matching
- If no training examples match, use general business knowledge + master list
- Never reject a description because it's not in training data
- Apply SIMILAR LOGIC from training examples to NEW business types
- Multiple valid suggestions are better than forcing one "correct" answer

Master Occupancy List:
`)
	b.WriteString(strings.Join(masterList, "\n"))

	b.WriteString("\n\nTRAINING EXAMPLES (Use these as REFERENCE PATTERNS, not rigid rules):\n")
	if len(examples) == 0 {
		b.WriteString("No relevant training examples found.")
	} else {
		blocks := make([]string, 0, len(examples))
		for _, example := range examples {
			blocks = append(blocks, fmt.Sprintf(`SIMILAR INPUT: %q
REFERENCE MATCH: %q
USE AS: Pattern recognition guide only - adapt logic to current description

IMPORTANT: This is a REFERENCE pattern. Apply similar reasoning logic to the current business description, but don't force exact matches. Consider the underlying business activity and match to the most appropriate occupancy from the master list.`,
				example.BusinessDescription, example.CorrectOccupancy))
		}
		b.WriteString(strings.Join(blocks, "\n\n"))
	}

	b.WriteString("\n\nRECENT CORRECTIONS (Learn from these mistakes):\n")
	if len(corrections) == 0 {
		b.WriteString("No recent corrections available.")
	} else {
		blocks := make([]string, 0, len(corrections))
		for _, correction := range corrections {
			reason := correction.CorrectionReason
			if reason == "" {
				reason = "No reason provided"
			}
			blocks = append(blocks, fmt.Sprintf(`WRONG: %q -> CORRECT: %q
Reason: %s`,
				correction.OccupancyCode, correction.CorrectionCode, reason))
		}
		b.WriteString(strings.Join(blocks, "\n\n"))
	}

	b.WriteString(`

Response format (JSON only):
{
  "suggested_occupancies": [
    {
      "occupancy": "exact match from master list",
      "reason": "explanation linking to specific phrases",
      "confidence": "high|medium|low"
    }
  ],
  "overall_reasoning": "summary of your thought process"
}`)
	b.WriteString(guardAdditions)

	return b.String()
}

// BuildClassificationUserPrompt wraps the raw business description.
func BuildClassificationUserPrompt(description string) string {
	return fmt.Sprintf(`Analyze this business description and suggest appropriate occupancy codes:

%q

Remember: Only suggest exact matches from the master list. If uncertain, return empty suggested_occupancies array.`, description)
}

// BuildAcknowledgmentPrompt asks the model to acknowledge a correction in
// a conversational tone.
func BuildAcknowledgmentPrompt(description, wrongCode, correctCode, reason string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Correction: My suggestion was wrong. For the business description %q, I suggested %q but the correct occupancy should have been %q.",
		description, wrongCode, correctCode)
	if reason != "" {
		fmt.Fprintf(&b, " Reason: %s", reason)
	}
	b.WriteString("\n\nPlease acknowledge this correction in a conversational tone and confirm you've logged the feedback.")
	return b.String()
}
