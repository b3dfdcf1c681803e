// Package corpus loads the historical training corpus used to condition
// classification prompts.
package corpus

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/suraksha-labs/occupancy-engine/pkg/models"
)

const (
	// Rows with shorter descriptions or codes carry too little signal to
	// guide a prompt and are skipped.
	minDescriptionLen = 10
	minOccupancyLen   = 5
)

// Load reads training examples from a CSV file with a header row. Expected
// columns: business_description, correct_occupancy and optionally
// data_source_type. Unusable rows are skipped, not treated as errors.
func Load(path string, logger *zap.Logger) ([]models.TrainingExample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open training corpus: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse training corpus: %w", err)
	}
	if len(records) < 2 {
		return nil, nil
	}

	descIdx, codeIdx, sourceIdx := columnIndexes(records[0])
	if descIdx < 0 || codeIdx < 0 {
		return nil, fmt.Errorf("training corpus missing business_description or correct_occupancy column")
	}

	var examples []models.TrainingExample
	for _, row := range records[1:] {
		if descIdx >= len(row) || codeIdx >= len(row) {
			continue
		}

		description := strings.TrimSpace(row[descIdx])
		occupancy := extractOccupancyCode(row[codeIdx])
		if len(description) <= minDescriptionLen || len(occupancy) <= minOccupancyLen {
			continue
		}

		source := "training data"
		if sourceIdx >= 0 && sourceIdx < len(row) && strings.TrimSpace(row[sourceIdx]) != "" {
			source = strings.TrimSpace(row[sourceIdx])
		}

		examples = append(examples, models.TrainingExample{
			BusinessDescription: description,
			CorrectOccupancy:    occupancy,
			Reason:              fmt.Sprintf("Historical example from %s", source),
		})
	}

	logger.Info("Loaded training examples", zap.Int("count", len(examples)), zap.String("path", path))
	return examples, nil
}

// columnIndexes resolves header positions, tolerating the naming variants
// seen in agent-maintained spreadsheets.
func columnIndexes(header []string) (descIdx, codeIdx, sourceIdx int) {
	descIdx, codeIdx, sourceIdx = -1, -1, -1
	for i, name := range header {
		switch normalizeHeader(name) {
		case "business_description", "description", "business_descriptions":
			if descIdx < 0 {
				descIdx = i
			}
		case "correct_occupancy", "correct_occupancies_simplified", "occupancy":
			if codeIdx < 0 {
				codeIdx = i
			}
		case "data_source_type", "source":
			if sourceIdx < 0 {
				sourceIdx = i
			}
		}
	}
	return descIdx, codeIdx, sourceIdx
}

func normalizeHeader(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "_"))
}

// extractOccupancyCode strips the trailing explanation from the simplified
// corpus format, e.g.
// "Engineering workshop & fabrication works (above 9 meters) ~ Based on 'welding work'"
// becomes "Engineering workshop & fabrication works (above 9 meters)".
func extractOccupancyCode(raw string) string {
	before, _, _ := strings.Cut(raw, " ~ ")
	return strings.TrimSpace(before)
}
