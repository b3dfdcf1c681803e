package models

// TrainingExample is one historical (description, correct code) pair from
// the external corpus. Read-only at runtime; used only to condition
// classification prompts, never written by this system.
type TrainingExample struct {
	BusinessDescription string `json:"businessDescription"`
	CorrectOccupancy    string `json:"correctOccupancy"`
	Reason              string `json:"reason"`
}
