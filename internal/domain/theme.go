package domain

import "fmt"

// ThematicEntry is one of the twelve monthly recovery steps.
type ThematicEntry struct {
	Step               int      `json:"step"`
	Name               string   `json:"name"`
	Text               string   `json:"text"`
	SpiritualPrinciple string   `json:"spiritualPrinciple"`
	Keywords           []string `json:"keywords"`
	Quotes             []string `json:"quotes"`
}

// SourceLabel returns the "Step {n} - {name}" label attached to every reflection.
func (t ThematicEntry) SourceLabel() string {
	return fmt.Sprintf("Step %d - %s", t.Step, t.Name)
}

// DailyWisdom is a short recovery saying shown alongside the check-in.
type DailyWisdom struct {
	Text   string `json:"text"`
	Source string `json:"source"`
}
