package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Bounds for check-in sliders and free text.
const (
	MinLevel       = 0
	MaxLevel       = 4
	MaxNameLength  = 100
	MaxFreeText    = 2000
	MinCheckInSeq  = 1
	lowEmotionMax  = 1
	highCravingMin = 3
)

// CheckInInput is the structured snapshot a client submits for one check-in.
type CheckInInput struct {
	Name             string
	DaysSober        int
	Motivation       string
	EmotionalState   int
	CravingLevel     int
	FeelingsText     string
	CheckInCount     int
	RecoveryProgram  RecoveryProgram
	PrimaryChallenge string
	// Timezone is an optional IANA zone used to resolve the caller's local date.
	Timezone string
}

// Validate checks all fields and collects all errors.
func (in CheckInInput) Validate() error {
	var errs []FieldError

	name := strings.TrimSpace(in.Name)
	if name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "required"})
	} else if utf8.RuneCountInString(name) > MaxNameLength {
		errs = append(errs, FieldError{Field: "name", Message: "max 100 characters"})
	}
	if in.DaysSober < 0 {
		errs = append(errs, FieldError{Field: "daysSober", Message: "must be non-negative"})
	}
	if in.EmotionalState < MinLevel || in.EmotionalState > MaxLevel {
		errs = append(errs, FieldError{Field: "emotionalState", Message: "must be between 0 and 4"})
	}
	if in.CravingLevel < MinLevel || in.CravingLevel > MaxLevel {
		errs = append(errs, FieldError{Field: "cravingLevel", Message: "must be between 0 and 4"})
	}
	if in.CheckInCount < MinCheckInSeq {
		errs = append(errs, FieldError{Field: "checkInCount", Message: "must be at least 1"})
	}

	freeText := []struct{ field, text string }{
		{"motivation", in.Motivation},
		{"feelingsText", in.FeelingsText},
		{"primaryChallenge", in.PrimaryChallenge},
	}
	for _, ft := range freeText {
		if utf8.RuneCountInString(ft.text) > MaxFreeText {
			errs = append(errs, FieldError{Field: ft.field, Message: "max 2000 characters"})
		}
	}

	if in.Timezone != "" {
		if _, err := time.LoadLocation(in.Timezone); err != nil {
			errs = append(errs, FieldError{Field: "timezone", Message: "unknown time zone"})
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// NeedsSupport reports whether the emotional state is low enough (0 or 1)
// to warrant extra supportive language.
func (in CheckInInput) NeedsSupport() bool { return in.EmotionalState <= lowEmotionMax }

// HighCraving reports whether the craving level is strong or intense (3 or 4).
func (in CheckInInput) HighCraving() bool { return in.CravingLevel >= highCravingMin }

// Location resolves Timezone, falling back to def when empty or unknown.
func (in CheckInInput) Location(def *time.Location) *time.Location {
	if in.Timezone == "" {
		return def
	}
	loc, err := time.LoadLocation(in.Timezone)
	if err != nil {
		return def
	}
	return loc
}
