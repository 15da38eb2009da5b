package checkin

import (
	"time"

	"github.com/heartmarshall/recoverylock-backend/internal/domain"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// RecordInput is a check-in submitted for a registered device. The check-in
// number is assigned by the service.
type RecordInput struct {
	Name             string
	DaysSober        int
	Motivation       string
	EmotionalState   int
	CravingLevel     int
	FeelingsText     string
	RecoveryProgram  domain.RecoveryProgram
	PrimaryChallenge string
	Timezone         string
}

// toCheckIn builds the generator input with the given sequence number.
func (i RecordInput) toCheckIn(seq int) domain.CheckInInput {
	return domain.CheckInInput{
		Name:             i.Name,
		DaysSober:        i.DaysSober,
		Motivation:       i.Motivation,
		EmotionalState:   i.EmotionalState,
		CravingLevel:     i.CravingLevel,
		FeelingsText:     i.FeelingsText,
		CheckInCount:     seq,
		RecoveryProgram:  i.RecoveryProgram,
		PrimaryChallenge: i.PrimaryChallenge,
		Timezone:         i.Timezone,
	}
}

// Validate checks all fields and collects all errors.
func (i RecordInput) Validate() error {
	return i.toCheckIn(domain.MinCheckInSeq).Validate()
}

// ListInput pages through a device's history.
type ListInput struct {
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 || i.Limit > MaxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 100"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// StatsInput selects the zone used to bucket check-ins into days.
type StatsInput struct {
	Timezone string
}

// Validate checks all fields and collects all errors.
func (i StatsInput) Validate() error {
	if i.Timezone == "" {
		return nil
	}
	if _, err := time.LoadLocation(i.Timezone); err != nil {
		return domain.NewValidationError("timezone", "unknown time zone")
	}
	return nil
}
