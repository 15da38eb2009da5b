// Package theme maps the wall clock onto the fixed twelve-step calendar.
//
// Every function here is a pure function of its arguments: the month picks the
// step, the day of month picks the supplementary quote, the day of year picks
// the daily wisdom. The caller decides the time zone by converting now before
// calling.
package theme

import (
	"slices"
	"time"

	"github.com/heartmarshall/recoverylock-backend/internal/domain"
)

// CurrentTheme returns the step for now's calendar month in now's location.
func CurrentTheme(now time.Time) domain.ThematicEntry {
	return ForMonth(now.Month())
}

// ForMonth returns the step mapped to m. January is step 1.
func ForMonth(m time.Month) domain.ThematicEntry {
	return clone(steps[int(m)-1])
}

// ForStep returns the entry with the given step number and false when step
// is outside 1..12.
func ForStep(step int) (domain.ThematicEntry, bool) {
	if step < 1 || step > len(steps) {
		return domain.ThematicEntry{}, false
	}
	return clone(steps[step-1]), true
}

// All returns the twelve entries in calendar order.
func All() []domain.ThematicEntry {
	out := make([]domain.ThematicEntry, len(steps))
	for i := range steps {
		out[i] = clone(steps[i])
	}
	return out
}

// SupplementaryQuote picks quote dayOfMonth mod len(pool) from th's pool.
// Returns an empty string for a theme without quotes.
func SupplementaryQuote(now time.Time, th domain.ThematicEntry) string {
	if len(th.Quotes) == 0 {
		return ""
	}
	return th.Quotes[now.Day()%len(th.Quotes)]
}

// Wisdom returns the daily wisdom for now's day of year.
func Wisdom(now time.Time) domain.DailyWisdom {
	return wisdom[now.YearDay()%len(wisdom)]
}

func clone(e domain.ThematicEntry) domain.ThematicEntry {
	e.Keywords = slices.Clone(e.Keywords)
	e.Quotes = slices.Clone(e.Quotes)
	return e
}

// Clock returns the current time. Injected so callers can pin the date.
type Clock func() time.Time

// Scheduler resolves the theme for "today" in a configured default location.
type Scheduler struct {
	now Clock
	loc *time.Location
}

// NewScheduler creates a Scheduler. A nil clock uses time.Now and a nil
// location uses time.Local.
func NewScheduler(now Clock, loc *time.Location) *Scheduler {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{now: now, loc: loc}
}

// Location returns the scheduler's default location.
func (s *Scheduler) Location() *time.Location { return s.loc }

// Now returns the current time in loc, or in the default location when loc is nil.
func (s *Scheduler) Now(loc *time.Location) time.Time {
	if loc == nil {
		loc = s.loc
	}
	return s.now().In(loc)
}

// Today bundles everything the check-in screen shows for one local date.
type Today struct {
	Date   string
	Theme  domain.ThematicEntry
	Quote  string
	Wisdom domain.DailyWisdom
}

// Today resolves the theme, quote and wisdom for the current date in loc.
func (s *Scheduler) Today(loc *time.Location) Today {
	now := s.Now(loc)
	th := CurrentTheme(now)
	return Today{
		Date:   now.Format(time.DateOnly),
		Theme:  th,
		Quote:  SupplementaryQuote(now, th),
		Wisdom: Wisdom(now),
	}
}
