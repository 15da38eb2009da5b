package theme

import (
	"slices"
	"testing"
	"time"
)

func TestCurrentTheme_MonthToStepBijection(t *testing.T) {
	t.Parallel()

	seen := make(map[int]bool)
	for m := time.January; m <= time.December; m++ {
		now := time.Date(2025, m, 15, 12, 0, 0, 0, time.UTC)
		th := CurrentTheme(now)
		if th.Step != int(m) {
			t.Errorf("month %s: step = %d, want %d", m, th.Step, int(m))
		}
		if seen[th.Step] {
			t.Errorf("step %d returned twice", th.Step)
		}
		seen[th.Step] = true
	}
	if len(seen) != 12 {
		t.Fatalf("distinct steps = %d, want 12", len(seen))
	}
}

func TestCurrentTheme_May(t *testing.T) {
	t.Parallel()

	th := CurrentTheme(time.Date(2025, time.May, 10, 8, 0, 0, 0, time.UTC))
	if th.Step != 5 || th.Name != "Integrity" || th.SpiritualPrinciple != "Integrity" {
		t.Fatalf("got step=%d name=%q principle=%q", th.Step, th.Name, th.SpiritualPrinciple)
	}
	if got := th.SourceLabel(); got != "Step 5 - Integrity" {
		t.Errorf("SourceLabel() = %q", got)
	}
}

func TestCurrentTheme_UsesLocationOfNow(t *testing.T) {
	t.Parallel()

	// 2025-01-31 23:30 in New York is already February in UTC.
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	local := time.Date(2025, time.January, 31, 23, 30, 0, 0, ny)

	if got := CurrentTheme(local).Step; got != 1 {
		t.Errorf("local step = %d, want 1", got)
	}
	if got := CurrentTheme(local.UTC()).Step; got != 2 {
		t.Errorf("utc step = %d, want 2", got)
	}
}

func TestCurrentTheme_ReturnsCopy(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	a := CurrentTheme(now)
	a.Keywords[0] = "mutated"
	a.Quotes[0] = "mutated"

	b := CurrentTheme(now)
	if b.Keywords[0] == "mutated" || b.Quotes[0] == "mutated" {
		t.Fatal("table was mutated through a returned entry")
	}
}

func TestTable_Complete(t *testing.T) {
	t.Parallel()

	for i, e := range All() {
		if e.Step != i+1 {
			t.Errorf("entry %d: step = %d", i, e.Step)
		}
		if e.Name == "" || e.Text == "" || e.SpiritualPrinciple == "" {
			t.Errorf("step %d: empty field", e.Step)
		}
		if len(e.Keywords) < 5 {
			t.Errorf("step %d: %d keywords", e.Step, len(e.Keywords))
		}
		if len(e.Quotes) == 0 {
			t.Errorf("step %d: empty quote pool", e.Step)
		}
	}
}

func TestSupplementaryQuote(t *testing.T) {
	t.Parallel()

	for m := time.January; m <= time.December; m++ {
		for day := 1; day <= 28; day++ {
			now := time.Date(2025, m, day, 9, 0, 0, 0, time.UTC)
			th := CurrentTheme(now)

			q := SupplementaryQuote(now, th)
			if !slices.Contains(th.Quotes, q) {
				t.Fatalf("%s: quote %q not in pool", now.Format(time.DateOnly), q)
			}
			if want := th.Quotes[day%len(th.Quotes)]; q != want {
				t.Fatalf("%s: quote = %q, want %q", now.Format(time.DateOnly), q, want)
			}
			if again := SupplementaryQuote(now.Add(2*time.Hour), th); again != q {
				t.Fatalf("%s: quote changed within the same day", now.Format(time.DateOnly))
			}
		}
	}
}

func TestSupplementaryQuote_EmptyPool(t *testing.T) {
	t.Parallel()

	th := CurrentTheme(time.Now())
	th.Quotes = nil
	if got := SupplementaryQuote(time.Now(), th); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestForStep(t *testing.T) {
	t.Parallel()

	tests := []struct {
		step   int
		wantOK bool
	}{
		{0, false},
		{1, true},
		{12, true},
		{13, false},
		{-1, false},
	}
	for _, tt := range tests {
		e, ok := ForStep(tt.step)
		if ok != tt.wantOK {
			t.Errorf("ForStep(%d) ok = %v", tt.step, ok)
		}
		if ok && e.Step != tt.step {
			t.Errorf("ForStep(%d).Step = %d", tt.step, e.Step)
		}
	}
}

func TestWisdom_StableForDay(t *testing.T) {
	t.Parallel()

	morning := time.Date(2025, time.July, 4, 7, 0, 0, 0, time.UTC)
	evening := time.Date(2025, time.July, 4, 22, 0, 0, 0, time.UTC)
	if Wisdom(morning) != Wisdom(evening) {
		t.Error("wisdom changed within a day")
	}
	if Wisdom(morning) == Wisdom(morning.AddDate(0, 0, 1)) {
		t.Error("wisdom did not rotate on the next day")
	}
}

func TestScheduler_Today(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2025, time.December, 31, 23, 0, 0, 0, time.UTC)
	s := NewScheduler(func() time.Time { return fixed }, time.UTC)

	today := s.Today(nil)
	if today.Date != "2025-12-31" {
		t.Errorf("Date = %q", today.Date)
	}
	if today.Theme.Step != 12 {
		t.Errorf("step = %d, want 12", today.Theme.Step)
	}
	if today.Quote == "" || today.Wisdom.Text == "" {
		t.Error("quote or wisdom empty")
	}

	tokyo := time.FixedZone("JST", 9*60*60)
	if got := s.Today(tokyo); got.Theme.Step != 1 || got.Date != "2026-01-01" {
		t.Errorf("tokyo: step=%d date=%s", got.Theme.Step, got.Date)
	}
}
