package reflection

import (
	"fmt"
	"strings"
	"time"

	"github.com/heartmarshall/recoverylock-backend/internal/domain"
)

var emotionDescriptions = [...]string{
	"struggling and having a hard day",
	"feeling a bit uncertain or low",
	"doing okay, feeling neutral",
	"feeling good and positive",
	"feeling great and grateful",
}

var cravingDescriptions = [...]string{
	"no cravings",
	"mild cravings",
	"moderate cravings",
	"strong cravings",
	"intense cravings they're fighting through",
}

const (
	defaultChallenge  = "general recovery and personal growth"
	defaultMotivation = "Personal growth and health"

	earlyRecoveryDays = 30
	milestoneDays     = 365
)

// PromptContext is everything the prompt is built from. The guidance flags
// are derived once so the prompt text and tests agree on them.
type PromptContext struct {
	Input domain.CheckInInput
	Theme domain.ThematicEntry
	Month time.Month

	NeedsSupport  bool
	HighCraving   bool
	EarlyRecovery bool
	Milestone     bool
	SharedFeeling bool
	HasChallenge  bool
}

// NewPromptContext derives the guidance flags for in under th.
func NewPromptContext(in domain.CheckInInput, th domain.ThematicEntry, month time.Month) PromptContext {
	return PromptContext{
		Input:         in,
		Theme:         th,
		Month:         month,
		NeedsSupport:  in.NeedsSupport(),
		HighCraving:   in.HighCraving(),
		EarlyRecovery: in.DaysSober < earlyRecoveryDays,
		Milestone:     in.DaysSober >= milestoneDays,
		SharedFeeling: strings.TrimSpace(in.FeelingsText) != "",
		HasChallenge:  strings.TrimSpace(in.PrimaryChallenge) != "",
	}
}

// BuildPrompt renders the single user message sent to the model.
func BuildPrompt(pc PromptContext) string {
	in := pc.Input
	th := pc.Theme

	challenge := orDefault(in.PrimaryChallenge, defaultChallenge)
	motivation := orDefault(in.Motivation, defaultMotivation)

	fellowship := in.RecoveryProgram.DisplayName()
	if in.RecoveryProgram.IsSpecific() {
		fellowship += " (" + string(in.RecoveryProgram) + ")"
	}

	var b strings.Builder
	b.WriteString("You are a compassionate recovery coach creating a brief, personalized reflection for someone in addiction recovery. Be warm, supportive, and grounded in recovery principles.\n\n")

	b.WriteString("Context about this person:\n")
	fmt.Fprintf(&b, "- Name: %s\n", strings.TrimSpace(in.Name))
	fmt.Fprintf(&b, "- Days in recovery: %d\n", in.DaysSober)
	fmt.Fprintf(&b, "- Recovery fellowship: %s\n", fellowship)
	fmt.Fprintf(&b, "- Their specific challenge/pattern they're working on: %q\n", challenge)
	fmt.Fprintf(&b, "- Their personal motivation for recovery: %q\n", motivation)
	fmt.Fprintf(&b, "- Current emotional state: %s\n", emotionDescriptions[clampLevel(in.EmotionalState)])
	fmt.Fprintf(&b, "- Craving level: %s\n", cravingDescriptions[clampLevel(in.CravingLevel)])
	if pc.SharedFeeling {
		fmt.Fprintf(&b, "- What they shared about how they're feeling: %q\n", strings.TrimSpace(in.FeelingsText))
	}
	fmt.Fprintf(&b, "- This is check-in #%d for them\n\n", in.CheckInCount)

	fmt.Fprintf(&b, "MONTHLY THEME (%s - Step %d):\n", pc.Month, th.Step)
	fmt.Fprintf(&b, "%q\n", th.Text)
	fmt.Fprintf(&b, "Spiritual Principle: %s\n", th.SpiritualPrinciple)
	fmt.Fprintf(&b, "Key themes to weave in: %s\n\n", strings.Join(th.Keywords, ", "))

	b.WriteString("Write a 2-3 sentence personalized reflection that:\n")
	b.WriteString("1. Uses their name naturally (not at the very start)\n")
	if pc.SharedFeeling {
		b.WriteString("2. Directly addresses what they shared about their feelings\n")
	} else {
		b.WriteString("2. Acknowledges their current emotional state and craving level appropriately\n")
	}
	b.WriteString("3. Weaves in the monthly step's spiritual principle or themes naturally\n")
	b.WriteString("4. References their specific challenge or pattern when relevant (but sensitively)\n")
	b.WriteString("5. Is encouraging without being preachy\n")
	b.WriteString("6. Feels fresh and personal, not generic\n")
	b.WriteString("7. Uses language appropriate to their fellowship (e.g., \"clean\" for NA, \"abstinent\" for OA)\n")

	var guidance []string
	if pc.NeedsSupport {
		guidance = append(guidance, "They need extra support and gentle encouragement today. Connect the step themes to finding strength in difficulty.")
	}
	if pc.HighCraving {
		guidance = append(guidance, "Acknowledge their strength in facing cravings/urges. Relate to the step principle of "+strings.ToLower(th.SpiritualPrinciple)+".")
	}
	if pc.EarlyRecovery {
		guidance = append(guidance, "They are in early recovery - celebrate every day as a victory.")
	}
	if pc.Milestone {
		guidance = append(guidance, "Acknowledge their significant milestone while keeping them grounded in daily practice.")
	}
	if pc.SharedFeeling {
		guidance = append(guidance, "IMPORTANT: Since they took the time to share their feelings, make sure the reflection directly speaks to what they wrote.")
	}
	if pc.HasChallenge {
		guidance = append(guidance, "Consider how the current step themes relate to their specific challenge of: "+strings.TrimSpace(in.PrimaryChallenge))
	}
	if len(guidance) > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Join(guidance, "\n"))
		b.WriteString("\n")
	}

	b.WriteString("\nRespond with ONLY a JSON object in this exact format:\n")
	b.WriteString(`{"reflection": "your reflection text here"}`)
	return b.String()
}

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return def
}

func clampLevel(v int) int {
	return min(max(v, domain.MinLevel), domain.MaxLevel)
}
