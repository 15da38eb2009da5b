package reflection

import (
	"strconv"
	"strings"

	"github.com/heartmarshall/recoverylock-backend/internal/domain"
)

// fallbackBank holds three templates per step. {name} and {days} are
// substituted at render time.
var fallbackBank = map[int][3]string{
	1: {
		"The courage to be honest with yourself today, {name}, is the foundation of your {days} days. In admitting what we cannot control, we find what we can.",
		"{name}, {days} days of choosing honesty over denial. Today, let that truth be your strength, not your burden.",
		"Even on hard days, {name}, honesty with yourself is the greatest gift. {days} days built on that foundation cannot be shaken.",
	},
	2: {
		"Hope isn't just a feeling, {name}—it's the {days} days of evidence that healing is real. Trust the process today.",
		"{name}, {days} days ago you took a leap of faith. That hope has carried you here. Let it carry you through today.",
		"When doubt creeps in, {name}, remember: {days} days of hope made manifest. You are living proof that change is possible.",
	},
	3: {
		"Letting go isn't giving up, {name}—it's trusting the journey. {days} days of faith, one day at a time.",
		"{name}, {days} days of turning it over. Today, trust that you don't have to carry everything alone.",
		"Faith isn't certainty, {name}. It's {days} days of showing up anyway. That's the kind of faith that transforms.",
	},
	4: {
		"The courage to look within, {name}, has given you {days} days of freedom. Self-awareness is strength.",
		"{name}, {days} days of facing yourself with honesty. That's not easy—that's courageous.",
		"Every day you choose growth over comfort, {name}. {days} days of courage, one honest moment at a time.",
	},
	5: {
		"{name}, {days} days of living your truth. Integrity isn't perfection—it's alignment between who you are and how you live.",
		"Speaking your truth takes courage, {name}. {days} days of walking in integrity, even when it's hard.",
		"The weight you've released through honesty, {name}, has made room for {days} days of freedom. That's integrity in action.",
	},
	6: {
		"Willingness opens doors that force cannot, {name}. {days} days of saying yes to change.",
		"{name}, {days} days of being ready—not perfect, but willing. That's all growth asks of us.",
		"Your willingness to grow, {name}, has built {days} days of transformation. Stay open to what today brings.",
	},
	7: {
		"Humility isn't weakness, {name}—it's the wisdom behind {days} days of asking for help when you need it.",
		"{name}, {days} days of letting go of pride and embracing progress. Humility has served you well.",
		"The strength to admit you don't have all the answers, {name}, has given you {days} days of growth. That's true humility.",
	},
	8: {
		"Love heals what willpower alone cannot, {name}. {days} days of mending—starting with yourself.",
		"{name}, {days} days of opening your heart to healing. Love yourself today as you work to love others.",
		"The relationships worth repairing start with the one you have with yourself, {name}. {days} days of that work in progress.",
	},
	9: {
		"Making things right isn't about perfection, {name}—it's about {days} days of honest effort to heal.",
		"{name}, {days} days of taking responsibility and making amends. That takes real courage.",
		"Justice in recovery means fairness to yourself too, {name}. {days} days of balanced healing.",
	},
	10: {
		"Daily practice is the secret, {name}. {days} days of perseverance, built one honest day at a time.",
		"{name}, {days} days of showing up and taking inventory. Persistence is your superpower.",
		"The willingness to course-correct, {name}, has kept you on track for {days} days. Keep going.",
	},
	11: {
		"In the quiet moments, {name}, you've found strength for {days} days. Keep seeking that inner peace.",
		"{name}, {days} days of conscious contact with something greater. Your spirit knows the way.",
		"Meditation and reflection have anchored {days} days of your journey, {name}. Trust your inner wisdom today.",
	},
	12: {
		"Your recovery lights the way for others, {name}. {days} days of awakening, now shared with the world.",
		"{name}, {days} days of transformation. The best way to keep it is to give it away.",
		"Service multiplies what we've received, {name}. {days} days of gifts worth sharing. You are the message.",
	},
}

// supportAddons are appended when the emotional state is low. {principle}
// is the spiritual principle, {principle_lower} its lowercase form.
var supportAddons = [...]string{
	" Be gentle with yourself today—{principle_lower} includes self-compassion.",
	" Hard days are part of the journey. {principle} means meeting yourself where you are.",
	" Even struggle is progress, {name}. {principle_lower} shines brightest in difficulty.",
}

var cravingAddons = [...]string{
	" This craving will pass. Your {days} days prove you're stronger than any urge.",
	" Cravings are waves—they rise and fall. You've ridden {days} days of them. Ride this one too.",
	" Feel the craving, acknowledge it, and let it go. {days} days of practice has prepared you for this moment.",
}

// Fallback composes a reflection from the template bank: one base template
// for th's step, then a support addon when the emotional state is low, then
// a craving addon when cravings are high. rnd picks each part.
func Fallback(rnd Random, in domain.CheckInInput, th domain.ThematicEntry) string {
	templates, ok := fallbackBank[th.Step]
	if !ok {
		templates = fallbackBank[1]
	}

	r := strings.NewReplacer(
		"{name}", strings.TrimSpace(in.Name),
		"{days}", strconv.Itoa(in.DaysSober),
		"{principle_lower}", strings.ToLower(th.SpiritualPrinciple),
		"{principle}", th.SpiritualPrinciple,
	)

	var b strings.Builder
	b.WriteString(r.Replace(templates[rnd.IntN(len(templates))]))
	if in.NeedsSupport() {
		b.WriteString(r.Replace(supportAddons[rnd.IntN(len(supportAddons))]))
	}
	if in.HighCraving() {
		b.WriteString(r.Replace(cravingAddons[rnd.IntN(len(cravingAddons))]))
	}
	return b.String()
}
