package theme

import "github.com/heartmarshall/recoverylock-backend/internal/domain"

// steps is indexed by calendar month: steps[0] is January, steps[11] is December.
// Read-only after init; accessors hand out copies.
var steps = [12]domain.ThematicEntry{
	{
		Step:               1,
		Name:               "Powerlessness",
		Text:               "We admitted we were powerless over alcohol—that our lives had become unmanageable.",
		SpiritualPrinciple: "Honesty",
		Keywords:           []string{"surrender", "honesty", "acceptance", "humility", "admitting limitations", "letting go of control"},
		Quotes: []string{
			"Surrender is where the fight ends and recovery begins.",
			"Honesty with yourself is the first clean day.",
			"Admitting it is not weakness. It is the door.",
		},
	},
	{
		Step:               2,
		Name:               "Hope",
		Text:               "Came to believe that a Power greater than ourselves could restore us to sanity.",
		SpiritualPrinciple: "Hope",
		Keywords:           []string{"hope", "faith", "open-mindedness", "belief", "trust in something greater", "possibility of healing"},
		Quotes: []string{
			"Hope is a decision you can make again today.",
			"You don't have to believe it all. Just believe it's possible.",
			"Sanity returns one honest day at a time.",
		},
	},
	{
		Step:               3,
		Name:               "Faith",
		Text:               "Made a decision to turn our will and our lives over to the care of God as we understood Him.",
		SpiritualPrinciple: "Faith",
		Keywords:           []string{"surrender", "trust", "faith", "letting go", "turning it over", "acceptance of guidance"},
		Quotes: []string{
			"Let go, and let the day carry some of the weight.",
			"Faith is showing up before you feel ready.",
			"Turn it over. Then turn it over again.",
		},
	},
	{
		Step:               4,
		Name:               "Courage",
		Text:               "Made a searching and fearless moral inventory of ourselves.",
		SpiritualPrinciple: "Courage",
		Keywords:           []string{"courage", "self-examination", "honesty", "facing fears", "self-awareness", "truth"},
		Quotes: []string{
			"Look honestly. What you face loses its power.",
			"Courage is fear that took one more step.",
			"The inventory is not a verdict. It is a map.",
		},
	},
	{
		Step:               5,
		Name:               "Integrity",
		Text:               "Admitted to God, to ourselves, and to another human being the exact nature of our wrongs.",
		SpiritualPrinciple: "Integrity",
		Keywords:           []string{"integrity", "confession", "vulnerability", "connection", "releasing shame", "truth-telling"},
		Quotes: []string{
			"We are only as sick as our secrets.",
			"Spoken truth weighs less than hidden truth.",
			"Integrity is being the same person in every room.",
		},
	},
	{
		Step:               6,
		Name:               "Willingness",
		Text:               "Were entirely ready to have God remove all these defects of character.",
		SpiritualPrinciple: "Willingness",
		Keywords:           []string{"willingness", "readiness", "openness to change", "preparation", "letting go of defects"},
		Quotes: []string{
			"Willing is enough to begin.",
			"Nothing changes if nothing changes.",
			"Open hands can receive what closed fists cannot.",
		},
	},
	{
		Step:               7,
		Name:               "Humility",
		Text:               "Humbly asked Him to remove our shortcomings.",
		SpiritualPrinciple: "Humility",
		Keywords:           []string{"humility", "asking for help", "releasing ego", "spiritual growth", "transformation"},
		Quotes: []string{
			"Asking for help is a strength we practice.",
			"Humility is seeing yourself clearly, no bigger and no smaller.",
			"Progress, not perfection.",
		},
	},
	{
		Step:               8,
		Name:               "Brotherly Love",
		Text:               "Made a list of all persons we had harmed, and became willing to make amends to them all.",
		SpiritualPrinciple: "Brotherly Love",
		Keywords:           []string{"love", "forgiveness", "responsibility", "healing relationships", "willingness to repair"},
		Quotes: []string{
			"Put your own name on the list too.",
			"Love is a verb. Willingness is where it starts.",
			"Forgiveness frees the one who offers it.",
		},
	},
	{
		Step:               9,
		Name:               "Justice",
		Text:               "Made direct amends to such people wherever possible, except when to do so would injure them or others.",
		SpiritualPrinciple: "Justice",
		Keywords:           []string{"justice", "making amends", "responsibility", "healing", "righting wrongs", "restoration"},
		Quotes: []string{
			"Amends are changed behavior, not just words.",
			"We will not regret the past nor wish to shut the door on it.",
			"Set it right where you can. Let go where you can't.",
		},
	},
	{
		Step:               10,
		Name:               "Perseverance",
		Text:               "Continued to take personal inventory and when we were wrong promptly admitted it.",
		SpiritualPrinciple: "Perseverance",
		Keywords:           []string{"perseverance", "daily practice", "self-awareness", "promptness", "ongoing growth", "vigilance"},
		Quotes: []string{
			"It works if you work it.",
			"Easy does it, but do it.",
			"A quick \"I was wrong\" saves a long night.",
		},
	},
	{
		Step:               11,
		Name:               "Spiritual Awareness",
		Text:               "Sought through prayer and meditation to improve our conscious contact with God as we understood Him.",
		SpiritualPrinciple: "Spiritual Awareness",
		Keywords:           []string{"prayer", "meditation", "spiritual connection", "seeking guidance", "conscious contact", "inner peace"},
		Quotes: []string{
			"Be still long enough to hear what you need.",
			"Serenity is a practice, not a mood.",
			"Pause when agitated or doubtful.",
		},
	},
	{
		Step:               12,
		Name:               "Service",
		Text:               "Having had a spiritual awakening as the result of these steps, we tried to carry this message to alcoholics, and to practice these principles in all our affairs.",
		SpiritualPrinciple: "Service",
		Keywords:           []string{"service", "giving back", "spiritual awakening", "carrying the message", "gratitude in action", "living the principles"},
		Quotes: []string{
			"You keep it by giving it away.",
			"You are not alone. We have all been where you are.",
			"Gratitude is an action word.",
		},
	},
}

var wisdom = [...]domain.DailyWisdom{
	{Text: "We admitted we were powerless over alcohol—that our lives had become unmanageable.", Source: "Step One"},
	{Text: "God, grant me the serenity to accept the things I cannot change, courage to change the things I can, and wisdom to know the difference.", Source: "Serenity Prayer"},
	{Text: "One day at a time. This is enough. Do not look back and grieve over the past, for it is gone.", Source: "Just For Today"},
	{Text: "We will not regret the past nor wish to shut the door on it.", Source: "The Promises"},
	{Text: "Nothing changes if nothing changes.", Source: "Recovery Wisdom"},
	{Text: "You are not alone. We have all been where you are.", Source: "Fellowship"},
	{Text: "Progress, not perfection.", Source: "AA Saying"},
	{Text: "Easy does it, but do it.", Source: "AA Saying"},
	{Text: "We are only as sick as our secrets.", Source: "Recovery Wisdom"},
	{Text: "It works if you work it.", Source: "AA Saying"},
}
