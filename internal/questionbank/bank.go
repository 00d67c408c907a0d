package questionbank

// Mode is the kind of interview being practiced.
type Mode string

const (
	ModeHR         Mode = "hr"
	ModeTechnical  Mode = "technical"
	ModeBehavioral Mode = "behavioral"
)

// DisplayName returns a human-readable label for the mode.
func (m Mode) DisplayName() string {
	switch m {
	case ModeHR:
		return "HR Screen"
	case ModeTechnical:
		return "Technical"
	case ModeBehavioral:
		return "Behavioral"
	default:
		return string(m)
	}
}

// Modes returns the supported interview modes in display order.
func Modes() []Mode {
	return []Mode{ModeBehavioral, ModeHR, ModeTechnical}
}

// Industries returns the industry keys with dedicated question lists.
func Industries() []string {
	return []string{"it", "finance", "marketing"}
}

// defaultIndustry is the per-mode fallback key.
const defaultIndustry = "default"

// bank holds the canned question lists keyed by (mode, industry).
// Each list is exactly five questions.
var bank = map[Mode]map[string][]string{
	ModeHR: {
		"it": {
			"Tell me about yourself and your path into tech.",
			"Why do you want to work at a software company like ours?",
			"How do you stay current with technology outside of work?",
			"Describe a time you disagreed with an engineering decision.",
			"Where do you see your technical career in five years?",
		},
		"finance": {
			"Tell me about yourself and why finance.",
			"How do you handle confidential information?",
			"Describe a time you worked under strict regulatory constraints.",
			"What does integrity mean to you in a financial role?",
			"Where do you see yourself in five years?",
		},
		"marketing": {
			"Tell me about yourself and your marketing background.",
			"Which campaign are you proudest of and why?",
			"How do you balance creativity against measurable results?",
			"Describe a time a campaign underperformed. What did you do?",
			"Where do you want to grow as a marketer?",
		},
		defaultIndustry: {
			"Tell me about yourself.",
			"Why are you interested in this role?",
			"What are your greatest strengths and weaknesses?",
			"Describe a conflict you had at work and how you handled it.",
			"Where do you see yourself in five years?",
		},
	},
	ModeTechnical: {
		"it": {
			"Walk me through a system you designed end to end.",
			"How do you approach debugging a production incident?",
			"Describe a technical decision you later regretted.",
			"How do you evaluate a new technology before adopting it?",
			"Tell me about the most complex code you have shipped.",
		},
		defaultIndustry: {
			"Describe a technically challenging project you completed.",
			"How do you break down a large ambiguous problem?",
			"Tell me about a time you had to learn a new tool quickly.",
			"How do you ensure the quality of your work?",
			"Explain a complex concept from your field in simple terms.",
		},
	},
	ModeBehavioral: {
		defaultIndustry: {
			"Tell me about a time you led a project under pressure.",
			"Describe a situation where you had to resolve a team conflict.",
			"Tell me about a goal you failed to reach and what you learned.",
			"Describe a time you had to persuade someone senior to you.",
			"Tell me about the accomplishment you are proudest of.",
		},
	},
}

// Questions looks up the canned list for a mode and industry, with a fixed
// fallback precedence: exact (mode, industry), then (mode, default), then
// the behavioral default list. The returned slice is a copy.
func Questions(mode Mode, industry string) []string {
	if byIndustry, ok := bank[mode]; ok {
		if qs, ok := byIndustry[industry]; ok {
			return clone(qs)
		}
		if qs, ok := byIndustry[defaultIndustry]; ok {
			return clone(qs)
		}
	}
	return clone(bank[ModeBehavioral][defaultIndustry])
}

func clone(qs []string) []string {
	out := make([]string, len(qs))
	copy(out, qs)
	return out
}
