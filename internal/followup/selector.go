package followup

import (
	"math/rand"

	"github.com/abhisek/intervu/internal/analysis"
)

// Type steers which candidate pool of follow-up questions is offered next.
type Type string

const (
	TypeDepth         Type = "depth"
	TypeClarification Type = "clarification"
	TypeSupportive    Type = "supportive"
	TypeChallenge     Type = "challenge"
	TypeHypothetical  Type = "hypothetical"
	TypeEvidence      Type = "evidence"
	TypeReflection    Type = "reflection"
)

// Mode is the interviewer's session-level tone setting.
type Mode string

const (
	ModeSupportive  Mode = "supportive"
	ModeBalanced    Mode = "balanced"
	ModeChallenging Mode = "challenging"
)

// DisplayName returns a human-readable label for the mode.
func (m Mode) DisplayName() string {
	switch m {
	case ModeSupportive:
		return "Supportive"
	case ModeBalanced:
		return "Balanced"
	case ModeChallenging:
		return "Challenging"
	default:
		return string(m)
	}
}

// supportiveHesitations is the hesitation count above which the interviewer
// backs off regardless of other cues.
const supportiveHesitations = 2

// typeRule is one step of the classification cascade. Rules run top to
// bottom and the first match wins; the order is load-bearing.
type typeRule struct {
	name    string
	applies func(in typeInput) (Type, bool)
}

type typeInput struct {
	answer     string
	cues       Cues
	confidence analysis.Level
	rng        *rand.Rand
}

// typeCascade is the fixed-priority rule list for resolving the follow-up
// type. The example-citation override is applied after the cascade, in
// Classify, and always takes precedence.
var typeCascade = []typeRule{
	{"hesitant-or-low", func(in typeInput) (Type, bool) {
		if in.cues.Hesitations > supportiveHesitations || in.confidence == analysis.LevelLow {
			return TypeSupportive, true
		}
		return "", false
	}},
	{"reflective-high", func(in typeInput) (Type, bool) {
		if in.cues.SelfReflection && in.confidence == analysis.LevelHigh {
			return TypeChallenge, true
		}
		return "", false
	}},
	{"pride", func(in typeInput) (Type, bool) {
		if in.cues.Pride {
			return TypeReflection, true
		}
		return "", false
	}},
	{"difficulty", func(in typeInput) (Type, bool) {
		if in.cues.Difficulty {
			return TypeEvidence, true
		}
		return "", false
	}},
	{"collaboration", func(in typeInput) (Type, bool) {
		if in.cues.Collaboration {
			return TypeDepth, true
		}
		return "", false
	}},
	{"learning", func(in typeInput) (Type, bool) {
		if in.cues.Learning {
			return TypeReflection, true
		}
		return "", false
	}},
	{"opinion", func(in typeInput) (Type, bool) {
		if opinionCue.MatchString(in.answer) {
			return TypeEvidence, true
		}
		return "", false
	}},
	{"causal", func(in typeInput) (Type, bool) {
		if causalCue.MatchString(in.answer) {
			return TypeDepth, true
		}
		return "", false
	}},
	{"high-confidence", func(in typeInput) (Type, bool) {
		if in.confidence == analysis.LevelHigh {
			if in.rng.Intn(2) == 0 {
				return TypeHypothetical, true
			}
			return TypeDepth, true
		}
		return "", false
	}},
}

// Classify resolves the follow-up type for an answer. The cascade runs
// first-match-wins; if an example citation is present the result is forced to
// reflection as the final step, overriding whatever the cascade chose.
func Classify(answer string, cues Cues, confidence analysis.Level, rng *rand.Rand) Type {
	in := typeInput{answer: answer, cues: cues, confidence: confidence, rng: rng}

	resolved := TypeDepth
	for _, rule := range typeCascade {
		if t, ok := rule.applies(in); ok {
			resolved = t
			break
		}
	}

	if exampleCitation.MatchString(answer) {
		return TypeReflection
	}
	return resolved
}

// Select returns one follow-up question for the answer. prevQuestion is
// accepted for interface completeness; the current rules do not consult it.
func Select(prevQuestion, answer string, confidence analysis.Level, topics []analysis.Topic, mode Mode, rng *rand.Rand) string {
	cues := Detect(answer)
	ftype := Classify(answer, cues, confidence, rng)
	pool := Pool(topics, ftype, mode)
	return pool[rng.Intn(len(pool))]
}

// Pool builds the de-duplicated candidate pool for the given topics, resolved
// type, and interviewer mode. The pool is always seeded with a generic
// fallback so it can never be empty.
func Pool(topics []analysis.Topic, ftype Type, mode Mode) []string {
	candidates := []string{genericFallback}

	// Topic-specific phrasing first, in extraction order.
	for _, topic := range topics {
		candidates = append(candidates, topicQuestions[topic]...)
	}

	candidates = append(candidates, typePool(ftype)...)

	switch mode {
	case ModeChallenging:
		candidates = append(candidates, challengeList...)
		candidates = append(candidates, hardProbes...)
	case ModeSupportive:
		candidates = append(candidates, reflectionList...)
		candidates = append(candidates, gentleProbes...)
	}

	seen := make(map[string]bool, len(candidates))
	pool := candidates[:0]
	for _, c := range candidates {
		if !seen[c] {
			seen[c] = true
			pool = append(pool, c)
		}
	}
	return pool
}

// typePool maps a resolved type to its candidate lists. Challenge draws from
// both the challenge and hypothetical lists; evidence and depth each pull in
// the clarification list as a second source.
func typePool(t Type) []string {
	switch t {
	case TypeDepth:
		return concat(depthList, clarificationList)
	case TypeClarification:
		return clarificationList
	case TypeSupportive:
		return supportiveList
	case TypeChallenge:
		return concat(challengeList, hypotheticalList)
	case TypeHypothetical:
		return hypotheticalList
	case TypeEvidence:
		return concat(evidenceList, clarificationList)
	case TypeReflection:
		return reflectionList
	default:
		return depthList
	}
}

func concat(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
