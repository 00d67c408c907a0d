package analysis

import "math/rand"

// Score bases and bonuses. Each score gets a uniform jitter in [0,15) and is
// clamped to 100, so the deterministic part is testable with a seeded rng.
const (
	baseCommunication = 70
	baseReasoning     = 65
	baseReadiness     = 70

	bonusStrengths = 15 // two or more strengths
	bonusSTAR      = 15 // STAR-like cue present
	bonusPolish    = 10 // at most one improvement

	scoreJitter = 15
	scoreMax    = 100
)

// ScoreAnswer derives the per-answer score breakdown from the answer text and
// its feedback result.
func ScoreAnswer(answer string, res FeedbackResult, rng *rand.Rand) Scores {
	communication := baseCommunication
	if len(res.Strengths) >= 2 {
		communication += bonusStrengths
	}

	reasoning := baseReasoning
	if HasSTARCue(answer) {
		reasoning += bonusSTAR
	}

	readiness := baseReadiness
	if len(res.Improvements) <= 1 {
		readiness += bonusPolish
	}

	communication = clampScore(communication + rng.Intn(scoreJitter))
	reasoning = clampScore(reasoning + rng.Intn(scoreJitter))
	readiness = clampScore(readiness + rng.Intn(scoreJitter))

	return Scores{
		Communication: communication,
		Reasoning:     reasoning,
		Readiness:     readiness,
		Overall:       (communication + reasoning + readiness) / 3,
	}
}

func clampScore(n int) int {
	if n > scoreMax {
		return scoreMax
	}
	return n
}
