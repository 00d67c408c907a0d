package interview

import (
	"fmt"
	"time"

	"github.com/abhisek/intervu/internal/analysis"
	"github.com/abhisek/intervu/internal/followup"
)

// Summary aggregates a finished session for display and persistence.
type Summary struct {
	TotalQuestions int
	Answered       int

	Communication int
	Reasoning     int
	Readiness     int
	Overall       int

	StrongMoments       []string
	HesitationPoints    []string
	MissedOpportunities []string

	Duration time.Duration
}

// Summarize reduces the session's turns to aggregate scores and the three
// analysis lists. Averages are over answered turns only; an unanswered
// session yields zero scores and empty lists.
func Summarize(s State, now time.Time) Summary {
	sum := Summary{
		TotalQuestions: len(s.Questions),
		Answered:       len(s.Turns),
		Duration:       now.Sub(s.StartedAt),
	}
	if len(s.Turns) == 0 {
		return sum
	}

	for i, turn := range s.Turns {
		sum.Communication += turn.Scores.Communication
		sum.Reasoning += turn.Scores.Reasoning
		sum.Readiness += turn.Scores.Readiness

		n := i + 1
		if turn.Confidence == analysis.LevelHigh {
			sum.StrongMoments = append(sum.StrongMoments,
				fmt.Sprintf("Q%d: confident, well-grounded answer", n))
		}
		if cues := followup.Detect(turn.Answer); cues.Hesitations > 0 || turn.Confidence == analysis.LevelLow {
			sum.HesitationPoints = append(sum.HesitationPoints,
				fmt.Sprintf("Q%d: hesitant or thin answer, worth a second pass", n))
		}
		if !analysis.HasQuantification(turn.Answer) {
			sum.MissedOpportunities = append(sum.MissedOpportunities,
				fmt.Sprintf("Q%d: no measurable outcome mentioned", n))
		}
	}

	count := len(s.Turns)
	sum.Communication /= count
	sum.Reasoning /= count
	sum.Readiness /= count
	sum.Overall = (sum.Communication + sum.Reasoning + sum.Readiness) / 3
	return sum
}
