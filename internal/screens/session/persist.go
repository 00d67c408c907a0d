package session

import (
	"time"

	"github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/store"
)

// buildRecords maps a finished session onto the two persistence shapes:
// the compact score history row and the full replay. The replay's
// parallel arrays are indexed by answered turn, in answer order.
func buildRecords(st interview.State, sum interview.Summary, now time.Time) (store.HistoryEntry, store.SessionReplay) {
	entry := store.HistoryEntry{
		Date:          now,
		Mode:          string(st.Mode),
		Score:         sum.Overall,
		Communication: sum.Communication,
		Reasoning:     sum.Reasoning,
		Readiness:     sum.Readiness,
	}

	replay := store.SessionReplay{
		ID:       st.ID,
		Date:     now,
		Role:     st.Role,
		Industry: st.Industry,
		Mode:     string(st.Mode),
		Scores: store.ScoreSet{
			Overall:       sum.Overall,
			Communication: sum.Communication,
			Reasoning:     sum.Reasoning,
			Readiness:     sum.Readiness,
		},
		Analysis: store.ReplayAnalysis{
			StrongMoments:       sum.StrongMoments,
			HesitationPoints:    sum.HesitationPoints,
			MissedOpportunities: sum.MissedOpportunities,
		},
	}

	for _, turn := range st.Turns {
		replay.Questions = append(replay.Questions, turn.Question)
		replay.Answers = append(replay.Answers, turn.Answer)
		replay.FollowUps = append(replay.FollowUps, turn.FollowUp)
		replay.FollowUpAnswers = append(replay.FollowUpAnswers, turn.FollowUpAnswer)
		replay.Feedback = append(replay.Feedback, turn.Feedback.Feedback)
	}

	return entry, replay
}
