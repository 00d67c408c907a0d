package interview

import (
	"math/rand"

	"github.com/abhisek/intervu/internal/analysis"
	"github.com/abhisek/intervu/internal/followup"
)

// HandleAnswer runs the classifier, scorer, and follow-up selector for the
// answer to the current question, records the turn, and nudges the
// interviewer mode from the detected confidence. It returns the new state
// and the recorded turn.
func HandleAnswer(s State, answer string, rng *rand.Rand) (State, Turn) {
	question := s.CurrentQuestion()
	if question == "" {
		return s, Turn{}
	}

	confidence := analysis.Confidence(answer)
	topics := analysis.ExtractTopics(answer)
	feedback := analysis.Evaluate(answer, s.HasSpeechImpairment, s.HasVisualImpairment, rng)

	turn := Turn{
		Question:   question,
		Answer:     answer,
		Feedback:   feedback,
		Confidence: confidence,
		Topics:     topics,
		FollowUp:   followup.Select(question, answer, confidence, topics, s.Interviewer, rng),
		Scores:     analysis.ScoreAnswer(answer, feedback, rng),
	}

	// Re-answering after navigating back replaces the recorded turn, so
	// each question carries at most one turn and feedback always reflects
	// the latest answer.
	turns := append([]Turn(nil), s.Turns...)
	replaced := false
	for i := range turns {
		if turns[i].Question == question {
			turns[i] = turn
			replaced = true
			break
		}
	}
	if !replaced {
		turns = append(turns, turn)
	}
	s.Turns = turns

	s.Interviewer = nudgeInterviewer(s, confidence)
	s.Phase = PhaseFeedback
	return s, turn
}

// RecordFollowUpAnswer attaches the follow-up answer to the current
// question's turn.
func RecordFollowUpAnswer(s State, answer string) State {
	question := s.CurrentQuestion()
	turns := append([]Turn(nil), s.Turns...)
	for i := range turns {
		if turns[i].Question == question {
			turns[i].FollowUpAnswer = answer
			s.Turns = turns
			return s
		}
	}
	return s
}

// nudgeInterviewer adjusts the interviewer mode from detected confidence:
// low backs off to supportive, high leans into challenging, medium leaves
// the current setting alone. A manual setting pins the mode.
func nudgeInterviewer(s State, confidence analysis.Level) followup.Mode {
	if s.ManualInterviewer {
		return s.Interviewer
	}
	switch confidence {
	case analysis.LevelLow:
		return followup.ModeSupportive
	case analysis.LevelHigh:
		return followup.ModeChallenging
	default:
		return s.Interviewer
	}
}

// SetInterviewer applies a manual interviewer-mode choice, which pins the
// mode against future auto-nudges.
func SetInterviewer(s State, mode followup.Mode) State {
	s.Interviewer = mode
	s.ManualInterviewer = true
	return s
}

// Next advances to the next question. The index never leaves
// [0, len(Questions)); stepping past the last question ends the session.
func Next(s State) State {
	if s.Index+1 >= len(s.Questions) {
		s.Phase = PhaseDone
		return s
	}
	s.Index++
	s.Phase = PhaseAsking
	return s
}

// Prev steps back to the previous question, clamped at the first.
func Prev(s State) State {
	if s.Index > 0 {
		s.Index--
	}
	s.Phase = PhaseAsking
	return s
}

// TogglePause flips the paused flag.
func TogglePause(s State) State {
	s.Paused = !s.Paused
	return s
}
