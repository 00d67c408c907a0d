package interview

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/intervu/internal/analysis"
	"github.com/abhisek/intervu/internal/followup"
	"github.com/abhisek/intervu/internal/questionbank"
)

// Phase is the coarse stage of an interview session.
type Phase int

const (
	PhaseAsking   Phase = iota // question displayed, waiting for an answer
	PhaseFeedback              // feedback + follow-up displayed
	PhaseFollowUp              // follow-up answer being typed
	PhaseDone                  // all questions exhausted
)

// Turn records one answered question with everything derived from it.
type Turn struct {
	Question       string
	Answer         string
	Feedback       analysis.FeedbackResult
	Confidence     analysis.Level
	Topics         []analysis.Topic
	FollowUp       string
	FollowUpAnswer string
	Scores         analysis.Scores
}

// State is the full session state. It is a value: reducers return a modified
// copy so transitions stay auditable and testable without a rendering layer.
type State struct {
	ID       string
	Role     string
	Industry string
	Mode     questionbank.Mode

	// Interviewer is the tone setting; nudged automatically after each
	// answer and adjustable manually at any time.
	Interviewer followup.Mode

	// ManualInterviewer pins the interviewer mode against auto-nudges.
	ManualInterviewer bool

	Questions []string
	Index     int
	Paused    bool
	Phase     Phase

	HasSpeechImpairment bool
	HasVisualImpairment bool

	Turns     []Turn
	StartedAt time.Time
}

// Config carries everything needed to start a session.
type Config struct {
	Role           string
	Industry       string
	Mode           questionbank.Mode
	Interviewer    followup.Mode
	Resume         string
	JobDescription string

	HasSpeechImpairment bool
	HasVisualImpairment bool
}

// New builds a fresh session: canned questions for (mode, industry),
// augmented from the resume and job description when provided.
func New(cfg Config) State {
	questions := questionbank.Questions(cfg.Mode, cfg.Industry)
	if cfg.Resume != "" || cfg.JobDescription != "" {
		questions = questionbank.Augment(questions, cfg.Resume, cfg.JobDescription, cfg.Role)
	}

	interviewer := cfg.Interviewer
	if interviewer == "" {
		interviewer = followup.ModeBalanced
	}

	return State{
		ID:                  uuid.New().String(),
		Role:                cfg.Role,
		Industry:            cfg.Industry,
		Mode:                cfg.Mode,
		Interviewer:         interviewer,
		Questions:           questions,
		HasSpeechImpairment: cfg.HasSpeechImpairment,
		HasVisualImpairment: cfg.HasVisualImpairment,
		StartedAt:           time.Now(),
	}
}

// CurrentQuestion returns the question at the session index. The index
// invariant (0 <= Index < len(Questions)) is maintained by the reducers.
func (s State) CurrentQuestion() string {
	if s.Index < 0 || s.Index >= len(s.Questions) {
		return ""
	}
	return s.Questions[s.Index]
}

// CurrentTurn returns the recorded turn for the current question, or nil.
func (s State) CurrentTurn() *Turn {
	for i := range s.Turns {
		if s.Turns[i].Question == s.CurrentQuestion() {
			return &s.Turns[i]
		}
	}
	return nil
}

// Answered reports how many questions have recorded turns.
func (s State) Answered() int {
	return len(s.Turns)
}
