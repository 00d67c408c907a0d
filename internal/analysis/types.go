package analysis

// Level is the heuristic confidence label for an answer.
// It estimates how thorough and assured the answer reads; it is not a probability.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// DisplayName returns a human-readable label for the level.
func (l Level) DisplayName() string {
	switch l {
	case LevelLow:
		return "Low"
	case LevelMedium:
		return "Medium"
	case LevelHigh:
		return "High"
	default:
		return string(l)
	}
}

// Tone is the detected emotional tone of an answer.
type Tone string

const (
	ToneEnthusiastic Tone = "enthusiastic"
	ToneReflective   Tone = "reflective"
	ToneConfident    Tone = "confident"
	ToneHumble       Tone = "humble"
	ToneDetermined   Tone = "determined"
	ToneEmpathetic   Tone = "empathetic"
	ToneNeutral      Tone = "neutral"
)

// NeutralGlyph is shown when no tone rule matched.
const NeutralGlyph = "💬"

// Topic is a coarse subject-matter tag attached to an answer via keyword matching.
type Topic string

const (
	TopicLeadership    Topic = "leadership"
	TopicTechnical     Topic = "technical"
	TopicProblem       Topic = "problem"
	TopicAchievement   Topic = "achievement"
	TopicCollaboration Topic = "collaboration"
	TopicCommunication Topic = "communication"
	TopicLearning      Topic = "learning"
	TopicInnovation    Topic = "innovation"
)

// FeedbackResult is the full output of evaluating one answer.
// It is produced fresh per answer and never mutated afterwards.
type FeedbackResult struct {
	Feedback          string
	Strengths         []string
	Improvements      []string
	Tone              Tone
	ToneGlyph         string
	EmpatheticMessage string
}

// Scores holds the per-answer score breakdown (each 0-100).
type Scores struct {
	Communication int
	Reasoning     int
	Readiness     int
	Overall       int
}
