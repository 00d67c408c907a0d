package followup

import (
	"regexp"

	"github.com/abhisek/intervu/internal/analysis"
)

// Cues are the linguistic signals the selector reads out of an answer.
type Cues struct {
	Pride          bool
	Difficulty     bool
	Collaboration  bool
	Learning       bool
	SelfReflection bool
	Hesitations    int
}

var (
	prideCue         = regexp.MustCompile(`(?i)\b(proud(est)?|accomplish(ed|ment)?|biggest win)\b`)
	difficultyCue    = regexp.MustCompile(`(?i)\b(difficult|challeng(e|ing)|struggl(e|ed|ing)|hard(est)?|setback)\b`)
	collaborationCue = regexp.MustCompile(`(?i)\b(team|together|colleague|partner|pair(ed)?)\b`)
	learningCue      = regexp.MustCompile(`(?i)\b(learn(ed|t)?|lesson|taught me)\b`)
	selfReflectCue   = regexp.MustCompile(`(?i)\b(i realized|looking back|in hindsight|on reflection)\b`)
	opinionCue       = regexp.MustCompile(`(?i)\bi (think|believe|felt)\b`)
	causalCue        = regexp.MustCompile(`(?i)\b(because|the reason|that'?s why)\b`)
	exampleCitation  = regexp.MustCompile(`(?i)\b(example|specific|instance|when i was|there was a time)\b`)
)

// Detect scans the answer for the selector's cue set. Hesitations reuses the
// classifier's hesitation alternation so the two stay in lockstep.
func Detect(answer string) Cues {
	return Cues{
		Pride:          prideCue.MatchString(answer),
		Difficulty:     difficultyCue.MatchString(answer),
		Collaboration:  collaborationCue.MatchString(answer),
		Learning:       learningCue.MatchString(answer),
		SelfReflection: selfReflectCue.MatchString(answer),
		Hesitations:    analysis.HesitationCount(answer),
	}
}
