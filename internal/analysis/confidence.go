package analysis

import (
	"regexp"
	"unicode/utf8"
)

// Length thresholds (in characters) used by the confidence rule.
const (
	confidenceShortMax = 50
	confidenceLongMin  = 100
)

var (
	// hesitationCue matches filler words and uncertainty phrases.
	hesitationCue = regexp.MustCompile(`(?i)\b(um+|uh+|er+|hmm+|maybe|not sure|i guess|kind of|sort of|possibly)\b`)

	// exampleCue matches signals that the answer is grounded in a concrete case.
	exampleCue = regexp.MustCompile(`(?i)\b(for example|for instance|specifically|project|team|client|when i)\b`)
)

// Confidence classifies an answer as low, medium, or high.
//
// The rule is boundary-exact: high requires length strictly greater than 100
// AND an example cue AND no hesitation cue; low is length strictly below 50
// OR any hesitation cue; everything else is medium.
func Confidence(answer string) Level {
	hesitant := hesitationCue.MatchString(answer)
	length := utf8.RuneCountInString(answer)
	if length > confidenceLongMin && exampleCue.MatchString(answer) && !hesitant {
		return LevelHigh
	}
	if length < confidenceShortMax || hesitant {
		return LevelLow
	}
	return LevelMedium
}

// HasHesitation reports whether the answer contains a hesitation cue.
func HasHesitation(answer string) bool {
	return hesitationCue.MatchString(answer)
}

// HesitationCount returns the number of hesitation-cue matches in the answer.
func HesitationCount(answer string) int {
	return len(hesitationCue.FindAllString(answer, -1))
}
