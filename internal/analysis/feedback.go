package analysis

import (
	"math/rand"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Detection predicates over the raw answer text. Each predicate independently
// contributes one fixed sentence to the strengths or improvements list.
var (
	starCue        = regexp.MustCompile(`(?i)\bi (led|managed|built|created|organized|developed|designed|implemented|launched|coordinated)\b`)
	quantification = regexp.MustCompile(`(?i)\d+\s*%|\b(increased|decreased|reduced|improved|saved|grew|doubled|tripled)\b`)
	specificExample = regexp.MustCompile(`(?i)\b(project|team|client|company|customer|product|initiative)\b`)
	connectives    = regexp.MustCompile(`(?i)\b(therefore|however|consequently|as a result|furthermore|on the other hand)\b`)
	emotionWords   = regexp.MustCompile(`(?i)\b(felt|excited|proud|enjoyed|passionate|nervous|relieved)\b`)
	learnedCue     = regexp.MustCompile(`(?i)\b(learned|learning|lesson)\b`)
	selfAwareCue   = regexp.MustCompile(`(?i)\b(i realized|i noticed|my weakness|i could have|next time|i should have)\b`)
	challengeCue   = regexp.MustCompile(`(?i)\b(challenge|difficult|problem|obstacle|struggled)\b`)
	resolutionCue  = regexp.MustCompile(`(?i)\b(solved|resolved|overcame|fixed|figured out|worked through)\b`)
	collaboration  = regexp.MustCompile(`(?i)\b(team|together|colleague|partner|we worked)\b`)
)

// Answer length thresholds (characters) for the length predicates.
const (
	lengthLong      = 150
	lengthShort     = 50
	lengthVeryShort = 30
	sweetSpotMin    = 50
	sweetSpotMax    = 80
)

// Fixed feedback sentences. The composer depends on the exact order in which
// these are appended, so the predicate order below is load-bearing.
const (
	strengthSTAR          = "You structured your answer around concrete actions you took, which reads like a clear story."
	strengthQuantified    = "Backing your answer with measurable results makes it convincing."
	strengthSpecific      = "Grounding the answer in a real project or team makes it credible."
	strengthDetailed      = "You gave a thorough, detailed answer."
	strengthConnectives   = "Your answer flows logically from point to point."
	strengthEmotion       = "Letting genuine emotion show makes the answer feel authentic."
	strengthGrowth        = "Showing what you learned about yourself signals a growth mindset."
	strengthProblemSolver = "Walking from a challenge to its resolution shows real problem solving."
	strengthCollaborative = "Highlighting how you worked with others is a strong signal."
	strengthConcise       = "Nice concise answer that stays on point."

	improveStructure = "Try framing the answer as situation, action, result."
	improveQuantify  = "Adding a number or a concrete outcome would make this stronger."
	improveSpecific  = "Mentioning a specific project, team, or client would ground the answer."
	improveDetail    = "A bit more detail would help the interviewer follow your thinking."
	improveTakeTime  = "Take your time. There is no rush, and a fuller answer is fine."

	defaultEncouragement = "Every answer is practice. Keep going and the polish will come."
)

// Accessibility sentences are strictly additive encouragement. They must not
// reference speech pace, articulation, or any judgement about disability.
const (
	strengthSpeechAccess = "You communicate your ideas clearly in your own way."
	improveSpeechAccess  = "Keep answering in whichever method feels most comfortable to you."
	strengthVisualAccess = "Your verbal structure paints a clear picture."
	improveVisualAccess  = "Lean on the audio cues whenever they help you keep your place."
)

// Empathetic wrapper candidates. Openers and closers are drawn uniformly at
// random; tests assert membership, not exact values.
var (
	empatheticOpeners = []string{
		"Thanks for sharing that.",
		"I appreciate the thought you put into that.",
		"That was good to hear.",
		"Thank you, that tells me a lot.",
		"Nice, let's build on that.",
	}
	empatheticClosers = []string{
		"Let's keep going.",
		"Ready for the next one when you are.",
		"You're doing well.",
		"Take a breath, then we'll continue.",
		"Keep that momentum.",
	}
)

// toneClause maps detected tones to the wrapper's middle clause.
// Reflective and humble share one clause, confident and determined another;
// neutral adds nothing.
func toneClause(tone Tone) string {
	switch tone {
	case ToneReflective, ToneHumble:
		return "I can tell you think carefully about your experiences."
	case ToneConfident, ToneDetermined:
		return "Your conviction comes through clearly."
	case ToneEnthusiastic:
		return "Your energy is contagious."
	case ToneEmpathetic:
		return "It is clear you care about the people you work with."
	default:
		return ""
	}
}

// HasSTARCue reports whether the answer contains a first-person action verb
// ("i led", "i built", ...). Used by both feedback assembly and scoring.
func HasSTARCue(answer string) bool {
	return starCue.MatchString(answer)
}

// HasQuantification reports whether the answer cites a percentage or an
// outcome verb.
func HasQuantification(answer string) bool {
	return quantification.MatchString(answer)
}

// Evaluate classifies a single answer and composes feedback for it.
// It is a pure function of its inputs plus rng, which feeds only the
// empathetic opener/closer picks.
func Evaluate(answer string, hasSpeechImpairment, hasVisualImpairment bool, rng *rand.Rand) FeedbackResult {
	var strengths, improvements []string

	add := func(ok bool, list *[]string, sentence string) {
		if ok {
			*list = append(*list, sentence)
		}
	}

	// Fixed priority order: STAR, quantification, specificity, length,
	// connectives, emotion, learning, challenge+resolution, collaboration,
	// sweet spot. Each predicate contributes to exactly one list.
	star := HasSTARCue(answer)
	add(star, &strengths, strengthSTAR)
	add(!star, &improvements, improveStructure)

	quant := HasQuantification(answer)
	add(quant, &strengths, strengthQuantified)
	add(!quant, &improvements, improveQuantify)

	specific := specificExample.MatchString(answer)
	add(specific, &strengths, strengthSpecific)
	add(!specific, &improvements, improveSpecific)

	length := utf8.RuneCountInString(answer)
	add(length > lengthLong, &strengths, strengthDetailed)
	add(length < lengthShort, &improvements, improveDetail)
	add(length < lengthVeryShort, &improvements, improveTakeTime)

	add(connectives.MatchString(answer), &strengths, strengthConnectives)
	add(emotionWords.MatchString(answer), &strengths, strengthEmotion)
	add(learnedCue.MatchString(answer) && selfAwareCue.MatchString(answer), &strengths, strengthGrowth)
	add(challengeCue.MatchString(answer) && resolutionCue.MatchString(answer), &strengths, strengthProblemSolver)
	add(collaboration.MatchString(answer), &strengths, strengthCollaborative)
	add(length >= sweetSpotMin && length <= sweetSpotMax, &strengths, strengthConcise)

	if hasSpeechImpairment {
		strengths = append(strengths, strengthSpeechAccess)
		improvements = append(improvements, improveSpeechAccess)
	}
	if hasVisualImpairment {
		strengths = append(strengths, strengthVisualAccess)
		improvements = append(improvements, improveVisualAccess)
	}

	tone, glyph := DetectTone(answer)

	return FeedbackResult{
		Feedback:          composeFeedback(answer, strengths, improvements),
		Strengths:         strengths,
		Improvements:      improvements,
		Tone:              tone,
		ToneGlyph:         glyph,
		EmpatheticMessage: empatheticMessage(tone, rng),
	}
}

// composeFeedback builds the feedback string in a fixed order: up to two
// strengths, then the first improvement, then the second improvement only
// when the answer is longer than 100 characters.
func composeFeedback(answer string, strengths, improvements []string) string {
	if len(strengths) == 0 && len(improvements) == 0 {
		return defaultEncouragement
	}

	var b strings.Builder
	if len(strengths) > 0 {
		b.WriteString(strengths[0])
		if len(strengths) > 1 {
			b.WriteString(" ")
			b.WriteString(strengths[1])
		}
	}
	if len(improvements) > 0 {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(improvements[0])
		if len(improvements) > 1 && utf8.RuneCountInString(answer) > confidenceLongMin {
			b.WriteString(" ")
			b.WriteString(improvements[1])
		}
	}
	return b.String()
}

// empatheticMessage wraps the feedback in a randomly chosen opener and
// closer, with a tone-specific clause in between.
func empatheticMessage(tone Tone, rng *rand.Rand) string {
	parts := []string{empatheticOpeners[rng.Intn(len(empatheticOpeners))]}
	if clause := toneClause(tone); clause != "" {
		parts = append(parts, clause)
	}
	parts = append(parts, empatheticClosers[rng.Intn(len(empatheticClosers))])
	return strings.Join(parts, " ")
}
