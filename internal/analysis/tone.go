package analysis

import "regexp"

// toneRule pairs a pattern with the tone it signals.
type toneRule struct {
	pattern *regexp.Regexp
	tone    Tone
	glyph   string
}

// toneRules is evaluated top to bottom; the first match wins, so the order
// is a priority list, not an arbitrary table.
var toneRules = []toneRule{
	{regexp.MustCompile(`(?i)\b(excit(ed|ing)|love[ds]?|passion(ate)?|thrill(ed|ing)|amazing)\b`), ToneEnthusiastic, "✨"},
	{regexp.MustCompile(`(?i)\b(learn(ed|t)?|realiz(e|ed)|looking back|in hindsight|reflect(ed|ion)?)\b`), ToneReflective, "🤔"},
	{regexp.MustCompile(`(?i)\b(confident|certain|definitely|i knew|no doubt)\b`), ToneConfident, "💪"},
	{regexp.MustCompile(`(?i)\b(lucky|fortunate|grateful|thanks to|humbl(ed|ing))\b`), ToneHumble, "🙏"},
	{regexp.MustCompile(`(?i)\b(persist(ed|ence)?|determin(ed|ation)|kept going|refused to give up|overcame|despite)\b`), ToneDetermined, "🔥"},
	{regexp.MustCompile(`(?i)\b(understood|listened|supported|empath(y|ize[d]?)|put myself in)\b`), ToneEmpathetic, "💙"},
}

// DetectTone returns the first tone whose pattern matches, with its glyph.
// If nothing matches, the tone is neutral and the glyph is NeutralGlyph.
func DetectTone(answer string) (Tone, string) {
	for _, r := range toneRules {
		if r.pattern.MatchString(answer) {
			return r.tone, r.glyph
		}
	}
	return ToneNeutral, NeutralGlyph
}
