package questionbank

import (
	"fmt"
	"strings"
)

// keywordCategory pairs a skills category with the resume keywords that
// reveal it. Declaration order fixes the order of matched keywords.
type keywordCategory struct {
	name     string
	keywords []string
}

var keywordCategories = []keywordCategory{
	{"programming", []string{"python", "java", "golang", "javascript", "typescript", "sql", "rust", "c++"}},
	{"data", []string{"data analysis", "analytics", "statistics", "etl", "dashboards", "modeling"}},
	{"management", []string{"managed", "leadership", "team lead", "project management", "roadmap"}},
	{"communication", []string{"presentation", "stakeholder", "technical writing", "public speaking"}},
	{"design", []string{"ux", "ui", "figma", "wireframe", "prototyping"}},
	{"cloud", []string{"aws", "azure", "gcp", "kubernetes", "docker", "terraform"}},
	{"soft", []string{"mentoring", "problem solving", "adaptability", "negotiation"}},
}

var (
	outcomeWords    = []string{"achieved", "increased", "improved", "delivered", "award", "exceeded"}
	difficultyWords = []string{"challenge", "difficult", "problem", "struggle", "turnaround"}
)

// Splice positions: the generic experience questions land after canned
// question 0; role- and achievement-triggered questions land after original
// canned question 3. Fixed so test fixtures reproduce exactly.
const (
	spliceAfterFirst  = 1
	spliceAfterFourth = 4
)

// Augment scans the resume and job description for known skill keywords and,
// when any are found, splices synthesized questions into the canned list.
// Which questions appear is data-dependent; where they appear is not.
func Augment(canned []string, resume, jobDescription, role string) []string {
	text := strings.ToLower(resume + " " + jobDescription)

	var matched []string
	for _, cat := range keywordCategories {
		for _, kw := range cat.keywords {
			if strings.Contains(text, kw) {
				matched = append(matched, kw)
			}
		}
	}
	if len(matched) == 0 {
		return clone(canned)
	}

	var generic []string
	for _, kw := range matched {
		generic = append(generic, fmt.Sprintf("Tell me about your experience with %s.", kw))
		if len(generic) == 2 {
			break
		}
	}

	later := append(roleQuestions(role), achievementQuestions(strings.ToLower(resume))...)

	return splice(canned, generic, later)
}

// roleQuestions branches on the role string; the first matching branch wins.
func roleQuestions(role string) []string {
	lower := strings.ToLower(role)
	switch {
	case strings.Contains(lower, "software") || strings.Contains(lower, "developer"):
		return []string{
			"Walk me through a technically challenging piece of software you shipped.",
			"How do you keep your engineering skills current?",
		}
	case strings.Contains(lower, "data"):
		return []string{
			"Describe a dataset that surprised you and what you did about it.",
			"How do you communicate analytical findings to non-technical stakeholders?",
		}
	case strings.Contains(lower, "manager"):
		return []string{
			"Tell me about a time you had to deliver hard feedback.",
			"How do you balance delivery pressure against team health?",
		}
	}
	return nil
}

func achievementQuestions(resume string) []string {
	var qs []string
	if containsAny(resume, outcomeWords) {
		qs = append(qs, "Your resume mentions measurable results. Which one are you proudest of?")
	}
	if containsAny(resume, difficultyWords) {
		qs = append(qs, "Tell me about the hardest problem your resume hints at.")
	}
	return qs
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// splice inserts the generic group after canned[0] and the later group after
// original canned[3], preserving canned order around them.
func splice(canned, generic, later []string) []string {
	out := make([]string, 0, len(canned)+len(generic)+len(later))

	cutFirst := min(spliceAfterFirst, len(canned))
	cutFourth := min(spliceAfterFourth, len(canned))

	out = append(out, canned[:cutFirst]...)
	out = append(out, generic...)
	out = append(out, canned[cutFirst:cutFourth]...)
	out = append(out, later...)
	out = append(out, canned[cutFourth:]...)
	return out
}
