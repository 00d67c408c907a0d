package analysis

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// padTo extends s with neutral ASCII filler so the answer reaches exactly n
// characters without introducing new keyword matches.
func padTo(s string, n int) string {
	filler := " and so on and so on"
	for len(s) < n {
		s += filler
	}
	return s[:n]
}

func TestConfidence_HighRequiresAllThree(t *testing.T) {
	long := padTo("We shipped that as a team effort across the quarter", 101)
	if got := Confidence(long); got != LevelHigh {
		t.Errorf("got %q, want %q for long answer with example cue", got, LevelHigh)
	}
}

func TestConfidence_BoundaryLengths(t *testing.T) {
	cases := []struct {
		name   string
		answer string
		want   Level
	}{
		{"len 49 is low", padTo("we worked on it slowly", 49), LevelLow},
		{"len 50 is medium", padTo("we worked on it slowly", 50), LevelMedium},
		{"len 100 with cue is medium", padTo("our team worked on it", 100), LevelMedium},
		{"len 101 with cue is high", padTo("our team worked on it", 101), LevelHigh},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if len(tc.answer) != 49 && len(tc.answer) != 50 && len(tc.answer) != 100 && len(tc.answer) != 101 {
				t.Fatalf("fixture has unexpected length %d", len(tc.answer))
			}
			if got := Confidence(tc.answer); got != tc.want {
				t.Errorf("got %q, want %q (len %d)", got, tc.want, len(tc.answer))
			}
		})
	}
}

func TestConfidence_MultibyteAnswersCountCharacters(t *testing.T) {
	short := strings.TrimSpace(strings.Repeat("ответ ", 8))
	if n := utf8.RuneCountInString(short); n >= confidenceShortMax {
		t.Fatalf("fixture has %d characters, want under %d", n, confidenceShortMax)
	}
	if len(short) < confidenceShortMax {
		t.Fatalf("fixture has %d bytes, want at least %d", len(short), confidenceShortMax)
	}
	if got := Confidence(short); got != LevelLow {
		t.Errorf("got %q, want %q for a short multibyte answer", got, LevelLow)
	}

	hundred := "our team worked on it " + strings.Repeat("да", 39)
	if n := utf8.RuneCountInString(hundred); n != confidenceLongMin {
		t.Fatalf("fixture has %d characters, want exactly %d", n, confidenceLongMin)
	}
	if got := Confidence(hundred); got != LevelMedium {
		t.Errorf("got %q, want %q at the character boundary", got, LevelMedium)
	}
}

func TestConfidence_HesitationForcesLow(t *testing.T) {
	answer := padTo("um our team worked on the project for a long while", 120)
	if !strings.Contains(answer, "um ") {
		t.Fatal("fixture lost its hesitation cue")
	}
	if got := Confidence(answer); got != LevelLow {
		t.Errorf("got %q, want %q for hesitant long answer", got, LevelLow)
	}
}

func TestConfidence_LongWithoutExampleCueIsMedium(t *testing.T) {
	answer := padTo("things went well overall in that period of my career", 130)
	if got := Confidence(answer); got != LevelMedium {
		t.Errorf("got %q, want %q", got, LevelMedium)
	}
}

func TestConfidence_SpecScenarios(t *testing.T) {
	strong := "I led a team of 5 engineers and increased deployment speed by 40% after we struggled with a legacy pipeline"
	if got := Confidence(strong); got != LevelHigh {
		t.Errorf("got %q, want %q for the strong scenario", got, LevelHigh)
	}

	weak := "um I think maybe"
	if got := Confidence(weak); got != LevelLow {
		t.Errorf("got %q, want %q for the weak scenario", got, LevelLow)
	}
}

func TestHesitationCount(t *testing.T) {
	if got := HesitationCount("um well uh I guess maybe"); got < 3 {
		t.Errorf("got %d hesitations, want at least 3", got)
	}
	if got := HesitationCount("we delivered on schedule"); got != 0 {
		t.Errorf("got %d hesitations, want 0", got)
	}
}
