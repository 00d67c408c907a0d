package analysis

import (
	"math/rand"
	"slices"
	"strings"
	"testing"
	"unicode/utf8"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestEvaluate_StrongScenario(t *testing.T) {
	answer := "I led a team of 5 engineers and increased deployment speed by 40% after we struggled with a legacy pipeline"
	res := Evaluate(answer, false, false, testRNG())

	if !slices.Contains(res.Strengths, strengthQuantified) {
		t.Errorf("strengths %v missing quantification sentence", res.Strengths)
	}
	if !slices.Contains(res.Strengths, strengthSpecific) {
		t.Errorf("strengths %v missing specific-example sentence", res.Strengths)
	}
	if slices.Contains(res.Improvements, improveStructure) {
		t.Errorf("improvements %v should not flag structure for a STAR answer", res.Improvements)
	}
}

func TestEvaluate_WeakScenario(t *testing.T) {
	res := Evaluate("um I think maybe", false, false, testRNG())

	if !slices.Contains(res.Improvements, improveDetail) {
		t.Errorf("improvements %v missing the detail sentence", res.Improvements)
	}
	if !slices.Contains(res.Improvements, improveTakeTime) {
		t.Errorf("improvements %v missing the take-your-time sentence", res.Improvements)
	}
}

func TestEvaluate_VeryShortAlwaysGetsTakeTime(t *testing.T) {
	for _, answer := range []string{"", "no", "we tried hard", "it was fine I guess"} {
		if len(answer) >= 30 {
			t.Fatalf("fixture %q too long", answer)
		}
		res := Evaluate(answer, false, false, testRNG())
		if !slices.Contains(res.Improvements, improveTakeTime) {
			t.Errorf("answer %q: improvements %v missing take-your-time sentence", answer, res.Improvements)
		}
	}
}

func TestEvaluate_MultibyteLengthCountsCharacters(t *testing.T) {
	answer := strings.TrimSpace(strings.Repeat("ответ ", 8))
	if n := utf8.RuneCountInString(answer); n >= lengthShort {
		t.Fatalf("fixture has %d characters, want under %d", n, lengthShort)
	}
	if len(answer) < lengthShort {
		t.Fatalf("fixture has %d bytes, want at least %d", len(answer), lengthShort)
	}

	res := Evaluate(answer, false, false, testRNG())
	if !slices.Contains(res.Improvements, improveDetail) {
		t.Errorf("improvements %v missing the detail sentence for a short multibyte answer", res.Improvements)
	}
	if slices.Contains(res.Improvements, improveTakeTime) {
		t.Errorf("improvements %v flag take-your-time above %d characters", res.Improvements, lengthVeryShort)
	}
}

func TestEvaluate_STARSentenceIffCue(t *testing.T) {
	with := Evaluate("I designed the rollout plan and tracked it weekly over two months", false, false, testRNG())
	if !slices.Contains(with.Strengths, strengthSTAR) {
		t.Errorf("strengths %v missing STAR sentence", with.Strengths)
	}

	without := Evaluate("The rollout plan was tracked weekly over two whole months", false, false, testRNG())
	if slices.Contains(without.Strengths, strengthSTAR) {
		t.Errorf("strengths %v must not contain STAR sentence", without.Strengths)
	}
}

func TestEvaluate_AccessibilitySentencesAreAdditive(t *testing.T) {
	answer := "I managed the migration for our team"
	plain := Evaluate(answer, false, false, testRNG())
	flagged := Evaluate(answer, true, true, testRNG())

	if len(flagged.Strengths) != len(plain.Strengths)+2 {
		t.Errorf("got %d strengths, want %d", len(flagged.Strengths), len(plain.Strengths)+2)
	}
	if len(flagged.Improvements) != len(plain.Improvements)+2 {
		t.Errorf("got %d improvements, want %d", len(flagged.Improvements), len(plain.Improvements)+2)
	}

	banned := []string{"pace", "articulat", "disab", "impair"}
	for _, s := range append(flagged.Strengths, flagged.Improvements...) {
		for _, word := range banned {
			if strings.Contains(strings.ToLower(s), word) {
				t.Errorf("sentence %q references %q", s, word)
			}
		}
	}
}

func TestComposeFeedback_Order(t *testing.T) {
	strengths := []string{"First strength.", "Second strength.", "Third strength."}
	improvements := []string{"First improvement.", "Second improvement."}

	short := composeFeedback("short answer", strengths, improvements)
	want := "First strength. Second strength. First improvement."
	if short != want {
		t.Errorf("got %q, want %q", short, want)
	}

	long := composeFeedback(strings.Repeat("x", 101), strengths, improvements)
	wantLong := "First strength. Second strength. First improvement. Second improvement."
	if long != wantLong {
		t.Errorf("got %q, want %q", long, wantLong)
	}
}

func TestComposeFeedback_DefaultWhenEmpty(t *testing.T) {
	if got := composeFeedback("anything", nil, nil); got != defaultEncouragement {
		t.Errorf("got %q, want default encouragement", got)
	}
}

func TestEmpatheticMessage_MembershipInCandidateSets(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		msg := empatheticMessage(ToneReflective, rng)

		openerOK := false
		for _, o := range empatheticOpeners {
			if strings.HasPrefix(msg, o) {
				openerOK = true
			}
		}
		closerOK := false
		for _, c := range empatheticClosers {
			if strings.HasSuffix(msg, c) {
				closerOK = true
			}
		}
		if !openerOK || !closerOK {
			t.Fatalf("message %q not assembled from the fixed candidate sets", msg)
		}
		if !strings.Contains(msg, toneClause(ToneReflective)) {
			t.Fatalf("message %q missing reflective clause", msg)
		}
	}
}

func TestToneClause_Buckets(t *testing.T) {
	if toneClause(ToneReflective) != toneClause(ToneHumble) {
		t.Error("reflective and humble must share a clause")
	}
	if toneClause(ToneConfident) != toneClause(ToneDetermined) {
		t.Error("confident and determined must share a clause")
	}
	if toneClause(ToneNeutral) != "" {
		t.Error("neutral must add no clause")
	}
}
