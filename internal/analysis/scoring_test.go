package analysis

import (
	"math/rand"
	"testing"
)

// zeroSource always jitters by the minimum, making the deterministic base visible.
type zeroSource struct{}

func (zeroSource) Int63() int64 { return 0 }
func (zeroSource) Seed(int64)   {}

func TestScoreAnswer_BasesAndBonuses(t *testing.T) {
	rng := rand.New(zeroSource{})

	// No strengths, many improvements, no STAR cue: bases only.
	flat := ScoreAnswer("hmm", FeedbackResult{Improvements: []string{"a", "b"}}, rng)
	if flat.Communication != 70 || flat.Reasoning != 65 || flat.Readiness != 70 {
		t.Errorf("got %+v, want bases 70/65/70", flat)
	}
	if flat.Overall != (70+65+70)/3 {
		t.Errorf("got overall %d, want mean of sub-scores", flat.Overall)
	}

	// All bonuses: >=2 strengths, STAR cue, <=1 improvement.
	full := ScoreAnswer("I built the tool", FeedbackResult{
		Strengths:    []string{"a", "b"},
		Improvements: []string{"only one"},
	}, rng)
	if full.Communication != 85 || full.Reasoning != 80 || full.Readiness != 80 {
		t.Errorf("got %+v, want 85/80/80", full)
	}
}

func TestScoreAnswer_JitterBoundedAndClamped(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	res := FeedbackResult{Strengths: []string{"a", "b"}, Improvements: nil}

	for i := 0; i < 200; i++ {
		s := ScoreAnswer("I led the replatforming", res, rng)
		checks := []struct {
			name      string
			val, base int
		}{
			{"communication", s.Communication, 85},
			{"reasoning", s.Reasoning, 80},
			{"readiness", s.Readiness, 80},
		}
		for _, c := range checks {
			if c.val < c.base || c.val >= c.base+scoreJitter || c.val > scoreMax {
				t.Fatalf("%s score %d outside [%d, %d)", c.name, c.val, c.base, c.base+scoreJitter)
			}
		}
	}
}
