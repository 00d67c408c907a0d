package followup

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/abhisek/intervu/internal/analysis"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestDetect_Cues(t *testing.T) {
	cues := Detect("I'm proudest of how the team learned from a difficult quarter")
	if !cues.Pride || !cues.Collaboration || !cues.Learning || !cues.Difficulty {
		t.Errorf("got %+v, want pride, collaboration, learning, difficulty all set", cues)
	}
	if cues.SelfReflection {
		t.Errorf("got self-reflection without a reflective phrase")
	}
}

func TestClassify_LowConfidenceIsSupportive(t *testing.T) {
	answer := "I'm proudest of the team work we did"
	got := Classify(answer, Detect(answer), analysis.LevelLow, testRNG())
	if got != TypeSupportive {
		t.Errorf("got %q, want %q: low confidence outranks pride", got, TypeSupportive)
	}
}

func TestClassify_HesitationCountIsSupportive(t *testing.T) {
	answer := "um uh hmm maybe we did something good because of the planning"
	got := Classify(answer, Detect(answer), analysis.LevelMedium, testRNG())
	if got != TypeSupportive {
		t.Errorf("got %q, want %q with %d hesitations", got, TypeSupportive, Detect(answer).Hesitations)
	}
}

func TestClassify_SelfReflectionWithHighIsChallenge(t *testing.T) {
	answer := "Looking back, the rollout held up well under pressure"
	got := Classify(answer, Detect(answer), analysis.LevelHigh, testRNG())
	if got != TypeChallenge {
		t.Errorf("got %q, want %q", got, TypeChallenge)
	}
}

func TestClassify_CascadeOrder(t *testing.T) {
	cases := []struct {
		name   string
		answer string
		conf   analysis.Level
		want   Type
	}{
		{"pride before difficulty", "I'm proudest of surviving a difficult launch", analysis.LevelMedium, TypeReflection},
		{"difficulty", "It was a difficult migration", analysis.LevelMedium, TypeEvidence},
		{"collaboration", "My colleague and I split the work", analysis.LevelMedium, TypeDepth},
		{"learning", "That project taught me patience", analysis.LevelMedium, TypeReflection},
		{"opinion", "I believe quality beats speed", analysis.LevelMedium, TypeEvidence},
		{"causal", "We shipped early because the scope was cut", analysis.LevelMedium, TypeDepth},
		{"default depth", "The migration went fine overall", analysis.LevelMedium, TypeDepth},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.answer, Detect(tc.answer), tc.conf, testRNG())
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestClassify_HighConfidenceRandomBranch(t *testing.T) {
	answer := "The migration went fine overall and nothing regressed"
	rng := rand.New(rand.NewSource(3))
	seen := map[Type]bool{}
	for i := 0; i < 100; i++ {
		seen[Classify(answer, Detect(answer), analysis.LevelHigh, rng)] = true
	}
	if !seen[TypeHypothetical] || !seen[TypeDepth] {
		t.Errorf("got %v, want both hypothetical and depth over 100 draws", seen)
	}
	for tp := range seen {
		if tp != TypeHypothetical && tp != TypeDepth {
			t.Errorf("unexpected type %q from the high-confidence branch", tp)
		}
	}
}

func TestClassify_ExampleCitationOverridesEverything(t *testing.T) {
	// Pride would normally win the cascade, but the citation forces reflection.
	answer := "I'm proudest of a specific launch, for example the billing rewrite"
	got := Classify(answer, Detect(answer), analysis.LevelMedium, testRNG())
	if got != TypeReflection {
		t.Errorf("got %q, want %q from the citation override", got, TypeReflection)
	}

	// The override also beats the supportive rule at low confidence.
	got = Classify(answer, Detect(answer), analysis.LevelLow, testRNG())
	if got != TypeReflection {
		t.Errorf("got %q, want %q even at low confidence", got, TypeReflection)
	}
}

func TestSelect_MemberOfRebuiltPool(t *testing.T) {
	answer := "My colleague and I rebuilt the deployment pipeline together"
	topics := analysis.ExtractTopics(answer)
	conf := analysis.Confidence(answer)

	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 50; i++ {
		got := Select("", answer, conf, topics, ModeBalanced, rng)
		if got == "" {
			t.Fatal("got empty follow-up")
		}

		// Rebuild pools for every type the cascade could have resolved to.
		member := false
		for _, tp := range []Type{TypeDepth, TypeClarification, TypeSupportive, TypeChallenge, TypeHypothetical, TypeEvidence, TypeReflection} {
			if slices.Contains(Pool(topics, tp, ModeBalanced), got) {
				member = true
			}
		}
		if !member {
			t.Fatalf("follow-up %q not in any constructible pool", got)
		}
	}
}

func TestSelect_NeverEmptyWithNoTopics(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 20; i++ {
		got := Select("", "ok", analysis.LevelLow, nil, ModeBalanced, rng)
		if got == "" {
			t.Fatal("got empty follow-up for a bare answer")
		}
	}
}

func TestPool_SeededAndDeduplicated(t *testing.T) {
	pool := Pool(nil, TypeChallenge, ModeChallenging)
	if !slices.Contains(pool, genericFallback) {
		t.Error("pool missing the generic fallback seed")
	}

	// Challenge list appears via both the type pool and the mode extras;
	// dedup must collapse it.
	seen := map[string]int{}
	for _, q := range pool {
		seen[q]++
	}
	for q, n := range seen {
		if n > 1 {
			t.Errorf("candidate %q appears %d times", q, n)
		}
	}
	for _, probe := range hardProbes {
		if !slices.Contains(pool, probe) {
			t.Errorf("challenging mode pool missing hard probe %q", probe)
		}
	}
}

func TestPool_SupportiveModeExtras(t *testing.T) {
	pool := Pool(nil, TypeDepth, ModeSupportive)
	for _, probe := range gentleProbes {
		if !slices.Contains(pool, probe) {
			t.Errorf("supportive mode pool missing gentle probe %q", probe)
		}
	}
	for _, q := range reflectionList {
		if !slices.Contains(pool, q) {
			t.Errorf("supportive mode pool missing reflection candidate %q", q)
		}
	}
}

func TestPool_TopicCandidatesInExtractionOrder(t *testing.T) {
	topics := []analysis.Topic{analysis.TopicTechnical, analysis.TopicCollaboration}
	pool := Pool(topics, TypeDepth, ModeBalanced)

	techIdx := slices.Index(pool, topicQuestions[analysis.TopicTechnical][0])
	collabIdx := slices.Index(pool, topicQuestions[analysis.TopicCollaboration][0])
	if techIdx == -1 || collabIdx == -1 {
		t.Fatalf("pool missing topic candidates: tech %d, collab %d", techIdx, collabIdx)
	}
	if techIdx > collabIdx {
		t.Errorf("technical candidates (%d) should precede collaboration (%d)", techIdx, collabIdx)
	}
}
