package session

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/intervu/internal/followup"
	"github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/profile"
	"github.com/abhisek/intervu/internal/questionbank"
	"github.com/abhisek/intervu/internal/screen"
	"github.com/abhisek/intervu/internal/speech"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func testScreen() *SessionScreen {
	return New(Deps{
		Profile: profile.Default(),
		Logger:  zerolog.Nop(),
	}, interview.Config{
		Role:        "Software Engineer",
		Industry:    "it",
		Mode:        questionbank.ModeHR,
		Interviewer: followup.ModeBalanced,
	})
}

func TestSessionScreen_Title(t *testing.T) {
	s := testScreen()
	if s.Title() != "Interview" {
		t.Errorf("Title = %q, want %q", s.Title(), "Interview")
	}
}

func TestSessionScreen_StatusShowsModeAndStyle(t *testing.T) {
	s := testScreen()
	status := s.Status()
	if !strings.Contains(status, "HR") {
		t.Errorf("status %q missing interview type", status)
	}
	if !strings.Contains(status, "Balanced") {
		t.Errorf("status %q missing interviewer style", status)
	}
}

func TestSessionScreen_EndConfirm(t *testing.T) {
	s := testScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ss := scr.(*SessionScreen)
	if !ss.confirmEnd {
		t.Error("expected end confirmation after Esc")
	}

	scr, _ = ss.Update(keyPress('n'))
	ss = scr.(*SessionScreen)
	if ss.confirmEnd {
		t.Error("expected confirmation dismissed after N")
	}
}

func TestSessionScreen_EndConfirmYesFinishes(t *testing.T) {
	s := testScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	scr, cmd := scr.Update(keyPress('y'))
	ss := scr.(*SessionScreen)

	if !ss.finished {
		t.Error("expected session marked finished")
	}
	if cmd == nil {
		t.Fatal("expected a persist command after confirming")
	}
	if _, ok := cmd().(persistedMsg); !ok {
		t.Error("expected persistedMsg from the finish command")
	}
}

func TestSessionScreen_SubmitMovesToFeedback(t *testing.T) {
	s := testScreen()
	s.input.SetValue("For example when I led the project at my last team we shipped the release two weeks early.")

	var scr screen.Screen = s
	scr, _ = scr.Update(ctrlKey('d'))
	ss := scr.(*SessionScreen)

	if ss.state.Phase != interview.PhaseFeedback {
		t.Errorf("phase = %v, want feedback", ss.state.Phase)
	}
	if ss.state.Answered() != 1 {
		t.Errorf("answered = %d, want 1", ss.state.Answered())
	}
	if ss.input.Value() != "" {
		t.Error("expected input cleared after submit")
	}
}

func TestSessionScreen_EmptySubmitIgnored(t *testing.T) {
	s := testScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(ctrlKey('d'))
	ss := scr.(*SessionScreen)

	if ss.state.Phase != interview.PhaseAsking {
		t.Error("expected empty answer to be ignored")
	}
}

func TestSessionScreen_FeedbackNextAdvances(t *testing.T) {
	s := testScreen()
	s.input.SetValue("I organized the release and it went fine.")

	var scr screen.Screen = s
	scr, _ = scr.Update(ctrlKey('d'))
	scr, _ = scr.Update(keyPress('n'))
	ss := scr.(*SessionScreen)

	if ss.state.Index != 1 {
		t.Errorf("index = %d, want 1", ss.state.Index)
	}
	if ss.state.Phase != interview.PhaseAsking {
		t.Error("expected asking phase after advancing")
	}
}

func TestSessionScreen_ManualStyleKeys(t *testing.T) {
	s := testScreen()
	s.input.SetValue("I organized the release and it went fine.")

	var scr screen.Screen = s
	scr, _ = scr.Update(ctrlKey('d'))
	scr, _ = scr.Update(keyPress('1'))
	ss := scr.(*SessionScreen)

	if ss.state.Interviewer != followup.ModeSupportive {
		t.Errorf("interviewer = %v, want supportive", ss.state.Interviewer)
	}
	if !ss.state.ManualInterviewer {
		t.Error("expected manual pin after explicit style choice")
	}
}

func TestSessionScreen_FollowUpFlow(t *testing.T) {
	s := testScreen()
	s.input.SetValue("I organized the release and it went fine.")

	var scr screen.Screen = s
	scr, _ = scr.Update(ctrlKey('d'))
	scr, _ = scr.Update(keyPress('a'))
	ss := scr.(*SessionScreen)
	if ss.state.Phase != interview.PhaseFollowUp {
		t.Fatalf("phase = %v, want follow-up", ss.state.Phase)
	}

	ss.input.SetValue("Mostly it came down to planning ahead.")
	scr, _ = ss.Update(ctrlKey('d'))
	ss = scr.(*SessionScreen)

	if ss.state.Phase != interview.PhaseFeedback {
		t.Errorf("phase = %v, want feedback after follow-up submit", ss.state.Phase)
	}
	if got := ss.state.Turns[0].FollowUpAnswer; got != "Mostly it came down to planning ahead." {
		t.Errorf("follow-up answer = %q", got)
	}
}

func TestSessionScreen_PauseBlocksInput(t *testing.T) {
	s := testScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(ctrlKey('p'))
	ss := scr.(*SessionScreen)
	if !ss.state.Paused {
		t.Fatal("expected paused state")
	}

	before := ss.input.Value()
	scr, _ = ss.Update(keyPress('x'))
	ss = scr.(*SessionScreen)
	if ss.input.Value() != before {
		t.Error("expected typing ignored while paused")
	}

	scr, _ = ss.Update(ctrlKey('p'))
	ss = scr.(*SessionScreen)
	if ss.state.Paused {
		t.Error("expected resume after second toggle")
	}
}

func TestSessionScreen_FinishAtLastQuestion(t *testing.T) {
	s := testScreen()

	var scr screen.Screen = s
	for i := 0; i < len(s.state.Questions); i++ {
		ss := scr.(*SessionScreen)
		ss.input.SetValue("I organized the release and it went fine.")
		scr, _ = ss.Update(ctrlKey('d'))
		scr, _ = scr.Update(keyPress('n'))
	}

	ss := scr.(*SessionScreen)
	if !ss.finished {
		t.Error("expected session finished after stepping past the last question")
	}
}

func TestSessionScreen_CameraToggle(t *testing.T) {
	s := testScreen()
	s.deps.Camera = &speech.MockCamera{}

	var scr screen.Screen = s
	scr, cmd := scr.Update(ctrlKey('t'))
	if cmd == nil {
		t.Fatal("expected an acquire command")
	}
	scr, _ = scr.Update(cmd())

	ss := scr.(*SessionScreen)
	if ss.camera == nil {
		t.Fatal("expected an active camera stream")
	}

	scr, _ = ss.Update(ctrlKey('t'))
	if scr.(*SessionScreen).camera != nil {
		t.Error("expected camera released after retoggle")
	}
}

func TestSessionScreen_CameraDenied(t *testing.T) {
	s := testScreen()
	s.deps.Camera = &speech.MockCamera{Deny: true}

	var scr screen.Screen = s
	scr, cmd := scr.Update(ctrlKey('t'))
	if cmd == nil {
		t.Fatal("expected an acquire command")
	}
	scr, _ = scr.Update(cmd())

	ss := scr.(*SessionScreen)
	if ss.camera != nil {
		t.Error("expected no stream on denial")
	}
	if !strings.Contains(ss.errMsg, "Camera access denied") {
		t.Errorf("errMsg = %q, want denial notice", ss.errMsg)
	}
}

func TestBuildRecords(t *testing.T) {
	st := interview.New(interview.Config{
		Role:     "Data Analyst",
		Industry: "finance",
		Mode:     questionbank.ModeBehavioral,
	})
	st.Turns = []interview.Turn{
		{Question: "Q one", Answer: "A one", FollowUp: "F one", FollowUpAnswer: "FA one"},
		{Question: "Q two", Answer: "A two", FollowUp: "F two"},
	}

	sum := interview.Summary{
		Overall:       82,
		Communication: 85,
		Reasoning:     80,
		Readiness:     81,
		StrongMoments: []string{"Q1: confident, well-grounded answer"},
	}

	now := time.Now()
	entry, replay := buildRecords(st, sum, now)

	if entry.Score != 82 || entry.Communication != 85 {
		t.Errorf("history entry scores = %+v", entry)
	}
	if entry.Mode != "behavioral" {
		t.Errorf("entry mode = %q, want %q", entry.Mode, "behavioral")
	}

	if replay.ID != st.ID || replay.Role != "Data Analyst" {
		t.Errorf("replay identity = %q/%q", replay.ID, replay.Role)
	}
	if len(replay.Questions) != 2 || len(replay.Answers) != 2 {
		t.Fatalf("replay arrays = %d questions, %d answers", len(replay.Questions), len(replay.Answers))
	}
	if replay.FollowUpAnswers[0] != "FA one" || replay.FollowUpAnswers[1] != "" {
		t.Errorf("follow-up answers = %v", replay.FollowUpAnswers)
	}
	if replay.Scores.Overall != 82 {
		t.Errorf("replay overall = %d, want 82", replay.Scores.Overall)
	}
	if len(replay.Analysis.StrongMoments) != 1 {
		t.Errorf("strong moments = %v", replay.Analysis.StrongMoments)
	}
}
