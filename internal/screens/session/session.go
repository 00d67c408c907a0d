package session

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/intervu/internal/followup"
	"github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/profile"
	"github.com/abhisek/intervu/internal/router"
	"github.com/abhisek/intervu/internal/screen"
	"github.com/abhisek/intervu/internal/screens/summary"
	"github.com/abhisek/intervu/internal/speech"
	"github.com/abhisek/intervu/internal/store"
	"github.com/abhisek/intervu/internal/ui/components"
	"github.com/abhisek/intervu/internal/ui/layout"
)

// Deps bundles the services a running session needs.
type Deps struct {
	Store       *store.Store
	Profile     profile.Profile
	Speaker     speech.Speaker
	Transcriber speech.Transcriber
	Camera      speech.CameraSource
	Logger      zerolog.Logger
}

// SessionScreen drives one practice interview from first question to summary.
type SessionScreen struct {
	deps  Deps
	state interview.State
	rng   *rand.Rand

	input components.AnswerInput
	width int

	recording bool
	stopRec   speech.StopFunc
	partial   string

	camera io.Closer

	confirmEnd bool
	errMsg     string

	finished bool
	summ     interview.Summary
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.StatusProvider = (*SessionScreen)(nil)

// New starts a session from the wizard's configuration.
func New(deps Deps, cfg interview.Config) *SessionScreen {
	return &SessionScreen{
		deps:  deps,
		state: interview.New(cfg),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		input: components.NewAnswerInput("Type your answer...", 70, 6),
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	return tea.Batch(
		s.input.Init(),
		s.speakCurrentQuestion(),
	)
}

func (s *SessionScreen) Title() string {
	return "Interview"
}

// Status puts the interview type and current interviewer style in the header.
func (s *SessionScreen) Status() string {
	return fmt.Sprintf("%s · %s",
		s.state.Mode.DisplayName(), s.state.Interviewer.DisplayName())
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.confirmEnd {
		return []layout.KeyHint{
			{Key: "Y", Description: "End interview"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.state.Paused {
		return []layout.KeyHint{
			{Key: "Ctrl+P", Description: "Resume"},
		}
	}
	switch s.state.Phase {
	case interview.PhaseFeedback:
		return []layout.KeyHint{
			{Key: "N", Description: "Next"},
			{Key: "B", Description: "Back"},
			{Key: "A", Description: "Answer follow-up"},
			{Key: "1/2/3", Description: "Style"},
			{Key: "Esc", Description: "End"},
		}
	case interview.PhaseFollowUp:
		return []layout.KeyHint{
			{Key: "Ctrl+D", Description: "Submit"},
			{Key: "Esc", Description: "End"},
		}
	default:
		hints := []layout.KeyHint{
			{Key: "Ctrl+D", Description: "Submit"},
		}
		if s.deps.Transcriber != nil {
			if s.recording {
				hints = append(hints, layout.KeyHint{Key: "Ctrl+R", Description: "Stop recording"})
			} else {
				hints = append(hints, layout.KeyHint{Key: "Ctrl+R", Description: "Record"})
			}
		}
		if s.deps.Speaker != nil {
			hints = append(hints, layout.KeyHint{Key: "Ctrl+O", Description: "Hear question"})
		}
		if s.deps.Camera != nil {
			if s.camera != nil {
				hints = append(hints, layout.KeyHint{Key: "Ctrl+T", Description: "Camera off"})
			} else {
				hints = append(hints, layout.KeyHint{Key: "Ctrl+T", Description: "Camera"})
			}
		}
		hints = append(hints,
			layout.KeyHint{Key: "Ctrl+P", Description: "Pause"},
			layout.KeyHint{Key: "Esc", Description: "End"},
		)
		return hints
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		inner := msg.Width - 10
		if inner > 70 {
			inner = 70
		}
		if inner < 20 {
			inner = 20
		}
		s.input.Resize(inner, 6)
		return s, nil

	case speakDoneMsg:
		if msg.Err != nil {
			s.deps.Logger.Warn().Err(msg.Err).Msg("speak question")
		}
		return s, nil

	case recStartedMsg:
		return s.handleRecStarted(msg)

	case transcriptMsg:
		return s.handleTranscript(msg)

	case recClosedMsg:
		s.recording = false
		s.stopRec = nil
		s.partial = ""
		return s, nil

	case cameraMsg:
		if msg.Err != nil {
			s.deps.Logger.Warn().Err(msg.Err).Msg("acquire camera")
			s.errMsg = "Camera access denied"
			return s, nil
		}
		s.camera = msg.Stream
		s.errMsg = ""
		return s, nil

	case persistedMsg:
		if msg.Err != nil {
			s.deps.Logger.Error().Err(msg.Err).Msg("persist session")
		}
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summary.New(s.summ, s.state)}
		}

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.forwardToInput(msg)
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmEnd {
		switch key {
		case "y", "Y":
			s.confirmEnd = false
			return s.finish()
		case "n", "N", "esc":
			s.confirmEnd = false
		}
		return s, nil
	}

	if s.state.Paused {
		if key == "ctrl+p" || key == "p" {
			s.state = interview.TogglePause(s.state)
		}
		return s, nil
	}

	if key == "esc" {
		s.confirmEnd = true
		return s, nil
	}
	if key == "ctrl+p" {
		s.state = interview.TogglePause(s.state)
		return s, nil
	}
	if key == "ctrl+t" {
		return s.toggleCamera()
	}

	switch s.state.Phase {
	case interview.PhaseAsking:
		return s.handleAskingKey(key, msg)
	case interview.PhaseFeedback:
		return s.handleFeedbackKey(key)
	case interview.PhaseFollowUp:
		if key == "ctrl+d" {
			return s.submitFollowUp()
		}
		return s.forwardToInput(msg)
	}

	return s, nil
}

func (s *SessionScreen) handleAskingKey(key string, msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch key {
	case "ctrl+d":
		return s.submitAnswer()
	case "ctrl+r":
		return s.toggleRecording()
	case "ctrl+o":
		return s, s.speakText(s.state.CurrentQuestion())
	}
	return s.forwardToInput(msg)
}

func (s *SessionScreen) handleFeedbackKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "n", "enter":
		s.state = interview.Next(s.state)
		if s.state.Phase == interview.PhaseDone {
			return s.finish()
		}
		s.input.Reset()
		return s, s.speakCurrentQuestion()
	case "b":
		s.state = interview.Prev(s.state)
		s.input.Reset()
		return s, nil
	case "a":
		turn := s.state.CurrentTurn()
		if turn == nil || turn.FollowUp == "" {
			return s, nil
		}
		s.state.Phase = interview.PhaseFollowUp
		s.input.Reset()
		return s, s.input.Init()
	case "1":
		s.state = interview.SetInterviewer(s.state, followup.ModeSupportive)
	case "2":
		s.state = interview.SetInterviewer(s.state, followup.ModeBalanced)
	case "3":
		s.state = interview.SetInterviewer(s.state, followup.ModeChallenging)
	case "p":
		s.state = interview.TogglePause(s.state)
	}
	return s, nil
}

func (s *SessionScreen) forwardToInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.state.Paused || s.confirmEnd {
		return s, nil
	}
	if s.state.Phase != interview.PhaseAsking && s.state.Phase != interview.PhaseFollowUp {
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *SessionScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	answer := strings.TrimSpace(s.input.Value())
	if answer == "" {
		return s, nil
	}

	var cmds []tea.Cmd
	if s.recording {
		cmds = append(cmds, s.stopRecording())
	}

	st, turn := interview.HandleAnswer(s.state, answer, s.rng)
	s.state = st
	s.input.Reset()

	if s.deps.Profile.VoiceOutput && turn.FollowUp != "" {
		cmds = append(cmds, s.speakText(turn.FollowUp))
	}
	return s, tea.Batch(cmds...)
}

func (s *SessionScreen) submitFollowUp() (screen.Screen, tea.Cmd) {
	answer := strings.TrimSpace(s.input.Value())
	if answer == "" {
		return s, nil
	}
	s.state = interview.RecordFollowUpAnswer(s.state, answer)
	s.state.Phase = interview.PhaseFeedback
	s.input.Reset()
	return s, nil
}

// finish summarizes, persists, and hands off to the summary screen once
// the write completes.
func (s *SessionScreen) finish() (screen.Screen, tea.Cmd) {
	if s.finished {
		return s, nil
	}
	s.finished = true

	if s.stopRec != nil {
		s.stopRec()
	}
	if s.deps.Speaker != nil {
		s.deps.Speaker.Stop()
	}
	if s.camera != nil {
		s.camera.Close()
		s.camera = nil
	}

	now := time.Now()
	s.summ = interview.Summarize(s.state, now)

	st := s.deps.Store
	state := s.state
	summ := s.summ
	return s, func() tea.Msg {
		if st == nil {
			return persistedMsg{}
		}
		ctx := context.Background()
		entry, replay := buildRecords(state, summ, now)

		if err := st.HistoryRepo().Append(ctx, entry); err != nil {
			return persistedMsg{Err: err}
		}
		if err := st.ReplayRepo().Append(ctx, replay); err != nil {
			return persistedMsg{Err: err}
		}
		return persistedMsg{}
	}
}

// speakCurrentQuestion reads the active question aloud when voice output
// is enabled.
func (s *SessionScreen) speakCurrentQuestion() tea.Cmd {
	if !s.deps.Profile.VoiceOutput {
		return nil
	}
	return s.speakText(s.state.CurrentQuestion())
}

func (s *SessionScreen) speakText(text string) tea.Cmd {
	if s.deps.Speaker == nil || text == "" {
		return nil
	}
	speaker := s.deps.Speaker
	return func() tea.Msg {
		return speakDoneMsg{Err: speaker.Speak(context.Background(), text)}
	}
}

// toggleCamera acquires or releases the camera stream. Denial surfaces as
// transient status text; the user retoggles manually.
func (s *SessionScreen) toggleCamera() (screen.Screen, tea.Cmd) {
	if s.deps.Camera == nil {
		return s, nil
	}
	if s.camera != nil {
		if err := s.camera.Close(); err != nil {
			s.deps.Logger.Warn().Err(err).Msg("release camera")
		}
		s.camera = nil
		return s, nil
	}
	cam := s.deps.Camera
	return s, func() tea.Msg {
		stream, err := cam.Acquire(context.Background())
		return cameraMsg{Stream: stream, Err: err}
	}
}

func (s *SessionScreen) toggleRecording() (screen.Screen, tea.Cmd) {
	if s.deps.Transcriber == nil {
		return s, nil
	}
	if s.recording {
		return s, s.stopRecording()
	}
	tr := s.deps.Transcriber
	return s, func() tea.Msg {
		events, stop, err := tr.Stream(context.Background())
		return recStartedMsg{Events: events, Stop: stop, Err: err}
	}
}

// stopRecording asks the transcriber to finalize; the final transcript
// still arrives through the event channel before it closes.
func (s *SessionScreen) stopRecording() tea.Cmd {
	if s.stopRec != nil {
		s.stopRec()
	}
	return nil
}

func (s *SessionScreen) handleRecStarted(msg recStartedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.deps.Logger.Warn().Err(msg.Err).Msg("start recording")
		s.errMsg = "Voice input unavailable: " + msg.Err.Error()
		return s, nil
	}
	s.recording = true
	s.stopRec = msg.Stop
	s.errMsg = ""
	return s, listen(msg.Events)
}

func (s *SessionScreen) handleTranscript(msg transcriptMsg) (screen.Screen, tea.Cmd) {
	switch msg.Event.Kind {
	case speech.KindPartial:
		s.partial = msg.Event.Text
	case speech.KindFinal:
		s.partial = ""
		if msg.Event.Text != "" {
			existing := s.input.Value()
			if existing != "" && !strings.HasSuffix(existing, " ") {
				existing += " "
			}
			s.input.SetValue(existing + msg.Event.Text)
		}
	}
	return s, listen(msg.Events)
}

// listen waits for the next transcript event.
func listen(events <-chan speech.TranscriptEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return recClosedMsg{}
		}
		return transcriptMsg{Event: ev, Events: events}
	}
}
