package setup

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/intervu/internal/config"
	"github.com/abhisek/intervu/internal/followup"
	"github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/profile"
	"github.com/abhisek/intervu/internal/questionbank"
	"github.com/abhisek/intervu/internal/router"
	"github.com/abhisek/intervu/internal/screen"
	sessionscreen "github.com/abhisek/intervu/internal/screens/session"
	"github.com/abhisek/intervu/internal/speech"
	"github.com/abhisek/intervu/internal/store"
	"github.com/abhisek/intervu/internal/ui/components"
	"github.com/abhisek/intervu/internal/ui/layout"
	"github.com/abhisek/intervu/internal/ui/theme"
)

// Deps bundles the services the setup wizard hands to the session screen.
type Deps struct {
	Store       *store.Store
	Config      config.Config
	Profile     profile.Profile
	Speaker     speech.Speaker
	Transcriber speech.Transcriber
	Camera      speech.CameraSource
	Logger      zerolog.Logger
}

// wizard steps, in order
const (
	stepRole = iota
	stepIndustry
	stepMode
	stepInterviewer
	stepInputMethod
	stepVoiceOutput
	stepResume
	stepJobDescription
	stepConfirm
	stepCount
)

// SetupScreen walks through the session settings one step at a time.
type SetupScreen struct {
	deps Deps
	step int

	role        components.TextField
	industry    components.Picker
	mode        components.Picker
	interviewer components.Picker
	inputMethod components.Picker
	voiceOutput components.Picker
	resume      components.AnswerInput
	jobDesc     components.AnswerInput

	width int
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates the wizard with defaults taken from config and profile.
func New(deps Deps) *SetupScreen {
	modeOptions := make([]string, 0, len(questionbank.Modes()))
	for _, m := range questionbank.Modes() {
		modeOptions = append(modeOptions, string(m))
	}
	industryOptions := append([]string{"default"}, questionbank.Industries()...)

	s := &SetupScreen{
		deps:        deps,
		role:        components.NewTextField("e.g. Software Engineer", 60),
		industry:    components.NewPicker("Industry", industryOptions),
		mode:        components.NewPicker("Interview type", modeOptions),
		interviewer: components.NewPicker("Interviewer style", []string{
			string(followup.ModeSupportive),
			string(followup.ModeBalanced),
			string(followup.ModeChallenging),
		}),
		inputMethod: components.NewPicker("Answer input", []string{
			string(profile.InputText),
			string(profile.InputVoice),
		}),
		voiceOutput: components.NewPicker("Spoken questions", []string{"off", "on"}),
		resume:      components.NewAnswerInput("Paste your resume here, or leave empty...", 70, 8),
		jobDesc:     components.NewAnswerInput("Paste the job description, or leave empty...", 70, 6),
	}

	s.industry.Select(deps.Config.Interview.DefaultIndustry)
	s.mode.Select(deps.Config.Interview.DefaultMode)
	s.interviewer.Select(deps.Config.Interview.DefaultInterviewer)
	s.inputMethod.Select(string(deps.Profile.InputMethod))
	if deps.Profile.VoiceOutput {
		s.voiceOutput.Select("on")
	}

	return s
}

func (s *SetupScreen) Init() tea.Cmd {
	return s.role.Init()
}

func (s *SetupScreen) Title() string {
	return "New Interview"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	switch s.step {
	case stepRole:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Back"},
		}
	case stepResume, stepJobDescription:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next"},
			{Key: "Esc", Description: "Back"},
		}
	case stepConfirm:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start interview"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "←→", Description: "Change"},
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		inner := min(msg.Width-10, 70)
		if inner < 20 {
			inner = 20
		}
		s.resume.Resize(inner, 8)
		s.jobDesc.Resize(inner, 6)
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.forward(msg)
}

func (s *SetupScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if key == "esc" {
		if s.step == 0 {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		s.step--
		return s, nil
	}

	advance := key == "enter"
	if s.step == stepResume || s.step == stepJobDescription {
		// Enter inserts a newline in the paste areas; Tab moves on.
		advance = key == "tab"
	}

	if advance {
		if s.step == stepConfirm {
			return s.start()
		}
		s.step++
		return s, nil
	}

	return s.forward(msg)
}

// forward delivers the message to whichever input owns the current step.
func (s *SetupScreen) forward(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch s.step {
	case stepRole:
		s.role, cmd = s.role.Update(msg)
	case stepIndustry:
		s.industry, cmd = s.industry.Update(msg)
	case stepMode:
		s.mode, cmd = s.mode.Update(msg)
	case stepInterviewer:
		s.interviewer, cmd = s.interviewer.Update(msg)
	case stepInputMethod:
		s.inputMethod, cmd = s.inputMethod.Update(msg)
	case stepVoiceOutput:
		s.voiceOutput, cmd = s.voiceOutput.Update(msg)
	case stepResume:
		s.resume, cmd = s.resume.Update(msg)
	case stepJobDescription:
		s.jobDesc, cmd = s.jobDesc.Update(msg)
	}
	return s, cmd
}

// start persists the updated profile and replaces the wizard with a
// running session so Esc from the session does not land back here.
func (s *SetupScreen) start() (screen.Screen, tea.Cmd) {
	prof := s.deps.Profile
	prof.InputMethod = profile.InputMethod(s.inputMethod.Value())
	prof.VoiceOutput = s.voiceOutput.Value() == "on"

	if s.deps.Store != nil {
		if raw, err := profile.Encode(prof); err == nil {
			if err := s.deps.Store.ProfileRepo().Save(context.Background(), raw); err != nil {
				s.deps.Logger.Warn().Err(err).Msg("save profile")
			}
		}
	}

	cfg := interview.Config{
		Role:                strings.TrimSpace(s.role.Value()),
		Industry:            s.industry.Value(),
		Mode:                questionbank.Mode(s.mode.Value()),
		Interviewer:         followup.Mode(s.interviewer.Value()),
		Resume:              strings.TrimSpace(s.resume.Value()),
		JobDescription:      strings.TrimSpace(s.jobDesc.Value()),
		HasSpeechImpairment: prof.HasSpeechImpairment,
		HasVisualImpairment: prof.HasVisualImpairment,
	}

	next := sessionscreen.New(sessionscreen.Deps{
		Store:       s.deps.Store,
		Profile:     prof,
		Speaker:     s.deps.Speaker,
		Transcriber: s.deps.Transcriber,
		Camera:      s.deps.Camera,
		Logger:      s.deps.Logger,
	}, cfg)

	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Set up your interview"))
	b.WriteString("\n\n")

	steps := []string{
		"Role", "Industry", "Type", "Style", "Input", "Audio", "Resume", "Job", "Go",
	}
	var crumbs []string
	for i, label := range steps {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if i == s.step {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		crumbs = append(crumbs, style.Render(label))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		strings.Join(crumbs, lipgloss.NewStyle().Foreground(theme.Border).Render(" · "))))
	b.WriteString("\n\n\n")

	var body string
	switch s.step {
	case stepRole:
		body = theme.Body.Render("What role are you interviewing for?") +
			"\n\n" + s.role.View()
	case stepIndustry:
		body = s.industry.View(true)
	case stepMode:
		body = s.mode.View(true)
	case stepInterviewer:
		body = s.interviewer.View(true) +
			"\n\n" + theme.Hint.Render("The style also adapts to your answers during the session.")
	case stepInputMethod:
		body = s.inputMethod.View(true)
		if s.deps.Transcriber == nil {
			body += "\n\n" + theme.Hint.Render("Voice input needs an OpenAI API key and a recorder command.")
		}
	case stepVoiceOutput:
		body = s.voiceOutput.View(true)
		if s.deps.Speaker == nil {
			body += "\n\n" + theme.Hint.Render("Spoken questions need an OpenAI API key and a player command.")
		}
	case stepResume:
		body = theme.Body.Render("Resume (optional, used to tailor questions)") +
			"\n\n" + s.resume.View()
	case stepJobDescription:
		body = theme.Body.Render("Job description (optional)") +
			"\n\n" + s.jobDesc.View()
	case stepConfirm:
		role := strings.TrimSpace(s.role.Value())
		if role == "" {
			role = "(unspecified)"
		}
		lines := []string{
			"Role:         " + role,
			"Industry:     " + s.industry.Value(),
			"Type:         " + questionbank.Mode(s.mode.Value()).DisplayName(),
			"Style:        " + followup.Mode(s.interviewer.Value()).DisplayName(),
			"Input:        " + s.inputMethod.Value(),
			"Spoken:       " + s.voiceOutput.Value(),
		}
		body = theme.Body.Render(strings.Join(lines, "\n")) +
			"\n\n" + theme.Hint.Render("Press Enter to begin.")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, body))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
