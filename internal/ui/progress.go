package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// progressImpl picks animated or plain output per the headless state.
type progressImpl struct {
	theme    *Theme
	headless *HeadlessManager
	writer   io.Writer
}

// NewProgress creates a Progress writing to os.Stdout.
func NewProgress(theme *Theme, hm *HeadlessManager) Progress {
	return &progressImpl{theme: theme, headless: hm, writer: os.Stdout}
}

// newProgressImpl creates a progressImpl with a custom writer (for testing).
func newProgressImpl(theme *Theme, hm *HeadlessManager, w io.Writer) *progressImpl {
	return &progressImpl{theme: theme, headless: hm, writer: w}
}

func (p *progressImpl) plain() bool {
	return p.headless.IsHeadless() || p.theme.NoColor
}

// Start creates a determinate bar tracking total units of work. The
// scaffolding run uses one bar across its step table.
func (p *progressImpl) Start(title string, total int) ProgressBar {
	if p.plain() {
		return &headlessBar{title: title, total: total, writer: p.writer}
	}
	return &animatedBar{session: startSession(newStepBarModel(p.theme, title, total))}
}

// Spinner creates an indeterminate spinner for work without a known
// unit count, such as the release check.
func (p *progressImpl) Spinner(title string) Spinner {
	if p.plain() {
		s := &headlessSpinner{writer: p.writer}
		s.SetTitle(title)
		return s
	}
	return &animatedSpinner{session: startSession(newTaskSpinnerModel(p.theme, title))}
}

// Messages shared by both animated models.
type (
	retitleMsg string
	advanceMsg int
	finishMsg  struct{}
)

// teaSession owns a running bubbletea program and its one-shot shutdown.
type teaSession struct {
	program *tea.Program
	once    sync.Once
}

func startSession(m tea.Model) *teaSession {
	s := &teaSession{program: tea.NewProgram(m)}
	go func() {
		_, _ = s.program.Run()
	}()
	return s
}

func (s *teaSession) send(msg tea.Msg) {
	s.program.Send(msg)
}

// finish sends the terminal message and waits for the program to exit.
// Safe to call more than once.
func (s *teaSession) finish() {
	s.once.Do(func() {
		s.program.Send(finishMsg{})
		s.program.Wait()
	})
}

// stepBarModel animates the scaffolding step bar.
type stepBarModel struct {
	bar      progress.Model
	title    string
	finished int
	total    int
	quitting bool
}

func newStepBarModel(theme *Theme, title string, total int) stepBarModel {
	opts := []progress.Option{progress.WithWidth(40), progress.WithDefaultGradient()}
	if !theme.NoColor {
		opts = []progress.Option{
			progress.WithWidth(40),
			progress.WithGradient(theme.Colors.Primary, theme.Colors.Secondary),
		}
	}
	return stepBarModel{bar: progress.New(opts...), title: title, total: total}
}

func (m stepBarModel) Init() tea.Cmd {
	return nil
}

func (m stepBarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case retitleMsg:
		m.title = string(msg)
	case advanceMsg:
		m.finished += int(msg)
		if m.finished > m.total {
			m.finished = m.total
		}
	case finishMsg:
		m.finished = m.total
		m.quitting = true
		return m, tea.Quit
	case progress.FrameMsg:
		pm, cmd := m.bar.Update(msg)
		m.bar = pm.(progress.Model)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m stepBarModel) View() string {
	if m.quitting {
		return ""
	}
	ratio := 0.0
	if m.total > 0 {
		ratio = float64(m.finished) / float64(m.total)
	}
	return fmt.Sprintf("%s %d/%d %s\n", m.bar.ViewAs(ratio), m.finished, m.total, m.title)
}

// animatedBar implements ProgressBar on a running stepBarModel.
type animatedBar struct {
	session *teaSession
}

func (b *animatedBar) Increment(n int) {
	b.session.send(advanceMsg(n))
}

func (b *animatedBar) SetTitle(title string) {
	b.session.send(retitleMsg(title))
}

func (b *animatedBar) Done() {
	b.session.finish()
}

// taskSpinnerModel animates the indeterminate spinner.
type taskSpinnerModel struct {
	spinner  spinner.Model
	title    string
	quitting bool
}

func newTaskSpinnerModel(theme *Theme, title string) taskSpinnerModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	if !theme.NoColor {
		s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Primary))
	}
	return taskSpinnerModel{spinner: s, title: title}
}

func (m taskSpinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m taskSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case retitleMsg:
		m.title = string(msg)
	case finishMsg:
		m.quitting = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m taskSpinnerModel) View() string {
	if m.quitting {
		return ""
	}
	return m.spinner.View() + " " + m.title + "\n"
}

// animatedSpinner implements Spinner on a running taskSpinnerModel.
type animatedSpinner struct {
	session *teaSession
}

func (s *animatedSpinner) SetTitle(title string) {
	s.session.send(retitleMsg(title))
}

func (s *animatedSpinner) Stop() {
	s.session.finish()
}

// headlessBar logs one line per advance instead of animating.
type headlessBar struct {
	title    string
	total    int
	finished int
	writer   io.Writer
}

func (b *headlessBar) Increment(n int) {
	b.finished += n
	if b.finished > b.total {
		b.finished = b.total
	}
	b.logLine()
}

func (b *headlessBar) SetTitle(title string) {
	b.title = title
}

func (b *headlessBar) Done() {
	b.finished = b.total
	b.logLine()
}

func (b *headlessBar) logLine() {
	_, _ = fmt.Fprintf(b.writer, "[%d/%d] %s\n", b.finished, b.total, b.title)
}

// headlessSpinner prints each title as a log line.
type headlessSpinner struct {
	writer io.Writer
}

func (s *headlessSpinner) SetTitle(title string) {
	_, _ = fmt.Fprintf(s.writer, "%s\n", title)
}

func (s *headlessSpinner) Stop() {}
