package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-face-register/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	appTitle         = "FACE REGISTRATION"
	defaultBarWidth  = 40
	maxSourceWidth   = 48
	statusLingerTime = 2 * time.Second
)

// appModel mirrors the session stages: acquiring → capturing → uploading →
// done | failed.
type appModel struct {
	build models.AppBuildInfo

	stage  models.Stage
	source string
	done   int
	total  int

	spinner spinner.Model
	bar     progress.Model

	result *models.RegisterResult
	alert  *alertMsg
	err    error
	status string

	finished bool
	quitting bool

	copyFn func(string) error
}

func newAppModel(build models.AppBuildInfo) appModel {
	return appModel{
		build:   build,
		stage:   models.StageAcquiring,
		spinner: spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(defaultBarWidth)),
		copyFn:  clipboard.WriteAll,
	}
}

func (m appModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case stageMsg:
		m.stage = msg.stage
		return m, nil
	case streamBoundMsg:
		m.source = msg.source
		return m, nil
	case progressMsg:
		m.done, m.total = msg.done, msg.total
		return m, nil
	case responseMsg:
		result := msg.result
		m.result = &result
		return m, nil
	case alertMsg:
		m.dismissAlert()
		m.alert = &msg
		return m, nil
	case sessionDoneMsg:
		m.finished = true
		m.err = msg.err
		if msg.err != nil {
			m.stage = models.StageFailed
		}
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("copy failed: %v", msg.err)
		} else {
			m.status = "Copied!"
		}
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		m.bar.Width = min(max(msg.Width-8, 10), defaultBarWidth)
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.alert != nil {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.dismissAlert()
			return m, nil
		}
		if !key.Matches(msg, keys.quit) {
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, keys.quit):
		m.dismissAlert()
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.copy) && m.result != nil:
		return m, cmdCopyToClipboard(m.copyFn, m.result.Pretty)
	}

	return m, nil
}

// dismissAlert closes the open alert, unblocking the session waiting on it.
func (m *appModel) dismissAlert() {
	if m.alert == nil {
		return
	}
	close(m.alert.ack)
	m.alert = nil
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	if m.alert != nil {
		content := errorStyle.Render("Error") + "\n\n" + m.alert.text + "\n\n" + helpStyle.Render("enter / esc: dismiss")
		return appStyle.Render(overlayBoxStyle.Render(content))
	}

	var b strings.Builder

	b.WriteString(helpStyle.Render(renderBuildInfo(m.build)))
	b.WriteString("\n\n")

	if m.source != "" {
		b.WriteString("Camera: ")
		b.WriteString(fitText(m.source, maxSourceWidth))
		b.WriteString("\n")
	}

	b.WriteString(m.stageLine())
	b.WriteString("\n")

	if m.total > 0 {
		b.WriteString("\n")
		b.WriteString(m.bar.ViewAs(float64(m.done) / float64(m.total)))
		b.WriteString(fmt.Sprintf("  %d/%d\n", m.done, m.total))
	}

	if m.result != nil {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("HTTP %d\n", m.result.StatusCode))
		b.WriteString(responseStyle.Render(m.result.Pretty))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(humanizeError(m.err)))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return appStyle.Render(renderPage(appTitle, b.String(), m.helpLine()))
}

func (m appModel) stageLine() string {
	switch m.stage {
	case models.StageAcquiring:
		return m.spinner.View() + " Acquiring camera..."
	case models.StageCapturing:
		return "Capturing frames..."
	case models.StageUploading:
		return m.spinner.View() + " Uploading..."
	case models.StageDone:
		return successStyle.Render("Done")
	case models.StageFailed:
		return errorStyle.Render("Failed")
	}
	return string(m.stage)
}

func (m appModel) helpLine() string {
	if m.result != nil {
		return "c: copy response • q: quit"
	}
	return "q: quit"
}

func cmdCopyToClipboard(copyFn func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		if err := copyFn(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusLingerTime, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
