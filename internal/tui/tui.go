package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-face-register/internal/camera"
	"github.com/MKhiriev/go-face-register/internal/logger"
	"github.com/MKhiriev/go-face-register/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI is the interactive presenter. Session callbacks are forwarded to the
// Bubble Tea program with Program.Send.
type TUI struct {
	program *tea.Program
	logger  *logger.Logger
}

// New creates the interactive presenter. Extra program options (such as
// custom input and output) are passed to tea.NewProgram.
func New(build models.AppBuildInfo, logger *logger.Logger, opts ...tea.ProgramOption) *TUI {
	return &TUI{
		program: tea.NewProgram(newAppModel(build), opts...),
		logger:  logger,
	}
}

// Run starts the program and the session concurrently. The session is
// cancelled when the operator quits, and the program is stopped when ctx is
// done. The program stays open after the session ends so the response can be
// read and copied.
func (t *TUI) Run(ctx context.Context, session func(ctx context.Context) error) error {
	parent := ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sessionErr := make(chan error, 1)
	go func() {
		err := session(ctx)
		sessionErr <- err
		t.program.Send(sessionDoneMsg{err: err})
	}()

	go func() {
		<-ctx.Done()
		t.program.Quit()
	}()

	_, runErr := t.program.Run()
	cancel()
	err := <-sessionErr

	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		t.logger.Err(runErr).Msg("terminal ui stopped")
		return errors.Join(runErr, err)
	}

	if errors.Is(err, context.Canceled) && parent.Err() == nil {
		return ErrUserQuit
	}

	return err
}

// BindStream implements service.Preview.
func (t *TUI) BindStream(source string, _ camera.Stream) {
	t.program.Send(streamBoundMsg{source: source})
}

// Alert implements service.Notifier. It blocks until the overlay is
// dismissed or ctx is done.
func (t *TUI) Alert(ctx context.Context, message string) {
	ack := make(chan struct{})
	t.program.Send(alertMsg{text: message, ack: ack})

	select {
	case <-ack:
	case <-ctx.Done():
	}
}

// ShowResponse implements service.ResponseDisplay.
func (t *TUI) ShowResponse(result models.RegisterResult) {
	t.program.Send(responseMsg{result: result})
}

// StageChanged implements service.ProgressObserver.
func (t *TUI) StageChanged(stage models.Stage) {
	t.program.Send(stageMsg{stage: stage})
}

// Progress implements service.ProgressObserver.
func (t *TUI) Progress(done, total int) {
	t.program.Send(progressMsg{done: done, total: total})
}
