package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/MKhiriev/go-face-register/internal/camera"
	"github.com/MKhiriev/go-face-register/models"
)

// Plain is the non-interactive presenter. Alerts go to the error writer,
// everything else to the output writer.
type Plain struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer
}

// NewPlain returns a presenter writing to os.Stdout and os.Stderr.
func NewPlain() *Plain {
	return NewPlainWithWriters(os.Stdout, os.Stderr)
}

func NewPlainWithWriters(out, errOut io.Writer) *Plain {
	return &Plain{out: out, errOut: errOut}
}

// Run runs the session in the calling goroutine.
func (p *Plain) Run(ctx context.Context, session func(ctx context.Context) error) error {
	return session(ctx)
}

func (p *Plain) BindStream(source string, _ camera.Stream) {
	p.printf(p.out, "Camera: %s\n", source)
}

// Alert prints message to the error writer. There is nothing to dismiss, so
// it returns immediately.
func (p *Plain) Alert(_ context.Context, message string) {
	p.printf(p.errOut, "%s\n", message)
}

func (p *Plain) ShowResponse(result models.RegisterResult) {
	p.printf(p.out, "%s\n", result.Pretty)
}

func (p *Plain) StageChanged(stage models.Stage) {
	switch stage {
	case models.StageAcquiring:
		p.printf(p.out, "Acquiring camera...\n")
	case models.StageCapturing:
		p.printf(p.out, "Capturing frames...\n")
	case models.StageUploading:
		p.printf(p.out, "Uploading...\n")
	}
}

func (p *Plain) Progress(done, total int) {
	if done == total {
		p.printf(p.out, "\rCaptured %d/%d\n", done, total)
		return
	}
	p.printf(p.out, "\rCaptured %d/%d", done, total)
}

func (p *Plain) printf(w io.Writer, format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(w, format, args...)
}
