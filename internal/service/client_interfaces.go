package service

import (
	"context"
	"image"

	"github.com/MKhiriev/go-face-register/internal/camera"
	"github.com/MKhiriev/go-face-register/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// Surface is the fixed-size drawing surface frames are rendered onto before
// being exported. It is implemented by *canvas.Surface.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (width, height int)

	// DrawFrame renders img onto the whole surface, replacing its content.
	DrawFrame(img image.Image) error

	// ExportImage encodes the current content as JPEG. An empty result is
	// reported as canvas.ErrEmptyExport.
	ExportImage() ([]byte, error)
}

// SessionIDGenerator yields the per-session user id sent with an upload.
type SessionIDGenerator interface {
	Generate() models.SessionID
}

// EntryIDGenerator yields journal entry ids.
type EntryIDGenerator interface {
	Generate() string
}

// Preview shows the live camera stream to the operator.
type Preview interface {
	// BindStream attaches the opened stream of the named source.
	BindStream(source string, stream camera.Stream)
}

// Notifier raises user-visible alerts.
type Notifier interface {
	// Alert shows message and blocks until the operator dismisses it or ctx
	// is done.
	Alert(ctx context.Context, message string)
}

// ResponseDisplay renders the registration endpoint answer.
type ResponseDisplay interface {
	ShowResponse(result models.RegisterResult)
}

// ProgressObserver follows the session as it advances.
type ProgressObserver interface {
	// StageChanged is called when the session enters a new stage.
	StageChanged(stage models.Stage)

	// Progress is called after every captured frame.
	Progress(done, total int)
}

// Presenter bundles every sink the pipeline writes to. Both the plain and
// the interactive terminal UI implement it.
type Presenter interface {
	Preview
	Notifier
	ResponseDisplay
	ProgressObserver
}

// CaptureService grabs a batch of still frames from a live stream.
type CaptureService interface {
	// Capture reads n frames sequentially, rendering each onto the surface
	// and exporting it as JPEG. Frames are numbered from 1 in capture order.
	Capture(ctx context.Context, stream camera.Stream, n int) (models.ImageBatch, error)
}

// UploadService sends a captured batch to the registration endpoint.
type UploadService interface {
	// Upload posts batch with userID as one multipart request, shows the
	// prettified answer and returns it. Nothing is shown on failure.
	Upload(ctx context.Context, endpoint string, batch models.ImageBatch, userID models.SessionID) (models.RegisterResult, error)
}

// RegistrationService runs one complete capture-and-upload session.
type RegistrationService interface {
	// Run acquires the camera, generates a session id, captures the
	// configured number of frames and uploads them.
	Run(ctx context.Context) (models.RegisterResult, error)
}
