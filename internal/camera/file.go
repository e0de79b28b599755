package camera

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"

	"github.com/MKhiriev/go-face-register/internal/logger"
)

// fileSource reads frames from a snapshot file that an external MJPEG writer
// keeps overwriting (e.g. /dev/shm/mjpeg/cam.jpg).
type fileSource struct {
	path   string
	logger *logger.Logger
}

// NewFileSource returns a Source reading the snapshot at path.
func NewFileSource(path string, log *logger.Logger) Source {
	return &fileSource{path: path, logger: log}
}

func (s *fileSource) Name() string {
	return "file:" + s.path
}

// Open checks that the snapshot exists and is readable.
func (s *fileSource) Open(ctx context.Context) (Stream, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, classifyFileError(s.path, err)
	}
	if err = f.Close(); err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("failed to close snapshot probe")
	}

	return &fileStream{path: s.path}, nil
}

func classifyFileError(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrNoDevice, path)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s", ErrPermissionDenied, path)
	default:
		return fmt.Errorf("%w: %w", ErrCameraUnavailable, err)
	}
}

type fileStream struct {
	path   string
	closed bool
}

func (s *fileStream) Frame(ctx context.Context) (image.Image, error) {
	if s.closed {
		return nil, ErrStreamClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoFrame, err)
	}

	return decodeFrame(data)
}

func (s *fileStream) Close() error {
	s.closed = true
	return nil
}
