//go:build gocv

package camera

import (
	"context"
	"fmt"
	"image"
	"strconv"
	"sync"

	"github.com/MKhiriev/go-face-register/internal/logger"
	"gocv.io/x/gocv"
)

// deviceSource captures from a local webcam through OpenCV.
type deviceSource struct {
	deviceID      int
	width, height int
	logger        *logger.Logger
}

// NewDeviceSource returns a Source for the webcam with the numeric id given in
// device ("" means 0).
func NewDeviceSource(device string, width, height int, log *logger.Logger) (Source, error) {
	id := 0
	if device != "" {
		var err error
		if id, err = strconv.Atoi(device); err != nil {
			return nil, fmt.Errorf("%w: device id %q is not a number", ErrNoDevice, device)
		}
	}

	return &deviceSource{deviceID: id, width: width, height: height, logger: log}, nil
}

func (s *deviceSource) Name() string {
	return "device:" + strconv.Itoa(s.deviceID)
}

func (s *deviceSource) Open(ctx context.Context) (Stream, error) {
	webcam, err := gocv.OpenVideoCapture(s.deviceID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoDevice, err)
	}
	if !webcam.IsOpened() {
		_ = webcam.Close()
		return nil, fmt.Errorf("%w: device %d did not open", ErrCameraUnavailable, s.deviceID)
	}

	webcam.Set(gocv.VideoCaptureFrameWidth, float64(s.width))
	webcam.Set(gocv.VideoCaptureFrameHeight, float64(s.height))
	s.logger.Info().Int("device", s.deviceID).Msg("webcam opened")

	return &deviceStream{webcam: webcam, mat: gocv.NewMat()}, nil
}

type deviceStream struct {
	mu     sync.Mutex
	webcam *gocv.VideoCapture
	mat    gocv.Mat
	closed bool
}

func (s *deviceStream) Frame(ctx context.Context) (image.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrStreamClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if ok := s.webcam.Read(&s.mat); !ok || s.mat.Empty() {
		return nil, ErrNoFrame
	}

	img, err := s.mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoFrame, err)
	}

	return img, nil
}

func (s *deviceStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	if err := s.mat.Close(); err != nil {
		return err
	}
	return s.webcam.Close()
}
