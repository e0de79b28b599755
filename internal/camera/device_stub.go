//go:build !gocv

package camera

import (
	"fmt"

	"github.com/MKhiriev/go-face-register/internal/logger"
)

// NewDeviceSource reports that local webcams need a binary built with the
// gocv tag (and OpenCV installed).
func NewDeviceSource(device string, _, _ int, _ *logger.Logger) (Source, error) {
	return nil, fmt.Errorf("%w: device %q requires a build with -tags gocv", ErrNoDevice, device)
}
