package camera

import "errors"

var (
	// ErrCameraUnavailable is returned when the camera cannot be reached or
	// opened for a reason other than permissions or a missing device.
	ErrCameraUnavailable = errors.New("camera unavailable")

	// ErrPermissionDenied is returned when access to the camera is refused.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNoDevice is returned when no camera exists at the configured
	// location.
	ErrNoDevice = errors.New("no camera device")

	// ErrStreamClosed is returned by Frame after the stream was closed or
	// its connection dropped.
	ErrStreamClosed = errors.New("camera stream closed")

	// ErrNoFrame is returned when a frame could not be read or decoded.
	ErrNoFrame = errors.New("no frame available")

	// ErrUnknownSource is returned by NewSource for an unsupported kind.
	ErrUnknownSource = errors.New("unknown camera source")
)
