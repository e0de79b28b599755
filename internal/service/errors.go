package service

import "errors"

// Capture-and-upload pipeline errors.
var (
	// ErrCameraUnavailable is returned when the camera stream cannot be
	// acquired. Nothing is captured or uploaded afterwards.
	ErrCameraUnavailable = errors.New("camera access denied or not available")

	// ErrEmptyFrame is returned under the fail policy when a frame exports
	// to zero bytes.
	ErrEmptyFrame = errors.New("captured frame is empty")

	// ErrInvalidFrameCount is returned for a non-positive frame count.
	ErrInvalidFrameCount = errors.New("frame count must be positive")

	// ErrInvalidEmptyFramePolicy is returned for an unknown empty-frame
	// policy.
	ErrInvalidEmptyFramePolicy = errors.New("invalid empty frame policy")
)

// Receiver errors.
var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrNoFramesFound is returned when an upload carries no images.
	ErrNoFramesFound = errors.New("no frames found")

	ErrUserAlreadyRegistered = errors.New("user is already registered")

	ErrRegistrationNotFound = errors.New("registration not found")
)
