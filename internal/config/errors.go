package config

import "errors"

var (
	ErrInvalidCameraConfigs  = errors.New("invalid camera configs")
	ErrInvalidCaptureConfigs = errors.New("invalid capture configs")
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configs")
	ErrInvalidServerConfigs  = errors.New("invalid server configs")
	ErrInvalidUIConfigs      = errors.New("invalid ui configs")
)
