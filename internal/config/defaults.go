package config

import "time"

// Capture and camera defaults.
const (
	DefaultCameraSource     = "file"
	DefaultCameraDevice     = "/dev/shm/mjpeg/cam.jpg"
	DefaultWidth            = 640
	DefaultHeight           = 480
	DefaultJPEGQuality      = 92
	DefaultFrameCount       = 100
	DefaultFrameDelay       = 10 * time.Millisecond
	DefaultFrameTimeout     = time.Second
	DefaultEmptyFramePolicy = "fail"
)

// Transport and presentation defaults.
const (
	DefaultAdapterAddress       = "http://localhost:3000"
	DefaultRegisterPath         = "/register"
	DefaultServerAddress        = "localhost:3000"
	DefaultServerRequestTimeout = 30 * time.Second
	DefaultUIMode               = "plain"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Camera: Camera{
			Source:      DefaultCameraSource,
			Device:      DefaultCameraDevice,
			Width:       DefaultWidth,
			Height:      DefaultHeight,
			JPEGQuality: DefaultJPEGQuality,
		},
		Capture: Capture{
			FrameCount:       DefaultFrameCount,
			FrameDelay:       DefaultFrameDelay,
			FrameTimeout:     DefaultFrameTimeout,
			EmptyFramePolicy: DefaultEmptyFramePolicy,
		},
		Adapter: Adapter{
			HTTPAddress:  DefaultAdapterAddress,
			RegisterPath: DefaultRegisterPath,
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultServerRequestTimeout,
		},
		UI: UI{Mode: DefaultUIMode},
	}
}
