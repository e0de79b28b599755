// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging flags, environment variables, an optional JSON file and the
// built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Camera selects and configures the frame source and drawing surface.
	Camera Camera `envPrefix:"CAMERA_"`

	// Capture controls the capture loop.
	Capture Capture `envPrefix:"CAPTURE_"`

	// Adapter holds the registration endpoint settings used by the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds database settings: the upload journal for the client,
	// the registrations table for the receiver.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen settings of the registration receiver.
	Server Server `envPrefix:"SERVER_"`

	// UI selects how the client presents progress and results.
	UI UI `envPrefix:"UI_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values.
type App struct {
	// Version is the semantic version reported by the receiver index route.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Camera configures where frames come from and how they are exported.
type Camera struct {
	// Source is the frame source kind: file, http, websocket, pattern or
	// device.
	// Env: CAMERA_SOURCE
	Source string `env:"SOURCE"`

	// Device is the source-specific locator: a snapshot file path, a
	// snapshot URL, a websocket URL or a numeric device id.
	// Env: CAMERA_DEVICE
	Device string `env:"DEVICE"`

	// Width and Height are the fixed drawing surface dimensions.
	// Env: CAMERA_WIDTH, CAMERA_HEIGHT
	Width  int `env:"WIDTH"`
	Height int `env:"HEIGHT"`

	// JPEGQuality is the export quality in [1, 100].
	// Env: CAMERA_JPEG_QUALITY
	JPEGQuality int `env:"JPEG_QUALITY"`
}

// Capture controls the sequential capture loop.
type Capture struct {
	// FrameCount is the number of frames captured per session.
	// Env: CAPTURE_FRAME_COUNT
	FrameCount int `env:"FRAME_COUNT"`

	// FrameDelay is the pause between captures for sources that cannot
	// signal frame readiness.
	// Env: CAPTURE_FRAME_DELAY
	FrameDelay time.Duration `env:"FRAME_DELAY"`

	// FrameTimeout bounds the wait for a frame-ready signal.
	// Env: CAPTURE_FRAME_TIMEOUT
	FrameTimeout time.Duration `env:"FRAME_TIMEOUT"`

	// EmptyFramePolicy decides what happens when an export yields no data:
	// fail, skip or include.
	// Env: CAPTURE_EMPTY_FRAME_POLICY
	EmptyFramePolicy string `env:"EMPTY_FRAME_POLICY"`
}

// Adapter holds the registration endpoint settings.
type Adapter struct {
	// HTTPAddress is the base URL of the registration receiver
	// (e.g. "http://localhost:3000"). A missing scheme defaults to http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RegisterPath is the upload route appended to HTTPAddress.
	// Env: ADAPTER_REGISTER_PATH
	RegisterPath string `env:"REGISTER_PATH"`

	// RequestTimeout bounds the upload request. Zero means no timeout.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups database settings. The client only reads Journal and the
// receiver only reads DB.
type Storage struct {
	DB      DB      `envPrefix:"DB_"`
	Journal Journal `envPrefix:"JOURNAL_"`
}

// DB holds the receiver's PostgreSQL connection string. An empty DSN makes
// the receiver keep registrations in memory.
type DB struct {
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Journal locates the client's SQLite upload journal. An empty Path
// disables the journal.
type Journal struct {
	// Env: STORAGE_JOURNAL_PATH
	Path string `env:"PATH"`
}

// Server holds the receiver listen settings.
type Server struct {
	// HTTPAddress is the TCP address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the read/write timeout of the HTTP server.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// UI selects the client presentation.
type UI struct {
	// Mode is "plain" (stdout/stderr) or "tui" (interactive terminal UI).
	// Env: UI_MODE
	Mode string `env:"MODE"`
}

// GetStructuredConfig loads, merges and validates the configuration from all
// available sources using the process arguments.
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder(args).
		withFlags().
		withEnv().
		withJSON().
		withDefaults().
		build()
}
