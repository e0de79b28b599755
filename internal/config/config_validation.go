// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
)

// Frame source kinds accepted in Camera.Source.
const (
	SourceFile      = "file"
	SourceHTTP      = "http"
	SourceWebSocket = "websocket"
	SourcePattern   = "pattern"
	SourceDevice    = "device"
)

// Empty-frame policies accepted in Capture.EmptyFramePolicy.
const (
	EmptyFrameFail    = "fail"
	EmptyFrameSkip    = "skip"
	EmptyFrameInclude = "include"
)

// UI modes accepted in UI.Mode.
const (
	UIModePlain = "plain"
	UIModeTUI   = "tui"
)

var (
	cameraSources      = []string{SourceFile, SourceHTTP, SourceWebSocket, SourcePattern, SourceDevice}
	emptyFramePolicies = []string{EmptyFrameFail, EmptyFrameSkip, EmptyFrameInclude}
	uiModes            = []string{UIModePlain, UIModeTUI}
)

// validate checks the enumerated fields of the merged config. Zero values are
// accepted here; the process views decide what is required.
func (cfg *StructuredConfig) validate() error {
	if cfg.Camera.Source != "" && !slices.Contains(cameraSources, cfg.Camera.Source) {
		return fmt.Errorf("%w: unknown source %q", ErrInvalidCameraConfigs, cfg.Camera.Source)
	}
	if cfg.Capture.EmptyFramePolicy != "" && !slices.Contains(emptyFramePolicies, cfg.Capture.EmptyFramePolicy) {
		return fmt.Errorf("%w: unknown empty frame policy %q", ErrInvalidCaptureConfigs, cfg.Capture.EmptyFramePolicy)
	}
	if cfg.UI.Mode != "" && !slices.Contains(uiModes, cfg.UI.Mode) {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidUIConfigs, cfg.UI.Mode)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Camera.Source == "" || cfg.Camera.Width <= 0 || cfg.Camera.Height <= 0 {
		return ErrInvalidCameraConfigs
	}
	if cfg.Camera.JPEGQuality < 1 || cfg.Camera.JPEGQuality > 100 {
		return fmt.Errorf("%w: jpeg quality %d out of range", ErrInvalidCameraConfigs, cfg.Camera.JPEGQuality)
	}

	if cfg.Capture.FrameCount <= 0 || cfg.Capture.FrameDelay < 0 || cfg.Capture.FrameTimeout < 0 {
		return ErrInvalidCaptureConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.UI.Mode == "" {
		return ErrInvalidUIConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
