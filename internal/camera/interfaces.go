// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package camera provides the video sources the capture pipeline reads frames
// from.
//
// A [Source] is opened once per session and yields a live [Stream]. Streams
// that can tell when a new distinct frame has arrived also implement
// [FrameNotifier]; the capture loop waits on that signal instead of sleeping a
// fixed delay.
//
// Available sources: snapshot file, HTTP snapshot URL, websocket frame relay,
// synthetic test pattern and (with the gocv build tag) a local webcam.
package camera

import (
	"context"
	"image"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/camera_mock.go -package=mock

// Source acquires video-only camera streams.
type Source interface {
	// Open acquires the camera. Failures wrap one of ErrPermissionDenied,
	// ErrNoDevice or ErrCameraUnavailable.
	Open(ctx context.Context) (Stream, error)

	// Name describes the source for logs and the preview.
	Name() string
}

// Stream is a live camera stream.
type Stream interface {
	// Frame returns the most recent frame. It blocks until the first frame
	// is available.
	Frame(ctx context.Context) (image.Image, error)

	// Close releases the underlying device or connection.
	Close() error
}

// FrameNotifier is implemented by streams that signal when a new frame has
// arrived since the last call to Frame.
type FrameNotifier interface {
	FrameReady() <-chan struct{}
}
