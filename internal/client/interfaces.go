// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-face-register/internal/service"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// Presenter is a session presenter that also owns the session goroutine.
// It is implemented by *tui.Plain and *tui.TUI.
type Presenter interface {
	service.Presenter

	// Run executes session and returns its error once the presenter is done.
	Run(ctx context.Context, session func(ctx context.Context) error) error
}
