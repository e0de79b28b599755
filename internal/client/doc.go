// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the capture client runtime.
//
// It picks the presenter for the configured UI mode and runs one
// registration session inside it, cancelling the session on SIGINT.
package client
