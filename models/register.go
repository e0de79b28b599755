// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// Multipart field names of the registration upload.
const (
	FieldUserID = "user_id"
	FieldImages = "images"
)

// RegisterRequest is everything sent in one registration upload.
type RegisterRequest struct {
	UserID SessionID
	Images ImageBatch
}

// RegisterResult is the server answer to a registration upload.
type RegisterResult struct {
	// StatusCode is the HTTP status returned by the endpoint.
	StatusCode int

	// Body is the raw response document. It is always valid JSON.
	Body json.RawMessage

	// Pretty is Body re-indented with two spaces, ready for display.
	Pretty string
}

// Succeeded reports whether the endpoint answered with a 2xx status.
func (r RegisterResult) Succeeded() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Registration is the server-side record of an accepted upload. Image bytes
// are kept separately as [Frame] rows.
type Registration struct {
	UserID     SessionID `json:"user_id"`
	FrameCount int       `json:"frame_count"`
	TotalBytes int64     `json:"total_bytes"`
	CreatedAt  time.Time `json:"created_at"`
}

// Frame is one uploaded image part as stored by the receiver. Index is the
// 1-based position of the part in the upload.
type Frame struct {
	UserID   SessionID
	Index    int
	Filename string
	Data     []byte
}

// RegisterResponse is the JSON document the registration receiver answers
// with on success.
type RegisterResponse struct {
	Status     string    `json:"status"`
	UserID     SessionID `json:"user_id"`
	FrameCount int       `json:"frame_count"`
	TotalBytes int64     `json:"total_bytes"`
}

// ErrorResponse is the JSON document the registration receiver answers with
// on failure.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
