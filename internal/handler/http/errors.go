// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while decoding a registration upload. Callers can
// match against them with [errors.Is].
var (
	// ErrInvalidMultipartForm is returned when the request body cannot be
	// parsed as multipart/form-data.
	ErrInvalidMultipartForm = errors.New("invalid multipart form")

	// ErrUploadTooLarge is returned when the body exceeds the upload limit.
	ErrUploadTooLarge = errors.New("upload too large")

	// ErrInvalidUserID is returned when the "user_id" field is missing or is
	// not a 16-bit signed integer.
	ErrInvalidUserID = errors.New("invalid user_id")
)
