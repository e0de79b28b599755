// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the response wording shared by the registration
// receiver handlers.
//
// Status* values go into the "status" field of every JSON document the
// receiver answers with. Msg* values go into the "message" field of error
// documents and into log entries.
package app

const (
	// StatusSuccess marks an accepted request.
	StatusSuccess = "success"

	// StatusError marks a rejected request.
	StatusError = "error"
)

const (
	// MsgNoFramesFound is returned when an upload carries no "images" parts.
	MsgNoFramesFound = "No frames found"

	// MsgInvalidUserID is returned when "user_id" is missing or is not a
	// 16-bit signed integer.
	MsgInvalidUserID = "Invalid user_id"

	// MsgInvalidMultipartForm is returned when the request body is not a
	// readable multipart form.
	MsgInvalidMultipartForm = "Invalid multipart form"

	// MsgUserAlreadyRegistered is returned for a second upload with the same
	// user id.
	MsgUserAlreadyRegistered = "User already registered"

	MsgUploadTooLarge = "Upload too large"

	MsgMethodNotAllowed = "Method not allowed"

	MsgNotFound = "Not found"

	// MsgRegistrationNotFound is returned when no registration exists for
	// the requested user id.
	MsgRegistrationNotFound = "Registration not found"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error"
)
