// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used to deliver captured batches to
// the registration receiver.
//
// [RegisterAdapter] hides the multipart encoding and the response handling
// from the service layer. The HTTP implementation ([NewHTTPRegisterAdapter])
// is built on resty. Errors are exposed as sentinels so callers can use
// [errors.Is]: [ErrUploadFailed] for transport failures and
// [ErrMalformedResponse] for bodies that are not valid JSON.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-face-register/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/register_adapter_mock.go -package=mock

// RegisterAdapter uploads one registration batch.
type RegisterAdapter interface {
	// Register POSTs req to endpoint as a multipart form: a "user_id" text
	// field followed by one "images" file part per image, in batch order,
	// named capture_<index>.jpg.
	//
	// Any HTTP status whose body is valid JSON is returned as a result. A
	// body that is not JSON yields an error wrapping ErrMalformedResponse;
	// a failed request yields an error wrapping ErrUploadFailed. Nothing is
	// retried.
	Register(ctx context.Context, endpoint string, req models.RegisterRequest) (models.RegisterResult, error)
}
