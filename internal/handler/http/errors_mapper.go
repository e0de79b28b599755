package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-face-register/internal/app"
	"github.com/MKhiriev/go-face-register/internal/service"
	"github.com/MKhiriev/go-face-register/internal/store"
)

type errorResponse struct {
	status  int
	message string
}

var errorResponses = []struct {
	target error
	errorResponse
}{
	{ErrInvalidMultipartForm, errorResponse{http.StatusBadRequest, app.MsgInvalidMultipartForm}},
	{ErrUploadTooLarge, errorResponse{http.StatusRequestEntityTooLarge, app.MsgUploadTooLarge}},
	{ErrInvalidUserID, errorResponse{http.StatusBadRequest, app.MsgInvalidUserID}},
	{service.ErrNoFramesFound, errorResponse{http.StatusBadRequest, app.MsgNoFramesFound}},
	{service.ErrUserAlreadyRegistered, errorResponse{http.StatusConflict, app.MsgUserAlreadyRegistered}},
	{store.ErrUserAlreadyRegistered, errorResponse{http.StatusConflict, app.MsgUserAlreadyRegistered}},
	{service.ErrRegistrationNotFound, errorResponse{http.StatusNotFound, app.MsgRegistrationNotFound}},
}

func responseFromError(err error) errorResponse {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}
