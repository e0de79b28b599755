package http

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/MKhiriev/go-face-register/internal/app"
	"github.com/MKhiriev/go-face-register/internal/logger"
	"github.com/MKhiriev/go-face-register/internal/utils"
	"github.com/MKhiriev/go-face-register/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, frames, err := decodeRegistration(w, r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("invalid registration upload")
		writeError(w, err)
		return
	}

	saved, err := h.services.RegistrationReceiver.Accept(r.Context(), userID, frames)
	if err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("registration rejected")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.RegisterResponse{
		Status:     app.StatusSuccess,
		UserID:     saved.UserID,
		FrameCount: saved.FrameCount,
		TotalBytes: saved.TotalBytes,
	}, http.StatusOK)
}

func (h *Handler) getRegistration(w http.ResponseWriter, r *http.Request) {
	userID, err := models.ParseSessionID(chi.URLParam(r, paramUserID))
	if err != nil {
		writeError(w, fmt.Errorf("%w: %w", ErrInvalidUserID, err))
		return
	}

	reg, err := h.services.RegistrationReceiver.Get(r.Context(), userID)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getRegistration").Msg("registration lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, reg, http.StatusOK)
}

// decodeRegistration reads the multipart upload and returns the user id and
// every "images" part in upload order. Parts keep their client-side file
// names and may be empty.
func decodeRegistration(w http.ResponseWriter, r *http.Request) (models.SessionID, []models.Frame, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return 0, nil, fmt.Errorf("%w: %w", ErrUploadTooLarge, err)
		}
		return 0, nil, fmt.Errorf("%w: %w", ErrInvalidMultipartForm, err)
	}
	defer r.MultipartForm.RemoveAll()

	values := r.MultipartForm.Value[models.FieldUserID]
	if len(values) == 0 {
		return 0, nil, fmt.Errorf("%w: field is missing", ErrInvalidUserID)
	}

	userID, err := models.ParseSessionID(values[0])
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %w", ErrInvalidUserID, err)
	}

	parts := r.MultipartForm.File[models.FieldImages]
	frames := make([]models.Frame, 0, len(parts))
	for i, fh := range parts {
		data, err := readPart(fh)
		if err != nil {
			return 0, nil, fmt.Errorf("%w: part %q: %w", ErrInvalidMultipartForm, fh.Filename, err)
		}
		frames = append(frames, models.Frame{
			UserID:   userID,
			Index:    i + 1,
			Filename: fh.Filename,
			Data:     data,
		})
	}

	return userID, frames, nil
}

func readPart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

func writeError(w http.ResponseWriter, err error) {
	resp := responseFromError(err)
	utils.WriteJSON(w, models.ErrorResponse{
		Status:  app.StatusError,
		Message: resp.message,
	}, resp.status)
}
