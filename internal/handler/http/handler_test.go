package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-face-register/internal/logger"
	"github.com/MKhiriev/go-face-register/internal/mock"
	"github.com/MKhiriev/go-face-register/internal/service"
	"github.com/MKhiriev/go-face-register/internal/store"
	"github.com/MKhiriev/go-face-register/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	appInfo  *mock.MockAppInfoService
	receiver *mock.MockRegistrationReceiver
	router   http.Handler
}

func newTestDeps(t *testing.T) testDeps {
	t.Helper()

	ctrl := gomock.NewController(t)
	deps := testDeps{
		appInfo:  mock.NewMockAppInfoService(ctrl),
		receiver: mock.NewMockRegistrationReceiver(ctrl),
	}
	h := NewHandler(&service.Services{
		AppInfoService:       deps.appInfo,
		RegistrationReceiver: deps.receiver,
	}, logger.Nop())
	deps.router = h.Init()

	return deps
}

// multipartBody builds a registration upload. A nil userID omits the field.
func multipartBody(t *testing.T, userID *string, images ...[]byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if userID != nil {
		require.NoError(t, mw.WriteField(models.FieldUserID, *userID))
	}
	for i, img := range images {
		fw, err := mw.CreateFormFile(models.FieldImages, fmt.Sprintf("capture_%d.jpg", i+1))
		require.NoError(t, err)
		_, err = fw.Write(img)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func ptr(s string) *string { return &s }

func doRequest(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestRegister_Success(t *testing.T) {
	deps := newTestDeps(t)

	wantFrames := []models.Frame{
		{UserID: -1234, Index: 1, Filename: "capture_1.jpg", Data: []byte("jpeg")},
		{UserID: -1234, Index: 2, Filename: "capture_2.jpg", Data: []byte("abc")},
	}
	deps.receiver.EXPECT().
		Accept(gomock.Any(), models.SessionID(-1234), wantFrames).
		Return(models.Registration{UserID: -1234, FrameCount: 2, TotalBytes: 7, CreatedAt: time.Now()}, nil)

	body, contentType := multipartBody(t, ptr("-1234"), []byte("jpeg"), []byte("abc"))
	req := httptest.NewRequest(http.MethodPost, "/register", body)
	req.Header.Set("Content-Type", contentType)

	rr := doRequest(deps.router, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"success","user_id":-1234,"frame_count":2,"total_bytes":7}`, rr.Body.String())
}

func TestRegister_KeepsEmptyParts(t *testing.T) {
	deps := newTestDeps(t)

	deps.receiver.EXPECT().
		Accept(gomock.Any(), models.SessionID(3), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.SessionID, frames []models.Frame) (models.Registration, error) {
			require.Len(t, frames, 2)
			assert.Empty(t, frames[0].Data)
			assert.Equal(t, "capture_1.jpg", frames[0].Filename)
			assert.Equal(t, []byte{0xff, 0xd8}, frames[1].Data)
			assert.Equal(t, 2, frames[1].Index)
			return models.Registration{UserID: 3, FrameCount: 2, TotalBytes: 2}, nil
		})

	body, contentType := multipartBody(t, ptr("3"), []byte{}, []byte{0xff, 0xd8})
	req := httptest.NewRequest(http.MethodPost, "/register", body)
	req.Header.Set("Content-Type", contentType)

	rr := doRequest(deps.router, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRegister_Rejected(t *testing.T) {
	tests := []struct {
		name        string
		userID      *string
		images      [][]byte
		acceptErr   error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "missing user_id",
			images:      [][]byte{[]byte("jpeg")},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid user_id",
		},
		{
			name:        "user_id not a number",
			userID:      ptr("abc"),
			images:      [][]byte{[]byte("jpeg")},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid user_id",
		},
		{
			name:        "user_id out of int16 range",
			userID:      ptr("40000"),
			images:      [][]byte{[]byte("jpeg")},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid user_id",
		},
		{
			name:        "no frames",
			userID:      ptr("7"),
			acceptErr:   service.ErrNoFramesFound,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "No frames found",
		},
		{
			name:        "duplicate user id",
			userID:      ptr("7"),
			images:      [][]byte{[]byte("jpeg")},
			acceptErr:   fmt.Errorf("%w: 7", service.ErrUserAlreadyRegistered),
			wantStatus:  http.StatusConflict,
			wantMessage: "User already registered",
		},
		{
			name:        "storage failure",
			userID:      ptr("7"),
			images:      [][]byte{[]byte("jpeg")},
			acceptErr:   fmt.Errorf("save registration: %w", store.ErrExecutingQuery),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := newTestDeps(t)
			if tt.acceptErr != nil {
				deps.receiver.EXPECT().
					Accept(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(models.Registration{}, tt.acceptErr)
			}

			body, contentType := multipartBody(t, tt.userID, tt.images...)
			req := httptest.NewRequest(http.MethodPost, "/register", body)
			req.Header.Set("Content-Type", contentType)

			rr := doRequest(deps.router, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			resp := decodeBody(t, rr)
			assert.Equal(t, "error", resp["status"])
			assert.Equal(t, tt.wantMessage, resp["message"])
		})
	}
}

func TestRegister_NotMultipart(t *testing.T) {
	deps := newTestDeps(t)

	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(`{"user_id":1}`))
	req.Header.Set("Content-Type", "application/json")

	rr := doRequest(deps.router, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid multipart form", decodeBody(t, rr)["message"])
}

func TestGetRegistration(t *testing.T) {
	deps := newTestDeps(t)

	created := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	deps.receiver.EXPECT().
		Get(gomock.Any(), models.SessionID(-12)).
		Return(models.Registration{UserID: -12, FrameCount: 20, TotalBytes: 4096, CreatedAt: created}, nil)

	rr := doRequest(deps.router, httptest.NewRequest(http.MethodGet, "/register/-12", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"user_id":-12,"frame_count":20,"total_bytes":4096,"created_at":"2026-10-01T12:00:00Z"}`, rr.Body.String())
}

func TestGetRegistration_Errors(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		getErr      error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "unknown user",
			path:        "/register/5",
			getErr:      fmt.Errorf("%w: 5", service.ErrRegistrationNotFound),
			wantStatus:  http.StatusNotFound,
			wantMessage: "Registration not found",
		},
		{
			name:        "user_id not a number",
			path:        "/register/abc",
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid user_id",
		},
		{
			name:        "user_id out of int16 range",
			path:        "/register/99999",
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid user_id",
		},
		{
			name:        "storage failure",
			path:        "/register/5",
			getErr:      fmt.Errorf("get registration: %w", store.ErrExecutingQuery),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := newTestDeps(t)
			if tt.getErr != nil {
				deps.receiver.EXPECT().Get(gomock.Any(), gomock.Any()).Return(models.Registration{}, tt.getErr)
			}

			rr := doRequest(deps.router, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			resp := decodeBody(t, rr)
			assert.Equal(t, "error", resp["status"])
			assert.Equal(t, tt.wantMessage, resp["message"])
		})
	}
}

func TestHealth(t *testing.T) {
	deps := newTestDeps(t)

	rr := doRequest(deps.router, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"success"}`, rr.Body.String())
}

func TestIndex(t *testing.T) {
	deps := newTestDeps(t)
	deps.receiver.EXPECT().Count(gomock.Any()).Return(4, nil)
	deps.appInfo.EXPECT().GetAppInfo(gomock.Any()).Return(models.AppInfo{Version: "1.0.0"})

	rr := doRequest(deps.router, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	resp := decodeBody(t, rr)
	assert.Equal(t, "1.0.0", resp["version"])
	assert.Equal(t, float64(4), resp["registrations"])
	assert.Equal(t, []any{"GET /", "GET /health", "GET /register/{user_id}", "GET /version", "POST /register"}, resp["routes"])
}

func TestIndex_CountError(t *testing.T) {
	deps := newTestDeps(t)
	deps.receiver.EXPECT().Count(gomock.Any()).Return(0, store.ErrExecutingQuery)

	rr := doRequest(deps.router, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "Internal server error", decodeBody(t, rr)["message"])
}

func TestVersion(t *testing.T) {
	deps := newTestDeps(t)
	deps.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")

	rr := doRequest(deps.router, httptest.NewRequest(http.MethodGet, "/version", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
	assert.Equal(t, "1.0.0", rr.Body.String())
}

func TestMethodNotAllowed(t *testing.T) {
	deps := newTestDeps(t)

	rr := doRequest(deps.router, httptest.NewRequest(http.MethodGet, "/register", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "POST", rr.Header().Get("Allow"))
	assert.Equal(t, "Method not allowed", decodeBody(t, rr)["message"])
}

func TestMethodNotAllowed_ParameterizedRoute(t *testing.T) {
	deps := newTestDeps(t)

	rr := doRequest(deps.router, httptest.NewRequest(http.MethodDelete, "/register/5", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "GET", rr.Header().Get("Allow"))
}

func TestNotFound(t *testing.T) {
	deps := newTestDeps(t)

	rr := doRequest(deps.router, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Not found", decodeBody(t, rr)["message"])
}

func TestResponseFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrInvalidMultipartForm, http.StatusBadRequest},
		{ErrUploadTooLarge, http.StatusRequestEntityTooLarge},
		{ErrInvalidUserID, http.StatusBadRequest},
		{service.ErrNoFramesFound, http.StatusBadRequest},
		{store.ErrUserAlreadyRegistered, http.StatusConflict},
		{fmt.Errorf("wrapped: %w", service.ErrRegistrationNotFound), http.StatusNotFound},
		{fmt.Errorf("wrapped: %w", service.ErrUserAlreadyRegistered), http.StatusConflict},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, responseFromError(tt.err).status)
		})
	}
}
