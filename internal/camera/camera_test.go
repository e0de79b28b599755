package camera

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-face-register/internal/config"
	"github.com/MKhiriev/go-face-register/internal/logger"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jpegBytes(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

// ── file ─────────────────────────────────────────────────────────────────────

func TestFileSource_Frame(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cam.jpg")
	require.NoError(t, os.WriteFile(path, jpegBytes(t, 32, 24, color.White), 0o600))

	src := NewFileSource(path, logger.Nop())
	stream, err := src.Open(context.Background())
	require.NoError(t, err)

	img, err := stream.Frame(context.Background())
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 32, 24), img.Bounds())

	require.NoError(t, stream.Close())
	_, err = stream.Frame(context.Background())
	assert.ErrorIs(t, err, ErrStreamClosed)
}

func TestFileSource_Missing(t *testing.T) {
	src := NewFileSource(filepath.Join(t.TempDir(), "absent.jpg"), logger.Nop())

	_, err := src.Open(context.Background())
	assert.ErrorIs(t, err, ErrNoDevice)
}

func TestFileSource_PermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores file permissions")
	}
	path := filepath.Join(t.TempDir(), "cam.jpg")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o000))

	_, err := NewFileSource(path, logger.Nop()).Open(context.Background())
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestFileSource_CorruptFrame(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cam.jpg")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o600))

	stream, err := NewFileSource(path, logger.Nop()).Open(context.Background())
	require.NoError(t, err)

	_, err = stream.Frame(context.Background())
	assert.ErrorIs(t, err, ErrNoFrame)
}

// ── http ─────────────────────────────────────────────────────────────────────

func TestHTTPSource_Frame(t *testing.T) {
	frame := jpegBytes(t, 16, 16, color.Black)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write(frame)
	}))
	defer srv.Close()

	stream, err := NewHTTPSource(srv.URL, logger.Nop()).Open(context.Background())
	require.NoError(t, err)

	img, err := stream.Frame(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
}

func TestHTTPSource_OpenErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "forbidden", status: http.StatusForbidden, want: ErrPermissionDenied},
		{name: "unauthorized", status: http.StatusUnauthorized, want: ErrPermissionDenied},
		{name: "not found", status: http.StatusNotFound, want: ErrNoDevice},
		{name: "server error", status: http.StatusInternalServerError, want: ErrCameraUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			_, err := NewHTTPSource(srv.URL, logger.Nop()).Open(context.Background())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestHTTPSource_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTPSource(url, logger.Nop()).Open(context.Background())
	assert.ErrorIs(t, err, ErrCameraUnavailable)
}

// ── websocket ────────────────────────────────────────────────────────────────

func newRelay(t *testing.T, frames [][]byte) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		_ = conn.WriteMessage(websocket.TextMessage, []byte("hello"))
		for _, f := range frames {
			if err := conn.WriteMessage(websocket.BinaryMessage, f); err != nil {
				return
			}
			time.Sleep(50 * time.Millisecond)
		}
		// keep the connection open until the client closes it
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
}

func wsURL(httpURL string) string {
	return "ws" + strings.TrimPrefix(httpURL, "http")
}

func TestWebSocketSource_FramesAndReady(t *testing.T) {
	srv := newRelay(t, [][]byte{
		jpegBytes(t, 8, 8, color.White),
		jpegBytes(t, 8, 8, color.Black),
	})
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	stream, err := NewWebSocketSource(wsURL(srv.URL), logger.Nop()).Open(ctx)
	require.NoError(t, err)
	defer stream.Close()

	notifier, ok := stream.(FrameNotifier)
	require.True(t, ok, "websocket stream must signal frame readiness")

	img, err := stream.Frame(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())

	select {
	case <-notifier.FrameReady():
	case <-ctx.Done():
		t.Fatal("second frame was never signalled")
	}
}

func TestWebSocketSource_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := wsURL(srv.URL)
	srv.Close()

	_, err := NewWebSocketSource(url, logger.Nop()).Open(context.Background())
	assert.ErrorIs(t, err, ErrCameraUnavailable)
}

func TestWebSocketSource_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := NewWebSocketSource(wsURL(srv.URL), logger.Nop()).Open(context.Background())
	assert.ErrorIs(t, err, ErrNoDevice)
}

func TestWebSocketSource_FrameAfterClose(t *testing.T) {
	srv := newRelay(t, nil)
	defer srv.Close()

	stream, err := NewWebSocketSource(wsURL(srv.URL), logger.Nop()).Open(context.Background())
	require.NoError(t, err)
	require.NoError(t, stream.Close())

	_, err = stream.Frame(context.Background())
	assert.ErrorIs(t, err, ErrStreamClosed)
}

// ── pattern / factory ────────────────────────────────────────────────────────

func TestPatternSource_FramesDiffer(t *testing.T) {
	stream, err := NewPatternSource(16, 8).Open(context.Background())
	require.NoError(t, err)

	a, err := stream.Frame(context.Background())
	require.NoError(t, err)
	b, err := stream.Frame(context.Background())
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 16, 8), a.Bounds())
	assert.NotEqual(t, a.(*image.RGBA).Pix, b.(*image.RGBA).Pix)
}

func TestPatternSource_InvalidSize(t *testing.T) {
	_, err := NewPatternSource(0, 0).Open(context.Background())
	assert.ErrorIs(t, err, ErrNoDevice)
}

func TestNewSource(t *testing.T) {
	for _, kind := range []string{config.SourceFile, config.SourceHTTP, config.SourceWebSocket, config.SourcePattern} {
		src, err := NewSource(config.Camera{Source: kind, Device: "x", Width: 4, Height: 4}, logger.Nop())
		require.NoError(t, err, kind)
		assert.NotEmpty(t, src.Name())
	}

	_, err := NewSource(config.Camera{Source: "scanner"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownSource)
}
