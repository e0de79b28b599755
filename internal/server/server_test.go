package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-face-register/internal/config"
	"github.com/MKhiriev/go-face-register/internal/handler"
	"github.com/MKhiriev/go-face-register/internal/logger"
	"github.com/MKhiriev/go-face-register/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandlers(t *testing.T) *handler.Handlers {
	t.Helper()
	h, err := handler.NewHandlers(&service.Services{}, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)
	return h
}

func TestNewServer_NoHandlers(t *testing.T) {
	srv, err := NewServer(nil, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestNewServer_NoAddress(t *testing.T) {
	srv, err := NewServer(newTestHandlers(t), config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestServer_RunServesUntilCancelled(t *testing.T) {
	srv, err := NewServer(newTestHandlers(t), config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	addrCh := make(chan string, 1)
	s := srv.(*server)
	s.listen = func(network, address string) (net.Listener, error) {
		l, err := net.Listen(network, address)
		if err == nil {
			addrCh <- l.Addr().String()
		}
		return l, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	var addr string
	select {
	case addr = <-addrCh:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}

	resp, err := http.Get("http://" + addr + "/health")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"success"}`, string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_RunListenError(t *testing.T) {
	srv, err := NewServer(newTestHandlers(t), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	srv.(*server).listen = func(string, string) (net.Listener, error) {
		return nil, assert.AnError
	}

	assert.ErrorIs(t, srv.Run(context.Background()), assert.AnError)
}
