package camera

import (
	"context"
	"errors"
	"fmt"
	"image"
	"net/http"
	"sync"

	"github.com/MKhiriev/go-face-register/internal/logger"
	"github.com/gorilla/websocket"
)

// webSocketSource receives JPEG frames pushed as binary messages by a frame
// relay (for example a gocv capture worker streaming to ws://host/ws/client).
type webSocketSource struct {
	url    string
	dialer *websocket.Dialer
	logger *logger.Logger
}

// NewWebSocketSource returns a Source subscribing to the relay at url.
func NewWebSocketSource(url string, log *logger.Logger) Source {
	return &webSocketSource{url: url, dialer: websocket.DefaultDialer, logger: log}
}

func (s *webSocketSource) Name() string {
	return "websocket:" + s.url
}

func (s *webSocketSource) Open(ctx context.Context) (Stream, error) {
	conn, resp, err := s.dialer.DialContext(ctx, s.url, nil)
	if err != nil {
		if resp != nil {
			switch resp.StatusCode {
			case http.StatusUnauthorized, http.StatusForbidden:
				return nil, fmt.Errorf("%w: relay returned %d", ErrPermissionDenied, resp.StatusCode)
			case http.StatusNotFound:
				return nil, fmt.Errorf("%w: relay returned %d", ErrNoDevice, resp.StatusCode)
			}
		}
		return nil, fmt.Errorf("%w: %w", ErrCameraUnavailable, err)
	}

	stream := &webSocketStream{
		conn:   conn,
		ready:  make(chan struct{}, 1),
		first:  make(chan struct{}),
		done:   make(chan struct{}),
		logger: s.logger,
	}
	go stream.readLoop()

	return stream, nil
}

type webSocketStream struct {
	conn *websocket.Conn

	mu        sync.Mutex
	latest    image.Image
	readErr   error
	firstOnce sync.Once
	closeOnce sync.Once

	ready chan struct{}
	first chan struct{}
	done  chan struct{}

	logger *logger.Logger
}

func (s *webSocketStream) readLoop() {
	defer close(s.done)

	for {
		msgType, data, err := s.conn.ReadMessage()
		if err != nil {
			s.mu.Lock()
			s.readErr = err
			s.mu.Unlock()
			return
		}
		if msgType != websocket.BinaryMessage {
			continue
		}

		img, err := decodeFrame(data)
		if err != nil {
			s.logger.Warn().Err(err).Int("size", len(data)).Msg("dropping undecodable frame")
			continue
		}

		s.mu.Lock()
		s.latest = img
		s.mu.Unlock()

		s.firstOnce.Do(func() { close(s.first) })
		select {
		case s.ready <- struct{}{}:
		default:
		}
	}
}

// Frame returns the latest frame and consumes a pending ready signal, so that
// FrameReady only fires for frames arriving afterwards.
func (s *webSocketStream) Frame(ctx context.Context) (image.Image, error) {
	select {
	case <-s.first:
	case <-s.done:
		return nil, s.closedErr()
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	s.mu.Lock()
	img := s.latest
	s.mu.Unlock()

	select {
	case <-s.ready:
	default:
	}

	return img, nil
}

// FrameReady implements FrameNotifier.
func (s *webSocketStream) FrameReady() <-chan struct{} {
	return s.ready
}

func (s *webSocketStream) closedErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.readErr == nil || websocket.IsCloseError(s.readErr, websocket.CloseNormalClosure) || errors.Is(s.readErr, websocket.ErrCloseSent) {
		return ErrStreamClosed
	}
	return fmt.Errorf("%w: %w", ErrStreamClosed, s.readErr)
}

func (s *webSocketStream) Close() error {
	var err error
	s.closeOnce.Do(func() {
		_ = s.conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "capture finished"))
		err = s.conn.Close()
		<-s.done
	})

	return err
}
