package camera

import (
	"context"
	"fmt"
	"image"
	"net/http"

	"github.com/MKhiriev/go-face-register/internal/logger"
	"github.com/MKhiriev/go-face-register/internal/utils"
)

// httpSource fetches a fresh snapshot from an IP camera URL for every frame.
type httpSource struct {
	url    string
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPSource returns a Source polling the snapshot at url.
func NewHTTPSource(url string, log *logger.Logger) Source {
	return &httpSource{url: url, client: utils.NewHTTPClient(0), logger: log}
}

func (s *httpSource) Name() string {
	return "http:" + s.url
}

// Open performs one probe request so that an unreachable or forbidden camera
// is reported before capturing starts.
func (s *httpSource) Open(ctx context.Context) (Stream, error) {
	stream := &httpStream{source: s}
	if _, err := stream.fetch(ctx); err != nil {
		return nil, err
	}

	return stream, nil
}

type httpStream struct {
	source *httpSource
	closed bool
}

func (s *httpStream) fetch(ctx context.Context) ([]byte, error) {
	resp, err := s.source.client.R().
		SetContext(ctx).
		Get(s.source.url)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCameraUnavailable, err)
	}

	switch code := resp.StatusCode(); {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return nil, fmt.Errorf("%w: snapshot returned %d", ErrPermissionDenied, code)
	case code == http.StatusNotFound:
		return nil, fmt.Errorf("%w: snapshot returned %d", ErrNoDevice, code)
	case code < 200 || code >= 300:
		return nil, fmt.Errorf("%w: snapshot returned %d", ErrCameraUnavailable, code)
	}

	return resp.Body(), nil
}

func (s *httpStream) Frame(ctx context.Context) (image.Image, error) {
	if s.closed {
		return nil, ErrStreamClosed
	}

	data, err := s.fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoFrame, err)
	}

	return decodeFrame(data)
}

func (s *httpStream) Close() error {
	s.closed = true
	return nil
}
