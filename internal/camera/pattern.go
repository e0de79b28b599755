package camera

import (
	"context"
	"image"
	"image/color"
	"sync"
)

// patternSource produces a synthetic moving gradient. It needs no hardware
// and is used for demos and end-to-end checks of the pipeline.
type patternSource struct {
	width, height int
}

// NewPatternSource returns a Source generating width×height test frames.
func NewPatternSource(width, height int) Source {
	return &patternSource{width: width, height: height}
}

func (s *patternSource) Name() string {
	return "pattern"
}

func (s *patternSource) Open(ctx context.Context) (Stream, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.width <= 0 || s.height <= 0 {
		return nil, ErrNoDevice
	}

	return &patternStream{width: s.width, height: s.height}, nil
}

type patternStream struct {
	width, height int

	mu     sync.Mutex
	tick   int
	closed bool
}

func (s *patternStream) Frame(ctx context.Context) (image.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrStreamClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	shift := s.tick * 8
	for y := range s.height {
		for x := range s.width {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8((x + shift) * 255 / s.width),
				G: uint8(y * 255 / s.height),
				B: uint8(shift),
				A: 0xff,
			})
		}
	}
	s.tick++

	return img, nil
}

func (s *patternStream) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}
