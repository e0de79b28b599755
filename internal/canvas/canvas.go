// Package canvas implements the fixed-size off-screen drawing surface frames
// are drawn onto before being exported as JPEG.
package canvas

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"

	xdraw "golang.org/x/image/draw"
)

var (
	// ErrInvalidSize is returned for non-positive surface dimensions or an
	// out-of-range JPEG quality.
	ErrInvalidSize = errors.New("invalid surface size")

	// ErrNilFrame is returned when DrawFrame gets no image.
	ErrNilFrame = errors.New("nil frame")

	// ErrEmptyExport is returned when the encoder produced no bytes.
	ErrEmptyExport = errors.New("empty image export")
)

// scaler resamples frames onto the surface with true bilinear filtering.
var scaler xdraw.Scaler = xdraw.BiLinear

// Surface is a reusable RGBA drawing surface. It is not safe for concurrent
// use; the capture loop owns it.
type Surface struct {
	buf     *image.RGBA
	quality int
	out     bytes.Buffer
}

// NewSurface allocates a width×height surface exporting at the given JPEG
// quality (1-100).
func NewSurface(width, height, quality int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if quality < 1 || quality > 100 {
		return nil, fmt.Errorf("%w: quality %d", ErrInvalidSize, quality)
	}

	return &Surface{
		buf:     image.NewRGBA(image.Rect(0, 0, width, height)),
		quality: quality,
	}, nil
}

// Size returns the surface dimensions.
func (s *Surface) Size() (width, height int) {
	b := s.buf.Bounds()
	return b.Dx(), b.Dy()
}

// DrawFrame scales img to fill the whole surface, overwriting the previous
// content.
func (s *Surface) DrawFrame(img image.Image) error {
	if img == nil {
		return ErrNilFrame
	}

	scaler.Scale(s.buf, s.buf.Bounds(), img, img.Bounds(), draw.Src, nil)
	return nil
}

// ExportImage encodes the current surface content as JPEG. The returned slice
// is owned by the caller.
func (s *Surface) ExportImage() ([]byte, error) {
	s.out.Reset()
	if err := jpeg.Encode(&s.out, s.buf, &jpeg.Options{Quality: s.quality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	if s.out.Len() == 0 {
		return nil, ErrEmptyExport
	}

	return bytes.Clone(s.out.Bytes()), nil
}
