// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-face-register/internal/camera"
	"github.com/MKhiriev/go-face-register/internal/canvas"
	"github.com/MKhiriev/go-face-register/internal/config"
	"github.com/MKhiriev/go-face-register/internal/logger"
	"github.com/MKhiriev/go-face-register/models"
)

// DefaultFrameCount is the number of frames captured when a session is not
// given an explicit count.
const DefaultFrameCount = 20

type captureService struct {
	surface  Surface
	cfg      config.Capture
	progress ProgressObserver
	now      func() time.Time

	logger *logger.Logger
}

// NewCaptureService returns a [CaptureService] drawing onto surface. The
// surface is owned by the service from now on.
func NewCaptureService(surface Surface, cfg config.Capture, progress ProgressObserver, logger *logger.Logger) (CaptureService, error) {
	switch cfg.EmptyFramePolicy {
	case "":
		cfg.EmptyFramePolicy = config.EmptyFrameFail
	case config.EmptyFrameFail, config.EmptyFrameSkip, config.EmptyFrameInclude:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidEmptyFramePolicy, cfg.EmptyFramePolicy)
	}

	return &captureService{
		surface:  surface,
		cfg:      cfg,
		progress: progress,
		now:      time.Now,
		logger:   logger,
	}, nil
}

// Capture implements [CaptureService].
func (s *captureService) Capture(ctx context.Context, stream camera.Stream, n int) (models.ImageBatch, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFrameCount, n)
	}

	notifier, _ := stream.(camera.FrameNotifier)
	width, height := s.surface.Size()
	batch := make(models.ImageBatch, 0, n)

	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := s.captureFrame(ctx, stream)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}

		if len(data) == 0 {
			switch s.cfg.EmptyFramePolicy {
			case config.EmptyFrameSkip:
				s.logger.Warn().Int("frame", i).Msg("empty frame skipped")
			case config.EmptyFrameInclude:
				s.logger.Warn().Int("frame", i).Msg("empty frame included")
			default:
				return nil, fmt.Errorf("%w: frame %d", ErrEmptyFrame, i)
			}
		}

		if len(data) > 0 || s.cfg.EmptyFramePolicy == config.EmptyFrameInclude {
			batch = append(batch, models.CapturedImage{
				Index:      len(batch) + 1,
				Data:       data,
				Width:      width,
				Height:     height,
				CapturedAt: s.now(),
			})
		}

		s.progress.Progress(i, n)

		if i < n {
			if err = s.waitNextFrame(ctx, notifier); err != nil {
				return nil, err
			}
		}
	}

	s.logger.Debug().
		Int("frames", batch.Len()).
		Int("bytes", batch.TotalBytes()).
		Msg("capture finished")

	return batch, nil
}

// captureFrame reads the current frame, draws it and exports the surface.
// An empty export is returned as nil data without error.
func (s *captureService) captureFrame(ctx context.Context, stream camera.Stream) ([]byte, error) {
	frame, err := stream.Frame(ctx)
	if err != nil {
		return nil, fmt.Errorf("read frame: %w", err)
	}

	if err = s.surface.DrawFrame(frame); err != nil {
		return nil, fmt.Errorf("draw frame: %w", err)
	}

	data, err := s.surface.ExportImage()
	if errors.Is(err, canvas.ErrEmptyExport) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("export frame: %w", err)
	}

	return data, nil
}

// waitNextFrame blocks until the stream reports a new frame or, for streams
// without notifications, for the configured delay.
func (s *captureService) waitNextFrame(ctx context.Context, notifier camera.FrameNotifier) error {
	if notifier == nil {
		return sleepContext(ctx, s.cfg.FrameDelay)
	}

	var timeout <-chan time.Time
	if s.cfg.FrameTimeout > 0 {
		timer := time.NewTimer(s.cfg.FrameTimeout)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case <-notifier.FrameReady():
		return nil
	case <-timeout:
		s.logger.Warn().Dur("timeout", s.cfg.FrameTimeout).Msg("no new frame signalled, capturing the current one")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
