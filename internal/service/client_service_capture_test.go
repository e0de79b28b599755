// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/MKhiriev/go-face-register/internal/camera"
	"github.com/MKhiriev/go-face-register/internal/canvas"
	"github.com/MKhiriev/go-face-register/internal/config"
	"github.com/MKhiriev/go-face-register/internal/logger"
	"github.com/MKhiriev/go-face-register/internal/mock"
	"github.com/MKhiriev/go-face-register/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// notifyingStream is a Stream that also signals frame readiness.
type notifyingStream struct {
	*mock.MockStream
	ready chan struct{}
}

func (s notifyingStream) FrameReady() <-chan struct{} {
	return s.ready
}

func solidFrame(c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 32, 24))
	for y := 0; y < 24; y++ {
		for x := 0; x < 32; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func newTestCaptureSvc(t *testing.T, ctrl *gomock.Controller, cfg config.Capture) (*captureService, *mock.MockSurface, *mock.MockProgressObserver) {
	t.Helper()
	surface := mock.NewMockSurface(ctrl)
	progress := mock.NewMockProgressObserver(ctrl)

	svc, err := NewCaptureService(surface, cfg, progress, logger.Nop())
	require.NoError(t, err)

	surface.EXPECT().Size().Return(640, 480).AnyTimes()
	return svc.(*captureService), surface, progress
}

// ── Capture ─────────────────────────────────────────────────────────────────

func TestCaptureService_Capture_NFramesInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, surface, progress := newTestCaptureSvc(t, ctrl, config.Capture{})

	const n = 5
	stream := mock.NewMockStream(ctrl)
	frame := solidFrame(color.White)

	stream.EXPECT().Frame(gomock.Any()).Return(frame, nil).Times(n)
	surface.EXPECT().DrawFrame(frame).Return(nil).Times(n)

	exports := make([]any, 0, n)
	for i := 1; i <= n; i++ {
		exports = append(exports, surface.EXPECT().ExportImage().Return([]byte(fmt.Sprintf("jpeg-%d", i)), nil))
	}
	gomock.InOrder(exports...)

	calls := make([]any, 0, n)
	for i := 1; i <= n; i++ {
		calls = append(calls, progress.EXPECT().Progress(i, n))
	}
	gomock.InOrder(calls...)

	batch, err := svc.Capture(context.Background(), stream, n)
	require.NoError(t, err)
	require.Len(t, batch, n)

	for i, img := range batch {
		assert.Equal(t, i+1, img.Index)
		assert.Equal(t, fmt.Sprintf("capture_%d.jpg", i+1), img.FileName())
		assert.Equal(t, fmt.Sprintf("jpeg-%d", i+1), string(img.Data))
		assert.Equal(t, 640, img.Width)
		assert.Equal(t, 480, img.Height)
	}
}

func TestCaptureService_Capture_RealSurface(t *testing.T) {
	ctrl := gomock.NewController(t)

	surface, err := canvas.NewSurface(64, 48, 80)
	require.NoError(t, err)

	progress := mock.NewMockProgressObserver(ctrl)
	progress.EXPECT().Progress(gomock.Any(), 3).Times(3)

	svc, err := NewCaptureService(surface, config.Capture{FrameDelay: time.Millisecond}, progress, logger.Nop())
	require.NoError(t, err)

	stream := mock.NewMockStream(ctrl)
	stream.EXPECT().Frame(gomock.Any()).Return(solidFrame(color.RGBA{R: 200, A: 255}), nil).Times(3)

	batch, err := svc.Capture(context.Background(), stream, 3)
	require.NoError(t, err)
	require.Len(t, batch, 3)

	for _, img := range batch {
		require.NotEmpty(t, img.Data)
		// JPEG SOI marker
		assert.Equal(t, []byte{0xFF, 0xD8}, img.Data[:2])
		assert.Equal(t, 64, img.Width)
	}
}

func TestCaptureService_Capture_InvalidFrameCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestCaptureSvc(t, ctrl, config.Capture{})

	for _, n := range []int{0, -1} {
		_, err := svc.Capture(context.Background(), mock.NewMockStream(ctrl), n)
		assert.ErrorIs(t, err, ErrInvalidFrameCount)
	}
}

func TestCaptureService_Capture_FrameError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, progress := newTestCaptureSvc(t, ctrl, config.Capture{})

	stream := mock.NewMockStream(ctrl)
	stream.EXPECT().Frame(gomock.Any()).Return(nil, camera.ErrStreamClosed)
	progress.EXPECT().Progress(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Capture(context.Background(), stream, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, camera.ErrStreamClosed)
	assert.Contains(t, err.Error(), "frame 1")
}

func TestCaptureService_Capture_DrawAndExportErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, surface, _ := newTestCaptureSvc(t, ctrl, config.Capture{})

	stream := mock.NewMockStream(ctrl)
	stream.EXPECT().Frame(gomock.Any()).Return(solidFrame(color.Black), nil).Times(2)

	surface.EXPECT().DrawFrame(gomock.Any()).Return(canvas.ErrNilFrame)
	_, err := svc.Capture(context.Background(), stream, 1)
	assert.ErrorIs(t, err, canvas.ErrNilFrame)

	encodeErr := errors.New("encoder exploded")
	surface.EXPECT().DrawFrame(gomock.Any()).Return(nil)
	surface.EXPECT().ExportImage().Return(nil, encodeErr)
	_, err = svc.Capture(context.Background(), stream, 1)
	assert.ErrorIs(t, err, encodeErr)
}

// ── empty frame policies ────────────────────────────────────────────────────

func expectFramesWithEmptySecond(ctrl *gomock.Controller, surface *mock.MockSurface, n int) *mock.MockStream {
	stream := mock.NewMockStream(ctrl)
	stream.EXPECT().Frame(gomock.Any()).Return(solidFrame(color.White), nil).AnyTimes()
	surface.EXPECT().DrawFrame(gomock.Any()).Return(nil).AnyTimes()

	calls := make([]any, 0, n)
	for i := 1; i <= n; i++ {
		if i == 2 {
			calls = append(calls, surface.EXPECT().ExportImage().Return(nil, canvas.ErrEmptyExport))
			continue
		}
		calls = append(calls, surface.EXPECT().ExportImage().Return([]byte{byte(i)}, nil))
	}
	gomock.InOrder(calls...)

	return stream
}

func TestCaptureService_EmptyFrame_Fail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, surface, progress := newTestCaptureSvc(t, ctrl, config.Capture{EmptyFramePolicy: config.EmptyFrameFail})

	surface.EXPECT().DrawFrame(gomock.Any()).Return(nil).Times(2)
	surface.EXPECT().ExportImage().Return([]byte{1}, nil)
	surface.EXPECT().ExportImage().Return(nil, canvas.ErrEmptyExport)
	stream := mock.NewMockStream(ctrl)
	stream.EXPECT().Frame(gomock.Any()).Return(solidFrame(color.White), nil).Times(2)
	progress.EXPECT().Progress(1, 3)

	_, err := svc.Capture(context.Background(), stream, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyFrame)
}

func TestCaptureService_EmptyFrame_Skip(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, surface, progress := newTestCaptureSvc(t, ctrl, config.Capture{EmptyFramePolicy: config.EmptyFrameSkip})
	progress.EXPECT().Progress(gomock.Any(), 4).Times(4)

	stream := expectFramesWithEmptySecond(ctrl, surface, 4)

	batch, err := svc.Capture(context.Background(), stream, 4)
	require.NoError(t, err)
	require.Len(t, batch, 3)

	// file names stay contiguous
	for i, img := range batch {
		assert.Equal(t, i+1, img.Index)
		assert.NotEmpty(t, img.Data)
	}
	assert.Equal(t, []byte{3}, batch[1].Data)
}

func TestCaptureService_EmptyFrame_Include(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, surface, progress := newTestCaptureSvc(t, ctrl, config.Capture{EmptyFramePolicy: config.EmptyFrameInclude})
	progress.EXPECT().Progress(gomock.Any(), 3).Times(3)

	stream := expectFramesWithEmptySecond(ctrl, surface, 3)

	batch, err := svc.Capture(context.Background(), stream, 3)
	require.NoError(t, err)
	require.Len(t, batch, 3)
	assert.Empty(t, batch[1].Data)
	assert.Equal(t, "capture_2.jpg", batch[1].FileName())
}

func TestNewCaptureService_InvalidPolicy(t *testing.T) {
	_, err := NewCaptureService(nil, config.Capture{EmptyFramePolicy: "retry"}, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidEmptyFramePolicy)
}

// ── frame wait ──────────────────────────────────────────────────────────────

func TestCaptureService_WaitsOnFrameNotifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	// a delay this long would time the test out if it were used
	svc, surface, progress := newTestCaptureSvc(t, ctrl, config.Capture{FrameDelay: time.Hour, FrameTimeout: time.Hour})
	progress.EXPECT().Progress(gomock.Any(), 3).Times(3)

	stream := notifyingStream{MockStream: mock.NewMockStream(ctrl), ready: make(chan struct{}, 2)}
	stream.ready <- struct{}{}
	stream.ready <- struct{}{}

	stream.MockStream.EXPECT().Frame(gomock.Any()).Return(solidFrame(color.White), nil).Times(3)
	surface.EXPECT().DrawFrame(gomock.Any()).Return(nil).Times(3)
	surface.EXPECT().ExportImage().Return([]byte{1}, nil).Times(3)

	var s camera.Stream = stream
	_, isNotifier := s.(camera.FrameNotifier)
	require.True(t, isNotifier)

	batch, err := svc.Capture(context.Background(), stream, 3)
	require.NoError(t, err)
	assert.Len(t, batch, 3)
	assert.Empty(t, stream.ready)
}

func TestCaptureService_FrameNotifierTimeoutProceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, surface, progress := newTestCaptureSvc(t, ctrl, config.Capture{FrameDelay: time.Hour, FrameTimeout: 5 * time.Millisecond})
	progress.EXPECT().Progress(gomock.Any(), 2).Times(2)

	stream := notifyingStream{MockStream: mock.NewMockStream(ctrl), ready: make(chan struct{})}
	stream.MockStream.EXPECT().Frame(gomock.Any()).Return(solidFrame(color.White), nil).Times(2)
	surface.EXPECT().DrawFrame(gomock.Any()).Return(nil).Times(2)
	surface.EXPECT().ExportImage().Return([]byte{1}, nil).Times(2)

	batch, err := svc.Capture(context.Background(), stream, 2)
	require.NoError(t, err)
	assert.Len(t, batch, 2)
}

func TestCaptureService_CancelledWhileWaiting(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, surface, progress := newTestCaptureSvc(t, ctrl, config.Capture{FrameDelay: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())

	stream := mock.NewMockStream(ctrl)
	stream.EXPECT().Frame(gomock.Any()).Return(solidFrame(color.White), nil)
	surface.EXPECT().DrawFrame(gomock.Any()).Return(nil)
	surface.EXPECT().ExportImage().Return([]byte{1}, nil)
	progress.EXPECT().Progress(1, 10).Do(func(int, int) { cancel() })

	_, err := svc.Capture(ctx, stream, 10)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSleepContext(t *testing.T) {
	assert.NoError(t, sleepContext(context.Background(), 0))
	assert.NoError(t, sleepContext(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sleepContext(ctx, time.Hour), context.Canceled)
	assert.ErrorIs(t, sleepContext(ctx, 0), context.Canceled)
}

func TestCaptureService_CapturedAt(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, surface, progress := newTestCaptureSvc(t, ctrl, config.Capture{})

	fixed := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	stream := mock.NewMockStream(ctrl)
	stream.EXPECT().Frame(gomock.Any()).Return(solidFrame(color.White), nil)
	surface.EXPECT().DrawFrame(gomock.Any()).Return(nil)
	surface.EXPECT().ExportImage().Return([]byte{1}, nil)
	progress.EXPECT().Progress(1, 1)

	batch, err := svc.Capture(context.Background(), stream, 1)
	require.NoError(t, err)
	assert.Equal(t, models.ImageBatch{{Index: 1, Data: []byte{1}, Width: 640, Height: 480, CapturedAt: fixed}}, batch)
}
