// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// ImageContentType is the MIME type of every exported capture.
const ImageContentType = "image/jpeg"

// CapturedImage is a single still frame exported from the drawing surface.
type CapturedImage struct {
	// Index is the 1-based position of the image inside its batch.
	Index int

	// Data holds the compressed JPEG payload. It may be empty only when the
	// capture loop runs with the "include" empty-frame policy.
	Data []byte

	// Width and Height are the dimensions of the drawing surface the frame
	// was exported from.
	Width  int
	Height int

	// CapturedAt is the wall-clock time the frame was exported.
	CapturedAt time.Time
}

// FileName returns the multipart filename of the image, capture_<Index>.jpg.
func (c CapturedImage) FileName() string {
	return fmt.Sprintf("capture_%d.jpg", c.Index)
}

// ImageBatch is an ordered sequence of captured images. Order is preserved on
// upload and batch[i].Index == i+1.
type ImageBatch []CapturedImage

// Len returns the number of images in the batch.
func (b ImageBatch) Len() int {
	return len(b)
}

// TotalBytes returns the sum of all payload sizes.
func (b ImageBatch) TotalBytes() int {
	total := 0
	for _, img := range b {
		total += len(img.Data)
	}
	return total
}
