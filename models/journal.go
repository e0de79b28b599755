// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// JournalEntry describes one upload session as recorded by the client-side
// journal. Only metadata is kept; image payloads never reach the journal.
type JournalEntry struct {
	ID         string
	UserID     SessionID
	Endpoint   string
	FrameCount int
	TotalBytes int
	StatusCode int
	Response   string
	Error      string
	StartedAt  time.Time
	FinishedAt time.Time
}
