// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strconv"

// SessionID is the correlation token sent to the registration endpoint as
// the "user_id" form field. It is generated once per upload session and lies
// in [-32768, 32767).
type SessionID int16

// String returns the decimal representation used on the wire.
func (s SessionID) String() string {
	return strconv.Itoa(int(s))
}

// ParseSessionID parses a decimal "user_id" value. Values outside the int16
// range are rejected.
func ParseSessionID(raw string) (SessionID, error) {
	v, err := strconv.ParseInt(raw, 10, 16)
	if err != nil {
		return 0, err
	}
	return SessionID(v), nil
}
