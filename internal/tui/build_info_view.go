// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-face-register/models"
)

func renderBuildInfo(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("version ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString(" · commit ")
	b.WriteString(valueOrNA(info.BuildCommit()))
	b.WriteString(" · built ")
	b.WriteString(valueOrNA(info.BuildDate()))

	return b.String()
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
