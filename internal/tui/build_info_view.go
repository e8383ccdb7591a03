// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-user-cards/models"
)

const uiDivider = "────────────────────────────"

func renderBuildInfo(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("About"))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	b.WriteString("Version: " + info.BuildVersion() + "\n")
	b.WriteString("Date:    " + info.BuildDate() + "\n")
	b.WriteString("Commit:  " + info.BuildCommit())

	return overlayBoxStyle.Render(b.String())
}
