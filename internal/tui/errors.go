// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"
)

var errPathIsDirectory = errors.New("path is a directory")

// humanizeError turns low-level failures into a line fit for the status bar.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	switch {
	case strings.Contains(s, "no such file or directory"):
		return "File not found"
	case strings.Contains(s, "permission denied"):
		return "Permission denied"
	case errors.Is(err, errPathIsDirectory):
		return "Path is a directory, choose an image file"
	}

	return err.Error()
}
