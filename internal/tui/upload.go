// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/bg-remover/internal/validators"
	"github.com/MKhiriev/bg-remover/models"
)

// extensionTypes covers the accepted formats even where the system MIME
// table lacks them.
var extensionTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// readUploadFile builds an UploadRequest from a path typed by the user. An
// empty path is an empty request. Files over the size limit are not read:
// the size alone is enough for validation to reject them.
func readUploadFile(path string) (models.UploadRequest, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return models.UploadRequest{}, nil
	}
	path = expandHome(path)

	info, err := os.Stat(path)
	if err != nil {
		return models.UploadRequest{}, err
	}
	if info.IsDir() {
		return models.UploadRequest{}, fmt.Errorf("%w: %s", errPathIsDirectory, path)
	}

	upload := models.UploadRequest{
		FileName:    filepath.Base(path),
		ContentType: contentTypeByExtension(path),
		Size:        info.Size(),
	}
	if upload.Size > validators.MaxImageSize {
		return upload, nil
	}

	upload.Data, err = os.ReadFile(path)
	if err != nil {
		return models.UploadRequest{}, err
	}

	return upload, nil
}

// contentTypeByExtension returns "" for unknown extensions so the validator
// falls back to sniffing the file contents.
func contentTypeByExtension(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ct, ok := extensionTypes[ext]; ok {
		return ct
	}
	return mime.TypeByExtension(ext)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
