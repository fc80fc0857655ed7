// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"mime"
	"net/http"
	"slices"
	"strings"

	"github.com/MKhiriev/bg-remover/models"
)

// Field name constants accepted by [ImageUploadValidator.Validate].
// When no fields are passed all three are checked in this order.
const (
	// FieldFile checks that a file was chosen at all.
	FieldFile = "file"

	// FieldSize checks the byte size against MaxImageSize.
	FieldSize = "size"

	// FieldType checks the content type against AllowedImageTypes.
	FieldType = "type"
)

// MaxImageSize is the largest accepted upload, 5 MB.
const MaxImageSize int64 = 5 * 1024 * 1024

// AllowedImageTypes lists the accepted MIME types.
var AllowedImageTypes = []string{"image/jpeg", "image/png", "image/webp"}

// User-facing messages for each rule.
const (
	MsgImageRequired        = "Image is required"
	MsgImageTooLarge        = "Max file size is 5MB"
	MsgUnsupportedImageType = "Only .jpg, .jpeg, .png and .webp formats are supported"
)

// sniffLen is how many leading bytes http.DetectContentType looks at.
const sniffLen = 512

// ImageUploadValidator implements the Validator interface for
// models.UploadRequest.
type ImageUploadValidator struct {
}

// NewImageUploadValidator constructs a new ImageUploadValidator
// and returns it as the Validator interface.
func NewImageUploadValidator() Validator {
	return &ImageUploadValidator{}
}

// Validate checks a models.UploadRequest (value or pointer). A nil pointer
// counts as "no file chosen". Returns ErrUnsupportedType for other types.
func (v *ImageUploadValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UploadRequest:
		return v.validateUpload(ctx, value, fields...)
	case *models.UploadRequest:
		if value == nil {
			return ErrImageRequired
		}
		return v.validateUpload(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ImageUploadValidator) validateUpload(_ context.Context, upload models.UploadRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFile, FieldSize, FieldType}
	}

	for _, f := range fields {
		switch f {
		case FieldFile:
			if upload.IsEmpty() {
				return ErrImageRequired
			}
		case FieldSize:
			if upload.Size > MaxImageSize {
				return ErrImageTooLarge
			}
		case FieldType:
			if !slices.Contains(AllowedImageTypes, ContentType(upload)) {
				return ErrUnsupportedImageType
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// ContentType returns the normalized MIME type of upload. The declared type
// is used when present; otherwise the leading bytes are sniffed.
func ContentType(upload models.UploadRequest) string {
	declared := strings.TrimSpace(upload.ContentType)
	if declared == "" {
		data := upload.Data
		if len(data) > sniffLen {
			data = data[:sniffLen]
		}
		if len(data) == 0 {
			return ""
		}
		declared = http.DetectContentType(data)
	}

	mediaType, _, err := mime.ParseMediaType(declared)
	if err != nil {
		return strings.ToLower(declared)
	}
	return mediaType
}

// Message returns the text shown to the user for a rule violation, or an
// empty string if err is not one.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrImageRequired):
		return MsgImageRequired
	case errors.Is(err, ErrImageTooLarge):
		return MsgImageTooLarge
	case errors.Is(err, ErrUnsupportedImageType):
		return MsgUnsupportedImageType
	default:
		return ""
	}
}
