// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UploadRequest is a single image selected by the user for background removal.
//
// It lives only for the duration of one submission: after validation the raw
// bytes are encoded into a data URL (kept as [ViewState.OriginalImage]) and
// the request itself is discarded.
type UploadRequest struct {
	// FileName is the client-side name of the file (e.g. "test.png").
	FileName string

	// ContentType is the MIME type declared by the browser or derived by the
	// terminal client from the file extension (e.g. "image/png").
	ContentType string

	// Size is the byte size of the file. It is set from the multipart header
	// or from os.Stat and is what the size rule is checked against.
	Size int64

	// Data holds the file contents.
	Data []byte
}

// IsEmpty reports whether no file was chosen at all.
func (r UploadRequest) IsEmpty() bool {
	return r.FileName == "" && r.Size == 0 && len(r.Data) == 0
}
