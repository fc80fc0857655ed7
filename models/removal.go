// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RemovalInput is the payload sent to the remote inference service.
type RemovalInput struct {
	// ImageURL is the image to process. A base64 data URL is used so the file
	// does not need a separate upload step.
	ImageURL string `json:"image_url"`

	// SyncMode asks the service to return the processed image inline instead
	// of uploading it to its CDN first.
	SyncMode bool `json:"sync_mode"`
}

// RemovalResult is the successful output of the remote service.
type RemovalResult struct {
	Image RemovedImage `json:"image"`
}

// RemovedImage describes the processed image. Only URL is guaranteed.
type RemovedImage struct {
	URL         string `json:"url"`
	ContentType string `json:"content_type,omitempty"`
	FileName    string `json:"file_name,omitempty"`
	FileSize    int64  `json:"file_size,omitempty"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
}

// QueueStatus is the lifecycle status of a queued inference request.
type QueueStatus string

const (
	QueueStatusInQueue    QueueStatus = "IN_QUEUE"
	QueueStatusInProgress QueueStatus = "IN_PROGRESS"
	QueueStatusCompleted  QueueStatus = "COMPLETED"
)

// QueueUpdate is delivered to the progress callback every time the status of
// the remote job is polled. It is informational only.
type QueueUpdate struct {
	Status        QueueStatus `json:"status"`
	QueuePosition int         `json:"queue_position,omitempty"`
	Logs          []LogLine   `json:"logs,omitempty"`
}

// LogLine is a single log entry produced by the remote job.
type LogLine struct {
	Message   string `json:"message"`
	Level     string `json:"level,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// Outcome is the discriminated result of one submission: exactly one of
// Result and Err is set.
type Outcome struct {
	Result *RemovalResult
	Err    error
}

// Succeeded reports whether the submission produced a processed image.
func (o Outcome) Succeeded() bool {
	return o.Err == nil && o.Result != nil
}
