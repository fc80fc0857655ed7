// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Phase is the step of the current submission cycle.
//
//	Idle → Validating → (Rejected | Reading) → Submitting → (Succeeded | Failed)
//
// Rejected, Succeeded and Failed are all re-submittable: a new submission
// starts again from Validating.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseValidating Phase = "validating"
	PhaseRejected   Phase = "rejected"
	PhaseReading    Phase = "reading"
	PhaseSubmitting Phase = "submitting"
	PhaseSucceeded  Phase = "succeeded"
	PhaseFailed     Phase = "failed"
)

// ViewState is everything the presentation layer needs to render the page.
type ViewState struct {
	// IsLoading is true while a remote call is pending. The submit control
	// is disabled for as long as it is set.
	IsLoading bool `json:"is_loading"`

	// OriginalImage is the data URL of the last accepted upload. It is set
	// before the remote call starts.
	OriginalImage *string `json:"original_image"`

	// ProcessedImage is the URL returned by the last successful remote call.
	ProcessedImage *string `json:"processed_image"`

	// FieldError is the first validation message of the last rejected
	// submission, rendered beneath the file input.
	FieldError string `json:"field_error,omitempty"`

	Phase Phase `json:"phase"`
}

// CanSubmit reports whether the submit control should be enabled.
func (s ViewState) CanSubmit() bool {
	return !s.IsLoading
}
