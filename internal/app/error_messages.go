// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer strings used by the
// services, the web handlers and the terminal client.
//
// Msg* constants are written into HTTP response bodies, notifications or log
// entries. Keeping them in one place keeps the wording identical on the web
// page and in the terminal.
package app

// Notification texts raised when a submission resolves.
const (
	MsgRemovalSucceededTitle       = "Background Removed"
	MsgRemovalSucceededDescription = "Your image background has been successfully removed!"

	MsgRemovalFailedTitle       = "Error"
	MsgRemovalFailedDescription = "Failed to remove the image background. Please try again."
)

// Labels shared by both presentation layers.
const (
	MsgAppTitle          = "Image Background Remover"
	MsgUploadLabel       = "Upload Image"
	MsgSubmitIdle        = "Remove Background"
	MsgSubmitLoading     = "Removing Background..."
	MsgOriginalHeading   = "Original Image"
	MsgProcessedHeading  = "Image with Background Removed"
	MsgWelcomeTitle      = "Welcome to the Image Background Remover"
	MsgWelcomeLinkToForm = "Go to Background Remover"

	// MsgSubmissionInFlight is the status line shown when a file is
	// submitted while the previous removal is still pending.
	MsgSubmissionInFlight = "a background removal is already in progress"
)

// HTTP response bodies.
const (
	// MsgInvalidDataProvided is returned when the multipart body cannot be
	// parsed.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgNoSessionProvided is returned when the session cookie is missing
	// from a request that needs it.
	MsgNoSessionProvided = "no session provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
