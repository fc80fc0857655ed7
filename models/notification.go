// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Variant selects how a notification is styled.
type Variant string

const (
	// VariantDefault is used for success messages.
	VariantDefault Variant = "default"
	// VariantDestructive is used for failures.
	VariantDestructive Variant = "destructive"
)

// Notification is a transient message shown to the user after a submission.
// It is removed automatically once its TTL elapses and is never persisted.
type Notification struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Variant     Variant   `json:"variant"`
	CreatedAt   time.Time `json:"created_at"`
}

// IsDestructive reports whether n describes a failure.
func (n Notification) IsDestructive() bool {
	return n.Variant == VariantDestructive
}
