package tui

import "github.com/MKhiriev/bg-remover/models"

// NavigateTo switches the active page of RootModel.
type NavigateTo struct {
	Page string
}

// submittedMsg reports the synchronous part of a submission.
type submittedMsg struct {
	outcome <-chan models.Outcome
	err     error
}

// outcomeMsg carries the resolved outcome of a submission.
type outcomeMsg struct {
	outcome models.Outcome
}

// refreshedMsg is the view state and notifications read after any change.
type refreshedMsg struct {
	state         models.ViewState
	notifications []models.Notification
	err           error
}

type tickMsg struct{}

type copiedMsg struct {
	err error
}
