package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/bg-remover/internal/logger"
	"github.com/MKhiriev/bg-remover/internal/store"
	"github.com/MKhiriev/bg-remover/internal/validators"
	"github.com/MKhiriev/bg-remover/models"
)

// RemovalValidationService checks an upload before the wrapped service sees
// it. A rejected upload is recorded as the session's field error and never
// reaches the remote service.
type RemovalValidationService struct {
	inner     RemovalService
	validator validators.Validator
	storage   store.SessionStorage

	logger *logger.Logger
}

func NewRemovalValidationService(storage store.SessionStorage, logger *logger.Logger) RemovalServiceWrapper {
	return &RemovalValidationService{
		validator: validators.NewImageUploadValidator(),
		storage:   storage,
		logger:    logger,
	}
}

func (v *RemovalValidationService) Submit(ctx context.Context, sessionID string, upload models.UploadRequest) (<-chan models.Outcome, error) {
	if err := v.storage.BeginValidation(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("error beginning validation: %w", err)
	}

	if err := v.validator.Validate(ctx, upload); err != nil {
		message := validators.Message(err)
		if message == "" {
			message = err.Error()
		}
		if rejectErr := v.storage.RejectSubmission(ctx, sessionID, message); rejectErr != nil {
			return nil, fmt.Errorf("error rejecting submission: %w", rejectErr)
		}

		v.logger.WithSession(sessionID).Debug().
			Str("file_name", upload.FileName).
			Int64("size", upload.Size).
			Str("message", message).
			Msg("upload rejected")
		return nil, fmt.Errorf("error during image validation before submission: %w", err)
	}

	return v.inner.Submit(ctx, sessionID, upload)
}

func (v *RemovalValidationService) State(ctx context.Context, sessionID string) (models.ViewState, error) {
	return v.inner.State(ctx, sessionID)
}

func (v *RemovalValidationService) Reset(ctx context.Context, sessionID string) error {
	return v.inner.Reset(ctx, sessionID)
}

func (v *RemovalValidationService) Close() {
	v.inner.Close()
}

func (v *RemovalValidationService) Wrap(wrapper RemovalService) RemovalService {
	v.inner = wrapper
	return v
}
