package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/bg-remover/internal/adapter"
	"github.com/MKhiriev/bg-remover/internal/service"
	"github.com/MKhiriev/bg-remover/internal/store"
	"github.com/MKhiriev/bg-remover/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrValidation:      http.StatusUnprocessableEntity,
	validators.ErrUnsupportedType: http.StatusInternalServerError,
	validators.ErrUnknownField:    http.StatusInternalServerError,

	store.ErrSubmissionInFlight: http.StatusConflict,
	store.ErrStaleSubmission:    http.StatusConflict,
	store.ErrEmptySessionID:     http.StatusBadRequest,

	adapter.ErrRemovalFailed: http.StatusBadGateway,

	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,
	service.ErrSubmissionAborted:     http.StatusConflict,

	ErrNoSession: http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
