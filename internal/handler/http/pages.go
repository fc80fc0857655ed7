package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/bg-remover/internal/app"
	"github.com/MKhiriev/bg-remover/internal/logger"
	"github.com/MKhiriev/bg-remover/internal/store"
	"github.com/MKhiriev/bg-remover/internal/validators"
	"github.com/MKhiriev/bg-remover/models"
)

const (
	// imageFormField is the multipart field carrying the upload.
	imageFormField = "image"

	// maxUploadBody caps the whole multipart body. The slack above
	// MaxImageSize leaves room for the multipart envelope so that a file at
	// the limit still parses and is judged by the size rule.
	maxUploadBody = validators.MaxImageSize + 1<<20
)

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	data := newPageData(models.ViewState{Phase: models.PhaseIdle}, nil)
	data.Title = app.MsgWelcomeTitle

	if err := h.render(w, pageHome, data, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to render home page")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
	}
}

func (h *Handler) remover(w http.ResponseWriter, r *http.Request) {
	h.renderRemover(w, r, http.StatusOK)
}

func (h *Handler) submitImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sessionID, err := sessionFromRequest(r)
	if err != nil {
		log.Err(err).Msg("submit without session")
		http.Error(w, app.MsgNoSessionProvided, statusFromError(err))
		return
	}

	upload, err := readUpload(w, r)
	if err != nil {
		log.Err(err).Msg("failed to read multipart body")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if _, err = h.services.RemovalService.Submit(ctx, sessionID, upload); err != nil {
		switch {
		case errors.Is(err, validators.ErrValidation):
			log.Debug().Err(err).Str("file_name", upload.FileName).Msg("upload rejected")
			h.renderRemover(w, r, http.StatusUnprocessableEntity)
		case errors.Is(err, store.ErrSubmissionInFlight):
			log.Debug().Msg("upload while a removal is in flight")
			h.renderRemover(w, r, http.StatusConflict)
		default:
			log.Err(err).Msg("failed to submit image")
			http.Error(w, app.MsgInternalServerError, statusFromError(err))
		}
		return
	}

	log.Info().Str("file_name", upload.FileName).Int64("size", upload.Size).Msg("image submitted")
	http.Redirect(w, r, "/remover", http.StatusSeeOther)
}

func (h *Handler) resetSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	sessionID, err := sessionFromRequest(r)
	if err != nil {
		http.Error(w, app.MsgNoSessionProvided, statusFromError(err))
		return
	}

	if err = h.services.RemovalService.Reset(r.Context(), sessionID); err != nil {
		log.Err(err).Msg("failed to reset session")
		http.Error(w, app.MsgInternalServerError, statusFromError(err))
		return
	}

	http.Redirect(w, r, "/remover", http.StatusSeeOther)
}

func (h *Handler) renderRemover(w http.ResponseWriter, r *http.Request, status int) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sessionID, err := sessionFromRequest(r)
	if err != nil {
		http.Error(w, app.MsgNoSessionProvided, statusFromError(err))
		return
	}

	state, err := h.services.RemovalService.State(ctx, sessionID)
	if err != nil {
		log.Err(err).Msg("failed to load view state")
		http.Error(w, app.MsgInternalServerError, statusFromError(err))
		return
	}

	notifications, err := h.services.NotificationService.List(ctx, sessionID)
	if err != nil {
		log.Err(err).Msg("failed to list notifications")
		http.Error(w, app.MsgInternalServerError, statusFromError(err))
		return
	}

	if err = h.render(w, pageRemover, newPageData(state, notifications), status); err != nil {
		log.Err(err).Msg("failed to render remover page")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
	}
}

// readUpload turns the multipart body into an UploadRequest. A missing file
// yields an empty request and an oversized body yields one whose Size is
// over the limit, so both reach the validation rules instead of failing here.
func readUpload(w http.ResponseWriter, r *http.Request) (models.UploadRequest, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBody)

	if err := r.ParseMultipartForm(maxUploadBody); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return models.UploadRequest{Size: tooLarge.Limit + 1}, nil
		}
		return models.UploadRequest{}, err
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(imageFormField)
	if errors.Is(err, http.ErrMissingFile) {
		return models.UploadRequest{}, nil
	}
	if err != nil {
		return models.UploadRequest{}, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return models.UploadRequest{}, err
	}

	// Browsers send an empty part when the input is left blank.
	if header.Filename == "" && len(data) == 0 {
		return models.UploadRequest{}, nil
	}

	return models.UploadRequest{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Data:        data,
	}, nil
}
