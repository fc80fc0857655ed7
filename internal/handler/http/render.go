// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/bg-remover/internal/app"
	"github.com/MKhiriev/bg-remover/internal/validators"
	"github.com/MKhiriev/bg-remover/models"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageHome    = "home"
	pageRemover = "remover"
)

// pages holds one template set per page, each sharing the layout.
var pages = parsePages(pageHome, pageRemover)

func parsePages(names ...string) map[string]*template.Template {
	parsed := make(map[string]*template.Template, len(names))
	for _, name := range names {
		parsed[name] = template.Must(
			template.New(name).Funcs(templateFuncs).
				ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html"),
		)
	}
	return parsed
}

// pageData is the model every page template renders.
type pageData struct {
	Title            string
	LinkToForm       string
	UploadLabel      string
	Accept           string
	SubmitIdle       string
	SubmitLoading    string
	OriginalHeading  string
	ProcessedHeading string

	State         models.ViewState
	Notifications []models.Notification
}

func newPageData(state models.ViewState, notifications []models.Notification) pageData {
	return pageData{
		Title:            app.MsgAppTitle,
		LinkToForm:       app.MsgWelcomeLinkToForm,
		UploadLabel:      app.MsgUploadLabel,
		Accept:           strings.Join(validators.AllowedImageTypes, ","),
		SubmitIdle:       app.MsgSubmitIdle,
		SubmitLoading:    app.MsgSubmitLoading,
		OriginalHeading:  app.MsgOriginalHeading,
		ProcessedHeading: app.MsgProcessedHeading,
		State:            state,
		Notifications:    notifications,
	}
}

var templateFuncs = template.FuncMap{
	"safeImageURL": safeImageURL,
	// expiresAt is replaced per render with the configured lifetime.
	"expiresAt": func(models.Notification) int64 { return 0 },
}

// safeImageURL marks image sources that html/template would otherwise
// rewrite. Only image data URLs and http(s) URLs pass through.
func safeImageURL(src *string) template.URL {
	if src == nil {
		return ""
	}
	value := *src
	lower := strings.ToLower(value)
	switch {
	case strings.HasPrefix(lower, "data:image/"),
		strings.HasPrefix(lower, "https://"),
		strings.HasPrefix(lower, "http://"):
		return template.URL(value)
	default:
		return ""
	}
}

// render executes page into a buffer first so a template failure can still
// produce a clean 500.
func (h *Handler) render(w http.ResponseWriter, page string, data pageData, status int) error {
	tmpl, ok := pages[page]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPage, page)
	}

	tmpl, err := tmpl.Clone()
	if err != nil {
		return fmt.Errorf("error cloning %s template: %w", page, err)
	}
	ttl := h.notificationTTL
	tmpl.Funcs(template.FuncMap{
		"expiresAt": func(n models.Notification) int64 {
			return n.CreatedAt.Add(ttl).UnixMilli()
		},
	})

	var buf bytes.Buffer
	if err = tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("error rendering %s page: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, err = buf.WriteTo(w)
	return err
}

// notificationDeadline is exposed for the JSON API so clients can hide a
// notification without polling.
func (h *Handler) notificationDeadline(n models.Notification) time.Time {
	return n.CreatedAt.Add(h.notificationTTL)
}
