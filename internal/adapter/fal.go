// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/bg-remover/internal/config"
	"github.com/MKhiriev/bg-remover/internal/logger"
	"github.com/MKhiriev/bg-remover/internal/utils"
	"github.com/MKhiriev/bg-remover/models"
)

// queueTicket is the response to a queue submission.
type queueTicket struct {
	RequestID   string `json:"request_id"`
	StatusURL   string `json:"status_url"`
	ResponseURL string `json:"response_url"`
}

// queueStatus is the response of the status endpoint.
type queueStatus struct {
	models.QueueUpdate
	Error string `json:"error,omitempty"`
}

type falAdapter struct {
	client *utils.HTTPClient

	baseURL      string
	model        string
	timeout      time.Duration
	pollInterval time.Duration

	logger *logger.Logger
}

// NewFalAdapter constructs the fal.ai queue implementation of
// [RemovalAdapter]. The credential, when set, is attached to every request
// as "Authorization: Key <key>". A missing key is not an error here: the
// remote side answers 401, which surfaces as ErrRemovalFailed.
//
// Returns an error if cfg.BaseURL cannot be parsed as an absolute URL or
// cfg.Model is empty.
func NewFalAdapter(cfg config.Adapter, logger *logger.Logger) (RemovalAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	model := strings.Trim(cfg.Model, "/")
	if model == "" {
		return nil, fmt.Errorf("invalid adapter model: empty")
	}

	// the per-request limit is the whole job budget; the job context is
	// what actually bounds the call.
	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	if key := strings.TrimSpace(cfg.Key); key != "" {
		client.SetHeader("Authorization", "Key "+key)
	}

	return &falAdapter{
		client:       client,
		baseURL:      baseURL,
		model:        model,
		timeout:      cfg.RequestTimeout,
		pollInterval: cfg.PollInterval,
		logger:       logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// RemoveBackground implements [RemovalAdapter]. It submits input to
// POST {base}/{model}, polls the status URL until the job is COMPLETED and
// then fetches the result. The whole sequence is bounded by the configured
// request timeout.
func (f *falAdapter) RemoveBackground(ctx context.Context, input models.RemovalInput, onUpdate func(models.QueueUpdate)) (models.RemovalResult, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	ticket, err := f.submit(ctx, input)
	if err != nil {
		return models.RemovalResult{}, fmt.Errorf("%w: %w", ErrRemovalFailed, err)
	}

	log := f.logger.With().Str("request_id", ticket.RequestID).Logger()
	log.Debug().Str("model", f.model).Msg("removal request queued")

	if err = f.awaitCompletion(ctx, ticket, onUpdate); err != nil {
		log.Debug().Err(err).Msg("removal request did not complete")
		return models.RemovalResult{}, fmt.Errorf("%w: %w", ErrRemovalFailed, err)
	}

	result, err := f.fetchResult(ctx, ticket)
	if err != nil {
		return models.RemovalResult{}, fmt.Errorf("%w: %w", ErrRemovalFailed, err)
	}

	log.Debug().Str("image_url", truncate(result.Image.URL, 80)).Msg("removal request completed")
	return result, nil
}

func (f *falAdapter) submit(ctx context.Context, input models.RemovalInput) (queueTicket, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetBody(input).
		Post("/" + f.model)
	if err != nil {
		return queueTicket{}, fmt.Errorf("submit request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return queueTicket{}, err
	}

	var ticket queueTicket
	if err = json.Unmarshal(resp.Body(), &ticket); err != nil {
		return queueTicket{}, fmt.Errorf("decode submit response: %w", err)
	}
	if ticket.RequestID == "" {
		return queueTicket{}, ErrEmptyRequestID
	}

	requestURL := f.requestURL(ticket.RequestID)
	if ticket.StatusURL == "" {
		ticket.StatusURL = requestURL + "/status"
	}
	if ticket.ResponseURL == "" {
		ticket.ResponseURL = requestURL
	}

	return ticket, nil
}

func (f *falAdapter) awaitCompletion(ctx context.Context, ticket queueTicket, onUpdate func(models.QueueUpdate)) error {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("wait for completion: %w", ctx.Err())
		case <-timer.C:
		}

		status, err := f.pollStatus(ctx, ticket)
		if err != nil {
			return err
		}

		if onUpdate != nil {
			onUpdate(status.QueueUpdate)
		}

		switch status.Status {
		case models.QueueStatusCompleted:
			if status.Error != "" {
				return fmt.Errorf("%w: %s", ErrRemoteJob, status.Error)
			}
			return nil
		case models.QueueStatusInQueue, models.QueueStatusInProgress:
			timer.Reset(f.pollInterval)
		default:
			return fmt.Errorf("%w: unexpected status %q", ErrRemoteJob, status.Status)
		}
	}
}

func (f *falAdapter) pollStatus(ctx context.Context, ticket queueTicket) (queueStatus, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParam("logs", "1").
		Get(ticket.StatusURL)
	if err != nil {
		return queueStatus{}, fmt.Errorf("status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return queueStatus{}, err
	}

	var status queueStatus
	if err = json.Unmarshal(resp.Body(), &status); err != nil {
		return queueStatus{}, fmt.Errorf("decode status response: %w", err)
	}

	return status, nil
}

func (f *falAdapter) fetchResult(ctx context.Context, ticket queueTicket) (models.RemovalResult, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		Get(ticket.ResponseURL)
	if err != nil {
		return models.RemovalResult{}, fmt.Errorf("result request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemovalResult{}, err
	}

	var result models.RemovalResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.RemovalResult{}, fmt.Errorf("decode result response: %w", err)
	}
	if result.Image.URL == "" {
		return models.RemovalResult{}, ErrEmptyResult
	}

	return result, nil
}

// requestURL returns {base}/{owner}/{alias}/requests/{id}. The queue
// addresses requests by application, so any model sub-path is dropped.
func (f *falAdapter) requestURL(requestID string) string {
	parts := strings.SplitN(f.model, "/", 3)
	appID := parts[0]
	if len(parts) > 1 {
		appID += "/" + parts[1]
	}

	return f.baseURL + "/" + appID + "/requests/" + url.PathEscape(requestID)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
