package http

import (
	"time"

	"github.com/MKhiriev/bg-remover/internal/config"
	"github.com/MKhiriev/bg-remover/internal/logger"
	"github.com/MKhiriev/bg-remover/internal/service"
	"github.com/MKhiriev/bg-remover/internal/utils"
)

type Handler struct {
	services *service.Services
	ids      *utils.UUIDGenerator

	// notificationTTL lets pages hide a notification at the moment the
	// server drops it, without another round trip.
	notificationTTL time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	ttl := cfg.NotificationTTL
	if ttl <= 0 {
		ttl = config.DefaultNotificationTTL
	}

	return &Handler{
		services:        services,
		ids:             utils.NewUUIDGenerator(),
		notificationTTL: ttl,
		logger:          logger,
	}
}
