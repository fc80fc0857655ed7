package service

import (
	"fmt"

	"github.com/MKhiriev/bg-remover/internal/adapter"
	"github.com/MKhiriev/bg-remover/internal/config"
	"github.com/MKhiriev/bg-remover/internal/logger"
	"github.com/MKhiriev/bg-remover/internal/store"
	"github.com/MKhiriev/bg-remover/models"
)

type Services struct {
	RemovalService      RemovalService
	NotificationService NotificationService
	AppInfoService      AppInfoService
}

func NewServices(storages *store.Storages, removalAdapter adapter.RemovalAdapter, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	notificationService := NewNotificationService(storages.SessionStorage, cfg.App, logger)

	removalService := NewRemovalValidationService(storages.SessionStorage, logger).
		Wrap(NewRemovalService(storages.SessionStorage, removalAdapter, notificationService, logger))

	return &Services{
		RemovalService:      removalService,
		NotificationService: notificationService,
		AppInfoService:      appInfoService,
	}, nil
}

// Close stops pending removals first so that their notifications are
// raised, or dropped, before the notification timers are stopped.
func (s *Services) Close() {
	s.RemovalService.Close()
	s.NotificationService.Close()
}
