package store

import "github.com/MKhiriev/bg-remover/internal/logger"

type Storages struct {
	SessionStorage SessionStorage
}

func NewStorages(logger *logger.Logger) *Storages {
	return &Storages{
		SessionStorage: NewSessionStorage(logger),
	}
}
