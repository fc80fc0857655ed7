package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/bg-remover/internal/config"
	"github.com/MKhiriev/bg-remover/internal/logger"
	"github.com/MKhiriev/bg-remover/internal/store"
)

type Workers struct {
	workers []Worker
	wg      sync.WaitGroup
}

func NewWorkers(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Workers {
	logger.Info().Msg("creating new workers...")

	return &Workers{
		workers: []Worker{
			NewSessionSweeper(storages.SessionStorage, cfg.Server.SessionTTL, cfg.Workers.SweepInterval, logger),
		},
	}
}

// Run starts every worker and returns immediately. Workers stop when ctx is
// cancelled; use Wait to block until they have.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Add(1)
		go func(worker Worker) {
			defer w.wg.Done()
			worker.Run(ctx)
		}(worker)
	}
}

func (w *Workers) Wait() {
	w.wg.Wait()
}
