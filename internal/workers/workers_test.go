// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/bg-remover/internal/config"
	"github.com/MKhiriev/bg-remover/internal/logger"
	"github.com/MKhiriev/bg-remover/internal/store"
)

// mockWorker records how many times Run was called and blocks until ctx
// is cancelled.
type mockWorker struct {
	mu       sync.Mutex
	runCount int
	started  chan struct{}
}

func newMockWorker() *mockWorker {
	return &mockWorker{started: make(chan struct{})}
}

func (m *mockWorker) Run(ctx context.Context) {
	m.mu.Lock()
	m.runCount++
	m.mu.Unlock()
	close(m.started)
	<-ctx.Done()
}

func (m *mockWorker) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.runCount
}

func TestWorkers_Run_AllWorkersAreStarted(t *testing.T) {
	w1, w2, w3 := newMockWorker(), newMockWorker(), newMockWorker()
	ws := &Workers{workers: []Worker{w1, w2, w3}}

	ctx, cancel := context.WithCancel(context.Background())
	ws.Run(ctx)

	for _, w := range []*mockWorker{w1, w2, w3} {
		select {
		case <-w.started:
		case <-time.After(time.Second):
			t.Fatal("worker was not started")
		}
	}

	cancel()
	ws.Wait()

	for i, w := range []*mockWorker{w1, w2, w3} {
		assert.Equal(t, 1, w.count(), "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{}

	ws.Run(context.Background())
	ws.Wait()
}

func TestWorkers_Wait_ReturnsAfterCancel(t *testing.T) {
	ws := &Workers{workers: []Worker{newMockWorker()}}

	ctx, cancel := context.WithCancel(context.Background())
	ws.Run(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		ws.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after cancel")
	}
}

func TestNewWorkers(t *testing.T) {
	cfg := config.StructuredConfig{
		Server:  config.Server{SessionTTL: time.Hour},
		Workers: config.Workers{SweepInterval: time.Minute},
	}

	ws := NewWorkers(store.NewStorages(logger.Nop()), cfg, logger.Nop())

	require.Len(t, ws.workers, 1)
	sweeper, ok := ws.workers[0].(*SessionSweeper)
	require.True(t, ok)
	assert.Equal(t, time.Hour, sweeper.idleTTL)
	assert.Equal(t, time.Minute, sweeper.interval)
}
