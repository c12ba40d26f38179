// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-camp-sync/internal/config"
	"github.com/MKhiriev/go-camp-sync/internal/logger"
)

const defaultSyncInterval = time.Minute

// SyncWorker polls every open camp on a fixed interval so that remote edits
// arrive even when nothing is edited locally.
type SyncWorker struct {
	synchronizer Synchronizer
	interval     time.Duration
	logger       *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncWorker creates a SyncWorker calling synchronizer.SynchronizeAll every
// cfg.SyncInterval, one minute when unset. The worker is idle until Run is
// called.
func NewSyncWorker(synchronizer Synchronizer, cfg config.ClientWorkers, logger *logger.Logger) *SyncWorker {
	interval := cfg.SyncInterval
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	logger.Debug().Dur("interval", interval).Msg("creating sync worker")
	return &SyncWorker{synchronizer: synchronizer, interval: interval, logger: logger}
}

// Run implements Worker. It stops any previously running loop and launches
// a goroutine that ticks until Stop is called.
func (w *SyncWorker) Run() {
	w.Stop()

	w.mu.Lock()
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				w.logger.Debug().Str("func", "*SyncWorker.Run").Msg("periodic resync")
				w.synchronizer.SynchronizeAll()
			}
		}
	}()
}

// Stop implements Worker. It is a no-op when the worker is not running.
func (w *SyncWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
