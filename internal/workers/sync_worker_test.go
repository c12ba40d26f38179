// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-camp-sync/internal/config"
	"github.com/MKhiriev/go-camp-sync/internal/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

type countingSynchronizer struct {
	calls atomic.Int32
}

func (c *countingSynchronizer) SynchronizeAll() {
	c.calls.Add(1)
}

func TestSyncWorker_TicksUntilStopped(t *testing.T) {
	defer goleak.VerifyNone(t)

	counter := &countingSynchronizer{}
	w := NewSyncWorker(counter, config.ClientWorkers{SyncInterval: 5 * time.Millisecond}, logger.Nop())

	w.Run()
	assert.Eventually(t, func() bool { return counter.calls.Load() >= 3 }, time.Second, time.Millisecond)
	w.Stop()

	stopped := counter.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, counter.calls.Load())
}

func TestSyncWorker_RunRestarts(t *testing.T) {
	defer goleak.VerifyNone(t)

	w := NewSyncWorker(&countingSynchronizer{}, config.ClientWorkers{SyncInterval: time.Hour}, logger.Nop())
	w.Run()
	w.Run()
	w.Stop()
	w.Stop()
}

func TestNewSyncWorker_DefaultInterval(t *testing.T) {
	w := NewSyncWorker(&countingSynchronizer{}, config.ClientWorkers{}, logger.Nop())
	assert.Equal(t, defaultSyncInterval, w.interval)
}
