// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSyncScheduler_Debounces(t *testing.T) {
	var runs atomic.Int32
	s := newSyncScheduler(30*time.Millisecond, func() { runs.Add(1) })

	for range 5 {
		s.Schedule()
		time.Sleep(5 * time.Millisecond)
	}

	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, tick)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())
}

func TestSyncScheduler_StopCancelsPendingRun(t *testing.T) {
	var runs atomic.Int32
	s := newSyncScheduler(10*time.Millisecond, func() { runs.Add(1) })

	s.Schedule()
	s.Stop()
	s.Schedule()

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, runs.Load())
}

func TestSyncScheduler_DefaultDelay(t *testing.T) {
	s := newSyncScheduler(0, func() {})
	assert.Equal(t, defaultDebounceDelay, s.delay)
}
