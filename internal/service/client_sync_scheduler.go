// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"
	"time"
)

const defaultDebounceDelay = 2 * time.Second

// syncScheduler debounces sync requests of one camp: fn runs once, delay
// after the last Schedule call.
type syncScheduler struct {
	delay time.Duration
	fn    func()

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

func newSyncScheduler(delay time.Duration, fn func()) *syncScheduler {
	if delay <= 0 {
		delay = defaultDebounceDelay
	}
	return &syncScheduler{delay: delay, fn: fn}
}

// Schedule (re)starts the debounce window.
func (s *syncScheduler) Schedule() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.fn)
}

// Stop cancels the pending run. Schedule is a no-op afterwards.
func (s *syncScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
