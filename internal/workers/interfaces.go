// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and returns; implementations spawn their own
// goroutines. Stop blocks until those goroutines have exited.
type Worker interface {
	Run()
	Stop()
}

// Synchronizer starts a sync round trip for every open camp.
type Synchronizer interface {
	SynchronizeAll()
}
