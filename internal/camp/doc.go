// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package camp holds the pure core of camp synchronization.
//
// Apply and ApplyAll project operations onto immutable, structurally shared
// camp snapshots. Transform rebases a client's pending operations over the
// operations another writer committed first. OperationFactory authors new
// operations with fresh ids and UTC timestamps.
//
// Nothing in this package performs I/O or keeps state, so both the server
// and the client run the exact same projection.
package camp
