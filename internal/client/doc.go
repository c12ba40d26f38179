// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the headless camp sync client runtime.
//
// It signs in with the configured account, restores the camps persisted
// locally, opens the camps the account has on the server and keeps them in
// sync in the background until the process is asked to stop.
package client
