// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CampState is the client-side synchronization record of one open camp.
// It is persisted locally so that queued edits survive a restart.
type CampState struct {
	CampID string `json:"camp_id"`
	UserID int64  `json:"user_id"`

	// Current is the speculative snapshot: Server plus PendingOps.
	Current *Camp `json:"current"`

	// Server is the last snapshot confirmed by the server; nil until the
	// camp was created on the server.
	Server *Camp `json:"server,omitempty"`

	// LastServerOperation is the server revision the client has caught up to.
	LastServerOperation int64 `json:"last_server_operation"`

	// PendingOps are the operations not yet acknowledged by the server.
	PendingOps []Operation `json:"pending_ops"`

	UpdatedAt time.Time `json:"updated_at"`
}
