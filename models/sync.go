// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncStatus is the outcome of a synchronization round trip.
type SyncStatus string

const (
	// SyncAllGood means every sent operation was committed unmodified.
	SyncAllGood SyncStatus = "ALL_GOOD"
	// SyncRetry means nothing happened; the client should try again later.
	// Clients also use it locally when the transport failed.
	SyncRetry SyncStatus = "RETRY"
	// SyncNeedUpdate means other writers advanced the camp and the response
	// carries the operations the client has not seen yet.
	SyncNeedUpdate SyncStatus = "NEED_UPDATE"
)

// SyncRequest is the body of the synchronization RPC.
type SyncRequest struct {
	// CampID is ignored when NewOps starts with CREATE_CAMP.
	CampID string `json:"camp_id"`

	// OpIndex is the last server revision the client knows, 0 when the
	// camp does not exist on the server yet.
	OpIndex int64 `json:"op_index"`

	// NewOps are the client's pending operations in authoring order.
	NewOps []Operation `json:"new_ops"`

	// UserID is resolved from the caller's credentials by the transport.
	UserID int64 `json:"-"`
}

// SyncResponse is the result of the synchronization RPC.
type SyncResponse struct {
	Status SyncStatus `json:"status"`

	// UpdatedOps is set for NEED_UPDATE: the server log from the client's
	// OpIndex onward.
	UpdatedOps []Operation `json:"updated_ops,omitempty"`

	// CampID is set when the request created a new camp.
	CampID string `json:"camp_id,omitempty"`
}

// WriteResult is returned by the storage engine after a conditional write.
type WriteResult struct {
	// Succeeded is false when another writer committed first.
	Succeeded bool

	// CampID is the id of the written camp, newly generated for fresh camps.
	CampID string

	// Revision is the camp revision after the write.
	Revision int64
}
