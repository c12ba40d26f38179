// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "slices"

// OperationType is the tag of an [Operation].
type OperationType string

const (
	// OperationCreateCamp names a new camp. It is always the first
	// operation of a camp's log.
	OperationCreateCamp OperationType = "CREATE_CAMP"
	// OperationRenameList renames a list, creating it when missing.
	OperationRenameList OperationType = "RENAME_CAMP_LIST"
	// OperationRenameItem renames an item, creating it (and its list) when missing.
	OperationRenameItem OperationType = "RENAME_CAMP_ITEM"
	// OperationChangeItemState moves a set of items of one list to a state.
	OperationChangeItemState OperationType = "CHANGE_CAMP_ITEM_STATE"
	// OperationChangeItemDeleted marks a set of items of one list as deleted
	// or restores them.
	OperationChangeItemDeleted OperationType = "CHANGE_CAMP_ITEM_DELETED"
	// OperationIdentity is the no-op an operation degenerates to once the
	// transform engine has fully absorbed it. It is never stored.
	OperationIdentity OperationType = "IDENTITY"
)

// Operation is one atomic, replayable camp edit.
//
// The payload fields used depend on Type:
//
//	CREATE_CAMP              Name
//	RENAME_CAMP_LIST         ListID, Name
//	RENAME_CAMP_ITEM         ListID, ItemID, Name
//	CHANGE_CAMP_ITEM_STATE   ListID, ItemIDs, State
//	CHANGE_CAMP_ITEM_DELETED ListID, ItemIDs, Deleted
//	IDENTITY                 none
type Operation struct {
	// ID is generated by the authoring client and is globally unique.
	ID string `json:"id"`

	Type OperationType `json:"type"`

	// Timestamp is the author's wall clock in ISO-8601 UTC. It only breaks
	// ties between concurrent edits and does not order the log.
	Timestamp string `json:"timestamp"`

	Name    string    `json:"name,omitempty"`
	ListID  string    `json:"list_id,omitempty"`
	ItemID  string    `json:"item_id,omitempty"`
	ItemIDs []string  `json:"item_ids,omitempty"`
	State   ItemState `json:"state,omitempty"`
	Deleted bool      `json:"deleted,omitempty"`
}

// IsItemSetOperation reports whether the operation changes a set of items
// of one list (state or deleted flag).
func (o Operation) IsItemSetOperation() bool {
	return o.Type == OperationChangeItemState || o.Type == OperationChangeItemDeleted
}

// Clone returns a deep copy of the operation.
func (o Operation) Clone() Operation {
	o.ItemIDs = slices.Clone(o.ItemIDs)
	return o
}

// CloneOperations deep-copies a list of operations. The result is never nil.
func CloneOperations(ops []Operation) []Operation {
	cloned := make([]Operation, len(ops))
	for i, op := range ops {
		cloned[i] = op.Clone()
	}
	return cloned
}
