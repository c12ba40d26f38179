// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-camp-sync/internal/config"
	"github.com/MKhiriev/go-camp-sync/models"
)

// testSyncConfig retries fast so contention tests finish quickly.
var testSyncConfig = config.Sync{
	MaxAttempts:    3,
	RetryBaseDelay: time.Millisecond,
	RetryMaxDelay:  2 * time.Millisecond,
	DebounceDelay:  20 * time.Millisecond,
}

// sequenceIDs hands out prefix-1, prefix-2, ...
type sequenceIDs struct {
	prefix string
	n      atomic.Int64
}

func (s *sequenceIDs) Generate() string {
	return fmt.Sprintf("%s-%d", s.prefix, s.n.Add(1))
}

func ts(second int) string {
	return fmt.Sprintf("2026-01-01T00:00:%02d.000Z", second)
}

func createCampOp(id, name string) models.Operation {
	return models.Operation{ID: id, Type: models.OperationCreateCamp, Timestamp: ts(0), Name: name}
}

func renameListOp(id string, second int, listID, name string) models.Operation {
	return models.Operation{ID: id, Type: models.OperationRenameList, Timestamp: ts(second), ListID: listID, Name: name}
}

func renameItemOp(id string, second int, listID, itemID, name string) models.Operation {
	return models.Operation{ID: id, Type: models.OperationRenameItem, Timestamp: ts(second), ListID: listID, ItemID: itemID, Name: name}
}

func itemStateOp(id string, second int, listID string, state models.ItemState, itemIDs ...string) models.Operation {
	return models.Operation{ID: id, Type: models.OperationChangeItemState, Timestamp: ts(second), ListID: listID, ItemIDs: itemIDs, State: state}
}

// itemNames flattens a snapshot into listID/itemID -> name.
func itemNames(c *models.Camp) map[string]string {
	names := make(map[string]string)
	if c == nil {
		return names
	}
	for _, l := range c.Lists {
		names[l.ID] = l.Name
		for _, it := range l.Items {
			names[l.ID+"/"+it.ID] = it.Name
		}
	}
	return names
}
