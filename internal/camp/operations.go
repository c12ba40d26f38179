// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package camp

import (
	"slices"
	"time"

	"github.com/MKhiriev/go-camp-sync/models"
)

// TimestampLayout is the wire format of operation timestamps: UTC with
// millisecond precision, so that lexicographic and chronological order
// agree.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// IDGenerator produces globally unique ids.
type IDGenerator interface {
	Generate() string
}

// OperationFactory authors new operations stamped with a fresh id and the
// current UTC time.
type OperationFactory struct {
	ids IDGenerator
	now func() time.Time
}

// NewOperationFactory returns a factory drawing ids from ids and time from
// now. A nil now defaults to time.Now.
func NewOperationFactory(ids IDGenerator, now func() time.Time) *OperationFactory {
	if now == nil {
		now = time.Now
	}
	return &OperationFactory{ids: ids, now: now}
}

// NewID returns a fresh id for a list or an item.
func (f *OperationFactory) NewID() string {
	return f.ids.Generate()
}

func (f *OperationFactory) CreateCamp(name string) models.Operation {
	op := f.base(models.OperationCreateCamp)
	op.Name = name
	return op
}

func (f *OperationFactory) RenameList(listID, name string) models.Operation {
	op := f.base(models.OperationRenameList)
	op.ListID = listID
	op.Name = name
	return op
}

func (f *OperationFactory) RenameItem(listID, itemID, name string) models.Operation {
	op := f.base(models.OperationRenameItem)
	op.ListID = listID
	op.ItemID = itemID
	op.Name = name
	return op
}

func (f *OperationFactory) ChangeItemState(listID string, itemIDs []string, state models.ItemState) models.Operation {
	op := f.base(models.OperationChangeItemState)
	op.ListID = listID
	op.ItemIDs = uniqueIDs(itemIDs)
	op.State = state
	return op
}

func (f *OperationFactory) ChangeItemDeleted(listID string, itemIDs []string, deleted bool) models.Operation {
	op := f.base(models.OperationChangeItemDeleted)
	op.ListID = listID
	op.ItemIDs = uniqueIDs(itemIDs)
	op.Deleted = deleted
	return op
}

func (f *OperationFactory) base(t models.OperationType) models.Operation {
	return models.Operation{
		ID:        f.ids.Generate(),
		Type:      t,
		Timestamp: FormatTimestamp(f.now()),
	}
}

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// uniqueIDs copies ids dropping repeats; item ids of one operation form a set.
func uniqueIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}
