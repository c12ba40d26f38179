// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package camp

import (
	"fmt"
	"slices"

	"github.com/MKhiriev/go-camp-sync/models"
)

// GhostName is the name given to lists and items materialised by an
// operation that targets an id the snapshot does not contain yet.
const GhostName = "<ghost>"

// Apply projects op onto c and returns the resulting snapshot.
//
// The input is never mutated. Lists and items untouched by op are shared
// with c, and c itself is returned when op changes nothing, so callers may
// compare pointers to detect no-op updates. A nil c is treated as an empty
// camp. Revision is carried over unchanged.
func Apply(c *models.Camp, op models.Operation) (*models.Camp, error) {
	if c == nil {
		c = &models.Camp{}
	}

	switch op.Type {
	case models.OperationIdentity:
		return c, nil

	case models.OperationCreateCamp:
		if c.Name == op.Name {
			return c, nil
		}
		next := *c
		next.Name = op.Name
		return &next, nil

	case models.OperationRenameList:
		return updateList(c, op.ListID, func(l *models.List) *models.List {
			if l.Name == op.Name {
				return l
			}
			next := *l
			next.Name = op.Name
			return &next
		}), nil

	case models.OperationRenameItem:
		return updateList(c, op.ListID, func(l *models.List) *models.List {
			return updateItems(l, []string{op.ItemID}, func(it *models.Item) *models.Item {
				if it.Name == op.Name {
					return it
				}
				next := *it
				next.Name = op.Name
				return &next
			})
		}), nil

	case models.OperationChangeItemState:
		return updateList(c, op.ListID, func(l *models.List) *models.List {
			return updateItems(l, op.ItemIDs, func(it *models.Item) *models.Item {
				if it.State == op.State {
					return it
				}
				next := *it
				next.State = op.State
				return &next
			})
		}), nil

	case models.OperationChangeItemDeleted:
		return updateList(c, op.ListID, func(l *models.List) *models.List {
			return updateItems(l, op.ItemIDs, func(it *models.Item) *models.Item {
				if it.Deleted == op.Deleted {
					return it
				}
				next := *it
				next.Deleted = op.Deleted
				return &next
			})
		}), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownOperationKind, op.Type)
}

// ApplyAll folds Apply over ops from left to right.
func ApplyAll(c *models.Camp, ops []models.Operation) (*models.Camp, error) {
	var err error
	for _, op := range ops {
		c, err = Apply(c, op)
		if err != nil {
			return nil, err
		}
	}
	if c == nil {
		c = &models.Camp{}
	}
	return c, nil
}

// updateList runs fn on the list with the given id, appending a ghost list
// first when the camp has none. The camp is copied only when fn returns a
// different list pointer.
func updateList(c *models.Camp, listID string, fn func(*models.List) *models.List) *models.Camp {
	list, idx := c.FindList(listID)
	ghost := list == nil
	if ghost {
		list = &models.List{ID: listID, Name: GhostName}
	}

	updated := fn(list)
	if !ghost && updated == list {
		return c
	}

	next := *c
	if ghost {
		next.Lists = append(slices.Clone(c.Lists), updated)
	} else {
		next.Lists = slices.Clone(c.Lists)
		next.Lists[idx] = updated
	}
	return &next
}

// updateItems runs fn on every item of l named by ids, materialising ghost
// items for the missing ones. The list is copied only when something
// changed.
func updateItems(l *models.List, ids []string, fn func(*models.Item) *models.Item) *models.List {
	var items []*models.Item
	changed := func() []*models.Item {
		if items == nil {
			items = slices.Clone(l.Items)
		}
		return items
	}

	for _, id := range ids {
		current := l.Items
		if items != nil {
			current = items
		}

		var (
			item *models.Item
			idx  = -1
		)
		for i, it := range current {
			if it.ID == id {
				item, idx = it, i
				break
			}
		}

		if item == nil {
			ghost := fn(&models.Item{ID: id, Name: GhostName, State: models.Unpurchased})
			items = append(changed(), ghost)
			continue
		}

		if updated := fn(item); updated != item {
			changed()[idx] = updated
		}
	}

	if items == nil {
		return l
	}
	next := *l
	next.Items = items
	return &next
}
