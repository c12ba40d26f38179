// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ItemState is the packing state of a single camp item.
type ItemState string

const (
	// Unpurchased is the initial state of every item, ghost items included.
	Unpurchased ItemState = "UNPURCHASED"
	// Purchased marks an item that was bought but not packed yet.
	Purchased ItemState = "PURCHASED"
	// PackedIn marks an item packed for the trip to the camp.
	PackedIn ItemState = "PACKEDIN"
	// PackedOut marks an item packed for the trip back.
	PackedOut ItemState = "PACKEDOUT"
)

// IsValid reports whether s is one of the known item states.
func (s ItemState) IsValid() bool {
	switch s {
	case Unpurchased, Purchased, PackedIn, PackedOut:
		return true
	}
	return false
}

// Camp is the synchronized document: a named set of packing lists.
//
// Camp values are treated as immutable once built. Lists and items are held
// by pointer so that a projected snapshot shares every untouched branch with
// the snapshot it was derived from; callers compare pointers to detect
// whether a branch changed.
type Camp struct {
	// ID is assigned by the server when the camp is first stored. Camps that
	// were created offline carry a client-side temporary id until then.
	ID string `json:"id"`

	// Name is set by the CREATE_CAMP operation.
	Name string `json:"name"`

	// Lists are keyed by List.ID; order is insertion order.
	Lists []*List `json:"lists"`

	// Revision is the number of operations ever committed for the camp on
	// the server. It doubles as the optimistic-concurrency version token.
	Revision int64 `json:"revision"`
}

// List is a named group of items inside a camp.
type List struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Items []*Item `json:"items"`
}

// Item is a single thing to buy and pack.
type Item struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	State   ItemState `json:"state"`
	Deleted bool      `json:"deleted"`
}

// FindList returns the list with the given id and its position, or nil and
// -1 when the camp has no such list.
func (c *Camp) FindList(id string) (*List, int) {
	if c == nil {
		return nil, -1
	}
	for i, l := range c.Lists {
		if l.ID == id {
			return l, i
		}
	}
	return nil, -1
}

// FindItem returns the item with the given id and its position, or nil and
// -1 when the list has no such item.
func (l *List) FindItem(id string) (*Item, int) {
	if l == nil {
		return nil, -1
	}
	for i, it := range l.Items {
		if it.ID == id {
			return it, i
		}
	}
	return nil, -1
}

// WithIdentity returns a shallow copy of the camp carrying the given id and
// revision. Lists are shared with the receiver.
func (c *Camp) WithIdentity(id string, revision int64) *Camp {
	next := &Camp{ID: id, Revision: revision}
	if c != nil {
		next.Name = c.Name
		next.Lists = c.Lists
	}
	return next
}

// CampSummary is the lightweight description of a camp attached to a user.
type CampSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Revision int64  `json:"revision"`
}
