// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package camp

import (
	"slices"
	"time"

	"github.com/MKhiriev/go-camp-sync/models"
)

// Transform rebases clientOps over serverOps, the operations another writer
// committed after the client's base revision.
//
// Each server operation is walked against the current rebased list. A
// client operation with a later timestamp absorbs the server operation,
// and the walk moves on to the next server operation. Item-set operations
// of the same kind on the same list lose the item ids the server operation
// already covered; a client operation left with no ids is absorbed and
// removed. Every other pair passes through unchanged.
//
// The timestamp tie-break trusts unsynchronized client clocks. It is a
// heuristic for concurrent edits, not a causal order.
//
// Neither input is mutated. The result is never nil.
func Transform(clientOps, serverOps []models.Operation) []models.Operation {
	rebased := models.CloneOperations(clientOps)

	for _, serverOp := range serverOps {
		s := serverOp
		for i := range rebased {
			var c models.Operation
			c, s = transformOperation(rebased[i], s)
			rebased[i] = c
			if s.Type == models.OperationIdentity {
				break
			}
		}
		rebased = slices.DeleteFunc(rebased, isIdentity)
	}

	return rebased
}

// transformOperation rebases one client operation over one server
// operation and returns both, either of them possibly degenerated to
// identity.
func transformOperation(c, s models.Operation) (models.Operation, models.Operation) {
	if laterThan(c.Timestamp, s.Timestamp) {
		return c, identityOf(s)
	}
	if c.Type != s.Type {
		return c, s
	}
	if !c.IsItemSetOperation() || c.ListID != s.ListID {
		return c, s
	}

	remaining := slices.DeleteFunc(slices.Clone(c.ItemIDs), func(id string) bool {
		return slices.Contains(s.ItemIDs, id)
	})
	switch len(remaining) {
	case len(c.ItemIDs):
		return c, s
	case 0:
		return identityOf(c), s
	}

	c.ItemIDs = remaining
	return c, s
}

func identityOf(op models.Operation) models.Operation {
	return models.Operation{ID: op.ID, Type: models.OperationIdentity, Timestamp: op.Timestamp}
}

func isIdentity(op models.Operation) bool {
	return op.Type == models.OperationIdentity
}

// laterThan compares two operation timestamps as instants, falling back to
// a plain string comparison when either does not parse.
func laterThan(a, b string) bool {
	ta, errA := time.Parse(time.RFC3339Nano, a)
	tb, errB := time.Parse(time.RFC3339Nano, b)
	if errA != nil || errB != nil {
		return a > b
	}
	return ta.After(tb)
}
