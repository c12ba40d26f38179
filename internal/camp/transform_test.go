// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package camp

import (
	"testing"

	"github.com/MKhiriev/go-camp-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	t1 = "2026-03-01T10:00:00.000Z"
	t2 = "2026-03-01T10:00:01.000Z"
	t3 = "2026-03-01T10:00:02.000Z"
)

func stateOp(id, ts, listID string, state models.ItemState, ids ...string) models.Operation {
	return models.Operation{ID: id, Type: models.OperationChangeItemState, Timestamp: ts, ListID: listID, ItemIDs: ids, State: state}
}

func renameListOp(id, ts, listID, name string) models.Operation {
	return models.Operation{ID: id, Type: models.OperationRenameList, Timestamp: ts, ListID: listID, Name: name}
}

func TestTransform(t *testing.T) {
	tests := []struct {
		name      string
		clientOps []models.Operation
		serverOps []models.Operation
		want      []models.Operation
	}{
		{
			name:      "no server ops",
			clientOps: []models.Operation{stateOp("c1", t1, "L", models.PackedIn, "A")},
			want:      []models.Operation{stateOp("c1", t1, "L", models.PackedIn, "A")},
		},
		{
			name:      "no client ops",
			serverOps: []models.Operation{stateOp("s1", t1, "L", models.PackedIn, "A")},
			want:      []models.Operation{},
		},
		{
			name:      "identical set op is absorbed",
			clientOps: []models.Operation{stateOp("c1", t1, "L", models.PackedIn, "A", "B")},
			serverOps: []models.Operation{stateOp("s1", t2, "L", models.PackedIn, "A", "B")},
			want:      []models.Operation{},
		},
		{
			name:      "equal timestamps absorb the client op",
			clientOps: []models.Operation{stateOp("c1", t1, "L", models.Purchased, "A", "B")},
			serverOps: []models.Operation{stateOp("s1", t1, "L", models.PackedIn, "A", "B")},
			want:      []models.Operation{},
		},
		{
			name:      "partial overlap shrinks the client op",
			clientOps: []models.Operation{stateOp("c1", t1, "L", models.PackedIn, "A", "B", "C")},
			serverOps: []models.Operation{stateOp("s1", t2, "L", models.Purchased, "B")},
			want:      []models.Operation{stateOp("c1", t1, "L", models.PackedIn, "A", "C")},
		},
		{
			name:      "disjoint ids pass unchanged",
			clientOps: []models.Operation{stateOp("c1", t1, "L", models.PackedIn, "A")},
			serverOps: []models.Operation{stateOp("s1", t2, "L", models.PackedIn, "B")},
			want:      []models.Operation{stateOp("c1", t1, "L", models.PackedIn, "A")},
		},
		{
			name:      "different lists pass unchanged",
			clientOps: []models.Operation{stateOp("c1", t1, "L1", models.PackedIn, "A")},
			serverOps: []models.Operation{stateOp("s1", t2, "L2", models.PackedIn, "A")},
			want:      []models.Operation{stateOp("c1", t1, "L1", models.PackedIn, "A")},
		},
		{
			name:      "different kinds pass unchanged",
			clientOps: []models.Operation{stateOp("c1", t1, "L", models.PackedIn, "A")},
			serverOps: []models.Operation{{ID: "s1", Type: models.OperationChangeItemDeleted, Timestamp: t2, ListID: "L", ItemIDs: []string{"A"}, Deleted: true}},
			want:      []models.Operation{stateOp("c1", t1, "L", models.PackedIn, "A")},
		},
		{
			name:      "later client op absorbs the server op",
			clientOps: []models.Operation{stateOp("c1", t3, "L", models.PackedIn, "A"), stateOp("c2", t1, "L", models.PackedOut, "A")},
			serverOps: []models.Operation{stateOp("s1", t2, "L", models.Purchased, "A")},
			want:      []models.Operation{stateOp("c1", t3, "L", models.PackedIn, "A"), stateOp("c2", t1, "L", models.PackedOut, "A")},
		},
		{
			name:      "renames are never merged",
			clientOps: []models.Operation{renameListOp("c1", t1, "L1", "Gear")},
			serverOps: []models.Operation{renameListOp("s1", t2, "L1", "Food")},
			want:      []models.Operation{renameListOp("c1", t1, "L1", "Gear")},
		},
		{
			name: "server ops applied in order against the rebased list",
			clientOps: []models.Operation{
				stateOp("c1", t1, "L", models.PackedIn, "A", "B"),
				stateOp("c2", t1, "L", models.PackedOut, "C"),
			},
			serverOps: []models.Operation{
				stateOp("s1", t2, "L", models.Purchased, "A"),
				stateOp("s2", t2, "L", models.Purchased, "B", "C"),
			},
			want: []models.Operation{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Transform(tt.clientOps, tt.serverOps)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransform_DoesNotMutateInputs(t *testing.T) {
	clientOps := []models.Operation{stateOp("c1", t1, "L", models.PackedIn, "A", "B", "C")}
	serverOps := []models.Operation{stateOp("s1", t2, "L", models.Purchased, "B")}

	got := Transform(clientOps, serverOps)

	assert.Equal(t, []string{"A", "C"}, got[0].ItemIDs)
	assert.Equal(t, []string{"A", "B", "C"}, clientOps[0].ItemIDs)
	assert.Equal(t, []string{"B"}, serverOps[0].ItemIDs)
	assert.Equal(t, models.OperationChangeItemState, serverOps[0].Type)
}

func TestTransform_DisjointSetsConverge(t *testing.T) {
	clientOps := []models.Operation{
		stateOp("c1", t1, "L1", models.PackedIn, "A", "B"),
		{ID: "c2", Type: models.OperationChangeItemDeleted, Timestamp: t1, ListID: "L2", ItemIDs: []string{"X"}, Deleted: true},
		stateOp("c3", t1, "L2", models.Purchased, "Y"),
	}
	serverOps := []models.Operation{
		stateOp("s1", t2, "L1", models.PackedOut, "C"),
		{ID: "s2", Type: models.OperationChangeItemDeleted, Timestamp: t2, ListID: "L2", ItemIDs: []string{"Z"}, Deleted: true},
		stateOp("s3", t2, "L2", models.Purchased, "W"),
	}

	assert.Equal(t, clientOps, Transform(clientOps, serverOps))
}

func TestLaterThan(t *testing.T) {
	assert.True(t, laterThan(t2, t1))
	assert.False(t, laterThan(t1, t2))
	assert.False(t, laterThan(t1, t1))
	// same instant, different offsets
	assert.False(t, laterThan("2026-03-01T12:00:00.000+02:00", t1))
	assert.True(t, laterThan("b", "a"))
}
