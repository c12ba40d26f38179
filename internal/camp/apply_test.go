// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package camp

import (
	"testing"

	"github.com/MKhiriev/go-camp-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func sampleCamp() *models.Camp {
	return &models.Camp{
		ID:       "camp-1",
		Name:     "Summer",
		Revision: 4,
		Lists: []*models.List{
			{ID: "L1", Name: "Food", Items: []*models.Item{
				{ID: "A", Name: "Bread", State: models.Unpurchased},
				{ID: "B", Name: "Cheese", State: models.Purchased},
			}},
			{ID: "L2", Name: "Gear", Items: []*models.Item{
				{ID: "C", Name: "Tent", State: models.PackedIn},
			}},
		},
	}
}

func setState(listID string, state models.ItemState, ids ...string) models.Operation {
	return models.Operation{ID: "op-" + listID, Type: models.OperationChangeItemState, ListID: listID, ItemIDs: ids, State: state}
}

// ---------------------------------------------------------------------------
// TestApply
// ---------------------------------------------------------------------------

func TestApply_Identity(t *testing.T) {
	c := sampleCamp()
	got, err := Apply(c, models.Operation{ID: "x", Type: models.OperationIdentity})
	require.NoError(t, err)
	assert.Same(t, c, got)
}

func TestApply_CreateCamp(t *testing.T) {
	got, err := Apply(nil, models.Operation{Type: models.OperationCreateCamp, Name: "Camp 1"})
	require.NoError(t, err)
	assert.Equal(t, "Camp 1", got.Name)
	assert.Empty(t, got.Lists)
	assert.Zero(t, got.Revision)

	same, err := Apply(got, models.Operation{Type: models.OperationCreateCamp, Name: "Camp 1"})
	require.NoError(t, err)
	assert.Same(t, got, same)
}

func TestApply_RenameList(t *testing.T) {
	c := sampleCamp()

	got, err := Apply(c, models.Operation{Type: models.OperationRenameList, ListID: "L1", Name: "Snacks"})
	require.NoError(t, err)

	assert.NotSame(t, c, got)
	assert.Equal(t, "Snacks", got.Lists[0].Name)
	assert.Equal(t, "Food", c.Lists[0].Name, "input must not be mutated")
	assert.Same(t, c.Lists[1], got.Lists[1], "untouched list is shared")
	assert.Same(t, c.Lists[0].Items[0], got.Lists[0].Items[0], "items of a renamed list are shared")
	assert.Equal(t, c.Revision, got.Revision)
}

func TestApply_RenameListCreatesMissingList(t *testing.T) {
	c := sampleCamp()

	got, err := Apply(c, models.Operation{Type: models.OperationRenameList, ListID: "L3", Name: "Drinks"})
	require.NoError(t, err)

	require.Len(t, got.Lists, 3)
	assert.Len(t, c.Lists, 2)
	assert.Equal(t, "L3", got.Lists[2].ID)
	assert.Equal(t, "Drinks", got.Lists[2].Name)
	assert.Empty(t, got.Lists[2].Items)
}

func TestApply_RenameItem(t *testing.T) {
	c := sampleCamp()

	got, err := Apply(c, models.Operation{Type: models.OperationRenameItem, ListID: "L1", ItemID: "B", Name: "Brie"})
	require.NoError(t, err)

	assert.Equal(t, "Brie", got.Lists[0].Items[1].Name)
	assert.Equal(t, models.Purchased, got.Lists[0].Items[1].State)
	assert.Equal(t, "Cheese", c.Lists[0].Items[1].Name)
	assert.Same(t, c.Lists[0].Items[0], got.Lists[0].Items[0])
	assert.Same(t, c.Lists[1], got.Lists[1])
}

func TestApply_RenameItemInMissingListMaterialisesGhostList(t *testing.T) {
	got, err := Apply(&models.Camp{}, models.Operation{Type: models.OperationRenameItem, ListID: "L9", ItemID: "Z", Name: "Rope"})
	require.NoError(t, err)

	require.Len(t, got.Lists, 1)
	assert.Equal(t, GhostName, got.Lists[0].Name)
	require.Len(t, got.Lists[0].Items, 1)
	assert.Equal(t, models.Item{ID: "Z", Name: "Rope", State: models.Unpurchased}, *got.Lists[0].Items[0])
}

func TestApply_ChangeItemStateGhostTolerance(t *testing.T) {
	got, err := Apply(&models.Camp{}, setState("L", models.PackedIn, "X"))
	require.NoError(t, err)

	require.Len(t, got.Lists, 1)
	list := got.Lists[0]
	assert.Equal(t, "L", list.ID)
	assert.Equal(t, GhostName, list.Name)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "X", list.Items[0].ID)
	assert.Equal(t, GhostName, list.Items[0].Name)
	assert.Equal(t, models.PackedIn, list.Items[0].State)
	assert.False(t, list.Items[0].Deleted)
}

func TestApply_ChangeItemState(t *testing.T) {
	c := sampleCamp()

	got, err := Apply(c, setState("L1", models.PackedIn, "A", "B", "N"))
	require.NoError(t, err)

	items := got.Lists[0].Items
	require.Len(t, items, 3)
	assert.Equal(t, models.PackedIn, items[0].State)
	assert.Equal(t, models.PackedIn, items[1].State)
	assert.Equal(t, "N", items[2].ID)
	assert.Equal(t, models.PackedIn, items[2].State)
	assert.Len(t, c.Lists[0].Items, 2)
	assert.Equal(t, models.Unpurchased, c.Lists[0].Items[0].State)
}

func TestApply_ChangeItemStateAlreadyAtTarget(t *testing.T) {
	c := sampleCamp()

	got, err := Apply(c, setState("L1", models.Purchased, "B"))
	require.NoError(t, err)
	assert.Same(t, c, got)

	got, err = Apply(c, setState("L1", models.Purchased, "A", "B"))
	require.NoError(t, err)
	assert.NotSame(t, c, got)
	assert.Same(t, c.Lists[0].Items[1], got.Lists[0].Items[1], "item already at target keeps its identity")
}

func TestApply_ChangeItemDeleted(t *testing.T) {
	c := sampleCamp()

	got, err := Apply(c, models.Operation{Type: models.OperationChangeItemDeleted, ListID: "L2", ItemIDs: []string{"C"}, Deleted: true})
	require.NoError(t, err)
	assert.True(t, got.Lists[1].Items[0].Deleted)
	assert.Equal(t, models.PackedIn, got.Lists[1].Items[0].State)
	assert.False(t, c.Lists[1].Items[0].Deleted)
	assert.Same(t, c.Lists[0], got.Lists[0])

	restored, err := Apply(got, models.Operation{Type: models.OperationChangeItemDeleted, ListID: "L2", ItemIDs: []string{"C"}, Deleted: false})
	require.NoError(t, err)
	assert.False(t, restored.Lists[1].Items[0].Deleted)

	noop, err := Apply(c, models.Operation{Type: models.OperationChangeItemDeleted, ListID: "L2", ItemIDs: []string{"C"}, Deleted: false})
	require.NoError(t, err)
	assert.Same(t, c, noop)
}

func TestApply_UnknownOperationKind(t *testing.T) {
	_, err := Apply(sampleCamp(), models.Operation{Type: "CREATE_CAMP_LIST"})
	require.ErrorIs(t, err, ErrUnknownOperationKind)
}

// ---------------------------------------------------------------------------
// TestApplyAll
// ---------------------------------------------------------------------------

func TestApplyAll(t *testing.T) {
	ops := []models.Operation{
		{Type: models.OperationCreateCamp, Name: "Camp 1"},
		{Type: models.OperationRenameList, ListID: "L1", Name: "Gear"},
		{Type: models.OperationRenameItem, ListID: "L1", ItemID: "I1", Name: "Tent"},
		setState("L1", models.Purchased, "I1"),
		{Type: models.OperationIdentity},
	}

	got, err := ApplyAll(nil, ops)
	require.NoError(t, err)

	assert.Equal(t, "Camp 1", got.Name)
	require.Len(t, got.Lists, 1)
	assert.Equal(t, "Gear", got.Lists[0].Name)
	require.Len(t, got.Lists[0].Items, 1)
	assert.Equal(t, models.Item{ID: "I1", Name: "Tent", State: models.Purchased}, *got.Lists[0].Items[0])
}

func TestApplyAll_Empty(t *testing.T) {
	c := sampleCamp()
	got, err := ApplyAll(c, nil)
	require.NoError(t, err)
	assert.Same(t, c, got)

	empty, err := ApplyAll(nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, empty)
}

func TestApplyAll_StopsOnUnknownOperation(t *testing.T) {
	_, err := ApplyAll(nil, []models.Operation{
		{Type: models.OperationCreateCamp, Name: "Camp 1"},
		{Type: "MOVE_CAMP"},
	})
	require.ErrorIs(t, err, ErrUnknownOperationKind)
}
