// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// OpChunkSize is the number of operations stored per camp_operations row.
const OpChunkSize = 100

// chunkSlice addresses count operations of chunk chunkID starting at
// startIndex within that chunk.
type chunkSlice struct {
	chunkID    int64
	startIndex int
	count      int
}

// chunkSlices splits the log range [firstOp, firstOp+count) into per-chunk
// slices in ascending chunk order. A range that ends exactly on a chunk
// boundary does not produce an empty trailing slice.
func chunkSlices(firstOp int64, count int) []chunkSlice {
	if count <= 0 {
		return nil
	}

	lastOp := firstOp + int64(count)
	firstChunkID := firstOp / OpChunkSize
	lastChunkID := lastOp / OpChunkSize
	startIndex := int(firstOp % OpChunkSize)

	first := chunkSlice{chunkID: firstChunkID, startIndex: startIndex, count: count}
	if lastChunkID > firstChunkID {
		first.count = OpChunkSize - startIndex
	}
	slices := []chunkSlice{first}

	for chunkID := firstChunkID + 1; chunkID < lastChunkID; chunkID++ {
		slices = append(slices, chunkSlice{chunkID: chunkID, count: OpChunkSize})
	}

	if lastChunkID > firstChunkID && lastOp > lastChunkID*OpChunkSize {
		slices = append(slices, chunkSlice{chunkID: lastChunkID, count: int(lastOp % OpChunkSize)})
	}

	return slices
}
