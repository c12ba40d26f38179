// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunkSlices(t *testing.T) {
	tests := []struct {
		name    string
		firstOp int64
		count   int
		want    []chunkSlice
	}{
		{
			name:    "empty range",
			firstOp: 5,
			count:   0,
			want:    nil,
		},
		{
			name:    "inside first chunk",
			firstOp: 0,
			count:   3,
			want:    []chunkSlice{{chunkID: 0, startIndex: 0, count: 3}},
		},
		{
			name:    "fills first chunk exactly",
			firstOp: 0,
			count:   100,
			want:    []chunkSlice{{chunkID: 0, startIndex: 0, count: 100}},
		},
		{
			name:    "appends to a partial chunk",
			firstOp: 42,
			count:   8,
			want:    []chunkSlice{{chunkID: 0, startIndex: 42, count: 8}},
		},
		{
			name:    "crosses one boundary",
			firstOp: 95,
			count:   10,
			want: []chunkSlice{
				{chunkID: 0, startIndex: 95, count: 5},
				{chunkID: 1, startIndex: 0, count: 5},
			},
		},
		{
			name:    "starts on a boundary",
			firstOp: 100,
			count:   1,
			want:    []chunkSlice{{chunkID: 1, startIndex: 0, count: 1}},
		},
		{
			name:    "ends on a boundary after crossing",
			firstOp: 50,
			count:   150,
			want: []chunkSlice{
				{chunkID: 0, startIndex: 50, count: 50},
				{chunkID: 1, startIndex: 0, count: 100},
			},
		},
		{
			name:    "spans middle chunks",
			firstOp: 150,
			count:   260,
			want: []chunkSlice{
				{chunkID: 1, startIndex: 50, count: 50},
				{chunkID: 2, startIndex: 0, count: 100},
				{chunkID: 3, startIndex: 0, count: 100},
				{chunkID: 4, startIndex: 0, count: 10},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := chunkSlices(tt.firstOp, tt.count)
			assert.Equal(t, tt.want, got)

			total := 0
			for _, s := range got {
				total += s.count
				assert.LessOrEqual(t, s.startIndex+s.count, OpChunkSize)
			}
			assert.Equal(t, tt.count, total)
		})
	}
}
