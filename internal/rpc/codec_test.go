// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rpc

import (
	"testing"

	"github.com/MKhiriev/go-camp-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
)

func TestCodec_IsRegistered(t *testing.T) {
	codec := encoding.GetCodec(CodecName)
	require.NotNil(t, codec)
	assert.Equal(t, CodecName, codec.Name())
}

func TestCodec_SyncRequestDropsUserID(t *testing.T) {
	data, err := Codec{}.Marshal(&models.SyncRequest{CampID: "camp-1", OpIndex: 3, UserID: 42})
	require.NoError(t, err)
	assert.JSONEq(t, `{"camp_id":"camp-1","op_index":3,"new_ops":null}`, string(data))

	var got models.SyncRequest
	require.NoError(t, Codec{}.Unmarshal(data, &got))
	assert.Equal(t, models.SyncRequest{CampID: "camp-1", OpIndex: 3}, got)
}

func TestCodec_EmptyPayload(t *testing.T) {
	var req ListCampsRequest
	assert.NoError(t, Codec{}.Unmarshal(nil, &req))
}

func TestCodec_UnmarshalError(t *testing.T) {
	var resp AuthResponse
	assert.Error(t, Codec{}.Unmarshal([]byte("{"), &resp))
}
