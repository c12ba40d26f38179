// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rpc

import (
	"context"

	"github.com/MKhiriev/go-camp-sync/models"
	"google.golang.org/grpc"
)

// CampSyncClient is the client API of camp.v1.CampSync.
type CampSyncClient interface {
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*AuthResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*AuthResponse, error)
	Synchronize(ctx context.Context, in *models.SyncRequest, opts ...grpc.CallOption) (*models.SyncResponse, error)
	GetCamp(ctx context.Context, in *GetCampRequest, opts ...grpc.CallOption) (*models.Camp, error)
	ListCamps(ctx context.Context, in *ListCampsRequest, opts ...grpc.CallOption) (*ListCampsResponse, error)
}

type campSyncClient struct {
	cc grpc.ClientConnInterface
}

// NewCampSyncClient returns a stub that always requests the JSON codec.
func NewCampSyncClient(cc grpc.ClientConnInterface) CampSyncClient {
	return &campSyncClient{cc: cc}
}

func (c *campSyncClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*AuthResponse, error) {
	out := new(AuthResponse)
	if err := c.invoke(ctx, FullMethodRegister, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *campSyncClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*AuthResponse, error) {
	out := new(AuthResponse)
	if err := c.invoke(ctx, FullMethodLogin, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *campSyncClient) Synchronize(ctx context.Context, in *models.SyncRequest, opts ...grpc.CallOption) (*models.SyncResponse, error) {
	out := new(models.SyncResponse)
	if err := c.invoke(ctx, FullMethodSynchronize, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *campSyncClient) GetCamp(ctx context.Context, in *GetCampRequest, opts ...grpc.CallOption) (*models.Camp, error) {
	out := new(models.Camp)
	if err := c.invoke(ctx, FullMethodGetCamp, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *campSyncClient) ListCamps(ctx context.Context, in *ListCampsRequest, opts ...grpc.CallOption) (*ListCampsResponse, error) {
	out := new(ListCampsResponse)
	if err := c.invoke(ctx, FullMethodListCamps, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *campSyncClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}
