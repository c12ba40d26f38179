// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rpc

import (
	"context"

	"github.com/MKhiriev/go-camp-sync/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "camp.v1.CampSync"

// Full method names, as seen by interceptors.
const (
	FullMethodRegister    = "/" + ServiceName + "/Register"
	FullMethodLogin       = "/" + ServiceName + "/Login"
	FullMethodSynchronize = "/" + ServiceName + "/Synchronize"
	FullMethodGetCamp     = "/" + ServiceName + "/GetCamp"
	FullMethodListCamps   = "/" + ServiceName + "/ListCamps"
)

// CampSyncServer is the server API of camp.v1.CampSync.
type CampSyncServer interface {
	Register(context.Context, *RegisterRequest) (*AuthResponse, error)
	Login(context.Context, *LoginRequest) (*AuthResponse, error)
	Synchronize(context.Context, *models.SyncRequest) (*models.SyncResponse, error)
	GetCamp(context.Context, *GetCampRequest) (*models.Camp, error)
	ListCamps(context.Context, *ListCampsRequest) (*ListCampsResponse, error)
}

// UnimplementedCampSyncServer answers codes.Unimplemented for every method.
// Embed it to stay forward compatible.
type UnimplementedCampSyncServer struct{}

func (UnimplementedCampSyncServer) Register(context.Context, *RegisterRequest) (*AuthResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Register not implemented")
}

func (UnimplementedCampSyncServer) Login(context.Context, *LoginRequest) (*AuthResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}

func (UnimplementedCampSyncServer) Synchronize(context.Context, *models.SyncRequest) (*models.SyncResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Synchronize not implemented")
}

func (UnimplementedCampSyncServer) GetCamp(context.Context, *GetCampRequest) (*models.Camp, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCamp not implemented")
}

func (UnimplementedCampSyncServer) ListCamps(context.Context, *ListCampsRequest) (*ListCampsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListCamps not implemented")
}

// RegisterCampSyncServer attaches srv to s.
func RegisterCampSyncServer(s grpc.ServiceRegistrar, srv CampSyncServer) {
	s.RegisterService(&CampSyncServiceDesc, srv)
}

// CampSyncServiceDesc is the grpc.ServiceDesc of camp.v1.CampSync.
var CampSyncServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CampSyncServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Register", Handler: registerHandler},
		{MethodName: "Login", Handler: loginHandler},
		{MethodName: "Synchronize", Handler: synchronizeHandler},
		{MethodName: "GetCamp", Handler: getCampHandler},
		{MethodName: "ListCamps", Handler: listCampsHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "camp/v1/camp_sync",
}

// unary decodes the request into in and runs call through the interceptor
// chain, if any.
func unary[Req any, Resp any](
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
	fullMethod string,
	call func(CampSyncServer, context.Context, *Req) (Resp, error),
) (any, error) {
	in := new(Req)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return call(srv.(CampSyncServer), ctx, in)
	}

	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return call(srv.(CampSyncServer), ctx, req.(*Req))
	}
	return interceptor(ctx, in, info, handler)
}

func registerHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return unary(srv, ctx, dec, interceptor, FullMethodRegister, CampSyncServer.Register)
}

func loginHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return unary(srv, ctx, dec, interceptor, FullMethodLogin, CampSyncServer.Login)
}

func synchronizeHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return unary(srv, ctx, dec, interceptor, FullMethodSynchronize, CampSyncServer.Synchronize)
}

func getCampHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return unary(srv, ctx, dec, interceptor, FullMethodGetCamp, CampSyncServer.GetCamp)
}

func listCampsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return unary(srv, ctx, dec, interceptor, FullMethodListCamps, CampSyncServer.ListCamps)
}
