// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc implements the camp.v1.CampSync gRPC transport.
//
// Handler serves the service methods on top of the service layer, and its
// unary interceptors attach a request-scoped logger and authenticate every
// call except Register and Login.
package grpc
