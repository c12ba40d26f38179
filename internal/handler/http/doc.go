// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the camp sync server.
//
// It wires the chi router, the request handlers and the middleware chain.
// Tracing, access logging, compression, request integrity and
// authentication are handled here before requests reach the service layer.
package http
