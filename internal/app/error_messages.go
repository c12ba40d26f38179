// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// camp sync server transports and the client adapters.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies, gRPC status messages or log entries to describe the
// outcome of an operation. The client adapters match on them to restore the
// precise error, so both sides must agree on the wording.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied login/password
	// combination does not match any existing user record.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when a handler requires a user ID
	// (extracted from the JWT claim) but none is present in the request
	// context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgRegistrationFailed is returned when the registration handler
	// encounters an unexpected error that prevents account creation.
	MsgRegistrationFailed = "registration failed"

	// MsgLoginFailed is returned when the login handler encounters an
	// unexpected error that prevents issuing a session token.
	MsgLoginFailed = "login failed"

	// MsgLoginAlreadyExists is returned when a registration attempt is
	// rejected because the requested login is already in use.
	MsgLoginAlreadyExists = "login already exists"

	// MsgCampNotFound is returned when the requested camp does not exist.
	MsgCampNotFound = "camp not found"

	// MsgInvalidSyncArguments is returned when a sync request for an
	// existing camp lacks the camp id or a positive op index.
	MsgInvalidSyncArguments = "invalid sync arguments"

	// MsgOpIndexAhead is returned when the client claims to know more
	// operations than the camp has.
	MsgOpIndexAhead = "op index is ahead of the camp"

	// MsgRetryLater is returned when the server could not commit the
	// operations in time; the client should retry the same request.
	MsgRetryLater = "camp is busy, retry later"

	// MsgInvalidRequestHash is returned when the HashSHA256 header does not
	// match the request body.
	MsgInvalidRequestHash = "invalid request hash"
)
