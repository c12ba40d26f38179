// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Sync errors.
var (
	// ErrInvalidSyncArguments is returned when a request for an existing
	// camp lacks a camp id or a positive op index.
	ErrInvalidSyncArguments = errors.New("invalid sync arguments")

	// ErrOpIndexAhead is returned when the client claims to know more
	// operations than the server ever committed.
	ErrOpIndexAhead = errors.New("op index is ahead of the camp revision")

	// ErrCampNotFound is returned when the requested camp does not exist.
	ErrCampNotFound = errors.New("camp not found")

	// ErrSyncContention is returned when every optimistic attempt lost the
	// race or hit a transient storage fault. Transports answer RETRY.
	ErrSyncContention = errors.New("camp is busy, retry later")

	// ErrCorruptedCampLog is returned when the stored operation log cannot
	// be replayed.
	ErrCorruptedCampLog = errors.New("camp operation log cannot be replayed")
)

// Client errors.
var (
	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")
	ErrNotLoggedIn      = errors.New("user is not logged in")

	// ErrUnauthorizedAccess is returned when the server refused access to a
	// camp that belongs to other users.
	ErrUnauthorizedAccess = errors.New("access to camp denied")

	// ErrSyncInvariantViolated marks a server answer the client state
	// machine cannot reconcile, e.g. NEED_UPDATE before the camp was
	// created on the server.
	ErrSyncInvariantViolated = errors.New("sync invariant violated")

	// ErrManagerClosed is returned by operations on a closed camp manager.
	ErrManagerClosed = errors.New("camp manager is closed")

	// ErrCampNotOpen is returned when the client has no manager for a camp.
	ErrCampNotOpen = errors.New("camp is not open")
)
