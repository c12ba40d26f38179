// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrInvalidOpIndex   = errors.New("invalid op index")
	ErrEmptyOperationID = errors.New("operation id is required")
	ErrInvalidOpType    = errors.New("invalid operation type")
	ErrEmptyTimestamp   = errors.New("operation timestamp is required")
	ErrEmptyCampName    = errors.New("camp name is required")
	ErrEmptyListID      = errors.New("list id is required")
	ErrEmptyItemID      = errors.New("item id is required")
	ErrEmptyItemIDs     = errors.New("item ids list cannot be empty")
	ErrInvalidItemState = errors.New("invalid item state")
	ErrMisplacedCreate  = errors.New("CREATE_CAMP must be the first operation")
	ErrDuplicateOpID    = errors.New("duplicate operation id in batch")

	ErrEmptyLogin      = errors.New("login is required")
	ErrEmptyPassword   = errors.New("password is required")
	ErrLoginTooLong    = errors.New("login is too long")
	ErrPasswordTooLong = errors.New("password is too long")
)
