// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package camp

import "errors"

var (
	ErrUnknownOperationKind = errors.New("unknown camp operation kind")
)
