// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

// errNoCredentials is returned by NewApp when the configuration lacks a
// login or a password.
var errNoCredentials = errors.New("user login and password are required")
