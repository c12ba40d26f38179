// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-camp-sync/internal/app"
	"github.com/MKhiriev/go-camp-sync/internal/service"
	"github.com/MKhiriev/go-camp-sync/internal/store"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is ordered: the specific sync errors wrap
// ErrInvalidDataProvided in places and must win over it.
var errorResponses = []errorResponse{
	{service.ErrInvalidSyncArguments, http.StatusBadRequest, app.MsgInvalidSyncArguments},
	{service.ErrOpIndexAhead, http.StatusBadRequest, app.MsgOpIndexAhead},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},

	{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},

	{service.ErrCampNotFound, http.StatusNotFound, app.MsgCampNotFound},
	{store.ErrCampNotFound, http.StatusNotFound, app.MsgCampNotFound},

	{store.ErrLoginAlreadyExists, http.StatusConflict, app.MsgLoginAlreadyExists},

	{service.ErrSyncContention, http.StatusServiceUnavailable, app.MsgRetryLater},
	{store.ErrTransient, http.StatusServiceUnavailable, app.MsgRetryLater},
}

// responseFromError returns the status code and the body message for err.
// Unknown errors are internal: their text never reaches the client.
func responseFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}
