// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-camp-sync/internal/app"
	"github.com/MKhiriev/go-camp-sync/internal/logger"
	"github.com/MKhiriev/go-camp-sync/internal/utils"
	"github.com/MKhiriev/go-camp-sync/models"
)

// synchronize answers POST /api/camp/sync. A request that could not be
// committed in time gets 503 with a RETRY body so the client resends it
// unchanged.
func (h *Handler) synchronize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.synchronize").Msg("no user ID was given")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	var syncRequest models.SyncRequest
	if err := utils.DecodeJSON(r.Body, &syncRequest); err != nil {
		log.Err(err).Str("func", "*Handler.synchronize").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	syncRequest.UserID = userID

	response, err := h.services.SyncService.SyncCamp(ctx, syncRequest)
	if err != nil {
		status, message := responseFromError(err)
		log.Err(err).Str("func", "*Handler.synchronize").
			Str("camp_id", syncRequest.CampID).
			Int64("op_index", syncRequest.OpIndex).
			Int("status", status).
			Msg("sync failed")

		if status == http.StatusServiceUnavailable {
			utils.WriteJSON(w, models.SyncResponse{Status: models.SyncRetry}, status)
			return
		}
		http.Error(w, message, status)
		return
	}

	log.Debug().Str("camp_id", response.CampID).
		Str("status", string(response.Status)).
		Int("updated_ops", len(response.UpdatedOps)).
		Msg("sync answered")

	utils.WriteJSON(w, response, http.StatusOK)
}
