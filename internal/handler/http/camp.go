// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-camp-sync/internal/app"
	"github.com/MKhiriev/go-camp-sync/internal/logger"
	"github.com/MKhiriev/go-camp-sync/internal/utils"
	"github.com/MKhiriev/go-camp-sync/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getCamp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getCamp").Msg("no user ID was given")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	campID := chi.URLParam(r, "campID")
	camp, err := h.services.CampService.GetCamp(ctx, userID, campID)
	if err != nil {
		status, message := responseFromError(err)
		log.Err(err).Str("func", "*Handler.getCamp").Str("camp_id", campID).Msg("error getting camp")
		http.Error(w, message, status)
		return
	}

	utils.WriteJSON(w, camp, http.StatusOK)
}

func (h *Handler) listCamps(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.listCamps").Msg("no user ID was given")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	camps, err := h.services.CampService.ListCamps(ctx, userID)
	if err != nil {
		status, message := responseFromError(err)
		log.Err(err).Str("func", "*Handler.listCamps").Msg("error listing user camps")
		http.Error(w, message, status)
		return
	}
	if camps == nil {
		camps = []models.CampSummary{}
	}

	utils.WriteJSON(w, camps, http.StatusOK)
}
