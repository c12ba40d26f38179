// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rpc

import "github.com/MKhiriev/go-camp-sync/models"

// AuthorizationKey is the metadata key carrying "Bearer <jwt>".
const AuthorizationKey = "authorization"

type RegisterRequest struct {
	Login    string `json:"login"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// AuthResponse carries the issued bearer token. The same token is also sent
// in the "authorization" response header.
type AuthResponse struct {
	Token  string `json:"token"`
	UserID int64  `json:"user_id"`
}

type GetCampRequest struct {
	CampID string `json:"camp_id"`
}

type ListCampsRequest struct{}

type ListCampsResponse struct {
	Camps []models.CampSummary `json:"camps"`
}
