// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-camp-sync/internal/logger"
	"github.com/MKhiriev/go-camp-sync/internal/validators"
	"github.com/MKhiriev/go-camp-sync/models"
)

// SyncValidationService rejects malformed sync requests before they reach
// the wrapped SyncService.
type SyncValidationService struct {
	inner     SyncService
	validator validators.Validator
}

func NewSyncValidationService() SyncServiceWrapper {
	return &SyncValidationService{
		validator: validators.NewCampValidator(),
	}
}

func (v *SyncValidationService) Wrap(inner SyncService) SyncService {
	v.inner = inner
	return v
}

func (v *SyncValidationService) SyncCamp(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*SyncValidationService.SyncCamp").
			Str("camp_id", req.CampID).
			Int("ops", len(req.NewOps)).
			Msg("invalid sync request")
		return models.SyncResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.SyncCamp(ctx, req)
}
