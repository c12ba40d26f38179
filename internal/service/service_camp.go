// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-camp-sync/internal/logger"
	"github.com/MKhiriev/go-camp-sync/internal/store"
	"github.com/MKhiriev/go-camp-sync/models"
)

type campService struct {
	campRepository store.CampRepository
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewCampService(campRepository store.CampRepository, userRepository store.UserRepository, logger *logger.Logger) CampService {
	logger.Debug().Msg("creating camp service")

	return &campService{
		campRepository: campRepository,
		userRepository: userRepository,
		logger:         logger,
	}
}

func (c *campService) GetCamp(ctx context.Context, userID int64, campID string) (*models.Camp, error) {
	log := logger.FromContext(ctx)

	if campID == "" || userID <= 0 {
		return nil, fmt.Errorf("%w: camp id %q, user id %d", ErrInvalidDataProvided, campID, userID)
	}

	snapshot, err := c.campRepository.GetCamp(ctx, campID)
	if errors.Is(err, store.ErrCampNotFound) {
		return nil, fmt.Errorf("%w: %w", ErrCampNotFound, err)
	}
	if err != nil {
		log.Err(err).Str("func", "*campService.GetCamp").Str("camp_id", campID).Msg("reading camp failed")
		return nil, err
	}

	if err = c.userRepository.AddCampToUser(ctx, userID, campID); err != nil {
		log.Err(err).Str("func", "*campService.GetCamp").Str("camp_id", campID).Int64("user_id", userID).Msg("attaching camp to user failed")
		return nil, err
	}

	return snapshot, nil
}

func (c *campService) ListCamps(ctx context.Context, userID int64) ([]models.CampSummary, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id %d", ErrInvalidDataProvided, userID)
	}

	camps, err := c.userRepository.GetUserCamps(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*campService.ListCamps").Int64("user_id", userID).Msg("listing camps failed")
		return nil, err
	}

	return camps, nil
}
