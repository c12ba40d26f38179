// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-camp-sync/internal/camp"
	"github.com/MKhiriev/go-camp-sync/internal/config"
	"github.com/MKhiriev/go-camp-sync/internal/logger"
	"github.com/MKhiriev/go-camp-sync/internal/store"
	"github.com/MKhiriev/go-camp-sync/models"
	"github.com/sethvargo/go-retry"
)

const (
	defaultSyncMaxAttempts    = 10
	defaultSyncRetryBaseDelay = 10 * time.Millisecond
	defaultSyncRetryMaxDelay  = time.Second
)

// syncService is the server side of camp synchronization. Concurrent writers
// of one camp are serialized by the storage's revision check; the loser of a
// race reads the log again, rebases and retries.
type syncService struct {
	campRepository store.CampRepository
	userRepository store.UserRepository

	maxAttempts    uint64
	retryBaseDelay time.Duration
	retryMaxDelay  time.Duration

	logger *logger.Logger
}

func NewSyncService(campRepository store.CampRepository, userRepository store.UserRepository, cfg config.Sync, logger *logger.Logger) SyncService {
	logger.Debug().Msg("creating sync service")

	s := &syncService{
		campRepository: campRepository,
		userRepository: userRepository,
		maxAttempts:    cfg.MaxAttempts,
		retryBaseDelay: cfg.RetryBaseDelay,
		retryMaxDelay:  cfg.RetryMaxDelay,
		logger:         logger,
	}
	if s.maxAttempts == 0 {
		s.maxAttempts = defaultSyncMaxAttempts
	}
	if s.retryBaseDelay <= 0 {
		s.retryBaseDelay = defaultSyncRetryBaseDelay
	}
	if s.retryMaxDelay < s.retryBaseDelay {
		s.retryMaxDelay = max(defaultSyncRetryMaxDelay, s.retryBaseDelay)
	}

	return s
}

func (s *syncService) SyncCamp(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error) {
	if len(req.NewOps) > 0 && req.NewOps[0].Type == models.OperationCreateCamp {
		return s.createCamp(ctx, req)
	}

	if req.CampID == "" || req.OpIndex < 1 {
		return models.SyncResponse{}, fmt.Errorf("%w: camp id %q, op index %d", ErrInvalidSyncArguments, req.CampID, req.OpIndex)
	}

	log := logger.FromContext(ctx).With().
		Str("func", "*syncService.SyncCamp").
		Str("camp_id", req.CampID).
		Int64("op_index", req.OpIndex).
		Logger()

	var (
		response models.SyncResponse
		attempt  int
	)
	err := retry.Do(ctx, s.backoff(), func(ctx context.Context) error {
		attempt++

		r, err := s.commit(ctx, req)
		if isContended(err) {
			log.Debug().Err(err).Int("attempt", attempt).Msg("sync attempt lost, retrying")
			return retry.RetryableError(err)
		}
		if err != nil {
			return err
		}

		response = r
		return nil
	})
	if isContended(err) {
		log.Warn().Err(err).Int("attempts", attempt).Msg("sync attempts exhausted")
		return models.SyncResponse{}, fmt.Errorf("%w: %w", ErrSyncContention, err)
	}
	if err != nil {
		log.Err(err).Msg("sync failed")
		return models.SyncResponse{}, err
	}

	log.Debug().
		Str("status", string(response.Status)).
		Int("updated_ops", len(response.UpdatedOps)).
		Int("attempts", attempt).
		Msg("camp synchronized")

	return response, nil
}

// commit runs one optimistic attempt: read the log past the client's base,
// rebase the client's operations over it and write conditionally.
// store.ErrRevisionConflict reports a lost race.
func (s *syncService) commit(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error) {
	snapshot, serverOps, err := s.campRepository.GetCampWithOps(ctx, req.CampID, req.OpIndex)
	switch {
	case errors.Is(err, store.ErrCampNotFound):
		return models.SyncResponse{}, fmt.Errorf("%w: %w", ErrCampNotFound, err)
	case errors.Is(err, store.ErrCorruptedOperationLog):
		return models.SyncResponse{}, fmt.Errorf("%w: %w", ErrCorruptedCampLog, err)
	case err != nil:
		return models.SyncResponse{}, err
	}

	if req.OpIndex > snapshot.Revision {
		return models.SyncResponse{}, fmt.Errorf("%w: op index %d, revision %d", ErrOpIndexAhead, req.OpIndex, snapshot.Revision)
	}

	newOps := withoutCommitted(req.NewOps, serverOps)
	if len(newOps) == 0 {
		return catchUp(serverOps), nil
	}

	toWrite := camp.Transform(newOps, serverOps)
	if len(toWrite) == 0 {
		return catchUp(serverOps), nil
	}

	next, err := camp.ApplyAll(snapshot, toWrite)
	if err != nil {
		return models.SyncResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	result, err := s.campRepository.WriteCamp(ctx, next, toWrite, snapshot.Revision)
	if err != nil {
		return models.SyncResponse{}, err
	}
	if !result.Succeeded {
		return models.SyncResponse{}, fmt.Errorf("%w: expected revision %d", store.ErrRevisionConflict, snapshot.Revision)
	}

	if len(serverOps) == 0 {
		return models.SyncResponse{Status: models.SyncAllGood}, nil
	}

	updated := make([]models.Operation, 0, len(serverOps)+len(toWrite))
	updated = append(updated, serverOps...)
	updated = append(updated, toWrite...)

	return models.SyncResponse{Status: models.SyncNeedUpdate, UpdatedOps: updated}, nil
}

// createCamp stores a new camp built from a batch starting with CREATE_CAMP
// and attaches it to the caller. A batch whose CREATE_CAMP is already stored
// is a replay of a create whose answer was lost; the stored camp id is
// returned again.
func (s *syncService) createCamp(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "*syncService.createCamp").
		Int64("user_id", req.UserID).
		Logger()

	createOp := req.NewOps[0]
	if createOp.Name == "" {
		return models.SyncResponse{}, fmt.Errorf("%w: camp name is empty", ErrInvalidDataProvided)
	}

	campID, err := s.campRepository.FindCampByCreateOperation(ctx, createOp.ID)
	switch {
	case err == nil:
		log.Info().Str("camp_id", campID).Msg("replayed camp creation")
	case errors.Is(err, store.ErrCampNotFound):
		campID, err = s.insertCamp(ctx, req.NewOps)
		if err != nil {
			log.Err(err).Msg("camp creation failed")
			return models.SyncResponse{}, err
		}
		log.Info().Str("camp_id", campID).Int("ops", len(req.NewOps)).Msg("camp created")
	default:
		log.Err(err).Msg("lookup of camp by create operation failed")
		return models.SyncResponse{}, contentionOr(err)
	}

	if err = s.userRepository.AddCampToUser(ctx, req.UserID, campID); err != nil {
		log.Err(err).Str("camp_id", campID).Msg("attaching camp to user failed")
		return models.SyncResponse{}, contentionOr(err)
	}

	return models.SyncResponse{Status: models.SyncAllGood, CampID: campID}, nil
}

func (s *syncService) insertCamp(ctx context.Context, ops []models.Operation) (string, error) {
	snapshot, err := camp.ApplyAll(nil, ops)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	result, err := s.campRepository.WriteCamp(ctx, snapshot, ops, 0)
	if err != nil {
		return "", contentionOr(err)
	}
	if result.Succeeded {
		return result.CampID, nil
	}

	// A concurrent replay of the same create won the insert.
	campID, err := s.campRepository.FindCampByCreateOperation(ctx, ops[0].ID)
	if err != nil {
		return "", contentionOr(err)
	}
	return campID, nil
}

func (s *syncService) backoff() retry.Backoff {
	b := retry.NewExponential(s.retryBaseDelay)
	b = retry.WithCappedDuration(s.retryMaxDelay, b)
	return retry.WithMaxRetries(s.maxAttempts-1, b)
}

// catchUp answers a request that had nothing left to write.
func catchUp(serverOps []models.Operation) models.SyncResponse {
	if len(serverOps) == 0 {
		return models.SyncResponse{Status: models.SyncAllGood}
	}
	return models.SyncResponse{Status: models.SyncNeedUpdate, UpdatedOps: serverOps}
}

// withoutCommitted drops the operations whose ids are already in the log.
func withoutCommitted(ops, committed []models.Operation) []models.Operation {
	if len(committed) == 0 {
		return ops
	}

	ids := make(map[string]struct{}, len(committed))
	for _, op := range committed {
		ids[op.ID] = struct{}{}
	}

	fresh := make([]models.Operation, 0, len(ops))
	for _, op := range ops {
		if _, ok := ids[op.ID]; !ok {
			fresh = append(fresh, op)
		}
	}
	return fresh
}

func isContended(err error) bool {
	return errors.Is(err, store.ErrRevisionConflict) || errors.Is(err, store.ErrTransient)
}

func contentionOr(err error) error {
	if isContended(err) {
		return fmt.Errorf("%w: %w", ErrSyncContention, err)
	}
	return err
}
