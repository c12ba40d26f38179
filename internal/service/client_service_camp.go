// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-camp-sync/internal/adapter"
	"github.com/MKhiriev/go-camp-sync/internal/camp"
	"github.com/MKhiriev/go-camp-sync/internal/config"
	"github.com/MKhiriev/go-camp-sync/internal/logger"
	"github.com/MKhiriev/go-camp-sync/internal/store"
	"github.com/MKhiriev/go-camp-sync/models"
)

type clientCampService struct {
	adapter    adapter.ServerAdapter
	repository store.LocalCampRepository
	session    Session
	factory    *camp.OperationFactory
	debounce   time.Duration
	logger     *logger.Logger

	mu       sync.RWMutex
	managers map[string]*CampManager
}

// NewClientCampService constructs the [ClientCampService] registry. Camp
// state is persisted in repository; operation and temporary camp ids are
// drawn from ids.
func NewClientCampService(
	repository store.LocalCampRepository,
	serverAdapter adapter.ServerAdapter,
	session Session,
	ids camp.IDGenerator,
	cfg config.ClientSync,
	logger *logger.Logger,
) ClientCampService {
	logger.Debug().Dur("debounce", cfg.DebounceDelay).Msg("creating client camp service")
	return &clientCampService{
		adapter:    serverAdapter,
		repository: repository,
		session:    session,
		factory:    camp.NewOperationFactory(ids, nil),
		debounce:   cfg.DebounceDelay,
		logger:     logger,
		managers:   make(map[string]*CampManager),
	}
}

func (s *clientCampService) CreateCamp(ctx context.Context, name string) (*CampManager, error) {
	userID := s.session.UserID()
	if userID == 0 {
		return nil, ErrNotLoggedIn
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: empty camp name", ErrInvalidDataProvided)
	}

	m := s.newManager(models.CampState{CampID: s.factory.NewID(), UserID: userID})
	s.mu.Lock()
	s.managers[m.ID()] = m
	s.mu.Unlock()

	if err := m.Apply(s.factory.CreateCamp(name)); err != nil {
		s.remove(m.ID())
		m.Close()
		return nil, err
	}

	logger.FromContext(ctx).Info().Str("camp_id", m.ID()).Str("name", name).Msg("camp created locally")
	return m, nil
}

func (s *clientCampService) OpenCamp(ctx context.Context, campID string) (*CampManager, error) {
	log := logger.FromContext(ctx)

	userID := s.session.UserID()
	if userID == 0 {
		return nil, ErrNotLoggedIn
	}
	if campID == "" {
		return nil, fmt.Errorf("%w: empty camp id", ErrInvalidDataProvided)
	}
	if m, ok := s.Camp(campID); ok {
		return m, nil
	}

	state, err := s.repository.GetCampState(ctx, campID)
	switch {
	case err == nil && state.UserID == userID:
	case err == nil || errors.Is(err, store.ErrCampStateNotFound):
		state, err = s.fetchState(ctx, campID, userID)
		if err != nil {
			return nil, err
		}
	default:
		log.Err(err).Str("func", "*clientCampService.OpenCamp").Str("camp_id", campID).Msg("failed to read local camp state")
		return nil, err
	}

	m := s.newManager(state)
	s.mu.Lock()
	if existing, ok := s.managers[campID]; ok {
		s.mu.Unlock()
		m.Close()
		return existing, nil
	}
	s.managers[campID] = m
	s.mu.Unlock()

	if len(state.PendingOps) > 0 {
		m.Synchronize()
	}
	return m, nil
}

// fetchState downloads the latest snapshot and stores it as the confirmed
// state of a camp with nothing queued.
func (s *clientCampService) fetchState(ctx context.Context, campID string, userID int64) (models.CampState, error) {
	snapshot, err := s.adapter.GetCamp(ctx, campID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*clientCampService.fetchState").Str("camp_id", campID).Msg("failed to fetch camp from server")
		return models.CampState{}, mapAdapterError(err)
	}

	snapshot = snapshot.WithIdentity(campID, snapshot.Revision)
	state := models.CampState{
		CampID:              campID,
		UserID:              userID,
		Current:             snapshot,
		Server:              snapshot,
		LastServerOperation: snapshot.Revision,
		UpdatedAt:           time.Now().UTC(),
	}
	if err = s.repository.SaveCampState(ctx, state); err != nil {
		return models.CampState{}, fmt.Errorf("save camp state: %w", err)
	}

	return state, nil
}

func (s *clientCampService) Restore(ctx context.Context) ([]*CampManager, error) {
	userID := s.session.UserID()
	if userID == 0 {
		return nil, ErrNotLoggedIn
	}

	states, err := s.repository.ListCampStates(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*clientCampService.Restore").Msg("failed to list local camp states")
		return nil, err
	}

	restored := make([]*CampManager, 0, len(states))
	for _, state := range states {
		m := s.newManager(state)

		s.mu.Lock()
		if _, ok := s.managers[state.CampID]; ok {
			s.mu.Unlock()
			m.Close()
			continue
		}
		s.managers[state.CampID] = m
		s.mu.Unlock()

		restored = append(restored, m)
		if len(state.PendingOps) > 0 {
			m.Synchronize()
		}
	}

	logger.FromContext(ctx).Info().Int("camps", len(restored)).Msg("restored local camps")
	return restored, nil
}

func (s *clientCampService) Camp(campID string) (*CampManager, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.managers[campID]
	return m, ok
}

func (s *clientCampService) Camps() []*CampManager {
	s.mu.RLock()
	defer s.mu.RUnlock()

	managers := make([]*CampManager, 0, len(s.managers))
	for _, m := range s.managers {
		managers = append(managers, m)
	}
	return managers
}

func (s *clientCampService) SynchronizeAll() {
	for _, m := range s.Camps() {
		m.Synchronize()
	}
}

func (s *clientCampService) ListServerCamps(ctx context.Context) ([]models.CampSummary, error) {
	if s.session.UserID() == 0 {
		return nil, ErrNotLoggedIn
	}

	camps, err := s.adapter.ListCamps(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return camps, nil
}

func (s *clientCampService) CloseCamp(campID string) error {
	m, ok := s.remove(campID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrCampNotOpen, campID)
	}
	m.Close()
	return nil
}

func (s *clientCampService) Close() {
	s.mu.Lock()
	managers := s.managers
	s.managers = make(map[string]*CampManager)
	s.mu.Unlock()

	for _, m := range managers {
		m.Close()
	}
}

func (s *clientCampService) newManager(state models.CampState) *CampManager {
	return newCampManager(state, campManagerOptions{
		adapter:    s.adapter,
		repository: s.repository,
		session:    s.session,
		factory:    s.factory,
		debounce:   s.debounce,
		onRekey:    s.rekey,
		logger:     s.logger,
	})
}

func (s *clientCampService) remove(campID string) (*CampManager, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.managers[campID]
	delete(s.managers, campID)
	return m, ok
}

// rekey moves a manager from its temporary id to the id the server gave it.
func (s *clientCampService) rekey(oldID, newID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.managers[oldID]
	if !ok {
		return
	}
	delete(s.managers, oldID)
	s.managers[newID] = m
}
