// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-camp-sync/internal/adapter"
	"github.com/MKhiriev/go-camp-sync/internal/camp"
	"github.com/MKhiriev/go-camp-sync/internal/logger"
	"github.com/MKhiriev/go-camp-sync/internal/store"
	"github.com/MKhiriev/go-camp-sync/internal/validators"
	"github.com/MKhiriev/go-camp-sync/models"
)

type campManagerOptions struct {
	adapter    adapter.ServerAdapter
	repository store.LocalCampRepository
	session    Session
	factory    *camp.OperationFactory
	debounce   time.Duration

	// onRekey is called without the manager lock once a camp created
	// offline received its server id.
	onRekey func(oldID, newID string)

	logger *logger.Logger
}

// CampManager drives the synchronization of one camp on the client.
//
// Local edits are applied to the speculative snapshot at once and queued.
// After a quiet period the queue is sent to the server; the answer either
// confirms it, asks to retry, or carries foreign operations the queue is
// rebased onto. At most one round trip is in flight.
type CampManager struct {
	adapter    adapter.ServerAdapter
	repository store.LocalCampRepository
	session    Session
	factory    *camp.OperationFactory
	validator  validators.Validator
	scheduler  *syncScheduler
	onRekey    func(oldID, newID string)
	baseLogger *logger.Logger
	logger     *logger.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu                  sync.Mutex
	id                  string
	userID              int64
	current             *models.Camp
	server              *models.Camp
	lastServerOperation int64
	pending             []models.Operation
	synchronizing       bool
	closed              bool
	lastErr             error
}

func newCampManager(state models.CampState, opts campManagerOptions) *CampManager {
	log := opts.logger.ForCamp(state.CampID)
	ctx, cancel := context.WithCancel(log.WithContext(context.Background()))

	m := &CampManager{
		adapter:             opts.adapter,
		repository:          opts.repository,
		session:             opts.session,
		factory:             opts.factory,
		validator:           validators.NewCampValidator(),
		onRekey:             opts.onRekey,
		baseLogger:          opts.logger,
		logger:              log,
		ctx:                 ctx,
		cancel:              cancel,
		id:                  state.CampID,
		userID:              state.UserID,
		current:             state.Current,
		server:              state.Server,
		lastServerOperation: state.LastServerOperation,
		pending:             models.CloneOperations(state.PendingOps),
	}
	if m.current == nil {
		m.current = m.server.WithIdentity(state.CampID, state.LastServerOperation)
	}
	m.scheduler = newSyncScheduler(opts.debounce, m.Synchronize)

	log.Debug().Int64("last_server_operation", m.lastServerOperation).Int("pending", len(m.pending)).Msg("creating camp manager")
	return m
}

// Apply applies a local edit: the snapshot is updated at once, the
// operation is queued and a sync is scheduled after the debounce window.
func (m *CampManager) Apply(op models.Operation) error {
	if err := m.validator.Validate(m.ctx, op); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrManagerClosed
	}
	if op.Type == models.OperationCreateCamp && (m.server != nil || len(m.pending) > 0) {
		return fmt.Errorf("%w: camp %s already exists", ErrInvalidDataProvided, m.id)
	}

	next, err := camp.Apply(m.current, op)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	m.current = next
	m.pending = append(m.pending, op.Clone())
	m.persistLocked()
	m.scheduler.Schedule()

	return nil
}

// RenameList names the list listID, creating it when missing.
func (m *CampManager) RenameList(listID, name string) (models.Operation, error) {
	op := m.factory.RenameList(listID, name)
	return op, m.Apply(op)
}

// RenameItem names the item itemID of listID, creating both when missing.
func (m *CampManager) RenameItem(listID, itemID, name string) (models.Operation, error) {
	op := m.factory.RenameItem(listID, itemID, name)
	return op, m.Apply(op)
}

// ChangeItemState moves items of listID to state.
func (m *CampManager) ChangeItemState(listID string, itemIDs []string, state models.ItemState) (models.Operation, error) {
	op := m.factory.ChangeItemState(listID, itemIDs, state)
	return op, m.Apply(op)
}

// ChangeItemDeleted deletes or restores items of listID.
func (m *CampManager) ChangeItemDeleted(listID string, itemIDs []string, deleted bool) (models.Operation, error) {
	op := m.factory.ChangeItemDeleted(listID, itemIDs, deleted)
	return op, m.Apply(op)
}

// Synchronize starts a round trip now. When one is already in flight the
// next is scheduled instead.
func (m *CampManager) Synchronize() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.synchronizeLocked()
}

func (m *CampManager) synchronizeLocked() {
	if m.closed {
		return
	}
	if m.synchronizing {
		m.scheduler.Schedule()
		return
	}
	// A camp that never reached the server and has nothing queued has
	// nothing to create.
	if m.server == nil && len(m.pending) == 0 {
		return
	}

	userID := m.session.UserID()
	if userID == 0 {
		m.lastErr = ErrNotLoggedIn
		return
	}

	req := models.SyncRequest{
		CampID:  m.id,
		OpIndex: m.lastServerOperation,
		NewOps:  models.CloneOperations(m.pending),
	}
	if m.server == nil {
		req.CampID = ""
		req.OpIndex = 0
	}

	m.synchronizing = true
	m.wg.Add(1)
	go m.send(req, len(req.NewOps), userID, m.logger)
}

func (m *CampManager) send(req models.SyncRequest, sent int, userID int64, log *logger.Logger) {
	defer m.wg.Done()

	log.Debug().Str("func", "*CampManager.send").Int64("op_index", req.OpIndex).Int("ops", sent).Msg("sending sync request")
	resp, err := m.adapter.Synchronize(m.ctx, req)
	m.onSyncResult(sent, userID, resp, err)
}

func (m *CampManager) onSyncResult(sent int, userID int64, resp models.SyncResponse, err error) {
	m.mu.Lock()
	m.synchronizing = false
	log := m.logger

	if m.closed || m.session.UserID() != userID {
		m.mu.Unlock()
		log.Debug().Str("func", "*CampManager.onSyncResult").Msg("discarding stale sync result")
		return
	}

	var oldID string
	switch {
	case err != nil:
		m.handleErrorLocked(err)
	case resp.Status == models.SyncRetry:
		log.Debug().Str("func", "*CampManager.onSyncResult").Msg("server asked to retry")
		m.scheduler.Schedule()
	case resp.Status == models.SyncAllGood:
		oldID = m.acceptLocked(sent, resp)
	case resp.Status == models.SyncNeedUpdate:
		m.rebaseLocked(sent, resp)
	default:
		m.failLocked("*CampManager.onSyncResult", fmt.Errorf("%w: unknown sync status %q", ErrSyncInvariantViolated, resp.Status))
	}

	newID := m.id
	m.mu.Unlock()

	if oldID != "" && m.onRekey != nil {
		m.onRekey(oldID, newID)
	}
}

func (m *CampManager) handleErrorLocked(err error) {
	if isClientFault(err) {
		m.lastErr = mapAdapterError(err)
		m.logger.Warn().Err(err).Str("func", "*CampManager.handleErrorLocked").Msg("server rejected sync request")
		return
	}

	m.logger.Debug().Err(err).Str("func", "*CampManager.handleErrorLocked").Msg("sync failed, will retry")
	m.scheduler.Schedule()
}

// acceptLocked rolls the confirmed snapshot forward by the sent operations.
// It returns the previous camp id when the camp was just created.
func (m *CampManager) acceptLocked(sent int, resp models.SyncResponse) string {
	id := m.id
	switch {
	case m.server == nil && resp.CampID == "":
		m.failLocked("*CampManager.acceptLocked", fmt.Errorf("%w: camp was created without an id", ErrSyncInvariantViolated))
		return ""
	case m.server == nil:
		id = resp.CampID
	case resp.CampID != "" && resp.CampID != m.id:
		m.failLocked("*CampManager.acceptLocked", fmt.Errorf("%w: server renamed camp %s to %s", ErrSyncInvariantViolated, m.id, resp.CampID))
		return ""
	}

	next, err := camp.ApplyAll(m.server, m.pending[:sent])
	if err != nil {
		m.failLocked("*CampManager.acceptLocked", fmt.Errorf("%w: %w", ErrSyncInvariantViolated, err))
		return ""
	}

	m.pending = slices.Clone(m.pending[sent:])
	m.lastServerOperation += int64(sent)
	m.server = next.WithIdentity(id, m.lastServerOperation)
	m.current = m.current.WithIdentity(id, m.lastServerOperation)
	m.lastErr = nil

	var oldID string
	if id != m.id {
		oldID = m.id
		m.id = id
		m.logger = m.baseLogger.ForCamp(id)
		if err = m.repository.DeleteCampState(m.ctx, oldID); err != nil && !errors.Is(err, store.ErrCampStateNotFound) {
			m.logger.Err(err).Str("func", "*CampManager.acceptLocked").Str("old_id", oldID).Msg("failed to drop state stored under the temporary id")
		}
		m.logger.Info().Str("old_id", oldID).Msg("camp created on server")
	}

	m.persistLocked()
	if len(m.pending) > 0 {
		m.scheduler.Schedule()
	}

	return oldID
}

// rebaseLocked folds foreign operations into the confirmed snapshot and
// transforms the operations queued during the round trip against them.
func (m *CampManager) rebaseLocked(sent int, resp models.SyncResponse) {
	if m.server == nil {
		m.failLocked("*CampManager.rebaseLocked", fmt.Errorf("%w: NEED_UPDATE for a camp that is not on the server yet", ErrSyncInvariantViolated))
		return
	}
	if resp.CampID != "" && resp.CampID != m.id {
		m.failLocked("*CampManager.rebaseLocked", fmt.Errorf("%w: NEED_UPDATE carries camp id %s", ErrSyncInvariantViolated, resp.CampID))
		return
	}

	server, err := camp.ApplyAll(m.server, resp.UpdatedOps)
	if err != nil {
		m.failLocked("*CampManager.rebaseLocked", fmt.Errorf("%w: %w", ErrSyncInvariantViolated, err))
		return
	}

	rebased := camp.Transform(m.pending[sent:], resp.UpdatedOps)
	current, err := camp.ApplyAll(server, rebased)
	if err != nil {
		m.failLocked("*CampManager.rebaseLocked", fmt.Errorf("%w: %w", ErrSyncInvariantViolated, err))
		return
	}

	m.lastServerOperation += int64(len(resp.UpdatedOps))
	m.server = server.WithIdentity(m.id, m.lastServerOperation)
	m.current = current.WithIdentity(m.id, m.lastServerOperation)
	m.pending = rebased
	m.lastErr = nil

	m.logger.Debug().
		Int("updated", len(resp.UpdatedOps)).
		Int("rebased", len(rebased)).
		Int64("last_server_operation", m.lastServerOperation).
		Msg("camp caught up with server")

	m.persistLocked()
	if len(m.pending) > 0 {
		m.synchronizeLocked()
	}
}

func (m *CampManager) failLocked(caller string, err error) {
	m.lastErr = err
	m.logger.Error().Err(err).Str("func", caller).Msg("sync cycle aborted")
}

func (m *CampManager) persistLocked() {
	userID := m.userID
	if userID == 0 {
		userID = m.session.UserID()
		m.userID = userID
	}

	state := models.CampState{
		CampID:              m.id,
		UserID:              userID,
		Current:             m.current,
		Server:              m.server,
		LastServerOperation: m.lastServerOperation,
		PendingOps:          m.pending,
		UpdatedAt:           time.Now().UTC(),
	}
	if err := m.repository.SaveCampState(m.ctx, state); err != nil {
		m.logger.Err(err).Str("func", "*CampManager.persistLocked").Msg("failed to persist camp state")
	}
}

// Close stops the debounce timer and waits for the round trip in flight.
// Its answer is discarded. Queued operations stay persisted.
func (m *CampManager) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	m.mu.Unlock()

	m.scheduler.Stop()
	m.cancel()
	m.wg.Wait()
}

// ID returns the camp id: the server id once the camp was created there,
// the temporary id before.
func (m *CampManager) ID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.id
}

// Snapshot returns the speculative snapshot including queued edits.
// The result must not be modified.
func (m *CampManager) Snapshot() *models.Camp {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// ServerSnapshot returns the last snapshot confirmed by the server, nil
// before the camp reached it.
func (m *CampManager) ServerSnapshot() *models.Camp {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.server
}

// PendingOperations returns a copy of the queue.
func (m *CampManager) PendingOperations() []models.Operation {
	m.mu.Lock()
	defer m.mu.Unlock()
	return models.CloneOperations(m.pending)
}

func (m *CampManager) LastServerOperation() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastServerOperation
}

func (m *CampManager) IsSynchronizing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.synchronizing
}

// LastError returns the error that stopped the last sync cycle, nil after a
// successful one.
func (m *CampManager) LastError() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}
