// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-camp-sync/internal/logger"
	"github.com/MKhiriev/go-camp-sync/models"
)

// localCampRepository keeps one row of [models.CampState] per camp in the
// client's SQLite database.
type localCampRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewLocalCampRepository constructs a [LocalCampRepository].
func NewLocalCampRepository(db *DB, logger *logger.Logger) LocalCampRepository {
	logger.Debug().Msg("creating local camp repository")
	return &localCampRepository{
		db:     db,
		logger: logger,
	}
}

// SaveCampState inserts or replaces the state stored under state.CampID.
func (r *localCampRepository) SaveCampState(ctx context.Context, state models.CampState) error {
	log := logger.FromContext(ctx)

	current, err := json.Marshal(state.Current)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}

	var server any
	if state.Server != nil {
		data, err := json.Marshal(state.Server)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEncodingJSON, err)
		}
		server = string(data)
	}

	pending := state.PendingOps
	if pending == nil {
		pending = []models.Operation{}
	}
	pendingOps, err := json.Marshal(pending)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}

	updatedAt := state.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	query, args, err := buildUpsertCampStateQuery(r.db.builder, state.CampID, state.UserID, current, server, state.LastServerOperation, pendingOps, updatedAt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*localCampRepository.SaveCampState").Str("camp_id", state.CampID).Msg("error saving camp state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}

	return nil
}

func (r *localCampRepository) GetCampState(ctx context.Context, campID string) (models.CampState, error) {
	query, args, err := buildSelectCampStateQuery(r.db.builder, campID)
	if err != nil {
		return models.CampState{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	state, err := scanCampState(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CampState{}, fmt.Errorf("%w: %s", ErrCampStateNotFound, campID)
		}
		logger.FromContext(ctx).Err(err).Str("func", "*localCampRepository.GetCampState").Str("camp_id", campID).Msg("error reading camp state")
		return models.CampState{}, err
	}

	return state, nil
}

// DeleteCampState removes the state of campID. Deleting a missing row is
// not an error.
func (r *localCampRepository) DeleteCampState(ctx context.Context, campID string) error {
	query, args, err := buildDeleteCampStateQuery(r.db.builder, campID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*localCampRepository.DeleteCampState").Str("camp_id", campID).Msg("error deleting camp state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}

	return nil
}

// ListCampStates returns every state stored for userID, oldest first.
func (r *localCampRepository) ListCampStates(ctx context.Context, userID int64) ([]models.CampState, error) {
	query, args, err := buildSelectCampStatesByUserQuery(r.db.builder, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*localCampRepository.ListCampStates").Msg("error listing camp states")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}
	defer rows.Close()

	states := make([]models.CampState, 0)
	for rows.Next() {
		state, err := scanCampState(rows)
		if err != nil {
			return nil, err
		}
		states = append(states, state)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return states, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCampState(row rowScanner) (models.CampState, error) {
	var (
		state               models.CampState
		current, pendingOps []byte
		server              sql.NullString
	)
	err := row.Scan(&state.CampID, &state.UserID, &current, &server, &state.LastServerOperation, &pendingOps, &state.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CampState{}, err
		}
		return models.CampState{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = json.Unmarshal(current, &state.Current); err != nil {
		return models.CampState{}, fmt.Errorf("%w: %w", ErrDecodingJSON, err)
	}
	if server.Valid {
		if err = json.Unmarshal([]byte(server.String), &state.Server); err != nil {
			return models.CampState{}, fmt.Errorf("%w: %w", ErrDecodingJSON, err)
		}
	}
	if err = json.Unmarshal(pendingOps, &state.PendingOps); err != nil {
		return models.CampState{}, fmt.Errorf("%w: %w", ErrDecodingJSON, err)
	}

	return state, nil
}
