// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-camp-sync/internal/logger"
	"github.com/MKhiriev/go-camp-sync/models"
)

// campRepository is the SQL implementation of [CampRepository] for both
// PostgreSQL and SQLite.
type campRepository struct {
	db     *DB
	ids    IDGenerator
	logger *logger.Logger
}

// NewCampRepository constructs a [CampRepository]. ids generates the id of
// every freshly created camp.
func NewCampRepository(db *DB, ids IDGenerator, logger *logger.Logger) CampRepository {
	logger.Debug().Msg("creating camp repository")
	return &campRepository{
		db:     db,
		ids:    ids,
		logger: logger,
	}
}

func (r *campRepository) WriteCamp(ctx context.Context, camp *models.Camp, ops []models.Operation, expectedRevision int64) (models.WriteResult, error) {
	log := logger.FromContext(ctx)

	if len(ops) == 0 {
		return models.WriteResult{}, ErrEmptyOperations
	}
	if camp == nil {
		camp = &models.Camp{}
	}

	lists, err := marshalLists(camp.Lists)
	if err != nil {
		return models.WriteResult{}, err
	}

	fresh := expectedRevision == 0 && ops[0].Type == models.OperationCreateCamp
	result := models.WriteResult{CampID: camp.ID, Revision: expectedRevision + int64(len(ops))}

	err = r.db.withTx(ctx, func(tx *sql.Tx) (bool, error) {
		if fresh {
			result.CampID = r.ids.Generate()
			inserted, err := r.insertCamp(ctx, tx, result.CampID, camp.Name, lists, result.Revision, ops[0].ID)
			if err != nil || !inserted {
				return true, err
			}
		} else {
			updated, err := r.updateCamp(ctx, tx, camp.ID, camp.Name, lists, expectedRevision, result.Revision)
			if err != nil || !updated {
				return true, err
			}
		}

		if err := r.appendOperations(ctx, tx, result.CampID, expectedRevision, ops); err != nil {
			return true, err
		}

		result.Succeeded = true
		return false, nil
	})
	if err != nil {
		log.Err(err).Str("func", "*campRepository.WriteCamp").Str("camp_id", result.CampID).Msg("error writing camp")
		return models.WriteResult{}, err
	}

	if !result.Succeeded {
		log.Debug().Str("func", "*campRepository.WriteCamp").
			Str("camp_id", result.CampID).
			Int64("expected_revision", expectedRevision).
			Msg("camp was modified concurrently, write rejected")
		return models.WriteResult{CampID: camp.ID, Revision: expectedRevision}, nil
	}

	return result, nil
}

// insertCamp reports false when another writer already created a camp for
// the same CREATE_CAMP operation.
func (r *campRepository) insertCamp(ctx context.Context, tx *sql.Tx, id, name string, lists []byte, revision int64, createOperationID string) (bool, error) {
	query, args, err := buildInsertCampQuery(r.db.builder, id, name, lists, revision, createOperationID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}

	return true, nil
}

// updateCamp is the compare-and-set on the snapshot row.
func (r *campRepository) updateCamp(ctx context.Context, tx *sql.Tx, id, name string, lists []byte, expectedRevision, newRevision int64) (bool, error) {
	query, args, err := buildUpdateCampQuery(r.db.builder, id, name, lists, expectedRevision, newRevision)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}

	return affected == 1, nil
}

// appendOperations writes ops at log positions [firstOp, firstOp+len(ops)).
// A slice starting a chunk inserts the row; any other slice extends the
// existing row.
func (r *campRepository) appendOperations(ctx context.Context, tx *sql.Tx, campID string, firstOp int64, ops []models.Operation) error {
	next := 0
	for _, slice := range chunkSlices(firstOp, len(ops)) {
		part := ops[next : next+slice.count]
		next += slice.count

		if slice.startIndex == 0 {
			if err := r.insertChunk(ctx, tx, campID, slice.chunkID, part); err != nil {
				return err
			}
			continue
		}

		existing, err := r.getChunk(ctx, tx, campID, slice.chunkID)
		if err != nil {
			return err
		}
		if len(existing) != slice.startIndex {
			return fmt.Errorf("%w: chunk %d of camp %s holds %d operations, expected %d",
				ErrCorruptedOperationLog, slice.chunkID, campID, len(existing), slice.startIndex)
		}
		if err := r.updateChunk(ctx, tx, campID, slice.chunkID, append(existing, part...)); err != nil {
			return err
		}
	}

	return nil
}

func (r *campRepository) insertChunk(ctx context.Context, tx *sql.Tx, campID string, chunkID int64, ops []models.Operation) error {
	data, err := json.Marshal(ops)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}

	query, args, err := buildInsertChunkQuery(r.db.builder, campID, chunkID, data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}
	return nil
}

func (r *campRepository) updateChunk(ctx context.Context, tx *sql.Tx, campID string, chunkID int64, ops []models.Operation) error {
	data, err := json.Marshal(ops)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}

	query, args, err := buildUpdateChunkQuery(r.db.builder, campID, chunkID, data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}
	return nil
}

func (r *campRepository) getChunk(ctx context.Context, q querier, campID string, chunkID int64) ([]models.Operation, error) {
	query, args, err := buildSelectChunkQuery(r.db.builder, campID, chunkID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var data []byte
	if err = q.QueryRowContext(ctx, query, args...).Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: chunk %d of camp %s is missing", ErrCorruptedOperationLog, chunkID, campID)
		}
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, r.db.classify(err))
	}

	var ops []models.Operation
	if err = json.Unmarshal(data, &ops); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingJSON, err)
	}
	return ops, nil
}

func (r *campRepository) GetCampWithOps(ctx context.Context, id string, fromRevision int64) (*models.Camp, []models.Operation, error) {
	log := logger.FromContext(ctx)

	camp, err := r.getCamp(ctx, r.db, id)
	if err != nil {
		if !errors.Is(err, ErrCampNotFound) {
			log.Err(err).Str("func", "*campRepository.GetCampWithOps").Str("camp_id", id).Msg("error reading camp")
		}
		return nil, nil, err
	}

	fromRevision = max(fromRevision, 0)
	if fromRevision >= camp.Revision {
		return camp, []models.Operation{}, nil
	}

	ops, err := r.getOperations(ctx, id, fromRevision, camp.Revision)
	if err != nil {
		log.Err(err).Str("func", "*campRepository.GetCampWithOps").Str("camp_id", id).Msg("error reading operation log")
		return nil, nil, err
	}

	return camp, ops, nil
}

// getOperations reassembles log positions [from, to) from the chunk rows.
// Chunks only ever grow, so rows committed after the snapshot was read are
// simply cut at to.
func (r *campRepository) getOperations(ctx context.Context, campID string, from, to int64) ([]models.Operation, error) {
	slices := chunkSlices(from, int(to-from))

	query, args, err := buildSelectChunkRangeQuery(r.db.builder, campID, slices[0].chunkID, slices[len(slices)-1].chunkID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}
	defer rows.Close()

	chunks := make(map[int64][]models.Operation, len(slices))
	for rows.Next() {
		var (
			chunkID int64
			data    []byte
		)
		if err = rows.Scan(&chunkID, &data); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		var ops []models.Operation
		if err = json.Unmarshal(data, &ops); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecodingJSON, err)
		}
		chunks[chunkID] = ops
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, r.db.classify(err))
	}

	result := make([]models.Operation, 0, to-from)
	for _, slice := range slices {
		chunk := chunks[slice.chunkID]
		if len(chunk) < slice.startIndex+slice.count {
			return nil, fmt.Errorf("%w: chunk %d of camp %s holds %d operations, need %d",
				ErrCorruptedOperationLog, slice.chunkID, campID, len(chunk), slice.startIndex+slice.count)
		}
		result = append(result, chunk[slice.startIndex:slice.startIndex+slice.count]...)
	}

	return result, nil
}

func (r *campRepository) GetCamp(ctx context.Context, id string) (*models.Camp, error) {
	camp, err := r.getCamp(ctx, r.db, id)
	if err != nil && !errors.Is(err, ErrCampNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*campRepository.GetCamp").Str("camp_id", id).Msg("error reading camp")
	}
	return camp, err
}

func (r *campRepository) getCamp(ctx context.Context, q querier, id string) (*models.Camp, error) {
	query, args, err := buildSelectCampQuery(r.db.builder, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		camp  models.Camp
		lists []byte
	)
	err = q.QueryRowContext(ctx, query, args...).Scan(&camp.ID, &camp.Name, &lists, &camp.Revision)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrCampNotFound, id)
		}
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, r.db.classify(err))
	}

	if camp.Lists, err = unmarshalLists(lists); err != nil {
		return nil, err
	}

	return &camp, nil
}

func (r *campRepository) FindCampByCreateOperation(ctx context.Context, operationID string) (string, error) {
	query, args, err := buildSelectCampByCreateOperationQuery(r.db.builder, operationID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id string
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrCampNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*campRepository.FindCampByCreateOperation").Msg("error looking up camp")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, r.db.classify(err))
	}

	return id, nil
}

// marshalLists stores a camp without lists as "[]" rather than "null".
func marshalLists(lists []*models.List) ([]byte, error) {
	if lists == nil {
		lists = []*models.List{}
	}
	data, err := json.Marshal(lists)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}
	return data, nil
}

func unmarshalLists(data []byte) ([]*models.List, error) {
	var lists []*models.List
	if len(data) == 0 {
		return lists, nil
	}
	if err := json.Unmarshal(data, &lists); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingJSON, err)
	}
	if len(lists) == 0 {
		return nil, nil
	}
	return lists, nil
}
