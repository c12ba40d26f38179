// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-camp-sync/internal/config"
	"github.com/MKhiriev/go-camp-sync/internal/logger"
	"github.com/MKhiriev/go-camp-sync/migrations"
	"github.com/MKhiriev/go-camp-sync/models"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newDBFromSQL wraps a sqlmock connection the way NewConnectPostgres wraps
// a real pool.
func newDBFromSQL(db *sql.DB) *DB {
	return newDB(db, config.DriverPostgres, logger.Nop())
}

// newSQLiteDB opens a migrated SQLite database in a temp dir.
func newSQLiteDB(t *testing.T, dir string) *DB {
	t.Helper()
	db, err := NewConnectSQLite(context.Background(), filepath.Join(t.TempDir(), "store.db"), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate(dir))
	return db
}

func newServerSQLiteDB(t *testing.T) *DB {
	return newSQLiteDB(t, migrations.DirSQLite)
}

// sequenceIDs hands out camp-1, camp-2, ...
type sequenceIDs struct {
	prefix string
	n      atomic.Int64
}

func (s *sequenceIDs) Generate() string {
	return fmt.Sprintf("%s-%d", s.prefix, s.n.Add(1))
}

func createOp(id, name string) models.Operation {
	return models.Operation{ID: id, Type: models.OperationCreateCamp, Timestamp: "2026-01-01T00:00:00.000Z", Name: name}
}

func renameListOp(id, listID, name string) models.Operation {
	return models.Operation{ID: id, Type: models.OperationRenameList, Timestamp: "2026-01-01T00:00:01.000Z", ListID: listID, Name: name}
}

// renameOps builds n RENAME_CAMP_LIST operations with ids prefix-0..n-1.
func renameOps(prefix string, n int) []models.Operation {
	ops := make([]models.Operation, n)
	for i := range ops {
		ops[i] = renameListOp(fmt.Sprintf("%s-%d", prefix, i), "list-1", fmt.Sprintf("name %d", i))
	}
	return ops
}
