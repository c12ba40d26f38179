// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrCampNotFound is returned when no camp with the requested id exists.
	ErrCampNotFound = errors.New("camp was not found")

	// ErrCampStateNotFound is returned by the client repository when no local
	// state is stored for a camp.
	ErrCampStateNotFound = errors.New("camp state was not found")

	// ErrRevisionConflict is returned by callers that treat a lost
	// compare-and-set as an error. WriteCamp itself reports the lost race
	// through [models.WriteResult.Succeeded].
	ErrRevisionConflict = errors.New("camp revision conflict occurred")

	// ErrTransient wraps driver errors classified as [Retryable]: lost
	// connections, serialization failures, deadlocks and busy databases.
	ErrTransient = errors.New("transient storage failure")

	// ErrEmptyOperations is returned when WriteCamp is called without
	// operations. A write never advances the revision by zero.
	ErrEmptyOperations = errors.New("no operations to write")

	// ErrCorruptedOperationLog is returned when the stored chunks do not
	// cover the revision range recorded on the camp.
	ErrCorruptedOperationLog = errors.New("operation log is corrupted")

	// ErrUnsupportedDriver is returned for a storage driver other than pgx
	// or sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingJSON and ErrDecodingJSON wrap failures of the JSON columns
	// (camp lists, operation chunks, client state).
	ErrEncodingJSON = errors.New("failed to encode json column")
	ErrDecodingJSON = errors.New("failed to decode json column")
)
