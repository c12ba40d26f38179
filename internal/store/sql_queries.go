// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

// Query builders. Each takes the dialect's statement builder so the same
// SQL serves PostgreSQL ($n placeholders) and SQLite (?).

var campColumns = []string{"id", "name", "lists", "revision"}

func buildInsertCampQuery(sb sq.StatementBuilderType, id, name string, lists []byte, revision int64, createOperationID string) (string, []any, error) {
	return sb.Insert("camps").
		Columns("id", "name", "lists", "revision", "create_operation_id").
		Values(id, name, string(lists), revision, createOperationID).
		ToSql()
}

// buildUpdateCampQuery is the compare-and-set: it matches only while the
// stored revision still equals expectedRevision.
func buildUpdateCampQuery(sb sq.StatementBuilderType, id, name string, lists []byte, expectedRevision, newRevision int64) (string, []any, error) {
	return sb.Update("camps").
		Set("name", name).
		Set("lists", string(lists)).
		Set("revision", newRevision).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"revision": expectedRevision}).
		ToSql()
}

func buildSelectCampQuery(sb sq.StatementBuilderType, id string) (string, []any, error) {
	return sb.Select(campColumns...).
		From("camps").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildSelectCampByCreateOperationQuery(sb sq.StatementBuilderType, operationID string) (string, []any, error) {
	return sb.Select("id").
		From("camps").
		Where(sq.Eq{"create_operation_id": operationID}).
		ToSql()
}

func buildSelectChunkQuery(sb sq.StatementBuilderType, campID string, chunkID int64) (string, []any, error) {
	return sb.Select("ops").
		From("camp_operations").
		Where(sq.Eq{"camp_id": campID}).
		Where(sq.Eq{"chunk_id": chunkID}).
		ToSql()
}

func buildSelectChunkRangeQuery(sb sq.StatementBuilderType, campID string, firstChunkID, lastChunkID int64) (string, []any, error) {
	return sb.Select("chunk_id", "ops").
		From("camp_operations").
		Where(sq.Eq{"camp_id": campID}).
		Where(sq.GtOrEq{"chunk_id": firstChunkID}).
		Where(sq.LtOrEq{"chunk_id": lastChunkID}).
		OrderBy("chunk_id").
		ToSql()
}

func buildInsertChunkQuery(sb sq.StatementBuilderType, campID string, chunkID int64, ops []byte) (string, []any, error) {
	return sb.Insert("camp_operations").
		Columns("camp_id", "chunk_id", "ops").
		Values(campID, chunkID, string(ops)).
		ToSql()
}

func buildUpdateChunkQuery(sb sq.StatementBuilderType, campID string, chunkID int64, ops []byte) (string, []any, error) {
	return sb.Update("camp_operations").
		Set("ops", string(ops)).
		Where(sq.Eq{"camp_id": campID}).
		Where(sq.Eq{"chunk_id": chunkID}).
		ToSql()
}

func buildInsertUserQuery(sb sq.StatementBuilderType, login, name, passwordHash string, createdAt time.Time) (string, []any, error) {
	return sb.Insert("users").
		Columns("login", "name", "password_hash", "created_at").
		Values(login, name, passwordHash, createdAt).
		Suffix("RETURNING user_id").
		ToSql()
}

func buildSelectUserByLoginQuery(sb sq.StatementBuilderType, login string) (string, []any, error) {
	return sb.Select("user_id", "login", "name", "password_hash", "created_at").
		From("users").
		Where(sq.Eq{"login": login}).
		ToSql()
}

func buildInsertCampUserQuery(sb sq.StatementBuilderType, userID int64, campID string) (string, []any, error) {
	return sb.Insert("camp_users").
		Columns("user_id", "camp_id").
		Values(userID, campID).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
}

func buildSelectUserCampsQuery(sb sq.StatementBuilderType, userID int64) (string, []any, error) {
	return sb.Select("c.id", "c.name", "c.revision").
		From("camps c").
		Join("camp_users cu ON cu.camp_id = c.id").
		Where(sq.Eq{"cu.user_id": userID}).
		OrderBy("c.created_at", "c.id").
		ToSql()
}

var campStateColumns = []string{"camp_id", "user_id", "current_camp", "server_camp", "last_server_operation", "pending_ops", "updated_at"}

// buildUpsertCampStateQuery replaces the whole row; the client always
// persists a complete state.
func buildUpsertCampStateQuery(sb sq.StatementBuilderType, campID string, userID int64, current []byte, server any, lastServerOperation int64, pendingOps []byte, updatedAt time.Time) (string, []any, error) {
	return sb.Insert("camp_states").
		Columns(campStateColumns...).
		Values(campID, userID, string(current), server, lastServerOperation, string(pendingOps), updatedAt).
		Suffix(`ON CONFLICT (camp_id) DO UPDATE SET user_id = excluded.user_id, current_camp = excluded.current_camp, server_camp = excluded.server_camp, ` +
			`last_server_operation = excluded.last_server_operation, pending_ops = excluded.pending_ops, updated_at = excluded.updated_at`).
		ToSql()
}

func buildSelectCampStateQuery(sb sq.StatementBuilderType, campID string) (string, []any, error) {
	return sb.Select(campStateColumns...).
		From("camp_states").
		Where(sq.Eq{"camp_id": campID}).
		ToSql()
}

func buildSelectCampStatesByUserQuery(sb sq.StatementBuilderType, userID int64) (string, []any, error) {
	return sb.Select(campStateColumns...).
		From("camp_states").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("updated_at", "camp_id").
		ToSql()
}

func buildDeleteCampStateQuery(sb sq.StatementBuilderType, campID string) (string, []any, error) {
	return sb.Delete("camp_states").
		Where(sq.Eq{"camp_id": campID}).
		ToSql()
}
