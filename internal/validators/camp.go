// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-camp-sync/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldOperationID targets the stable id of an operation.
	FieldOperationID = "id"

	// FieldOperationType targets the operation kind.
	FieldOperationType = "type"

	// FieldTimestamp targets the author timestamp of an operation.
	FieldTimestamp = "timestamp"

	// FieldOperationPayload targets the kind-specific fields (name, list,
	// items, state).
	FieldOperationPayload = "payload"

	// FieldUserID targets the caller resolved by the transport.
	FieldUserID = "user_id"

	// FieldOpIndex targets the client's base revision.
	FieldOpIndex = "op_index"

	// FieldNewOps targets the batch of operations of a sync request.
	FieldNewOps = "new_ops"
)

// CampValidator validates operations and sync requests.
//
// It checks shape only. Whether a camp id is required depends on the
// first operation and is decided by the sync service.
type CampValidator struct{}

// NewCampValidator constructs a new CampValidator and returns it as the
// Validator interface.
func NewCampValidator() Validator {
	return &CampValidator{}
}

// Validate dispatches on the dynamic type of obj. Supported types:
// models.Operation and models.SyncRequest, as values or pointers.
func (v *CampValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Operation:
		return v.validateOperation(ctx, value, fields...)
	case *models.Operation:
		return v.validateOperation(ctx, *value, fields...)

	case models.SyncRequest:
		return v.validateSyncRequest(ctx, value, fields...)
	case *models.SyncRequest:
		return v.validateSyncRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CampValidator) validateOperation(_ context.Context, op models.Operation, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOperationID, FieldOperationType, FieldTimestamp, FieldOperationPayload}
	}

	for _, f := range fields {
		switch f {
		case FieldOperationID:
			if op.ID == "" {
				return ErrEmptyOperationID
			}
		case FieldOperationType:
			if op.Type == models.OperationIdentity {
				return fmt.Errorf("%w: %q is produced only by rebasing", ErrInvalidOpType, op.Type)
			}
			if !isKnownOperationType(op.Type) {
				return fmt.Errorf("%w: %q", ErrInvalidOpType, op.Type)
			}
		case FieldTimestamp:
			if op.Timestamp == "" {
				return ErrEmptyTimestamp
			}
		case FieldOperationPayload:
			if err := validatePayload(op); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isKnownOperationType(t models.OperationType) bool {
	switch t {
	case models.OperationCreateCamp,
		models.OperationRenameList,
		models.OperationRenameItem,
		models.OperationChangeItemState,
		models.OperationChangeItemDeleted:
		return true
	}
	return false
}

// validatePayload checks the fields each operation kind relies on. Unknown
// kinds are left to the type check.
func validatePayload(op models.Operation) error {
	switch op.Type {
	case models.OperationCreateCamp:
		if op.Name == "" {
			return ErrEmptyCampName
		}
	case models.OperationRenameList:
		if op.ListID == "" {
			return ErrEmptyListID
		}
	case models.OperationRenameItem:
		if op.ListID == "" {
			return ErrEmptyListID
		}
		if op.ItemID == "" {
			return ErrEmptyItemID
		}
	case models.OperationChangeItemState:
		if err := validateItemSet(op); err != nil {
			return err
		}
		if !op.State.IsValid() {
			return fmt.Errorf("%w: %q", ErrInvalidItemState, op.State)
		}
	case models.OperationChangeItemDeleted:
		return validateItemSet(op)
	}
	return nil
}

func validateItemSet(op models.Operation) error {
	if op.ListID == "" {
		return ErrEmptyListID
	}
	if len(op.ItemIDs) == 0 {
		return ErrEmptyItemIDs
	}
	for _, id := range op.ItemIDs {
		if id == "" {
			return ErrEmptyItemID
		}
	}
	return nil
}

// validateSyncRequest validates the envelope and every operation in it.
//
// Default validated fields: UserID, OpIndex, NewOps. An empty NewOps is a
// valid poll.
func (v *CampValidator) validateSyncRequest(ctx context.Context, request models.SyncRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldOpIndex, FieldNewOps}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if request.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldOpIndex:
			if request.OpIndex < 0 {
				return ErrInvalidOpIndex
			}
		case FieldNewOps:
			seen := make(map[string]struct{}, len(request.NewOps))
			for i, op := range request.NewOps {
				if err := v.validateOperation(ctx, op); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
				if op.Type == models.OperationCreateCamp && i > 0 {
					return fmt.Errorf("validation error at index %d: %w", i, ErrMisplacedCreate)
				}
				if _, dup := seen[op.ID]; dup {
					return fmt.Errorf("validation error at index %d: %w", i, ErrDuplicateOpID)
				}
				seen[op.ID] = struct{}{}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
