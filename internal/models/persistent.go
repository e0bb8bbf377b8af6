package models

import (
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"
)

// ValidationKind tags the reason a DataValidationError was raised.
type ValidationKind int

const (
	MissingField ValidationKind = iota
	WrongType
	MalformedBody
	StorageError
)

// DataValidationError is the single error kind the entity layer reports,
// covering both bad request payloads and storage failures.
type DataValidationError struct {
	Kind   ValidationKind
	Entity string
	Field  string
	Cause  error
}

func (e *DataValidationError) Error() string {
	switch e.Kind {
	case MissingField:
		return fmt.Sprintf("Invalid %s: missing %s", e.Entity, e.Field)
	case WrongType:
		return fmt.Sprintf("Invalid %s: wrong type for %s", e.Entity, e.Field)
	case MalformedBody:
		return fmt.Sprintf("Invalid %s: body of request contained bad or no data", e.Entity)
	case StorageError:
		return fmt.Sprintf("Invalid %s: %v", e.Entity, e.Cause)
	}
	return fmt.Sprintf("Invalid %s", e.Entity)
}

func (e *DataValidationError) Unwrap() error {
	return e.Cause
}

func missingField(entity, field string) *DataValidationError {
	return &DataValidationError{Kind: MissingField, Entity: entity, Field: field}
}

func wrongType(entity, field string) *DataValidationError {
	return &DataValidationError{Kind: WrongType, Entity: entity, Field: field}
}

func malformedBody(entity string) *DataValidationError {
	return &DataValidationError{Kind: MalformedBody, Entity: entity}
}

func storageError(entity string, cause error) *DataValidationError {
	return &DataValidationError{Kind: StorageError, Entity: entity, Cause: cause}
}

// persist runs fn inside a transaction so a failed write is rolled
// back before the failure is reported as a DataValidationError.
func persist(db *gorm.DB, entity string, fn func(tx *gorm.DB) error) error {
	if err := db.Transaction(fn); err != nil {
		return storageError(entity, err)
	}
	return nil
}

// intField extracts a required integer from a decoded JSON mapping.
// JSON numbers decode as float64, so fractional values are rejected.
func intField(entity string, data map[string]any, key string) (int, error) {
	raw, ok := data[key]
	if !ok || raw == nil {
		return 0, missingField(entity, key)
	}
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, wrongType(entity, key)
		}
		return int(v), nil
	case int:
		return v, nil
	default:
		return 0, wrongType(entity, key)
	}
}

func floatField(entity string, data map[string]any, key string) (float64, error) {
	raw, ok := data[key]
	if !ok || raw == nil {
		return 0, missingField(entity, key)
	}
	switch v := raw.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	default:
		return 0, wrongType(entity, key)
	}
}

func stringField(entity string, data map[string]any, key string) (string, error) {
	raw, ok := data[key]
	if !ok || raw == nil {
		return "", missingField(entity, key)
	}
	v, ok := raw.(string)
	if !ok {
		return "", wrongType(entity, key)
	}
	return v, nil
}

// timeField extracts an optional RFC3339 timestamp. A missing or null
// value yields the zero time so callers can apply their own default.
func timeField(entity string, data map[string]any, key string) (time.Time, error) {
	raw, ok := data[key]
	if !ok || raw == nil {
		return time.Time{}, nil
	}
	switch v := raw.(type) {
	case string:
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return time.Time{}, wrongType(entity, key)
		}
		return t, nil
	case time.Time:
		return v, nil
	default:
		return time.Time{}, wrongType(entity, key)
	}
}
