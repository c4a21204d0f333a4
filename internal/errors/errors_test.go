package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "person"}
		assert.Equal(t, "person not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "person"}
		err2 := &NotFoundError{Entity: "person"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "person"}
		err2 := &NotFoundError{Entity: "stage"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrPersonNotFound, ErrPersonNotFound))
		assert.False(t, errors.Is(ErrPersonNotFound, ErrStageNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrPersonNotFound))
		assert.False(t, IsNotFound(ErrTagExists))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "tag", Context: "for the person"}
		assert.Equal(t, "tag already exists for the person", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "tag"}
		assert.Equal(t, "tag already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "person", Context: "in tenant"}
		err2 := &AlreadyExistsError{Entity: "person", Context: "in tenant"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrTagExists))
		assert.False(t, IsAlreadyExists(ErrPersonNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("email", "invalid")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrPersonNotFound))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("custom", "in scope")
		assert.Equal(t, "custom already exists in scope", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewValidationError", func(t *testing.T) {
		err := NewValidationError("field", "message")
		assert.Equal(t, "validation error: field - message", err.Error())
		assert.True(t, IsValidation(err))
	})
}

func TestBusinessLogicErrors(t *testing.T) {
	t.Run("validation sentinels", func(t *testing.T) {
		assert.True(t, IsValidation(ErrDefaultStageDelete))
		assert.True(t, IsValidation(ErrUnsupportedImportFormat))
		assert.True(t, IsValidation(ErrCurrentPasswordMismatch))
	})

	t.Run("authentication sentinels", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrInvalidCredentials))
		assert.True(t, IsAuthentication(ErrTokenRevoked))
		assert.False(t, IsAuthorization(ErrInvalidCredentials))
	})

	t.Run("authorization sentinels", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrCannotDeleteOwner))
		assert.True(t, IsAuthorization(ErrClaimWindowExpired))
	})

	t.Run("wrapped errors keep their kind", func(t *testing.T) {
		err := fmt.Errorf("failed to delete stage: %w", ErrDefaultStageDelete)
		assert.True(t, IsValidation(err))
		assert.True(t, errors.Is(err, ErrDefaultStageDelete))
	})
}

func TestPlanLimitError(t *testing.T) {
	err := NewPlanLimitError("people", 500)
	assert.Equal(t, "plan limit reached: at most 500 people allowed", err.Error())
	assert.True(t, IsPlanLimit(err))
	assert.True(t, IsPlanLimit(fmt.Errorf("create: %w", err)))
	assert.False(t, IsPlanLimit(ErrPersonNotFound))
}
