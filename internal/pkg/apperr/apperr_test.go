package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindPredicates(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("user %s missing", "u1")))
	assert.True(t, IsConflict(Conflict("slug taken")))
	assert.True(t, IsValidation(Validation("rating out of range")))
	assert.True(t, IsTransient(Transient(errors.New("timeout"), "store")))

	assert.False(t, IsNotFound(Conflict("slug taken")))
	assert.False(t, IsConflict(errors.New("plain")))
	assert.False(t, IsValidation(nil))
}

func TestWrappedErrorsKeepKind(t *testing.T) {
	err := fmt.Errorf("outer: %w", NotFound("missing"))
	assert.True(t, IsNotFound(err))
}

func TestTransientUnwraps(t *testing.T) {
	cause := errors.New("connection reset")
	err := Transient(cause, "store write")
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "store write")
	assert.Contains(t, err.Error(), "connection reset")
}
