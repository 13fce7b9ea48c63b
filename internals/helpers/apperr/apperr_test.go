package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	nf := NotFound("quiz not found")
	assert.Equal(t, http.StatusNotFound, nf.Status)
	assert.Equal(t, CodeNotFound, nf.Code)
	assert.Equal(t, "quiz not found", nf.Error())

	v := Validation("points", "points must be >= 0")
	assert.Equal(t, http.StatusUnprocessableEntity, v.Status)
	assert.Equal(t, map[string][]string{"points": {"points must be >= 0"}}, v.Fields)
	assert.Nil(t, Validation("", "bad").Fields)

	assert.Equal(t, CodeConflict, Conflict("", "x").Code)
	assert.Equal(t, "MAX_ATTEMPTS_REACHED", Conflict("MAX_ATTEMPTS_REACHED", "x").Code)
}

func TestPredicatesUnwrap(t *testing.T) {
	wrapped := fmt.Errorf("start attempt: %w", Conflict("ATTEMPT_COMPLETED", "done"))
	assert.True(t, IsConflict(wrapped))
	assert.False(t, IsNotFound(wrapped))
	assert.False(t, IsValidation(errors.New("plain")))

	cause := errors.New("disk full")
	e := &Error{Status: 500, Message: "save failed", Err: cause}
	assert.ErrorIs(t, e, cause)
	assert.Equal(t, "save failed: disk full", e.Error())
}
