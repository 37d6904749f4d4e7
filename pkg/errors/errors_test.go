package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	cases := map[*AppError]int{
		NotFound("prescription", nil):                   http.StatusNotFound,
		BadRequest("Please enter a valid amount.", nil): http.StatusBadRequest,
		Conflict("already cancelled", nil):              http.StatusConflict,
		PreconditionFailed("location required"):         http.StatusPreconditionFailed,
		Internal(fmt.Errorf("boom")):                    http.StatusInternalServerError,
	}

	for appErr, want := range cases {
		assert.Equal(t, want, appErr.StatusCode(), appErr.Message)
	}
}

func TestAsFindsWrappedError(t *testing.T) {
	wrapped := fmt.Errorf("order prescription: %w", Conflict("prescription is not active", nil))

	appErr, ok := As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, ErrConflict, appErr.Code)
	assert.True(t, HasCode(wrapped, ErrConflict))
	assert.False(t, HasCode(wrapped, ErrNotFound))
	assert.False(t, HasCode(fmt.Errorf("plain"), ErrConflict))
}

func TestErrorMessageIncludesCause(t *testing.T) {
	err := NotFound("medical record", fmt.Errorf("id 42"))
	assert.Equal(t, "medical record not found: id 42", err.Error())
	assert.Equal(t, "medical record not found", NotFound("medical record", nil).Error())
}
