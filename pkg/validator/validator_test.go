package validator

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type message struct {
	Text  string `json:"text" binding:"notblank" validate:"notblank"`
	Email string `json:"email" binding:"omitempty,email" validate:"omitempty,email"`
}

func newValidate(t *testing.T) *validator.Validate {
	v := validator.New()
	require.NoError(t, Configure(v))
	return v
}

func TestNotBlankRejectsWhitespace(t *testing.T) {
	v := newValidate(t)

	err := v.Struct(message{Text: "   "})
	require.Error(t, err)

	verrs, ok := err.(validator.ValidationErrors)
	require.True(t, ok)
	assert.Equal(t, "text", verrs[0].Field())
	assert.Equal(t, "notblank", verrs[0].Tag())

	assert.NoError(t, v.Struct(message{Text: "hello"}))
}

func TestJSONFieldNames(t *testing.T) {
	err := newValidate(t).Struct(message{Text: "hi", Email: "not-an-email"})
	require.Error(t, err)
	assert.Equal(t, "email", err.(validator.ValidationErrors)[0].Field())
}

func TestRegisterGin(t *testing.T) {
	require.NoError(t, RegisterGin())

	err := binding.Validator.ValidateStruct(&message{Text: "\t"})
	require.Error(t, err)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "notblank", verrs[0].Tag())

	assert.NoError(t, binding.Validator.ValidateStruct(&message{Text: "ok"}))
}
