package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clientkit/pkg/validator"
)

func TestApply(t *testing.T) {
	pass := validator.Rule{
		Check: func() bool { return true },
		Error: validator.ValidationError{Field: "ok", Message: "never reported"},
	}
	fail := func(field string) validator.Rule {
		return validator.Rule{
			Check: func() bool { return false },
			Error: validator.ValidationError{Field: field, Message: "failed"},
		}
	}

	t.Run("no rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})

	t.Run("all rules pass", func(t *testing.T) {
		assert.NoError(t, validator.Apply(pass, pass))
	})

	t.Run("collects every failure", func(t *testing.T) {
		err := validator.Apply(fail("a"), pass, fail("b"), fail("a"))
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 3)
		assert.True(t, errs.Has("a"))
		assert.True(t, errs.Has("b"))
		assert.False(t, errs.Has("ok"))
		assert.Len(t, errs.Get("a"), 2)
		assert.Equal(t, []string{"a", "b"}, errs.Fields())
	})
}

func TestValidationErrors(t *testing.T) {
	t.Run("error message", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())

		errs.Add(validator.ValidationError{Field: "email", Message: "must be a valid email address"})
		assert.Equal(t, "validation failed: email: must be a valid email address", errs.Error())
	})

	t.Run("empty check", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.True(t, errs.IsEmpty())

		errs.Add(validator.ValidationError{Field: "x", Message: "y"})
		assert.False(t, errs.IsEmpty())
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(nil))
	})

	t.Run("unrelated error", func(t *testing.T) {
		err := errors.New("boom")
		assert.Nil(t, validator.ExtractValidationErrors(err))
		assert.False(t, validator.IsValidationError(err))
	})

	t.Run("wrapped validation error", func(t *testing.T) {
		inner := validator.Apply(validator.ValidZipCode("zip", "nope"))
		wrapped := fmt.Errorf("saving form: %w", inner)

		assert.True(t, validator.IsValidationError(wrapped))
		errs := validator.ExtractValidationErrors(wrapped)
		require.Len(t, errs, 1)
		assert.Equal(t, "zip", errs[0].Field)
	})
}
