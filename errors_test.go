package presskit_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/awalczak/presskit"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("returns code from application error", func(t *testing.T) {
		t.Parallel()

		err := presskit.Errorf(presskit.EINVALID, "bad input")

		assert.Equal(t, presskit.EINVALID, presskit.ErrorCode(err))
	})

	t.Run("unwraps wrapped application errors", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("outer: %w", presskit.Errorf(presskit.ENOTFOUND, "missing"))

		assert.Equal(t, presskit.ENOTFOUND, presskit.ErrorCode(err))
	})

	t.Run("returns EINTERNAL for plain errors", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, presskit.EINTERNAL, presskit.ErrorCode(errors.New("boom")))
	})

	t.Run("returns empty string for nil", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", presskit.ErrorCode(nil))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("returns message from application error", func(t *testing.T) {
		t.Parallel()

		err := presskit.Errorf(presskit.EINVALID, "field %q required", "url")

		assert.Equal(t, `field "url" required`, presskit.ErrorMessage(err))
	})

	t.Run("masks plain errors", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Internal error.", presskit.ErrorMessage(errors.New("boom")))
	})
}
