package dateparse_test

import (
	"testing"
	"time"

	"github.com/awalczak/presskit"
	"github.com/awalczak/presskit/dateparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	parser := dateparse.NewParser()

	t.Run("rfc3339", func(t *testing.T) {
		t.Parallel()

		got, err := parser.Parse("2024-01-05T08:30:00Z")

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 5, 8, 30, 0, 0, time.UTC), got)
	})

	t.Run("human readable", func(t *testing.T) {
		t.Parallel()

		got, err := parser.Parse("January 5, 2024")

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("zoneless dates resolve in utc", func(t *testing.T) {
		t.Parallel()

		got, err := parser.Parse("2024-01-05 08:30:00")

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 5, 8, 30, 0, 0, time.UTC), got)
	})

	t.Run("zoned timestamps normalize to utc", func(t *testing.T) {
		t.Parallel()

		got, err := parser.Parse("2024-01-05T08:30:00+02:00")

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 5, 6, 30, 0, 0, time.UTC), got)
	})

	t.Run("empty value", func(t *testing.T) {
		t.Parallel()

		_, err := parser.Parse("   ")

		require.Error(t, err)
		assert.Equal(t, presskit.EINVALID, presskit.ErrorCode(err))
	})

	t.Run("unparseable value", func(t *testing.T) {
		t.Parallel()

		_, err := parser.Parse("soonish")

		require.Error(t, err)
		assert.Equal(t, presskit.EINVALID, presskit.ErrorCode(err))
	})
}
