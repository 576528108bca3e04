package idx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	id := New()
	require.False(t, id.IsZero())
	require.Len(t, id.String(), 26, "canonical ULID form is 26 chars")

	parsed, err := Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestNew_Ordering(t *testing.T) {
	// Monotonic entropy keeps same-millisecond IDs sorted by creation order.
	prev := New()
	for range 50 {
		next := New()
		require.Less(t, prev.String(), next.String())
		prev = next
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, s := range []string{"", "  ", "not-a-ulid", "0000000000000000000000000!"} {
		_, err := Parse(s)
		require.ErrorIs(t, err, ErrInvalid)
	}
}

func TestTime(t *testing.T) {
	id := New()
	require.WithinDuration(t, time.Now().UTC(), id.Time(), time.Minute)

	require.True(t, Zero.Time().IsZero())
}
