package reqctx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	t.Run("stored id ok", func(t *testing.T) {
		ctx := New(t.Context(), "req-1")

		id, ok := FromContext(ctx)

		require.True(t, ok)
		require.Equal(t, "req-1", id)
	})

	t.Run("missing id", func(t *testing.T) {
		_, ok := FromContext(t.Context())

		require.False(t, ok)
	})
}
