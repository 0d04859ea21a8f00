package address

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		require.Equal(t, "127.0.0.1:8080", Normalize(""))
	})

	t.Run("only port", func(t *testing.T) {
		require.Equal(t, "0.0.0.0:9090", Normalize(":9090"))
	})

	t.Run("full", func(t *testing.T) {
		require.Equal(t, "localhost:8080", Normalize("localhost:8080"))
	})
}
