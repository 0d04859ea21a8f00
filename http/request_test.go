package http

import (
	"maps"
	"testing"

	"github.com/indigo-web/lattice/http/method"
	"github.com/indigo-web/lattice/http/proto"
	"github.com/stretchr/testify/require"
)

func TestRequest(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		request := DefaultRequest()
		require.Equal(t, method.GET, request.Method)
		require.Equal(t, "/", request.Path)
		require.Equal(t, proto.HTTP11, request.Protocol)
		require.Equal(t, "text/html", request.Headers.Value("content-type"))
		require.Empty(t, request.Body)
		require.Empty(t, request.Params)
	})

	t.Run("query", func(t *testing.T) {
		request := NewRequest()
		request.Params = "hello=world&hel%20lo=wor+ld&flag&&broken=%zz"

		want := map[string]string{
			"hello":  "world",
			"hel lo": "wor ld",
			"flag":   "",
			"broken": "%zz",
		}
		require.Equal(t, want, maps.Collect(request.Query().Pairs()))
		require.Same(t, request.Query(), request.Query())
	})

	t.Run("empty query", func(t *testing.T) {
		require.True(t, NewRequest().Query().Empty())
	})

	t.Run("env", func(t *testing.T) {
		request := NewRequest()
		request.Env.Set(EnvRemoteAddr, "127.0.0.1:54321")
		request.Env.Set(EnvConnID, "abc")
		require.Equal(t, "127.0.0.1:54321", request.Remote())
		require.Equal(t, "abc", request.ConnID())
	})
}
