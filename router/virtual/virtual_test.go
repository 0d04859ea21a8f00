package virtual

import (
	"errors"
	"testing"

	"github.com/indigo-web/lattice/http"
	"github.com/indigo-web/lattice/http/method"
	"github.com/indigo-web/lattice/http/status"
	"github.com/indigo-web/lattice/router"
	"github.com/indigo-web/lattice/router/inbuilt"
	"github.com/indigo-web/lattice/router/simple"
	"github.com/stretchr/testify/require"
)

func newRequest(hosts ...string) *http.Request {
	request := http.NewRequest()
	request.Method = method.GET
	request.Path = "/"
	for _, host := range hosts {
		request.Headers.Set("Host", host)
	}

	return request
}

func named(name string) router.Router {
	return simple.New(http.HandlerFunc(func(_ *http.Request, response *http.Response) {
		response.String(name)
	}))
}

// resolve returns the body written by the resolved handler, or the code of the error.
func resolve(t *testing.T, r router.Router, request *http.Request) (string, status.Code) {
	handler, err := r.Resolve(request)
	if err != nil {
		return "", status.CodeOf(err)
	}

	response := http.NewResponse()
	handler.Handle(request, response)

	return string(response.Reveal().Body), status.OK
}

func TestVirtualRouter(t *testing.T) {
	t.Run("no hosts", func(t *testing.T) {
		r := New()
		require.NoError(t, r.OnStart())
		_, code := resolve(t, r, newRequest("localhost"))
		require.Equal(t, status.MisdirectedRequest, code)
		_, code = resolve(t, r, newRequest())
		require.Equal(t, status.BadRequest, code)
	})

	t.Run("default router", func(t *testing.T) {
		for _, r := range []*Router{
			New().Default(named("default")),
			New().Host("0.0.0.0", named("default")),
			New().Host("0.0.0.0:8080", named("default")),
		} {
			require.NoError(t, r.OnStart())
			for _, host := range []string{"localhost", "127.0.0.1"} {
				body, code := resolve(t, r, newRequest(host))
				require.Equal(t, status.OK, code)
				require.Equal(t, "default", body)
			}

			body, _ := resolve(t, r, newRequest())
			require.Equal(t, "default", body)
		}
	})

	t.Run("multiple hosts", func(t *testing.T) {
		r := New().
			Host("pavlo.ooo", named("pavlo")).
			Host("www.example.com:443", named("example")).
			Host("example.com:8080", named("example 8080"))
		require.NoError(t, r.OnStart())

		for host, want := range map[string]string{
			"pavlo.ooo":           "pavlo",
			"PAVLO.ooo":           "pavlo",
			"pavlo.ooo:80":        "pavlo",
			"example.com":         "example",
			"www.example.com":     "example",
			"example.com:8080":    "example 8080",
			"www.example.com:443": "example",
		} {
			body, code := resolve(t, r, newRequest(host))
			require.Equal(t, status.OK, code, host)
			require.Equal(t, want, body, host)
		}

		_, code := resolve(t, r, newRequest("localhost"))
		require.Equal(t, status.MisdirectedRequest, code)
	})

	t.Run("delegates to inbuilt", func(t *testing.T) {
		api := inbuilt.New()
		api.Get("/users/:id", http.HandlerFunc(func(request *http.Request, response *http.Response) {
			response.String("user " + request.Vars.Value("id"))
		}))

		r := New().Host("api.example.com", api)
		require.NoError(t, r.OnStart())

		request := newRequest("api.example.com")
		request.Path = "/users/5"
		body, code := resolve(t, r, request)
		require.Equal(t, status.OK, code)
		require.Equal(t, "user 5", body)

		request = newRequest("api.example.com")
		request.Path = "/nope"
		_, code = resolve(t, r, request)
		require.Equal(t, status.NotFound, code)
	})

	t.Run("start errors are joined", func(t *testing.T) {
		errA, errB := errors.New("a"), errors.New("b")
		r := New().
			Host("a.com", failingRouter{errA}).
			Default(failingRouter{errB})

		err := r.OnStart()
		require.ErrorIs(t, err, errA)
		require.ErrorIs(t, err, errB)
	})
}

type failingRouter struct {
	err error
}

func (f failingRouter) OnStart() error {
	return f.err
}

func (failingRouter) Resolve(*http.Request) (http.Handler, error) {
	return nil, status.ErrNotFound
}

func TestNormalizeHost(t *testing.T) {
	t.Run("pure domain", func(t *testing.T) {
		require.Equal(t, "foo.example.com", normalizeHost("foo.example.com"))
	})

	t.Run("with default port", func(t *testing.T) {
		require.Equal(t, "foo.example.com", normalizeHost("foo.example.com:80"))
		require.Equal(t, "foo.example.com", normalizeHost("foo.example.com:443"))
	})

	t.Run("with different port", func(t *testing.T) {
		require.Equal(t, "foo.example.com:8080", normalizeHost("foo.example.com:8080"))
	})

	t.Run("with www prefix", func(t *testing.T) {
		require.Equal(t, "foo.example.com", normalizeHost("www.foo.example.com"))
	})

	t.Run("ip address", func(t *testing.T) {
		require.Equal(t, "1.1.1.1", normalizeHost("1.1.1.1:80"))
		require.Equal(t, "[::1]", normalizeHost("[::1]:443"))
		require.Equal(t, "[::1]", normalizeHost("[::1]"))
	})
}

func TestTrimPort(t *testing.T) {
	require.Equal(t, "localhost", trimPort("localhost:8080"))
	require.Equal(t, "localhost", trimPort("localhost"))
}
