package lattice

import (
	"fmt"
	"io"
	"net"
	stdhttp "net/http"
	"sync"
	"testing"
	"time"

	"github.com/indigo-web/lattice/config"
	"github.com/indigo-web/lattice/http"
	"github.com/indigo-web/lattice/http/status"
	"github.com/indigo-web/lattice/logging"
	"github.com/indigo-web/lattice/router/inbuilt"
	"github.com/stretchr/testify/require"
)

type model struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func getRouter() *inbuilt.Router {
	r := inbuilt.New()
	r.Get("/", http.HandlerFunc(func(_ *http.Request, response *http.Response) {
		response.String("index")
	}))
	r.Get("/user/:name", http.HandlerFunc(func(request *http.Request, response *http.Response) {
		response.JSON(model{Name: request.Vars.Value("name"), Age: 42})
	}))
	r.Post("/echo", http.HandlerFunc(func(request *http.Request, response *http.Response) {
		response.Header("X-Query", request.Query().Value("q")).String(request.Body)
	}))
	r.Get("/slow", http.HandlerFunc(func(_ *http.Request, response *http.Response) {
		time.Sleep(50 * time.Millisecond)
		response.String("done")
	}))

	return r
}

// run starts the app in background and waits until it's bound.
func run(t *testing.T, app *App) (url string, done <-chan error) {
	started := make(chan struct{})
	errCh := make(chan error, 1)
	app.NotifyOnStart(func() {
		close(started)
	})

	go func() {
		errCh <- app.Serve(getRouter())
	}()

	select {
	case <-started:
	case err := <-errCh:
		require.FailNow(t, "app exited prematurely", "%v", err)
	}

	return "http://" + app.Addr().String(), errCh
}

func newClient() *stdhttp.Client {
	return &stdhttp.Client{
		Transport: &stdhttp.Transport{DisableKeepAlives: true},
		Timeout:   5 * time.Second,
	}
}

func TestApp(t *testing.T) {
	cfg := config.Default()
	cfg.Workers.Count = 4
	cfg.Headers.Default["Server"] = "lattice"

	var stopped bool
	app := New("127.0.0.1:0").
		Tune(cfg).
		Logger(logging.Nop{}).
		Header("X-Frame-Options", "DENY").
		NotifyOnStop(func() {
			stopped = true
		})

	url, done := run(t, app)
	client := newClient()

	t.Run("index", func(t *testing.T) {
		resp, err := client.Get(url + "/")
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())
		require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
		require.Equal(t, "index", string(body))
		require.Equal(t, "lattice", resp.Header.Get("Server"))
		require.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
	})

	t.Run("json", func(t *testing.T) {
		resp, err := client.Get(url + "/user/pavlo")
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())
		require.Equal(t, "application/json", resp.Header.Get("Content-Type"))
		require.JSONEq(t, `{"name":"pavlo","age":42}`, string(body))
	})

	t.Run("post with query", func(t *testing.T) {
		resp, err := client.Post(url+"/echo?q=hello%20world", "text/plain", nil)
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())
		require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
		require.Equal(t, "hello world", resp.Header.Get("X-Query"))
	})

	t.Run("not found", func(t *testing.T) {
		resp, err := client.Get(url + "/does/not/exist")
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())
		require.Equal(t, stdhttp.StatusNotFound, resp.StatusCode)
		require.Equal(t, "lattice", resp.Header.Get("Server"))
	})

	t.Run("unknown method", func(t *testing.T) {
		req, err := stdhttp.NewRequest(stdhttp.MethodPatch, url+"/", nil)
		require.NoError(t, err)
		resp, err := client.Do(req)
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())
		require.Equal(t, int(status.NotImplemented), resp.StatusCode)
	})

	t.Run("raw connection", func(t *testing.T) {
		conn, err := net.Dial("tcp", app.Addr().String())
		require.NoError(t, err)
		_, err = conn.Write([]byte("GET / HTTP/1.1\r\n\r\n"))
		require.NoError(t, err)
		data, err := io.ReadAll(conn)
		require.NoError(t, err)
		require.NoError(t, conn.Close())
		require.Equal(
			t,
			"HTTP/1.1 200 OK\r\nServer: lattice\r\nX-Frame-Options: DENY\r\n\r\nindex",
			string(data),
		)
	})

	t.Run("concurrent clients", func(t *testing.T) {
		const N = 32
		var wg sync.WaitGroup
		errs := make(chan error, N)

		for i := range N {
			wg.Add(1)
			go func() {
				defer wg.Done()

				resp, err := client.Get(fmt.Sprintf("%s/user/%d", url, i))
				if err != nil {
					errs <- err
					return
				}

				_ = resp.Body.Close()
				if resp.StatusCode != stdhttp.StatusOK {
					errs <- fmt.Errorf("unexpected status: %d", resp.StatusCode)
				}
			}()
		}

		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}
	})

	t.Run("stop waits for accepted connections", func(t *testing.T) {
		conn, err := net.Dial("tcp", app.Addr().String())
		require.NoError(t, err)
		_, err = conn.Write([]byte("GET /slow HTTP/1.1\r\n\r\n"))
		require.NoError(t, err)

		// give the accept loop a moment to hand the connection over
		time.Sleep(50 * time.Millisecond)
		app.Stop()
		app.Stop()

		data, err := io.ReadAll(conn)
		require.NoError(t, err)
		require.NoError(t, conn.Close())
		require.Contains(t, string(data), "done")

		require.NoError(t, <-done)
		require.True(t, stopped)
	})
}

func TestStopBeforeServe(t *testing.T) {
	app := New("127.0.0.1:0").Logger(nil)
	app.Stop()
	require.NoError(t, app.Serve(nil))
	require.Nil(t, app.Addr())
}

func TestBindFailure(t *testing.T) {
	sock, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer func() {
		_ = sock.Close()
	}()

	app := New(sock.Addr().String()).Logger(nil)
	require.Error(t, app.Serve(nil))
}
