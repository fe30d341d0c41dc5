package tinyserve

import (
	"bufio"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	stdhttp "net/http"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/tinyserve/config"
	"github.com/indigo-web/tinyserve/router/inbuilt"
	"github.com/indigo-web/tinyserve/router/inbuilt/middleware"
	"github.com/indigo-web/tinyserve/todo"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}

// runApp starts the todo list on a random port and returns its addresses.
func runApp(t *testing.T, app *App, store *todo.Store) []net.Addr {
	cfg := config.Default()
	cfg.NET.AcceptLoopInterruptPeriod = 50 * time.Millisecond
	cfg.NET.ReadTimeout = 2 * time.Second

	r := inbuilt.New().Use(middleware.Recover(nopLogger{}))
	todo.Register(r, store, todo.Options{})

	started := make(chan []net.Addr, 1)
	stopped := make(chan error, 1)

	app.Tune(cfg).
		Logger(nopLogger{}).
		NotifyOnStart(func(addrs []net.Addr) {
			started <- addrs
		})

	go func() {
		stopped <- app.Serve(r)
	}()

	var addrs []net.Addr
	select {
	case addrs = <-started:
	case err := <-stopped:
		t.Fatalf("app failed to start: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("app didn't start in time")
	}

	t.Cleanup(func() {
		app.Stop()
		require.NoError(t, <-stopped)
	})

	return addrs
}

// send writes the pieces one by one with a short pause between them and reads the
// whole response until the server closes the connection.
func send(t *testing.T, addr net.Addr, pieces ...string) *stdhttp.Response {
	conn, err := net.Dial("tcp", addr.String())
	require.NoError(t, err)
	defer conn.Close()

	for _, piece := range pieces {
		_, err = conn.Write([]byte(piece))
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}

	resp, err := stdhttp.ReadResponse(bufio.NewReader(conn), nil)
	require.NoError(t, err)

	return resp
}

func readBody(t *testing.T, resp *stdhttp.Response) string {
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	return string(body)
}

func TestApp(t *testing.T) {
	store := todo.NewStore()
	addr := runApp(t, New("127.0.0.1:0"), store)[0]

	t.Run("empty list", func(t *testing.T) {
		resp := send(t, addr, "GET / HTTP/1.1\r\nHost: localhost\r\n\r\n")
		body := readBody(t, resp)
		require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
		require.Equal(t, "text/html", resp.Header.Get("Content-Type"))
		require.Equal(t, "close", resp.Header.Get("Connection"))
		require.Equal(t, "tinyserve", resp.Header.Get("Server"))
		require.EqualValues(t, len(body), resp.ContentLength)
		require.Contains(t, body, "No todos yet!")
	})

	t.Run("add with body in a separate read", func(t *testing.T) {
		resp := send(t, addr,
			"POST /add_todo HTTP/1.1\r\nContent-Length: 12\r\n\r\n",
			"key=Buy+milk",
		)
		body := readBody(t, resp)
		require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
		require.Contains(t, body, "Buy milk")
		require.Contains(t, body, "value='0'")
	})

	t.Run("request split byte by byte", func(t *testing.T) {
		request := "POST /add_todo HTTP/1.1\r\nContent-Length: 9\r\n\r\nkey=Bread"
		resp := send(t, addr, strings.Split(request, "")...)
		require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
		require.Contains(t, readBody(t, resp), "Bread")
	})

	t.Run("chunked body", func(t *testing.T) {
		resp := send(t, addr,
			"POST /add_todo HTTP/1.1\r\nTransfer-Encoding: chunked\r\n\r\n",
			"4\r\nkey=\r\n5\r\nEggs!\r\n0\r\n\r\n",
		)
		require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
		require.Contains(t, readBody(t, resp), "Eggs!")
	})

	t.Run("delete", func(t *testing.T) {
		resp := send(t, addr, "POST /delete_todo HTTP/1.1\r\nContent-Length: 4\r\n\r\nid=0")
		body := readBody(t, resp)
		require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
		require.NotContains(t, body, "Buy milk")
		require.Contains(t, body, "Bread")
		require.Equal(t, 2, store.Len())
	})

	t.Run("delete non-numeric", func(t *testing.T) {
		resp := send(t, addr, "POST /delete_todo HTTP/1.1\r\nContent-Length: 6\r\n\r\nid=abc")
		require.Equal(t, stdhttp.StatusInternalServerError, resp.StatusCode)
		require.Empty(t, readBody(t, resp))
		require.Equal(t, 2, store.Len())
	})

	t.Run("unknown path", func(t *testing.T) {
		resp := send(t, addr, "GET /nope HTTP/1.1\r\n\r\n")
		require.Equal(t, stdhttp.StatusNotFound, resp.StatusCode)
		require.Equal(t, 2, store.Len())
	})

	t.Run("unknown method", func(t *testing.T) {
		resp := send(t, addr, "PUT / HTTP/1.1\r\n\r\n")
		require.Equal(t, stdhttp.StatusBadRequest, resp.StatusCode)
	})

	t.Run("malformed request line", func(t *testing.T) {
		resp := send(t, addr, "GARBAGE\r\n\r\n")
		require.Equal(t, stdhttp.StatusBadRequest, resp.StatusCode)
	})

	t.Run("json", func(t *testing.T) {
		resp := send(t, addr, "GET /todos.json HTTP/1.1\r\n\r\n")
		require.Equal(t, "application/json", resp.Header.Get("Content-Type"))
		require.JSONEq(t, `[{"id":1,"text":"Bread"},{"id":2,"text":"Eggs!"}]`, readBody(t, resp))
	})

	t.Run("standard client", func(t *testing.T) {
		text := uniuri.New()
		resp, err := stdhttp.PostForm(
			fmt.Sprintf("http://%s/add_todo", addr),
			url.Values{"key": {text}},
		)
		require.NoError(t, err)
		require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
		require.Contains(t, readBody(t, resp), text)
	})
}

func TestAppConcurrentAdds(t *testing.T) {
	const n = 20

	store := todo.NewStore()
	addr := runApp(t, New("127.0.0.1:0"), store)[0]

	var wg sync.WaitGroup
	wg.Add(n)

	for range n {
		go func() {
			defer wg.Done()
			resp, err := stdhttp.Post(
				fmt.Sprintf("http://%s/add_todo", addr),
				"application/x-www-form-urlencoded",
				strings.NewReader("key=todo"),
			)
			if err == nil {
				_, _ = io.Copy(io.Discard, resp.Body)
				_ = resp.Body.Close()
			}
		}()
	}

	wg.Wait()
	require.Equal(t, n, store.Len())

	ids := make(map[int]struct{}, n)
	for _, item := range store.List() {
		ids[item.ID] = struct{}{}
	}

	require.Len(t, ids, n)
}

func TestAppTLS(t *testing.T) {
	addrs := runApp(t, New("127.0.0.1:0").AutoHTTPS("127.0.0.1:0"), todo.NewStore())
	require.Len(t, addrs, 2)

	client := &stdhttp.Client{
		Transport: &stdhttp.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
	}

	resp, err := client.Get(fmt.Sprintf("https://%s/", addrs[1]))
	require.NoError(t, err)
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
	require.Contains(t, readBody(t, resp), "No todos yet!")
}

func TestAppErrors(t *testing.T) {
	t.Run("missing certificate", func(t *testing.T) {
		app := New("127.0.0.1:0").HTTPS("127.0.0.1:0", "nope.crt", "nope.key")
		require.Error(t, app.Serve(nil))
	})

	t.Run("no certificates", func(t *testing.T) {
		app := New("127.0.0.1:0").TLS("127.0.0.1:0")
		require.ErrorIs(t, app.Serve(nil), ErrNoCertificates)
	})

	t.Run("address in use", func(t *testing.T) {
		l, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		defer l.Close()

		app := New(l.Addr().String()).Logger(nopLogger{})
		require.Error(t, app.Serve(nil))
	})
}
