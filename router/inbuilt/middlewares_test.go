package inbuilt

import (
	"testing"

	"github.com/indigo-web/tinyserve/http"
	"github.com/indigo-web/tinyserve/http/method"
	"github.com/stretchr/testify/require"
)

func TestMiddlewares(t *testing.T) {
	var calls []string

	tracer := func(name string) Middleware {
		return func(next Handler, request *http.Request) *http.Response {
			calls = append(calls, name)
			return next(request)
		}
	}

	handler := func(request *http.Request) *http.Response {
		calls = append(calls, "handler")
		return http.Respond(request)
	}

	r := New().
		Use(tracer("global1")).
		Get("/", handler, tracer("local1"), tracer("local2")).
		Use(tracer("global2"))
	require.NoError(t, r.OnStart())

	t.Run("route", func(t *testing.T) {
		calls = nil
		r.OnRequest(getRequest(method.GET, "/"))
		require.Equal(t, []string{"global1", "global2", "local1", "local2", "handler"}, calls)
	})

	t.Run("error handler", func(t *testing.T) {
		calls = nil
		r.OnRequest(getRequest(method.GET, "/nope"))
		require.Equal(t, []string{"global1", "global2"}, calls)
	})
}

func TestCompose(t *testing.T) {
	appendix := func(suffix string) Middleware {
		return func(next Handler, request *http.Request) *http.Response {
			resp := next(request)
			_, _ = resp.Write([]byte(suffix))
			return resp
		}
	}

	handler := compose(func(request *http.Request) *http.Response {
		return http.Respond(request)
	}, []Middleware{appendix("a"), appendix("b")})

	fields := handler(getRequest(method.GET, "/")).Expose()
	require.Equal(t, "ba", string(fields.Body))
}
