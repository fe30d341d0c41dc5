package inbuilt

import (
	"github.com/indigo-web/tinyserve/http"
	"github.com/indigo-web/tinyserve/http/status"
)

// Router is a built-in implementation of router.Router. Routes are matched by exact
// method and exact path, or by a path prefix. Requests with methods nothing is registered
// for are rejected with 400 Bad Request, and everything else unmatched with 404 Not Found.
type Router struct {
	registrar   *registrar
	middlewares []Middleware
	errHandlers errorHandlers
}

// New constructs a new instance of the inbuilt router.
func New() *Router {
	return &Router{
		registrar:   newRegistrar(),
		errHandlers: newErrorHandlers(),
	}
}

// OnStart applies the middlewares. No routes may be added after it's called.
func (r *Router) OnStart() error {
	r.registrar.Prepare()
	r.registrar.Apply(func(handler Handler) Handler {
		return compose(handler, r.middlewares)
	})

	for code, handler := range r.errHandlers {
		r.errHandlers[code] = compose(handler, r.middlewares)
	}

	return nil
}

// OnRequest routes the request to the matching handler.
func (r *Router) OnRequest(request *http.Request) *http.Response {
	if !r.registrar.Used(request.Method) {
		return r.OnError(request, status.ErrUnknownMethod)
	}

	handler := r.registrar.Lookup(request.Path, request.Method)
	if handler == nil {
		return r.OnError(request, status.ErrNotFound)
	}

	return handler(request)
}

// OnError calls the error handler registered for the error's code, falling back to the
// universal one.
func (r *Router) OnError(request *http.Request, err error) *http.Response {
	request.Env.Error = err

	code, ok := status.CodeOf(err)
	if !ok {
		code = status.InternalServerError
	}

	handler, found := r.errHandlers[code]
	if !found {
		handler = r.errHandlers[AllErrors]
	}

	return handler(request)
}
