package inbuilt

import (
	"github.com/indigo-web/tinyserve/http/method"
	"github.com/indigo-web/tinyserve/http/status"
)

// AllErrors is used to be passed into Router.RouteError, indicating by that, that the
// handler must handle ALL errors (if concrete error's handler won't override it).
const AllErrors = status.Code(0)

// Route is a base method for registering handlers. The path is matched exactly, except a
// trailing slash, which is ignored.
func (r *Router) Route(m method.Method, path string, handler Handler, middlewares ...Middleware) *Router {
	if err := r.registrar.Add(path, m, compose(handler, middlewares)); err != nil {
		panic(err)
	}

	return r
}

// Prefix registers the handler for the path and every path below it, segment-wise. Exact
// routes always take precedence over the prefixes.
func (r *Router) Prefix(m method.Method, prefix string, handler Handler, middlewares ...Middleware) *Router {
	if err := r.registrar.AddPrefix(prefix, m, compose(handler, middlewares)); err != nil {
		panic(err)
	}

	return r
}

// Get is a shortcut for registering GET-requests.
func (r *Router) Get(path string, handler Handler, middlewares ...Middleware) *Router {
	return r.Route(method.GET, path, handler, middlewares...)
}

// Post is a shortcut for registering POST-requests.
func (r *Router) Post(path string, handler Handler, middlewares ...Middleware) *Router {
	return r.Route(method.POST, path, handler, middlewares...)
}

// RouteError adds an error handler for the corresponding HTTP error codes. The handler
// finds the error itself in request.Env.Error.
func (r *Router) RouteError(handler Handler, codes ...status.Code) *Router {
	for _, code := range codes {
		r.errHandlers[code] = handler
	}

	return r
}
