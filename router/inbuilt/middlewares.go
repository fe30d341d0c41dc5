package inbuilt

import "github.com/indigo-web/tinyserve/http"

// Use adds middlewares applied to every handler, including error handlers. They wrap
// the handlers once the router is started, so the order of calls doesn't matter.
func (r *Router) Use(middlewares ...Middleware) *Router {
	r.middlewares = append(r.middlewares, middlewares...)
	return r
}

// compose makes a single handler out of the chain. The first middleware is the outermost.
func compose(handler Handler, middlewares []Middleware) Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		mw, next := middlewares[i], handler
		handler = func(request *http.Request) *http.Response {
			return mw(next, request)
		}
	}

	return handler
}
