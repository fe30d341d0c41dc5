package inbuilt

import (
	"fmt"
	"slices"
	"strings"

	"github.com/indigo-web/tinyserve/http/method"
)

// registrar collects routes until the router is started.
type registrar struct {
	routes   map[string]*methodsMap
	prefixes []prefixRoute
	// used marks methods having at least a single handler registered, no matter the path.
	used [method.Count + 1]bool
}

func newRegistrar() *registrar {
	return &registrar{
		routes: make(map[string]*methodsMap),
	}
}

func (r *registrar) Add(path string, m method.Method, handler Handler) error {
	if err := validate(path, m); err != nil {
		return err
	}

	path = stripTrailingSlash(path)
	methods := r.routes[path]
	if methods == nil {
		methods = new(methodsMap)
		r.routes[path] = methods
	}

	if methods[m] != nil {
		return fmt.Errorf("route already registered: %s %s", m, path)
	}

	methods[m] = handler
	r.used[m] = true

	return nil
}

func (r *registrar) AddPrefix(prefix string, m method.Method, handler Handler) error {
	if err := validate(prefix, m); err != nil {
		return err
	}

	prefix = stripTrailingSlash(prefix)
	i := slices.IndexFunc(r.prefixes, func(route prefixRoute) bool {
		return route.prefix == prefix
	})
	if i == -1 {
		r.prefixes = append(r.prefixes, prefixRoute{prefix: prefix})
		i = len(r.prefixes) - 1
	}

	if r.prefixes[i].methods[m] != nil {
		return fmt.Errorf("prefix already registered: %s %s", m, prefix)
	}

	r.prefixes[i].methods[m] = handler
	r.used[m] = true

	return nil
}

// Apply wraps every registered handler.
func (r *registrar) Apply(f func(handler Handler) Handler) {
	wrap := func(methods *methodsMap) {
		for i, handler := range methods {
			if handler != nil {
				methods[i] = f(handler)
			}
		}
	}

	for _, methods := range r.routes {
		wrap(methods)
	}

	for i := range r.prefixes {
		wrap(&r.prefixes[i].methods)
	}
}

// Prepare orders the prefixes from the longest to the shortest, so the most specific one
// always wins.
func (r *registrar) Prepare() {
	slices.SortStableFunc(r.prefixes, func(a, b prefixRoute) int {
		return len(b.prefix) - len(a.prefix)
	})
}

// Lookup returns the handler for the path and the method, or nil.
func (r *registrar) Lookup(path string, m method.Method) Handler {
	path = stripTrailingSlash(path)

	if methods := r.routes[path]; methods != nil && methods[m] != nil {
		return methods[m]
	}

	for _, route := range r.prefixes {
		if route.methods[m] != nil && matchPrefix(route.prefix, path) {
			return route.methods[m]
		}
	}

	return nil
}

// Used tells whether the method has any handler at all.
func (r *registrar) Used(m method.Method) bool {
	return int(m) < len(r.used) && r.used[m]
}

func validate(path string, m method.Method) error {
	if m == method.Unknown || int(m) > method.Count {
		return fmt.Errorf("cannot register a route for an unknown method")
	}

	if len(path) == 0 || path[0] != '/' {
		return fmt.Errorf("path must begin with a slash: %q", path)
	}

	return nil
}

// matchPrefix matches the path segment-wise: "/files" matches "/files" and "/files/a",
// but not "/filesystem".
func matchPrefix(prefix, path string) bool {
	if prefix == "/" {
		return true
	}

	rest, found := strings.CutPrefix(path, prefix)

	return found && (len(rest) == 0 || rest[0] == '/')
}

func stripTrailingSlash(path string) string {
	if len(path) > 1 && path[len(path)-1] == '/' {
		return path[:len(path)-1]
	}

	return path
}
