package todo

import (
	"github.com/indigo-web/tinyserve/http"
	"github.com/indigo-web/tinyserve/router/inbuilt"
)

type Options struct {
	// EscapeHTML escapes the todo texts when rendering the page. Off by default: the texts
	// are rendered exactly as they were submitted.
	EscapeHTML bool
}

// Handlers serve the todo list backed by the store.
type Handlers struct {
	store *Store
	opts  Options
}

func NewHandlers(store *Store, opts Options) *Handlers {
	return &Handlers{
		store: store,
		opts:  opts,
	}
}

// Register mounts the todo list routes onto the router.
func Register(r *inbuilt.Router, store *Store, opts Options) *Handlers {
	h := NewHandlers(store, opts)
	r.Get("/", h.Index).
		Get("/todos.json", h.JSON).
		Post("/add_todo", h.Add).
		Post("/delete_todo", h.Delete)

	return h
}

// Index renders the current list.
func (h *Handlers) Index(request *http.Request) *http.Response {
	return h.page(request)
}

// JSON returns the current list as a JSON array.
func (h *Handlers) JSON(request *http.Request) *http.Response {
	return http.JSON(request, h.store.List())
}

// Add appends the todo from the key=<text> form and renders the list.
func (h *Handlers) Add(request *http.Request) *http.Response {
	body, err := request.Body.Bytes()
	if err != nil {
		return http.Error(request, err)
	}

	h.store.Add(parseText(body))

	return h.page(request)
}

// Delete removes the todos with the id from the key=<id> form and renders the list. A
// missing id changes nothing.
func (h *Handlers) Delete(request *http.Request) *http.Response {
	body, err := request.Body.Bytes()
	if err != nil {
		return http.Error(request, err)
	}

	id, err := parseID(body)
	if err != nil {
		return http.Error(request, err)
	}

	h.store.Delete(id)

	return h.page(request)
}

func (h *Handlers) page(request *http.Request) *http.Response {
	return request.Respond().Bytes(AppendPage(nil, h.store.List(), h.opts.EscapeHTML))
}
