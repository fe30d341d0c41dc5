// Package site serves the task manager: a single static page and a stub for file uploads.
package site

import (
	"log"

	"github.com/indigo-web/tinyserve/http"
	"github.com/indigo-web/tinyserve/http/method"
	"github.com/indigo-web/tinyserve/http/status"
	"github.com/indigo-web/tinyserve/router/inbuilt"
)

const DefaultPage = "src/task-manager/index.html"

type Logger interface {
	Printf(format string, v ...any)
}

type Options struct {
	// Page is the path to the file served on every page request. The file is read on every
	// request, so it may be edited while the server is running.
	Page string
	// Logger receives the bodies of uploads. Defaults to log.Default().
	Logger Logger
}

// Register mounts the routes: the page on GET / and everything under /task-manager, and
// the uploads stub on POST /files and everything under it.
func Register(r *inbuilt.Router, opts Options) {
	if len(opts.Page) == 0 {
		opts.Page = DefaultPage
	}

	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	page := Page(opts.Page)
	r.Get("/", page).
		Prefix(method.GET, "/task-manager", page).
		Prefix(method.POST, "/files", Upload(opts.Logger))
}

// Page serves the file. A missing file results in 404 Not Found.
func Page(path string) inbuilt.Handler {
	return func(request *http.Request) *http.Response {
		return http.File(request, path)
	}
}

// Upload logs the body and always responds with 404 Not Found, as there's no storage for
// uploads yet.
func Upload(logger Logger) inbuilt.Handler {
	return func(request *http.Request) *http.Response {
		body, err := request.Body.String()
		if err != nil {
			return http.Error(request, err)
		}

		logger.Printf("upload to %s (%d bytes): %s", request.Path, len(body), body)

		return http.Error(request, status.ErrNotFound)
	}
}
