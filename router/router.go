package router

import "github.com/indigo-web/tinyserve/http"

// Router decides what to respond with.
type Router interface {
	// OnStart is called once before the server starts accepting connections.
	OnStart() error
	// OnRequest is called on every request whose headers were successfully parsed.
	OnRequest(request *http.Request) *http.Response
	// OnError is called on every error preventing the request from being served. If the
	// error is status.ErrCloseConnection, the returned response is ignored.
	OnError(request *http.Request, err error) *http.Response
}
