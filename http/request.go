package http

import (
	"net"

	"github.com/indigo-web/tinyserve/config"
	"github.com/indigo-web/tinyserve/http/method"
	"github.com/indigo-web/tinyserve/http/proto"
	"github.com/indigo-web/tinyserve/kv"
)

type (
	Headers = *kv.Storage
	Header  = kv.Pair
)

// Request represents an HTTP request. A single instance is allocated per connection and
// reset before it's reused.
type Request struct {
	// Method is an enum representing the request method. Tokens other than the known
	// methods are rejected by the parser, so Unknown is never seen by handlers.
	Method method.Method
	// Path is the percent-decoded path without the query.
	Path string
	// Query is the raw query string, if any, without the leading question mark.
	Query string
	// Protocol is either HTTP/1.0 or HTTP/1.1.
	Protocol proto.Proto
	// Headers holds non-normalized header pairs. Lookups are case-insensitive.
	Headers Headers
	// ContentLength is the value of Content-Length header, or 0 if none was presented.
	ContentLength int
	// ContentType is the value of Content-Type header.
	ContentType string
	// Chunked is set when the body is sent with the chunked transfer encoding.
	Chunked bool
	// Remote is the address of the peer.
	Remote net.Addr
	// Env carries values set by the server and the router for handlers and middlewares.
	Env Environment
	// Body provides access to the message body.
	Body     *Body
	response *Response
	cfg      *config.Config
}

func NewRequest(cfg *config.Config, response *Response, remote net.Addr, headers Headers) *Request {
	return &Request{
		Method:   method.Unknown,
		Protocol: proto.HTTP11,
		Headers:  headers,
		Remote:   remote,
		response: response,
		cfg:      cfg,
	}
}

// Respond returns the response builder.
//
// WARNING: the builder is shared along a handler and is cleared by every call.
func (r *Request) Respond() *Response {
	return r.response.Clear()
}

type Environment struct {
	// Error contains an error, if occurred.
	Error error
	// RequestID is a short random token identifying the request in logs.
	RequestID string
}
