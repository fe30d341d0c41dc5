package config

import "time"

type (
	HeadersNumber struct {
		Default, Maximal int
	}

	HeadersSpace struct {
		Default, Maximal int
	}

	URIRequestLineSize struct {
		Default, Maximal int
	}

	NETWriteBufferSize struct {
		Default, Maximal int
	}
)

type (
	URI struct {
		// RequestLineSize limits the buffer holding the method, path and protocol while they
		// are being collected across several reads.
		RequestLineSize URIRequestLineSize
	}

	Headers struct {
		// Number is responsible for the headers storage size.
		// Default value is an initial size of allocated storage.
		// Maximal value is maximum number of headers allowed to be presented.
		Number HeadersNumber
		// Space limits the amount of memory occupied by request header keys and values.
		Space HeadersSpace
		// Default headers are included into every response, unless explicitly overridden.
		Default map[string]string
	}

	Body struct {
		// MaxSize is the maximal size of a request body. Requests declaring or streaming
		// more than that are rejected with 413.
		MaxSize uint64
		// BufferPrealloc is the initial capacity of the buffer the whole body is collected into.
		BufferPrealloc int
		// MaxDiscard is how many bytes of a body left unread by the handler are drained
		// before the connection is closed. Data left unread on close makes the peer receive
		// a reset instead of the response.
		MaxDiscard uint64
	}

	NET struct {
		// ReadBufferSize is the most bytes a single read from the socket returns.
		ReadBufferSize int
		// ReadTimeout limits how long a connection may stay silent before it's closed.
		ReadTimeout time.Duration
		// AcceptLoopInterruptPeriod controls how often the Accept() call is interrupted to
		// check whether it's time to stop.
		AcceptLoopInterruptPeriod time.Duration
		// WriteBufferSize holds the serialized response before it's flushed.
		WriteBufferSize NETWriteBufferSize
	}
)

// Config holds limits and pre-allocation sizes used across the server.
//
// Always start from Default() and modify it, as zero values of most fields make
// no sense.
type Config struct {
	URI     URI
	Headers Headers
	Body    Body
	NET     NET
}

// Default returns default config.
func Default() *Config {
	return &Config{
		URI: URI{
			RequestLineSize: URIRequestLineSize{
				Default: 512,
				Maximal: 8 * 1024,
			},
		},
		Headers: Headers{
			Number: HeadersNumber{
				Default: 10,
				Maximal: 50,
			},
			Space: HeadersSpace{
				Default: 1 * 1024,
				Maximal: 16 * 1024,
			},
			Default: map[string]string{
				"Server":     "tinyserve",
				"Connection": "close",
			},
		},
		Body: Body{
			MaxSize:        1 * 1024 * 1024,
			BufferPrealloc: 1024,
			MaxDiscard:     1 * 1024 * 1024,
		},
		NET: NET{
			ReadBufferSize:            1024,
			ReadTimeout:               90 * time.Second,
			AcceptLoopInterruptPeriod: 5 * time.Second,
			WriteBufferSize: NETWriteBufferSize{
				Default: 2 * 1024,
				Maximal: 64 * 1024,
			},
		},
	}
}
