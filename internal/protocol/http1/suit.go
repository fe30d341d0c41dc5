package http1

import (
	"errors"
	"os"

	"github.com/indigo-web/tinyserve/config"
	"github.com/indigo-web/tinyserve/http"
	"github.com/indigo-web/tinyserve/http/status"
	"github.com/indigo-web/tinyserve/internal/construct"
	"github.com/indigo-web/tinyserve/internal/protocol"
	"github.com/indigo-web/tinyserve/router"
	"github.com/indigo-web/tinyserve/transport"
	"github.com/indigo-web/utils/buffer"
)

var _ protocol.Suit = new(Suit)

// Suit serves a single HTTP/1.x request over the connection: headers are parsed from as many
// reads as they take, the body is left to the handler, and exactly one response is written.
type Suit struct {
	*Parser
	serializer *serializer
	body       *Body
	router     router.Router
	client     transport.Client
	maxDiscard uint64
}

func New(
	cfg *config.Config,
	r router.Router,
	client transport.Client,
	request *http.Request,
	body *Body,
	requestLine, headers *buffer.Buffer,
	respBuff []byte,
) *Suit {
	return &Suit{
		Parser:     NewParser(cfg, request, requestLine, headers),
		serializer: newSerializer(cfg, client, respBuff),
		body:       body,
		router:     r,
		client:     client,
		maxDiscard: cfg.Body.MaxDiscard,
	}
}

// Initialize is the same constructor as just New, but consumes fewer arguments.
func Initialize(cfg *config.Config, r router.Router, client transport.Client, request *http.Request, body *Body) *Suit {
	requestLine, headers := construct.Buffers(cfg)
	respBuff := make([]byte, 0, cfg.NET.WriteBufferSize.Default)

	return New(cfg, r, client, request, body, requestLine, headers, respBuff)
}

// Serve reads and serves a single request. Returns false if no response could be delivered.
func (s *Suit) Serve() bool {
	req := s.request
	client := s.client
	started := false

	for {
		data, err := client.Read()
		if err != nil {
			if started && errors.Is(err, os.ErrDeadlineExceeded) {
				_ = s.write(req, s.router.OnError(req, status.ErrRequestTimeout))
			}

			// the peer has gone, or is too slow. Just notify the router in this case
			s.router.OnError(req, status.ErrCloseConnection)
			return false
		}

		started = started || len(data) > 0

		done, extra, err := s.Parse(data)
		if err != nil {
			delivered := s.write(req, s.router.OnError(req, err)) == nil
			if errors.Is(err, status.ErrBodyTooLarge) {
				s.body.Reset(req)
				s.discard()
			}

			return delivered
		}

		if !done {
			continue
		}

		client.Pushback(extra)
		s.body.Reset(req)

		if err = s.write(req, s.router.OnRequest(req)); err != nil {
			s.router.OnError(req, status.ErrCloseConnection)
			return false
		}

		s.discard()
		return true
	}
}

// discard drains the body the handler left unread, so the connection can be closed without
// losing the response. Bodies exceeding the limit are given up on.
func (s *Suit) discard() {
	_ = s.body.Discard(s.maxDiscard)
}

func (s *Suit) write(req *http.Request, resp *http.Response) error {
	if resp == nil {
		resp = http.Respond(req)
	}

	return s.serializer.Write(req.Protocol, req, resp)
}
