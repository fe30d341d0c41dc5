package http1

import (
	"io"

	"github.com/indigo-web/chunkedbody"
	"github.com/indigo-web/tinyserve/config"
	"github.com/indigo-web/tinyserve/http"
	"github.com/indigo-web/tinyserve/http/status"
	"github.com/indigo-web/tinyserve/transport"
)

// Body retrieves the message body either as exactly Content-Length bytes, or by decoding
// the chunked transfer encoding. Data read past the body is pushed back to the client.
type Body struct {
	client    transport.Client
	parser    *chunkedbody.Parser
	maxSize   uint64
	chunked   bool
	bytesLeft uint64
	received  uint64
	done      bool
}

func NewBody(client transport.Client, parser *chunkedbody.Parser, cfg config.Body) *Body {
	return &Body{
		client:  client,
		parser:  parser,
		maxSize: cfg.MaxSize,
	}
}

// Reset prepares the body for the request, whose headers were just parsed.
func (b *Body) Reset(request *http.Request) {
	b.chunked = request.Chunked
	b.bytesLeft = uint64(request.ContentLength)
	b.received = 0
	b.done = false
}

func (b *Body) Retrieve() (data []byte, err error) {
	if b.done {
		return nil, io.EOF
	}

	if b.chunked {
		data, err = b.readChunked()
	} else {
		data, err = b.readPlain()
	}

	b.done = err == io.EOF

	return data, err
}

// Discard reads out the rest of the body, but no more than limit bytes.
func (b *Body) Discard(limit uint64) error {
	var discarded uint64

	for {
		data, err := b.Retrieve()
		switch err {
		case nil:
		case io.EOF:
			return nil
		default:
			return err
		}

		if discarded += uint64(len(data)); discarded > limit {
			return status.ErrBodyTooLarge
		}
	}
}

func (b *Body) readPlain() (body []byte, err error) {
	if b.bytesLeft == 0 {
		return nil, io.EOF
	}

	data, err := b.client.Read()
	if err != nil {
		return nil, noEOF(err)
	}

	if uint64(len(data)) >= b.bytesLeft {
		body, data = data[:b.bytesLeft], data[b.bytesLeft:]
		b.client.Pushback(data)
		b.bytesLeft = 0

		return body, io.EOF
	}

	b.bytesLeft -= uint64(len(data))

	return data, nil
}

func (b *Body) readChunked() (body []byte, err error) {
	data, err := b.client.Read()
	if err != nil {
		return nil, noEOF(err)
	}

	chunk, extra, err := b.parser.Parse(data, false)
	switch err {
	case nil, io.EOF:
	default:
		return nil, status.ErrBadChunk
	}

	if b.received += uint64(len(chunk)); b.received > b.maxSize {
		return nil, status.ErrBodyTooLarge
	}

	b.client.Pushback(extra)

	return chunk, err
}

// noEOF prevents the connection being closed by the peer from being mistaken for
// the end of the body.
func noEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}

	return err
}
