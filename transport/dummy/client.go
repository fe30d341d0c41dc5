package dummy

import (
	"io"
	"net"

	"github.com/indigo-web/tinyserve/transport"
)

var _ transport.Client = new(Client)

// Client hands out the pieces it was initialised with one by one and journals everything
// written into it, which makes it suitable for most of the tests. Once all the pieces are
// consumed, either io.EOF is returned or the pieces are looped over again.
type Client struct {
	closed  bool
	loop    bool
	pointer int
	tmp     []byte
	written []byte
	data    [][]byte
	remote  net.Addr
}

func NewMockClient(data ...[]byte) *Client {
	return &Client{
		data:   data,
		remote: &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 51234},
	}
}

// NewNopClient returns a client with nothing to read.
func NewNopClient() *Client {
	return NewMockClient()
}

func (c *Client) Read() (data []byte, err error) {
	if c.closed {
		return nil, io.EOF
	}

	if len(c.tmp) > 0 {
		data, c.tmp = c.tmp, nil

		return data, nil
	}

	if c.pointer >= len(c.data) {
		if !c.loop || len(c.data) == 0 {
			return nil, io.EOF
		}

		c.pointer = 0
	}

	piece := c.data[c.pointer]
	c.pointer++

	return piece, nil
}

func (c *Client) Pushback(takeback []byte) {
	c.tmp = takeback
}

func (c *Client) Write(p []byte) (int, error) {
	c.written = append(c.written, p...)
	return len(p), nil
}

func (c *Client) Remote() net.Addr {
	return c.remote
}

func (c *Client) Close() error {
	c.closed = true
	return nil
}

// LoopReads makes the client start over once all the pieces are consumed.
func (c *Client) LoopReads() *Client {
	c.loop = true
	return c
}

// Written returns everything written into the client so far.
func (c *Client) Written() string {
	return string(c.written)
}

// Closed tells whether Close was called.
func (c *Client) Closed() bool {
	return c.closed
}
