package http

import (
	"io"
	"testing"

	"github.com/indigo-web/tinyserve/config"
	"github.com/indigo-web/tinyserve/http/status"
	"github.com/indigo-web/tinyserve/kv"
	"github.com/stretchr/testify/require"
)

// pieces hands out the data piece by piece, marking the last one with io.EOF.
type pieces struct {
	data [][]byte
}

func (p *pieces) Retrieve() ([]byte, error) {
	if len(p.data) == 0 {
		return nil, io.EOF
	}

	piece := p.data[0]
	p.data = p.data[1:]
	if len(p.data) == 0 {
		return piece, io.EOF
	}

	return piece, nil
}

func newRequest(body ...string) *Request {
	cfg := config.Default()
	request := NewRequest(cfg, NewResponse(), nil, kv.New())
	data := make([][]byte, len(body))
	for i, b := range body {
		data[i] = []byte(b)
	}

	request.Body = NewBody(request, &pieces{data: data}, cfg)

	return request
}

func TestRequest(t *testing.T) {
	t.Run("respond clears the builder", func(t *testing.T) {
		request := newRequest()
		request.Respond().Code(status.NotFound).Header("A", "b").String("hello")

		fields := request.Respond().Expose()
		require.Equal(t, status.OK, fields.Code)
		require.Empty(t, fields.Headers)
		require.Empty(t, fields.Body)
	})

}
