package http

import (
	"io"

	"github.com/indigo-web/tinyserve/config"
	"github.com/indigo-web/tinyserve/http/mime"
	"github.com/indigo-web/tinyserve/http/status"
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
)

// Retriever hands out the body piece by piece. io.EOF marks the last piece, which may still
// carry data.
type Retriever interface {
	Retrieve() ([]byte, error)
}

type Body struct {
	Retriever
	request *Request
	cfg     *config.Config
	buff    []byte
	pending []byte
	error   error
}

func NewBody(r *Request, impl Retriever, cfg *config.Config) *Body {
	return &Body{
		Retriever: impl,
		request:   r,
		cfg:       cfg,
	}
}

// Bytes returns the whole body at once. The result is cached, so consequent calls are cheap.
func (b *Body) Bytes() ([]byte, error) {
	if b.error == io.EOF {
		return b.buff, nil
	}

	if b.error != nil {
		return nil, b.error
	}

	if b.buff == nil {
		b.buff = make([]byte, 0, b.cfg.Body.BufferPrealloc)
	}

	b.buff = append(b.buff, b.pending...)
	b.pending = nil

	for {
		var data []byte
		data, b.error = b.Retrieve()
		b.buff = append(b.buff, data...)
		switch b.error {
		case nil:
		case io.EOF:
			return b.buff, nil
		default:
			return nil, b.error
		}
	}
}

// String returns the whole body at once as a string.
func (b *Body) String() (string, error) {
	data, err := b.Bytes()
	return uf.B2S(data), err
}

// Read implements the io.Reader interface.
func (b *Body) Read(into []byte) (n int, err error) {
	if len(b.pending) == 0 && b.error == nil {
		b.pending, b.error = b.Retrieve()
	}

	n = copy(into, b.pending)
	b.pending = b.pending[n:]

	if len(b.pending) == 0 && b.error != nil {
		err = b.error
	}

	return n, err
}

// JSON decodes the body into the model. Requests with Content-Type incompatible with
// mime.JSON are rejected with status.ErrUnsupportedMediaType.
func (b *Body) JSON(model any) error {
	if !mime.Complies(mime.JSON, b.request.ContentType) {
		return status.ErrUnsupportedMediaType
	}

	data, err := b.Bytes()
	if err != nil {
		return err
	}

	iterator := json.ConfigDefault.BorrowIterator(data)
	iterator.ReadVal(model)
	err = iterator.Error
	json.ConfigDefault.ReturnIterator(iterator)

	return err
}

// Discard reads the rest of the body, dropping the data.
func (b *Body) Discard() error {
	for b.error == nil {
		_, b.error = b.Retrieve()
	}

	if b.error == io.EOF {
		return nil
	}

	return b.error
}
