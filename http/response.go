package http

import (
	"os"
	"path/filepath"

	"github.com/indigo-web/tinyserve/http/mime"
	"github.com/indigo-web/tinyserve/http/status"
	"github.com/indigo-web/tinyserve/kv"
	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
)

const (
	preallocRespHeaders = 4
	defaultFileMIME     = mime.OctetStream
)

// Fields are the values collected by the Response builder.
type Fields struct {
	Code        status.Code
	Status      status.Status
	ContentType mime.MIME
	Headers     []kv.Pair
	Body        []byte
}

func (f *Fields) Clear() {
	f.Code = status.OK
	f.Status = ""
	f.ContentType = mime.HTML
	f.Headers = f.Headers[:0]
	f.Body = nil
}

type Response struct {
	fields *Fields
}

// NewResponse returns a new instance of the Response object with status code set to 200 OK,
// pre-allocated space for response headers and text/html content-type.
func NewResponse() *Response {
	return &Response{
		&Fields{
			Code:        status.OK,
			Headers:     make([]kv.Pair, 0, preallocRespHeaders),
			ContentType: mime.HTML,
		},
	}
}

// Code sets the response code.
func (r *Response) Code(code status.Code) *Response {
	r.fields.Code = code
	return r
}

// Status sets a custom reason phrase. If none is set, the standard one for the code is used.
func (r *Response) Status(status status.Status) *Response {
	r.fields.Status = status
	return r
}

// ContentType sets a custom Content-Type header value.
func (r *Response) ContentType(value mime.MIME) *Response {
	r.fields.ContentType = value
	return r
}

// Header adds the values under the key. Content-Type is redirected to ContentType, and
// Content-Length is ignored, as it's always computed by the serializer.
func (r *Response) Header(key string, values ...string) *Response {
	switch {
	case strcomp.EqualFold(key, "content-type"):
		return r.ContentType(values[0])
	case strcomp.EqualFold(key, "content-length"):
		return r
	}

	for _, value := range values {
		r.fields.Headers = append(r.fields.Headers, kv.Pair{
			Key:   key,
			Value: value,
		})
	}

	return r
}

// String sets the response's body to the passed string.
func (r *Response) String(body string) *Response {
	return r.Bytes(uf.S2B(body))
}

// Bytes sets the response's body to passed slice WITHOUT COPYING.
func (r *Response) Bytes(body []byte) *Response {
	r.fields.Body = body
	return r
}

// Write implements io.Writer by appending the data to the body.
func (r *Response) Write(b []byte) (n int, err error) {
	r.fields.Body = append(r.fields.Body, b...)
	return len(b), nil
}

// TryFile reads the whole file into the body. The Content-Type is chosen by the file extension.
func (r *Response) TryFile(path string) (*Response, error) {
	stat, err := os.Stat(path)
	if err != nil || stat.IsDir() {
		return r, status.ErrNotFound
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return r, status.ErrNotFound
	}

	contentType, found := mime.Extension[filepath.Ext(path)]
	if !found {
		contentType = defaultFileMIME
	}

	return r.ContentType(contentType).Bytes(content), nil
}

// File does the same as TryFile does, except the error is implicitly passed to Error.
func (r *Response) File(path string) *Response {
	resp, err := r.TryFile(path)
	if err != nil {
		return r.Error(err)
	}

	return resp
}

// TryJSON serializes the model into the body.
func (r *Response) TryJSON(model any) (*Response, error) {
	r.fields.Body = nil
	stream := json.ConfigDefault.BorrowStream(r)
	stream.WriteVal(model)
	err := stream.Flush()
	json.ConfigDefault.ReturnStream(stream)

	return r.ContentType(mime.JSON), err
}

// JSON does the same as TryJSON does, except the error is implicitly passed to Error.
func (r *Response) JSON(model any) *Response {
	resp, err := r.TryJSON(model)
	if err != nil {
		return r.Error(err)
	}

	return resp
}

// Error sets the code of the passed status.HTTPError, discarding the body. Other errors
// result in 500 Internal Server Error. A nil error changes nothing.
func (r *Response) Error(err error) *Response {
	if err == nil {
		return r
	}

	code, ok := status.CodeOf(err)
	if !ok {
		code = status.InternalServerError
	}

	return r.
		Code(code).
		Bytes(nil)
}

// Expose returns the values filled by the builder.
func (r *Response) Expose() *Fields {
	return r.fields
}

// Clear discards everything done with the builder before.
func (r *Response) Clear() *Response {
	r.fields.Clear()
	return r
}

// Respond is a shorthand for request.Respond(). May be used as a dummy handler.
func Respond(request *Request) *Response {
	return request.Respond()
}

// Code is a shorthand for request.Respond().Code(...)
func Code(request *Request, code status.Code) *Response {
	return request.Respond().Code(code)
}

// String is a shorthand for request.Respond().String(...)
func String(request *Request, str string) *Response {
	return request.Respond().String(str)
}

// File is a shorthand for request.Respond().File(...)
func File(request *Request, path string) *Response {
	return request.Respond().File(path)
}

// JSON is a shorthand for request.Respond().JSON(...)
func JSON(request *Request, model any) *Response {
	return request.Respond().JSON(model)
}

// Error is a shorthand for request.Respond().Error(...)
func Error(request *Request, err error) *Response {
	return request.Respond().Error(err)
}
