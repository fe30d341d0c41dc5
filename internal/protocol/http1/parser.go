package http1

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/indigo-web/tinyserve/config"
	"github.com/indigo-web/tinyserve/http"
	"github.com/indigo-web/tinyserve/http/method"
	"github.com/indigo-web/tinyserve/http/proto"
	"github.com/indigo-web/tinyserve/http/status"
	"github.com/indigo-web/tinyserve/internal/urlencoded"
	"github.com/indigo-web/utils/buffer"
	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/utils/uf"
)

type parserState uint8

const (
	eMethod parserState = iota + 1
	eRequestTarget
	eHeaderKey
	eHeaderValue
	eHeadersEndCR
)

// Parser is a stream-based parser of the request line and the header fields. It may be fed
// with any pieces of data: the state is kept among calls. As soon as the blank line
// terminating the headers is met, done is returned along with the data left unprocessed,
// which belongs to the body. The body itself is processed separately.
type Parser struct {
	state         parserState
	headersNumber int
	cfg           *config.Config
	request       *http.Request
	requestLine   *buffer.Buffer
	headers       *buffer.Buffer
	key           string
	pathBuff      []byte
}

func NewParser(cfg *config.Config, request *http.Request, requestLine, headers *buffer.Buffer) *Parser {
	return &Parser{
		state:       eMethod,
		cfg:         cfg,
		request:     request,
		requestLine: requestLine,
		headers:     headers,
	}
}

func (p *Parser) Parse(data []byte) (done bool, extra []byte, err error) {
	request := p.request
	requestLine := p.requestLine
	headers := p.headers

	switch p.state {
	case eMethod:
		goto method
	case eRequestTarget:
		goto requestTarget
	case eHeaderKey:
		goto headerKey
	case eHeaderValue:
		goto headerValue
	case eHeadersEndCR:
		goto headersEndCR
	default:
		panic(fmt.Sprintf("BUG: unexpected state: %v", p.state))
	}

method:
	{
		if requestLine.SegmentLength() == 0 {
			// tolerate empty lines preceding the request line (RFC 9112, 2.2)
			data = bytes.TrimLeft(data, "\r\n")
		}

		sp := bytes.IndexByte(data, ' ')
		if lf := bytes.IndexByte(data, '\n'); lf != -1 && (sp == -1 || lf < sp) {
			// the request line has ended before the method did
			return true, nil, status.ErrBadRequest
		}

		if sp == -1 {
			if !requestLine.Append(data) {
				return true, nil, status.ErrTooLongRequestLine
			}

			return false, nil, nil
		}

		if !requestLine.Append(data[:sp]) {
			return true, nil, status.ErrTooLongRequestLine
		}

		token := requestLine.Finish()
		if len(token) == 0 {
			return true, nil, status.ErrBadRequest
		}

		request.Method = method.Parse(uf.B2S(token))
		if request.Method == method.Unknown {
			return true, nil, status.ErrUnknownMethod
		}

		data = data[sp+1:]
		p.state = eRequestTarget
		goto requestTarget
	}

requestTarget:
	{
		lf := bytes.IndexByte(data, '\n')
		if lf == -1 {
			if !requestLine.Append(data) {
				return true, nil, status.ErrURITooLong
			}

			return false, nil, nil
		}

		if !requestLine.Append(data[:lf]) {
			return true, nil, status.ErrURITooLong
		}

		if err = p.parseRequestTarget(requestLine.Finish()); err != nil {
			return true, nil, err
		}

		data = data[lf+1:]
		p.state = eHeaderKey
		goto headerKey
	}

headerKey:
	{
		if len(data) == 0 {
			return false, nil, nil
		}

		if headers.SegmentLength() == 0 {
			switch data[0] {
			case '\n':
				p.reset()
				return true, data[1:], nil
			case '\r':
				data = data[1:]
				p.state = eHeadersEndCR
				goto headersEndCR
			}
		}

		colon := bytes.IndexByte(data, ':')
		if colon == -1 {
			if bytes.IndexByte(data, '\n') != -1 {
				return true, nil, status.ErrBadRequest
			}

			if !headers.Append(data) {
				return true, nil, status.ErrHeaderFieldsTooLarge
			}

			return false, nil, nil
		}

		if !headers.Append(data[:colon]) {
			return true, nil, status.ErrHeaderFieldsTooLarge
		}

		key := headers.Finish()
		if len(key) == 0 || bytes.ContainsAny(key, " \t\r\n") {
			return true, nil, status.ErrBadRequest
		}

		if p.headersNumber++; p.headersNumber > p.cfg.Headers.Number.Maximal {
			return true, nil, status.ErrTooManyHeaders
		}

		p.key = uf.B2S(key)
		data = data[colon+1:]
		p.state = eHeaderValue
		goto headerValue
	}

headerValue:
	{
		lf := bytes.IndexByte(data, '\n')
		if lf == -1 {
			if !headers.Append(data) {
				return true, nil, status.ErrHeaderFieldsTooLarge
			}

			return false, nil, nil
		}

		if !headers.Append(data[:lf]) {
			return true, nil, status.ErrHeaderFieldsTooLarge
		}

		value := strings.TrimSpace(uf.B2S(headers.Finish()))
		if err = p.addHeader(p.key, value); err != nil {
			return true, nil, err
		}

		data = data[lf+1:]
		p.state = eHeaderKey
		goto headerKey
	}

headersEndCR:
	if len(data) == 0 {
		return false, nil, nil
	}

	if data[0] != '\n' {
		return true, nil, status.ErrBadRequest
	}

	p.reset()
	return true, data[1:], nil
}

// parseRequestTarget processes the rest of the request line: the request target and
// the protocol, separated by a single space.
func (p *Parser) parseRequestTarget(line []byte) error {
	line = bytes.TrimSuffix(line, []byte{'\r'})

	sp := bytes.LastIndexByte(line, ' ')
	if sp == -1 {
		return status.ErrBadRequest
	}

	target, protoToken := line[:sp], line[sp+1:]

	p.request.Protocol = proto.FromBytes(protoToken)
	if p.request.Protocol == proto.Unknown {
		return status.ErrHTTPVersionNotSupported
	}

	if q := bytes.IndexByte(target, '?'); q != -1 {
		p.request.Query = uf.B2S(target[q+1:])
		target = target[:q]
	}

	if len(target) == 0 || target[0] != '/' || bytes.IndexByte(target, ' ') != -1 {
		return status.ErrBadRequest
	}

	path, buff, err := urlencoded.Decode(target, p.pathBuff[:0])
	if err != nil {
		return status.ErrURIDecoding
	}

	p.pathBuff = buff
	p.request.Path = string(path)

	return nil
}

// addHeader stores the header and extracts the values the server itself depends on.
func (p *Parser) addHeader(key, value string) error {
	request := p.request
	request.Headers.Add(key, value)

	switch {
	case strcomp.EqualFold(key, "content-length"):
		length, err := strconv.ParseUint(value, 10, 63)
		if err != nil {
			return status.ErrBadRequest
		}

		request.ContentLength = int(length)
		if length > p.cfg.Body.MaxSize {
			return status.ErrBodyTooLarge
		}
	case strcomp.EqualFold(key, "transfer-encoding"):
		for _, token := range strings.Split(value, ",") {
			if strcomp.EqualFold(strings.TrimSpace(token), "chunked") {
				request.Chunked = true
			}
		}
	case strcomp.EqualFold(key, "content-type"):
		request.ContentType = value
	}

	return nil
}

func (p *Parser) reset() {
	p.headersNumber = 0
	p.key = ""
	p.state = eMethod
}
