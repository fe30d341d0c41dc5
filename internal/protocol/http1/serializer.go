package http1

import (
	"slices"
	"strconv"
	"strings"

	"github.com/indigo-web/tinyserve/config"
	"github.com/indigo-web/tinyserve/http"
	"github.com/indigo-web/tinyserve/http/method"
	"github.com/indigo-web/tinyserve/http/proto"
	"github.com/indigo-web/tinyserve/http/status"
	"github.com/indigo-web/tinyserve/kv"
	"github.com/indigo-web/tinyserve/transport"
	"github.com/indigo-web/utils/strcomp"
)

// serializer renders responses into the write buffer, flushing it whenever it overflows.
// Every response is length-delimited by Content-Length.
type serializer struct {
	cfg            *config.Config
	client         transport.Client
	buff           []byte
	defaultHeaders []kv.Pair
}

func newSerializer(cfg *config.Config, client transport.Client, buff []byte) *serializer {
	return &serializer{
		cfg:            cfg,
		client:         client,
		buff:           buff,
		defaultHeaders: sortedHeaders(cfg.Headers.Default),
	}
}

func (s *serializer) Write(protocol proto.Proto, request *http.Request, response *http.Response) error {
	fields := response.Expose()

	s.appendProtocol(protocol)
	s.appendStatus(fields)

	if len(fields.ContentType) > 0 {
		s.appendKnownHeader("Content-Type: ", fields.ContentType)
	}

	for _, header := range fields.Headers {
		s.appendHeader(header)
	}

	for _, header := range s.defaultHeaders {
		if !overridden(fields.Headers, header.Key) {
			s.appendHeader(header)
		}
	}

	s.appendContentLength(len(fields.Body))
	s.crlf()

	if request.Method != method.HEAD {
		if err := s.safeAppend(fields.Body); err != nil {
			return err
		}
	}

	return s.flush()
}

// safeAppend writes the data into the buffer, flushing it every time there's no more free
// space left, so the buffer never grows past the configured maximum.
func (s *serializer) safeAppend(data []byte) error {
	if free := s.cfg.NET.WriteBufferSize.Maximal - len(s.buff); len(data) <= free {
		s.buff = append(s.buff, data...)
		return nil
	}

	for len(data) > 0 {
		if len(s.buff) >= s.cfg.NET.WriteBufferSize.Maximal {
			if err := s.flush(); err != nil {
				return err
			}
		}

		n := min(s.cfg.NET.WriteBufferSize.Maximal-len(s.buff), len(data))
		s.buff = append(s.buff, data[:n]...)
		data = data[n:]
	}

	return nil
}

func (s *serializer) flush() (err error) {
	if len(s.buff) > 0 {
		_, err = s.client.Write(s.buff)
		s.buff = s.buff[:0]
	}

	return err
}

func (s *serializer) appendProtocol(protocol proto.Proto) {
	if protocol == proto.Unknown {
		// the request line might have been malformed before the protocol was reached
		protocol = proto.HTTP11
	}

	s.buff = append(s.buff, protocol.String()...)
	s.sp()
}

func (s *serializer) appendStatus(fields *http.Fields) {
	s.buff = append(s.buff, status.StringCode(fields.Code)...)
	s.sp()

	statusText := fields.Status
	if len(statusText) == 0 {
		statusText = status.Text(fields.Code)
	}

	s.buff = append(s.buff, statusText...)
	s.crlf()
}

// appendHeader writes a complete header field line.
func (s *serializer) appendHeader(header kv.Pair) {
	s.buff = append(s.buff, header.Key...)
	s.buff = append(s.buff, ':', ' ')
	s.buff = append(s.buff, header.Value...)
	s.crlf()
}

// appendKnownHeader differs from appendHeader only by the fact that the key is known to
// already have a colon and a space included.
func (s *serializer) appendKnownHeader(key, value string) {
	s.buff = append(s.buff, key...)
	s.buff = append(s.buff, value...)
	s.crlf()
}

func (s *serializer) appendContentLength(value int) {
	s.buff = append(s.buff, "Content-Length: "...)
	s.buff = strconv.AppendUint(s.buff, uint64(value), 10)
	s.crlf()
}

func (s *serializer) sp() {
	s.buff = append(s.buff, ' ')
}

const crlf = "\r\n"

func (s *serializer) crlf() {
	s.buff = append(s.buff, crlf...)
}

func overridden(headers []kv.Pair, key string) bool {
	for _, header := range headers {
		if strcomp.EqualFold(header.Key, key) {
			return true
		}
	}

	return false
}

// sortedHeaders turns the map of default headers into pairs, so they are rendered in
// a stable order.
func sortedHeaders(m map[string]string) []kv.Pair {
	pairs := make([]kv.Pair, 0, len(m))
	for key, value := range m {
		pairs = append(pairs, kv.Pair{Key: key, Value: value})
	}

	slices.SortFunc(pairs, func(a, b kv.Pair) int {
		return strings.Compare(a.Key, b.Key)
	})

	return pairs
}
