package construct

import (
	"net"

	"github.com/indigo-web/tinyserve/config"
	"github.com/indigo-web/tinyserve/http"
	"github.com/indigo-web/tinyserve/kv"
	"github.com/indigo-web/tinyserve/transport"
	"github.com/indigo-web/utils/buffer"
)

func Request(cfg *config.Config, client transport.Client) *http.Request {
	headers := kv.NewPrealloc(cfg.Headers.Number.Default)

	return http.NewRequest(cfg, http.NewResponse(), client.Remote(), headers)
}

func Client(cfg config.NET, conn net.Conn) transport.Client {
	readBuff := make([]byte, cfg.ReadBufferSize)

	return transport.NewClient(conn, cfg.ReadTimeout, readBuff)
}

func Buffers(cfg *config.Config) (requestLine, headers *buffer.Buffer) {
	return buffer.New(cfg.URI.RequestLineSize.Default, cfg.URI.RequestLineSize.Maximal),
		buffer.New(cfg.Headers.Space.Default, cfg.Headers.Space.Maximal)
}
