package serve

import (
	"net"

	"github.com/indigo-web/chunkedbody"
	"github.com/indigo-web/tinyserve/config"
	"github.com/indigo-web/tinyserve/http"
	"github.com/indigo-web/tinyserve/internal/construct"
	"github.com/indigo-web/tinyserve/internal/protocol"
	"github.com/indigo-web/tinyserve/internal/protocol/http1"
	"github.com/indigo-web/tinyserve/router"
)

// HTTP1 serves a single request over the connection. The connection isn't closed here.
// Returns false if no response could be delivered.
func HTTP1(cfg *config.Config, conn net.Conn, r router.Router) bool {
	client := construct.Client(cfg.NET, conn)
	request := construct.Request(cfg, client)
	body := http1.NewBody(client, chunkedbody.NewParser(chunkedbody.DefaultSettings()), cfg.Body)
	request.Body = http.NewBody(request, body, cfg)
	var suit protocol.Suit = http1.Initialize(cfg, r, client, request, body)

	return suit.Serve()
}
