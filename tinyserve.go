package tinyserve

import (
	"crypto/tls"
	"errors"
	"log"
	"net"

	"github.com/indigo-web/tinyserve/config"
	"github.com/indigo-web/tinyserve/http/serve"
	"github.com/indigo-web/tinyserve/router"
	"github.com/indigo-web/tinyserve/router/inbuilt"
	"github.com/indigo-web/tinyserve/transport"
)

var (
	ErrBadCertificate = errors.New("one or more passed certificates are empty")
	ErrNoCertificates = errors.New("no certificates were passed")
)

type Logger interface {
	Printf(format string, v ...any)
}

// App binds a plain listener and optionally a number of TLS ones, and serves a single
// request per connection on every one of them.
type App struct {
	cfg        *config.Config
	logger     Logger
	listeners  []listener
	hooks      hooks
	supervisor transport.Supervisor
}

// New returns a new App instance listening on the address in plain text.
func New(addr string) *App {
	return &App{
		cfg:        config.Default(),
		logger:     log.Default(),
		listeners:  []listener{{addr: addr, transport: transport.NewTCP()}},
		supervisor: transport.NewSupervisor(),
	}
}

// Tune replaces default config.
func (a *App) Tune(cfg *config.Config) *App {
	a.cfg = cfg
	return a
}

// Logger replaces the logger used for the lifecycle messages.
func (a *App) Logger(logger Logger) *App {
	a.logger = logger
	return a
}

// NotifyOnStart calls the callback at the moment, when all the listeners are bound. The
// addresses are passed in the order the listeners were added, the plain one being the first.
func (a *App) NotifyOnStart(cb func(addrs []net.Addr)) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback at the moment, when all the listeners are down and every
// connection is served.
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// HTTPS adds a TLS listener serving the certificate loaded from the files.
func (a *App) HTTPS(addr, cert, key string) *App {
	c, err := tls.LoadX509KeyPair(cert, key)
	if err != nil {
		// there's no way to report it right now. It's reported once the app is started
		return a.addError(err)
	}

	return a.TLS(addr, c)
}

// TLS adds a TLS listener serving the certificates.
func (a *App) TLS(addr string, certs ...tls.Certificate) *App {
	switch {
	case len(certs) == 0:
		return a.addError(ErrNoCertificates)
	case !noEmptyCerts(certs):
		return a.addError(ErrBadCertificate)
	}

	a.listeners = append(a.listeners, listener{
		addr:      addr,
		transport: transport.NewTLS(certs),
	})

	return a
}

// AutoHTTPS adds a TLS listener with certificates obtained from Let's Encrypt for the
// domains. If no domains are passed or the only domain is localhost, a self-signed
// certificate is used instead.
func (a *App) AutoHTTPS(addr string, domains ...string) *App {
	if isLocalhost(domains) {
		cert, err := transport.SelfSigned()
		if err != nil {
			a.logger.Printf("WARNING: AutoHTTPS: can't generate self-signed certificate: %s. Disabling TLS", err)
			return a
		}

		return a.TLS(addr, cert)
	}

	a.listeners = append(a.listeners, listener{
		addr:      addr,
		transport: transport.NewAutoTLS(domains...),
	})

	return a
}

// Serve binds all the listeners and blocks until either Stop is called or any of them
// fails. If nil is passed instead of a router, empty inbuilt will be used.
func (a *App) Serve(r router.Router) error {
	if r == nil {
		r = inbuilt.New()
	}

	for _, l := range a.listeners {
		if l.err != nil {
			return l.err
		}
	}

	if err := r.OnStart(); err != nil {
		return err
	}

	for _, l := range a.listeners {
		if err := a.supervisor.Add(l.addr, l.transport, a.callback(r)); err != nil {
			return err
		}
	}

	addrs := a.supervisor.Addrs()
	for _, addr := range addrs {
		a.logger.Printf("listening on %s", addr)
	}

	if a.hooks.OnStart != nil {
		a.hooks.OnStart(addrs)
	}

	err := a.supervisor.Run(a.cfg.NET)
	if a.hooks.OnStop != nil {
		a.hooks.OnStop()
	}

	return err
}

// Stop stops accepting new connections and blocks until all the old ones are served.
func (a *App) Stop() {
	a.supervisor.Stop()
}

func (a *App) callback(r router.Router) func(net.Conn) {
	return func(conn net.Conn) {
		if !serve.HTTP1(a.cfg, conn, r) {
			a.logger.Printf("%s: connection aborted before the response was delivered", conn.RemoteAddr())
		}
	}
}

func (a *App) addError(err error) *App {
	a.listeners = append(a.listeners, listener{err: err})
	return a
}

type listener struct {
	addr      string
	transport transport.Transport
	err       error
}

type hooks struct {
	OnStart func([]net.Addr)
	OnStop  func()
}

func noEmptyCerts(certs []tls.Certificate) bool {
	for _, c := range certs {
		if c.Certificate == nil {
			return false
		}
	}

	return true
}

func isLocalhost(domains []string) bool {
	switch len(domains) {
	case 0:
		return true
	case 1:
		return domains[0] == "localhost" || net.ParseIP(domains[0]).IsLoopback()
	default:
		return false
	}
}
