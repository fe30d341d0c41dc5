// Package cli holds the flags and the lifecycle shared by the binaries.
package cli

import (
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/indigo-web/tinyserve"
	"github.com/indigo-web/tinyserve/router/inbuilt"
	"github.com/indigo-web/tinyserve/router/inbuilt/middleware"
)

var ErrIncompleteKeyPair = errors.New("both -tls-cert and -tls-key must be set")

type Flags struct {
	Addr     string
	TLSAddr  string
	TLSCert  string
	TLSKey   string
	AutoCert string
	Quiet    bool
}

// Register defines the common flags on the set.
func Register(fs *flag.FlagSet, addr, tlsAddr string) *Flags {
	f := new(Flags)
	fs.StringVar(&f.Addr, "addr", addr, "address to listen on")
	fs.StringVar(&f.TLSAddr, "tls-addr", tlsAddr, "address of the HTTPS listener")
	fs.StringVar(&f.TLSCert, "tls-cert", "", "certificate file of the HTTPS listener")
	fs.StringVar(&f.TLSKey, "tls-key", "", "private key file of the HTTPS listener")
	fs.StringVar(&f.AutoCert, "autocert", "", "obtain a certificate for the domain from Let's Encrypt")
	fs.BoolVar(&f.Quiet, "quiet", false, "don't log requests")

	return f
}

// App constructs the application with the listeners the flags ask for.
func (f *Flags) App() (*tinyserve.App, error) {
	app := tinyserve.New(f.Addr)

	switch {
	case len(f.TLSCert) > 0 || len(f.TLSKey) > 0:
		if len(f.TLSCert) == 0 || len(f.TLSKey) == 0 {
			return nil, ErrIncompleteKeyPair
		}

		app.HTTPS(f.TLSAddr, f.TLSCert, f.TLSKey)
	case len(f.AutoCert) > 0:
		app.AutoHTTPS(f.TLSAddr, f.AutoCert)
	}

	return app, nil
}

// Router returns the router with the middlewares every binary uses.
func (f *Flags) Router() *inbuilt.Router {
	r := inbuilt.New().Use(middleware.Recover())
	if !f.Quiet {
		r.Use(middleware.LogRequests())
	}

	return r
}

// Run serves until the process is interrupted.
func Run(app *tinyserve.App, r *inbuilt.Router) error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case s := <-sig:
			log.Printf("got %s, shutting down", s)
			app.Stop()
		case <-done:
		}
	}()

	return app.Serve(r)
}
