package cli

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) *Flags {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := Register(fs, "127.0.0.1:4222", "127.0.0.1:4432")
	require.NoError(t, fs.Parse(args))

	return f
}

func TestFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		f := parse(t)
		require.Equal(t, "127.0.0.1:4222", f.Addr)
		require.Equal(t, "127.0.0.1:4432", f.TLSAddr)
		require.False(t, f.Quiet)

		app, err := f.App()
		require.NoError(t, err)
		require.NotNil(t, app)
	})

	t.Run("overrides", func(t *testing.T) {
		f := parse(t, "-addr", "0.0.0.0:80", "-quiet", "-autocert", "example.com")
		require.Equal(t, "0.0.0.0:80", f.Addr)
		require.Equal(t, "example.com", f.AutoCert)
		require.True(t, f.Quiet)
	})

	t.Run("incomplete key pair", func(t *testing.T) {
		_, err := parse(t, "-tls-cert", "server.crt").App()
		require.ErrorIs(t, err, ErrIncompleteKeyPair)
	})

	t.Run("router", func(t *testing.T) {
		require.NotNil(t, parse(t).Router())
		require.NotNil(t, parse(t, "-quiet").Router())
	})
}
