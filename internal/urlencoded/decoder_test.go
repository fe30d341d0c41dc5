package urlencoded

import (
	"strings"
	"testing"

	"github.com/indigo-web/tinyserve/http/status"
	"github.com/stretchr/testify/require"
)

func testDecoder(t *testing.T, decoder func([]byte, []byte) ([]byte, []byte, error)) {
	t.Run("no escaping", func(t *testing.T) {
		decoded, _, err := decoder([]byte("/hello"), nil)
		require.NoError(t, err)
		require.Equal(t, "/hello", string(decoded))
	})

	t.Run("corners", func(t *testing.T) {
		decoded, _, err := decoder([]byte("%2fhello%2F"), nil)
		require.NoError(t, err)
		require.Equal(t, "/hello/", string(decoded))
	})

	t.Run("multiple consecutive", func(t *testing.T) {
		decoded, _, err := decoder([]byte("%2f%20hello"), nil)
		require.NoError(t, err)
		require.Equal(t, "/ hello", string(decoded))
	})

	t.Run("incomplete sequence", func(t *testing.T) {
		_, _, err := decoder([]byte("%2"), nil)
		require.EqualError(t, err, status.ErrURLDecoding.Error())
	})

	t.Run("invalid code", func(t *testing.T) {
		_, _, err := decoder([]byte("%2j"), nil)
		require.EqualError(t, err, status.ErrURLDecoding.Error())
	})

	t.Run("long slightly escaped", func(t *testing.T) {
		src := strings.Repeat("aaaaaaaaa%5f", 300)
		decoded, _, err := decoder([]byte(src), nil)
		require.NoError(t, err)
		require.Equal(t, strings.Repeat("aaaaaaaaa_", 300), string(decoded))
	})

	t.Run("appends to the buffer", func(t *testing.T) {
		buff := []byte("prev")
		decoded, buff, err := decoder([]byte("a%20b"), buff)
		require.NoError(t, err)
		require.Equal(t, "a b", string(decoded))
		require.Equal(t, "preva b", string(buff))
	})
}

func TestDecode(t *testing.T) {
	testDecoder(t, Decode)

	t.Run("plus is kept", func(t *testing.T) {
		decoded, _, err := Decode([]byte("a+b"), nil)
		require.NoError(t, err)
		require.Equal(t, "a+b", string(decoded))
	})
}

func TestExtendedDecode(t *testing.T) {
	testDecoder(t, ExtendedDecode)

	t.Run("plus as space", func(t *testing.T) {
		decoded, _, err := ExtendedDecode([]byte("Buy+milk%21"), nil)
		require.NoError(t, err)
		require.Equal(t, "Buy milk!", string(decoded))
	})
}
