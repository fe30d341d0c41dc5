package status

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodes(t *testing.T) {
	for _, code := range KnownCodes {
		require.Equal(t, strconv.Itoa(int(code)), StringCode(code))
		require.NotEmpty(t, Text(code), "code %d has no reason phrase", code)
	}

	require.Empty(t, Text(299))
}

func TestHTTPError(t *testing.T) {
	err := NewError(InternalServerError, "bad todo id")
	require.EqualError(t, err, "bad todo id")

	code, ok := CodeOf(err)
	require.True(t, ok)
	require.Equal(t, InternalServerError, code)

	_, ok = CodeOf(strconv.ErrSyntax)
	require.False(t, ok)
}
