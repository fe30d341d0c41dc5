package http

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/indigo-web/tinyserve/http/mime"
	"github.com/indigo-web/tinyserve/http/status"
	"github.com/stretchr/testify/require"
)

func TestResponse(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		fields := NewResponse().Expose()
		require.Equal(t, status.OK, fields.Code)
		require.Equal(t, mime.HTML, fields.ContentType)
		require.Empty(t, fields.Headers)
		require.Empty(t, fields.Body)
	})

	t.Run("headers", func(t *testing.T) {
		fields := NewResponse().
			Header("Hello", "world", "nether").
			Header("content-type", mime.Plain).
			Header("Content-Length", "100").
			Expose()

		require.Equal(t, mime.Plain, fields.ContentType)
		require.Len(t, fields.Headers, 2)
		require.Equal(t, "world", fields.Headers[0].Value)
		require.Equal(t, "nether", fields.Headers[1].Value)
	})

	t.Run("write", func(t *testing.T) {
		response := NewResponse().String("Hello")
		_, err := response.Write([]byte(", world!"))
		require.NoError(t, err)
		require.Equal(t, "Hello, world!", string(response.Expose().Body))
	})

	t.Run("JSON", func(t *testing.T) {
		response := NewResponse().String("garbage").JSON([]int{1, 2, 3})
		require.Equal(t, "[1,2,3]", string(response.Expose().Body))
		require.Equal(t, mime.JSON, response.Expose().ContentType)
	})

	t.Run("JSON of an unsupported value", func(t *testing.T) {
		response := NewResponse().JSON(make(chan int))
		require.Equal(t, status.InternalServerError, response.Expose().Code)
		require.Empty(t, response.Expose().Body)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "index.html")
		require.NoError(t, os.WriteFile(path, []byte("<h1>hi</h1>"), 0o644))

		fields := NewResponse().File(path).Expose()
		require.Equal(t, status.OK, fields.Code)
		require.Equal(t, mime.HTML, fields.ContentType)
		require.Equal(t, "<h1>hi</h1>", string(fields.Body))
	})

	t.Run("file with unknown extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "blob.xyz")
		require.NoError(t, os.WriteFile(path, []byte{1, 2, 3}, 0o644))

		fields := NewResponse().File(path).Expose()
		require.Equal(t, mime.OctetStream, fields.ContentType)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewResponse().TryFile(filepath.Join(t.TempDir(), "nope.html"))
		require.ErrorIs(t, err, status.ErrNotFound)

		fields := NewResponse().File(t.TempDir()).Expose()
		require.Equal(t, status.NotFound, fields.Code)
	})

	t.Run("error", func(t *testing.T) {
		fields := NewResponse().String("body").Error(status.ErrBodyTooLarge).Expose()
		require.Equal(t, status.RequestEntityTooLarge, fields.Code)
		require.Empty(t, fields.Body)

		fields = NewResponse().Error(os.ErrPermission).Expose()
		require.Equal(t, status.InternalServerError, fields.Code)

		fields = NewResponse().Code(status.Created).Error(nil).Expose()
		require.Equal(t, status.Created, fields.Code)
	})
}
