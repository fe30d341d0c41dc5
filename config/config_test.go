package config

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Run("no zero fields", func(t *testing.T) {
		cfg := Default()
		require.Empty(t, zeroFields(reflect.ValueOf(*cfg), "Config"))
	})

	t.Run("limits are consistent", func(t *testing.T) {
		cfg := Default()
		require.LessOrEqual(t, cfg.URI.RequestLineSize.Default, cfg.URI.RequestLineSize.Maximal)
		require.LessOrEqual(t, cfg.Headers.Number.Default, cfg.Headers.Number.Maximal)
		require.LessOrEqual(t, cfg.Headers.Space.Default, cfg.Headers.Space.Maximal)
		require.LessOrEqual(t, cfg.NET.WriteBufferSize.Default, cfg.NET.WriteBufferSize.Maximal)
	})

	t.Run("connections are closed", func(t *testing.T) {
		require.Equal(t, "close", Default().Headers.Default["Connection"])
	})

	t.Run("instances are independent", func(t *testing.T) {
		a, b := Default(), Default()
		a.Headers.Default["Server"] = "custom"
		require.Equal(t, "tinyserve", b.Headers.Default["Server"])
	})
}

// zeroFields walks the struct recursively and collects the names of zero-valued fields.
func zeroFields(v reflect.Value, name string) (fields []string) {
	if v.Kind() == reflect.Struct {
		for i := range v.NumField() {
			fields = append(fields, zeroFields(v.Field(i), name+"."+v.Type().Field(i).Name)...)
		}

		return fields
	}

	if v.IsZero() {
		return []string{name}
	}

	return nil
}
