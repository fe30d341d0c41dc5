package todo

import (
	"bytes"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/indigo-web/tinyserve/http/status"
	"github.com/indigo-web/tinyserve/internal/urlencoded"
	"github.com/indigo-web/utils/uf"
)

var (
	ErrNoValue   = status.NewError(status.InternalServerError, "form value is missing")
	ErrInvalidID = status.NewError(status.InternalServerError, "todo id must be an integer")
)

// formValue returns everything after the first '=' of a key=value body. The key itself
// is not checked.
func formValue(body []byte) (value []byte, found bool) {
	body = bytes.TrimRight(body, "\x00")
	_, value, found = bytes.Cut(body, []byte{'='})

	return value, found
}

// parseText extracts the text of a new todo. A body without '=' is taken as a whole, and
// a value that isn't valid urlencoded data is kept as is.
func parseText(body []byte) string {
	value, found := formValue(body)
	if !found {
		value = bytes.TrimRight(body, "\x00")
	}

	if decoded, _, err := urlencoded.ExtendedDecode(value, nil); err == nil {
		value = decoded
	}

	if utf8.Valid(value) {
		return string(value)
	}

	return strings.ToValidUTF8(uf.B2S(value), string(utf8.RuneError))
}

// parseID extracts the id of a todo to delete: the second '='-separated field of the body.
func parseID(body []byte) (int, error) {
	value, found := formValue(body)
	if !found {
		return 0, ErrNoValue
	}

	value, _, _ = bytes.Cut(value, []byte{'='})

	id, err := strconv.Atoi(strings.TrimSpace(uf.B2S(value)))
	if err != nil {
		return 0, ErrInvalidID
	}

	return id, nil
}
