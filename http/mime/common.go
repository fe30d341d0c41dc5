package mime

import "strings"

type MIME = string

const (
	OctetStream    MIME = "application/octet-stream"
	Plain          MIME = "text/plain"
	HTML           MIME = "text/html"
	CSS            MIME = "text/css"
	JS             MIME = "text/javascript"
	JSON           MIME = "application/json"
	FormUrlencoded MIME = "application/x-www-form-urlencoded"
	SVG            MIME = "image/svg+xml"
	PNG            MIME = "image/png"
	ICO            MIME = "image/vnd.microsoft.icon"
)

// Extension maps a file extension (with the leading dot) to its MIME.
var Extension = map[string]MIME{
	".html": HTML,
	".htm":  HTML,
	".css":  CSS,
	".js":   JS,
	".json": JSON,
	".txt":  Plain,
	".svg":  SVG,
	".png":  PNG,
	".ico":  ICO,
}

// Complies returns whether the passed Content-Type value is compatible with the mime.
// Parameters are ignored and an empty value complies with anything.
func Complies(mime MIME, with string) bool {
	with, _, _ = strings.Cut(with, ";")
	with = strings.TrimSpace(with)
	return len(with) == 0 || strings.EqualFold(with, mime)
}
