package middleware

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dchest/uniuri"
	"github.com/indigo-web/tinyserve/http"
	"github.com/indigo-web/tinyserve/http/status"
	"github.com/indigo-web/tinyserve/router/inbuilt"
)

const requestIDLength = 8

type Logger interface {
	Printf(fmt string, v ...any)
}

// LogRequests writes a line per request: request id, method, path, status code and the time
// the handler took. Methods and codes are coloured when stderr is a terminal.
func LogRequests(loggers ...Logger) inbuilt.Middleware {
	if len(loggers) == 0 {
		loggers = append(loggers, log.Default())
	}

	palette := newPalette(lipgloss.NewRenderer(os.Stderr))

	return func(next inbuilt.Handler, request *http.Request) *http.Response {
		if errors.Is(request.Env.Error, status.ErrCloseConnection) {
			return next(request)
		}

		if len(request.Env.RequestID) == 0 {
			request.Env.RequestID = uniuri.NewLen(requestIDLength)
		}

		start := time.Now()
		response := next(request)
		if response == nil {
			response = http.Respond(request)
		}

		code := response.Expose().Code

		for _, logger := range loggers {
			logger.Printf(
				"[%s] %s %s %s (%s)",
				request.Env.RequestID,
				palette.Method(request.Method.String()),
				request.Path,
				palette.Code(code),
				time.Since(start),
			)
		}

		return response
	}
}

type palette struct {
	method, success, redirect, clientErr, serverErr lipgloss.Style
}

func newPalette(renderer *lipgloss.Renderer) palette {
	style := renderer.NewStyle()

	return palette{
		method:    style.Bold(true),
		success:   style.Foreground(lipgloss.Color("2")),
		redirect:  style.Foreground(lipgloss.Color("6")),
		clientErr: style.Foreground(lipgloss.Color("3")),
		serverErr: style.Foreground(lipgloss.Color("1")),
	}
}

func (p palette) Method(m string) string {
	return p.method.Render(m)
}

func (p palette) Code(code status.Code) string {
	str := status.StringCode(code)

	switch {
	case code >= 500:
		return p.serverErr.Render(str)
	case code >= 400:
		return p.clientErr.Render(str)
	case code >= 300:
		return p.redirect.Render(str)
	default:
		return p.success.Render(str)
	}
}
