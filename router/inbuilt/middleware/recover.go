package middleware

import (
	"log"

	"github.com/indigo-web/tinyserve/http"
	"github.com/indigo-web/tinyserve/http/status"
	"github.com/indigo-web/tinyserve/router/inbuilt"
)

// Recover catches panics of the handlers and answers with 500 Internal Server Error
// instead. Whatever the handler managed to fill in the response is discarded.
func Recover(loggers ...Logger) inbuilt.Middleware {
	if len(loggers) == 0 {
		loggers = append(loggers, log.Default())
	}

	return func(next inbuilt.Handler, request *http.Request) (response *http.Response) {
		defer func() {
			if r := recover(); r != nil {
				for _, logger := range loggers {
					logger.Printf("recovered from panic: %s %s: %v", request.Method, request.Path, r)
				}

				response = http.Error(request, status.ErrInternalServerError)
			}
		}()

		return next(request)
	}
}
