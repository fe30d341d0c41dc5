package inbuilt

import "github.com/indigo-web/tinyserve/http"

func newErrorHandlers() errorHandlers {
	return errorHandlers{
		AllErrors: genericErrorHandler,
	}
}

func genericErrorHandler(request *http.Request) *http.Response {
	return http.Error(request, request.Env.Error)
}
