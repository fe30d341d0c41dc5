package inbuilt

import (
	"github.com/indigo-web/tinyserve/http"
	"github.com/indigo-web/tinyserve/http/method"
	"github.com/indigo-web/tinyserve/http/status"
)

type (
	Handler    func(*http.Request) *http.Response
	Middleware func(next Handler, request *http.Request) *http.Response
)

// methodsMap is indexed by the method's integer value.
type methodsMap [method.Count + 1]Handler

type errorHandlers map[status.Code]Handler

type prefixRoute struct {
	prefix  string
	methods methodsMap
}
