package http

import (
	"github.com/rs/zerolog"
)

// Request is one HTTP/1.1 request as parsed off the wire. It is
// immutable once parsed: the method is kept as an opaque token, the
// path is the raw request target with no normalization, and the
// version token is stored but not validated.
type Request struct {
	Method  string
	Path    string
	Version string
	Headers map[string]string
	Body    []byte
	Logger  zerolog.Logger
}

// Response is built by a handler and consumed exactly once by the
// serializer. The reason phrase is derived from Status at write
// time; Content-Length is implied from Body unless set explicitly.
type Response struct {
	Status  int
	Headers map[string]string
	Body    []byte
}

func NewResponse(status int) Response {
	return Response{
		Status:  status,
		Headers: make(map[string]string),
	}
}
