package http

import "strings"

// HandlerFunc converts a parsed request into a response. dir is the
// configured files directory, the only state shared between
// connections.
type HandlerFunc func(req Request, dir string) Response

const (
	echoPrefix  = "/echo/"
	filesPrefix = "/files/"
)

// Route picks the handler for a request. Rules are evaluated in
// precedence order and the first match wins; matching is exact
// prefix or exact equality, with no normalization of the path.
func Route(method string, path string) HandlerFunc {
	switch {
	case strings.HasPrefix(path, echoPrefix):
		return EchoHandler
	case path == "/user-agent":
		return UserAgentHandler
	case strings.HasPrefix(path, filesPrefix):
		switch method {
		case "GET":
			return FileGetHandler
		case "POST":
			return FilePostHandler
		default:
			return NotFoundHandler
		}
	case path == "/":
		return SuccessHandler
	default:
		return NotFoundHandler
	}
}
