package http

import (
	"os"
	"path"
	"strings"
)

// EchoHandler reflects the path segment after /echo/ as the body.
func EchoHandler(req Request, dir string) Response {
	text := strings.TrimPrefix(req.Path, echoPrefix)
	req.Logger.Info().Str("text", text).Msg("handling echo")

	res := NewResponse(StatusOK)
	res.Headers[HeaderContentType] = TextPlainContentType
	res.Body = []byte(text)
	return res
}

// UserAgentHandler reflects the User-Agent header, or "Unknown"
// when the client sent none.
func UserAgentHandler(req Request, dir string) Response {
	agent, exists := req.Headers[HeaderUserAgent]
	if !exists {
		agent = "Unknown"
	}
	req.Logger.Info().Str("user-agent", agent).Msg("handling user-agent")

	res := NewResponse(StatusOK)
	res.Headers[HeaderContentType] = TextPlainContentType
	res.Body = []byte(agent)
	return res
}

// FileGetHandler serves <dir>/<name after /files/>. Any read
// failure, including a missing file or a directory target, is a
// 404. The name is not canonicalized, so traversal outside dir is
// possible; serving untrusted clients would need that fixed.
func FileGetHandler(req Request, dir string) Response {
	name := strings.TrimPrefix(req.Path, filesPrefix)
	req.Logger.Info().Str("filename", name).Str("dir", dir).Msg("handling file read")

	contents, err := os.ReadFile(path.Join(dir, name))
	if err != nil {
		req.Logger.Error().Err(err).Msg("error reading file")
		return NewResponse(StatusNotFound)
	}

	res := NewResponse(StatusOK)
	res.Headers[HeaderContentType] = OctetStreamContentType
	res.Body = contents
	return res
}

// FilePostHandler writes the request body to <dir>/<name after
// /files/>, creating or truncating the file. Concurrent writes to
// one name are not coordinated; the last writer wins.
func FilePostHandler(req Request, dir string) Response {
	name := strings.TrimPrefix(req.Path, filesPrefix)
	req.Logger.Info().Str("filename", name).Str("dir", dir).Msg("handling file write")

	if err := os.WriteFile(path.Join(dir, name), req.Body, 0o644); err != nil {
		req.Logger.Error().Err(err).Msg("unable to write file")
		return NewResponse(StatusInternalServerError)
	}
	return NewResponse(StatusCreated)
}

// SuccessHandler answers the root path.
func SuccessHandler(req Request, dir string) Response {
	res := NewResponse(StatusOK)
	res.Headers[HeaderContentType] = TextPlainContentType
	return res
}

func NotFoundHandler(req Request, dir string) Response {
	return NewResponse(StatusNotFound)
}
