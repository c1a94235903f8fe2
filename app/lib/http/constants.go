package http

const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusBadRequest          = 400
	StatusNotFound            = 404
	StatusInternalServerError = 500
)

// StatusText returns the reason phrase for the status line. Codes
// outside the table map to "Internal error".
func StatusText(code int) string {
	switch code {
	case StatusOK:
		return "OK"
	case StatusCreated:
		return "Created"
	case StatusNotFound:
		return "Not Found"
	default:
		return "Internal error"
	}
}

var (
	HeaderContentType   = "Content-Type"
	HeaderContentLength = "Content-Length"
	HeaderUserAgent     = "User-Agent"
)

var (
	TextPlainContentType   = "text/plain"
	OctetStreamContentType = "application/octet-stream"
)

var (
	Http1Dot1Version = "HTTP/1.1"
)
