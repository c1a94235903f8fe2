package http

import "errors"

var (
	// ErrMalformedRequestLine means the first line held fewer than
	// three whitespace-separated tokens.
	ErrMalformedRequestLine = errors.New("http: malformed request line")

	// ErrMalformedHeader means a header line lacked the ": "
	// separator.
	ErrMalformedHeader = errors.New("http: malformed header line")

	// ErrTruncatedBody means the stream ended before Content-Length
	// bytes of body arrived.
	ErrTruncatedBody = errors.New("http: request body shorter than Content-Length")
)
