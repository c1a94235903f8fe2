package http

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// WriteResponse serializes res onto w: status line, headers sorted
// by name, blank line, raw body. When the handler did not set
// Content-Length and the body is non-empty, it is computed from the
// body length so clients can frame the message.
func WriteResponse(w io.Writer, res Response) error {
	headers := res.Headers
	if len(res.Body) > 0 {
		if _, exists := headers[HeaderContentLength]; !exists {
			if headers == nil {
				headers = make(map[string]string, 1)
			}
			headers[HeaderContentLength] = strconv.Itoa(len(res.Body))
		}
	}

	var builder strings.Builder
	builder.WriteString(Http1Dot1Version)
	builder.WriteString(" ")
	builder.WriteString(strconv.Itoa(res.Status))
	builder.WriteString(" ")
	builder.WriteString(StatusText(res.Status))
	builder.WriteString("\r\n")

	// Sorted so the serialized form is deterministic.
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		writeHeader(&builder, name, headers[name])
	}
	builder.WriteString("\r\n")

	if _, err := io.WriteString(w, builder.String()); err != nil {
		return fmt.Errorf("write response head: %w", err)
	}
	if len(res.Body) > 0 {
		if _, err := w.Write(res.Body); err != nil {
			return fmt.Errorf("write response body: %w", err)
		}
	}
	return nil
}

func writeHeader(builder *strings.Builder, name string, value string) {
	builder.WriteString(name)
	builder.WriteString(": ")
	builder.WriteString(value)
	builder.WriteString("\r\n")
}
