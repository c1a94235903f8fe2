package http

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadRequest reads exactly one HTTP request from reader. The body
// is read fully, so on success the stream is positioned after the
// request.
func ReadRequest(reader *bufio.Reader) (Request, error) {
	// Some transports hand us stray blank lines ahead of the
	// request line; skip them.
	var line string
	var err error
	for {
		line, err = readLine(reader)
		if err != nil {
			return Request{}, fmt.Errorf("read request line: %w", err)
		}
		if strings.TrimSpace(line) != "" {
			break
		}
	}

	parts := strings.Fields(line)
	if len(parts) < 3 {
		return Request{}, ErrMalformedRequestLine
	}

	headers, err := readHeaderLines(reader)
	if err != nil {
		return Request{}, err
	}

	length := contentLength(headers)
	body := make([]byte, length)
	if length > 0 {
		if _, err := io.ReadFull(reader, body); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return Request{}, ErrTruncatedBody
			}
			return Request{}, fmt.Errorf("read body: %w", err)
		}
	}

	return Request{
		Method:  parts[0],
		Path:    parts[1],
		Version: parts[2],
		Headers: headers,
		Body:    body,
	}, nil
}

// readHeaderLines reads header lines up to the blank terminator.
// Keys stay case-sensitive as received and the last occurrence of a
// name wins. A line whose name or value trims to nothing is dropped
// rather than rejected; a line without the ": " separator is an
// error.
func readHeaderLines(reader *bufio.Reader) (map[string]string, error) {
	headers := make(map[string]string)
	for {
		line, err := readLine(reader)
		if err != nil {
			return nil, fmt.Errorf("read header line: %w", err)
		}
		if line == "" {
			return headers, nil
		}

		// Split on the first separator only; values may contain
		// ": " themselves.
		name, value, found := strings.Cut(line, ": ")
		if !found {
			return nil, ErrMalformedHeader
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if name == "" || value == "" {
			continue
		}
		headers[name] = value
	}
}

// contentLength returns the declared body length, or 0 when the
// header is absent or does not parse as a non-negative integer.
func contentLength(headers map[string]string) int {
	value, exists := headers[HeaderContentLength]
	if !exists {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// readLine reads up to '\n', tolerating both CRLF and bare LF line
// endings. A final line terminated by EOF instead of a newline is
// still returned.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSuffix(line, "\r"), nil
		}
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
