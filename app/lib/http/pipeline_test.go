package http

import (
	"io"
	"net"
	"os"
	"path"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// exchange runs one connection through the pipeline over an
// in-memory pipe and returns everything the server wrote.
func exchange(t *testing.T, dir string, raw string) string {
	t.Helper()

	server, client := net.Pipe()
	pipeline := NewPipeline(dir, zerolog.Nop(), nil)

	go pipeline.Handle(server)
	go func() {
		_, _ = client.Write([]byte(raw))
	}()

	out, err := io.ReadAll(client)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	return string(out)
}

func TestPipeline_Echo(t *testing.T) {
	got := exchange(t, "", "GET /echo/abc HTTP/1.1\r\nHost: localhost\r\n\r\n")
	want := "HTTP/1.1 200 OK\r\nContent-Length: 3\r\nContent-Type: text/plain\r\n\r\nabc"
	if got != want {
		t.Errorf("response = %q, want %q", got, want)
	}
}

func TestPipeline_Root(t *testing.T) {
	got := exchange(t, "", "GET / HTTP/1.1\r\n\r\n")
	want := "HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\n\r\n"
	if got != want {
		t.Errorf("response = %q, want %q", got, want)
	}
}

func TestPipeline_UserAgentDefault(t *testing.T) {
	got := exchange(t, "", "GET /user-agent HTTP/1.1\r\nHost: x\r\n\r\n")
	want := "HTTP/1.1 200 OK\r\nContent-Length: 7\r\nContent-Type: text/plain\r\n\r\nUnknown"
	if got != want {
		t.Errorf("response = %q, want %q", got, want)
	}
}

func TestPipeline_UnknownRoute(t *testing.T) {
	got := exchange(t, "", "GET /nope HTTP/1.1\r\n\r\n")
	want := "HTTP/1.1 404 Not Found\r\n\r\n"
	if got != want {
		t.Errorf("response = %q, want %q", got, want)
	}
}

// Parse failures answer a bare best-effort 400 and close.
func TestPipeline_MalformedRequestLine(t *testing.T) {
	got := exchange(t, "", "BAD\r\n\r\n")
	want := "HTTP/1.1 400 Internal error\r\n\r\n"
	if got != want {
		t.Errorf("response = %q, want %q", got, want)
	}
}

func TestPipeline_MalformedHeader(t *testing.T) {
	got := exchange(t, "", "GET / HTTP/1.1\r\nbroken-line\r\n\r\n")
	want := "HTTP/1.1 400 Internal error\r\n\r\n"
	if got != want {
		t.Errorf("response = %q, want %q", got, want)
	}
}

func TestPipeline_FileRoundTrip(t *testing.T) {
	dir := t.TempDir()

	post := exchange(t, dir, "POST /files/f HTTP/1.1\r\nContent-Length: 5\r\n\r\nhello")
	if post != "HTTP/1.1 201 Created\r\n\r\n" {
		t.Fatalf("post response = %q", post)
	}

	written, err := os.ReadFile(path.Join(dir, "f"))
	if err != nil {
		t.Fatal(err)
	}
	if string(written) != "hello" {
		t.Errorf("file contents = %q, want %q", written, "hello")
	}

	get := exchange(t, dir, "GET /files/f HTTP/1.1\r\n\r\n")
	want := "HTTP/1.1 200 OK\r\nContent-Length: 5\r\nContent-Type: application/octet-stream\r\n\r\nhello"
	if get != want {
		t.Errorf("get response = %q, want %q", get, want)
	}
}

func TestPipeline_FilePostMissingDir(t *testing.T) {
	got := exchange(t, "/does/not/exist", "POST /files/f HTTP/1.1\r\nContent-Length: 2\r\n\r\nhi")
	want := "HTTP/1.1 500 Internal error\r\n\r\n"
	if got != want {
		t.Errorf("response = %q, want %q", got, want)
	}
}

func TestPipeline_ConnectionsAreIndependent(t *testing.T) {
	// A failed connection must not poison a following one.
	if got := exchange(t, "", "garbage\r\n\r\n"); !strings.HasPrefix(got, "HTTP/1.1 400") {
		t.Errorf("first response = %q, want 400", got)
	}
	if got := exchange(t, "", "GET / HTTP/1.1\r\n\r\n"); !strings.HasPrefix(got, "HTTP/1.1 200") {
		t.Errorf("second response = %q, want 200", got)
	}
}
