// Package testutil holds helpers shared by the scaffolding tests.
package testutil

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/kballard/go-shellquote"

	"github.com/dimasma0305/challscaffold/internal/log"
)

// ArgsFile is where the fake generator records the arguments it was given
const ArgsFile = ".generator-args"

// RequireShell skips the test on platforms without a POSIX shell
func RequireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake generator needs /bin/sh")
	}
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("fake generator needs /bin/sh")
	}
}

// FakeGenerator writes a shell script into a temp dir and returns a command prefix that runs it.
// The script body receives the generator's positional arguments as "$@".
func FakeGenerator(t *testing.T, body string) string {
	t.Helper()
	RequireShell(t)

	path := filepath.Join(t.TempDir(), "fake-generator.sh")
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0600); err != nil {
		t.Fatalf("write fake generator: %v", err)
	}
	return "/bin/sh " + shellquote.Join(path)
}

// CreatingGenerator behaves like create-vite: it makes the project directory and records its
// arguments and FORCE_COLOR inside it.
func CreatingGenerator(t *testing.T) string {
	return FakeGenerator(t, fmt.Sprintf(`mkdir -p "$1" && printf '%%s\n' "$@" > "$1/%s" && printf '%%s' "$FORCE_COLOR" > "$1/.force-color"`, ArgsFile))
}

// FailingGenerator exits with code without creating anything
func FailingGenerator(t *testing.T, code int) string {
	return FakeGenerator(t, fmt.Sprintf("exit %d", code))
}

// ReadArgs returns the arguments the fake generator recorded for a project directory
func ReadArgs(t *testing.T, projectDir string) []string {
	t.Helper()
	//nolint:gosec // G304: test-owned temp path
	data, err := os.ReadFile(filepath.Join(projectDir, ArgsFile))
	if err != nil {
		t.Fatalf("read recorded args: %v", err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

// PageServer serves body as text/html on every path and counts requests
type PageServer struct {
	*httptest.Server
	Hits atomic.Int32
}

// NewPageServer starts a server returning body with the given status
func NewPageServer(t *testing.T, status int, body string) *PageServer {
	t.Helper()
	ps := &PageServer{}
	ps.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		ps.Hits.Add(1)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ps.Close)
	return ps
}

// ChallengePage builds a course page with one nav element per label
func ChallengePage(labels ...string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html><html><head><title>Course</title></head><body>\n")
	for _, label := range labels {
		fmt.Fprintf(&b, "<nav aria-label=%q><a href=\"#\">%s</a></nav>\n", label, label)
	}
	b.WriteString("</body></html>")
	return b.String()
}

// syncBuffer is a bytes.Buffer safe for the concurrent writes scaffold jobs produce
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

// CaptureLogs redirects the log package for the duration of the test.
// The returned functions read what was written to stdout and stderr.
func CaptureLogs(t *testing.T) (stdout func() string, stderr func() string) {
	t.Helper()
	out, errOut := &syncBuffer{}, &syncBuffer{}
	log.SetOutput(out, errOut)
	t.Cleanup(func() { log.SetOutput(nil, nil) })
	return out.String, errOut.String
}

// Chdir switches the working directory for the duration of the test
func Chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}
