package ioutil_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/ghettovoice/weburl/internal/ioutil"
)

var errWrite = errors.New("write failed")

// failingWriter accepts up to n bytes, then fails every write.
type failingWriter struct {
	n int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, errWrite
	}
	n := min(w.n, len(p))
	w.n -= n
	if n < len(p) {
		return n, errWrite
	}
	return n, nil
}

func TestCountingWriter(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	cw := ioutil.NewCountingWriter(&sb)
	cw.Fprint("abc", 123)
	cw.WriteString("-qwe")
	cw.Call(func(w io.Writer) (int, error) { return io.WriteString(w, "-end") })

	num, err := cw.Result()
	if err != nil {
		t.Fatalf("cw.Result() error = %v, want nil", err)
	}
	if got, want := sb.String(), "abc123-qwe-end"; got != want {
		t.Errorf("sb.String() = %q, want %q", got, want)
	}
	if want := len("abc123-qwe-end"); num != want {
		t.Errorf("cw.Result() num = %d, want %d", num, want)
	}
	if got := cw.Count(); got != num {
		t.Errorf("cw.Count() = %d, want %d", got, num)
	}
	if cw.Err() != nil {
		t.Errorf("cw.Err() = %v, want nil", cw.Err())
	}
}

func TestCountingWriter_WriteError(t *testing.T) {
	t.Parallel()

	cw := ioutil.NewCountingWriter(&failingWriter{n: 4})
	cw.WriteString("abcdef")
	cw.Fprint("ignored")
	cw.Call(func(w io.Writer) (int, error) { return io.WriteString(w, "ignored") })
	if _, err := cw.Write([]byte("ignored")); !errors.Is(err, errWrite) {
		t.Errorf("cw.Write() error = %v, want %v", err, errWrite)
	}

	num, err := cw.Result()
	if !errors.Is(err, errWrite) {
		t.Errorf("cw.Result() error = %v, want %v", err, errWrite)
	}
	if num != 4 {
		t.Errorf("cw.Result() num = %d, want 4", num)
	}
	if !errors.Is(cw.Err(), errWrite) {
		t.Errorf("cw.Err() = %v, want %v", cw.Err(), errWrite)
	}
}

func TestGetCountingWriter(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	cw := ioutil.GetCountingWriter(&sb)
	cw.WriteString("abc")
	if num, err := cw.Result(); err != nil || num != 3 {
		t.Errorf("cw.Result() = (%d, %v), want (3, nil)", num, err)
	}
	ioutil.FreeCountingWriter(cw)
}
