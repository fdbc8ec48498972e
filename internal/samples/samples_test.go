package samples

import (
	"bytes"
	"errors"
	"io"
	"math"
	"strings"
	"testing"
)

func TestReadAll(t *testing.T) {
	in := "# header\n0, 1\n0\t-1   # comment\n\n2.5e-1,,-0.125\r\n"

	got, err := ReadAll(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}

	want := []float64{0, 1, 0, -1, 0.25, -0.125}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestReadAllEmpty(t *testing.T) {
	got, err := ReadAll(strings.NewReader("# nothing here\n\n"))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %v, want no samples", got)
	}
}

func TestReadAllInvalid(t *testing.T) {
	_, err := ReadAll(strings.NewReader("1\n2\nthree\n"))
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Fatalf("error %q does not name line 3", err)
	}
}

func TestReaderNext(t *testing.T) {
	r := NewReader(strings.NewReader("1 2\n3"))
	for _, want := range []float64{1, 2, 3} {
		x, err := r.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if x != want {
			t.Fatalf("Next = %v, want %v", x, want)
		}
	}
	if _, err := r.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("Next after last = %v, want io.EOF", err)
	}
	if r.Line() != 2 {
		t.Fatalf("Line = %d, want 2", r.Line())
	}
}

func TestReadAllLongLine(t *testing.T) {
	const n = 10000
	line := strings.Repeat("0.123456789, ", n) + "# trailing comment " + strings.Repeat("x", 70000) + "\n-1\n"
	if len(line) <= 64*1024 {
		t.Fatalf("input line is only %d bytes", len(line))
	}

	got, err := ReadAll(strings.NewReader(line))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != n+1 {
		t.Fatalf("got %d samples, want %d", len(got), n+1)
	}
	if got[0] != 0.123456789 || got[n-1] != 0.123456789 || got[n] != -1 {
		t.Fatalf("unexpected samples %v ... %v", got[0], got[n-1:])
	}
}

func TestReadAllNonFinite(t *testing.T) {
	for _, tok := range []string{"NaN", "nan", "Inf", "-Inf", "+inf", "1e999"} {
		_, err := ReadAll(strings.NewReader("0.5\n1, " + tok + "\n"))
		if err == nil {
			t.Fatalf("ReadAll accepted %q", tok)
		}
		if !strings.Contains(err.Error(), "line 2") {
			t.Fatalf("error %q does not name line 2", err)
		}
	}
}

func TestReaderLine(t *testing.T) {
	r := NewReader(strings.NewReader("# a\n\n1 # b\n\n2,3\n"))
	for _, want := range []int{3, 5, 5} {
		if _, err := r.Next(); err != nil {
			t.Fatalf("Next: %v", err)
		}
		if r.Line() != want {
			t.Fatalf("Line = %d, want %d", r.Line(), want)
		}
	}
}

func TestWriteRoundTrip(t *testing.T) {
	in := []float64{0, 1, -1, math.Pi, 1e-300, -0.7071067811865476}

	var buf bytes.Buffer
	if err := Write(&buf, in); err != nil {
		t.Fatalf("Write: %v", err)
	}

	out, err := ReadAll(&buf)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], in[i])
		}
	}
}
