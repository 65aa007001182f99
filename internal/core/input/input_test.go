package input

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	perr "langsniff/internal/platform/errors"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

// panicReader proves stdin is never touched
type panicReader struct{}

func (panicReader) Read([]byte) (int, error) { panic("stdin must not be read") }

func TestAcquire_InlineWinsOverStdin(t *testing.T) {
	text := "bonjour à tous"
	got, err := Acquire(Source{Inline: &text, Stdin: panicReader{}})
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"bonjour à tous"}) {
		t.Fatalf("units = %q", got)
	}
}

func TestAcquire_EmptyInlineIsOneUnit(t *testing.T) {
	empty := ""
	got, err := Acquire(Source{Inline: &empty, Stdin: panicReader{}})
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if !reflect.DeepEqual(got, []string{""}) {
		t.Fatalf("units = %q, want one empty unit", got)
	}
}

func TestAcquire_InlineLineMode(t *testing.T) {
	text := "bonjour à tous\nhola a todos\nhallo allemaal\n\n"
	got, err := Acquire(Source{Inline: &text, LineMode: true})
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	want := []string{"bonjour à tous", "hola a todos", "hallo allemaal"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("units = %q, want %q", got, want)
	}
}

func TestAcquire_StdinWholeBlob(t *testing.T) {
	got, err := Acquire(Source{Stdin: strings.NewReader("line one\nline two\n")})
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"line one\nline two\n"}) {
		t.Fatalf("units = %q", got)
	}
}

func TestAcquire_StdinEmpty(t *testing.T) {
	got, err := Acquire(Source{Stdin: strings.NewReader("")})
	if err != nil || !reflect.DeepEqual(got, []string{""}) {
		t.Fatalf("blob mode = %q, %v; want one empty unit", got, err)
	}
	got, err = Acquire(Source{Stdin: strings.NewReader(""), LineMode: true})
	if err != nil || len(got) != 0 {
		t.Fatalf("line mode = %q, %v; want no units", got, err)
	}
}

func TestAcquire_ReadFailure(t *testing.T) {
	_, err := Acquire(Source{Stdin: failingReader{}})
	if !perr.IsCode(err, perr.ErrorCodeInputRead) {
		t.Fatalf("code = %v, want input read", perr.CodeOf(err))
	}
	_, err = Acquire(Source{})
	if !perr.IsCode(err, perr.ErrorCodeInputRead) {
		t.Fatalf("nil stdin code = %v, want input read", perr.CodeOf(err))
	}
}

func TestAcquire_InvalidUTF8(t *testing.T) {
	_, err := Acquire(Source{Stdin: strings.NewReader("ok\xff")})
	if !perr.IsCode(err, perr.ErrorCodeInputRead) {
		t.Fatalf("code = %v, want input read", perr.CodeOf(err))
	}
}

func TestSplitLines(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"\n\n", []string{}},
		{"a", []string{"a"}},
		{"a\n", []string{"a"}},
		{"a\r\nb\r\n", []string{"a", "b"}},
		{"a\n\nb", []string{"a", "", "b"}},
		{"\na", []string{"", "a"}},
		{"a\n \n", []string{"a", " "}},
		{"a\r\r\n", []string{"a\r"}},
	}
	for _, c := range cases {
		got := SplitLines(c.in)
		if len(got) == 0 && len(c.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Fatalf("SplitLines(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
