package export

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/pyhub-apps/pdftemplate/pkg/match"
)

func feed(t *testing.T, s interface {
	Receive(string, match.Values) error
	Finish() error
}) {
	t.Helper()
	results := []struct {
		doc    string
		values match.Values
	}{
		{"b.pdf", match.Values{"invoice_id": "INV-306", "total": "12,00"}},
		{"a.pdf", match.Values{"invoice_id": "INV-305", "total": match.NotFound}},
	}
	for _, r := range results {
		if err := s.Receive(r.doc, r.values); err != nil {
			t.Fatalf("Receive(%s) error = %v", r.doc, err)
		}
	}
	if err := s.Finish(); err != nil {
		t.Fatalf("Finish() error = %v", err)
	}
}

func TestCSVSink(t *testing.T) {
	var buf bytes.Buffer
	sink, err := NewCSVSink(&buf, []string{"invoice_id", "total"}, "")
	if err != nil {
		t.Fatalf("NewCSVSink() error = %v", err)
	}
	feed(t, sink)

	want := "file;invoice_id;total\n" +
		"a.pdf;INV-305;N/A\n" +
		"b.pdf;INV-306;12,00\n"
	if buf.String() != want {
		t.Errorf("CSV output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestCSVSinkQuotesSeparator(t *testing.T) {
	var buf bytes.Buffer
	sink, _ := NewCSVSink(&buf, []string{"name"}, "utf-8")
	sink.Receive("a.pdf", match.Values{"name": "Smith; John"})
	if err := sink.Finish(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `a.pdf;"Smith; John"`) {
		t.Errorf("separator not quoted:\n%s", buf.String())
	}
}

func TestCSVSinkCharset(t *testing.T) {
	tests := []struct {
		charset string
		value   string
		want    []byte
	}{
		{"windows-1252", "Größe €", []byte("Gr\xf6\xdfe \x80")},
		{"ISO-8859-1", "Müller", []byte("M\xfcller")},
		{"latin1", "Café", []byte("Caf\xe9")},
		{"", "Müller", []byte("Müller")},
	}

	for _, tt := range tests {
		t.Run(tt.charset, func(t *testing.T) {
			var buf bytes.Buffer
			sink, err := NewCSVSink(&buf, []string{"v"}, tt.charset)
			if err != nil {
				t.Fatalf("NewCSVSink() error = %v", err)
			}
			sink.Receive("x", match.Values{"v": tt.value})
			if err := sink.Finish(); err != nil {
				t.Fatalf("Finish() error = %v", err)
			}
			want := append([]byte("file;v\nx;"), tt.want...)
			want = append(want, '\n')
			if !bytes.Equal(buf.Bytes(), want) {
				t.Errorf("output = %q, want %q", buf.Bytes(), want)
			}
		})
	}
}

func TestCSVSinkUnknownCharset(t *testing.T) {
	if _, err := NewCSVSink(&bytes.Buffer{}, nil, "ebcdic"); err == nil {
		t.Error("NewCSVSink() error = nil, want unsupported charset")
	}
}

func TestConsoleSink(t *testing.T) {
	var buf bytes.Buffer
	feed(t, NewConsoleSink(&buf, []string{"invoice_id", "total"}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "file"+strings.Repeat(" ", 16)+"invoice_id") {
		t.Errorf("header = %q", lines[0])
	}
	wantRow := "a.pdf" + strings.Repeat(" ", 15) + "INV-305" + strings.Repeat(" ", 13) + "N/A"
	if lines[1] != wantRow {
		t.Errorf("row = %q, want %q", lines[1], wantRow)
	}
	if !strings.HasPrefix(lines[2], "b.pdf") {
		t.Errorf("rows not sorted: %q", lines[2])
	}
}

func TestFormatCells(t *testing.T) {
	tests := []struct {
		name  string
		cells []string
		want  string
	}{
		{"Padded", []string{"a", "b"}, "a" + strings.Repeat(" ", 19) + "b"},
		{"Wide runes", []string{"日本", "x"}, "日本" + strings.Repeat(" ", 16) + "x"},
		{"Overlong", []string{strings.Repeat("z", 22), "x"}, strings.Repeat("z", 22) + " x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatCells(tt.cells); got != tt.want {
				t.Errorf("formatCells() = %q, want %q", got, tt.want)
			}
		})
	}
}

type recordingSink struct {
	docs     []string
	finished bool
	err      error
}

func (s *recordingSink) Receive(docID string, _ match.Values) error {
	s.docs = append(s.docs, docID)
	return s.err
}

func (s *recordingSink) Finish() error {
	s.finished = true
	return nil
}

func TestMultiSink(t *testing.T) {
	ok := &recordingSink{}
	failing := &recordingSink{err: errors.New("closed")}
	m := MultiSink{failing, ok}

	if err := m.Receive("a.pdf", nil); err == nil {
		t.Error("Receive() error = nil, want the failing sink's error")
	}
	if len(ok.docs) != 1 {
		t.Errorf("healthy sink got %v", ok.docs)
	}
	if err := m.Finish(); err != nil {
		t.Errorf("Finish() error = %v", err)
	}
	if !ok.finished || !failing.finished {
		t.Error("not every sink was finished")
	}
}
