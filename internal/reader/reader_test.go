package reader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestScanReadsAllLines(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "app.log", "one\ntwo\nthree\n")

	r, err := New([]string{path}, 0)
	if err != nil {
		t.Fatal(err)
	}

	var got []string
	if err := r.Scan(func(line string) { got = append(got, line) }); err != nil {
		t.Fatal(err)
	}

	if len(got) != 3 || got[0] != "one" || got[2] != "three" {
		t.Errorf("unexpected lines: %v", got)
	}
}

func TestScanMaxLines(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "app.log", "1\n2\n3\n4\n5\n")

	r, err := New([]string{path}, 3)
	if err != nil {
		t.Fatal(err)
	}

	var count int
	if err := r.Scan(func(string) { count++ }); err != nil {
		t.Fatal(err)
	}

	if count != 3 {
		t.Errorf("expected cap at 3 lines, got %d", count)
	}
}

func TestScanMaxLinesSpansFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.log", "1\n2\n")
	b := writeFile(t, dir, "b.log", "3\n4\n")

	r, err := New([]string{a, b}, 3)
	if err != nil {
		t.Fatal(err)
	}

	var got []string
	if err := r.Scan(func(line string) { got = append(got, line) }); err != nil {
		t.Fatal(err)
	}

	if len(got) != 3 || got[2] != "3" {
		t.Errorf("expected global cap across files, got %v", got)
	}
}

func TestScanReplacesInvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.log")
	if err := os.WriteFile(path, []byte("ok \xff\xfe end\n"), 0644); err != nil {
		t.Fatal(err)
	}

	r, err := New([]string{path}, 0)
	if err != nil {
		t.Fatal(err)
	}

	var got string
	if err := r.Scan(func(line string) { got = line }); err != nil {
		t.Fatal(err)
	}

	if strings.Contains(got, "\xff") {
		t.Errorf("expected invalid bytes replaced, got %q", got)
	}
	if !strings.HasPrefix(got, "ok ") || !strings.HasSuffix(got, " end") {
		t.Errorf("expected surrounding text preserved, got %q", got)
	}
}

func TestNewGlobPattern(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.log", "x\n")
	writeFile(t, dir, "b.log", "y\n")
	writeFile(t, dir, "notes.txt", "z\n")

	r, err := New([]string{filepath.Join(dir, "*.log")}, 0)
	if err != nil {
		t.Fatal(err)
	}

	if len(r.Paths()) != 2 {
		t.Errorf("expected 2 matched files, got %v", r.Paths())
	}
}

func TestNewNoMatch(t *testing.T) {
	if _, err := New([]string{"/nonexistent/nothing.log"}, 0); err == nil {
		t.Error("expected error when no files match")
	}
}
