package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pursuit/internal/games/pursuit/levels"
)

func writeLevel(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func newTestCompiler() *levels.Compiler {
	f := levels.NewDefaultFactory(levels.DefaultPelletValue)
	return levels.NewCompiler(f, f)
}

func TestCheckFileValid(t *testing.T) {
	path := writeLevel(t, "small.txt", "#####\n#P.A#\n#####\n")

	var out bytes.Buffer
	if err := checkFile(&out, newTestCompiler(), path); err != nil {
		t.Fatalf("checkFile failed: %v", err)
	}
	for _, want := range []string{`"small"`, "5x3", "1 start(s)", "1 ghost(s)", "1 pellet(s)"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output %q missing %q", out.String(), want)
		}
	}
}

func TestCheckFileNoStart(t *testing.T) {
	path := writeLevel(t, "empty.txt", "#.#\n")

	var out bytes.Buffer
	if err := checkFile(&out, newTestCompiler(), path); err != nil {
		t.Fatalf("checkFile failed: %v", err)
	}
	if !strings.Contains(out.String(), "no player start") {
		t.Errorf("expected a warning, got %q", out.String())
	}
}

func TestCheckFileInvalidMap(t *testing.T) {
	path := writeLevel(t, "ragged.txt", "####\n#P.\n")

	var out bytes.Buffer
	err := checkFile(&out, newTestCompiler(), path)
	var cfgErr *levels.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}

	msg := fmt.Sprintf("%v", err)
	if !strings.HasPrefix(msg, "level ragged: ") {
		t.Errorf("error should name the level, got %q", msg)
	}
	if n := strings.Count(msg, "invalid map"); n != 1 {
		t.Errorf("error should say invalid map once, got %q", msg)
	}
	if out.Len() != 0 {
		t.Errorf("nothing should be printed for a failed file, got %q", out.String())
	}
}

func TestCheckFileMissing(t *testing.T) {
	err := checkFile(&bytes.Buffer{}, newTestCompiler(), filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("expected error for a missing file")
	}
	var cfgErr *levels.ConfigurationError
	if errors.As(err, &cfgErr) {
		t.Error("a missing file is not a map error")
	}
}
