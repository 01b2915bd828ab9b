package formats

import "testing"

func TestLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{}},
		{"single", "#P#", []string{"#P#"}},
		{"trailing lf", "ab\ncd\n", []string{"ab", "cd"}},
		{"crlf", "ab\r\ncd\r\n", []string{"ab", "cd"}},
		{"cr", "ab\rcd", []string{"ab", "cd"}},
		{"blank middle", "ab\n\ncd", []string{"ab", "", "cd"}},
		{"spaces kept", "  \n# ", []string{"  ", "# "}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Lines([]byte(tc.input))
			if got == nil {
				t.Fatal("Lines returned nil")
			}
			if len(got) != len(tc.want) {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("line %d: expected %q, got %q", i, tc.want[i], got[i])
				}
			}
		})
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`id: tiny
layout:
  - "#####"
  - "#P.A#"
  - "#####"
metadata:
  author: test
`)
	lvl, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if lvl.ID != "tiny" || lvl.Name != "tiny" {
		t.Errorf("unexpected id/name: %q/%q", lvl.ID, lvl.Name)
	}
	if len(lvl.Rows) != 3 || lvl.Rows[1] != "#P.A#" {
		t.Errorf("unexpected rows: %q", lvl.Rows)
	}
	if lvl.Metadata["author"] != "test" {
		t.Errorf("expected author metadata, got %v", lvl.Metadata)
	}
}

func TestParseYAMLErrors(t *testing.T) {
	if _, err := ParseYAML([]byte("layout: [\"#\"]\n")); err == nil {
		t.Error("expected error for missing id")
	}
	if _, err := ParseYAML([]byte("id: [unclosed\n")); err == nil {
		t.Error("expected error for invalid yaml")
	}
}

func TestParseText(t *testing.T) {
	lvl := ParseText("maps/corridor.txt", []byte("#P.A#\n"))
	if lvl.ID != "corridor" {
		t.Errorf("expected id corridor, got %q", lvl.ID)
	}
	if len(lvl.Rows) != 1 {
		t.Errorf("expected 1 row, got %d", len(lvl.Rows))
	}
}
