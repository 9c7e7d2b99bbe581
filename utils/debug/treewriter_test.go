package debug

import (
	"strings"
	"testing"
)

func TestTreeWriter_Line(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		format string
		args   []any
		want   string
	}{
		{
			name:   "no depth",
			depth:  0,
			format: "test",
			args:   nil,
			want:   "test\n",
		},
		{
			name:   "depth 1",
			depth:  1,
			format: "indented",
			args:   nil,
			want:   "  indented\n",
		},
		{
			name:   "depth 2",
			depth:  2,
			format: "double indent",
			args:   nil,
			want:   "    double indent\n",
		},
		{
			name:   "with formatting",
			depth:  1,
			format: "value: %d",
			args:   []any{42},
			want:   "  value: 42\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Line(tt.depth, tt.format, tt.args...)
			got := tw.String()
			if got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_TextBlock(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		label string
		value string
		want  string
	}{
		{
			name:  "empty value",
			depth: 0,
			label: "field",
			value: "",
			want:  "field: \n",
		},
		{
			name:  "plain value",
			depth: 0,
			label: "text",
			value: "hello world",
			want:  "text: hello world\n",
		},
		{
			name:  "indented",
			depth: 2,
			label: "nested",
			value: "data",
			want:  "    nested: data\n",
		},
		{
			name:  "value with quotes",
			depth: 0,
			label: "quoted",
			value: "he said \"hello\"",
			want:  "quoted: \"he said \\\"hello\\\"\"\n",
		},
		{
			name:  "value with newline",
			depth: 0,
			label: "multiline",
			value: "line1\nline2",
			want:  "multiline: \"line1\\nline2\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.TextBlock(tt.depth, tt.label, tt.value)
			got := tw.String()
			if got != tt.want {
				t.Errorf("TextBlock() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_Tree(t *testing.T) {
	tw := NewTreeWriter()
	tw.Line(0, "document")
	tw.TextBlock(1, "name", "pExample")
	tw.Line(1, "features")
	tw.Line(2, "feature idx=%d", 1)
	tw.TextBlock(3, "sequence", "ACGTACGT")

	result := tw.String()
	want := "document\n  name: pExample\n  features\n    feature idx=1\n      sequence: ACGTACGT\n"
	if result != want {
		t.Errorf("tree:\ngot:\n%s\nwant:\n%s", result, want)
	}
	if !strings.HasSuffix(result, "\n") {
		t.Error("dump should end with a newline")
	}
}

func TestClip(t *testing.T) {
	if got := Clip("ACGTACGT", 4); got != "ACGT..." {
		t.Errorf("Clip = %q", got)
	}
	if got := Clip("ACGT", 4); got != "ACGT" {
		t.Errorf("Clip = %q", got)
	}
	if got := Clip("", 4); got != "" {
		t.Errorf("Clip = %q", got)
	}
}
