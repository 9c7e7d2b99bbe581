package htmltext

import "testing"

func TestFlatten(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text untouched", in: "hello world", want: "hello world"},
		{name: "surrounding whitespace trimmed", in: "  padded\n", want: "padded"},
		{name: "newlines collapse to spaces", in: "line one\nline two\n\nline three", want: "line one line two line three"},
		{name: "double quotes become single", in: `tm:60, binding at "p15A"`, want: "tm:60, binding at 'p15A'"},
		{name: "tags dropped", in: "<html><body>some <i>styled</i> text</body></html>", want: "some styled text"},
		{name: "block boundaries separate words", in: "<p>first</p><p>second</p>", want: "first second"},
		{name: "entities resolved", in: "&quot;tm:60&quot; &amp; more", want: "'tm:60' & more"},
		{name: "line break tag", in: "one<br/>two", want: "one two"},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Flatten(tt.in); got != tt.want {
				t.Errorf("Flatten(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
