package pdx

import (
	"strings"
	"testing"
)

// Pretty-printing a parsed tree and re-parsing the output must yield an
// equal tree.
func TestPrintRoundTrip(t *testing.T) {
	sources := []string{
		"",
		"a = 1",
		"a = -1\nb = 2.500\nc = 1066.9.14\n",
		`name = "two words"` + "\n",
		"empty = {}",
		"ints = { 1 2 3 }",
		"nested = { a = 1 b = { c = 2 } }",
		"lob = { { a = 1 } { b = 2 } }",
		"mixed = { word 7 2.500 { x = 1 } }",
		"deep = { a = { b = { c = { d = { } } } } }",
		"1066.9.14 = { birth = yes }\n42 = saved\n",
	}

	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			first := mustParse(t, src)
			printed := first.Root().String()
			second, err := ParseBytes([]byte(printed))
			if err != nil {
				t.Fatalf("re-parse of %q: %v", printed, err)
			}
			if !first.Root().Equal(second.Root()) {
				t.Errorf("round trip changed tree:\nsource: %q\nprinted: %q", src, printed)
			}
		})
	}
}

func TestPrintQuoting(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"bare stays bare", "a = word", "a = word\n"},
		{"whitespace quoted", `a = "two words"`, "a = \"two words\"\n"},
		{"numeric string requoted", `a = "123"`, "a = \"123\"\n"},
		{"empty string quoted", `a = ""`, "a = \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustParse(t, tt.src)
			if got := p.Root().String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrintLayout(t *testing.T) {
	p := mustParse(t, "a = { b = 1 c = { 2 3 } }")

	want := strings.Join([]string{
		"a = {",
		"    b = 1",
		"    c = { 2 3 }",
		"}",
		"",
	}, "\n")
	if got := p.Root().String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}
