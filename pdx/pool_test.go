package pdx

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestPoolIntern(t *testing.T) {
	var p Pool

	a, err := p.Intern([]byte("hello"))
	if err != nil {
		t.Fatalf("Intern: %v", err)
	}
	if a != "hello" {
		t.Errorf("got %q, want hello", a)
	}

	b, err := p.Intern([]byte(""))
	if err != nil {
		t.Fatalf("Intern empty: %v", err)
	}
	if b != "" {
		t.Errorf("got %q, want empty string", b)
	}
}

func TestPoolInternTooLong(t *testing.T) {
	var p Pool

	_, err := p.Intern(bytes.Repeat([]byte{'x'}, MaxInternLen+1))
	if !errors.Is(err, ErrAllocation) {
		t.Fatalf("got %v, want ErrAllocation", err)
	}

	s, err := p.Intern(bytes.Repeat([]byte{'x'}, MaxInternLen))
	if err != nil {
		t.Fatalf("Intern at limit: %v", err)
	}
	if len(s) != MaxInternLen {
		t.Errorf("got len %d, want %d", len(s), MaxInternLen)
	}
}

// Strings handed out earlier must stay intact as the pool opens new
// chunks for later allocations.
func TestPoolStableAcrossChunks(t *testing.T) {
	var p Pool
	words := []string{
		strings.Repeat("a", 200),
		strings.Repeat("b", 200),
		strings.Repeat("c", 200), // forces a second chunk
		strings.Repeat("d", 511),
		"e",
	}

	var interned []string
	for _, w := range words {
		s, err := p.Intern([]byte(w))
		if err != nil {
			t.Fatalf("Intern(%q...): %v", w[:1], err)
		}
		interned = append(interned, s)
	}

	if len(p.chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(p.chunks))
	}
	for i, w := range words {
		if interned[i] != w {
			t.Errorf("string %d corrupted: got %q...", i, interned[i][:1])
		}
	}
}

// Interning does not mutate or alias the source buffer.
func TestPoolCopies(t *testing.T) {
	var p Pool
	src := []byte("mutable")
	s, err := p.Intern(src)
	if err != nil {
		t.Fatalf("Intern: %v", err)
	}
	src[0] = 'X'
	if s != "mutable" {
		t.Errorf("interned string aliases its source: %q", s)
	}
}
