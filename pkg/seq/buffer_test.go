// 5 Mar 2026

package seq_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	. "github.com/VirologyCharite/prseq/pkg/seq"
)

func TestBufDoubling(t *testing.T) {
	g := NewGrowBuf(8)
	piece := []byte("abcde")
	var want bytes.Buffer
	for i := 0; i < 100; i++ {
		if err := g.Push(piece); err != nil {
			t.Fatal("push", i, err)
		}
		want.Write(piece)
	}
	if g.Str() != want.String() {
		t.Fatal("content lost while growing")
	}
	// capacity doubles, so it is a power of two times the start
	for c := g.Cap(); c > 8; c /= 2 {
		if c%2 != 0 {
			t.Fatal("capacity is not doubled from the start value:", g.Cap())
		}
	}
}

func TestBufResetKeepsStorage(t *testing.T) {
	g := NewGrowBuf(8)
	g.Push([]byte(strings.Repeat("x", 100)))
	c := g.Cap()
	g.Reset()
	if g.Len() != 0 {
		t.Fatal("reset did not clear the length")
	}
	if g.Cap() != c {
		t.Fatal("reset threw the storage away")
	}
}

func TestBufCeiling(t *testing.T) {
	defer SetMaxFieldLen(SetMaxFieldLen(64))
	g := NewGrowBuf(8)
	if err := g.Push([]byte("0123456789")); err != nil {
		t.Fatal("small push failed", err)
	}
	err := g.Push([]byte(strings.Repeat("y", 100)))
	if !errors.Is(err, ErrAllocation) {
		t.Fatal("wanted ErrAllocation, got", err)
	}
	// failure must leave the old content alone
	if g.Str() != "0123456789" {
		t.Fatal("content damaged by a failed grow:", g.Str())
	}
}

// Growing must stop exactly at the ceiling, not at the last doubling
// below it.
func TestBufCeilingClamp(t *testing.T) {
	defer SetMaxFieldLen(SetMaxFieldLen(100))
	g := NewGrowBuf(8)
	if err := g.Ensure(90); err != nil {
		t.Fatal("ensure below the ceiling failed:", err)
	}
	if g.Cap() != 100 {
		t.Fatal("expected the ceiling as capacity, got", g.Cap())
	}
}
