// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// property_test.go — Randomized operations checked against a flat-slice
// oracle of the buffer content.
package circbuf_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/momentics/hioload-circbuf/circbuf"
)

// TestBufferPropertyBased performs randomized write/read/peek/skip/
// overwrite sequences and checks content and occupancy invariants after
// every step.
func TestBufferPropertyBased(t *testing.T) {
	const capacity = 61 // deliberately not a power of two

	for seed := int64(0); seed < 10; seed++ {
		rnd := rand.New(rand.NewSource(seed))
		b, err := circbuf.New(capacity)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		var oracle []byte
		next := byte(0)

		fill := func(n int) []byte {
			p := make([]byte, n)
			for i := range p {
				p[i] = next
				next++
			}
			return p
		}

		for i := 0; i < 5000; i++ {
			n := rnd.Intn(capacity + 10)
			switch rnd.Intn(5) {
			case 0: // write
				src := fill(n)
				want := n
				if free := capacity - len(oracle); want > free {
					want = free
				}
				got, _ := b.Write(src)
				if got != want {
					t.Fatalf("seed %d op %d: Write returned %d, want %d", seed, i, got, want)
				}
				oracle = append(oracle, src[:got]...)
			case 1: // read
				dst := make([]byte, n)
				got, _ := b.Read(dst)
				want := min(n, len(oracle))
				if got != want {
					t.Fatalf("seed %d op %d: Read returned %d, want %d", seed, i, got, want)
				}
				if !bytes.Equal(dst[:got], oracle[:got]) {
					t.Fatalf("seed %d op %d: Read content mismatch", seed, i)
				}
				oracle = oracle[got:]
			case 2: // peek
				dst := make([]byte, n)
				got, _ := b.Peek(dst)
				want := min(n, len(oracle))
				if got != want || !bytes.Equal(dst[:got], oracle[:got]) {
					t.Fatalf("seed %d op %d: Peek mismatch", seed, i)
				}
			case 3: // skip
				got, _ := b.Skip(n)
				want := min(n, len(oracle))
				if got != want {
					t.Fatalf("seed %d op %d: Skip returned %d, want %d", seed, i, got, want)
				}
				oracle = oracle[got:]
			case 4: // overwrite
				src := fill(n)
				kept := src
				if len(kept) > capacity {
					kept = kept[len(kept)-capacity:]
				}
				want := 0
				if free := capacity - len(oracle); len(kept) > free {
					want = len(kept) - free
				}
				got, _ := b.Overwrite(src)
				if got != want {
					t.Fatalf("seed %d op %d: Overwrite evicted %d, want %d", seed, i, got, want)
				}
				oracle = append(oracle[want:], kept...)
			}

			if b.Len() != len(oracle) {
				t.Fatalf("seed %d op %d: Len %d, oracle %d", seed, i, b.Len(), len(oracle))
			}
			if b.Len()+b.Free() != b.Cap() {
				t.Fatalf("seed %d op %d: Len+Free != Cap", seed, i)
			}
			if b.Len() > capacity {
				t.Fatalf("seed %d op %d: occupancy %d beyond capacity", seed, i, b.Len())
			}
		}

		// Drain and compare the full remaining payload.
		rest := make([]byte, len(oracle))
		if got, _ := b.Read(rest); got != len(oracle) {
			t.Fatalf("seed %d: drain returned %d, want %d", seed, got, len(oracle))
		}
		if !bytes.Equal(rest, oracle) {
			t.Fatalf("seed %d: drained content mismatch", seed)
		}
	}
}
