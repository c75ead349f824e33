package mutator_test

import (
	"bytes"
	"testing"

	"github.com/dantte-lp/fidofuzz/internal/fuzzcase"
	"github.com/dantte-lp/fidofuzz/internal/mutator"
)

func encodeReference(t *testing.T) []byte {
	t.Helper()
	buf, err := fuzzcase.Encode(fuzzcase.Reference(), fuzzcase.MaxEncodedSize)
	if err != nil {
		t.Fatalf("encode reference record: %v", err)
	}
	return buf
}

func TestMutatePreservesDecodability(t *testing.T) {
	t.Parallel()

	ref := encodeReference(t)
	for seed := uint32(0); seed < 64; seed++ {
		data := make([]byte, 16384)
		copy(data, ref)

		n := mutator.Mutate(data, len(ref), len(data), seed)
		if n == 0 {
			t.Fatalf("seed %d: mutation of well-formed input returned 0", seed)
		}
		if n > len(data) {
			t.Fatalf("seed %d: returned length %d exceeds budget %d", seed, n, len(data))
		}
		rec, err := fuzzcase.Decode(data[:n])
		if err != nil {
			t.Fatalf("seed %d: mutated output does not decode: %v", seed, err)
		}
		if rec.Seed != int32(seed) {
			t.Fatalf("seed %d: mutated record carries seed %d", seed, rec.Seed)
		}
	}
}

func TestMutateDeterministicPerSeed(t *testing.T) {
	t.Parallel()

	ref := encodeReference(t)

	run := func(seed uint32) []byte {
		data := make([]byte, 16384)
		copy(data, ref)
		n := mutator.Mutate(data, len(ref), len(data), seed)
		return data[:n]
	}

	a, b := run(42), run(42)
	if !bytes.Equal(a, b) {
		t.Fatal("same input and seed produced different outputs")
	}
}

func TestMutateSubstitutesReferenceOnDecodeFailure(t *testing.T) {
	t.Parallel()

	ref := encodeReference(t)

	data := make([]byte, 16384)
	copy(data, []byte{0xff, 0xee, 0xdd})

	n := mutator.Mutate(data, 3, len(data), 7)
	if n != len(ref) {
		t.Fatalf("substitution returned %d bytes, want %d", n, len(ref))
	}
	if !bytes.Equal(data[:n], ref) {
		t.Fatal("substitution output is not the reference encoding")
	}
}

func TestMutateTruncatesReferenceToBudget(t *testing.T) {
	t.Parallel()

	ref := encodeReference(t)
	const budget = 100

	data := make([]byte, budget)
	data[0] = 0xff

	n := mutator.Mutate(data, 1, budget, 7)
	if n != budget {
		t.Fatalf("truncated substitution returned %d bytes, want %d", n, budget)
	}
	if !bytes.Equal(data, ref[:budget]) {
		t.Fatal("truncated output is not a prefix of the reference encoding")
	}
}

func TestMutateRejectsInsufficientBudget(t *testing.T) {
	t.Parallel()

	// The empty input decodes to an all-defaults record, but even that
	// record re-encodes well past a 4 byte budget.
	data := make([]byte, 4)
	orig := append([]byte(nil), data...)

	n := mutator.Mutate(data, 0, len(data), 3)
	if n != 0 {
		t.Fatalf("mutation into a 4 byte budget returned %d, want 0", n)
	}
	if !bytes.Equal(data, orig) {
		t.Fatal("rejected mutation modified the input buffer")
	}
}

func TestMutateResetsWireTrace(t *testing.T) {
	t.Parallel()

	fido := fuzzcase.WireTraceFIDO()
	u2f := fuzzcase.WireTraceU2F()

	ref := encodeReference(t)
	sawTrace := false
	for seed := uint32(0); seed < 256 && !sawTrace; seed++ {
		data := make([]byte, 16384)
		copy(data, ref)

		n := mutator.Mutate(data, len(ref), len(data), seed)
		if n == 0 {
			continue
		}
		rec, err := fuzzcase.Decode(data[:n])
		if err != nil {
			t.Fatalf("seed %d: mutated output does not decode: %v", seed, err)
		}
		wire := rec.WireData.Bytes()
		if bytes.Equal(wire, fido) || bytes.Equal(wire, u2f) {
			sawTrace = true
		}
	}
	if !sawTrace {
		t.Fatal("no seed in 0..255 left a pristine reference trace in the wire data")
	}
}

func FuzzMutate(f *testing.F) {
	ref, err := fuzzcase.Encode(fuzzcase.Reference(), fuzzcase.MaxEncodedSize)
	if err != nil {
		f.Fatalf("encode reference record: %v", err)
	}
	f.Add(ref, uint32(0))
	f.Add([]byte{}, uint32(1))
	f.Add([]byte{0xff}, uint32(2))

	f.Fuzz(func(t *testing.T, in []byte, seed uint32) {
		data := make([]byte, 16384)
		size := copy(data, in)

		n := mutator.Mutate(data, size, len(data), seed)
		if n == 0 {
			return
		}
		if n > len(data) {
			t.Fatalf("returned length %d exceeds budget %d", n, len(data))
		}
		if _, err := fuzzcase.Decode(data[:n]); err != nil {
			t.Fatalf("mutated output does not decode: %v", err)
		}
	})
}
