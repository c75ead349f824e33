// Package mutator perturbs encoded fuzz cases while preserving their
// decodability. It implements the custom-mutator half of the fuzzing
// engine contract: structure-aware mutation instead of blind byte
// flipping, with a canonical-record fallback that heals the corpus
// after any desync.
package mutator

import (
	"math/rand"

	"github.com/dantte-lp/fidofuzz/internal/fuzzcase"
)

// scratchLen is the working capacity for re-encoding a mutated record.
// A record that encodes above this is discarded rather than truncated.
const scratchLen = 16384

// Mutate rewrites data[:size] in place and returns the new length.
// A return of 0 means no mutation was applied and data is unchanged.
//
// Inputs that fail to decode are replaced with the canonical reference
// record's encoding, truncated to maxSize. Inputs that decode are
// perturbed field by field under capacity-preserving operators and
// re-encoded; every non-zero return re-decodes successfully.
//
// The seed drives all derived values and is also written into the
// record's own seed field, so a later replay of the emitted case
// reseeds the harness identically.
func Mutate(data []byte, size, maxSize int, seed uint32) int {
	if size > len(data) {
		size = len(data)
	}
	if maxSize > len(data) {
		maxSize = len(data)
	}

	rec, err := fuzzcase.Decode(data[:size])
	if err != nil {
		return packReference(data, maxSize)
	}

	rng := rand.New(rand.NewSource(int64(seed)))

	mutateFlag(rng, &rec.UV)
	mutateFlag(rng, &rec.UP)
	mutateFlag(rng, &rec.U2F)
	mutateFlag(rng, &rec.Type)
	mutateFlag(rng, &rec.CredCount)

	rec.Ext = int32(rng.Uint32())
	// The seed field is never randomly perturbed: it carries the
	// mutator's own entropy so the case replays deterministically.
	rec.Seed = int32(seed)

	// Anchor the transport trace to a realistic session for whichever
	// transport the (just-mutated) flag selects, then let the generic
	// blob operator work from there.
	resetWireTrace(rec)

	mutateBlob(rng, &rec.WireData)
	mutateBlob(rng, &rec.RS256)
	mutateBlob(rng, &rec.ES256)
	mutateBlob(rng, &rec.EdDSA)
	mutateBlob(rng, &rec.Cred)
	mutateBlob(rng, &rec.CDH)

	mutateString(rng, &rec.RPID)
	mutateString(rng, &rec.PIN)

	buf, err := fuzzcase.Encode(rec, scratchLen)
	if err != nil || len(buf) > maxSize {
		return 0
	}

	copy(data, buf)
	return len(buf)
}

// packReference writes the canonical reference encoding into data,
// truncated to maxSize.
func packReference(data []byte, maxSize int) int {
	buf, err := fuzzcase.Encode(fuzzcase.Reference(), scratchLen)
	if err != nil {
		// The reference record is static and well under scratchLen.
		panic(err)
	}

	n := min(maxSize, len(buf))
	copy(data, buf[:n])
	return n
}

// resetWireTrace replaces the transport trace with the reference trace
// matching the record's transport flag. The reference traces are within
// capacity, so Set cannot fail.
func resetWireTrace(rec *fuzzcase.Record) {
	var trace []byte
	if rec.U2F&1 != 0 {
		trace = fuzzcase.WireTraceU2F()
	} else {
		trace = fuzzcase.WireTraceFIDO()
	}
	if err := rec.WireData.Set(trace); err != nil {
		panic(err)
	}
}

// mutateFlag replaces a byte field with a fresh value over the full
// 0-255 domain. Only the low bit is meaningful downstream; the rest is
// deliberate noise.
func mutateFlag(rng *rand.Rand, v *uint8) {
	*v = uint8(rng.Intn(256))
}

// mutateBlob picks one of three operators: rewrite with fresh content
// and a fresh length, flip a few bytes in place, or leave the blob
// untouched. Keeping an untouched arm lets anchored content such as a
// pristine transport trace survive some mutations intact. All operators
// respect the field capacity.
func mutateBlob(rng *rand.Rand, v *fuzzcase.Blob) {
	switch rng.Intn(3) {
	case 0:
		body := make([]byte, rng.Intn(fuzzcase.MaxBlobLen+1))
		fill(rng, body)
		if err := v.Set(body); err != nil {
			panic(err)
		}
	case 1:
		body := v.Bytes()
		if len(body) == 0 {
			return
		}
		for i, n := 0, 1+rng.Intn(8); i < n; i++ {
			body[rng.Intn(len(body))] = uint8(rng.Intn(256))
		}
	}
}

// mutateString replaces the string with fresh nonzero bytes of a fresh
// length strictly below the capacity, preserving room for termination.
func mutateString(rng *rand.Rand, s *fuzzcase.BoundedString) {
	body := make([]byte, rng.Intn(fuzzcase.MaxStringLen))
	for i := range body {
		body[i] = uint8(1 + rng.Intn(255))
	}
	if err := s.Set(body); err != nil {
		panic(err)
	}
}

// fill fills b with fresh bytes from rng.
func fill(rng *rand.Rand, b []byte) {
	for i := range b {
		b[i] = uint8(rng.Intn(256))
	}
}
