package fuzzcase

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// -------------------------------------------------------------------------
// Wire Format Constants
// -------------------------------------------------------------------------

// Entry layout: one tag byte followed by a type-specific payload.
//
//	flag fields:   tag(1) + value(1)
//	int fields:    tag(1) + big-endian int32(4)
//	string/blob:   tag(1) + big-endian length(4) + raw bytes
const (
	tagSize       = 1
	flagPayload   = 1
	intPayload    = 4
	lenPrefixSize = 4
)

// MaxEncodedSize is the worst-case encoding of a well-formed Record:
// five flag fields, two int fields, two strings at capacity and six
// blobs at capacity. Any well-formed Record encodes to at most this
// many bytes.
const MaxEncodedSize = 5*(tagSize+flagPayload) +
	2*(tagSize+intPayload) +
	2*(tagSize+lenPrefixSize+MaxStringLen-1) +
	6*(tagSize+lenPrefixSize+MaxBlobLen)

// -------------------------------------------------------------------------
// Codec Errors
// -------------------------------------------------------------------------

var (
	// ErrTruncated indicates the buffer ended mid-entry.
	ErrTruncated = errors.New("corpus buffer truncated mid-entry")

	// ErrUnknownTag indicates an entry whose tag is outside the fixed
	// enumeration. Entry payload sizes depend on the tag, so an unknown
	// tag makes the rest of the buffer unframeable.
	ErrUnknownTag = errors.New("unknown field tag")

	// ErrEncodeCapacity indicates the encoded record would exceed the
	// capacity supplied to Encode. No bytes are produced.
	ErrEncodeCapacity = errors.New("encoded record exceeds capacity")
)

// decodeErrPrefix is the common error prefix for decode failures.
const decodeErrPrefix = "decode record"

// -------------------------------------------------------------------------
// Decode
// -------------------------------------------------------------------------

// Decode parses an encoded corpus buffer into a Record.
//
// Decoding is order independent: entries may appear in any order, and a
// tag absent from the buffer leaves its field at the zero default. When
// a tag appears more than once the first occurrence wins. Decode fails
// entirely — no partially populated Record is returned — when the buffer
// is truncated mid-entry, contains an unknown tag, or declares a
// string/blob length above the field's capacity.
func Decode(buf []byte) (*Record, error) {
	rec := &Record{}
	var seen [TagEdDSA + 1]bool

	// Single linear pass, bucketing entries by tag. Equivalent to the
	// scan-per-tag contract: order independence and first-match-wins
	// are preserved.
	for off := 0; off < len(buf); {
		tag := Tag(buf[off])
		off += tagSize

		n, err := decodeEntry(tag, buf[off:], rec, &seen)
		if err != nil {
			return nil, fmt.Errorf("%s: tag 0x%02x at offset %d: %w",
				decodeErrPrefix, uint8(tag), off-tagSize, err)
		}
		off += n
	}

	return rec, nil
}

// decodeEntry parses one entry payload for tag from buf, populating the
// matching field of rec unless the tag was already seen. It returns the
// number of payload bytes consumed.
func decodeEntry(tag Tag, buf []byte, rec *Record, seen *[TagEdDSA + 1]bool) (int, error) {
	switch tag {
	case TagUV:
		return decodeFlag(tag, buf, &rec.UV, seen)
	case TagUP:
		return decodeFlag(tag, buf, &rec.UP, seen)
	case TagU2F:
		return decodeFlag(tag, buf, &rec.U2F, seen)
	case TagType:
		return decodeFlag(tag, buf, &rec.Type, seen)
	case TagCredCount:
		return decodeFlag(tag, buf, &rec.CredCount, seen)
	case TagExt:
		return decodeInt(tag, buf, &rec.Ext, seen)
	case TagSeed:
		return decodeInt(tag, buf, &rec.Seed, seen)
	case TagRPID:
		return decodeString(tag, buf, &rec.RPID, seen)
	case TagPIN:
		return decodeString(tag, buf, &rec.PIN, seen)
	case TagWireData:
		return decodeBlob(tag, buf, &rec.WireData, seen)
	case TagRS256:
		return decodeBlob(tag, buf, &rec.RS256, seen)
	case TagES256:
		return decodeBlob(tag, buf, &rec.ES256, seen)
	case TagEdDSA:
		return decodeBlob(tag, buf, &rec.EdDSA, seen)
	case TagCred:
		return decodeBlob(tag, buf, &rec.Cred, seen)
	case TagCDH:
		return decodeBlob(tag, buf, &rec.CDH, seen)
	default:
		return 0, ErrUnknownTag
	}
}

// decodeFlag parses a 1-byte flag payload.
func decodeFlag(tag Tag, buf []byte, dst *uint8, seen *[TagEdDSA + 1]bool) (int, error) {
	if len(buf) < flagPayload {
		return 0, ErrTruncated
	}
	if !seen[tag] {
		seen[tag] = true
		*dst = buf[0]
	}
	return flagPayload, nil
}

// decodeInt parses a 4-byte big-endian int32 payload.
func decodeInt(tag Tag, buf []byte, dst *int32, seen *[TagEdDSA + 1]bool) (int, error) {
	if len(buf) < intPayload {
		return 0, ErrTruncated
	}
	if !seen[tag] {
		seen[tag] = true
		*dst = int32(binary.BigEndian.Uint32(buf[:intPayload]))
	}
	return intPayload, nil
}

// decodeString parses a length-prefixed string payload. The declared
// length must leave room for the terminator (length < MaxStringLen).
func decodeString(tag Tag, buf []byte, dst *BoundedString, seen *[TagEdDSA + 1]bool) (int, error) {
	body, n, err := decodeLengthPrefixed(buf, MaxStringLen-1)
	if err != nil {
		return 0, err
	}
	if !seen[tag] {
		seen[tag] = true
		if err := dst.Set(body); err != nil {
			return 0, err
		}
	}
	return n, nil
}

// decodeBlob parses a length-prefixed blob payload.
func decodeBlob(tag Tag, buf []byte, dst *Blob, seen *[TagEdDSA + 1]bool) (int, error) {
	body, n, err := decodeLengthPrefixed(buf, MaxBlobLen)
	if err != nil {
		return 0, err
	}
	if !seen[tag] {
		seen[tag] = true
		if err := dst.Set(body); err != nil {
			return 0, err
		}
	}
	return n, nil
}

// decodeLengthPrefixed parses a 4-byte length followed by that many raw
// bytes. The declared length is validated against maxLen even for
// duplicate entries, so a malformed duplicate still fails the decode.
func decodeLengthPrefixed(buf []byte, maxLen int) (body []byte, n int, err error) {
	if len(buf) < lenPrefixSize {
		return nil, 0, ErrTruncated
	}
	declared := binary.BigEndian.Uint32(buf[:lenPrefixSize])
	if int64(declared) > int64(maxLen) {
		return nil, 0, fmt.Errorf("declared length %d exceeds capacity %d: %w",
			declared, maxLen, ErrBlobTooLong)
	}
	end := lenPrefixSize + int(declared)
	if len(buf) < end {
		return nil, 0, ErrTruncated
	}
	return buf[lenPrefixSize:end], end, nil
}

// -------------------------------------------------------------------------
// Encode
// -------------------------------------------------------------------------

// EncodedSize returns the exact number of bytes Encode produces for rec.
func EncodedSize(rec *Record) int {
	return 5*(tagSize+flagPayload) +
		2*(tagSize+intPayload) +
		2*(tagSize+lenPrefixSize) + rec.RPID.Len() + rec.PIN.Len() +
		6*(tagSize+lenPrefixSize) + rec.WireData.Len() + rec.RS256.Len() +
		rec.ES256.Len() + rec.EdDSA.Len() + rec.Cred.Len() + rec.CDH.Len()
}

// Encode serializes rec as an ordered sequence of tagged entries. The
// order is stable but carries no meaning on decode. Encode fails — and
// returns no bytes — if the result would exceed capacity; callers must
// treat that as "operation not performed", never as a truncated result.
func Encode(rec *Record, capacity int) ([]byte, error) {
	size := EncodedSize(rec)
	if size > capacity {
		return nil, fmt.Errorf("encode record: %d bytes, capacity %d: %w",
			size, capacity, ErrEncodeCapacity)
	}

	buf := make([]byte, 0, size)
	buf = appendFlag(buf, TagUV, rec.UV)
	buf = appendFlag(buf, TagUP, rec.UP)
	buf = appendFlag(buf, TagU2F, rec.U2F)
	buf = appendFlag(buf, TagType, rec.Type)
	buf = appendFlag(buf, TagCredCount, rec.CredCount)
	buf = appendInt(buf, TagExt, rec.Ext)
	buf = appendInt(buf, TagSeed, rec.Seed)
	buf = appendLengthPrefixed(buf, TagRPID, []byte(rec.RPID.String()))
	buf = appendLengthPrefixed(buf, TagPIN, []byte(rec.PIN.String()))
	buf = appendLengthPrefixed(buf, TagWireData, rec.WireData.Bytes())
	buf = appendLengthPrefixed(buf, TagRS256, rec.RS256.Bytes())
	buf = appendLengthPrefixed(buf, TagES256, rec.ES256.Bytes())
	buf = appendLengthPrefixed(buf, TagEdDSA, rec.EdDSA.Bytes())
	buf = appendLengthPrefixed(buf, TagCred, rec.Cred.Bytes())
	buf = appendLengthPrefixed(buf, TagCDH, rec.CDH.Bytes())

	return buf, nil
}

func appendFlag(buf []byte, tag Tag, v uint8) []byte {
	return append(buf, byte(tag), v)
}

func appendInt(buf []byte, tag Tag, v int32) []byte {
	buf = append(buf, byte(tag))
	return binary.BigEndian.AppendUint32(buf, uint32(v))
}

func appendLengthPrefixed(buf []byte, tag Tag, body []byte) []byte {
	buf = append(buf, byte(tag))
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(body)))
	return append(buf, body...)
}
