package normalize

import (
	"fmt"
	"unicode/utf16"
)

const (
	fnvOffset32 = 0x811c9dc5
	fnvPrime32  = 0x01000193
)

// ClinicID derives the stable identifier of a clinic from its source region
// text, name and address.
//
// The normalized fields are joined with "|" and hashed with 32-bit FNV-1a,
// rendered as 8 zero-padded lowercase hex digits. The hash consumes UTF-16
// code units rather than bytes so ids match the ones the web client computes
// for the same record. For ASCII input this is plain FNV-1a.
//
// 32 bits are not collision free. For a dataset in the low thousands the odds
// are acceptable and no collision resolution is attempted.
func ClinicID(region, name, address string) string {
	key := Field(region) + idSeparator + Field(name) + idSeparator + Field(address)
	return fmt.Sprintf("%08x", fnv1a32UTF16(key))
}

func fnv1a32UTF16(s string) uint32 {
	h := uint32(fnvOffset32)
	for _, unit := range utf16.Encode([]rune(s)) {
		h ^= uint32(unit)
		h *= fnvPrime32
	}
	return h
}
