// Package arm64 provides AArch64 (ARM64) machine code encoding utilities.
// This package has no dependency on compiler internals and can be used
// standalone for generating AArch64 instruction words.
package arm64

import "encoding/binary"

// Word is a single little-endian AArch64 instruction (always 4 bytes).
type Word = uint32

// Encode appends the little-endian bytes of a 32-bit instruction word.
func Encode(buf []byte, w Word) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], w)
	return append(buf, tmp[:]...)
}

// Cond is an AArch64 condition code, used by the b.cond family.
type Cond uint32

// Condition codes relevant to this package; the full table has sixteen
// entries but only these are ever emitted by the generator.
const (
	CondEQ Cond = 0x0 // equal / zero
	CondNE Cond = 0x1 // not equal / non-zero
	CondHS Cond = 0x2 // unsigned higher-or-same (carry set)
	CondMI Cond = 0x4 // negative (minus)
)
