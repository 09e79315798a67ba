package daffodil

import (
	"io"
	"math"
)

// Endian selects the byte order a primitive is read or written in.
// Bit order within a byte is always most-significant-bit-first,
// independent of Endian — only the placement of whole bytes within a
// multi-byte field changes.
type Endian uint8

const (
	BigEndian Endian = iota
	LittleEndian
)

// DefaultMaxDepth bounds nested parseSelf/unparseSelf recursion. It
// guards against a pathological or adversarial schema-compiled call
// chain; see SPEC_FULL §3.
const DefaultMaxDepth = 1 << 16

// PState carries everything a parse of a single byte stream needs:
// the bit-granular read cursor, accumulated diagnostics, the first
// fatal error encountered (if any), and a recursion-depth budget.
// A PState is used for exactly one parse and must not be shared
// across concurrent parses.
type PState struct {
	bitReader
	Diagnostics Diagnostics
	Error       *Error
	depth       int
}

// NewPState builds a PState reading from r, with the default
// recursion-depth guard.
func NewPState(r io.Reader) *PState {
	return &PState{
		bitReader: bitReader{r: r},
		depth:     DefaultMaxDepth,
	}
}

// Fail records err as the first fatal error seen, short-circuiting any
// later fatal error (first-error-wins, per spec §3/§5). It returns the
// recorded error (err itself unless an earlier one was already set) for
// a convenient "return ps.Fail(err)" idiom.
func (ps *PState) Fail(err *Error) *Error {
	if ps.Error == nil {
		ps.Error = err
	}
	return ps.Error
}

// Failed reports whether a fatal error has already been recorded.
func (ps *PState) Failed() bool { return ps.Error != nil }

// EnterElement decrements the recursion budget, returning ErrMaxDepth
// once it is exhausted. Generated code calls this at the top of every
// parseSelf before recursing into children.
func (ps *PState) EnterElement() *Error {
	if ps.depth <= 0 {
		return ps.Fail(NewError(ErrMaxDepth))
	}
	ps.depth--
	return nil
}

// LeaveElement restores one unit of recursion budget on return from a
// parseSelf call, mirroring EnterElement.
func (ps *PState) LeaveElement() { ps.depth++ }

// UState is the unparse-side mirror of PState.
type UState struct {
	bitWriter
	Diagnostics Diagnostics
	Error       *Error
	depth       int
}

// NewUState builds a UState writing to w, with the default
// recursion-depth guard.
func NewUState(w io.Writer) *UState {
	return &UState{
		bitWriter: bitWriter{w: w},
		depth:     DefaultMaxDepth,
	}
}

// Fail records err as the first fatal error seen.
func (us *UState) Fail(err *Error) *Error {
	if us.Error == nil {
		us.Error = err
	}
	return us.Error
}

// Failed reports whether a fatal error has already been recorded.
func (us *UState) Failed() bool { return us.Error != nil }

// EnterElement decrements the recursion budget, returning ErrMaxDepth
// once it is exhausted.
func (us *UState) EnterElement() *Error {
	if us.depth <= 0 {
		return us.Fail(NewError(ErrMaxDepth))
	}
	us.depth--
	return nil
}

// LeaveElement restores one unit of recursion budget.
func (us *UState) LeaveElement() { us.depth++ }

// ParseInt reads a numBits-wide signed integer of the given endianness
// and returns it sign-extended to int64.
func (ps *PState) ParseInt(numBits int, endian Endian) (int64, *Error) {
	raw, err := ps.readPrimitive(numBits, endian)
	if err != nil {
		return 0, ps.Fail(err)
	}
	return signExtend(raw, numBits), nil
}

// ParseUint reads a numBits-wide unsigned integer of the given
// endianness.
func (ps *PState) ParseUint(numBits int, endian Endian) (uint64, *Error) {
	raw, err := ps.readPrimitive(numBits, endian)
	if err != nil {
		return 0, ps.Fail(err)
	}
	return raw, nil
}

// ParseBool reads a numBits-wide field and matches it against trueRep
// and falseRep, failing with ErrParseBool if it matches neither. A
// negative trueRep is the "no true_rep" variant: any value other than
// falseRep is true.
func (ps *PState) ParseBool(numBits int, trueRep int64, falseRep uint64, endian Endian) (bool, *Error) {
	raw, err := ps.readPrimitive(numBits, endian)
	if err != nil {
		return false, ps.Fail(err)
	}
	if trueRep < 0 {
		return raw != falseRep, nil
	}
	switch raw {
	case uint64(trueRep):
		return true, nil
	case falseRep:
		return false, nil
	default:
		return false, ps.Fail(NewErrorInt(ErrParseBool, int64(raw)))
	}
}

// ParseFloat reads a 32-bit field of the given endianness and
// reinterprets its bits as an IEEE-754 single-precision float, per
// spec §4.1: floats are read as integers of matching width and
// reinterpreted, never parsed as textual numbers.
func (ps *PState) ParseFloat(endian Endian) (float32, *Error) {
	raw, err := ps.readPrimitive(32, endian)
	if err != nil {
		return 0, ps.Fail(err)
	}
	return math.Float32frombits(uint32(raw)), nil
}

// ParseDouble reads a 64-bit field of the given endianness and
// reinterprets its bits as an IEEE-754 double-precision float.
func (ps *PState) ParseDouble(endian Endian) (float64, *Error) {
	raw, err := ps.readPrimitive(64, endian)
	if err != nil {
		return 0, ps.Fail(err)
	}
	return math.Float64frombits(raw), nil
}

func (ps *PState) readPrimitive(numBits int, endian Endian) (uint64, *Error) {
	if endian == LittleEndian {
		return ps.ReadPrimitiveLE(numBits)
	}
	return ps.ReadPrimitiveBE(numBits)
}

// UnparseInt writes a numBits-wide signed integer of the given
// endianness, truncating v to its low numBits bits.
func (us *UState) UnparseInt(v int64, numBits int, endian Endian) *Error {
	return us.writePrimitive(uint64(v), numBits, endian)
}

// UnparseUint writes a numBits-wide unsigned integer of the given
// endianness.
func (us *UState) UnparseUint(v uint64, numBits int, endian Endian) *Error {
	return us.writePrimitive(v, numBits, endian)
}

// UnparseBool writes trueRep or falseRep depending on v.
func (us *UState) UnparseBool(v bool, numBits int, trueRep, falseRep uint64, endian Endian) *Error {
	rep := falseRep
	if v {
		rep = trueRep
	}
	return us.writePrimitive(rep, numBits, endian)
}

// UnparseFloat writes v as a 32-bit field of the given endianness by
// reinterpreting its IEEE-754 bits as an unsigned integer, the
// unparse-side mirror of ParseFloat.
func (us *UState) UnparseFloat(v float32, endian Endian) *Error {
	return us.writePrimitive(uint64(math.Float32bits(v)), 32, endian)
}

// UnparseDouble writes v as a 64-bit field of the given endianness by
// reinterpreting its IEEE-754 bits as an unsigned integer.
func (us *UState) UnparseDouble(v float64, endian Endian) *Error {
	return us.writePrimitive(math.Float64bits(v), 64, endian)
}

func (us *UState) writePrimitive(v uint64, numBits int, endian Endian) *Error {
	var err *Error
	if endian == LittleEndian {
		err = us.WritePrimitiveLE(v, numBits)
	} else {
		err = us.WritePrimitiveBE(v, numBits)
	}
	if err != nil {
		return us.Fail(err)
	}
	return nil
}
