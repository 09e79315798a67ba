package daffodil

// HexBinary holds an opaque byte payload, either a fixed-length field
// sized by its ERD or a dynamic one grown at parse time (spec §9).
// Because this runtime runs under a garbage collector, a dynamic
// buffer's prior contents become collectible the moment Data is
// reassigned — there is no separate free step to model.
type HexBinary struct {
	Data    []byte
	Dynamic bool
}

// MaxHexBinaryAlloc bounds a single dynamic hexBinary allocation. It
// exists purely so AllocHexBinary has an ErrHexBinaryAlloc path to
// exercise — parity with the original allocator's failure mode — even
// though a Go slice append has no realistic way to fail short of
// exhausting the process.
const MaxHexBinaryAlloc = 1 << 28

// AllocHexBinary (a) grows h to hold n bytes if h is Dynamic, reusing
// the backing array when it is already large enough, or (b) checks
// that n matches h's existing fixed length. It fails with
// ErrHexBinaryAlloc if n exceeds MaxHexBinaryAlloc or, for a
// fixed-length field, if n does not match the ERD-declared length.
func AllocHexBinary(h *HexBinary, n int) *Error {
	if n < 0 || n > MaxHexBinaryAlloc {
		return NewErrorInt(ErrHexBinaryAlloc, int64(n))
	}
	if !h.Dynamic {
		if len(h.Data) != n {
			return NewErrorInt(ErrHexBinaryAlloc, int64(n))
		}
		return nil
	}
	if cap(h.Data) >= n {
		h.Data = h.Data[:n]
		return nil
	}
	h.Data = make([]byte, n)
	return nil
}

// ReadHexBinary allocates h to n bytes and fills it byte-aligned from
// the parse stream.
func ReadHexBinary(ps *PState, h *HexBinary, n int) *Error {
	if err := AllocHexBinary(h, n); err != nil {
		return ps.Fail(err)
	}
	if err := ps.AlignTo(8); err != nil {
		return ps.Fail(err)
	}
	for i := range h.Data {
		b, err := ps.ReadBits(8)
		if err != nil {
			return ps.Fail(err)
		}
		h.Data[i] = byte(b)
	}
	return nil
}

// WriteHexBinary writes h byte-aligned to the unparse stream.
func WriteHexBinary(us *UState, h *HexBinary) *Error {
	if err := us.AlignTo(8); err != nil {
		return us.Fail(err)
	}
	for _, b := range h.Data {
		if err := us.WriteBits(uint64(b), 8); err != nil {
			return us.Fail(err)
		}
	}
	return nil
}
