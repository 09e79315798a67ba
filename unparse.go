package daffodil

import "io"

// Unparseable is implemented by the root element of a generated
// schema. unparseSelf writes exactly this element (and, recursively,
// its children) to us.
type Unparseable interface {
	InfosetNode
	unparseSelf(us *UState) *Error
}

// UnparseInfoset unparses root to w, per spec §4.5: it builds a
// UState, calls root's generated unparseSelf, and flushes any pending
// sub-byte fragment so the output stream ends byte-aligned. The
// returned Diagnostics is always non-nil even when err is nil.
func UnparseInfoset(w io.Writer, root Unparseable) (*Diagnostics, *Error) {
	us := NewUState(w)
	if err := root.unparseSelf(us); err != nil {
		return &us.Diagnostics, err
	}
	if err := us.FlushFragmentByte(); err != nil {
		return &us.Diagnostics, us.Fail(err)
	}
	return &us.Diagnostics, nil
}
