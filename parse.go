package daffodil

import "io"

// Parseable is implemented by the root element of a generated schema.
// parseSelf reads exactly this element (and, recursively, its
// children) from ps, populating the receiver in place.
type Parseable interface {
	InfosetNode
	parseSelf(ps *PState) *Error
}

// ParseData parses a single root element from r, per spec §4.5: it
// builds a PState, calls root's generated parseSelf, and — once the
// root has fully parsed — checks for leftover data. The returned
// Diagnostics is always non-nil even when err is nil, so callers can
// inspect soft validation failures on a fully successful parse.
func ParseData(r io.Reader, root Parseable) (*Diagnostics, *Error) {
	ps := NewPState(r)
	if err := root.parseSelf(ps); err != nil {
		return &ps.Diagnostics, err
	}
	if err := ps.NoLeftoverData(); err != nil {
		return &ps.Diagnostics, ps.Fail(err)
	}
	return &ps.Diagnostics, nil
}
