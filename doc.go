// Package daffodil implements the runtime library that supports generated
// code produced by a schema-driven binary-data-format compiler. Given a
// schema describing a family of binary record formats, the compiler emits
// per-schema glue that pairs typed record structures with element runtime
// data (ERD) descriptors and calls into this package to parse a byte stream
// into an infoset, walk that infoset, and unparse it back into bytes.
//
// The package is organized the way the generated code expects to use it:
// a bit-granular codec (ReadBits/WriteBits and the primitive helpers built
// on top of them), an ERD/infoset model describing the shape of a record
// tree, a depth-first walker that drives a pluggable Visitor, and the
// PState/UState machines that track position, errors and diagnostics
// across a single parse or unparse run.
package daffodil
