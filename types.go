package daffodil

import "fmt"

// NamedQName identifies an infoset element by an optional prefix, a
// required local name, and an optional namespace URI.
type NamedQName struct {
	Prefix       string
	Local        string
	NamespaceURI string
}

// NewNamedQName builds a NamedQName, panicking if local is empty. local is
// never allowed to be empty: it is the one invariant the generated ERD
// tables must uphold.
func NewNamedQName(prefix, local, namespaceURI string) NamedQName {
	if local == "" {
		panic("daffodil: NamedQName.Local must not be empty")
	}
	return NamedQName{Prefix: prefix, Local: local, NamespaceURI: namespaceURI}
}

// String renders the lexical name, "prefix:local" when a prefix is set.
func (n NamedQName) String() string {
	if n.Prefix == "" {
		return n.Local
	}
	return n.Prefix + ":" + n.Local
}

// TypeCode is the closed enumeration of infoset node shapes.
type TypeCode uint8

const (
	COMPLEX TypeCode = iota
	CHOICE
	ARRAY
	BOOLEAN
	FLOAT
	DOUBLE
	HEXBINARY
	INT8
	INT16
	INT32
	INT64
	UINT8
	UINT16
	UINT32
	UINT64
)

func (t TypeCode) String() string {
	switch t {
	case COMPLEX:
		return "COMPLEX"
	case CHOICE:
		return "CHOICE"
	case ARRAY:
		return "ARRAY"
	case BOOLEAN:
		return "BOOLEAN"
	case FLOAT:
		return "FLOAT"
	case DOUBLE:
		return "DOUBLE"
	case HEXBINARY:
		return "HEXBINARY"
	case INT8:
		return "INT8"
	case INT16:
		return "INT16"
	case INT32:
		return "INT32"
	case INT64:
		return "INT64"
	case UINT8:
		return "UINT8"
	case UINT16:
		return "UINT16"
	case UINT32:
		return "UINT32"
	case UINT64:
		return "UINT64"
	default:
		return fmt.Sprintf("TypeCode(%d)", uint8(t))
	}
}

// IsPrimitive reports whether t is a leaf value type rather than a
// structural node (COMPLEX, CHOICE, ARRAY).
func (t TypeCode) IsPrimitive() bool {
	switch t {
	case COMPLEX, CHOICE, ARRAY:
		return false
	default:
		return true
	}
}

// StorageBits returns the storage width, in bits, of the primitive's
// in-memory representation. The bit codec does not call it: the
// primitive readers and writers take the field width as an argument.
func (t TypeCode) StorageBits() int {
	switch t {
	case BOOLEAN:
		return 32
	case FLOAT:
		return 32
	case DOUBLE:
		return 64
	case INT8, UINT8:
		return 8
	case INT16, UINT16:
		return 16
	case INT32, UINT32:
		return 32
	case INT64, UINT64:
		return 64
	default:
		panic(fmt.Sprintf("daffodil: %v has no storage width", t))
	}
}

// Signed reports whether t is read with an arithmetic (sign-preserving)
// shift rather than a logical one.
func (t TypeCode) Signed() bool {
	switch t {
	case INT8, INT16, INT32, INT64:
		return true
	default:
		return false
	}
}

// InfosetBase is embedded as the first member of every generated infoset
// record. It carries the back-pointer to the record's ERD and a parent
// back-pointer. The seed records' parseSelf methods set ERD only; Parent
// is left nil, including on the root.
type InfosetBase struct {
	ERD    *ERD
	Parent InfosetNode
}

// Base returns b itself, so any record that embeds InfosetBase satisfies
// InfosetNode through the promoted method. The seed records also define
// Base explicitly, returning &r.InfosetBase, which is the same pointer.
func (b *InfosetBase) Base() *InfosetBase { return b }

// InfosetNode is implemented by every generated record type (complex,
// choice, array-element, or primitive wrapper) and by the root. It is
// the capability the walker, parser and unparser need: a way to reach
// the node's ERD and parent without raw pointer-offset arithmetic.
type InfosetNode interface {
	Base() *InfosetBase
}

// NoChoice is the sentinel stored in a choice slot before a discriminator
// has been evaluated, or after evaluation finds no matching branch.
const NoChoice = -1
