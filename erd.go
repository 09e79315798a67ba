package daffodil

// ChildField describes one statically-known member of a COMPLEX
// element: its own ERD plus an accessor that reaches the child's
// current value from the parent. Generated code supplies Get as a
// closure over the concrete struct field rather than a byte offset —
// the original ERD used a raw offset into the parent struct, which
// Go's garbage collector and type system make both unsafe and
// unnecessary; an accessor function is the idiomatic replacement the
// walker and parser/unparser are built against.
//
// Get returns an InfosetNode when ERD.TypeCode is COMPLEX, CHOICE or
// ARRAY, and a plain scalar (a Go integer of the field's width, a
// float32/float64, a bool, or []byte for HEXBINARY) when ERD.TypeCode is
// primitive. The walker sends every primitive TypeCode straight to
// VisitSimple; for a structural TypeCode it recurses when the result is
// an InfosetNode and otherwise also hands the value to VisitSimple.
type ChildField struct {
	ERD *ERD
	Get func(parent InfosetNode) interface{}
}

// InitChoiceFunc evaluates a CHOICE element's discriminator against
// parent and returns the branch that should be active, along with the
// branch's index into ERD.ChoiceBranches and the branch's current
// value (an InfosetNode or scalar, per ChildField.Get's convention).
// It returns ok=false (and the caller raises ErrChoiceKey) when no
// branch matches the discriminator.
type InitChoiceFunc func(parent InfosetNode) (value interface{}, branchIndex int, ok bool)

// ArraySizeFunc returns the occurrence count an ARRAY element's parent
// has already computed or declared (e.g. from a preceding length
// field), for the array-bounds check in spec §4.2.
type ArraySizeFunc func(parent InfosetNode) int

// ArrayGetFunc reaches the i-th element's value from an array's
// parent, following ChildField.Get's InfosetNode-or-scalar convention.
type ArrayGetFunc func(parent InfosetNode, i int) interface{}

// ERD (element runtime data) is the per-element descriptor the walker
// and parser/unparser read to know an element's shape. One ERD exists
// per distinct element in the compiled schema; ERDs form a tree
// mirroring the infoset shape, not a tree of live instances.
type ERD struct {
	Name     NamedQName
	TypeCode TypeCode

	// Children is populated for TypeCode == COMPLEX.
	Children []ChildField

	// InitChoice and ChoiceBranches are populated for TypeCode == CHOICE.
	InitChoice     InitChoiceFunc
	ChoiceBranches []*ERD

	// ArraySize, ArrayGet, Element, MinOccurs and MaxOccurs are populated
	// for TypeCode == ARRAY.
	ArraySize ArraySizeFunc
	ArrayGet  ArrayGetFunc
	Element   *ERD
	MinOccurs int
	MaxOccurs int

	// FixedValue and Enum are populated for primitive TypeCodes that
	// carry a fixed-value or enumeration validation constraint (spec
	// §4.2); nil means no constraint.
	FixedValue *FixedValue
	Enum       *Enumeration

	// Endian selects byte order for primitive TypeCodes; meaningless
	// for COMPLEX/CHOICE/ARRAY/HEXBINARY.
	Endian Endian

	// TrueRep/FalseRep hold the wire representations for TypeCode ==
	// BOOLEAN.
	TrueRep, FalseRep uint64
}

// branchByIndex returns the ERD of the choice branch at idx, or nil if
// idx is NoChoice or out of range.
func (e *ERD) branchByIndex(idx int) *ERD {
	if idx < 0 || idx >= len(e.ChoiceBranches) {
		return nil
	}
	return e.ChoiceBranches[idx]
}
