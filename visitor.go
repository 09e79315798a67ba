package daffodil

// Visitor is implemented by anything that consumes an already-parsed
// infoset tree by walking it — an XML writer, a structural comparator,
// a debugging dumper. Walk drives a Visitor depth-first; a non-nil
// error from any method short-circuits the walk and is returned from
// Walk unchanged.
type Visitor interface {
	VisitStartDocument() error
	VisitEndDocument() error
	VisitComplexStart(erd *ERD) error
	VisitComplexEnd(erd *ERD) error
	VisitChoiceStart(erd *ERD, branch *ERD) error
	VisitChoiceEnd(erd *ERD) error
	VisitArrayStart(erd *ERD, count int) error
	VisitArrayEnd(erd *ERD) error
	VisitSimple(erd *ERD, value interface{}) error
}

// Walk drives visitor over the infoset rooted at root, using root's own
// ERD (root.Base().ERD) as the starting descriptor. Per spec §6.1's
// walk_infoset algorithm, VisitStartDocument runs before anything else
// and short-circuits the whole walk on error; VisitEndDocument runs
// only once the tree itself has been visited without error.
func Walk(root InfosetNode, visitor Visitor) error {
	if err := visitor.VisitStartDocument(); err != nil {
		return err
	}
	if err := walkNode(root.Base().ERD, root, visitor); err != nil {
		return err
	}
	return visitor.VisitEndDocument()
}

// walkNode dispatches on erd.TypeCode, recursing into children,
// choice branches or array elements as appropriate. For a primitive
// TypeCode node is passed to VisitSimple as is; walkValue handles
// primitive leaves itself, so only Walk's root can reach that case.
func walkNode(erd *ERD, node InfosetNode, visitor Visitor) error {
	switch erd.TypeCode {
	case COMPLEX:
		return walkComplex(erd, node, visitor)
	case CHOICE:
		return walkChoice(erd, node, visitor)
	case ARRAY:
		return walkArray(erd, node, visitor)
	default:
		return visitor.VisitSimple(erd, node)
	}
}

func walkComplex(erd *ERD, node InfosetNode, visitor Visitor) error {
	if err := visitor.VisitComplexStart(erd); err != nil {
		return err
	}
	for _, child := range erd.Children {
		v := child.Get(node)
		if err := walkValue(child.ERD, v, visitor); err != nil {
			return err
		}
	}
	return visitor.VisitComplexEnd(erd)
}

func walkChoice(erd *ERD, node InfosetNode, visitor Visitor) error {
	value, branchIndex, ok := erd.InitChoice(node)
	if !ok {
		return NewErrorInt(ErrChoiceKey, int64(branchIndex))
	}
	branch := erd.branchByIndex(branchIndex)
	if err := visitor.VisitChoiceStart(erd, branch); err != nil {
		return err
	}
	if err := walkValue(branch, value, visitor); err != nil {
		return err
	}
	return visitor.VisitChoiceEnd(erd)
}

func walkArray(erd *ERD, node InfosetNode, visitor Visitor) error {
	count := erd.ArraySize(node)
	if err := visitor.VisitArrayStart(erd, count); err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		v := erd.ArrayGet(node, i)
		if err := walkValue(erd.Element, v, visitor); err != nil {
			return err
		}
	}
	return visitor.VisitArrayEnd(erd)
}

// walkValue dispatches a value produced by ChildField.Get/ArrayGet: an
// InfosetNode for structural element ERDs, or a bare scalar for
// primitive ones.
func walkValue(erd *ERD, value interface{}, visitor Visitor) error {
	if erd.TypeCode.IsPrimitive() {
		return visitor.VisitSimple(erd, value)
	}
	node, ok := value.(InfosetNode)
	if !ok {
		return visitor.VisitSimple(erd, value)
	}
	return walkNode(erd, node, visitor)
}
