package daffodil

// seedNamespace is the namespace URI carried by the root element of
// every seed schema's ERD, exercised by xmlio.Writer's root-only
// xmlns placement.
const seedNamespace = "urn:dfdl-go:seeds"

// The types in this file are the concrete
// example schemas spec §8 describes. They show the calling convention
// generated code follows (embed InfosetBase, implement Base(), hand-
// write parseSelf/unparseSelf against PState/UState) and are exported
// so both this package's own tests and the scenario/cmd packages can
// drive them by name without duplicating the definitions.

// SimpleByte is seed scenario 1: a single byte field.
type SimpleByte struct {
	InfosetBase
	Value uint8
}

func (r *SimpleByte) Base() *InfosetBase { return &r.InfosetBase }

var simpleByteERD = &ERD{
	Name:     NewNamedQName("", "simpleByte", seedNamespace),
	TypeCode: COMPLEX,
	Children: []ChildField{
		{
			ERD: &ERD{Name: NewNamedQName("", "value", ""), TypeCode: UINT8},
			Get: func(p InfosetNode) interface{} { return p.(*SimpleByte).Value },
		},
	},
}

func (r *SimpleByte) parseSelf(ps *PState) *Error {
	r.ERD = simpleByteERD
	v, err := ps.ParseUint(8, BigEndian)
	if err != nil {
		return err
	}
	r.Value = uint8(v)
	return nil
}

func (r *SimpleByte) unparseSelf(us *UState) *Error {
	return us.UnparseUint(uint64(r.Value), 8, BigEndian)
}

// MixedEndian is seed scenario 2: one record with a big-endian and a
// little-endian field side by side.
type MixedEndian struct {
	InfosetBase
	A int32
	B uint16
}

func (r *MixedEndian) Base() *InfosetBase { return &r.InfosetBase }

var mixedEndianERD = &ERD{
	Name:     NewNamedQName("", "mixedEndian", seedNamespace),
	TypeCode: COMPLEX,
	Children: []ChildField{
		{
			ERD: &ERD{Name: NewNamedQName("", "a", ""), TypeCode: INT32, Endian: BigEndian},
			Get: func(p InfosetNode) interface{} { return p.(*MixedEndian).A },
		},
		{
			ERD: &ERD{Name: NewNamedQName("", "b", ""), TypeCode: UINT16, Endian: LittleEndian},
			Get: func(p InfosetNode) interface{} { return p.(*MixedEndian).B },
		},
	},
}

func (r *MixedEndian) parseSelf(ps *PState) *Error {
	r.ERD = mixedEndianERD
	a, err := ps.ParseInt(32, BigEndian)
	if err != nil {
		return err
	}
	r.A = int32(a)
	b, err := ps.ParseUint(16, LittleEndian)
	if err != nil {
		return err
	}
	r.B = uint16(b)
	return nil
}

func (r *MixedEndian) unparseSelf(us *UState) *Error {
	if err := us.UnparseInt(int64(r.A), 32, BigEndian); err != nil {
		return err
	}
	return us.UnparseUint(uint64(r.B), 16, LittleEndian)
}

// Signed17 is seed scenario 3: a 17-bit signed big-endian integer
// followed by zero padding bits up to the next byte boundary.
type Signed17 struct {
	InfosetBase
	Value int64
}

func (r *Signed17) Base() *InfosetBase { return &r.InfosetBase }

var signed17ERD = &ERD{
	Name:     NewNamedQName("", "signed17", seedNamespace),
	TypeCode: COMPLEX,
	Children: []ChildField{
		{
			ERD: &ERD{Name: NewNamedQName("", "value", ""), TypeCode: INT64, Endian: BigEndian},
			Get: func(p InfosetNode) interface{} { return p.(*Signed17).Value },
		},
	},
}

func (r *Signed17) parseSelf(ps *PState) *Error {
	r.ERD = signed17ERD
	v, err := ps.ParseInt(17, BigEndian)
	if err != nil {
		return err
	}
	r.Value = v
	if err := ps.AlignTo(8); err != nil {
		return ps.Fail(err)
	}
	return nil
}

func (r *Signed17) unparseSelf(us *UState) *Error {
	return us.UnparseInt(r.Value, 17, BigEndian)
}

// VarArrayMinOccurs and VarArrayMaxOccurs bound VarArray's Items, for
// seed scenario 4.
const (
	VarArrayMinOccurs = 1
	VarArrayMaxOccurs = 5
)

// VarArray is seed scenario 4: a leading count byte followed by that
// many data bytes, bounds-checked against [VarArrayMinOccurs,
// VarArrayMaxOccurs].
type VarArray struct {
	InfosetBase
	Count uint8
	Items []uint8
}

func (r *VarArray) Base() *InfosetBase { return &r.InfosetBase }

var varArrayItemERD = &ERD{Name: NewNamedQName("", "item", ""), TypeCode: UINT8}

var varArrayERD = &ERD{
	Name:     NewNamedQName("", "varArray", seedNamespace),
	TypeCode: COMPLEX,
	Children: []ChildField{
		{
			ERD: &ERD{Name: NewNamedQName("", "count", ""), TypeCode: UINT8},
			Get: func(p InfosetNode) interface{} { return p.(*VarArray).Count },
		},
		{
			ERD: &ERD{
				Name:      NewNamedQName("", "items", ""),
				TypeCode:  ARRAY,
				Element:   varArrayItemERD,
				MinOccurs: VarArrayMinOccurs,
				MaxOccurs: VarArrayMaxOccurs,
				ArraySize: func(p InfosetNode) int { return len(p.(*VarArray).Items) },
				ArrayGet: func(p InfosetNode, i int) interface{} {
					return p.(*VarArray).Items[i]
				},
			},
			Get: func(p InfosetNode) interface{} { return p },
		},
	},
}

func (r *VarArray) parseSelf(ps *PState) *Error {
	r.ERD = varArrayERD
	c, err := ps.ParseUint(8, BigEndian)
	if err != nil {
		return err
	}
	r.Count = uint8(c)
	if err := ValidateArrayBounds(int(r.Count), VarArrayMinOccurs, VarArrayMaxOccurs); err != nil {
		return ps.Fail(err)
	}
	r.Items = make([]uint8, r.Count)
	for i := range r.Items {
		v, err := ps.ParseUint(8, BigEndian)
		if err != nil {
			return err
		}
		r.Items[i] = uint8(v)
	}
	return nil
}

func (r *VarArray) unparseSelf(us *UState) *Error {
	if err := ValidateArrayBounds(len(r.Items), VarArrayMinOccurs, VarArrayMaxOccurs); err != nil {
		return us.Fail(err)
	}
	if err := us.UnparseUint(uint64(len(r.Items)), 8, BigEndian); err != nil {
		return err
	}
	for _, v := range r.Items {
		if err := us.UnparseUint(uint64(v), 8, BigEndian); err != nil {
			return err
		}
	}
	return nil
}

// Choice tag values for ChoiceRecord, seed scenario 5 ("nested
// union"): tags 1 and 2 both select the foo variant, tags 3 and 4
// both select the bar variant, any other tag is ErrChoiceKey.
const (
	ChoiceTagFooA = 1
	ChoiceTagFooB = 2
	ChoiceTagBarA = 3
	ChoiceTagBarB = 4
)

// barGroup is the bar variant of ChoiceRecord: three big-endian
// doubles, walked as bar/x, bar/y, bar/z.
type barGroup struct {
	InfosetBase
	X, Y, Z float64
}

func (b *barGroup) Base() *InfosetBase { return &b.InfosetBase }

// ChoiceRecord is seed scenario 5: a tag byte that dispatches to
// either a scalar int32 (foo) or a three-double group (bar), failing
// with ErrChoiceKey for any other tag.
type ChoiceRecord struct {
	InfosetBase
	Tag uint8
	Foo int32
	Bar barGroup
}

func (r *ChoiceRecord) Base() *InfosetBase { return &r.InfosetBase }

var choiceRecordFooBranchERD = &ERD{Name: NewNamedQName("", "foo", ""), TypeCode: INT32, Endian: BigEndian}

var choiceRecordBarBranchERD = &ERD{
	Name:     NewNamedQName("", "bar", ""),
	TypeCode: COMPLEX,
	Children: []ChildField{
		{
			ERD: &ERD{Name: NewNamedQName("", "x", ""), TypeCode: DOUBLE, Endian: BigEndian},
			Get: func(p InfosetNode) interface{} { return p.(*barGroup).X },
		},
		{
			ERD: &ERD{Name: NewNamedQName("", "y", ""), TypeCode: DOUBLE, Endian: BigEndian},
			Get: func(p InfosetNode) interface{} { return p.(*barGroup).Y },
		},
		{
			ERD: &ERD{Name: NewNamedQName("", "z", ""), TypeCode: DOUBLE, Endian: BigEndian},
			Get: func(p InfosetNode) interface{} { return p.(*barGroup).Z },
		},
	},
}

var choiceRecordChoiceERD = &ERD{
	Name:           NewNamedQName("", "body", ""),
	TypeCode:       CHOICE,
	ChoiceBranches: []*ERD{choiceRecordFooBranchERD, choiceRecordBarBranchERD},
	InitChoice: func(p InfosetNode) (interface{}, int, bool) {
		r := p.(*ChoiceRecord)
		switch r.Tag {
		case ChoiceTagFooA, ChoiceTagFooB:
			return r.Foo, 0, true
		case ChoiceTagBarA, ChoiceTagBarB:
			return &r.Bar, 1, true
		default:
			return nil, int(r.Tag), false
		}
	},
}

var choiceRecordERD = &ERD{
	Name:     NewNamedQName("", "choiceRecord", seedNamespace),
	TypeCode: COMPLEX,
	Children: []ChildField{
		{
			ERD: &ERD{Name: NewNamedQName("", "tag", ""), TypeCode: UINT8},
			Get: func(p InfosetNode) interface{} { return p.(*ChoiceRecord).Tag },
		},
		{
			ERD: choiceRecordChoiceERD,
			Get: func(p InfosetNode) interface{} { return p },
		},
	},
}

func (r *ChoiceRecord) parseSelf(ps *PState) *Error {
	r.ERD = choiceRecordERD
	tag, err := ps.ParseUint(8, BigEndian)
	if err != nil {
		return err
	}
	r.Tag = uint8(tag)
	switch r.Tag {
	case ChoiceTagFooA, ChoiceTagFooB:
		v, err := ps.ParseInt(32, BigEndian)
		if err != nil {
			return err
		}
		r.Foo = int32(v)
	case ChoiceTagBarA, ChoiceTagBarB:
		x, err := ps.ParseDouble(BigEndian)
		if err != nil {
			return err
		}
		y, err := ps.ParseDouble(BigEndian)
		if err != nil {
			return err
		}
		z, err := ps.ParseDouble(BigEndian)
		if err != nil {
			return err
		}
		r.Bar.X, r.Bar.Y, r.Bar.Z = x, y, z
	default:
		return ps.Fail(NewErrorInt(ErrChoiceKey, int64(r.Tag)))
	}
	return nil
}

func (r *ChoiceRecord) unparseSelf(us *UState) *Error {
	if err := us.UnparseUint(uint64(r.Tag), 8, BigEndian); err != nil {
		return err
	}
	switch r.Tag {
	case ChoiceTagFooA, ChoiceTagFooB:
		return us.UnparseInt(int64(r.Foo), 32, BigEndian)
	case ChoiceTagBarA, ChoiceTagBarB:
		if err := us.UnparseDouble(r.Bar.X, BigEndian); err != nil {
			return err
		}
		if err := us.UnparseDouble(r.Bar.Y, BigEndian); err != nil {
			return err
		}
		return us.UnparseDouble(r.Bar.Z, BigEndian)
	default:
		return us.Fail(NewErrorInt(ErrChoiceKey, int64(r.Tag)))
	}
}

// FixedVersionByte is the fixed-value constraint FixedValueRecord
// validates its Version field against, for seed scenario 6.
var FixedVersionByte = &FixedValue{Int: 42}

// FixedValueRecord is seed scenario 6: a field with a fixed-value
// constraint that is checked but never fatal — a mismatch is recorded
// as a Diagnostic and parsing continues.
type FixedValueRecord struct {
	InfosetBase
	Version uint8
}

func (r *FixedValueRecord) Base() *InfosetBase { return &r.InfosetBase }

var fixedValueRecordERD = &ERD{
	Name:     NewNamedQName("", "fixedValueRecord", seedNamespace),
	TypeCode: COMPLEX,
	Children: []ChildField{
		{
			ERD: &ERD{Name: NewNamedQName("", "version", ""), TypeCode: UINT8, FixedValue: FixedVersionByte},
			Get: func(p InfosetNode) interface{} { return p.(*FixedValueRecord).Version },
		},
	},
}

func (r *FixedValueRecord) parseSelf(ps *PState) *Error {
	r.ERD = fixedValueRecordERD
	v, err := ps.ParseUint(8, BigEndian)
	if err != nil {
		return err
	}
	r.Version = uint8(v)
	ValidateFixedInt(&ps.Diagnostics, "version", int64(r.Version), FixedVersionByte)
	return nil
}

func (r *FixedValueRecord) unparseSelf(us *UState) *Error {
	ValidateFixedInt(&us.Diagnostics, "version", int64(r.Version), FixedVersionByte)
	return us.UnparseUint(uint64(r.Version), 8, BigEndian)
}

// MaxPayloadLen bounds Payload's Length prefix (spec §4.2's
// prefixed-hexBinary pattern: a length field followed by that many
// raw bytes).
const MaxPayloadLen = 255

// Payload is seed scenario 7: a one-byte length prefix followed by
// that many raw bytes, read and written through AllocHexBinary/
// ReadHexBinary/WriteHexBinary — the HEXBINARY primitive's only
// exercise point in the seed suite.
type Payload struct {
	InfosetBase
	Length uint8
	Body   HexBinary
}

func (r *Payload) Base() *InfosetBase { return &r.InfosetBase }

var payloadERD = &ERD{
	Name:     NewNamedQName("", "payload", seedNamespace),
	TypeCode: COMPLEX,
	Children: []ChildField{
		{
			ERD: &ERD{Name: NewNamedQName("", "length", ""), TypeCode: UINT8},
			Get: func(p InfosetNode) interface{} { return p.(*Payload).Length },
		},
		{
			ERD: &ERD{Name: NewNamedQName("", "body", ""), TypeCode: HEXBINARY},
			Get: func(p InfosetNode) interface{} { return p.(*Payload).Body.Data },
		},
	},
}

func (r *Payload) parseSelf(ps *PState) *Error {
	r.ERD = payloadERD
	n, err := ps.ParseUint(8, BigEndian)
	if err != nil {
		return err
	}
	r.Length = uint8(n)
	r.Body.Dynamic = true
	return ReadHexBinary(ps, &r.Body, int(r.Length))
}

func (r *Payload) unparseSelf(us *UState) *Error {
	if err := us.UnparseUint(uint64(r.Length), 8, BigEndian); err != nil {
		return err
	}
	return WriteHexBinary(us, &r.Body)
}
