package daffodil

import "bytes"

// FixedValue is the constraint carried by an element declared with a
// fixed value: the parsed or about-to-be-unparsed content must equal
// exactly one of Int, Float or Hex, whichever applies to the element's
// TypeCode. Exactly one field is populated.
type FixedValue struct {
	Int   int64
	Float float64
	Hex   []byte
}

// Enumeration is the constraint carried by an element restricted to a
// closed set of legal values. Exactly one slice is populated,
// matching the element's TypeCode family.
type Enumeration struct {
	Ints   []int64
	Floats []float64
	Hex    [][]byte
}

// ValidateFixedInt checks got against a fixed-value constraint over an
// integer TypeCode, recording a non-fatal Diagnostic on mismatch.
// Fixed-value and enumeration checks never set PState.Error/UState.Error
// — they are soft validation, per spec §4.2 and §7.
func ValidateFixedInt(d *Diagnostics, field string, got int64, fv *FixedValue) {
	if fv == nil || got == fv.Int {
		return
	}
	d.Add(Diagnostic{Kind: DiagFixedAttribute, Field: field, Detail: "fixed value mismatch"})
}

// ValidateFixedFloat is the float/double counterpart of ValidateFixedInt.
func ValidateFixedFloat(d *Diagnostics, field string, got float64, fv *FixedValue) {
	if fv == nil || got == fv.Float {
		return
	}
	d.Add(Diagnostic{Kind: DiagFixedAttribute, Field: field, Detail: "fixed value mismatch"})
}

// ValidateFixedHex is the hexBinary counterpart, compared byte-wise
// rather than with a numeric equality.
func ValidateFixedHex(d *Diagnostics, field string, got []byte, fv *FixedValue) {
	if fv == nil || bytes.Equal(got, fv.Hex) {
		return
	}
	d.Add(Diagnostic{Kind: DiagFixedAttribute, Field: field, Detail: "fixed value mismatch"})
}

// ValidateEnumInt checks got against an enumeration constraint over an
// integer TypeCode.
func ValidateEnumInt(d *Diagnostics, field string, got int64, enum *Enumeration) {
	if enum == nil {
		return
	}
	for _, v := range enum.Ints {
		if v == got {
			return
		}
	}
	d.Add(Diagnostic{Kind: DiagEnumeration, Field: field, Detail: "value not in enumeration"})
}

// ValidateEnumFloat is the float/double counterpart of ValidateEnumInt.
func ValidateEnumFloat(d *Diagnostics, field string, got float64, enum *Enumeration) {
	if enum == nil {
		return
	}
	for _, v := range enum.Floats {
		if v == got {
			return
		}
	}
	d.Add(Diagnostic{Kind: DiagEnumeration, Field: field, Detail: "value not in enumeration"})
}

// ValidateEnumHex is the hexBinary counterpart, compared byte-wise.
func ValidateEnumHex(d *Diagnostics, field string, got []byte, enum *Enumeration) {
	if enum == nil {
		return
	}
	for _, v := range enum.Hex {
		if bytes.Equal(v, got) {
			return
		}
	}
	d.Add(Diagnostic{Kind: DiagEnumeration, Field: field, Detail: "value not in enumeration"})
}

// ValidateRange records a non-fatal Diagnostic when got falls outside
// [min, max].
func ValidateRange(d *Diagnostics, field string, got, min, max int64) {
	if got >= min && got <= max {
		return
	}
	d.Add(Diagnostic{Kind: DiagRange, Field: field, Detail: "value out of range"})
}

// ValidateArrayBounds is fatal, unlike the checks above: an occurrence
// count outside [minOccurs, maxOccurs] means the infoset the schema
// describes cannot be constructed at all, so it raises ErrArrayBounds
// rather than recording a Diagnostic.
func ValidateArrayBounds(count, minOccurs, maxOccurs int) *Error {
	if count < minOccurs || count > maxOccurs {
		return NewErrorInt(ErrArrayBounds, int64(count))
	}
	return nil
}
