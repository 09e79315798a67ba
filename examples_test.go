package daffodil

import (
	"bytes"
	"testing"
)

// These tests exercise the six seed scenarios from spec §8 against the
// exported example schemas in seeds.go.

func TestSimpleByteRoundTrip(t *testing.T) {
	var got SimpleByte
	diags, err := ParseData(bytes.NewReader([]byte{0x2a}), &got)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if diags.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags.Entries())
	}
	if got.Value != 0x2a {
		t.Fatalf("Value = %#x, want 0x2a", got.Value)
	}

	var buf bytes.Buffer
	if _, err := UnparseInfoset(&buf, &got); err != nil {
		t.Fatalf("unparse: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x2a}) {
		t.Fatalf("unparsed bytes = %x, want 2a", buf.Bytes())
	}
}

func TestMixedEndiannessRoundTrip(t *testing.T) {
	var got MixedEndian
	wire := []byte{0xff, 0xff, 0xff, 0xfe, 0x34, 0x12} // A = -2 BE, B = 0x1234 LE
	if _, err := ParseData(bytes.NewReader(wire), &got); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.A != -2 {
		t.Fatalf("A = %d, want -2", got.A)
	}
	if got.B != 0x1234 {
		t.Fatalf("B = %#x, want 0x1234", got.B)
	}

	var buf bytes.Buffer
	if _, err := UnparseInfoset(&buf, &got); err != nil {
		t.Fatalf("unparse: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), wire) {
		t.Fatalf("unparsed bytes = %x, want %x", buf.Bytes(), wire)
	}
}

func TestSigned17BitAllOnesIsMinusOne(t *testing.T) {
	// 17 one-bits followed by 7 zero padding bits to byte-align: 0xff 0xff 0x80.
	var got Signed17
	if _, err := ParseData(bytes.NewReader([]byte{0xff, 0xff, 0x80}), &got); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.Value != -1 {
		t.Fatalf("Value = %d, want -1", got.Value)
	}
}

func TestVarArrayWithinBoundsRoundTrips(t *testing.T) {
	var got VarArray
	wire := []byte{3, 10, 20, 30}
	if _, err := ParseData(bytes.NewReader(wire), &got); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(got.Items) != 3 {
		t.Fatalf("len(Items) = %d, want 3", len(got.Items))
	}

	var buf bytes.Buffer
	if _, err := UnparseInfoset(&buf, &got); err != nil {
		t.Fatalf("unparse: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), wire) {
		t.Fatalf("unparsed bytes = %x, want %x", buf.Bytes(), wire)
	}
}

func TestVarArrayExceedsBoundsFails(t *testing.T) {
	var got VarArray
	wire := []byte{7, 1, 2, 3, 4, 5, 6, 7}
	_, err := ParseData(bytes.NewReader(wire), &got)
	if err == nil {
		t.Fatal("expected ErrArrayBounds, got nil")
	}
	if err.ErrorCode() != ErrArrayBounds {
		t.Fatalf("error code = %v, want ErrArrayBounds", err.ErrorCode())
	}
}

func TestChoiceDispatchesOnTag(t *testing.T) {
	var got ChoiceRecord
	wire := []byte{ChoiceTagFooB, 0x00, 0x00, 0x00, 0x07}
	if _, err := ParseData(bytes.NewReader(wire), &got); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.Foo != 7 {
		t.Fatalf("Foo = %d, want 7", got.Foo)
	}

	var buf bytes.Buffer
	if _, err := UnparseInfoset(&buf, &got); err != nil {
		t.Fatalf("unparse: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), wire) {
		t.Fatalf("unparsed bytes = %x, want %x", buf.Bytes(), wire)
	}
}

func TestChoiceUnknownTagFails(t *testing.T) {
	var got ChoiceRecord
	wire := []byte{0x05}
	_, err := ParseData(bytes.NewReader(wire), &got)
	if err == nil {
		t.Fatal("expected ErrChoiceKey, got nil")
	}
	if err.ErrorCode() != ErrChoiceKey {
		t.Fatalf("error code = %v, want ErrChoiceKey", err.ErrorCode())
	}
}

func TestChoiceDispatchesToBarDoubles(t *testing.T) {
	// tag=3 (bar), followed by three big-endian doubles: 1.0, 2.0, 3.0.
	wire := []byte{
		ChoiceTagBarA,
		0x3f, 0xf0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 1.0
		0x40, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 2.0
		0x40, 0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 3.0
	}
	var got ChoiceRecord
	if _, err := ParseData(bytes.NewReader(wire), &got); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.Bar.X != 1.0 || got.Bar.Y != 2.0 || got.Bar.Z != 3.0 {
		t.Fatalf("Bar = %+v, want {1 2 3}", got.Bar)
	}

	var buf bytes.Buffer
	if _, err := UnparseInfoset(&buf, &got); err != nil {
		t.Fatalf("unparse: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), wire) {
		t.Fatalf("unparsed bytes = %x, want %x", buf.Bytes(), wire)
	}
}

func TestPayloadHexBinaryRoundTrip(t *testing.T) {
	wire := []byte{3, 0xde, 0xad, 0xbe}
	var got Payload
	if _, err := ParseData(bytes.NewReader(wire), &got); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !bytes.Equal(got.Body.Data, []byte{0xde, 0xad, 0xbe}) {
		t.Fatalf("Body.Data = %x, want deadbe", got.Body.Data)
	}

	var buf bytes.Buffer
	if _, err := UnparseInfoset(&buf, &got); err != nil {
		t.Fatalf("unparse: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), wire) {
		t.Fatalf("unparsed bytes = %x, want %x", buf.Bytes(), wire)
	}
}

func TestFixedValueMismatchIsADiagnosticNotAnError(t *testing.T) {
	var got FixedValueRecord
	diags, err := ParseData(bytes.NewReader([]byte{7}), &got)
	if err != nil {
		t.Fatalf("parse should still succeed: %v", err)
	}
	if diags.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", diags.Len())
	}
	if diags.Entries()[0].Kind != DiagFixedAttribute {
		t.Fatalf("Kind = %v, want DiagFixedAttribute", diags.Entries()[0].Kind)
	}
}

func TestParseBoolMatchesTrueAndFalseReps(t *testing.T) {
	// true_rep = 16, false_rep = 0, num_bits = 16.
	cases := []struct {
		wire []byte
		want bool
	}{
		{[]byte{0x00, 0x10}, true},
		{[]byte{0x00, 0x00}, false},
	}
	for _, c := range cases {
		ps := NewPState(bytes.NewReader(c.wire))
		got, err := ps.ParseBool(16, 16, 0, BigEndian)
		if err != nil {
			t.Fatalf("ParseBool(%x): %v", c.wire, err)
		}
		if got != c.want {
			t.Fatalf("ParseBool(%x) = %v, want %v", c.wire, got, c.want)
		}
	}
}

func TestParseBoolRejectsValueMatchingNeitherRep(t *testing.T) {
	ps := NewPState(bytes.NewReader([]byte{0x00, 0x01}))
	_, err := ps.ParseBool(16, 16, 0, BigEndian)
	if err == nil {
		t.Fatal("expected ErrParseBool, got nil")
	}
	if err.ErrorCode() != ErrParseBool {
		t.Fatalf("error code = %v, want ErrParseBool", err.ErrorCode())
	}
}

func TestParseBoolNoTrueRepTreatsAnyNonFalseAsTrue(t *testing.T) {
	ps := NewPState(bytes.NewReader([]byte{0x00, 0x01}))
	got, err := ps.ParseBool(16, -1, 0, BigEndian)
	if err != nil {
		t.Fatalf("ParseBool: %v", err)
	}
	if !got {
		t.Fatal("got false, want true")
	}

	ps = NewPState(bytes.NewReader([]byte{0x00, 0x00}))
	got, err = ps.ParseBool(16, -1, 0, BigEndian)
	if err != nil {
		t.Fatalf("ParseBool: %v", err)
	}
	if got {
		t.Fatal("got true, want false")
	}
}

func TestParseFloatAndDoubleReinterpretBits(t *testing.T) {
	var buf bytes.Buffer
	us := NewUState(&buf)
	if err := us.UnparseFloat(1.5, BigEndian); err != nil {
		t.Fatalf("UnparseFloat: %v", err)
	}
	if err := us.UnparseDouble(-2.5, BigEndian); err != nil {
		t.Fatalf("UnparseDouble: %v", err)
	}
	if err := us.FlushFragmentByte(); err != nil {
		t.Fatalf("FlushFragmentByte: %v", err)
	}

	ps := NewPState(bytes.NewReader(buf.Bytes()))
	f, err := ps.ParseFloat(BigEndian)
	if err != nil {
		t.Fatalf("ParseFloat: %v", err)
	}
	if f != 1.5 {
		t.Fatalf("ParseFloat = %v, want 1.5", f)
	}
	d, err := ps.ParseDouble(BigEndian)
	if err != nil {
		t.Fatalf("ParseDouble: %v", err)
	}
	if d != -2.5 {
		t.Fatalf("ParseDouble = %v, want -2.5", d)
	}
}

func TestFixedValueMatchHasNoDiagnostic(t *testing.T) {
	var got FixedValueRecord
	diags, err := ParseData(bytes.NewReader([]byte{42}), &got)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if diags.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", diags.Len())
	}
}
