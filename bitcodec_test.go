package daffodil

import (
	"bytes"
	"testing"
)

func TestWriteBitsFlushesWholeBytes(t *testing.T) {
	var buf bytes.Buffer
	w := bitWriter{w: &buf}

	if err := w.WriteBits(0b1010, 4); err != nil {
		t.Fatalf("WriteBits: %v", err)
	}
	if w.fragmentLen != 4 || w.fragmentBits != 0b1010 {
		t.Fatalf("fragment = %04b/%d, want 1010/4", w.fragmentBits, w.fragmentLen)
	}
	if buf.Len() != 0 {
		t.Fatalf("stream should still be empty, got %d bytes", buf.Len())
	}

	if err := w.WriteBits(0b1101, 4); err != nil {
		t.Fatalf("WriteBits: %v", err)
	}
	if w.fragmentLen != 0 {
		t.Fatalf("fragmentLen = %d, want 0", w.fragmentLen)
	}
	if got := buf.Bytes(); !bytes.Equal(got, []byte{0b10101101}) {
		t.Fatalf("stream = %08b, want 10101101", got[0])
	}
}

func TestReadBitsMirrorsWriteBits(t *testing.T) {
	var buf bytes.Buffer
	w := bitWriter{w: &buf}
	for _, v := range []struct {
		val  uint64
		bits int
	}{{0b1, 1}, {0b0111, 4}, {0b1001, 4}, {0xab, 8}, {0x1234, 16}} {
		if err := w.WriteBits(v.val, v.bits); err != nil {
			t.Fatalf("WriteBits: %v", err)
		}
	}
	if err := w.FlushFragmentByte(); err != nil {
		t.Fatalf("FlushFragmentByte: %v", err)
	}

	r := bitReader{r: bytes.NewReader(buf.Bytes())}
	for _, want := range []struct {
		val  uint64
		bits int
	}{{0b1, 1}, {0b0111, 4}, {0b1001, 4}, {0xab, 8}, {0x1234, 16}} {
		got, err := r.ReadBits(want.bits)
		if err != nil {
			t.Fatalf("ReadBits(%d): %v", want.bits, err)
		}
		if got != want.val {
			t.Fatalf("ReadBits(%d) = %#x, want %#x", want.bits, got, want.val)
		}
	}
}

func TestSigned17BitAllOnesDecodesToMinusOne(t *testing.T) {
	// 17 bits of 1, zero-padded to 24 bits: 0xff 0xff 0x80.
	r := bitReader{r: bytes.NewReader([]byte{0xff, 0xff, 0x80})}
	raw, err := r.ReadPrimitiveBE(17)
	if err != nil {
		t.Fatalf("ReadPrimitiveBE: %v", err)
	}
	if got := signExtend(raw, 17); got != -1 {
		t.Fatalf("signExtend = %d, want -1", got)
	}
}

func TestLittleEndian24BitBoolRoundTrip(t *testing.T) {
	const trueRep = 0b111_110_101_100_011_010_001_000
	var buf bytes.Buffer
	w := bitWriter{w: &buf}
	if err := w.WritePrimitiveLE(trueRep, 24); err != nil {
		t.Fatalf("WritePrimitiveLE: %v", err)
	}
	want := []byte{0210, 0306, 0372}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("stream = %o, want %o", buf.Bytes(), want)
	}

	r := bitReader{r: bytes.NewReader(buf.Bytes())}
	got, err := r.ReadPrimitiveLE(24)
	if err != nil {
		t.Fatalf("ReadPrimitiveLE: %v", err)
	}
	if got != trueRep {
		t.Fatalf("ReadPrimitiveLE = %#o, want %#o", got, trueRep)
	}
}

func TestLittleEndianNineBitStraddlesAByte(t *testing.T) {
	const value9 = 0747 // 0b1_1110_0111
	var buf bytes.Buffer
	w := bitWriter{w: &buf}
	if err := w.WritePrimitiveLE(value9, 9); err != nil {
		t.Fatalf("WritePrimitiveLE: %v", err)
	}
	if err := w.FlushFragmentByte(); err != nil {
		t.Fatalf("FlushFragmentByte: %v", err)
	}
	if got := buf.Bytes(); len(got) != 2 || got[0] != 0347 {
		t.Fatalf("stream = %o, want [0347 ...]", got)
	}

	r := bitReader{r: bytes.NewReader(buf.Bytes())}
	got, err := r.ReadPrimitiveLE(9)
	if err != nil {
		t.Fatalf("ReadPrimitiveLE: %v", err)
	}
	if got != value9 {
		t.Fatalf("ReadPrimitiveLE = %#o, want %#o", got, value9)
	}
}

func TestAlignToPadsToByteBoundary(t *testing.T) {
	var buf bytes.Buffer
	w := bitWriter{w: &buf}
	if err := w.WriteBits(0b101, 3); err != nil {
		t.Fatalf("WriteBits: %v", err)
	}
	if err := w.AlignTo(8); err != nil {
		t.Fatalf("AlignTo: %v", err)
	}
	if w.bitPos0b != 8 {
		t.Fatalf("bitPos0b = %d, want 8", w.bitPos0b)
	}
	if got := buf.Bytes(); !bytes.Equal(got, []byte{0b10100000}) {
		t.Fatalf("stream = %08b, want 10100000", got[0])
	}
}

func TestNoLeftoverDataDetectsTrailingBits(t *testing.T) {
	r := bitReader{r: bytes.NewReader(nil)}
	r.fragmentLen = 3
	if err := r.NoLeftoverData(); err == nil || err.ErrorCode() != ErrLeftoverData {
		t.Fatalf("expected ErrLeftoverData for pending fragment, got %v", err)
	}

	r2 := bitReader{r: bytes.NewReader([]byte{0x01})}
	if err := r2.NoLeftoverData(); err == nil || err.ErrorCode() != ErrLeftoverData {
		t.Fatalf("expected ErrLeftoverData for trailing byte, got %v", err)
	}

	r3 := bitReader{r: bytes.NewReader(nil)}
	if err := r3.NoLeftoverData(); err != nil {
		t.Fatalf("expected no error for exhausted stream, got %v", err)
	}
}

func TestReadBitsEOF(t *testing.T) {
	r := bitReader{r: bytes.NewReader(nil)}
	if _, err := r.ReadBits(8); err == nil || err.ErrorCode() != ErrStreamEOF {
		t.Fatalf("expected ErrStreamEOF, got %v", err)
	}
}

func FuzzBitCodecRoundTrip(f *testing.F) {
	f.Add(uint64(0), 1, false)
	f.Add(uint64(1), 1, false)
	f.Add(uint64(0x1ffff), 17, false)
	f.Add(uint64(0xdeadbeef), 32, true)
	f.Add(uint64(0xffffffffffffffff), 64, false)
	f.Add(uint64(0x747), 9, true)

	f.Fuzz(func(t *testing.T, value uint64, numBits int, littleEndian bool) {
		if numBits < 1 || numBits > 64 {
			t.Skip("numBits out of range")
		}
		value &= mask64(numBits)

		var buf bytes.Buffer
		w := bitWriter{w: &buf}
		var err *Error
		if littleEndian {
			err = w.WritePrimitiveLE(value, numBits)
		} else {
			err = w.WritePrimitiveBE(value, numBits)
		}
		if err != nil {
			t.Fatalf("write: %v", err)
		}
		if ferr := w.FlushFragmentByte(); ferr != nil {
			t.Fatalf("flush: %v", ferr)
		}

		r := bitReader{r: bytes.NewReader(buf.Bytes())}
		var got uint64
		if littleEndian {
			got, err = r.ReadPrimitiveLE(numBits)
		} else {
			got, err = r.ReadPrimitiveBE(numBits)
		}
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if got != value {
			t.Fatalf("round trip mismatch: wrote %#x, read %#x (numBits=%d, le=%v)", value, got, numBits, littleEndian)
		}
	})
}
