package witten

import (
	"bytes"
	"testing"

	"github.com/fumin/arcode/bitio"
)

// TestKnownByteStream pins the wire format to a reference vector:
// precision 30, a 10-symbol alphabet with EOFEnd (EOF = 9), encoding
// [7, 2, 2, 2, 7] then EOF, finish, and pad must produce exactly the
// bytes 0xB8, 0x60, 0xD0.
func TestKnownByteStream(t *testing.T) {
	model, err := NewSourceModelBuilder().NumSymbols(10).EOF(EOFEnd).Precision(30).Build()
	if err != nil {
		t.Fatalf("%v", err)
	}
	enc, err := NewEncoder(30)
	if err != nil {
		t.Fatalf("%v", err)
	}

	var buf bytes.Buffer
	sink := bitio.NewWriter(&buf)

	for _, sym := range []uint32{7, 2, 2, 2, 7, 9} {
		if err := enc.Encode(sym, model, sink); err != nil {
			t.Fatalf("%v", err)
		}
		if err := model.UpdateSymbol(sym); err != nil {
			t.Fatalf("%v", err)
		}
	}
	if err := enc.FinishEncode(sink); err != nil {
		t.Fatalf("%v", err)
	}
	if err := sink.PadToByte(); err != nil {
		t.Fatalf("%v", err)
	}

	want := []byte{0xB8, 0x60, 0xD0}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got % X, want % X", buf.Bytes(), want)
	}
}

func TestEncoderInvalidPrecision(t *testing.T) {
	if _, err := NewEncoder(2); err == nil {
		t.Errorf("expected error for precision below MinPrecision")
	}
	if _, err := NewEncoder(100); err == nil {
		t.Errorf("expected error for precision above MaxPrecision")
	}
}

func TestIntervalInvariantDuringEncode(t *testing.T) {
	model, err := NewSourceModelBuilder().NumSymbols(5).EOF(EOFEndAddOne).Build()
	if err != nil {
		t.Fatalf("%v", err)
	}
	enc, err := NewEncoder(DefaultPrecision)
	if err != nil {
		t.Fatalf("%v", err)
	}
	var buf bytes.Buffer
	sink := bitio.NewWriter(&buf)

	full := uint64(1) << DefaultPrecision
	for _, sym := range []uint32{0, 1, 2, 3, 4, 2, 1, 0} {
		if err := enc.Encode(sym, model, sink); err != nil {
			t.Fatalf("%v", err)
		}
		if enc.low > enc.high || enc.high >= full {
			t.Fatalf("interval invariant violated: low=%d high=%d full=%d", enc.low, enc.high, full)
		}
		if err := model.UpdateSymbol(sym); err != nil {
			t.Fatalf("%v", err)
		}
	}
}
