package witten

import (
	"bytes"
	"testing"

	"github.com/fumin/arcode/bitio"
)

func TestDecoderInvalidPrecision(t *testing.T) {
	if _, err := NewDecoder(1); err == nil {
		t.Errorf("expected error for precision below MinPrecision")
	}
	if _, err := NewDecoder(1000); err == nil {
		t.Errorf("expected error for precision above MaxPrecision")
	}
}

func TestDecoderFinishedTracksEOF(t *testing.T) {
	encModel := buildModel(t, 4, EOFEnd, DefaultPrecision)
	data := encodeAll(t, DefaultPrecision, encModel, []uint32{0, 1, 2})

	decModel := buildModel(t, 4, EOFEnd, DefaultPrecision)
	dec, err := NewDecoder(DefaultPrecision)
	if err != nil {
		t.Fatalf("%v", err)
	}
	source := bitio.NewReader(bytes.NewReader(data))

	if dec.Finished() {
		t.Fatalf("decoder reports finished before decoding anything")
	}
	for i := 0; i < 4; i++ {
		sym, err := dec.Decode(decModel, source)
		if err != nil {
			t.Fatalf("%v", err)
		}
		if err := decModel.UpdateSymbol(sym); err != nil {
			t.Fatalf("%v", err)
		}
		if i < 3 && dec.Finished() {
			t.Fatalf("decoder reports finished before EOF symbol was produced")
		}
	}
	if !dec.Finished() {
		t.Errorf("decoder should report finished once EOF has been decoded")
	}
}

func TestIntervalInvariantDuringDecode(t *testing.T) {
	encModel := buildModel(t, 6, EOFEndAddOne, DefaultPrecision)
	symbols := []uint32{5, 4, 3, 2, 1, 0, 5, 5, 5}
	data := encodeAll(t, DefaultPrecision, encModel, symbols)

	decModel := buildModel(t, 6, EOFEndAddOne, DefaultPrecision)
	dec, err := NewDecoder(DefaultPrecision)
	if err != nil {
		t.Fatalf("%v", err)
	}
	source := bitio.NewReader(bytes.NewReader(data))

	full := uint64(1) << DefaultPrecision
	for !dec.Finished() {
		sym, err := dec.Decode(decModel, source)
		if err != nil {
			t.Fatalf("%v", err)
		}
		if dec.low > dec.high || dec.high >= full || dec.value < dec.low || dec.value > dec.high {
			t.Fatalf("interval invariant violated: low=%d high=%d value=%d", dec.low, dec.high, dec.value)
		}
		if err := decModel.UpdateSymbol(sym); err != nil {
			t.Fatalf("%v", err)
		}
	}
}
