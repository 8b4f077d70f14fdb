package witten

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/fumin/arcode/bitio"
)

func TestBinaryCoderRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const bitWidth = 9 // values 0..511
	values := make([]uint32, 300)
	for i := range values {
		values[i] = uint32(rng.Intn(1 << bitWidth))
	}

	encCoder, err := NewBinaryCoder(bitWidth, DefaultPrecision)
	if err != nil {
		t.Fatalf("%v", err)
	}
	enc, err := NewEncoder(DefaultPrecision)
	if err != nil {
		t.Fatalf("%v", err)
	}
	var buf bytes.Buffer
	sink := bitio.NewWriter(&buf)
	for _, v := range values {
		if err := encCoder.Encode(enc, sink, v); err != nil {
			t.Fatalf("%v", err)
		}
	}
	if err := enc.FinishEncode(sink); err != nil {
		t.Fatalf("%v", err)
	}
	if err := sink.PadToByte(); err != nil {
		t.Fatalf("%v", err)
	}

	decCoder, err := NewBinaryCoder(bitWidth, DefaultPrecision)
	if err != nil {
		t.Fatalf("%v", err)
	}
	dec, err := NewDecoder(DefaultPrecision)
	if err != nil {
		t.Fatalf("%v", err)
	}
	source := bitio.NewReader(bytes.NewReader(buf.Bytes()))
	for i, want := range values {
		got, err := decCoder.Decode(dec, source)
		if err != nil {
			t.Fatalf("%v", err)
		}
		if got != want {
			t.Errorf("value %d: got %d, want %d", i, got, want)
		}
	}
}
