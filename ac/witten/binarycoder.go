package witten

import (
	"github.com/fumin/arcode/ac"
)

// A BinaryCoder arithmetic-codes fixed-width unsigned integers one bit
// at a time, most significant bit first, giving each bit position its
// own adaptive two-symbol SourceModel. All positions share a single
// Encoder or Decoder, so interleaving other symbols between Encode
// calls on the same coder pair is safe as long as both sides agree on
// the order.
type BinaryCoder struct {
	models []*SourceModel
}

// NewBinaryCoder returns a BinaryCoder for values up to bitWidth bits
// wide, with every bit position's model freshly initialized.
func NewBinaryCoder(bitWidth int, precision int) (*BinaryCoder, error) {
	models := make([]*SourceModel, bitWidth)
	for i := range models {
		m, err := NewSourceModelBuilder().NumSymbols(2).Precision(precision).Build()
		if err != nil {
			return nil, err
		}
		models[i] = m
	}
	return &BinaryCoder{models: models}, nil
}

// Encode codes value's low bitWidth bits, most significant first.
func (c *BinaryCoder) Encode(enc *Encoder, sink ac.BitSink, value uint32) error {
	n := len(c.models)
	for i := 0; i < n; i++ {
		bit := (value >> uint(n-i-1)) & 1
		if err := enc.Encode(bit, c.models[i], sink); err != nil {
			return err
		}
		if err := c.models[i].UpdateSymbol(bit); err != nil {
			return err
		}
	}
	return nil
}

// Decode recovers a value previously written by Encode.
func (c *BinaryCoder) Decode(dec *Decoder, source ac.BitSource) (uint32, error) {
	var value uint32
	for _, model := range c.models {
		bit, err := dec.Decode(model, source)
		if err != nil {
			return 0, err
		}
		if err := model.UpdateSymbol(bit); err != nil {
			return 0, err
		}
		value = value*2 + bit
	}
	return value, nil
}

// Models returns the bit-position models, primarily for inspection in
// tests.
func (c *BinaryCoder) Models() []*SourceModel {
	return c.models
}
