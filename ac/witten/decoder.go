package witten

import (
	"github.com/fumin/arcode/ac"
)

// A Decoder mirrors an Encoder: it maintains the same [low, high]
// interval and a value register primed from the bit stream, and peels
// off one symbol per Decode call. Precision must match whatever
// precision produced the stream.
type Decoder struct {
	precision uint

	full, half, quarter, threeQuarter uint64

	low, high, value uint64
	primed           bool
	finished         bool
}

// NewDecoder returns a fresh Decoder working at the given precision,
// which must satisfy MinPrecision <= precision <= MaxPrecision and match
// the Encoder's precision used to produce the stream.
func NewDecoder(precision int) (*Decoder, error) {
	if !validPrecision(precision) {
		return nil, ac.ErrInvalidPrecision
	}
	d := &Decoder{precision: uint(precision)}
	d.full = uint64(1) << d.precision
	d.half = d.full / 2
	d.quarter = d.full / 4
	d.threeQuarter = 3 * d.quarter
	d.low, d.high = 0, d.full-1
	return d, nil
}

// Finished reports whether the model's EOF symbol has already been
// decoded. Callers using a model with no EOF sentinel must track
// completion themselves and should ignore Finished (it never becomes
// true on its own in that case).
func (d *Decoder) Finished() bool {
	return d.finished
}

// Decode returns the next symbol under model, reading whatever bits
// renormalization requires from source. The caller must call
// model.UpdateSymbol(symbol) afterwards, exactly as the Encoder's caller
// did, to keep both sides of the model synchronized.
func (d *Decoder) Decode(model *SourceModel, source ac.BitSource) (uint32, error) {
	if !d.primed {
		for i := uint(0); i < d.precision; i++ {
			bit, err := source.ReadBit()
			if err != nil {
				return 0, err
			}
			d.value = d.value*2 + uint64(bit)
		}
		d.primed = true
	}

	width := d.high - d.low + 1
	total := model.Total()
	scaled := ((d.value-d.low+1)*uint64(total) - 1) / width

	symbol, err := model.SymbolForCount(uint32(scaled))
	if err != nil {
		return 0, err
	}
	symLow, symHigh, _, err := model.Probability(symbol)
	if err != nil {
		return 0, err
	}

	newHigh := d.low + (width*uint64(symHigh))/uint64(total) - 1
	newLow := d.low + (width*uint64(symLow))/uint64(total)
	d.low, d.high = newLow, newHigh

renormalize:
	for {
		switch {
		case d.high < d.half:
			// no adjustment beyond the shift below.
		case d.low >= d.half:
			d.low -= d.half
			d.high -= d.half
			d.value -= d.half
		case d.low >= d.quarter && d.high < d.threeQuarter:
			d.low -= d.quarter
			d.high -= d.quarter
			d.value -= d.quarter
		default:
			break renormalize
		}
		d.low *= 2
		d.high = d.high*2 + 1
		bit, err := source.ReadBit()
		if err != nil {
			return 0, err
		}
		d.value = d.value*2 + uint64(bit)
	}

	if eofSymbol, ok := model.EOF(); ok && symbol == eofSymbol {
		d.finished = true
	}
	return symbol, nil
}
