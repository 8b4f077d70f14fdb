package witten

import (
	"github.com/fumin/arcode/ac"
)

// An Encoder narrows an interval in [0, 2^precision) one symbol at a
// time, emitting bits to an ac.BitSink whenever renormalization makes
// the current interval's top bit or "straddle" state determined. It is
// single-use: once FinishEncode returns, the Encoder must be discarded.
type Encoder struct {
	precision uint

	full, half, quarter, threeQuarter uint64

	low, high uint64
	pending   uint64

	done bool
}

// NewEncoder returns a fresh Encoder working at the given precision,
// which must satisfy MinPrecision <= precision <= MaxPrecision.
func NewEncoder(precision int) (*Encoder, error) {
	if !validPrecision(precision) {
		return nil, ac.ErrInvalidPrecision
	}
	e := &Encoder{precision: uint(precision)}
	e.full = uint64(1) << e.precision
	e.half = e.full / 2
	e.quarter = e.full / 4
	e.threeQuarter = 3 * e.quarter
	e.low, e.high = 0, e.full-1
	return e, nil
}

// Encode narrows the current interval to symbol's sub-range under model,
// emitting any bits renormalization produces to sink. The caller must
// call model.UpdateSymbol(symbol) afterwards; the Encoder does not do
// this itself, since the Decoder needs to see the symbol before it can
// update its own copy of the model.
func (e *Encoder) Encode(symbol uint32, model *SourceModel, sink ac.BitSink) error {
	symLow, symHigh, total, err := model.Probability(symbol)
	if err != nil {
		return err
	}

	width := e.high - e.low + 1
	newHigh := e.low + (width*uint64(symHigh))/uint64(total) - 1
	newLow := e.low + (width*uint64(symLow))/uint64(total)
	e.low, e.high = newLow, newHigh

	for {
		switch {
		case e.high < e.half:
			if err := e.outputBitPlusFollow(sink, 0); err != nil {
				return err
			}
		case e.low >= e.half:
			if err := e.outputBitPlusFollow(sink, 1); err != nil {
				return err
			}
			e.low -= e.half
			e.high -= e.half
		case e.low >= e.quarter && e.high < e.threeQuarter:
			e.pending++
			e.low -= e.quarter
			e.high -= e.quarter
		default:
			return nil
		}
		e.low *= 2
		e.high = e.high*2 + 1
	}
}

// FinishEncode emits enough trailing bits that a Decoder reading zeros
// past end-of-stream recovers the final symbol, then leaves the Encoder
// spent. Callers should call sink.PadToByte() afterwards if the
// underlying stream needs byte alignment.
func (e *Encoder) FinishEncode(sink ac.BitSink) error {
	e.pending++
	bit := 0
	if e.low >= e.quarter {
		bit = 1
	}
	if err := e.outputBitPlusFollow(sink, bit); err != nil {
		return err
	}
	e.done = true
	return nil
}

// outputBitPlusFollow writes bit, then writes pending copies of its
// complement, resetting pending to zero. This is the mechanism by which
// deferred "straddle" bits are resolved once the interval has committed
// to one half or the other.
func (e *Encoder) outputBitPlusFollow(sink ac.BitSink, bit int) error {
	if err := sink.WriteBit(bit); err != nil {
		return err
	}
	follow := 1 - bit
	for ; e.pending > 0; e.pending-- {
		if err := sink.WriteBit(follow); err != nil {
			return err
		}
	}
	return nil
}
