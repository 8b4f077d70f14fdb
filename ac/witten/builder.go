package witten

import (
	"github.com/fumin/arcode/ac"
)

// EOFKind selects how a SourceModelBuilder resolves an end-of-stream
// sentinel symbol.
type EOFKind int

const (
	// EOFNone means no sentinel is allocated; the caller manages stream
	// termination externally (e.g. a known symbol count).
	EOFNone EOFKind = iota
	// EOFEnd reuses the last symbol of the alphabet (index
	// numSymbols-1) as the sentinel. No extra symbol is allocated.
	EOFEnd
	// EOFEndAddOne silently extends the alphabet by one symbol (index
	// numSymbols) and uses it as the sentinel.
	EOFEndAddOne
)

// SourceModelBuilder configures and constructs a SourceModel.
type SourceModelBuilder struct {
	numSymbols int
	eofKind    EOFKind
	precision  int
}

// NewSourceModelBuilder returns a builder with no alphabet size set yet
// and EOFKind defaulted to EOFNone.
func NewSourceModelBuilder() *SourceModelBuilder {
	return &SourceModelBuilder{eofKind: EOFNone, precision: DefaultPrecision}
}

// NumSymbols sets the alphabet size, excluding any sentinel EOFEndAddOne
// allocates. Build fails if this is never set or set to zero.
func (b *SourceModelBuilder) NumSymbols(n int) *SourceModelBuilder {
	b.numSymbols = n
	return b
}

// EOF sets the EOF sentinel strategy. Defaults to EOFNone.
func (b *SourceModelBuilder) EOF(kind EOFKind) *SourceModelBuilder {
	b.eofKind = kind
	return b
}

// Precision sets the precision P this model's maximum total frequency
// (2^(P-2) - 1) is derived from. It must match whatever precision the
// paired Encoder/Decoder use; the model has no way to verify this.
// Defaults to DefaultPrecision.
func (b *SourceModelBuilder) Precision(p int) *SourceModelBuilder {
	b.precision = p
	return b
}

// Build allocates the count array (numSymbols, or numSymbols+1 for
// EOFEndAddOne), fills it with 1s, and resolves the EOF index.
func (b *SourceModelBuilder) Build() (*SourceModel, error) {
	if b.numSymbols <= 0 {
		return nil, ac.ErrEmptyAlphabet
	}
	switch b.eofKind {
	case EOFEndAddOne:
		return newSourceModel(b.numSymbols+1, b.precision, uint32(b.numSymbols), true)
	case EOFEnd:
		return newSourceModel(b.numSymbols, b.precision, uint32(b.numSymbols-1), true)
	default:
		return newSourceModel(b.numSymbols, b.precision, 0, false)
	}
}
