package witten

import (
	"sort"

	"github.com/fumin/arcode/ac"
)

// A SourceModel is an adaptive frequency table over a fixed alphabet. It
// exposes cumulative probabilities to an Encoder and a Decoder, which
// must call UpdateSymbol after every symbol coded so that both sides of
// a stream evolve in lockstep.
//
// Every count starts at 1 (Laplace smoothing), so every symbol is
// encodable from the first call. When the running total would exceed
// maxFreq, UpdateSymbol rescales every count by half (floored at 1)
// before applying the increment.
type SourceModel struct {
	counts     []uint32
	cumulative []uint32 // len(counts)+1; cumulative[i] = sum(counts[:i])
	total      uint32
	maxFreq    uint32
	eofSymbol  uint32
	hasEOF     bool
}

// newSourceModel builds a SourceModel with alphabetSize symbols, all
// counts initialized to 1, and maxFreq derived from precision.
func newSourceModel(alphabetSize int, precision int, eofSymbol uint32, hasEOF bool) (*SourceModel, error) {
	if alphabetSize <= 0 {
		return nil, ac.ErrEmptyAlphabet
	}
	if !validPrecision(precision) {
		return nil, ac.ErrInvalidPrecision
	}
	if precision > maxModelPrecision {
		// counts/total are tracked in uint32; beyond this precision
		// 2^(precision-2)-1 would overflow that width.
		return nil, ac.ErrInvalidPrecision
	}

	m := &SourceModel{
		counts:     make([]uint32, alphabetSize),
		cumulative: make([]uint32, alphabetSize+1),
		maxFreq:    uint32(1)<<uint(precision-2) - 1,
		eofSymbol:  eofSymbol,
		hasEOF:     hasEOF,
	}
	for i := range m.counts {
		m.counts[i] = 1
	}
	m.recompute()
	return m, nil
}

func (m *SourceModel) recompute() {
	var sum uint32
	for i, c := range m.counts {
		m.cumulative[i] = sum
		sum += c
	}
	m.cumulative[len(m.counts)] = sum
	m.total = sum
}

// NumSymbols returns the size of the alphabet this model codes over,
// including the EOF symbol if one was allocated by EOFEndAddOne.
func (m *SourceModel) NumSymbols() int {
	return len(m.counts)
}

// Total returns the current sum of all counts.
func (m *SourceModel) Total() uint32 {
	return m.total
}

// EOF returns the configured EOF symbol index and true, or (0, false) if
// this model has no sentinel.
func (m *SourceModel) EOF() (uint32, bool) {
	return m.eofSymbol, m.hasEOF
}

// Probability returns the half-open count interval [low, high) for
// symbol, along with the model's current total. It is a programming
// error to call this with a symbol outside [0, NumSymbols()).
func (m *SourceModel) Probability(symbol uint32) (low, high, total uint32, err error) {
	if int(symbol) >= len(m.counts) {
		return 0, 0, 0, ac.ErrInvalidSymbol
	}
	return m.cumulative[symbol], m.cumulative[symbol+1], m.total, nil
}

// SymbolForCount returns the unique symbol whose count interval contains
// c, where 0 <= c < Total(). It is implemented as a binary search over
// the cumulative prefix sums; both Encoder and Decoder reach count
// intervals exclusively through this model, so there is a single
// implementation to keep in sync rather than two.
func (m *SourceModel) SymbolForCount(c uint32) (uint32, error) {
	if c >= m.total {
		return 0, ac.ErrInvalidCount
	}
	// cumulative is nondecreasing; find the rightmost index i such that
	// cumulative[i] <= c, which is symbol i (since cumulative[i+1] > c
	// follows from c < total and strict monotonicity across symbols with
	// nonzero count).
	i := sort.Search(len(m.cumulative), func(i int) bool {
		return m.cumulative[i] > c
	})
	return uint32(i - 1), nil
}

// UpdateSymbol increments the count of symbol by one. If the resulting
// total would exceed maxFreq, every count is first halved (floored at 1)
// to make room, preserving relative rank order and keeping every symbol
// encodable.
func (m *SourceModel) UpdateSymbol(symbol uint32) error {
	if int(symbol) >= len(m.counts) {
		return ac.ErrInvalidSymbol
	}
	if m.total+1 > m.maxFreq {
		m.rescale()
	}
	m.counts[symbol]++
	m.recompute()
	return nil
}

func (m *SourceModel) rescale() {
	for i, c := range m.counts {
		m.counts[i] = max(1, c/2)
	}
	m.recompute()
}
