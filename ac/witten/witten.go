// Package witten implements the arithmetic coding algorithm described in
// Witten, Ian H.; Neal, Radford M.; Cleary, John G. (June 1987).
// "Arithmetic Coding for Data Compression". Communications of the ACM
// 30 (6): 520-540.
//
// Unlike a binary-only realization of that algorithm, this package codes
// symbols drawn from an arbitrary fixed-size alphabet, tracked by a
// SourceModel that both the Encoder and the Decoder must update, in the
// same order, after every symbol. The Encoder and Decoder never touch
// byte streams directly; they talk to the ac.BitSink / ac.BitSource
// capability contracts, leaving buffering and byte packing to callers
// (see package bitio for a concrete realization of both).
package witten

const (
	// MinPrecision is the smallest precision NewEncoder/NewDecoder accept.
	MinPrecision = 4
	// MaxPrecision is the largest precision NewEncoder/NewDecoder accept.
	// Encode/Decode compute (high-low+1)*total as a uint64 intermediate,
	// where total can approach a SourceModel's maxFreq of
	// 2^(precision-2)-1 when encoder and model share the same precision
	// (as every caller in this module does); keeping that product under
	// 2^64 caps precision at 33, matching maxModelPrecision below.
	MaxPrecision = 33
	// DefaultPrecision is the precision SourceModelBuilder assumes when
	// none is set explicitly.
	DefaultPrecision = 30

	// maxModelPrecision bounds SourceModelBuilder.Precision: counts and
	// total are stored as uint32, so maxFreq = 2^(precision-2)-1 must
	// itself fit in 32 bits. It matches MaxPrecision above for the same
	// underlying reason, but is kept as its own name since the two guard
	// against different overflows (model counts vs. the encoder/decoder
	// interval-times-total product).
	maxModelPrecision = 33
)

func validPrecision(p int) bool {
	return p >= MinPrecision && p <= MaxPrecision
}
