package arcode

import (
	"bufio"
	"io"

	"github.com/pkg/errors"

	"github.com/fumin/arcode/ac/witten"
	"github.com/fumin/arcode/bitio"
)

// byteAlphabet is the number of distinct byte values a single-model
// byte coder codes over, before any EOF sentinel is added.
const byteAlphabet = 256

// newByteModel builds a 257-symbol SourceModel (256 byte values plus an
// EndAddOne EOF sentinel at index 256) for the given precision.
func newByteModel(precision int) (*witten.SourceModel, error) {
	return witten.NewSourceModelBuilder().
		NumSymbols(byteAlphabet).
		EOF(witten.EOFEndAddOne).
		Precision(precision).
		Build()
}

// Compress arithmetic-codes every byte of src, followed by the model's
// EOF symbol, into dst using a single adaptive SourceModel shared across
// the whole stream. precision must be used again, unchanged, by whatever
// Decompress call later reads dst.
func Compress(dst io.Writer, src io.Reader, precision int) error {
	model, err := newByteModel(precision)
	if err != nil {
		return errors.Wrap(err, "build source model")
	}
	enc, err := witten.NewEncoder(precision)
	if err != nil {
		return errors.Wrap(err, "build encoder")
	}

	bw := bufio.NewWriter(dst)
	sink := bitio.NewWriter(bw)

	r := bufio.NewReader(src)
	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, "read source")
		}
		symbol := uint32(b)
		if err := enc.Encode(symbol, model, sink); err != nil {
			return errors.Wrap(err, "encode symbol")
		}
		if err := model.UpdateSymbol(symbol); err != nil {
			return errors.Wrap(err, "update model")
		}
	}

	eof, _ := model.EOF()
	if err := enc.Encode(eof, model, sink); err != nil {
		return errors.Wrap(err, "encode eof")
	}
	if err := enc.FinishEncode(sink); err != nil {
		return errors.Wrap(err, "finish encode")
	}
	if err := sink.PadToByte(); err != nil {
		return errors.Wrap(err, "pad to byte")
	}
	return errors.Wrap(bw.Flush(), "flush output")
}

// Decompress reverses Compress: precision must match the value Compress
// was called with.
func Decompress(dst io.Writer, src io.Reader, precision int) error {
	model, err := newByteModel(precision)
	if err != nil {
		return errors.Wrap(err, "build source model")
	}
	dec, err := witten.NewDecoder(precision)
	if err != nil {
		return errors.Wrap(err, "build decoder")
	}

	source := bitio.NewReader(bufio.NewReader(src))
	w := bufio.NewWriter(dst)

	eof, _ := model.EOF()
	for {
		symbol, err := dec.Decode(model, source)
		if err != nil {
			return errors.Wrap(err, "decode symbol")
		}
		if err := model.UpdateSymbol(symbol); err != nil {
			return errors.Wrap(err, "update model")
		}
		if symbol == eof {
			break
		}
		if err := w.WriteByte(byte(symbol)); err != nil {
			return errors.Wrap(err, "write output")
		}
	}
	return errors.Wrap(w.Flush(), "flush output")
}
