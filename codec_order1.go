package arcode

import (
	"bufio"
	"io"

	"github.com/pkg/errors"

	"github.com/fumin/arcode/ac/witten"
	"github.com/fumin/arcode/bitio"
)

// CompressOrder1 behaves like Compress, but keeps one SourceModel per
// preceding byte value (an order-1 context model) instead of a single
// model shared across the whole stream. On text-like input this usually
// gives materially better ratios than a single global model. Streams it
// produces can only be read back by DecompressOrder1, not Decompress.
func CompressOrder1(dst io.Writer, src io.Reader, precision int) error {
	models, eofModel, eof, err := newOrder1Models(precision)
	if err != nil {
		return errors.Wrap(err, "build source models")
	}
	enc, err := witten.NewEncoder(precision)
	if err != nil {
		return errors.Wrap(err, "build encoder")
	}

	bw := bufio.NewWriter(dst)
	sink := bitio.NewWriter(bw)

	r := bufio.NewReader(src)
	current := eofModel
	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, "read source")
		}
		symbol := uint32(b)
		if err := enc.Encode(symbol, current, sink); err != nil {
			return errors.Wrap(err, "encode symbol")
		}
		if err := current.UpdateSymbol(symbol); err != nil {
			return errors.Wrap(err, "update model")
		}
		current = models[symbol]
	}

	if err := enc.Encode(eof, current, sink); err != nil {
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

// DecompressOrder1 reverses CompressOrder1.
func DecompressOrder1(dst io.Writer, src io.Reader, precision int) error {
	models, eofModel, eof, err := newOrder1Models(precision)
	if err != nil {
		return errors.Wrap(err, "build source models")
	}
	dec, err := witten.NewDecoder(precision)
	if err != nil {
		return errors.Wrap(err, "build decoder")
	}

	source := bitio.NewReader(bufio.NewReader(src))
	w := bufio.NewWriter(dst)

	current := eofModel
	for {
		symbol, err := dec.Decode(current, source)
		if err != nil {
			return errors.Wrap(err, "decode symbol")
		}
		if err := current.UpdateSymbol(symbol); err != nil {
			return errors.Wrap(err, "update model")
		}
		if symbol == eof {
			break
		}
		if err := w.WriteByte(byte(symbol)); err != nil {
			return errors.Wrap(err, "write output")
		}
		current = models[symbol]
	}
	return errors.Wrap(w.Flush(), "flush output")
}

// newOrder1Models allocates one SourceModel per possible preceding byte
// value (256 contexts), plus the model used to code the very first
// symbol (indistinguishable here from the "preceding EOF" context).
// It returns the per-context models, the initial model, and the EOF
// symbol index they all share.
func newOrder1Models(precision int) (models []*witten.SourceModel, initial *witten.SourceModel, eof uint32, err error) {
	models = make([]*witten.SourceModel, byteAlphabet)
	for i := range models {
		models[i], err = newByteModel(precision)
		if err != nil {
			return nil, nil, 0, err
		}
	}
	initial, err = newByteModel(precision)
	if err != nil {
		return nil, nil, 0, err
	}
	eof, _ = initial.EOF()
	return models, initial, eof, nil
}
