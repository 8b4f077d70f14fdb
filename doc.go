// Package arcode provides an adaptive arithmetic coder.
//
// The hard part, the finite-precision interval-narrowing encoder and
// decoder state machines with their underflow/E3 renormalization and the
// adaptive frequency-table source model they share, lives in
// ac/witten. This package is the thin, byte-oriented convenience layer
// on top of it: Compress and Decompress wire a witten.SourceModel, a
// witten.Encoder or witten.Decoder, and a bitio.Writer or bitio.Reader
// together over an arbitrary io.Writer/io.Reader pair.
//
// This is deliberately not a general-purpose file compressor. There is
// no framing, no header, and no model persisted in the stream: a
// Compress/Decompress pair must agree out of band on precision and on
// whether an order-1 context model was used, exactly as ac/witten's
// SourceModel/Encoder/Decoder require of any caller.
//
// Below is an example of round-tripping data through the default
// single-model byte coder:
//
//	var buf bytes.Buffer
//	if err := arcode.Compress(&buf, strings.NewReader("hello"), 30); err != nil {
//		log.Fatalf("%+v", err)
//	}
//	var out bytes.Buffer
//	if err := arcode.Decompress(&out, &buf, 30); err != nil {
//		log.Fatalf("%+v", err)
//	}
package arcode
