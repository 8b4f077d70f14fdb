package arcode

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
)

func TestCompressDecompressRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"a",
		"hello, world",
		strings.Repeat("the quick brown fox jumps over the lazy dog. ", 200),
	}
	for _, input := range cases {
		var compressed bytes.Buffer
		if err := Compress(&compressed, strings.NewReader(input), 30); err != nil {
			t.Fatalf("compress %q: %v", input, err)
		}

		var decompressed bytes.Buffer
		if err := Decompress(&decompressed, &compressed, 30); err != nil {
			t.Fatalf("decompress %q: %v", input, err)
		}
		if decompressed.String() != input {
			t.Errorf("round trip mismatch: got %q, want %q", decompressed.String(), input)
		}
	}
}

func TestCompressRatioOnRepetitiveInput(t *testing.T) {
	input := []byte(strings.Repeat("aaaaaaaaaa", 1000))
	var compressed bytes.Buffer
	if err := Compress(&compressed, bytes.NewReader(input), 30); err != nil {
		t.Fatalf("%v", err)
	}
	if compressed.Len() >= len(input)/10 {
		t.Errorf("compressed %d bytes from %d repetitive bytes, expected much smaller", compressed.Len(), len(input))
	}
}

func TestCompressDecompressRandomBytes(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	input := make([]byte, 5000)
	rng.Read(input)

	var compressed bytes.Buffer
	if err := Compress(&compressed, bytes.NewReader(input), 30); err != nil {
		t.Fatalf("%v", err)
	}
	var decompressed bytes.Buffer
	if err := Decompress(&decompressed, &compressed, 30); err != nil {
		t.Fatalf("%v", err)
	}
	if !bytes.Equal(decompressed.Bytes(), input) {
		t.Errorf("round trip mismatch on random bytes")
	}
}
