package main

import (
	"flag"
	"log"
	"os"

	"github.com/fumin/arcode"
)

var precision = flag.Int("precision", 30, "arithmetic coder precision in bits, must match the value compress was run with")
var order1 = flag.Bool("order1", false, "decode with an order-1 (previous byte) context model, must match how the stream was compressed")

func main() {
	flag.Parse()

	decompress := arcode.Decompress
	if *order1 {
		decompress = arcode.DecompressOrder1
	}
	if err := decompress(os.Stdout, os.Stdin, *precision); err != nil {
		log.Fatalf("%+v", err)
	}
}
