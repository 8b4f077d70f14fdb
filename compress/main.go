package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fumin/arcode"
)

var precision = flag.Int("precision", 30, "arithmetic coder precision in bits")
var order1 = flag.Bool("order1", false, "use an order-1 (previous byte) context model")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] filename\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	name := flag.Arg(0)
	if name == "" {
		flag.Usage()
		os.Exit(1)
	}

	f, err := os.Open(name)
	if err != nil {
		log.Fatalf("%+v", err)
	}
	defer f.Close()

	compress := arcode.Compress
	if *order1 {
		compress = arcode.CompressOrder1
	}
	if err := compress(os.Stdout, f, *precision); err != nil {
		log.Fatalf("%+v", err)
	}
}
