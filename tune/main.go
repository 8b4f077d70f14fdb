// Command tune benchmarks arcode.Compress across a range of precision
// values against a sample file, reporting throughput and compression
// ratio for each.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"testing"

	"github.com/kr/pretty"

	"github.com/fumin/arcode"
)

var (
	inputPath = flag.String("f", "", "sample file to compress while tuning")
	minPrec   = flag.Int("min", 16, "minimum precision to try")
	maxPrec   = flag.Int("max", 32, "maximum precision to try")
	precStep  = flag.Int("step", 4, "precision step size")
)

type result struct {
	precision int
	bench     testing.BenchmarkResult
	ratio     float64
}

func main() {
	flag.Parse()
	if *inputPath == "" {
		log.Fatalf("usage: tune -f <sample file> [-min N] [-max N] [-step N]")
	}

	data, err := ioutil.ReadFile(*inputPath)
	if err != nil {
		log.Fatalf("%+v", err)
	}

	var results []result
	for p := *minPrec; p <= *maxPrec; p += *precStep {
		p := p
		var compressedLen int
		bench := testing.Benchmark(func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			for i := 0; i < b.N; i++ {
				var buf bytes.Buffer
				if err := arcode.Compress(&buf, bytes.NewReader(data), p); err != nil {
					b.Fatalf("%+v", err)
				}
				compressedLen = buf.Len()
			}
		})
		r := result{
			precision: p,
			bench:     bench,
			ratio:     float64(compressedLen) / float64(len(data)),
		}
		results = append(results, r)
		fmt.Printf("precision=%d %s ratio=%.4f\n", r.precision, r.bench, r.ratio)
	}

	best := results[0]
	for _, r := range results[1:] {
		if r.ratio < best.ratio {
			best = r
		}
	}
	fmt.Println("best ratio:")
	pretty.Println(best)
}
