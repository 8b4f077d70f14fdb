// Command cluster computes a normalized-compression-distance matrix over
// a directory of files, using arcode as the complexity estimator: the
// compressed size of a file stands in for its Kolmogorov complexity, and
// the compressed size of two files concatenated stands in for their
// joint complexity. Each Compress call opens its own SourceModel and
// Encoder, so distance computations for independent pairs never share
// mutable coder state.
package main

import (
	"bytes"
	"flag"
	"io"
	"io/ioutil"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/fumin/arcode"
)

var (
	intelligenceType = flag.String("i", "arcode", "complexity estimator: arcode or targz")
	dataDir          = flag.String("d", ".", "data directory")
	precision        = flag.Int("precision", 30, "arithmetic coder precision in bits")
)

func main() {
	flag.Parse()
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	if err := run(*intelligenceType, *dataDir); err != nil {
		log.Fatalf("%+v", err)
	}
}

func run(intelligence, dir string) error {
	data, err := listFiles(dir)
	if err != nil {
		return errors.Wrap(err, "")
	}
	distMat, err := distanceMatrix(intelligence, data)
	if err != nil {
		return errors.Wrap(err, "")
	}

	if err := display(data, distMat); err != nil {
		return errors.Wrap(err, "")
	}
	return nil
}

func display(data []string, distMat []float64) error {
	// Print data as a comma separated array.
	buf := bytes.NewBuffer(nil)
	for i, fpath := range data {
		if err := buf.WriteByte('"'); err != nil {
			return errors.Wrap(err, "")
		}

		name := filepath.Base(fpath)
		base := strings.TrimSuffix(name, filepath.Ext(name))
		if _, err := buf.WriteString(base); err != nil {
			return errors.Wrap(err, "")
		}

		if err := buf.WriteByte('"'); err != nil {
			return errors.Wrap(err, "")
		}

		if i == len(data)-1 {
			break
		}
		if err := buf.WriteByte(','); err != nil {
			return errors.Wrap(err, "")
		}
	}
	log.Printf("[%s]", buf.Bytes())

	// Print distance matrix as a comma separated array.
	buf.Reset()
	for i, f := range distMat {
		if _, err := buf.WriteString(strconv.FormatFloat(f, 'f', -1, 64)); err != nil {
			return errors.Wrap(err, "")
		}
		if i == len(distMat)-1 {
			break
		}
		if err := buf.WriteByte(','); err != nil {
			return errors.Wrap(err, "")
		}
	}
	log.Printf("[%s]", buf.Bytes())

	return nil
}

func distance(cacher map[string]float64, intelligence, x, y string) (float64, error) {
	xyFname := filepath.Join(os.TempDir(), filepath.Base(x)+filepath.Base(y))
	xy, err := os.Create(xyFname)
	if err != nil {
		return -1, errors.Wrap(err, "")
	}
	defer os.Remove(xy.Name())
	if err := concatFiles(xy, x, y); err != nil {
		return -1, errors.Wrap(err, "")
	}

	kxy, err := complexity(cacher, intelligence, xy.Name())
	if err != nil {
		return -1, errors.Wrap(err, "")
	}
	kx, err := complexity(cacher, intelligence, x)
	if err != nil {
		return -1, errors.Wrap(err, "")
	}
	ky, err := complexity(cacher, intelligence, y)
	if err != nil {
		return -1, errors.Wrap(err, "")
	}

	minxy := kx
	if ky < kx {
		minxy = ky
	}
	maxxy := kx
	if ky > kx {
		maxxy = ky
	}

	dist := (kxy - minxy) / maxxy
	return dist, nil
}

func complexity(cacher map[string]float64, intelligence, x string) (float64, error) {
	switch intelligence {
	case "arcode":
		return complexityArcode(cacher, x)
	default:
		return complexityTarGz(x)
	}
}

func complexityArcode(cacher map[string]float64, fpath string) (float64, error) {
	size, ok := cacher[fpath]
	if ok {
		return size, nil
	}

	f, err := os.Open(fpath)
	if err != nil {
		return -1, errors.Wrap(err, "")
	}
	defer f.Close()

	buf := bytes.NewBuffer(nil)
	if err := arcode.Compress(buf, f, *precision); err != nil {
		return -1, errors.Wrap(err, "")
	}
	size = float64(buf.Len())

	cacher[fpath] = size
	return size, nil
}

func complexityTarGz(fpath string) (float64, error) {
	dst := filepath.Join(os.TempDir(), "arcode-cluster-dst")
	if err := exec.Command("tar", "zcf", dst, fpath).Run(); err != nil {
		return -1, errors.Wrap(err, "")
	}
	info, err := os.Stat(dst)
	if err != nil {
		return -1, errors.Wrap(err, "")
	}
	return float64(info.Size()), nil
}

func concatFiles(tmpf *os.File, fs ...string) error {
	for _, fpath := range fs {
		err := func(fpath string) error {
			f, err := os.Open(fpath)
			if err != nil {
				return errors.Wrap(err, "")
			}
			defer f.Close()
			if _, err := io.Copy(tmpf, f); err != nil {
				return errors.Wrap(err, "")
			}
			return nil
		}(fpath)
		if err != nil {
			return errors.Wrap(err, "")
		}
	}
	if err := tmpf.Close(); err != nil {
		return errors.Wrap(err, "")
	}
	return nil
}

func distanceMatrix(intelligence string, data []string) ([]float64, error) {
	cacher := make(map[string]float64)

	n := len(data)
	mat := make([]float64, 0, n*(n-1)/2)
	for i, dx := range data[:n-1] {
		for _, dy := range data[i+1:] {
			dist, err := distance(cacher, intelligence, dx, dy)
			if err != nil {
				return nil, errors.Wrap(err, "")
			}
			mat = append(mat, dist)
			log.Printf("%q-%q: %f", dx, dy, dist)
		}
	}
	return mat, nil
}

func listFiles(dir string) ([]string, error) {
	files, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	data := make([]string, 0, len(files))
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data = append(data, filepath.Join(dir, f.Name()))
	}
	return data, nil
}
