// Command linal builds a small literal matrix and prints its determinant.
//
// Usage:
//
//	linal            # print the matrix and det
//	linal -inverse   # also print the inverse, or "singular"
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/linal/matrix"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("linal: ")

	inverse := flag.Bool("inverse", false, "also print the inverse")
	flag.Parse()

	if err := run(os.Stdout, *inverse); err != nil {
		log.Fatal(err)
	}
}

func run(w io.Writer, inverse bool) error {
	m, err := matrix.FromRows([][]float64{
		{8, 3, 2},
		{1, 7, 9},
		{5, 3, 3},
	})
	if err != nil {
		return err
	}

	d, err := matrix.Det(m)
	if err != nil {
		return err
	}
	fmt.Fprint(w, m)
	fmt.Fprintln(w, "det =", d)

	if !inverse {
		return nil
	}
	inv, ok, err := matrix.Inverse(m)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(w, "singular")
		return nil
	}
	fmt.Fprint(w, inv)

	return nil
}
