package Console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Reader reads whitespace separated integers.
type Reader struct {
	sc *bufio.Scanner
}

func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &Reader{sc}
}

// Int returns the next integer, io.EOF when the input is exhausted.
func (r *Reader) Int() (int, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}
	v, err := strconv.Atoi(r.sc.Text())
	if err != nil {
		return 0, fmt.Errorf("reading integer: %w", err)
	}
	return v, nil
}

// Ints fills vs. Running out of input in the middle is io.ErrUnexpectedEOF.
func (r *Reader) Ints(vs []int) (err error) {
	for i := range vs {
		if vs[i], err = r.Int(); err == io.EOF {
			return io.ErrUnexpectedEOF
		} else if err != nil {
			return err
		}
	}
	return nil
}
