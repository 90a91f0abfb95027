// 10 Mar 2026

// brokenio is a wrapper around an io.Reader. It lets a test decide
// exactly when reading will go wrong. Typical use: you have a string
// reader with a valid file in it, you wrap it and after some number
// of bytes every read fails with the error you chose. An earlier
// version injected failures at random, which found bugs but would not
// find the same bug twice.
package brokenio

import "io"

// A Reader passes data through until the allowance is used up. After
// that every Read returns failErr.
type Reader struct {
	rdr      io.Reader
	nAllowed int
	failErr  error
}

// NewReader wraps rdr so that reads fail with failErr once nAllowed
// bytes have gone through.
func NewReader(rdr io.Reader, nAllowed int, failErr error) *Reader {
	return &Reader{rdr: rdr, nAllowed: nAllowed, failErr: failErr}
}

func (r *Reader) Read(p []byte) (int, error) {
	if r.nAllowed <= 0 {
		return 0, r.failErr
	}
	if len(p) > r.nAllowed {
		p = p[:r.nAllowed]
	}
	n, err := r.rdr.Read(p)
	r.nAllowed -= n
	return n, err
}
