// 9 Mar 2026

// Package zwrap opens a byte stream and quietly undoes whatever
// compression it finds. We sniff the first few bytes rather than
// trusting filenames, since sequence files arrive from pipes and
// download scripts with any name at all. Reading only. Closing the
// returned reader closes the decompressor and then the source.
package zwrap

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"errors"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	magicGzip  = []byte{0x1f, 0x8b}
	magicBzip2 = []byte{'B', 'Z', 'h'}
	magicZstd  = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

type rdClsr struct {
	io.Reader
	closers []io.Closer // innermost first
}

// Close closes everything, decompressor before source, and keeps
// going past failures so the file descriptor is not leaked.
func (r *rdClsr) Close() error {
	var s string
	for _, c := range r.closers {
		if e := c.Close(); e != nil {
			if s != "" {
				s = s + " "
			}
			s = s + e.Error()
		}
	}
	if s == "" {
		return nil
	}
	return errors.New(s)
}

// Open opens fname, with "-" meaning stdin, and wraps it. Stdin is
// never closed by the returned Close.
func Open(fname string) (io.ReadCloser, error) {
	if fname == "-" || fname == "" {
		return Wrap(io.NopCloser(os.Stdin))
	}
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	return Wrap(fp)
}

// Wrap sniffs fp and returns a reader for the decompressed stream, or
// for fp as it is if the bytes do not look compressed. A stream
// shorter than any magic number is passed through unchanged.
func Wrap(fp io.ReadCloser) (io.ReadCloser, error) {
	br := bufio.NewReader(fp)
	magic, err := br.Peek(4)
	if err != nil && err != io.EOF {
		fp.Close()
		return nil, err
	}
	switch {
	case bytes.HasPrefix(magic, magicGzip):
		zr, err := gzip.NewReader(br)
		if err != nil {
			fp.Close()
			return nil, err
		}
		return &rdClsr{Reader: zr, closers: []io.Closer{zr, fp}}, nil
	case bytes.HasPrefix(magic, magicBzip2):
		return &rdClsr{Reader: bzip2.NewReader(br), closers: []io.Closer{fp}}, nil
	case bytes.HasPrefix(magic, magicZstd):
		zr, err := zstd.NewReader(br)
		if err != nil {
			fp.Close()
			return nil, err
		}
		rc := zr.IOReadCloser()
		return &rdClsr{Reader: rc, closers: []io.Closer{rc, fp}}, nil
	}
	return &rdClsr{Reader: br, closers: []io.Closer{fp}}, nil
}
