// 4 Mar 2026

// A LineReader hands out the input one line at a time and lets the
// caller push the most recent line back. Pushing back is how the
// fasta reader looks at a line, decides it belongs to the next record
// and leaves it for the next call. The older trick of seeking the
// file backwards by the length of the line does not survive pipes or
// decompressors, so the slot lives here instead.

package seq

import (
	"bufio"
	"io"
)

const defaultBufSize = 64 * 1024

type LineReader struct {
	rdr    *bufio.Reader
	long   growBuf // spill space for lines longer than the bufio buffer
	held   []byte  // most recent line, doubles as the pushback slot
	n      int     // number of the held line, counting from 1
	pushed bool
	sawEOF bool
}

// NewLineReader wraps rdr. The caller keeps ownership of rdr and does
// any closing it needs.
func NewLineReader(rdr io.Reader) *LineReader {
	return newLineReaderSize(rdr, defaultBufSize)
}

// newLineReaderSize exists so tests can provoke the long-line path
// with a small buffer.
func newLineReaderSize(rdr io.Reader, size int) *LineReader {
	return &LineReader{
		rdr:  bufio.NewReaderSize(rdr, size),
		long: newGrowBuf(0),
	}
}

// Next returns the next line with the trailing "\n" removed and a
// "\r" before it also removed, so a file written with CRLF endings
// reads the same as one written with plain LF. A "\r" anywhere else
// is data, not a terminator. The returned slice is only valid until
// the next call. At the end of the input Next returns io.EOF, which
// is how a blank line (zero length, nil error) and the end of the
// stream stay distinguishable. A final line with no terminator is
// still a line; io.EOF comes on the call after it.
func (l *LineReader) Next() ([]byte, error) {
	if l.pushed {
		l.pushed = false
		return l.held, nil
	}
	if l.sawEOF {
		return nil, io.EOF
	}
	line, err := l.rdr.ReadSlice('\n')
	if err == bufio.ErrBufferFull { // Does not fit in the bufio buffer.
		l.long.reset() //              Collect the pieces.
		for err == bufio.ErrBufferFull {
			if perr := l.long.push(line); perr != nil {
				return nil, perr
			}
			line, err = l.rdr.ReadSlice('\n')
		}
		if err != nil && err != io.EOF {
			return nil, err
		}
		if perr := l.long.push(line); perr != nil {
			return nil, perr
		}
		line = l.long.b
	}
	if err == io.EOF {
		l.sawEOF = true
		if len(line) == 0 {
			return nil, io.EOF
		}
	} else if err != nil {
		return nil, err
	}
	line = trimEOL(line)
	l.n++
	l.held = line
	return line, nil
}

func trimEOL(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return line
}

// Unread pushes the most recent line back so the next call to Next
// returns it again. At most one line can be outstanding. Calling
// Unread twice in a row, or before any line has been read, is a bug
// in the caller.
func (l *LineReader) Unread() {
	if l.pushed || l.n == 0 {
		panic("seq: LineReader.Unread with no line to push back")
	}
	l.pushed = true
}

// LineNum returns the number of the line most recently returned by
// Next, counting from 1. Zero means nothing has been read.
func (l *LineReader) LineNum() int { return l.n }
