// 5 Mar 2026

package seq

import "io"

// A FastaReader reads fasta records from one stream, strictly
// forward. One reader must not be driven from more than one goroutine
// at a time, but independent readers over independent streams share
// nothing.
type FastaReader struct {
	lines *LineReader
	id    growBuf
	sq    growBuf
	err   error // first error seen, repeated forever after
}

// NewFastaReader returns a reader bound to rdr. Closing rdr, when
// there is something to close, stays the caller's job.
func NewFastaReader(rdr io.Reader) *FastaReader {
	return &FastaReader{
		lines: NewLineReader(rdr),
		id:    newGrowBuf(initIDSize),
		sq:    newGrowBuf(initSeqSize),
	}
}

// Read returns the next record, or io.EOF when the input ends cleanly
// between records. Any other error means the reader is finished.
// Later calls return the same error rather than trying to resync.
func (fr *FastaReader) Read() (Record, error) {
	if fr.err != nil {
		return Record{}, fr.err
	}
	rec, err := fr.read()
	if err != nil && err != io.EOF {
		fr.err = err
	}
	return rec, err
}

func (fr *FastaReader) read() (Record, error) {
	fr.id.reset()
	fr.sq.reset()

	line, err := seekHeader(fr.lines, fastaHeader)
	if err != nil {
		return Record{}, err // io.EOF here is a clean end
	}
	if err := fr.id.push(line[1:]); err != nil {
		return Record{}, parseErr(err, fr.lines, nil)
	}

	for { // sequence lines, up to the next ">" or the end of input
		line, err := fr.lines.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Record{}, err
		}
		if len(line) == 0 {
			continue
		}
		if line[0] == fastaHeader {
			fr.lines.Unread() // belongs to the next record
			break
		}
		if err := fr.sq.push(line); err != nil {
			return Record{}, parseErr(err, fr.lines, nil)
		}
	}
	return Record{ID: fr.id.str(), Seq: fr.sq.str()}, nil
}

// seekHeader skips blank lines until the header of the next record.
// io.EOF with no header pending is not an error. A non-blank line
// that does not start with the sigil is.
func seekHeader(lines *LineReader, sigil byte) ([]byte, error) {
	for {
		line, err := lines.Next()
		if err != nil {
			return nil, err
		}
		if len(line) == 0 {
			continue
		}
		if line[0] != sigil {
			return nil, parseErr(ErrMalformedHeader, lines, line)
		}
		return line, nil
	}
}
