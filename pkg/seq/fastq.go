// 6 Mar 2026

package seq

import "io"

// A FastqReader reads fastq records. The quality part has no marker
// character of its own, since "@" and "+" are legal quality values,
// so quality lines are collected until their total length reaches the
// sequence length. A last quality line that pushes the total past the
// sequence length makes the record invalid. We never trim it to fit.
type FastqReader struct {
	lines *LineReader
	id    growBuf
	sq    growBuf
	ql    growBuf
	err   error // first error seen, repeated forever after
}

// NewFastqReader returns a reader bound to rdr. The caller keeps
// ownership of rdr.
func NewFastqReader(rdr io.Reader) *FastqReader {
	return &FastqReader{
		lines: NewLineReader(rdr),
		id:    newGrowBuf(initIDSize),
		sq:    newGrowBuf(initSeqSize),
		ql:    newGrowBuf(initSeqSize),
	}
}

// Read returns the next record, or io.EOF when the input ends cleanly
// between records. Every record it returns satisfies
// len(rec.Seq) == len(rec.Qual). Errors are terminal, as for
// FastaReader.
func (fq *FastqReader) Read() (Record, error) {
	if fq.err != nil {
		return Record{}, fq.err
	}
	rec, err := fq.read()
	if err != nil && err != io.EOF {
		fq.err = err
	}
	return rec, err
}

func (fq *FastqReader) read() (Record, error) {
	fq.id.reset()
	fq.sq.reset()
	fq.ql.reset()

	line, err := seekHeader(fq.lines, fastqHeader)
	if err != nil {
		return Record{}, err // io.EOF here is a clean end
	}
	if err := fq.id.push(line[1:]); err != nil {
		return Record{}, parseErr(err, fq.lines, nil)
	}

	// Sequence lines, up to the "+" separator. The separator line is
	// consumed and anything after its "+" is discarded. Input ending
	// before the separator leaves the record incomplete.
	for {
		line, err := fq.lines.Next()
		if err == io.EOF {
			return Record{}, parseErr(ErrUnexpectedEOF, fq.lines, nil)
		}
		if err != nil {
			return Record{}, err
		}
		if len(line) == 0 {
			continue
		}
		if line[0] == fastqSep {
			break
		}
		if err := fq.sq.push(line); err != nil {
			return Record{}, parseErr(err, fq.lines, nil)
		}
	}

	// Quality lines, by length.
	want := fq.sq.len()
	for fq.ql.len() < want {
		line, err := fq.lines.Next()
		if err == io.EOF {
			return Record{}, parseErr(ErrUnexpectedEOF, fq.lines, nil)
		}
		if err != nil {
			return Record{}, err
		}
		if len(line) == 0 {
			continue
		}
		if err := fq.ql.push(line); err != nil {
			return Record{}, parseErr(err, fq.lines, nil)
		}
	}
	if fq.ql.len() != want {
		return Record{}, parseErr(ErrLengthMismatch, fq.lines, nil)
	}
	return Record{ID: fq.id.str(), Seq: fq.sq.str(), Qual: fq.ql.str()}, nil
}
