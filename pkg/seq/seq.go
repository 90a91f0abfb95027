// 2 Mar 2026

// Package seq reads the two common plain-text sequence formats, one
// record per call. Fasta records are a ">" header line followed by
// sequence lines. Fastq records are an "@" header, sequence lines, a
// "+" separator line and quality lines whose total length must equal
// the sequence length. Files of any size can be read, since only the
// record under construction is held in memory.
package seq

// The characters that introduce the structural lines.
const (
	fastaHeader = '>'
	fastqHeader = '@'
	fastqSep    = '+'
)

// A Record is one parsed entry. Qual is empty for fasta input. The
// strings are fresh copies owned by the caller. They do not change
// when the reader moves on to the next record.
type Record struct {
	ID   string
	Seq  string
	Qual string
}

// Len returns the length of the sequence.
func (r Record) Len() int { return len(r.Seq) }
