// 11 Mar 2026

// randseq makes random sequence files for testing and benchmarking.
// We are most interested in parsing, so the content hardly matters.
// The structure does: wrapped lines, the odd blank line and, for
// fastq, quality lines whose total length matches the sequence.
package randseq

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
)

const lineWidth = 60

var letters = []byte("ACGT")

// RandSeqArgs is the set of arguments passed to the main function.
type RandSeqArgs struct {
	Iseed int64     // random number seed
	Wrtr  io.Writer // where we write to
	Cmmt  string    // comment used to build the ids
	Nseq  int       // number of records
	Len   int       // length of each sequence
	Fastq bool      // write fastq instead of fasta
	MkErr bool      // break the output so readers must complain
}

// getseq returns a byte slice with a random sequence in it
func getseq(seqlen int, rnd *rand.Rand) []byte {
	ret := make([]byte, seqlen)
	for i := range ret {
		ret[i] = letters[rnd.Intn(len(letters))]
	}
	return ret
}

// getqual returns random printable phred+33 quality values
func getqual(seqlen int, rnd *rand.Rand) []byte {
	ret := make([]byte, seqlen)
	for i := range ret {
		ret[i] = byte('!' + rnd.Intn(41))
	}
	return ret
}

// wrapped writes s broken into lines of lineWidth. Sometimes it slips
// in a blank line, which readers are supposed to ignore.
func wrapped(w io.Writer, s []byte, rnd *rand.Rand) {
	for ; len(s) > lineWidth; s = s[lineWidth:] {
		w.Write(s[:lineWidth])
		io.WriteString(w, "\n")
		if rnd.Intn(10) == 0 {
			io.WriteString(w, "\n")
		}
	}
	w.Write(s)
	io.WriteString(w, "\n")
}

// RandSeqMain writes Nseq random records to args.Wrtr. With MkErr set
// the output is deliberately broken: a naked sequence line before the
// first fasta record, or a short quality on the last fastq record.
func RandSeqMain(args *RandSeqArgs) error {
	rnd := rand.New(rand.NewSource(args.Iseed))
	w := bufio.NewWriter(args.Wrtr)

	if args.MkErr && !args.Fastq {
		fmt.Fprintln(w, "ACGT")
	}
	for i := 1; i <= args.Nseq; i++ {
		s := getseq(args.Len, rnd)
		if args.Fastq {
			fmt.Fprintf(w, "@%s %d\n", args.Cmmt, i)
			wrapped(w, s, rnd)
			fmt.Fprintln(w, "+")
			q := getqual(args.Len, rnd)
			if args.MkErr && i == args.Nseq && len(q) > 0 {
				q = q[:len(q)-1]
			}
			wrapped(w, q, rnd)
		} else {
			fmt.Fprintf(w, ">%s %d\n", args.Cmmt, i)
			wrapped(w, s, rnd)
		}
	}
	return w.Flush()
}
