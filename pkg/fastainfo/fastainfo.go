// 12 Mar 2026

// fastainfo walks a fasta file and prints what one usually wants to
// know before doing anything else: how many sequences, how long they
// are, and digests so two copies of a file can be compared without
// moving either of them.
package fastainfo

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
	json "github.com/goccy/go-json"
	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"

	"github.com/VirologyCharite/prseq/pkg/seq"
	"github.com/VirologyCharite/prseq/pkg/zwrap"
)

// CmdArgs is literally the command line arguments after parsing.
type CmdArgs struct {
	InSeqFname string
	JSONOut    bool      // machine readable output
	Quick      bool      // only count records, via mmap
	Wrtr       io.Writer // normally stdout, a buffer under test
}

// Stats is what we collect in one pass over the file.
type Stats struct {
	File      string  `json:"file"`
	NSeq      int     `json:"num_seq"`
	TotLen    int     `json:"total_len"`
	MinLen    int     `json:"min_len"`
	MaxLen    int     `json:"max_len"`
	MeanLen   float64 `json:"mean_len"`
	IDDigest  string  `json:"id_digest,omitempty"`
	SeqDigest string  `json:"seq_digest,omitempty"`
	Checksum  string  `json:"checksum,omitempty"`
}

// Gather reads every record from rdr and accumulates the statistics
// and digests. The blake2b digests run over the ids and the sequences
// separately, in file order, so they only depend on content. The
// xxh3 checksum runs over both and is the cheap answer to "same
// file?".
func Gather(rdr io.Reader) (*Stats, error) {
	fr := seq.NewFastaReader(rdr)
	idHash, _ := blake2b.New256(nil)
	seqHash, _ := blake2b.New256(nil)
	sum := xxh3.New()

	st := &Stats{}
	for {
		rec, err := fr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		st.NSeq++
		l := rec.Len()
		st.TotLen += l
		if st.NSeq == 1 || l < st.MinLen {
			st.MinLen = l
		}
		if l > st.MaxLen {
			st.MaxLen = l
		}
		io.WriteString(idHash, rec.ID)
		io.WriteString(seqHash, rec.Seq)
		sum.WriteString(rec.ID)
		sum.WriteString(rec.Seq)
	}
	if st.NSeq > 0 {
		st.MeanLen = float64(st.TotLen) / float64(st.NSeq)
	}
	st.IDDigest = fmt.Sprintf("%x", idHash.Sum(nil))
	st.SeqDigest = fmt.Sprintf("%x", seqHash.Sum(nil))
	st.Checksum = fmt.Sprintf("%016x", sum.Sum64())
	return st, nil
}

// QuickCount counts records without parsing them, by memory mapping
// the file and counting header sigils at line starts. It only works
// on a real, uncompressed file, which is also the only case where it
// is worth doing.
func QuickCount(fname string) (int, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return 0, err
	}
	defer fp.Close()
	if fi, err := fp.Stat(); err != nil {
		return 0, err
	} else if fi.Size() == 0 { // mapping zero bytes is an error on some systems
		return 0, nil
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return 0, err
	}
	defer mm.Unmap()
	n := bytes.Count(mm, []byte("\n>"))
	if mm[0] == '>' {
		n++
	}
	return n, nil
}

func (st *Stats) print(w io.Writer) {
	fmt.Fprintln(w, "File:", st.File)
	fmt.Fprintln(w, "Number of sequences:", st.NSeq)
	fmt.Fprintln(w, "Total sequence length:", st.TotLen, "bp")
	if st.NSeq > 0 {
		fmt.Fprintf(w, "Shortest: %d bp, longest: %d bp, mean: %.1f bp\n",
			st.MinLen, st.MaxLen, st.MeanLen)
	}
	fmt.Fprintln(w, "ID digest (blake2b):", st.IDDigest)
	fmt.Fprintln(w, "Sequence digest (blake2b):", st.SeqDigest)
	fmt.Fprintln(w, "Checksum (xxh3):", st.Checksum)
}

// Mymain is the tool after flag parsing.
func Mymain(args *CmdArgs) error {
	w := args.Wrtr
	if w == nil {
		w = os.Stdout
	}
	if args.Quick {
		n, err := QuickCount(args.InSeqFname)
		if err != nil {
			return err
		}
		if args.JSONOut {
			return json.NewEncoder(w).Encode(&Stats{File: args.InSeqFname, NSeq: n})
		}
		fmt.Fprintln(w, "Number of sequences:", n)
		return nil
	}

	fp, err := zwrap.Open(args.InSeqFname)
	if err != nil {
		return err
	}
	defer fp.Close()
	st, err := Gather(fp)
	if err != nil {
		return fmt.Errorf("reading %s: %w", args.InSeqFname, err)
	}
	st.File = args.InSeqFname
	if args.JSONOut {
		return json.NewEncoder(w).Encode(st)
	}
	st.print(w)
	return nil
}
