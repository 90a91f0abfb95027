// 16 Mar 2026

// fastqinfo walks a fastq file and reports counts, lengths and
// quality. Base and quality tallies are kept per read position, which
// is how one spots a sequencing run going soft towards the end of the
// reads. The tallies can also be drawn as a little plot.
package fastqinfo

import (
	"fmt"
	"io"
	"os"

	"github.com/andrew-torda/matrix"
	json "github.com/goccy/go-json"
	"github.com/zeebo/xxh3"

	"github.com/VirologyCharite/prseq/pkg/qualplot"
	"github.com/VirologyCharite/prseq/pkg/seq"
	"github.com/VirologyCharite/prseq/pkg/zwrap"
)

// CmdArgs is literally the command line arguments after parsing.
type CmdArgs struct {
	InSeqFname string
	JSONOut    bool
	PlotFname  string    // write a mean-quality plot here, "" for none
	FontFname  string    // ttf for plot labels, "" for a bare plot
	Wrtr       io.Writer // normally stdout, a buffer under test
}

// qualOffset converts a printable quality byte to a phred value.
const qualOffset = 33

// baseRows is the row labelling of the base count matrix. Anything
// that is not ACGT lands in the last row.
var baseRows = []byte("ACGTN")

func baseNdx(c byte) int {
	switch c {
	case 'A', 'a':
		return 0
	case 'C', 'c':
		return 1
	case 'G', 'g':
		return 2
	case 'T', 't':
		return 3
	}
	return 4
}

// A posTally counts bases and sums qualities at each read position.
// counts.Mat looks like [symbol][position], the same shape the
// alignment tools use for residue counts. Reads are not all the same
// length, so the matrices regrow by doubling like the field buffers
// in the reader.
type posTally struct {
	counts *matrix.FMatrix2d // rows indexed by baseNdx
	quals  *matrix.FMatrix2d // row 0 quality sum, row 1 observations
	ncol   int
}

func newPosTally(ncol int) *posTally {
	if ncol < 1 {
		ncol = 1
	}
	return &posTally{
		counts: matrix.NewFMatrix2d(len(baseRows), ncol),
		quals:  matrix.NewFMatrix2d(2, ncol),
		ncol:   ncol,
	}
}

func regrow(old *matrix.FMatrix2d, nrow, ncol int) *matrix.FMatrix2d {
	t := matrix.NewFMatrix2d(nrow, ncol)
	for i := range old.Mat {
		copy(t.Mat[i], old.Mat[i])
	}
	return t
}

func (pt *posTally) grow(n int) {
	ncol := pt.ncol
	for ncol < n {
		ncol *= 2
	}
	pt.counts = regrow(pt.counts, len(baseRows), ncol)
	pt.quals = regrow(pt.quals, 2, ncol)
	pt.ncol = ncol
}

func (pt *posTally) add(rec seq.Record) {
	if rec.Len() > pt.ncol {
		pt.grow(rec.Len())
	}
	for i := 0; i < rec.Len(); i++ {
		pt.counts.Mat[baseNdx(rec.Seq[i])][i]++
		pt.quals.Mat[0][i] += float32(rec.Qual[i]) - qualOffset
		pt.quals.Mat[1][i]++
	}
}

// meanPerPos returns the mean quality at each position that was ever
// observed.
func (pt *posTally) meanPerPos() []float32 {
	var out []float32
	for i := 0; i < pt.ncol; i++ {
		n := pt.quals.Mat[1][i]
		if n == 0 {
			break
		}
		out = append(out, pt.quals.Mat[0][i]/n)
	}
	return out
}

// composition returns the fraction of each of baseRows over the whole
// file.
func (pt *posTally) composition() []float32 {
	out := make([]float32, len(baseRows))
	var tot float32
	for ir := range out {
		for _, c := range pt.counts.Mat[ir] {
			out[ir] += c
		}
		tot += out[ir]
	}
	if tot == 0 {
		return out
	}
	for ir := range out {
		out[ir] /= tot
	}
	return out
}

// Stats is what we collect in one pass over the file.
type Stats struct {
	File        string    `json:"file"`
	NSeq        int       `json:"num_seq"`
	TotBases    int       `json:"total_bases"`
	MinLen      int       `json:"min_len"`
	MaxLen      int       `json:"max_len"`
	MeanLen     float64   `json:"mean_len"`
	MeanQual    float64   `json:"mean_qual"`
	Composition []float32 `json:"composition"` // fractions, order ACGTN
	QualPerPos  []float32 `json:"qual_per_pos"`
	Checksum    string    `json:"checksum,omitempty"`
}

// Gather reads every record from rdr and accumulates the statistics.
func Gather(rdr io.Reader) (*Stats, error) {
	fq := seq.NewFastqReader(rdr)
	sum := xxh3.New()
	pt := newPosTally(256)

	st := &Stats{}
	var qualTot float64
	for {
		rec, err := fq.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		st.NSeq++
		l := rec.Len()
		st.TotBases += l
		if st.NSeq == 1 || l < st.MinLen {
			st.MinLen = l
		}
		if l > st.MaxLen {
			st.MaxLen = l
		}
		for i := 0; i < l; i++ {
			qualTot += float64(rec.Qual[i]) - qualOffset
		}
		pt.add(rec)
		sum.WriteString(rec.ID)
		sum.WriteString(rec.Seq)
		sum.WriteString(rec.Qual)
	}
	if st.NSeq > 0 {
		st.MeanLen = float64(st.TotBases) / float64(st.NSeq)
	}
	if st.TotBases > 0 {
		st.MeanQual = qualTot / float64(st.TotBases)
	}
	st.Composition = pt.composition()
	st.QualPerPos = pt.meanPerPos()
	st.Checksum = fmt.Sprintf("%016x", sum.Sum64())
	return st, nil
}

func (st *Stats) print(w io.Writer) {
	fmt.Fprintln(w, "File:", st.File)
	fmt.Fprintln(w, "Total sequences:", st.NSeq)
	fmt.Fprintln(w, "Total bases:", st.TotBases)
	if st.NSeq > 0 {
		fmt.Fprintf(w, "Average length: %.1f bp\n", st.MeanLen)
		fmt.Fprintf(w, "Min length: %d bp\n", st.MinLen)
		fmt.Fprintf(w, "Max length: %d bp\n", st.MaxLen)
		fmt.Fprintf(w, "Mean quality: %.1f\n", st.MeanQual)
		fmt.Fprint(w, "Base composition:")
		for i, c := range baseRows {
			fmt.Fprintf(w, " %c %.1f%%", c, st.Composition[i]*100)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "Checksum (xxh3):", st.Checksum)
}

// Mymain is the tool after flag parsing.
func Mymain(args *CmdArgs) error {
	w := args.Wrtr
	if w == nil {
		w = os.Stdout
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

	if args.PlotFname != "" {
		fplot, err := os.Create(args.PlotFname)
		if err != nil {
			return err
		}
		err = qualplot.Plot(fplot, st.QualPerPos, args.FontFname)
		if e := fplot.Close(); err == nil {
			err = e
		}
		if err != nil {
			return fmt.Errorf("plotting to %s: %w", args.PlotFname, err)
		}
	}
	if args.JSONOut {
		return json.NewEncoder(w).Encode(st)
	}
	st.print(w)
	return nil
}
