// 12 Mar 2026

package fastainfo_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/klauspost/compress/gzip"

	"github.com/VirologyCharite/prseq/pkg/fastainfo"
	"github.com/VirologyCharite/prseq/pkg/seq/common"
)

const threeSeqs = `>s1 one
ACGT
ACG
>s2 two
TT

>s3 three
GGGGGGGGGG
`

func TestGather(t *testing.T) {
	st, err := fastainfo.Gather(strings.NewReader(threeSeqs))
	if err != nil {
		t.Fatal(err)
	}
	if st.NSeq != 3 {
		t.Fatal("got", st.NSeq, "sequences")
	}
	if st.TotLen != 19 || st.MinLen != 2 || st.MaxLen != 10 {
		t.Fatalf("lengths wrong: tot %d min %d max %d",
			st.TotLen, st.MinLen, st.MaxLen)
	}
	if st.IDDigest == "" || st.SeqDigest == "" || st.Checksum == "" {
		t.Fatal("a digest came back empty")
	}
}

func TestGatherEmpty(t *testing.T) {
	st, err := fastainfo.Gather(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if st.NSeq != 0 || st.MeanLen != 0 {
		t.Fatalf("empty input gave %+v", st)
	}
}

// The digests must only see content, not layout, so rewrapping the
// sequence lines changes nothing.
func TestDigestIgnoresWrapping(t *testing.T) {
	rewrapped := ">s1 one\nACGTACG\n>s2 two\nTT\n>s3 three\nGGGGG\nGGGGG\n"
	a, err := fastainfo.Gather(strings.NewReader(threeSeqs))
	if err != nil {
		t.Fatal(err)
	}
	b, err := fastainfo.Gather(strings.NewReader(rewrapped))
	if err != nil {
		t.Fatal(err)
	}
	if a.IDDigest != b.IDDigest || a.SeqDigest != b.SeqDigest || a.Checksum != b.Checksum {
		t.Fatal("digests changed when only line wrapping changed")
	}
}

func TestQuickCount(t *testing.T) {
	fname, err := common.WrtTemp(threeSeqs)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	n, err := fastainfo.QuickCount(fname)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Fatal("quick count got", n)
	}
}

func TestQuickCountEmpty(t *testing.T) {
	fname, err := common.WrtTemp("")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	n, err := fastainfo.QuickCount(fname)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatal("empty file counted", n, "sequences")
	}
}

func TestMymainText(t *testing.T) {
	fname, err := common.WrtTemp(threeSeqs)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	var out bytes.Buffer
	args := fastainfo.CmdArgs{InSeqFname: fname, Wrtr: &out}
	if err := fastainfo.Mymain(&args); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Number of sequences: 3") {
		t.Fatalf("output was\n%s", out.String())
	}
}

func TestMymainJSON(t *testing.T) {
	fname, err := common.WrtTemp(threeSeqs)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	var out bytes.Buffer
	args := fastainfo.CmdArgs{InSeqFname: fname, JSONOut: true, Wrtr: &out}
	if err := fastainfo.Mymain(&args); err != nil {
		t.Fatal(err)
	}
	var st fastainfo.Stats
	if err := json.Unmarshal(out.Bytes(), &st); err != nil {
		t.Fatal("bad json:", err)
	}
	if st.NSeq != 3 || st.File != fname {
		t.Fatalf("json said %+v", st)
	}
}

// A gzipped file must give the same answers as the plain one.
func TestMymainGzip(t *testing.T) {
	var zbuf bytes.Buffer
	zw := gzip.NewWriter(&zbuf)
	zw.Write([]byte(threeSeqs))
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	fname, err := common.WrtTemp(zbuf.String())
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)

	var out bytes.Buffer
	args := fastainfo.CmdArgs{InSeqFname: fname, JSONOut: true, Wrtr: &out}
	if err := fastainfo.Mymain(&args); err != nil {
		t.Fatal(err)
	}
	var st fastainfo.Stats
	if err := json.Unmarshal(out.Bytes(), &st); err != nil {
		t.Fatal(err)
	}
	plain, err := fastainfo.Gather(strings.NewReader(threeSeqs))
	if err != nil {
		t.Fatal(err)
	}
	if st.NSeq != plain.NSeq || st.SeqDigest != plain.SeqDigest {
		t.Fatal("gzipped file disagreed with plain text")
	}
}

func TestMymainBadFile(t *testing.T) {
	args := fastainfo.CmdArgs{InSeqFname: "/no/such/place", Wrtr: &bytes.Buffer{}}
	if err := fastainfo.Mymain(&args); err == nil {
		t.Fatal("missing file was not reported")
	}
}
