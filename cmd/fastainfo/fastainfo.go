// 12 Mar 2026
// fastainfo visits a fasta file and prints counts, lengths and
// digests. Reading "-" means stdin. Compressed input is handled
// without being asked.

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/VirologyCharite/prseq/pkg/fastainfo"
	"github.com/VirologyCharite/prseq/pkg/seq/common"
)

func main() {
	var cmdArgs fastainfo.CmdArgs
	flag.BoolVar(&cmdArgs.JSONOut, "j", false, "write the output as json")
	flag.BoolVar(&cmdArgs.Quick, "q", false, "only count records, via mmap. Needs a real, uncompressed file")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] file\n\n", path.Base(os.Args[0]))
		flag.PrintDefaults()
	}

	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Expected one argument. Got", flag.NArg())
		flag.Usage()
		os.Exit(common.ExitUsageError)
	}
	cmdArgs.InSeqFname = flag.Arg(0)
	if err := fastainfo.Mymain(&cmdArgs); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(common.ExitFailure)
	}
	os.Exit(common.ExitSuccess)
}
