// 16 Mar 2026
// fastqinfo visits a fastq file and prints counts, lengths and
// quality statistics. Reading "-" means stdin. Compressed input is
// handled without being asked. The per-position quality can also be
// drawn to a PNG.

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/VirologyCharite/prseq/pkg/fastqinfo"
	"github.com/VirologyCharite/prseq/pkg/seq/common"
)

func main() {
	var cmdArgs fastqinfo.CmdArgs
	flag.BoolVar(&cmdArgs.JSONOut, "j", false, "write the output as json")
	flag.StringVar(&cmdArgs.PlotFname, "p", "", "write a mean quality plot to this png")
	flag.StringVar(&cmdArgs.FontFname, "f", "", "ttf font for plot labels")
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
	if err := fastqinfo.Mymain(&cmdArgs); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(common.ExitFailure)
	}
	os.Exit(common.ExitSuccess)
}
