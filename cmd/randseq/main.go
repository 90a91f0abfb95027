// 11 Mar 2026

package main

import (
	"flag"
	"fmt"
	"os"
	"path"
	"strconv"

	"github.com/VirologyCharite/prseq/pkg/randseq"
	"github.com/VirologyCharite/prseq/pkg/seq/common"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options] fname nseq length\n\n", path.Base(os.Args[0]))
	flag.PrintDefaults()
}

func mymain() int {
	var args randseq.RandSeqArgs
	flag.BoolVar(&args.Fastq, "q", false, "write fastq rather than fasta")
	flag.BoolVar(&args.MkErr, "e", false, "provoke errors. The output will be structurally broken")
	flag.Int64Var(&args.Iseed, "r", 1637, "random number seed")
	flag.StringVar(&args.Cmmt, "c", "random test sequence", "comment used to build the ids")
	flag.Usage = usage

	flag.Parse()
	if flag.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "Expected three arguments. Got", flag.NArg())
		usage()
		return common.ExitUsageError
	}
	fname := flag.Arg(0)
	var err error
	if args.Nseq, err = strconv.Atoi(flag.Arg(1)); err != nil {
		fmt.Fprintln(os.Stderr, "nseq:", err)
		return common.ExitUsageError
	}
	if args.Len, err = strconv.Atoi(flag.Arg(2)); err != nil {
		fmt.Fprintln(os.Stderr, "length:", err)
		return common.ExitUsageError
	}

	if fname == "-" {
		args.Wrtr = os.Stdout
	} else {
		fp, err := os.Create(fname)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return common.ExitFailure
		}
		defer fp.Close()
		args.Wrtr = fp
	}
	if err := randseq.RandSeqMain(&args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return common.ExitFailure
	}
	return common.ExitSuccess
}

func main() {
	os.Exit(mymain())
}
