// 11 Mar 2026

/*

Randseq is for making random sequence files for testing the readers.
Usage:
	randseq [options] fname nseq length
will generate nseq records of length length and write them to fname,
or to stdout if fname is "-".

Flags:
	-q
		write fastq rather than fasta
	-e
		provoke errors. The output is structurally broken, so the
		readers have something to complain about.
	-r
		random number seed
	-c
		comment used to build the ids

We are most interested in benchmarking and parsing, so the content is
not so important. The structure is: wrapped lines, occasional blank
lines, and quality lines whose total length matches the sequence.

*/
package main
