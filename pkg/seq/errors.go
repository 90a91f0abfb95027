// 4 Mar 2026

package seq

import (
	"errors"
	"strconv"
)

// Sentinel errors. Callers can use errors.Is on these to tell the
// structural problems apart. Everything a reader returns, other than
// io.EOF and errors from the underlying stream, wraps one of them.
var (
	ErrMalformedHeader = errors.New("record header line missing its leading sigil")
	ErrUnexpectedEOF   = errors.New("input ended in the middle of a record")
	ErrLengthMismatch  = errors.New("sequence and quality lengths differ")
	ErrAllocation      = errors.New("field would grow past the allocation ceiling")
)

const maxMsgLen = 70

// A ParseError says what went wrong and where. We save the start of
// the offending line, truncated, since header lines in real files can
// be enormous.
type ParseError struct {
	Line int    // line number, counting from 1. Zero if no line is to blame.
	Text string // start of the offending line
	Err  error  // one of the sentinels above
}

func (e *ParseError) Error() string {
	msg := e.Err.Error()
	if e.Line != 0 {
		msg = "line " + strconv.Itoa(e.Line) + ": " + msg
	}
	if e.Text != "" {
		msg += "\nline starts: " + e.Text
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// parseErr builds a ParseError from the line the reader was looking
// at. Pass a nil line for conditions like hitting the end of input,
// where no single line is at fault.
func parseErr(kind error, lines *LineReader, line []byte) *ParseError {
	return &ParseError{Line: lines.LineNum(), Text: firstPart(line), Err: kind}
}

func firstPart(b []byte) string {
	if len(b) > maxMsgLen {
		b = b[:maxMsgLen]
	}
	return string(b)
}
