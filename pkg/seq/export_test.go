package seq

// Hooks so the black box tests can reach the internals.

var NewLineReaderSize = newLineReaderSize

// SetMaxFieldLen changes the allocation ceiling and returns the old
// value so a test can put it back.
func SetMaxFieldLen(n int) (old int) {
	old = maxFieldLen
	maxFieldLen = n
	return old
}

type GrowBuf = growBuf

func NewGrowBuf(n int) GrowBuf { return newGrowBuf(n) }

func (g *growBuf) Ensure(n int) error  { return g.ensure(n) }
func (g *growBuf) Push(p []byte) error { return g.push(p) }
func (g *growBuf) Reset()              { g.reset() }
func (g *growBuf) Len() int            { return g.len() }
func (g *growBuf) Cap() int            { return cap(g.b) }
func (g *growBuf) Str() string         { return g.str() }
