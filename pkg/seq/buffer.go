// 3 Mar 2026

package seq

// A growBuf accumulates one field of a record. It is scratch space,
// reused from record to record, so the cost of growing is only paid
// while reading the first long sequence. The content leaves as a
// string via str(), never as a slice of the underlying storage.
type growBuf struct {
	b []byte
}

// Starting sizes. Ids are short. Sequences are usually the length of
// a read, but chromosomes happen.
const (
	initIDSize  = 1024
	initSeqSize = 50 * 1000
)

// maxFieldLen is the most we will hold in one field. Anything needing
// more is almost certainly not a sequence file.
var maxFieldLen = 1 << 30

func newGrowBuf(n int) growBuf { return growBuf{b: make([]byte, 0, n)} }

// ensure guarantees room for n bytes in total, doubling the capacity
// until it is enough. Content is preserved. If doubling would pass
// maxFieldLen we return ErrAllocation and leave the buffer as it was.
func (g *growBuf) ensure(n int) error {
	if n <= cap(g.b) {
		return nil
	}
	if n > maxFieldLen {
		return ErrAllocation
	}
	newcap := cap(g.b)
	if newcap == 0 {
		newcap = 64
	}
	for newcap < n {
		newcap *= 2
	}
	if newcap > maxFieldLen {
		newcap = maxFieldLen
	}
	t := make([]byte, len(g.b), newcap)
	copy(t, g.b)
	g.b = t
	return nil
}

// push appends p, growing if necessary.
func (g *growBuf) push(p []byte) error {
	if err := g.ensure(len(g.b) + len(p)); err != nil {
		return err
	}
	g.b = append(g.b, p...)
	return nil
}

// reset forgets the content but keeps the storage.
func (g *growBuf) reset() { g.b = g.b[:0] }

func (g *growBuf) len() int { return len(g.b) }

// str hands the content out as a fresh string, so the caller never
// sees this buffer being recycled for the next record.
func (g *growBuf) str() string { return string(g.b) }
