package process

import (
	"bytes"
	"io"
)

// drain reads r to end-of-stream and returns everything it produced. The
// read only terminates once the writing side has closed, so drain must
// run concurrently with whatever keeps that side alive: the child itself
// for stdout/stderr. A read error mid-stream yields whatever arrived
// before it; the child's exit status is the authoritative failure signal.
func drain(r io.Reader) []byte {
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.Bytes()
}
