package hzk

// Definitions of private types used to iterate transcoded GB2312
// buffers as alternating single-byte and double-byte runs.

type runKind uint8

const (
	runASCII runKind = iota // every byte < 0x80
	runDoubleByte           // every byte >= 0x80
)

func kindOf(b byte) runKind {
	if b < 0x80 { return runASCII }
	return runDoubleByte
}

// A runIterator scans a byte buffer left to right, yielding maximal
// runs of same-kind bytes. Runs are non-empty, strictly alternate in
// kind and concatenate back to the original buffer. The iterator
// holds no reference to the buffer; a fresh one restarts the scan.
type runIterator struct{ index int }

// Next returns the next run and its kind, or (nil, runASCII) once the
// buffer is exhausted.
func (self *runIterator) Next(data []byte) (runKind, []byte) {
	if self.index >= len(data) { return runASCII, nil }
	start := self.index
	kind := kindOf(data[start])
	for self.index < len(data) && kindOf(data[self.index]) == kind {
		self.index += 1
	}
	return kind, data[start:self.index]
}

// HasNext returns whether another run remains.
func (self *runIterator) HasNext(data []byte) bool {
	return self.index < len(data)
}
