package store

import "os"
import "fmt"
import "sync"
import "errors"

// Returned by [Store.LoadGlyph] when a glyph code falls outside the
// GB2312 two-byte range covered by the font file.
var ErrCodeOutOfRange = errors.New("glyph code outside the GB2312 range")

// RecordSize returns the number of bytes of one glyph record for a
// font of the given pixel size: size rows, each row padded to whole
// bytes.
func RecordSize(size int) int {
	return size * ((size + 7) / 8)
}

// GlyphCode combines the two bytes of a GB2312 pair, in stream order,
// into the 16-bit code used to address glyph records.
func GlyphCode(b0, b1 byte) uint16 {
	return uint16(b0) | uint16(b1)<<8
}

// RecordOffset returns the byte offset of the record for the given
// glyph code within a font file whose records are recordSize bytes
// long. The addressing arithmetic is the HZK file contract: 94 cells
// per area, areas and cells both starting at 0xA1.
func RecordOffset(code uint16, recordSize int) int64 {
	index := 94*(int(code&0xff)-0xA0-1) + int(code>>8) - 0xA0 - 1
	return int64(index) * int64(recordSize)
}

// A Store reads fixed-size glyph records from an HZK font file. The
// file is opened lazily on the first read (or on an explicit [Store.Open]
// call) and reads are positioned, so concurrent loads never disturb
// each other's file offset.
//
// A Store performs no caching; it is a pure read-one-record service.
type Store struct {
	path string
	recordSize int
	mutex sync.Mutex
	file *os.File
}

// New creates a [Store] for the font file at the given path, with
// records of recordSize bytes. The file is not opened yet.
func New(path string, recordSize int) *Store {
	return &Store{ path: path, recordSize: recordSize }
}

// Path returns the font file path the store reads from.
func (self *Store) Path() string { return self.path }

// RecordSize returns the size in bytes of one glyph record.
func (self *Store) RecordSize() int { return self.recordSize }

// Open opens the underlying font file if it isn't open already.
func (self *Store) Open() error {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	_, err := self.openLocked()
	return err
}

func (self *Store) openLocked() (*os.File, error) {
	if self.file != nil { return self.file, nil }
	file, err := os.Open(self.path)
	if err != nil {
		return nil, fmt.Errorf("hzk store: %w", err)
	}
	self.file = file
	return file, nil
}

// LoadGlyph reads the record for the given glyph code and returns its
// bytes. Short reads and seek-range errors are reported as errors; the
// returned slice is freshly allocated and owned by the caller.
func (self *Store) LoadGlyph(code uint16) ([]byte, error) {
	if code&0xff < 0xA1 || code&0xff > 0xFE || code>>8 < 0xA1 || code>>8 > 0xFE {
		return nil, fmt.Errorf("hzk store: code 0x%04X: %w", code, ErrCodeOutOfRange)
	}

	self.mutex.Lock()
	file, err := self.openLocked()
	self.mutex.Unlock()
	if err != nil { return nil, err }

	record := make([]byte, self.recordSize)
	_, err = file.ReadAt(record, RecordOffset(code, self.recordSize))
	if err != nil {
		return nil, fmt.Errorf("hzk store: read record 0x%04X: %w", code, err)
	}
	return record, nil
}

// Close releases the underlying file, if open. The store can still be
// used afterwards; the next load reopens the file.
func (self *Store) Close() error {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	if self.file == nil { return nil }
	err := self.file.Close()
	self.file = nil
	return err
}
