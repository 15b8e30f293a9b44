package hzk

import "os"
import "image/color"
import "path/filepath"
import "testing"

import "github.com/bitglyph/hzk/store"

// writeFontFixture writes a sparse HZK file holding the given records
// at their computed offsets and returns its path.
func writeFontFixture(t *testing.T, size int, records map[uint16][]byte) string {
	t.Helper()
	recordSize := store.RecordSize(size)
	path := filepath.Join(t.TempDir(), "fixture.hzk")
	file, err := os.Create(path)
	if err != nil { t.Fatal(err) }
	for code, record := range records {
		if len(record) != recordSize { t.Fatal("broken fixture record size") }
		_, err = file.WriteAt(record, store.RecordOffset(code, recordSize))
		if err != nil { t.Fatal(err) }
	}
	err = file.Close()
	if err != nil { t.Fatal(err) }
	return path
}

type point struct{ X, Y int }

// recordingSurface captures every painted point for assertions.
type recordingSurface struct {
	foreground []point
	background []point
	style TextStyle
}

func (self *recordingSurface) DrawPoint(x, y int) {
	self.foreground = append(self.foreground, point{x, y})
}

func (self *recordingSurface) DrawColorPoint(x, y int, clr color.Color) {
	self.background = append(self.background, point{x, y})
}

func (self *recordingSurface) TextStyle() TextStyle { return self.style }

func (self *recordingSurface) BackgroundColor() color.Color { return color.White }

// fakeGlyphCache serves records from a fixed map, no I/O involved.
type fakeGlyphCache struct{ records map[uint16][]byte }

func (self *fakeGlyphCache) Get(code uint16) ([]byte, bool) {
	record, found := self.records[code]
	return record, found
}

func (self *fakeGlyphCache) Len() int { return len(self.records) }
