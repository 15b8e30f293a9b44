package hzk

import "bytes"
import "testing"

import "github.com/google/go-cmp/cmp"

type runSpec struct {
	Kind runKind
	Data []byte
}

func collectRuns(data []byte) []runSpec {
	var runs []runSpec
	var iterator runIterator
	for iterator.HasNext(data) {
		kind, run := iterator.Next(data)
		runs = append(runs, runSpec{kind, run})
	}
	return runs
}

func TestRunIteratorMixed(t *testing.T) {
	data := []byte{0x41, 0xB0, 0xA1, 0x42}
	expected := []runSpec{
		{runASCII, []byte{0x41}},
		{runDoubleByte, []byte{0xB0, 0xA1}},
		{runASCII, []byte{0x42}},
	}
	diff := cmp.Diff(expected, collectRuns(data))
	if diff != "" { t.Fatalf("unexpected runs (-want +got):\n%s", diff) }
}

func TestRunIteratorSingleKind(t *testing.T) {
	data := []byte("hello")
	expected := []runSpec{{runASCII, []byte("hello")}}
	diff := cmp.Diff(expected, collectRuns(data))
	if diff != "" { t.Fatalf("unexpected runs (-want +got):\n%s", diff) }

	data = []byte{0xC4, 0xE3, 0xBA, 0xC3}
	expected = []runSpec{{runDoubleByte, []byte{0xC4, 0xE3, 0xBA, 0xC3}}}
	diff = cmp.Diff(expected, collectRuns(data))
	if diff != "" { t.Fatalf("unexpected runs (-want +got):\n%s", diff) }
}

func TestRunIteratorEmpty(t *testing.T) {
	var iterator runIterator
	if iterator.HasNext(nil) { t.Fatal("expected no runs") }
	kind, run := iterator.Next(nil)
	if run != nil { t.Fatal("expected nil run") }
	if kind != runASCII { t.Fatal("exhausted iterator must report runASCII") }
}

// Runs must be maximal, non-empty, strictly alternating, and must
// concatenate back to the original buffer.
func TestRunIteratorReconstitution(t *testing.T) {
	inputs := [][]byte{
		{0x41, 0xB0, 0xA1, 0x42},
		{0xB0, 0xA1, 0xB0, 0xA1, 0x20, 0x20, 0xC4, 0xE3},
		{0x7F, 0x80, 0x7F, 0x80},
		{0xB0, 0xA1, 0xB0}, // dangling trailing byte stays in its run
	}
	for _, input := range inputs {
		runs := collectRuns(input)
		var rebuilt []byte
		for i, run := range runs {
			if len(run.Data) == 0 { t.Fatal("empty run") }
			if i > 0 && runs[i-1].Kind == run.Kind { t.Fatal("runs must alternate") }
			if run.Kind != kindOf(run.Data[0]) { t.Fatal("wrong run kind") }
			rebuilt = append(rebuilt, run.Data...)
		}
		if !bytes.Equal(rebuilt, input) {
			t.Fatalf("expected % X, got % X", input, rebuilt)
		}
	}
}

// A fresh iterator over the same buffer restarts the scan.
func TestRunIteratorRestartable(t *testing.T) {
	data := []byte{0x41, 0xB0, 0xA1}
	first := collectRuns(data)
	second := collectRuns(data)
	diff := cmp.Diff(first, second)
	if diff != "" { t.Fatalf("unexpected runs (-want +got):\n%s", diff) }
}
