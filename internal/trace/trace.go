// Package trace records raw touch pointer events as CSV and replays
// them. A saved trace reproduces an interaction exactly, which is
// handy for debugging gesture classification and for tests that drive
// the recognizer with captured input.
package trace

import (
	"io"
	"os"
	"time"

	"gioui.org/f32"
	"gioui.org/io/pointer"
	"github.com/jszwec/csvutil"
)

// Record is one touch sample in a trace file.
type Record struct {
	AtMillis int64   `csv:"at_ms"`
	Event    string  `csv:"event"`
	Pointer  int     `csv:"pointer"`
	X        float32 `csv:"x"`
	Y        float32 `csv:"y"`
}

const (
	eventPress   = "press"
	eventMove    = "move"
	eventRelease = "release"
	eventCancel  = "cancel"
)

func eventName(t pointer.Type) string {
	switch t {
	case pointer.Press:
		return eventPress
	case pointer.Move, pointer.Drag:
		return eventMove
	case pointer.Release:
		return eventRelease
	case pointer.Cancel:
		return eventCancel
	}
	return ""
}

func eventType(name string) (pointer.Type, bool) {
	switch name {
	case eventPress:
		return pointer.Press, true
	case eventMove:
		return pointer.Move, true
	case eventRelease:
		return pointer.Release, true
	case eventCancel:
		return pointer.Cancel, true
	}
	return 0, false
}

// FromPointer converts a touch pointer event to a Record. Mouse events
// and event types with no trace representation report ok == false.
func FromPointer(e pointer.Event) (Record, bool) {
	if e.Source != pointer.Touch {
		return Record{}, false
	}
	name := eventName(e.Type)
	if name == "" {
		return Record{}, false
	}
	return Record{
		AtMillis: e.Time.Milliseconds(),
		Event:    name,
		Pointer:  int(e.PointerID),
		X:        e.Position.X,
		Y:        e.Position.Y,
	}, true
}

// PointerEvent converts the record back to the touch event it was made
// from. Records with an unknown event name report ok == false.
func (r Record) PointerEvent() (pointer.Event, bool) {
	t, ok := eventType(r.Event)
	if !ok {
		return pointer.Event{}, false
	}
	return pointer.Event{
		Type:      t,
		Source:    pointer.Touch,
		PointerID: pointer.ID(r.Pointer),
		Position:  f32.Pt(r.X, r.Y),
		Time:      time.Duration(r.AtMillis) * time.Millisecond,
	}, true
}

// Recorder accumulates touch events for later saving.
type Recorder struct {
	records []Record
}

// Push appends the event to the trace if it is traceable.
func (r *Recorder) Push(e pointer.Event) {
	if rec, ok := FromPointer(e); ok {
		r.records = append(r.records, rec)
	}
}

// Len returns the number of recorded samples.
func (r *Recorder) Len() int {
	return len(r.records)
}

// Records returns the accumulated trace.
func (r *Recorder) Records() []Record {
	return r.records
}

// WriteTo writes the trace as CSV.
func (r *Recorder) WriteTo(w io.Writer) error {
	return Write(w, r.records)
}

// Save writes the trace to the named file.
func (r *Recorder) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return r.WriteTo(f)
}

// Write writes records as CSV with a header row.
func Write(w io.Writer, records []Record) error {
	b, err := csvutil.Marshal(records)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// Read parses a CSV trace.
func Read(r io.Reader) ([]Record, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var records []Record
	if err := csvutil.Unmarshal(b, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Load reads a CSV trace from the named file.
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Replay feeds each record's event to push in order. Records that do
// not convert are skipped.
func Replay(records []Record, push func(pointer.Event)) {
	for _, rec := range records {
		if e, ok := rec.PointerEvent(); ok {
			push(e)
		}
	}
}
