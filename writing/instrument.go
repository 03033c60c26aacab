// Package writing is the domain shared by every wiring demonstration.
//
// It deliberately knows nothing about dependency injection. An Instrument is
// the single-method abstraction that gets injected, a Writer is the consumer
// that receives it, and the four implementations are interchangeable. The
// output sink (io.Writer) is itself a constructor-injected dependency so that
// tests and composition roots can redirect the text away from stdout.
package writing

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
)

// Instrument is the injected abstraction: something that can put an essay
// about a topic on the page.
type Instrument interface {
	WriteAbout(topic string) error
}

// Kind names a concrete instrument for name-based construction and
// registry resolution.
type Kind string

const (
	KindPen        Kind = "pen"
	KindPencil     Kind = "pencil"
	KindTypewriter Kind = "typewriter"
	KindKeyboard   Kind = "keyboard"
)

// UnknownKindError is returned by New for a kind that names no instrument.
type UnknownKindError struct{ Kind Kind }

// Error implements the error interface.
func (e UnknownKindError) Error() string {
	// Example: writing: unknown instrument kind "quill"
	return "writing: unknown instrument kind " + strconv.Quote(string(e.Kind))
}

// Pen writes in ink.
type Pen struct{ out io.Writer }

// Pencil writes in graphite and can be erased.
type Pencil struct{ out io.Writer }

// Typewriter hammers the essay onto the page.
type Typewriter struct{ out io.Writer }

// Keyboard types the essay into a buffer somewhere.
type Keyboard struct{ out io.Writer }

// NewPen returns a Pen writing to out (os.Stdout when out is nil).
func NewPen(out io.Writer) *Pen { return &Pen{out: sink(out)} }

// NewPencil returns a Pencil writing to out (os.Stdout when out is nil).
func NewPencil(out io.Writer) *Pencil { return &Pencil{out: sink(out)} }

// NewTypewriter returns a Typewriter writing to out (os.Stdout when out is nil).
func NewTypewriter(out io.Writer) *Typewriter { return &Typewriter{out: sink(out)} }

// NewKeyboard returns a Keyboard writing to out (os.Stdout when out is nil).
func NewKeyboard(out io.Writer) *Keyboard { return &Keyboard{out: sink(out)} }

// WriteAbout implements Instrument.
func (p *Pen) WriteAbout(topic string) error {
	return emit(p.out, "inking an essay about %s with a fountain pen", topic)
}

// WriteAbout implements Instrument.
func (p *Pencil) WriteAbout(topic string) error {
	return emit(p.out, "sketching an essay about %s with a No. 2 pencil", topic)
}

// WriteAbout implements Instrument.
func (t *Typewriter) WriteAbout(topic string) error {
	return emit(t.out, "hammering out an essay about %s on a typewriter", topic)
}

// WriteAbout implements Instrument.
func (k *Keyboard) WriteAbout(topic string) error {
	return emit(k.out, "typing an essay about %s on a clacky keyboard", topic)
}

// New constructs the instrument named by kind, writing to out
// (os.Stdout when out is nil). Unknown kinds yield UnknownKindError.
func New(kind Kind, out io.Writer) (Instrument, error) {
	switch kind {
	case KindPen:
		return NewPen(out), nil
	case KindPencil:
		return NewPencil(out), nil
	case KindTypewriter:
		return NewTypewriter(out), nil
	case KindKeyboard:
		return NewKeyboard(out), nil
	default:
		return nil, UnknownKindError{Kind: kind}
	}
}

// Kinds returns every known instrument kind, sorted.
func Kinds() []Kind {
	kinds := []Kind{KindPen, KindPencil, KindTypewriter, KindKeyboard}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

func sink(out io.Writer) io.Writer {
	if out == nil {
		return os.Stdout
	}
	return out
}

func emit(out io.Writer, format, topic string) error {
	_, err := fmt.Fprintf(out, format+"\n", topic)
	return err
}
