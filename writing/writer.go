package writing

import "errors"

// ErrNoInstrument is returned when a Writer is constructed without an
// instrument. A Writer cannot do anything useful bare-handed.
var ErrNoInstrument = errors.New("writing: writer requires an instrument")

// Writer is the consumer side of the demonstration. It holds exactly one
// Instrument for its lifetime and never constructs one itself; whichever
// composition root built the Writer decided what it writes with.
type Writer struct {
	instrument Instrument
}

// NewWriter constructs a Writer around the supplied instrument.
// The instrument is the Writer's only collaborator and must not be nil.
func NewWriter(instrument Instrument) (*Writer, error) {
	if instrument == nil {
		return nil, ErrNoInstrument
	}
	return &Writer{instrument: instrument}, nil
}

// Instrument exposes the held instrument for introspection in tests and demos.
func (w *Writer) Instrument() Instrument { return w.instrument }

// WriteEssay forwards the topic unchanged to the held instrument.
func (w *Writer) WriteEssay(topic string) error {
	return w.instrument.WriteAbout(topic)
}
