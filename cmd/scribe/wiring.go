package main

import (
	"io"
	"strconv"

	"go.uber.org/dig"

	"github.com/inkworks/scribe/di"
	"github.com/inkworks/scribe/writing"
)

// wiringStrategy names one of the composition styles the repo demonstrates.
type wiringStrategy string

const (
	wiringManual    wiringStrategy = "manual"
	wiringInjector  wiringStrategy = "injector"
	wiringContainer wiringStrategy = "container"
	wiringRegistry  wiringStrategy = "registry"
)

// wiringStrategies lists the accepted --wiring values in help order.
var wiringStrategies = []wiringStrategy{wiringManual, wiringInjector, wiringContainer, wiringRegistry}

// UnknownStrategyError is returned for a --wiring value nobody implements.
type UnknownStrategyError struct{ Strategy wiringStrategy }

// Error implements the error interface.
func (e UnknownStrategyError) Error() string {
	return "unknown wiring strategy " + strconv.Quote(string(e.Strategy))
}

// buildWriter produces a ready Writer for kind, writing to out, using the
// requested strategy. Every strategy must yield an identical Writer; the
// difference is only in who calls the constructors.
func buildWriter(strategy wiringStrategy, kind writing.Kind, out io.Writer) (*writing.Writer, error) {
	switch strategy {
	case wiringManual:
		return buildManual(kind, out)
	case wiringInjector:
		return buildWithInjector(kind, out)
	case wiringContainer:
		return buildWithContainer(kind, out)
	case wiringRegistry:
		return buildWithRegistry(kind, out)
	default:
		return nil, UnknownStrategyError{Strategy: strategy}
	}
}

// buildManual is examples/v1 in function form: plain constructor calls.
func buildManual(kind writing.Kind, out io.Writer) (*writing.Writer, error) {
	instrument, err := writing.New(kind, out)
	if err != nil {
		return nil, err
	}
	return writing.NewWriter(instrument)
}

// desk is the injector strategy's composition target.
type desk struct {
	Instrument writing.Instrument
}

const keyInstrument di.Key = "instrument"

// buildWithInjector is examples/v2 in function form: di.Component wiring with
// the dependency recorded in a bag before the constructor runs.
func buildWithInjector(kind writing.Kind, out io.Writer) (*writing.Writer, error) {
	instrument, err := writing.New(kind, out)
	if err != nil {
		return nil, err
	}

	// Interface dependencies travel as a pointer-to-interface component.
	holder := di.Provide(func() *writing.Instrument { return &instrument })
	d := di.Provide(func() *desk { return &desk{} })

	if _, err := d.Apply(di.Bind(keyInstrument, holder, func(d *desk, i *writing.Instrument) {
		d.Instrument = *i
	})); err != nil {
		return nil, err
	}

	return writing.NewWriter(d.Value().Instrument)
}

// buildWithContainer is examples/v3 in function form: dig resolves the graph.
func buildWithContainer(kind writing.Kind, out io.Writer) (*writing.Writer, error) {
	c := dig.New()

	if err := c.Provide(func() io.Writer { return out }); err != nil {
		return nil, err
	}
	if err := c.Provide(func(sink io.Writer) (writing.Instrument, error) {
		return writing.New(kind, sink)
	}); err != nil {
		return nil, err
	}
	if err := c.Provide(writing.NewWriter); err != nil {
		return nil, err
	}

	var writer *writing.Writer
	if err := c.Invoke(func(w *writing.Writer) { writer = w }); err != nil {
		// dig wraps constructor failures; surface the original error so
		// callers can still match it with errors.As.
		return nil, dig.RootCause(err)
	}
	return writer, nil
}

// buildWithRegistry is examples/v4 in function form: resolve by name.
func buildWithRegistry(kind writing.Kind, out io.Writer) (*writing.Writer, error) {
	reg, err := newInstrumentRegistry(out)
	if err != nil {
		return nil, err
	}
	instrument, err := reg.Resolve(string(kind))
	if err != nil {
		return nil, err
	}
	return writing.NewWriter(instrument)
}

// newInstrumentRegistry registers a factory per known kind, all writing to out.
func newInstrumentRegistry(out io.Writer) (*di.Registry[writing.Instrument], error) {
	reg := di.NewRegistry[writing.Instrument]()
	for _, kind := range writing.Kinds() {
		k := kind
		if err := reg.Register(string(k), func() (writing.Instrument, error) {
			return writing.New(k, out)
		}); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
