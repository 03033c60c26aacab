package di_test

import (
	"testing"

	"github.com/inkworks/scribe/di"
)

/*
   Shared helpers (NOT counted in benchmarks)
*/

func newBenchNotebook() *di.Component[notebook] {
	return di.Provide(func() *notebook { return &notebook{Pages: 80} })
}

func newBenchLamp() *di.Component[lamp] {
	return di.Provide(func() *lamp { return &lamp{Lumens: 400} })
}

func newBenchDesk() *di.Component[desk] {
	return di.Provide(func() *desk { return &desk{} })
}

/*
   Benchmarks
*/

func BenchmarkProvide(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = newBenchDesk()
	}
}

func BenchmarkApply_SingleDependency(b *testing.B) {
	nb := newBenchNotebook()
	bind := di.Bind(keyNotebook, nb, func(d *desk, n *notebook) { d.Notebook = n })

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d := newBenchDesk()
		_, _ = d.Apply(bind)
	}
}

func BenchmarkApplyAll_TwoDependencies(b *testing.B) {
	nb := newBenchNotebook()
	lp := newBenchLamp()
	bindNotebook := di.Bind(keyNotebook, nb, func(d *desk, n *notebook) { d.Notebook = n })
	bindLamp := di.Bind(keyLamp, lp, func(d *desk, l *lamp) { d.Lamp = l })

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d := newBenchDesk()
		_, _ = d.ApplyAll(bindNotebook, bindLamp)
	}
}

func BenchmarkRegistryResolve(b *testing.B) {
	reg := di.NewRegistry[*stamp]()
	_ = reg.Register("red", func() (*stamp, error) { return &stamp{Ink: "red"}, nil })

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = reg.Resolve("red")
	}
}
