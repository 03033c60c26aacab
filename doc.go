// Package scribe demonstrates dependency injection in Go with one tiny
// scenario wired four different ways.
//
// The scenario never changes: a Writer needs a writing instrument to put an
// essay on the page. What changes is how the instrument reaches the Writer:
//
//   - v1: manual constructor injection (plain constructors, wiring in main)
//   - v2: explicit injector helpers with dependency introspection (di.Component)
//   - v3: a third-party container (go.uber.org/dig)
//   - v4: name-based registration and resolution driven by config (di.Registry)
//
// The injected code in package writing stays identical across all four
// approaches; only the composition root differs.
//
// See subpackages:
//   - writing: the domain (Writer, Instrument, four implementations)
//   - di: the small wiring helpers used by v2 and v4
//   - examples/*: one runnable main per approach
//   - cmd/scribe: a CLI that drives any of the four wiring strategies
package scribe
