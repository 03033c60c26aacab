// Command scribe drives the writing demo from the command line.
//
// It exposes every wiring strategy the examples demonstrate behind flags, so
// the same essay can be produced via manual construction, injector helpers, a
// dig container, or registry resolution:
//
//	scribe write --instrument pen --wiring container --topic "ink"
//	scribe instruments
package main

import "os"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
