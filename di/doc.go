// Package di provides small, explicit dependency wiring helpers.
//
// Two helpers live here, matching the two library-assisted approaches the
// repository demonstrates:
//
//   - Component[T] + Injector[T]: explicit wiring with a dependency bag for
//     introspection and typed errors on wiring mistakes (duplicate keys,
//     missing deps, wrong types). Used by examples/v2.
//
//   - Registry[T]: a name-to-factory container. Register a mapping once,
//     resolve an instance by name later, typically with the name coming from
//     configuration. Used by examples/v4 and the CLI.
//
// Neither helper uses reflection, lifetimes, or graph resolution; wiring stays
// visible in the composition root. When you want a real container, reach for
// go.uber.org/dig the way examples/v3 does instead of growing this package.
package di
