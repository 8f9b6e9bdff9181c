// Package ordering provides pluggable comparison strategies for arbitrary
// element types, and combinators for composing them.
//
// # Overview
//
// A [Strategy] is a first-class function value that compares two elements and
// returns a three-way [github.com/amp-labs/amp-ordering/compare.Ordering].
// Strategies are stateless values: create one once, share it freely, pass it
// to every sort or search that needs that order. A one-off strategy is just a
// function literal at the call site; nothing has to be declared on the
// element type itself.
//
//	byYear := ordering.ByKey(func(a Album) int { return a.Year })
//	byName := ordering.ByKey(func(a Album) string { return a.Name })
//	err := sorting.Sort(albums, byYear.Then(byName))
//
// # Natural ordering
//
// A type may declare its own default order by implementing
// [github.com/amp-labs/amp-ordering/compare.Ordered]. [Natural] resolves that
// capability at runtime; when the type does not carry it and no explicit
// strategy is supplied, sorting fails with
// [github.com/amp-labs/amp-ordering/errors.ErrNoOrdering] rather than
// guessing an order.
//
// # Contract
//
// Every strategy must be reflexive, antisymmetric, transitive, and
// deterministic, and must not mutate its inputs. Violations produce undefined
// sort results, not a crash; [CheckContract] probes a strategy against sample
// data when you want that checked in tests.
//
// # Thread safety
//
// Strategies and composed strategies hold no mutable state and are safe to
// call concurrently. [Registry] serializes its own access internally.
package ordering
