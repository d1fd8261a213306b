/*
Package dsl provides a fluent builder for composing actions.

Plans are written against an action library; names are resolved when the
plan is built, so every build yields fresh, unshared actions.

Example usage:

	b := dsl.New(library.Default())

	// Pick up then store, with the item flowing internally.
	tidy, err := b.Group().
		Do("Pick up").
		Do("Store").
		Build()

	// Two independent steps over consecutive slices of the input vector.
	twice, err := b.Sequence("pick twice").
		Do("Pick up").
		Do("Pick up").
		Build()
*/
package dsl
