// Package registry provides a generic, type-safe name registry.
// Enabler factories are registered here through init() functions so the
// set of enabler types is a static table rather than a runtime plugin lookup.
package registry
