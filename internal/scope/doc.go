// Package scope holds the per-invocation values visible to every template the
// login generator renders. A Scope is built fresh for each run, populated
// once by the generator's before hook, and treated as read-only afterwards.
package scope
