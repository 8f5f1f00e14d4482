// Package manifest reads, validates and patches a Sails project's
// package.json. Top-level and dependency key order survive the rewrite, so a
// patch only ever adds or replaces the keys it names. Documents are validated
// against an embedded JSON Schema before they are modified.
package manifest
