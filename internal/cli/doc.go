// Package cli defines the Cobra command tree for the sails-generate-login CLI.
// Each file registers one top-level command with the root command. Commands
// delegate to internal packages for the work and only handle flags, output
// formatting and error presentation.
package cli
