// Package scaffold applies a static table of targets to a project root. Each
// target either renders a template from a templates filesystem with
// text/template, or ensures a folder exists. It powers the
// "generate login" command and ships the login templates embedded in the binary.
package scaffold
