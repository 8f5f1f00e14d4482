// Package platform provides the filesystem writes the generator performs on a
// target project: atomic file replacement that keeps the original mode, and
// permission changes that are skipped on Windows.
package platform
