package manifest

import "fmt"

// Error reports a package.json that is missing, unreadable, malformed or
// could not be rewritten. It is fatal for the whole generator run.
type Error struct {
	Path  string
	Cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("manifest %s: %v", e.Path, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }
