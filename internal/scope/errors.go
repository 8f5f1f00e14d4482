package scope

import "fmt"

// MissingScopeVariableError reports a required scope variable that was not
// supplied. It aborts the run before any file is touched.
type MissingScopeVariableError struct {
	Name string
}

func (e *MissingScopeVariableError) Error() string {
	return fmt.Sprintf("missing required scope variable %q", e.Name)
}
