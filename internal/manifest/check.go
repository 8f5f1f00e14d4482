package manifest

import (
	"fmt"
	"os"
)

// DependencyStatus reports whether one login dependency is declared.
type DependencyStatus struct {
	Name    string
	Version string
	Present bool
}

// CheckResult is the outcome of inspecting a project's manifest.
type CheckResult struct {
	Path         string
	Validation   *ValidationResult
	Dependencies []DependencyStatus
}

// Ready reports whether the manifest is valid and declares every login dependency.
func (r *CheckResult) Ready() bool {
	if r.Validation == nil || !r.Validation.Valid {
		return false
	}
	for _, d := range r.Dependencies {
		if !d.Present {
			return false
		}
	}
	return true
}

// Check validates {root}/package.json and reports the login dependencies it
// declares. It never modifies the file.
func Check(root string) (*CheckResult, error) {
	path := PathFor(root)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Path: path, Cause: err}
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, &Error{Path: path, Cause: fmt.Errorf("parsing JSON: %w", err)}
	}

	validation, err := Validate(data)
	if err != nil {
		return nil, &Error{Path: path, Cause: err}
	}

	result := &CheckResult{Path: path, Validation: validation}
	if !validation.Valid {
		return result, nil
	}

	for _, name := range LoginDependencies {
		version, ok, err := doc.Dependency(name)
		if err != nil {
			return nil, &Error{Path: path, Cause: err}
		}
		result.Dependencies = append(result.Dependencies, DependencyStatus{
			Name:    name,
			Version: version,
			Present: ok,
		})
	}
	return result, nil
}
