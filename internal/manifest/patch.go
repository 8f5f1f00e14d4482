package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/sailsgen/sails-generate-login/internal/platform"
)

// FileName is the manifest file inside a project root.
const FileName = "package.json"

// LatestVersion is the sentinel version the login dependencies are pinned to.
const LatestVersion = "latest"

// LoginDependencies are the packages the generated login code requires.
var LoginDependencies = []string{"passport", "passport-local", "bcrypt"}

// ChangeKind describes what a patch did to one dependency.
type ChangeKind string

const (
	ChangeAdded     ChangeKind = "added"
	ChangeReplaced  ChangeKind = "replaced"
	ChangeUnchanged ChangeKind = "unchanged"
)

// DependencyChange records the effect of a patch on a single dependency.
type DependencyChange struct {
	Name     string
	Previous string // empty when Kind is ChangeAdded
	Current  string
	Kind     ChangeKind
}

// PatchResult holds the outcome of a manifest patch.
type PatchResult struct {
	Path     string
	Changes  []DependencyChange
	Warnings []string
}

// PathFor returns the manifest path for a project root.
func PathFor(root string) string {
	return filepath.Join(root, FileName)
}

// PatchDependencies pins every login dependency to LatestVersion. Other
// members are left untouched. It fails only when the contents are not JSON or
// the root or "dependencies" is not an object; schema violations elsewhere
// are reported as warnings.
func PatchDependencies(data []byte) ([]byte, *PatchResult, error) {
	doc, err := Parse(data)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing JSON: %w", err)
	}

	deps, err := doc.dependencies()
	if err != nil {
		return nil, nil, err
	}

	validation, err := Validate(data)
	if err != nil {
		return nil, nil, err
	}

	result := &PatchResult{}
	for _, issue := range validation.Issues {
		result.Warnings = append(result.Warnings, schemaWarning(issue))
	}

	latest, err := encodeString(LatestVersion)
	if err != nil {
		return nil, nil, err
	}

	for _, name := range LoginDependencies {
		raw, present := deps.values[name]
		change := PlanChange(name, rawString(raw), present)
		if w := pinnedRangeWarning(change); w != "" {
			result.Warnings = append(result.Warnings, w)
		}
		deps.set(name, json.RawMessage(latest))
		result.Changes = append(result.Changes, change)
	}

	if err := doc.setDependencies(deps); err != nil {
		return nil, nil, err
	}

	out, err := doc.Encode()
	if err != nil {
		return nil, nil, err
	}
	return out, result, nil
}

// PlanChange describes what pinning name to LatestVersion does, given its
// current version and whether it is declared at all.
func PlanChange(name, previous string, present bool) DependencyChange {
	if !present {
		return DependencyChange{Name: name, Current: LatestVersion, Kind: ChangeAdded}
	}
	kind := ChangeReplaced
	if previous == LatestVersion {
		kind = ChangeUnchanged
	}
	return DependencyChange{Name: name, Previous: previous, Current: LatestVersion, Kind: kind}
}

// PatchFile rewrites {root}/package.json in place. Every failure is returned
// as an *Error.
func PatchFile(root string) (*PatchResult, error) {
	return patchFile(root, true)
}

// PlanFile reports what PatchFile would change without writing anything.
func PlanFile(root string) (*PatchResult, error) {
	return patchFile(root, false)
}

func patchFile(root string, write bool) (*PatchResult, error) {
	path := PathFor(root)

	info, err := os.Stat(path)
	if err != nil {
		return nil, &Error{Path: path, Cause: err}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Path: path, Cause: err}
	}

	out, result, err := PatchDependencies(data)
	if err != nil {
		return nil, &Error{Path: path, Cause: err}
	}

	if write {
		if err := platform.WriteFileAtomic(path, out, info.Mode().Perm()); err != nil {
			return nil, &Error{Path: path, Cause: err}
		}
	}

	result.Path = path
	return result, nil
}

// pinnedRangeWarning flags a real version range being replaced by "latest".
func pinnedRangeWarning(c DependencyChange) string {
	if c.Kind != ChangeReplaced {
		return ""
	}
	if _, err := semver.NewConstraint(c.Previous); err != nil {
		return ""
	}
	return fmt.Sprintf("%s: pinned range %q replaced with %q", c.Name, c.Previous, LatestVersion)
}

func schemaWarning(issue ValidationIssue) string {
	return FileName + " " + issue.String()
}
