package runtime

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Tool is an executable found on PATH.
type Tool struct {
	Name    string
	Path    string
	Version *semver.Version
}

// Detect locates name on PATH and asks it for its version with --version.
func Detect(ctx context.Context, name string) (*Tool, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("%s not found on PATH: %w", name, err)
	}

	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, path, "--version")
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("running %s --version: %w", name, err)
	}

	version, err := parseVersion(stdout.String())
	if err != nil {
		return nil, fmt.Errorf("parsing %s version: %w", name, err)
	}

	return &Tool{Name: name, Path: path, Version: version}, nil
}

// Satisfies reports whether the tool's version meets constraint, e.g. ">= 0.10".
func (t *Tool) Satisfies(constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", constraint, err)
	}
	return c.Check(t.Version), nil
}

// parseVersion reads the first line of --version output, tolerating a
// leading "v" as node prints it.
func parseVersion(out string) (*semver.Version, error) {
	line := strings.TrimSpace(out)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = strings.TrimSpace(line[:i])
	}
	return semver.NewVersion(strings.TrimPrefix(line, "v"))
}
