package runtime

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Output captures the result of an npm invocation.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// NPM runs npm commands in a project directory.
type NPM struct {
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Install runs `npm install` in projectRoot, streaming output to the
// configured writers. A non-zero exit is reported in Output, not as an error.
func (n *NPM) Install(ctx context.Context, projectRoot string) (*Output, error) {
	npmBin, err := exec.LookPath("npm")
	if err != nil {
		return nil, fmt.Errorf("installing dependencies requires npm: %w", err)
	}

	cmd := exec.CommandContext(ctx, npmBin, "install")
	cmd.Dir = projectRoot
	cmd.Env = os.Environ()

	stdout := n.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := n.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = io.MultiWriter(stdout, &stdoutBuf)
	cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)

	err = cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, fmt.Errorf("running npm install: %w", err)
	}

	return output, nil
}
