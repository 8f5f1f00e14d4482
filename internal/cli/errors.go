package cli

import (
	"errors"
	"fmt"

	"github.com/sailsgen/sails-generate-login/internal/branding"
	"github.com/sailsgen/sails-generate-login/internal/manifest"
	"github.com/sailsgen/sails-generate-login/internal/scope"
)

// describeError renders an error for the operator, adding remediation for
// the error kinds the generator defines.
func describeError(err error) string {
	var missing *scope.MissingScopeVariableError
	if errors.As(err, &missing) {
		return fmt.Sprintf(`Issue encountered in generator %q:
Missing required scope variable: %q
If you are the author of %s, please resolve this issue and publish a new
patch release, or report it at %s`,
			branding.GeneratorName(), missing.Name, branding.CLIName(), branding.IssuesURL())
	}

	var manifestErr *manifest.Error
	if errors.As(err, &manifestErr) {
		return fmt.Sprintf("Could not update %s:\n  %v\nFix package.json and run the generator again.",
			manifestErr.Path, manifestErr.Cause)
	}

	return "Error: " + err.Error()
}
