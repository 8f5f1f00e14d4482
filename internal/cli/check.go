package cli

import (
	"fmt"

	"github.com/sailsgen/sails-generate-login/internal/manifest"
	"github.com/sailsgen/sails-generate-login/internal/runtime"
	"github.com/spf13/cobra"
)

var checkRoot string

// toolRequirements are the minimum versions current bcrypt releases build on.
var toolRequirements = map[string]string{
	"node": ">= 18.0.0",
}

func init() {
	checkCmd.Flags().StringVar(&checkRoot, "root", ".", "Root of the Sails project")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate package.json and report the login dependencies",
	Long:  `Validate the project's package.json against the built-in schema and show whether passport, passport-local and bcrypt are declared. Nothing is modified.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveRoot(checkRoot)
		if err != nil {
			return err
		}

		result, err := manifest.Check(root)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !result.Validation.Valid {
			fmt.Fprintf(out, "%s is invalid:\n", result.Path)
			for _, issue := range result.Validation.Issues {
				fmt.Fprintf(out, "  - %s\n", issue)
			}
			return fmt.Errorf("%s failed validation", result.Path)
		}

		fmt.Fprintf(out, "%s is valid\n", result.Path)
		for _, d := range result.Dependencies {
			if d.Present {
				fmt.Fprintf(out, "  [x] %s %s\n", d.Name, d.Version)
			} else {
				fmt.Fprintf(out, "  [ ] %s\n", d.Name)
			}
		}
		if !result.Ready() {
			fmt.Fprintln(out, "\nRun 'generate login' to add the missing dependencies.")
		}

		fmt.Fprintln(out, "\nToolchain:")
		for _, name := range []string{"node", "npm"} {
			tool, err := runtime.Detect(cmd.Context(), name)
			if err != nil {
				fmt.Fprintf(out, "  [ ] %s (not found)\n", name)
				logger.Debug().Err(err).Str("tool", name).Msg("Tool detection failed")
				continue
			}
			if constraint, ok := toolRequirements[name]; ok {
				satisfied, err := tool.Satisfies(constraint)
				if err != nil {
					return err
				}
				if !satisfied {
					fmt.Fprintf(out, "  [!] %s %s (requires %s)\n", name, tool.Version, constraint)
					continue
				}
			}
			fmt.Fprintf(out, "  [x] %s %s\n", name, tool.Version)
		}
		logger.Debug().Str("path", result.Path).Bool("ready", result.Ready()).Msg("Manifest checked")
		return nil
	},
}
