package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sailsgen/sails-generate-login/internal/branding"
	"github.com/sailsgen/sails-generate-login/internal/generator"
	"github.com/sailsgen/sails-generate-login/internal/runtime"
	"github.com/sailsgen/sails-generate-login/internal/scope"
	"github.com/spf13/cobra"
)

var (
	generateRoot         string
	generateTemplatesDir string
	generateDryRun       bool
	generateInstall      bool
)

func init() {
	generateCmd.AddCommand(generateLoginCmd)
	rootCmd.AddCommand(generateCmd)

	generateLoginCmd.Flags().StringVar(&generateRoot, "root", ".", "Root of the Sails project")
	generateLoginCmd.Flags().StringVar(&generateTemplatesDir, "templates-dir", "", "Read templates from this directory instead of the built-in set")
	generateLoginCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "Show what would be generated without writing anything")
	generateLoginCmd.Flags().BoolVar(&generateInstall, "install", false, "Run 'npm install' in the project afterwards")
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run a generator against a Sails project",
}

var generateLoginCmd = &cobra.Command{
	Use:   "login [args...]",
	Short: "Scaffold passport login into a Sails project",
	Long: `Generate the passport service, User model and controller, login and signup
views, and the secret and http config files. package.json gains passport,
passport-local and bcrypt pinned to "latest". Existing files are overwritten.

Examples:
  ` + branding.CLIName() + ` generate login
  ` + branding.CLIName() + ` generate login --root ./my-app --dry-run`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveRoot(generateRoot)
		if err != nil {
			return err
		}

		templatesDir := settings.TemplatesDir
		if generateTemplatesDir != "" {
			templatesDir = generateTemplatesDir
		}

		gen := generator.New(generator.Config{
			TemplatesDir: templatesDir,
			DryRun:       generateDryRun,
		}, logger)

		result, err := gen.Generate(&scope.Scope{RootPath: root, Args: args})
		if err != nil {
			return err
		}

		printGenerateResult(cmd.OutOrStdout(), result)

		if generateInstall && !generateDryRun {
			return installDependencies(cmd, root)
		}
		return nil
	},
}

func installDependencies(cmd *cobra.Command, root string) error {
	fmt.Fprintln(cmd.OutOrStdout(), "\nRunning npm install...")
	npm := &runtime.NPM{Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()}
	out, err := npm.Install(cmd.Context(), root)
	if err != nil {
		return err
	}
	if out.ExitCode != 0 {
		return fmt.Errorf("npm install exited with code %d", out.ExitCode)
	}
	logger.Info().Str("root", root).Msg("Dependencies installed")
	return nil
}

// resolveRoot turns the --root flag into an absolute path. An empty value
// stays empty so the generator reports the missing scope variable.
func resolveRoot(root string) (string, error) {
	if root == "" {
		return "", nil
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolving project root %s: %w", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("project root %s: %w", abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("project root %s is not a directory", abs)
	}
	return abs, nil
}

func printGenerateResult(w io.Writer, result *generator.Result) {
	verb := "Created"
	if result.Scaffold.DryRun {
		verb = "Would create"
	}

	fmt.Fprintf(w, "%s login scaffolding in %s/\n", verb, result.Scope.RootPath)
	for _, d := range result.Scaffold.Folders {
		fmt.Fprintf(w, "  %s/\n", d)
	}
	for _, f := range result.Scaffold.Files {
		fmt.Fprintf(w, "  %s\n", f)
	}

	fmt.Fprintf(w, "\nDependencies in %s:\n", filepath.Base(result.Manifest.Path))
	for _, c := range result.Manifest.Changes {
		if c.Previous != "" {
			fmt.Fprintf(w, "  %s: %s -> %s (%s)\n", c.Name, c.Previous, c.Current, c.Kind)
		} else {
			fmt.Fprintf(w, "  %s: %s (%s)\n", c.Name, c.Current, c.Kind)
		}
	}

	if warnings := result.Warnings(); len(warnings) > 0 {
		fmt.Fprintln(w, "\nWarnings:")
		for _, warn := range warnings {
			fmt.Fprintf(w, "  - %s\n", warn)
		}
	}

	if result.Scaffold.DryRun {
		return
	}
	fmt.Fprintln(w, "\nNext steps:")
	fmt.Fprintln(w, "  1. Run 'npm install' to fetch passport, passport-local and bcrypt")
	fmt.Fprintln(w, "  2. Keep config/secret.js out of version control")
	fmt.Fprintln(w, "  3. Start the app with 'sails lift' and open /user/login")
}
