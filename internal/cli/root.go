package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/sailsgen/sails-generate-login/internal/branding"
	"github.com/sailsgen/sails-generate-login/internal/config"
	"github.com/sailsgen/sails-generate-login/internal/logging"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	verbosity int
	logFile   string

	settings config.Settings
	logger   = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` adds passport-based login to a Sails project: an authentication
service, a User model and controller, login and signup views, and the
config files they need. It also pins passport, passport-local and bcrypt
in the project's package.json.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		s, err := config.Current()
		if err != nil {
			return err
		}
		settings = s

		// Flags win over config values.
		if cmd.Flags().Changed("verbose") {
			settings.Verbosity = verbosity
		}
		if logFile != "" {
			settings.LogFile = logFile
		}

		logging.Setup(logging.Options{
			Verbosity:    settings.Verbosity,
			File:         settings.LogFile,
			FileMaxSize:  settings.LogMaxSizeMB,
			Console:      cmd.ErrOrStderr(),
			ConsoleColor: isTerminal(cmd.ErrOrStderr()),
		})
		logger = logging.GetLogger(cmd.Name())
		return nil
	},
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write logs to this file")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, describeError(err))
	}
	return err
}
