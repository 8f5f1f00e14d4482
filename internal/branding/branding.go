// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName       string `yaml:"cli_name"`
	DisplayName   string `yaml:"display_name"`
	Description   string `yaml:"description"`
	GeneratorName string `yaml:"generator_name"`
	HomeDir       string `yaml:"home_dir"`
	EnvPrefix     string `yaml:"env_prefix"`
	IssuesURL     string `yaml:"issues_url"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:       "sails-generate-login",
			DisplayName:   "Sails Login Generator",
			Description:   "Scaffold passport-based login into a Sails project",
			GeneratorName: "login",
			HomeDir:       ".sailsgen",
			EnvPrefix:     "SAILSGEN",
			IssuesURL:     "https://github.com/sailsgen/sails-generate-login/issues",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "sails-generate-login").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// GeneratorName returns the name the generator is invoked by ("login").
func GeneratorName() string { load(); return defaults.GeneratorName }

// HomeDir returns the dot-directory name under $HOME (e.g., ".sailsgen").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "SAILSGEN").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// IssuesURL returns where operators should report generator defects.
func IssuesURL() string { load(); return defaults.IssuesURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "SAILSGEN_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
