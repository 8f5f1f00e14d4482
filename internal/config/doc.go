// Package config manages user-level settings stored at ~/.sailsgen/config.yaml.
// Values can also come from SAILSGEN_* environment variables. Settings cover
// the templates directory override and log output.
package config
