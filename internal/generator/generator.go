package generator

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/sailsgen/sails-generate-login/internal/logging"
	"github.com/sailsgen/sails-generate-login/internal/manifest"
	"github.com/sailsgen/sails-generate-login/internal/scaffold"
	"github.com/sailsgen/sails-generate-login/internal/scope"
)

// Config holds the generator's explicit inputs.
type Config struct {
	TemplatesDir string // empty uses the embedded templates
	DryRun       bool   // render targets without writing them; the manifest is still checked
}

// Generator produces the login scaffolding.
type Generator struct {
	cfg     Config
	targets []scaffold.Target
	logger  zerolog.Logger
	now     func() time.Time
}

// Result reports what a run did.
type Result struct {
	Scope    *scope.Scope
	Manifest *manifest.PatchResult
	Scaffold *scaffold.Result
}

// Warnings collects warnings from every phase.
func (r *Result) Warnings() []string {
	if r.Manifest == nil {
		return nil
	}
	return r.Manifest.Warnings
}

// New returns a Generator for the fixed login targets.
func New(cfg Config, logger zerolog.Logger) *Generator {
	return &Generator{
		cfg:     cfg,
		targets: scaffold.LoginTargets,
		logger:  logger,
		now:     time.Now,
	}
}

// Before validates s, patches the manifest under s.RootPath and populates
// the derived scope fields. Nothing is touched when validation fails.
func (g *Generator) Before(s *scope.Scope) (*manifest.PatchResult, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	done := logging.LogOperationStart(g.logger, "patch manifest")
	patch, err := g.patchManifest(s.RootPath)
	if err != nil {
		return nil, err
	}
	done()

	for _, c := range patch.Changes {
		g.logger.Info().
			Str("dependency", c.Name).
			Str("previous", c.Previous).
			Str("kind", string(c.Kind)).
			Msg("Pinned dependency")
	}

	if err := s.Populate(g.now()); err != nil {
		return nil, err
	}
	g.logger.Debug().
		Time("createdAt", s.CreatedAt).
		Str("filename", s.Filename).
		Msg("Scope populated")

	return patch, nil
}

// patchManifest rewrites package.json, or only plans the change on a dry run.
func (g *Generator) patchManifest(root string) (*manifest.PatchResult, error) {
	if g.cfg.DryRun {
		return manifest.PlanFile(root)
	}
	return manifest.PatchFile(root)
}

// Generate runs Before and then applies every target.
func (g *Generator) Generate(s *scope.Scope) (*Result, error) {
	result := &Result{Scope: s}

	patch, err := g.Before(s)
	if err != nil {
		return result, err
	}
	result.Manifest = patch

	done := logging.LogOperationStart(g.logger, "apply targets")
	scaffolded, err := scaffold.Apply(s.RootPath, g.targets, s.Vars(), scaffold.Options{
		Templates: scaffold.Templates(g.cfg.TemplatesDir),
		DryRun:    g.cfg.DryRun,
	})
	result.Scaffold = scaffolded
	if err != nil {
		g.logger.Error().Err(err).Int("written", len(scaffolded.Files)).Msg("Scaffolding aborted")
		return result, err
	}
	done()

	g.logger.Info().
		Str("root", s.RootPath).
		Int("files", len(scaffolded.Files)).
		Bool("dryRun", g.cfg.DryRun).
		Msg("Login scaffolding generated")

	return result, nil
}
