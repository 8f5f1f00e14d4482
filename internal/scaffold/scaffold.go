package scaffold

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"text/template"
)

//go:embed templates
var embeddedTemplates embed.FS

// ErrTargetExists is returned when a non-forced target's destination exists.
var ErrTargetExists = errors.New("destination already exists")

// Options controls how targets are applied.
type Options struct {
	Templates fs.FS // source of named templates
	DryRun    bool  // render but write nothing
}

// Result holds the outcome of applying targets. On failure it lists what
// had been produced before the failing target.
type Result struct {
	RootPath string
	Files    []string
	Folders  []string
	DryRun   bool
}

// Templates returns the templates filesystem: the embedded login templates
// when dir is empty, otherwise the directory at dir.
func Templates(dir string) fs.FS {
	if dir != "" {
		return os.DirFS(dir)
	}
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		// fs.Sub only fails on an invalid path.
		panic(err)
	}
	return sub
}

// Apply produces every target under root, in order, rendering templates
// against vars. It stops at the first failure.
func Apply(root string, targets []Target, vars map[string]any, opts Options) (*Result, error) {
	templates := opts.Templates
	if templates == nil {
		templates = Templates("")
	}

	result := &Result{RootPath: root, DryRun: opts.DryRun}

	for _, t := range targets {
		dest := filepath.Join(root, filepath.FromSlash(t.Path))

		switch t.Action {
		case ActionFolder:
			if err := applyFolder(dest, t, opts.DryRun); err != nil {
				return result, err
			}
			result.Folders = append(result.Folders, t.Path)

		case ActionTemplate:
			if err := applyTemplate(dest, t, templates, vars, opts.DryRun); err != nil {
				return result, err
			}
			result.Files = append(result.Files, t.Path)

		default:
			return result, fmt.Errorf("target %s: unknown action %q", t.Path, t.Action)
		}
	}

	return result, nil
}

func applyFolder(dest string, t Target, dryRun bool) error {
	if !t.Force {
		if _, err := os.Stat(dest); err == nil {
			return fmt.Errorf("%s: %w", dest, ErrTargetExists)
		}
	}
	if dryRun {
		return nil
	}
	if err := os.MkdirAll(dest, 0755); err != nil {
		return fmt.Errorf("creating folder %s: %w", dest, err)
	}
	return nil
}

func applyTemplate(dest string, t Target, templates fs.FS, vars map[string]any, dryRun bool) error {
	if !t.Force {
		if _, err := os.Stat(dest); err == nil {
			return fmt.Errorf("%s: %w", dest, ErrTargetExists)
		}
	}

	out, err := Render(templates, t.TemplatePath, vars)
	if err != nil {
		return err
	}
	if dryRun {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", dest, err)
	}
	if err := os.WriteFile(dest, out, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	return nil
}

// Render executes the named template against vars. Referencing a variable
// that vars does not define is an error.
func Render(templates fs.FS, name string, vars map[string]any) ([]byte, error) {
	tmplBytes, err := fs.ReadFile(templates, name)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(tmplBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
