package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	goruntime "runtime"
	"strings"
	"testing"

	"github.com/sailsgen/sails-generate-login/internal/manifest"
	"github.com/sailsgen/sails-generate-login/internal/scope"
	"github.com/spf13/viper"
)

// runCLI executes the root command with args and returns stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("HOME", t.TempDir())

	// Flag variables survive between Execute calls.
	generateRoot = "."
	generateTemplatesDir = ""
	generateDryRun = false
	generateInstall = false
	checkRoot = "."
	verbosity = 0
	logFile = ""

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func newProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	pkg := `{"name": "sails-app", "dependencies": {"lodash": "^3.0.0"}}`
	if err := os.WriteFile(filepath.Join(root, "package.json"), []byte(pkg), 0644); err != nil {
		t.Fatal(err)
	}
	return root
}

func TestGenerateLogin(t *testing.T) {
	root := newProject(t)

	out, err := runCLI(t, "generate", "login", "profile", "--root", root)
	if err != nil {
		t.Fatalf("generate login error: %v", err)
	}

	for _, want := range []string{
		"Created login scaffolding in " + root,
		"views/user/",
		"config/secret.js",
		"passport: latest (added)",
		"npm install",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if _, err := os.Stat(filepath.Join(root, "api", "controllers", "UserController.js")); err != nil {
		t.Errorf("UserController.js not generated: %v", err)
	}
}

func TestGenerateLoginDryRun(t *testing.T) {
	root := newProject(t)

	out, err := runCLI(t, "generate", "login", "--root", root, "--dry-run")
	if err != nil {
		t.Fatalf("generate login error: %v", err)
	}
	if !strings.Contains(out, "Would create") {
		t.Errorf("output missing dry-run header:\n%s", out)
	}
	if strings.Contains(out, "Next steps") {
		t.Errorf("dry run should not print next steps:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(root, "config")); !os.IsNotExist(err) {
		t.Error("dry run wrote files")
	}
}

func TestGenerateLoginInstall(t *testing.T) {
	if goruntime.GOOS == "windows" {
		t.Skip("shell script fakes are not supported on Windows")
	}
	bin := t.TempDir()
	script := "#!/bin/sh\necho \"npm $1 ok\"\n"
	if err := os.WriteFile(filepath.Join(bin, "npm"), []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", bin)

	root := newProject(t)
	out, err := runCLI(t, "generate", "login", "--root", root, "--install")
	if err != nil {
		t.Fatalf("generate login --install error: %v", err)
	}
	if !strings.Contains(out, "npm install ok") {
		t.Errorf("output missing npm output:\n%s", out)
	}
}

func TestGenerateLoginEmptyRoot(t *testing.T) {
	_, err := runCLI(t, "generate", "login", "--root", "")

	var missing *scope.MissingScopeVariableError
	if !errors.As(err, &missing) {
		t.Fatalf("error = %v, want *MissingScopeVariableError", err)
	}
}

func TestGenerateLoginMissingManifest(t *testing.T) {
	_, err := runCLI(t, "generate", "login", "--root", t.TempDir())

	var manifestErr *manifest.Error
	if !errors.As(err, &manifestErr) {
		t.Fatalf("error = %v, want *manifest.Error", err)
	}
}

func TestCheck(t *testing.T) {
	root := newProject(t)

	out, err := runCLI(t, "check", "--root", root)
	if err != nil {
		t.Fatalf("check error: %v", err)
	}
	if !strings.Contains(out, "[ ] passport") {
		t.Errorf("output should list passport as missing:\n%s", out)
	}

	if _, err := runCLI(t, "generate", "login", "--root", root); err != nil {
		t.Fatalf("generate login error: %v", err)
	}

	out, err = runCLI(t, "check", "--root", root)
	if err != nil {
		t.Fatalf("check error: %v", err)
	}
	if !strings.Contains(out, "[x] bcrypt latest") {
		t.Errorf("output should list bcrypt as present:\n%s", out)
	}
}

func TestCheckFlagsOldNode(t *testing.T) {
	if goruntime.GOOS == "windows" {
		t.Skip("shell script fakes are not supported on Windows")
	}
	bin := t.TempDir()
	if err := os.WriteFile(filepath.Join(bin, "node"), []byte("#!/bin/sh\necho v16.20.2\n"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(bin, "npm"), []byte("#!/bin/sh\necho 10.2.4\n"), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", bin)

	out, err := runCLI(t, "check", "--root", newProject(t))
	if err != nil {
		t.Fatalf("check error: %v", err)
	}
	if !strings.Contains(out, "[!] node 16.20.2 (requires >= 18.0.0)") {
		t.Errorf("output should flag the old node:\n%s", out)
	}
	if !strings.Contains(out, "[x] npm 10.2.4") {
		t.Errorf("output should list npm:\n%s", out)
	}
}

func TestVersionShort(t *testing.T) {
	buildVersion = "1.2.3"
	t.Cleanup(func() { buildVersion = "" })

	out, err := runCLI(t, "version", "--short")
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	if strings.TrimSpace(out) != "1.2.3" {
		t.Errorf("version --short = %q, want %q", out, "1.2.3")
	}
}

func TestDescribeError(t *testing.T) {
	t.Run("missing scope variable", func(t *testing.T) {
		msg := describeError(&scope.MissingScopeVariableError{Name: "rootPath"})
		for _, want := range []string{`generator "login"`, `"rootPath"`, "issues"} {
			if !strings.Contains(msg, want) {
				t.Errorf("message missing %q:\n%s", want, msg)
			}
		}
	})

	t.Run("manifest error", func(t *testing.T) {
		err := &manifest.Error{
			Path:  "/srv/app/package.json",
			Cause: errors.New(`"dependencies": not a JSON object`),
		}
		msg := describeError(err)
		if !strings.Contains(msg, "/srv/app/package.json") || !strings.Contains(msg, "not a JSON object") {
			t.Errorf("message missing path or cause:\n%s", msg)
		}
		if !strings.Contains(msg, "Fix package.json") {
			t.Errorf("message missing remediation:\n%s", msg)
		}
	})

	t.Run("other", func(t *testing.T) {
		if msg := describeError(errors.New("boom")); msg != "Error: boom" {
			t.Errorf("describeError() = %q", msg)
		}
	})
}
