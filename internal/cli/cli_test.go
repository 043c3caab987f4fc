package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestValidate_Bundled(t *testing.T) {
	t.Setenv("CONTENT_PATH", "")

	out, _, err := runCmd(t, "validate")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.HasPrefix(out, "OK bundled content:") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestValidate_File(t *testing.T) {
	p := filepath.Join(t.TempDir(), "content.yaml")
	body := "profile:\n  name: Ada\n  roles: [A, B]\nprojects:\n  - {id: x, category: Web}\n  - {id: y, category: CLI}\n"
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	out, _, err := runCmd(t, "validate", p)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.Contains(out, "2 projects in 2 categories, 0 skills, 2 roles") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestValidate_ReportsProblems(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.yaml")
	body := "profile:\n  name: \"\"\nskills:\n  - {name: Go, category: Languages, proficiency: 150}\n"
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, errOut, err := runCmd(t, "validate", p)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(errOut, "profile.name is required") {
		t.Fatalf("missing problem in stderr: %q", errOut)
	}
	if !strings.Contains(errOut, "proficiency 150") {
		t.Fatalf("missing problem in stderr: %q", errOut)
	}
}
