package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muurk/bootcfg/internal/fwconfig"
	"github.com/muurk/bootcfg/internal/logging"
)

const testConfig = `# boot config
dtparam=audio=on
[pi4]
arm_boost=1
[all]
enable_uart=1
`

// newBootDir creates a boot directory holding config.txt and cmdline.txt.
func newBootDir(t *testing.T, configText, cmdlineText string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.txt"), []byte(configText), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "cmdline.txt"), []byte(cmdlineText), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

// run executes bootcfg against dir and returns stdout.
func run(t *testing.T, dir, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv(logging.LogLevelEnvVar, "")

	full := append([]string{
		"--prefs", filepath.Join(t.TempDir(), "prefs.yaml"),
		"--boot-dir", dir,
	}, args...)

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(full)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))

	err := cmd.Execute()
	return out.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestShowCmd_Text(t *testing.T) {
	dir := newBootDir(t, testConfig, "quiet\n")

	out, err := run(t, dir, "", "show")
	if err != nil {
		t.Fatalf("show error = %v", err)
	}

	for _, want := range []string{"(global)", "[pi4]", "arm_boost=1", "[all]", "enable_uart=1"} {
		if !strings.Contains(out, want) {
			t.Errorf("show output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "[pi4]") > strings.Index(out, "[all]") {
		t.Error("[all] should be listed after [pi4]")
	}
}

func TestShowCmd_JSON(t *testing.T) {
	dir := newBootDir(t, testConfig, "quiet\n")

	out, err := run(t, dir, "", "show", "--format", "json")
	if err != nil {
		t.Fatalf("show error = %v", err)
	}

	var decoded struct {
		Filters []struct {
			Name  string `json:"name"`
			Lines []struct {
				Kind     string `json:"kind"`
				Property string `json:"property"`
			} `json:"lines"`
		} `json:"filters"`
		HasAll bool `json:"has_all"`
	}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if len(decoded.Filters) != 1 || decoded.Filters[0].Name != "pi4" {
		t.Fatalf("filters = %+v", decoded.Filters)
	}
	if decoded.Filters[0].Lines[0].Kind != "property" {
		t.Errorf("kind = %q, want property", decoded.Filters[0].Lines[0].Kind)
	}
	if !decoded.HasAll {
		t.Error("has_all = false, want true")
	}
}

func TestShowCmd_YAML(t *testing.T) {
	dir := newBootDir(t, testConfig, "quiet\n")

	out, err := run(t, dir, "", "show", "--format", "yaml")
	if err != nil {
		t.Fatalf("show error = %v", err)
	}
	if !strings.Contains(out, "name: pi4") || !strings.Contains(out, "kind: property") {
		t.Errorf("unexpected YAML:\n%s", out)
	}
}

func TestShowCmd_Errors(t *testing.T) {
	dir := newBootDir(t, testConfig, "quiet\n")

	if _, err := run(t, dir, "", "show", "--section", "pi5"); err == nil {
		t.Error("show --section pi5 should fail")
	}
	if _, err := run(t, dir, "", "show", "--format", "toml"); err == nil {
		t.Error("show --format toml should fail")
	}
}

func TestCheckCmd(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		dir := newBootDir(t, testConfig, "")
		out, err := run(t, dir, "", "check")
		if err != nil {
			t.Fatalf("check error = %v", err)
		}
		if !strings.Contains(out, "is valid") || !strings.Contains(out, "3") {
			t.Errorf("check output:\n%s", out)
		}
	})

	t.Run("empty global is not counted", func(t *testing.T) {
		dir := newBootDir(t, "[pi4]\na=1\n", "")
		out, err := run(t, dir, "", "check")
		if err != nil {
			t.Fatalf("check error = %v", err)
		}
		for _, want := range []string{"Sections:       1", "Properties:     1"} {
			if !strings.Contains(out, want) {
				t.Errorf("check output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("unrecognized line", func(t *testing.T) {
		dir := newBootDir(t, "a=1\nb = 2\n", "")
		out, err := run(t, dir, "", "check")
		if err != errCheckFailed {
			t.Fatalf("check error = %v, want errCheckFailed", err)
		}
		if !strings.Contains(out, "2") || !strings.Contains(out, `"b = 2"`) {
			t.Errorf("check output should name line 2:\n%s", out)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := run(t, t.TempDir(), "", "check")
		if err == nil || err == errCheckFailed {
			t.Errorf("check error = %v, want read error", err)
		}
	})
}

func TestFmtCmd(t *testing.T) {
	unordered := "[all]\na=1\n[x]\nb=2\n[x]\nc=3\n"
	want := "[x]\nb=2\nc=3\n[all]\na=1\n"

	dir := newBootDir(t, unordered, "")
	out, err := run(t, dir, "", "fmt")
	if err != nil {
		t.Fatalf("fmt error = %v", err)
	}
	if out != want {
		t.Errorf("fmt output = %q, want %q", out, want)
	}
	if got := readFile(t, filepath.Join(dir, "config.txt")); got != unordered {
		t.Error("fmt without --write must not modify the file")
	}

	if _, err := run(t, dir, "", "fmt", "--write"); err != nil {
		t.Fatalf("fmt --write error = %v", err)
	}
	if got := readFile(t, filepath.Join(dir, "config.txt")); got != want {
		t.Errorf("config.txt = %q, want %q", got, want)
	}
}

func TestGetSetUnsetCmds(t *testing.T) {
	dir := newBootDir(t, testConfig, "")
	configPath := filepath.Join(dir, "config.txt")

	out, err := run(t, dir, "", "get", "pi4", "arm_boost")
	if err != nil || out != "1\n" {
		t.Fatalf("get = (%q, %v), want (\"1\\n\", nil)", out, err)
	}
	if _, err := run(t, dir, "", "get", "pi4", "missing"); err == nil {
		t.Error("get of a missing property should fail")
	}

	if _, err := run(t, dir, "", "set", "pi4", "arm_boost", "0"); err != nil {
		t.Fatalf("set error = %v", err)
	}
	if _, err := run(t, dir, "", "set", "cm4", "otg_mode", "1"); err != nil {
		t.Fatalf("set error = %v", err)
	}
	want := "# boot config\ndtparam=audio=on\n[pi4]\narm_boost=0\n[cm4]\notg_mode=1\n[all]\nenable_uart=1\n"
	if got := readFile(t, configPath); got != want {
		t.Errorf("after set: %q, want %q", got, want)
	}

	if _, err := run(t, dir, "", "set", "pi4", "arm_boost", "a b"); !fwconfig.IsValueError(err) {
		t.Errorf("set with space in value error = %v, want ValueError", err)
	}

	if _, err := run(t, dir, "", "unset", "cm4", "otg_mode"); err != nil {
		t.Fatalf("unset error = %v", err)
	}
	if _, err := run(t, dir, "", "unset", "cm4", "otg_mode"); err == nil {
		t.Error("second unset should fail")
	}
	want = "# boot config\ndtparam=audio=on\n[pi4]\narm_boost=0\n[cm4]\n[all]\nenable_uart=1\n"
	if got := readFile(t, configPath); got != want {
		t.Errorf("after unset: %q, want %q", got, want)
	}
}

func TestSetCmd_DryRun(t *testing.T) {
	dir := newBootDir(t, testConfig, "")

	out, err := run(t, dir, "", "set", "all", "enable_uart", "0", "--dry-run")
	if err != nil {
		t.Fatalf("set --dry-run error = %v", err)
	}
	if !strings.Contains(out, "enable_uart=0") {
		t.Errorf("dry run output missing new value:\n%s", out)
	}
	if got := readFile(t, filepath.Join(dir, "config.txt")); got != testConfig {
		t.Error("dry run must not modify the file")
	}
}

func TestSetCmd_ConfirmSave(t *testing.T) {
	dir := newBootDir(t, testConfig, "")
	prefs := filepath.Join(t.TempDir(), "prefs.yaml")
	if err := os.WriteFile(prefs, []byte("confirm_save: true\n"), 0600); err != nil {
		t.Fatal(err)
	}

	runWithPrefs := func(stdin string, args ...string) error {
		var out bytes.Buffer
		cmd := newRootCmd()
		cmd.SetArgs(append([]string{"--prefs", prefs, "--boot-dir", dir}, args...))
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetIn(strings.NewReader(stdin))
		return cmd.Execute()
	}

	if err := runWithPrefs("n\n", "set", "pi4", "arm_boost", "0"); err != nil {
		t.Fatalf("set error = %v", err)
	}
	if got := readFile(t, filepath.Join(dir, "config.txt")); got != testConfig {
		t.Error("declined confirmation must not modify the file")
	}

	if err := runWithPrefs("y\n", "set", "pi4", "arm_boost", "0"); err != nil {
		t.Fatalf("set error = %v", err)
	}
	if got := readFile(t, filepath.Join(dir, "config.txt")); !strings.Contains(got, "arm_boost=0") {
		t.Errorf("confirmed set not written: %q", got)
	}
}

func TestCmdlineCmds(t *testing.T) {
	dir := newBootDir(t, testConfig, "console=serial0,115200 root=PARTUUID=1234-02 rootwait\n")
	cmdlinePath := filepath.Join(dir, "cmdline.txt")

	out, err := run(t, dir, "", "cmdline", "show")
	if err != nil {
		t.Fatalf("cmdline show error = %v", err)
	}
	if out != "console=serial0,115200\nroot=PARTUUID=1234-02\nrootwait\n" {
		t.Errorf("cmdline show = %q", out)
	}

	out, err = run(t, dir, "", "cmdline", "get", "root")
	if err != nil || out != "PARTUUID=1234-02\n" {
		t.Errorf("cmdline get root = (%q, %v)", out, err)
	}

	if _, err := run(t, dir, "", "cmdline", "set", "quiet"); err != nil {
		t.Fatalf("cmdline set error = %v", err)
	}
	if _, err := run(t, dir, "", "cmdline", "set", "console=tty1"); err != nil {
		t.Fatalf("cmdline set error = %v", err)
	}
	if got := readFile(t, cmdlinePath); got != "console=tty1 root=PARTUUID=1234-02 rootwait quiet\n" {
		t.Errorf("cmdline.txt = %q", got)
	}

	if _, err := run(t, dir, "", "cmdline", "remove", "quiet"); err != nil {
		t.Fatalf("cmdline remove error = %v", err)
	}
	if _, err := run(t, dir, "", "cmdline", "remove", "quiet"); err == nil {
		t.Error("removing an absent parameter should fail")
	}

	out, err = run(t, dir, "", "cmdline", "show", "--raw")
	if err != nil || out != "console=tty1 root=PARTUUID=1234-02 rootwait\n" {
		t.Errorf("cmdline show --raw = (%q, %v)", out, err)
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, t.TempDir(), "", "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(out, "bootcfg ") {
		t.Errorf("version output = %q", out)
	}
}
