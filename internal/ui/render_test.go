package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/muurk/bootcfg/internal/cmdline"
	"github.com/muurk/bootcfg/internal/fwconfig"
)

func mustParse(t *testing.T, text string) *fwconfig.FirmwareConfig {
	t.Helper()
	cfg, err := fwconfig.Parse(text)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return cfg
}

func TestConfigView_RenderPlain(t *testing.T) {
	cfg := mustParse(t, "# top\ngpu_mem=64\n\n[pi4]\narm_boost=1\n[all]\ndtparam=audio=on\n")

	got := NewConfigView(cfg, false).Render()
	want := strings.Join([]string{
		"(global) (1 properties, 3 lines)",
		"  # top",
		"  gpu_mem=64",
		"",
		"[pi4] (1 properties, 1 lines)",
		"  arm_boost=1",
		"",
		"[all] (1 properties, 1 lines)",
		"  dtparam=audio=on",
		"",
	}, "\n")

	if got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestConfigView_SelectedSections(t *testing.T) {
	cfg := mustParse(t, "a=1\n[pi4]\nb=2\n")

	v := NewConfigView(cfg, false)
	v.Sections = []string{"pi4"}
	got := v.Render()

	if strings.Contains(got, "(global)") {
		t.Errorf("Render() should only include pi4, got:\n%s", got)
	}
	if !strings.Contains(got, "b=2") {
		t.Errorf("Render() missing pi4 property, got:\n%s", got)
	}
}

func TestRenderCmdline(t *testing.T) {
	params := cmdline.Parse("console=tty1  quiet")
	got := RenderCmdline(params, false)
	want := "console=tty1\nquiet\n"
	if got != want {
		t.Errorf("RenderCmdline() = %q, want %q", got, want)
	}
}

func TestPainter_PlainIsIdentity(t *testing.T) {
	p := Painter{Color: false}
	in := "a\tb"
	if got := p.Paint(SectionTitleStyle, in); got != in {
		t.Errorf("Paint() = %q, want %q", got, in)
	}
}

func TestResult_RenderPlain(t *testing.T) {
	tests := []struct {
		name     string
		result   *Result
		expected []string
	}{
		{
			name: "success",
			result: NewSuccessResult("config.txt is valid", false).
				AddDetail("Sections", "3").
				AddDetail("Lines", "12"),
			expected: []string{SuccessMarker, "OK: config.txt is valid", "Sections:", "12"},
		},
		{
			name: "failure",
			result: NewFailureResult("config.txt has errors", errors.New("line 4"),
				[]string{"Remove stray whitespace"}, false),
			expected: []string{FailureMarker, "FAILED", "Error: line 4", "Troubleshooting:", "Remove stray whitespace"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.result.String()
			for _, exp := range tt.expected {
				if !strings.Contains(got, exp) {
					t.Errorf("Render() missing %q in:\n%s", exp, got)
				}
			}
			if strings.Contains(got, "\x1b[") {
				t.Error("plain Render() should not contain escape sequences")
			}
		})
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"yes", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}

	for _, tt := range tests {
		var out strings.Builder
		got := Confirm(strings.NewReader(tt.input), &out, "Write config.txt?", false)
		if got != tt.want {
			t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if !strings.HasPrefix(out.String(), "Write config.txt? [y/N]: ") {
			t.Errorf("prompt = %q", out.String())
		}
	}
}
