package ui

import (
	"fmt"
	"strings"

	"github.com/muurk/bootcfg/internal/cmdline"
	"github.com/muurk/bootcfg/internal/fwconfig"
)

// ConfigView renders a parsed firmware config for humans.
type ConfigView struct {
	Config *fwconfig.FirmwareConfig
	// Sections limits output to the named sections; empty means all
	Sections []string
	Painter
}

// NewConfigView creates a view of every section
func NewConfigView(cfg *fwconfig.FirmwareConfig, color bool) *ConfigView {
	return &ConfigView{Config: cfg, Painter: Painter{Color: color}}
}

// sectionTitle returns the display title for a section
func sectionTitle(name string) string {
	if name == fwconfig.GlobalSection {
		return "(global)"
	}
	return "[" + name + "]"
}

// Render returns every selected section with its lines indented under a title.
func (v *ConfigView) Render() string {
	names := v.Sections
	if len(names) == 0 {
		names = v.Config.SectionNames()
	}

	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteString("\n")
		}
		v.renderSection(&b, name)
	}
	return b.String()
}

func (v *ConfigView) renderSection(b *strings.Builder, name string) {
	lines := v.Config.Section(name)

	props := 0
	for _, l := range lines {
		if l.IsProperty() {
			props++
		}
	}

	b.WriteString(v.Paint(SectionTitleStyle, sectionTitle(name)))
	b.WriteString(" ")
	b.WriteString(v.Paint(SectionMetaStyle, fmt.Sprintf("(%d properties, %d lines)", props, len(lines))))
	b.WriteString("\n")

	for _, l := range lines {
		switch l.Kind {
		case fwconfig.KindProperty:
			b.WriteString(LineIndent)
			b.WriteString(v.Paint(PropertyKeyStyle, l.Property))
			b.WriteString("=")
			b.WriteString(v.Paint(PropertyValueStyle, l.Value))
		case fwconfig.KindComment:
			b.WriteString(LineIndent)
			b.WriteString(v.Paint(CommentStyle, l.Text))
		}
		if l.Kind != fwconfig.KindEmpty {
			b.WriteString("\n")
		}
	}
}

// RenderCmdline lists kernel command-line tokens one per line.
func RenderCmdline(params cmdline.Params, color bool) string {
	p := Painter{Color: color}

	var b strings.Builder
	for _, param := range params {
		if param.Name == "" && param.Value == "" {
			continue
		}
		b.WriteString(p.Paint(PropertyKeyStyle, param.Name))
		if param.Value != "" {
			b.WriteString("=")
			b.WriteString(p.Paint(PropertyValueStyle, param.Value))
		}
		b.WriteString("\n")
	}
	return b.String()
}
