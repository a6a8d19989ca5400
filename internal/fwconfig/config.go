package fwconfig

// Reserved section identifiers.
const (
	// GlobalSection names the lines that appear before any filter header
	GlobalSection = "__global"
	// AllSection names the lines that appear under an "[all]" header
	AllSection = "all"
)

// Section is a user-defined filter section and its member lines.
type Section struct {
	Name  string `json:"name" yaml:"name"`
	Lines []Line `json:"lines" yaml:"lines"`
}

// FirmwareConfig is a parsed config file bucketed by section.
//
// Lines never contain filter headers; headers are reconstructed from the
// section names on output. Filters keeps the order in which each header
// first appeared in the source.
type FirmwareConfig struct {
	Global  []Line    `json:"global" yaml:"global"`
	Filters []Section `json:"filters" yaml:"filters"`
	All     []Line    `json:"all" yaml:"all"`

	// HasAll records that an "[all]" block exists even when it is empty.
	HasAll bool `json:"has_all" yaml:"has_all"`
}

// New returns an empty config with both universal buckets initialized.
func New() *FirmwareConfig {
	return &FirmwareConfig{
		Global:  []Line{},
		Filters: []Section{},
		All:     []Line{},
	}
}

// filterIndex returns the position of the named filter in c.Filters, or -1.
func (c *FirmwareConfig) filterIndex(name string) int {
	for i := range c.Filters {
		if c.Filters[i].Name == name {
			return i
		}
	}
	return -1
}

// bucket returns a pointer to the line slice backing a section, creating a
// filter section when create is set. It returns nil for an unknown section.
func (c *FirmwareConfig) bucket(name string, create bool) *[]Line {
	switch name {
	case GlobalSection:
		return &c.Global
	case AllSection:
		if create {
			c.HasAll = true
		}
		return &c.All
	}

	i := c.filterIndex(name)
	if i < 0 {
		if !create {
			return nil
		}
		c.Filters = append(c.Filters, Section{Name: name, Lines: []Line{}})
		i = len(c.Filters) - 1
	}
	return &c.Filters[i].Lines
}

// Section returns the lines of a section, or nil when it does not exist.
// GlobalSection and AllSection address the two universal buckets.
func (c *FirmwareConfig) Section(name string) []Line {
	b := c.bucket(name, false)
	if b == nil {
		return nil
	}
	return *b
}

// HasSection reports whether the named section exists.
func (c *FirmwareConfig) HasSection(name string) bool {
	switch name {
	case GlobalSection:
		return true
	case AllSection:
		return c.HasAll || len(c.All) > 0
	}
	return c.filterIndex(name) >= 0
}

// SectionNames lists sections in output order: global, filters, then all
// when it is present.
func (c *FirmwareConfig) SectionNames() []string {
	names := make([]string, 0, len(c.Filters)+2)
	names = append(names, GlobalSection)
	for _, s := range c.Filters {
		names = append(names, s.Name)
	}
	if c.HasSection(AllSection) {
		names = append(names, AllSection)
	}
	return names
}

// Get returns the value of the last assignment of property in a section.
func (c *FirmwareConfig) Get(section, property string) (string, bool) {
	lines := c.Section(section)
	for i := len(lines) - 1; i >= 0; i-- {
		if lines[i].IsProperty() && lines[i].Property == property {
			return lines[i].Value, true
		}
	}
	return "", false
}

// Set assigns value to property in a section. The last existing assignment
// is rewritten in place; otherwise a new line is appended, creating the
// section if needed.
func (c *FirmwareConfig) Set(section, property, value string) error {
	if err := ValidateSectionName(section); err != nil {
		return err
	}
	line, err := NewPropertyLine(property, value)
	if err != nil {
		return err
	}

	b := c.bucket(section, true)
	for i := len(*b) - 1; i >= 0; i-- {
		if (*b)[i].IsProperty() && (*b)[i].Property == property {
			(*b)[i] = line
			return nil
		}
	}
	*b = append(*b, line)
	return nil
}

// Remove deletes every assignment of property in a section and returns how
// many lines were dropped. The section itself is kept even when emptied.
func (c *FirmwareConfig) Remove(section, property string) int {
	b := c.bucket(section, false)
	if b == nil {
		return 0
	}

	kept := (*b)[:0]
	removed := 0
	for _, l := range *b {
		if l.IsProperty() && l.Property == property {
			removed++
			continue
		}
		kept = append(kept, l)
	}
	*b = kept
	return removed
}

// Properties returns the property lines of a section in source order.
func (c *FirmwareConfig) Properties(section string) []Line {
	var props []Line
	for _, l := range c.Section(section) {
		if l.IsProperty() {
			props = append(props, l)
		}
	}
	return props
}
