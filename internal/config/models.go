package config

// CurrentVersion is the preferences file format version.
const CurrentVersion = 1

// Defaults for a Raspberry Pi OS boot partition.
const (
	DefaultBootDir     = "/boot/firmware"
	DefaultConfigFile  = "config.txt"
	DefaultCmdlineFile = "cmdline.txt"
)

// Preferences represents the user preferences file.
// Command-line flags always take precedence over these values.
type Preferences struct {
	Version     int    `yaml:"version"`
	BootDir     string `yaml:"boot_dir"`               // Directory holding the firmware boot files
	ConfigFile  string `yaml:"config_file"`            // Firmware config file name, relative to BootDir
	CmdlineFile string `yaml:"cmdline_file"`           // Kernel command line file name, relative to BootDir
	LogLevel    string `yaml:"log_level,omitempty"`    // Empty means silent
	Color       *bool  `yaml:"color,omitempty"`        // nil means auto-detect from the terminal
	ConfirmSave bool   `yaml:"confirm_save,omitempty"` // Ask before writing boot files
}

// NewPreferences creates Preferences with default values.
func NewPreferences() *Preferences {
	return &Preferences{
		Version:     CurrentVersion,
		BootDir:     DefaultBootDir,
		ConfigFile:  DefaultConfigFile,
		CmdlineFile: DefaultCmdlineFile,
	}
}

// applyDefaults fills in fields left empty in a loaded file.
func (p *Preferences) applyDefaults() {
	if p.BootDir == "" {
		p.BootDir = DefaultBootDir
	}
	if p.ConfigFile == "" {
		p.ConfigFile = DefaultConfigFile
	}
	if p.CmdlineFile == "" {
		p.CmdlineFile = DefaultCmdlineFile
	}
}

// ColorEnabled resolves the color preference. When unset, tty decides.
func (p *Preferences) ColorEnabled(tty bool) bool {
	if p.Color == nil {
		return tty
	}
	return *p.Color
}
