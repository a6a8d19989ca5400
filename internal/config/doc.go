// Package config manages bootcfg user preferences.
//
// Preferences live in a small YAML file that records where the firmware boot
// files are (boot directory, config.txt and cmdline.txt names), the default log
// level, and output settings. A missing file is not an error: defaults for a
// Raspberry Pi OS boot partition are used instead.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/bootcfg/config.yaml or $HOME/.config/bootcfg/config.yaml
//   - macOS: $HOME/.config/bootcfg/config.yaml
//   - Windows: %LOCALAPPDATA%\bootcfg\config.yaml
//
// # Usage Example
//
//	prefs, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	part := bootfs.NewPartition(prefs.BootDir)
//
// # Thread Safety
//
// Writes are serialized by a package mutex and performed atomically
// (temporary file plus rename).
package config
