package bootfs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/muurk/bootcfg/internal/cmdline"
	"github.com/muurk/bootcfg/internal/config"
	"github.com/muurk/bootcfg/internal/fwconfig"
	"github.com/muurk/bootcfg/internal/logging"
)

// defaultFileMode is used when writing a file that does not exist yet.
const defaultFileMode = 0644

// Mutex for thread-safe file operations
var fileMutex sync.Mutex

// Partition locates the boot files.
type Partition struct {
	Dir         string
	ConfigFile  string
	CmdlineFile string
}

// NewPartition returns a Partition with the default file names.
func NewPartition(dir string) *Partition {
	return &Partition{
		Dir:         dir,
		ConfigFile:  config.DefaultConfigFile,
		CmdlineFile: config.DefaultCmdlineFile,
	}
}

// FromPreferences builds a Partition from user preferences.
func FromPreferences(p *config.Preferences) *Partition {
	return &Partition{
		Dir:         p.BootDir,
		ConfigFile:  p.ConfigFile,
		CmdlineFile: p.CmdlineFile,
	}
}

// ConfigPath returns the full path of the firmware config file.
func (p *Partition) ConfigPath() string {
	return p.resolve(p.ConfigFile)
}

// CmdlinePath returns the full path of the kernel command line file.
func (p *Partition) CmdlinePath() string {
	return p.resolve(p.CmdlineFile)
}

func (p *Partition) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(p.Dir, name)
}

// ReadConfigText returns the raw contents of the firmware config file.
func (p *Partition) ReadConfigText() (string, error) {
	path := p.ConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &FileError{Op: OpRead, Path: path, Err: err}
	}
	return string(data), nil
}

// ReadConfig reads and parses the firmware config file.
func (p *Partition) ReadConfig() (*fwconfig.FirmwareConfig, error) {
	cfg, _, err := p.ReadConfigWithText()
	return cfg, err
}

// ReadConfigWithText reads and parses the firmware config file, also
// returning the raw text it was parsed from.
func (p *Partition) ReadConfigWithText() (*fwconfig.FirmwareConfig, string, error) {
	text, err := p.ReadConfigText()
	if err != nil {
		return nil, "", err
	}

	path := p.ConfigPath()
	cfg, err := fwconfig.Parse(text)
	if err != nil {
		var lineErr *fwconfig.UnrecognizedLineError
		if errors.As(err, &lineErr) {
			logging.LogUnrecognizedLine(path, lineErr.Index, lineErr.Line)
		}
		return nil, "", &FileError{Op: OpParse, Path: path, Err: err}
	}

	logging.LogParse(path, len(cfg.SectionNames()), strings.Count(text, "\n"))
	return cfg, text, nil
}

// WriteConfig writes cfg to the firmware config file.
func (p *Partition) WriteConfig(cfg *fwconfig.FirmwareConfig) error {
	return writeFileAtomic(p.ConfigPath(), []byte(fwconfig.Stringify(cfg)))
}

// ReadCmdline reads the kernel command line. Trailing newlines are dropped
// before splitting so the last token stays clean.
func (p *Partition) ReadCmdline() (cmdline.Params, error) {
	path := p.CmdlinePath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Op: OpRead, Path: path, Err: err}
	}
	return cmdline.Parse(strings.TrimRight(string(data), "\r\n")), nil
}

// WriteCmdline writes the kernel command line followed by a single line
// ending. An existing file that ends in "\r\n" keeps it; otherwise "\n" is used.
func (p *Partition) WriteCmdline(params cmdline.Params) error {
	path := p.CmdlinePath()
	return writeFileAtomic(path, []byte(cmdline.Stringify(params)+lineEnding(path)))
}

// lineEnding returns the line ending of the existing file at path.
func lineEnding(path string) string {
	data, err := os.ReadFile(path)
	if err == nil && strings.HasSuffix(string(data), "\r\n") {
		return "\r\n"
	}
	return "\n"
}

// writeFileAtomic writes data through a temporary file in the same directory
// and renames it over path, keeping the existing file mode.
func writeFileAtomic(path string, data []byte) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	mode := os.FileMode(defaultFileMode)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &FileError{Op: OpWrite, Path: path, Err: err}
	}
	tmpPath := tmp.Name()

	fail := func(err error) error {
		tmp.Close()
		os.Remove(tmpPath)
		return &FileError{Op: OpWrite, Path: path, Err: err}
	}

	if _, err := tmp.Write(data); err != nil {
		return fail(err)
	}
	if err := tmp.Sync(); err != nil {
		return fail(err)
	}
	if err := tmp.Chmod(mode); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return &FileError{Op: OpWrite, Path: path, Err: err}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return &FileError{Op: OpWrite, Path: path, Err: err}
	}

	logging.LogWrite(path, len(data))
	return nil
}
