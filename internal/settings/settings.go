// Package settings loads gradebook configuration from
// .gradebook/settings.yaml in the working directory.
//
// The file is optional. Keys that are absent keep their defaults:
//
//	data_file: gradebook.json
//	log:
//	  level: warn
//	  file: ""      # empty logs to stderr
//	  pretty: true
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Dir and File locate the settings file relative to the root directory.
const (
	Dir  = ".gradebook"
	File = "settings.yaml"
)

// Settings holds gradebook configuration.
type Settings struct {
	// DataFile is the JSON data file. Relative paths resolve against root.
	DataFile string `yaml:"data_file"`
	Log      Log    `yaml:"log"`
}

// Log configures diagnostic logging. User-facing messages are not affected.
type Log struct {
	Level  string `yaml:"level"`
	File   string `yaml:"file"`
	Pretty bool   `yaml:"pretty"`
}

// Default returns the settings used when no file is present.
func Default() Settings {
	return Settings{
		DataFile: "gradebook.json",
		Log: Log{
			Level:  "warn",
			Pretty: true,
		},
	}
}

// Load reads <root>/.gradebook/settings.yaml on top of Default. A missing
// file is not an error.
func Load(root string) (Settings, error) {
	s := Default()
	path := filepath.Join(root, Dir, File)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("unmarshal %s: %w", path, err)
	}
	if s.DataFile == "" {
		s.DataFile = Default().DataFile
	}
	return s, nil
}

// DataPath resolves DataFile against root.
func (s Settings) DataPath(root string) string {
	if filepath.IsAbs(s.DataFile) {
		return s.DataFile
	}
	return filepath.Join(root, s.DataFile)
}

// LogPath resolves Log.File against root. Empty means stderr.
func (s Settings) LogPath(root string) string {
	if s.Log.File == "" || filepath.IsAbs(s.Log.File) {
		return s.Log.File
	}
	return filepath.Join(root, s.Log.File)
}
