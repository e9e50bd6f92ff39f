package config

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const filePerm = 0o644

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	return Parse(data)
}

// Parse parses YAML data into a File. Keys missing from data keep their
// default values.
func Parse(data []byte) (*File, error) {
	file := Default()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	err := decoder.Decode(file)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "failed to parse config YAML")
	}

	applyDefaults(file)

	return file, nil
}

// applyDefaults fills in values that were explicitly left empty.
func applyDefaults(file *File) {
	defaults := Default()

	if file.Version == "" {
		file.Version = defaults.Version
	}

	if file.MacroName == "" {
		file.MacroName = defaults.MacroName
	}

	if file.Color == "" {
		file.Color = defaults.Color
	}
}

// Marshal serializes a File to YAML.
func Marshal(file *File) ([]byte, error) {
	return yaml.Marshal(file)
}

// WriteFile writes a File to the given path.
func WriteFile(file *File, path string) error {
	data, err := Marshal(file)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return errors.Wrapf(err, "failed to write config file %s", path)
	}

	return nil
}
