package config

import (
	"errors"
	"os"
	"path/filepath"
)

// FileName is the name of the configuration file.
const FileName = ".vvresults.yaml"

// ErrNotFound is returned when no configuration file exists in the directory
// or any parent.
var ErrNotFound = errors.New(".vvresults.yaml not found in the working directory or any parent")

// Find walks up from the current working directory looking for .vvresults.yaml.
func Find() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return FindFrom(cwd)
}

// FindFrom walks up from startDir looking for .vvresults.yaml and returns its path.
func FindFrom(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		path := filepath.Join(dir, FileName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}

// Resolve loads the configuration at path, or the discovered one when path is
// empty. Without any file it returns the defaults.
func Resolve(path string) (*Config, []string, error) {
	if path == "" {
		found, err := Find()
		if errors.Is(err, ErrNotFound) {
			return Default(), nil, nil
		}
		if err != nil {
			return nil, nil, err
		}
		path = found
	}
	return LoadAndValidate(path)
}
