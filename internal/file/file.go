package file

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// ExpandPath expands a leading '~' to the user's home directory.
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "resolving home directory")
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// Read reads a file after expanding its path.
func Read(path string) ([]byte, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}
	bytes, err := os.ReadFile(expanded)
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}
	return bytes, nil
}
