// Package fileutil provides folder naming and filesystem checks for challenge projects.
//
// Example usage:
//
//	name := fileutil.FolderName("Challenge 1: Show/Hide Password!") // "challenge-1-showhide-password"
//
//	exists, err := fileutil.Exists(filepath.Join(root, name))
package fileutil

import (
	"errors"
	"io/fs"
	"os"
	"regexp"
	"strings"
)

var (
	// whitespace follows the ECMAScript \s class, which is wider than RE2's
	folderNameStrip = regexp.MustCompile(`[^\w\s\v\p{Z}\x{FEFF}-]`)
	folderNameSpace = regexp.MustCompile(`[\s\v\p{Z}\x{FEFF}]+`)
)

// FolderName turns a challenge label into a directory name: lower-cased, everything that is not a
// word character, whitespace or hyphen removed, whitespace runs collapsed into a single hyphen.
// Applying it to its own output returns the same string.
func FolderName(label string) string {
	name := strings.ToLower(label)
	name = folderNameStrip.ReplaceAllString(name, "")
	return folderNameSpace.ReplaceAllString(name, "-")
}

// Exists reports whether anything is present at path. Errors other than "not exist" are returned
// so callers do not mistake a permission problem for a free slot.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// WriteFile writes data to path, replacing any previous content
func WriteFile(path string, data []byte) error {
	//nolint:gosec // G306: marker files are meant to be readable by the project owner's tools
	return os.WriteFile(path, data, 0644)
}
