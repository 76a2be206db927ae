package file

import (
	"os"
	"path"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	internalfile "github.com/Sro01/Documate/internal/file"
)

// SelectionOpts for choosing which files a command operates on.
type SelectionOpts struct {
	Files          []string
	FileExtensions []string
}

// File represents a selected file.
type File struct {
	Path    string
	Content []byte
}

// GetOpts on the given command.
func GetOpts(cmd *cobra.Command) *SelectionOpts {
	opts := &SelectionOpts{}
	cmd.Flags().StringSliceVar(&opts.Files, "file", nil, "file or directory to select ('dir/...' recurses)")
	cmd.Flags().StringSliceVar(&opts.FileExtensions, "ext", nil, "file extensions to accept")
	return opts
}

// Parse the selected files.
func Parse(opts *SelectionOpts) ([]*File, error) {
	files := []*File{}
	parseFileFn := func(filepath string) error {
		if !hasValidExtension(filepath, opts.FileExtensions) {
			return nil
		}
		bytes, err := os.ReadFile(filepath)
		if err != nil {
			return errors.Wrap(err, "reading file")
		}
		files = append(files, &File{Path: filepath, Content: bytes})
		return nil
	}
	for _, file := range opts.Files {
		if err := smartParse(file, parseFileFn); err != nil {
			return nil, errors.Wrapf(err, "smartParse (%s)", file)
		}
	}
	return files, nil
}

// smartParse understands '/...' logic.
func smartParse(filepath string, parseFileFn func(filepath string) error) error {
	// Expand the path to escape `~`.
	filepath, err := internalfile.ExpandPath(filepath)
	if err != nil {
		return errors.Wrap(err, "expanding path")
	}
	// Remove the "/..." if there is one, and record whether it existed.
	filepath, recurse := strings.CutSuffix(filepath, "/...")

	fileInfo, err := os.Stat(filepath)
	if err != nil {
		return errors.Wrap(err, "getting os stats")
	}
	if !fileInfo.IsDir() {
		if recurse {
			return errors.New("cannot recurse on a file")
		}
		if err := parseFileFn(filepath); err != nil {
			return errors.Wrap(err, "parseFileFn")
		}
		return nil
	}

	directory := filepath
	dirEntries, err := os.ReadDir(directory)
	if err != nil {
		return errors.Wrap(err, "reading directory")
	}
	for _, dirEntry := range dirEntries {
		dirEntryInfo, err := dirEntry.Info()
		if err != nil {
			return errors.Wrapf(err, "reading dir entry (%+v)", dirEntry)
		}
		if dirEntry.IsDir() {
			if recurse {
				filepath := path.Join(directory, dirEntryInfo.Name()) + "/..."
				if err := smartParse(filepath, parseFileFn); err != nil {
					return errors.Wrapf(err, "smartParse (%s)", filepath)
				}
			}
			continue
		}
		filepath := path.Join(directory, dirEntryInfo.Name())
		if err := parseFileFn(filepath); err != nil {
			return errors.Wrapf(err, "parseFileFn (%s)", filepath)
		}
	}
	return nil
}

func hasValidExtension(filename string, validExtensions []string) bool {
	if len(validExtensions) == 0 {
		return true
	}
	for _, validExtension := range validExtensions {
		if strings.HasSuffix(filename, validExtension) {
			return true
		}
	}
	return false
}
