package logsource

import (
	"fmt"
	"os"
)

// FileSource reads one bounded log file to completion.
type FileSource struct {
	path string
}

// NewFileSource creates a source for the given file path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name identifies the source kind.
func (s *FileSource) Name() string {
	return "file"
}

// Path returns the underlying file path.
func (s *FileSource) Path() string {
	return s.path
}

// Lines reads every line of the file. A missing or unreadable file is the
// fatal SourceUnavailable condition; the handle is released on all paths.
func (s *FileSource) Lines() ([]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("logsource: open %s: %w", s.path, err)
	}
	defer f.Close()

	lines, err := readLines(f)
	if err != nil {
		return nil, fmt.Errorf("logsource: read %s: %w", s.path, err)
	}
	return lines, nil
}
