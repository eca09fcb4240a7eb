package logsource

import (
	"fmt"
	"os"
)

// StdinSource reads piped input on standard input.
type StdinSource struct{}

// NewStdinSource creates a source reading from stdin.
func NewStdinSource() *StdinSource {
	return &StdinSource{}
}

// Name identifies the source kind.
func (s *StdinSource) Name() string {
	return "stdin"
}

// Available reports whether stdin is a pipe or redirect rather than a
// terminal.
func (s *StdinSource) Available() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice == 0
}

// Lines reads stdin to EOF.
func (s *StdinSource) Lines() ([]string, error) {
	lines, err := readLines(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("logsource: read stdin: %w", err)
	}
	return lines, nil
}
