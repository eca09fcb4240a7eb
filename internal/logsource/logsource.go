package logsource

import (
	"bufio"
	"io"
)

// Source is a unified interface for all log input sources (file, stdin).
// A source yields the complete, ordered set of raw lines for one run; the
// analysis pipeline never touches storage itself.
type Source interface {
	Lines() ([]string, error) // full ordered line set
	Name() string             // "file", "stdin"
}

// maxLineSize bounds a single log line at 1MB.
const maxLineSize = 1024 * 1024

func readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
