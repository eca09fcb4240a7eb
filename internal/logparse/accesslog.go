package logparse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tinytelemetry/clover/internal/model"
)

// LinePattern matches the fixed access-log line shape:
//
//	<client> - - [<timestamp>] "<method> <path> <protocol>" <status:3 digits> <size:digits>
//
// The pattern is anchored at the start of the line; trailing content after
// the size token is ignored.
var LinePattern = regexp.MustCompile(
	`^(\S+) - - \[([^\]]+)\] "(\S+) (\S+) ([^"]+)" (\d{3}) (\d+)`,
)

// ParseLine parses a single access-log line. The second return value is
// false when the line does not match the fixed shape; callers count such
// lines as malformed and continue.
func ParseLine(line string) (model.AccessRecord, bool) {
	m := LinePattern.FindStringSubmatch(line)
	if m == nil {
		return model.AccessRecord{}, false
	}

	// The pattern constrains both tokens to digit runs, so conversion only
	// fails on overflow.
	status, err := strconv.Atoi(m[6])
	if err != nil {
		return model.AccessRecord{}, false
	}
	size, err := strconv.ParseInt(m[7], 10, 64)
	if err != nil {
		return model.AccessRecord{}, false
	}

	return model.AccessRecord{
		Client:       m[1],
		TimestampRaw: m[2],
		Method:       m[3],
		Path:         m[4],
		Protocol:     m[5],
		Status:       status,
		Size:         size,
	}, true
}

// ParseLines parses an ordered set of raw lines and returns the records in
// input order together with the malformed-line count. Lines that are empty
// after trimming are skipped and never counted as malformed.
func ParseLines(lines []string) ([]model.AccessRecord, int) {
	records := make([]model.AccessRecord, 0, len(lines))
	malformed := 0

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		rec, ok := ParseLine(line)
		if !ok {
			malformed++
			continue
		}
		records = append(records, rec)
	}
	return records, malformed
}
