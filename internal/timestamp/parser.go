package timestamp

import (
	"strings"
	"time"
)

// Layout is the date-time portion of the bracketed access-log timestamp
// token, e.g. "10/Oct/2023:13:55:36" from "10/Oct/2023:13:55:36 +0000".
const Layout = "02/Jan/2006:15:04:05"

// Parser parses bracketed access-log timestamp tokens.
type Parser struct{}

// NewParser creates a timestamp parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse interprets the portion of raw before the first whitespace using
// Layout, dropping the timezone offset token. The second return value is
// false when the token does not parse; callers exclude such records from
// the time range but keep them in every other statistic.
func (p *Parser) Parse(raw string) (time.Time, bool) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return time.Time{}, false
	}
	t, err := time.Parse(Layout, fields[0])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
