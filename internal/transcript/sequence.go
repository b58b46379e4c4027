package transcript

import (
	"regexp"
	"strconv"
)

// sequencePatterns are tried in order; the first parsed capture wins. The
// generic digit pattern comes first, so a filename with several numeric runs
// (a year, say) resolves to the first run encountered. That ambiguity is
// inherited source behaviour and stays until a product decision says
// otherwise.
var sequencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)`),
	regexp.MustCompile(`chunk[_-]?(\d+)`),
	regexp.MustCompile(`part[_-]?(\d+)`),
	regexp.MustCompile(`segment[_-]?(\d+)`),
}

// sequenceNumber extracts the multi-part ordering key from a filename.
// The second return is false when the name carries no parseable digits.
func sequenceNumber(filename string) (int, bool) {
	for _, pattern := range sequencePatterns {
		match := pattern.FindStringSubmatch(filename)
		if match == nil {
			continue
		}
		if number, err := strconv.Atoi(match[1]); err == nil {
			return number, true
		}
	}
	return 0, false
}
