package transcript

import (
	"path/filepath"
	"regexp"
	"strings"
)

// subtitleSignature matches an index line followed by an arrow timecode
// line, the minimal shape of a subtitle cue. Both LF and CRLF breaks and
// both comma and dot millisecond separators are accepted.
var subtitleSignature = regexp.MustCompile(`\d+\s*\r?\n\d{2}:\d{2}:\d{2}[,.]\d{3} --> \d{2}:\d{2}:\d{2}[,.]\d{3}`)

// detectFormat classifies a decoded file. The extension wins where it is
// unambiguous; .txt files and files without a recognized extension are
// sniffed, since transcripts frequently arrive as subtitle content saved
// under a .txt name.
func detectFormat(path, content string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".srt":
		return FormatSubtitle
	case ".md":
		return FormatMarkdown
	case ".txt":
		if looksLikeSubtitle(content) {
			return FormatSubtitle
		}
		return FormatText
	}

	if looksLikeSubtitle(content) {
		return FormatSubtitle
	}
	if strings.Contains(content, "# ") || strings.Contains(content, "## ") {
		return FormatMarkdown
	}
	return FormatText
}

func looksLikeSubtitle(content string) bool {
	return subtitleSignature.MatchString(content)
}
