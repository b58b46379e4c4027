package transcript

import "strings"

// parseMarkdown turns every non-heading line into a segment. Markdown
// sources are assumed untimed, so timing is purely sequential at the same
// reading rate the plain text parser falls back to.
func parseMarkdown(content, filename string) []Segment {
	var segments []Segment
	cursor := 0.0

	for index, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		estimate := max(float64(len(strings.Fields(line)))/averageReadSpeed*60, 1)
		end := cursor + estimate
		segments = append(segments, Segment{
			Start:     cursor,
			End:       &end,
			Text:      line,
			FileIndex: index,
			Filename:  filename,
		})
		cursor += estimate
	}
	return segments
}
