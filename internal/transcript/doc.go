// Package transcript implements the transcription merge engine: format
// detection, heuristic timestamp extraction, cross-file offset accumulation,
// and rendering of the merged result.
//
// Input files pass through decoding (internal/textenc), format detection,
// and one of three parsers (subtitle, plain text, markdown) to produce an
// ordered list of timed segments per file. The Merger then orders files by
// the sequence number taken from their names, shifts each file's segments by
// a running offset so file boundaries concatenate in time, sorts the whole
// set, and renders it in the requested output format.
//
// Plain text and markdown parsing never fail on malformed timing; anything
// the timestamp grammar does not recognize falls back to a sequential
// word-count estimate. Subtitle timecode lines, once present, must parse.
package transcript
