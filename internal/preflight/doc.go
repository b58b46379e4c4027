// Package preflight provides readiness checks for the filesystem paths and
// external binaries Splice depends on.
//
// The CLI "splice doctor" command runs the full set and renders the results;
// the split command runs the ffmpeg check alone before starting work.
package preflight
