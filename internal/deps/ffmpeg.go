// Package deps locates the external binaries splice shells out to.
package deps

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Status reports where a binary resolution landed. Command holds the
// resolved path when Available, otherwise the name that was searched for.
type Status struct {
	Name        string
	Command     string
	Description string
	Available   bool
	Detail      string
}

// ResolveFFmpeg locates the ffmpeg binary the split pipeline will execute.
//
// Lookup order: the configured override path, "ffmpeg" on PATH, then the
// common install locations for the current platform. The resolved status
// carries the absolute path when one was found.
func ResolveFFmpeg(override string) Status {
	result := Status{
		Name:        "FFmpeg",
		Description: "Used for probing and splitting audio files",
	}

	if configured := strings.TrimSpace(override); configured != "" {
		if resolved, ok := usableBinary(configured); ok {
			result.Command = resolved
			result.Available = true
			return result
		}
		result.Command = configured
		result.Detail = fmt.Sprintf("configured ffmpeg %q not found or not executable", configured)
		return result
	}

	name := executableName("ffmpeg")
	if resolved, err := exec.LookPath(name); err == nil {
		result.Command = resolved
		result.Available = true
		return result
	}

	for _, candidate := range commonFFmpegPaths() {
		if resolved, ok := usableBinary(candidate); ok {
			result.Command = resolved
			result.Available = true
			return result
		}
	}

	result.Command = name
	result.Available = false
	result.Detail = fmt.Sprintf("binary %q not found", name)
	return result
}

func commonFFmpegPaths() []string {
	name := executableName("ffmpeg")
	switch runtime.GOOS {
	case "windows":
		return []string{
			filepath.Join(`C:\ffmpeg\bin`, name),
			filepath.Join(`C:\Program Files\ffmpeg\bin`, name),
		}
	case "darwin":
		return []string{
			filepath.Join("/opt/homebrew/bin", name),
			filepath.Join("/usr/local/bin", name),
			filepath.Join("/usr/bin", name),
		}
	default:
		return []string{
			filepath.Join("/usr/bin", name),
			filepath.Join("/usr/local/bin", name),
			filepath.Join("/snap/bin", name),
		}
	}
}

func usableBinary(path string) (string, bool) {
	if filepath.Base(path) == path {
		if resolved, err := exec.LookPath(path); err == nil {
			return resolved, true
		}
		return "", false
	}
	info, err := os.Stat(path)
	if err != nil || !isExecutable(info) {
		return "", false
	}
	return path, true
}

func isExecutable(info os.FileInfo) bool {
	if info == nil {
		return false
	}
	if info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}

func executableName(base string) string {
	if runtime.GOOS == "windows" {
		return base + ".exe"
	}
	return base
}
