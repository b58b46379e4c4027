package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
)

const (
	statusLabelWidth = 20
	statusIndent     = "  "
)

func renderCheckLine(label string, passed bool, detail string, colorize bool) string {
	statusText := "FAIL"
	color := ansiRed
	if passed {
		statusText = "OK"
		color = ansiGreen
	}
	if detail != "" {
		statusText = fmt.Sprintf("[%s] %s", statusText, detail)
	} else {
		statusText = fmt.Sprintf("[%s]", statusText)
	}
	base := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, label+":", statusText)
	if colorize {
		return color + base + ansiReset
	}
	return base
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// formatClock renders a duration in seconds as M:SS or H:MM:SS.
func formatClock(seconds float64) string {
	total := int(math.Round(seconds))
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}
