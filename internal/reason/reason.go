// Package reason picks a short, human-readable failure reason out of noisy
// compiler and runtime output.
package reason

import (
	"regexp"
	"strings"
)

// Unknown is returned when no text is available at all.
const Unknown = "Unknown"

// Separator joins fallback lines when no diagnostic line is found.
const Separator = " | "

// maxFallbackLines is how many leading lines form the fallback reason.
const maxFallbackLines = 3

// Compiled once at package init.
var diagnosticLine = regexp.MustCompile(`(?i)error|compilation aborted|undefined|invalid|fatal|segmentation|core dumped|not found|missing`)

// Extract returns the first diagnostic line found in stderr, stdout and
// output (searched in that order). Without one it returns up to three leading
// non-blank lines joined with Separator, and Unknown when all three are blank.
func Extract(stdout, stderr, output string) string {
	lines := Lines(stderr, stdout, output)
	if len(lines) == 0 {
		return Unknown
	}

	for _, line := range lines {
		if IsDiagnostic(line) {
			return line
		}
	}

	if len(lines) > maxFallbackLines {
		lines = lines[:maxFallbackLines]
	}
	return strings.Join(lines, Separator)
}

// Lines splits each text into physical lines, trims them and drops blanks,
// keeping the order of the arguments.
func Lines(texts ...string) []string {
	var lines []string
	for _, text := range texts {
		if text == "" {
			continue
		}
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			lines = append(lines, line)
		}
	}
	return lines
}

// IsDiagnostic reports whether line contains one of the diagnostic keywords.
func IsDiagnostic(line string) bool {
	return diagnosticLine.MatchString(line)
}
