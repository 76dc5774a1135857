package utils

import (
	"regexp"
	"strings"
)

// Characters that are invalid in filenames on at least one supported platform.
var invalidFilenameChars = []string{"\\", "/", ":", "*", "?", "\"", "<", ">", "|"}

var ordinalPrefix = regexp.MustCompile(`^\d+\s*`)

// SafeFilename replaces characters that are invalid in filenames with underscores.
// Nothing else is changed, so the mapping is stable across runs.
func SafeFilename(name string) string {
	result := name
	for _, char := range invalidFilenameChars {
		result = strings.ReplaceAll(result, char, "_")
	}
	return result
}

// StripOrdinalPrefix removes a leading "01 ", "2" style ordering prefix from a
// directory name, leaving the human-readable volume title.
func StripOrdinalPrefix(name string) string {
	return ordinalPrefix.ReplaceAllString(name, "")
}
