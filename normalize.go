package linediff

import "strings"

// Normalize returns the comparison key for a line under the given
// options. It affects matching only; output always carries the
// original line.
//
// With IgnoreWhitespace, every maximal run of whitespace becomes a
// single space and leading/trailing whitespace is trimmed. With
// IgnoreCase, the line is folded to lower case. The two transforms
// commute, so applying both in either order yields the same key.
func Normalize(line string, opts Options) string {
	if opts.IgnoreWhitespace {
		line = strings.Join(strings.Fields(line), " ")
	}
	if opts.IgnoreCase {
		line = strings.ToLower(line)
	}
	return line
}

// normalizeAll precomputes comparison keys for a whole sequence so the
// DP inner loop compares plain strings instead of re-normalizing
// O(m*n) times.
func normalizeAll(lines []string, opts Options) []string {
	if !opts.IgnoreWhitespace && !opts.IgnoreCase {
		return lines
	}
	keys := make([]string, len(lines))
	for i, line := range lines {
		keys[i] = Normalize(line, opts)
	}
	return keys
}
