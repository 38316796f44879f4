// Package linediff provides line-oriented text diffing with a
// configurable comparison policy.
//
// Given two multi-line texts, it computes a minimal edit script using a
// longest-common-subsequence dynamic program, then exposes the script
// for rendering either side-by-side (two aligned columns) or unified
// (single column with +/- markers).
//
// Comparison can ignore case and/or whitespace differences without
// affecting the content stored in the result: normalization is applied
// only when deciding whether two lines match, and the original bytes
// from each side are preserved independently.
//
// There is no Modified kind. A changed line always appears as a Removed
// line immediately followed by an Added line. Downstream consumers
// depend on this shape; do not collapse the pair.
package linediff

import (
	"context"
	"errors"
	"strings"
)

// Kind represents a diff operation type.
type Kind int

const (
	// Unchanged indicates the line is present on both sides.
	Unchanged Kind = iota
	// Added indicates the line is present only on the right side.
	Added
	// Removed indicates the line is present only on the left side.
	Removed
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case Unchanged:
		return "Unchanged"
	case Added:
		return "Added"
	case Removed:
		return "Removed"
	default:
		return "Unknown"
	}
}

// Line is one entry of the edit script.
//
// LeftNumber and RightNumber are 1-based line numbers in their source
// documents; 0 means the side is not involved (an Added line has no
// LeftNumber, a Removed line has no RightNumber). For Unchanged lines
// both numbers and both contents are set, and the contents are equal
// under the comparison policy but not necessarily byte-identical.
type Line struct {
	Kind         Kind
	LeftNumber   int
	RightNumber  int
	LeftContent  string
	RightContent string
}

// Result is the full ordered edit script plus aggregate counts.
//
// The counts always satisfy
// AddedCount + RemovedCount + UnchangedCount == len(Lines).
type Result struct {
	Lines          []Line
	AddedCount     int
	RemovedCount   int
	UnchangedCount int
}

// DefaultMaxCells is the default ceiling on the size of the DP table
// (left line count times right line count). Inputs above the ceiling
// are rejected with ErrInputTooLarge rather than silently consuming
// O(m*n) memory.
const DefaultMaxCells = 10_000_000

// ErrInputTooLarge is returned when the product of the two line counts
// exceeds the configured ceiling. No partial result is produced.
var ErrInputTooLarge = errors.New("linediff: input too large")

// Options configures the comparison policy.
type Options struct {
	// IgnoreWhitespace, when true, collapses every run of whitespace
	// to a single space and trims both ends before comparison.
	IgnoreWhitespace bool

	// IgnoreCase, when true, performs case-insensitive comparison.
	// The original case is preserved in the output.
	IgnoreCase bool

	// MaxCells limits the size of the DP table (left lines * right
	// lines). Zero means DefaultMaxCells; a negative value disables
	// the limit.
	MaxCells int
}

// DefaultOptions returns Options with default settings: exact
// comparison with the default size ceiling.
func DefaultOptions() Options {
	return Options{}
}

// maxCells resolves the configured ceiling, or -1 for unlimited.
func (o Options) maxCells() int {
	if o.MaxCells == 0 {
		return DefaultMaxCells
	}
	if o.MaxCells < 0 {
		return -1
	}
	return o.MaxCells
}

// Diff computes the edit script between two texts. The texts are split
// on line breaks internally; a trailing newline terminates the last
// line rather than starting an empty one.
func Diff(left, right string, opts Options) (Result, error) {
	return DiffContext(context.Background(), left, right, opts)
}

// DiffContext is Diff with cooperative cancellation. The context is
// checked once per DP table row, bounding the wasted work after
// cancellation to O(n).
func DiffContext(ctx context.Context, left, right string, opts Options) (Result, error) {
	return diffLines(ctx, splitLines(left), splitLines(right), opts)
}

// DiffLines computes the edit script between two pre-split line
// sequences, for callers that already hold lines.
func DiffLines(left, right []string, opts Options) (Result, error) {
	return diffLines(context.Background(), left, right, opts)
}

func diffLines(ctx context.Context, left, right []string, opts Options) (Result, error) {
	m, n := len(left), len(right)
	if max := opts.maxCells(); max >= 0 && m > 0 && n > 0 && m*n > max {
		return Result{}, ErrInputTooLarge
	}

	leftKeys := normalizeAll(left, opts)
	rightKeys := normalizeAll(right, opts)

	table, err := buildTable(ctx, leftKeys, rightKeys)
	if err != nil {
		return Result{}, err
	}

	lines := reconstruct(table, left, right, leftKeys, rightKeys)
	result := Result{Lines: lines}
	st := ComputeStats(result)
	result.AddedCount = st.Added
	result.RemovedCount = st.Removed
	result.UnchangedCount = st.Unchanged
	return result, nil
}

// HasChanges returns true if the result contains any non-Unchanged
// lines.
func HasChanges(r Result) bool {
	return r.AddedCount > 0 || r.RemovedCount > 0
}

// splitLines splits text into lines. A final newline is treated as a
// line terminator, so "a\n" is one line, not two. A carriage return
// before a newline is stripped so CRLF input compares cleanly against
// LF input.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
