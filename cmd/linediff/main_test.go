package main

import (
	"strings"
	"testing"

	"github.com/dacharyc/linediff"
)

func mustDiff(t *testing.T, left, right string) linediff.Result {
	t.Helper()
	result, err := linediff.Diff(left, right, linediff.DefaultOptions())
	if err != nil {
		t.Fatalf("Diff() error = %v", err)
	}
	return result
}

func TestPrintUnified(t *testing.T) {
	result := mustDiff(t, "a\nb\nc", "a\nx\nc")
	rows := linediff.FormatUnified(result)

	var sb strings.Builder
	printUnified(&sb, rows, 0, false)

	expected := " a\n-b\n+x\n c\n"
	if sb.String() != expected {
		t.Errorf("printUnified() = %q, want %q", sb.String(), expected)
	}
}

func TestPrintUnifiedWithContext(t *testing.T) {
	left := "a\nb\nc\nd\ne\nf\ng"
	right := "a\nB\nc\nd\ne\nf\nG"
	result := mustDiff(t, left, right)
	rows := linediff.FormatUnified(result)

	var sb strings.Builder
	printUnified(&sb, rows, 1, false)
	out := sb.String()

	if !strings.Contains(out, "---\n") {
		t.Errorf("expected gap separator in output:\n%s", out)
	}
	if strings.Contains(out, " d\n") {
		t.Errorf("line outside context window was printed:\n%s", out)
	}
	for _, want := range []string{"-b", "+B", "-g", "+G", " a", " c"} {
		if !strings.Contains(out, want+"\n") {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestPrintUnifiedColor(t *testing.T) {
	result := mustDiff(t, "a", "b")
	rows := linediff.FormatUnified(result)

	var sb strings.Builder
	printUnified(&sb, rows, 0, true)
	out := sb.String()

	if !strings.Contains(out, removedColor) || !strings.Contains(out, addedColor) {
		t.Errorf("expected color escapes in output: %q", out)
	}
	if !strings.Contains(out, colorReset) {
		t.Errorf("expected color reset in output: %q", out)
	}
}

func TestPrintSplit(t *testing.T) {
	result := mustDiff(t, "a\nb", "a\nc")

	var sb strings.Builder
	printSplit(&sb, result, 0, false)
	lines := strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n")

	if len(lines) != len(result.Lines) {
		t.Fatalf("printSplit() produced %d lines, want %d", len(lines), len(result.Lines))
	}
	if !strings.Contains(lines[1], "<") {
		t.Errorf("removed row missing '<' marker: %q", lines[1])
	}
	if !strings.Contains(lines[2], ">") || !strings.Contains(lines[2], "c") {
		t.Errorf("added row missing '>' marker or content: %q", lines[2])
	}
	// The blank placeholder leaves no number on the removed row's
	// right gutter.
	if strings.Count(lines[1], "2") != 1 {
		t.Errorf("removed row should show the left number only: %q", lines[1])
	}
}

func TestFormatNumber(t *testing.T) {
	if got := formatNumber(linediff.SplitCell{Number: 7}, 4); got != "   7" {
		t.Errorf("formatNumber(7, 4) = %q, want %q", got, "   7")
	}
	if got := formatNumber(linediff.SplitCell{}, 3); got != "   " {
		t.Errorf("formatNumber(blank, 3) = %q, want spaces", got)
	}
}

func TestClip(t *testing.T) {
	tests := []struct {
		s     string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello", 3, "hel"},
		{"", 4, ""},
	}
	for _, tt := range tests {
		if got := clip(tt.s, tt.width); got != tt.want {
			t.Errorf("clip(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.want)
		}
	}
}

func TestColorize(t *testing.T) {
	if got := colorize("x", linediff.Added, false); got != "x" {
		t.Errorf("colorize without color = %q, want %q", got, "x")
	}
	if got := colorize("x", linediff.Added, true); got != addedColor+"x"+colorReset {
		t.Errorf("colorize(Added) = %q", got)
	}
	if got := colorize("x", linediff.Unchanged, true); got != "x" {
		t.Errorf("colorize(Unchanged) = %q, want uncolored", got)
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		part, total, want int
	}{
		{0, 0, 0},
		{1, 2, 50},
		{3, 3, 100},
		{1, 3, 33},
	}
	for _, tt := range tests {
		if got := percent(tt.part, tt.total); got != tt.want {
			t.Errorf("percent(%d, %d) = %d, want %d", tt.part, tt.total, got, tt.want)
		}
	}
}
