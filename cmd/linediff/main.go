// Command linediff compares two text files line by line.
//
// Usage:
//
//	linediff file1 file2
//	linediff -y file1 file2
//	git show HEAD:file.go | linediff --stdin file.go
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dacharyc/linediff"
	flag "github.com/spf13/pflag"
)

// Version is set at build time via -ldflags
var Version = "dev"

// Default colors for diff output (reset + color + bold)
const (
	removedColor = "\033[0;31;1m" // bold red
	addedColor   = "\033[0;32;1m" // bold green
	colorReset   = "\033[0m"
)

// Exit codes
const (
	exitIdentical = 0 // files are identical
	exitDiffer    = 1 // files differ
	exitError     = 2 // error occurred
)

// cliFlags holds all parsed command-line flags
type cliFlags struct {
	ignoreCase       *bool
	ignoreWhitespace *bool
	sideBySide       *bool
	context          *int
	width            *int
	statistics       *bool
	maxCells         *int
	noColor          *bool
	stdinMode        *bool
	help             *bool
	version          *bool
}

// defineFlags sets up all command-line flags
func defineFlags() cliFlags {
	f := cliFlags{
		ignoreCase:       flag.BoolP("ignore-case", "i", false, "ignore case when comparing lines"),
		ignoreWhitespace: flag.BoolP("ignore-whitespace", "w", false, "ignore whitespace differences when comparing lines"),
		sideBySide:       flag.BoolP("side-by-side", "y", false, "output in two columns instead of unified"),
		context:          flag.IntP("context", "C", 0, "show only N lines of context around changes (unified output)"),
		width:            flag.IntP("width", "W", 0, "total output width for side-by-side (0 for auto)"),
		statistics:       flag.BoolP("statistics", "s", false, "print statistics"),
		maxCells:         flag.Int("max-cells", 0, "ceiling on left-lines*right-lines (0 for default, negative for unlimited)"),
		noColor:          flag.Bool("no-color", false, "disable colored output"),
		stdinMode:        flag.Bool("stdin", false, "read first input from stdin, second from argument"),
		help:             flag.BoolP("help", "h", false, "show help"),
		version:          flag.BoolP("version", "v", false, "show version"),
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] file1 file2\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "       %s [options] --stdin file2\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nLine-level diff with side-by-side and unified output.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s old.txt new.txt\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -y -W 160 old.go new.go\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  git show HEAD:file.go | %s --stdin file.go\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nExit codes:\n")
		fmt.Fprintf(os.Stderr, "  0  files are identical\n")
		fmt.Fprintf(os.Stderr, "  1  files differ\n")
		fmt.Fprintf(os.Stderr, "  2  error occurred\n")
	}

	return f
}

// readInputTexts reads input from stdin or files
func readInputTexts(stdinMode bool) (left, right string) {
	var err error
	if stdinMode {
		if flag.NArg() < 1 {
			fmt.Fprintln(os.Stderr, "Error: --stdin mode requires one file argument")
			os.Exit(exitError)
		}
		left, err = readStdin()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(exitError)
		}
		right, err = readFile(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", flag.Arg(0), err)
			os.Exit(exitError)
		}
	} else {
		if flag.NArg() < 2 {
			fmt.Fprintln(os.Stderr, "Error: requires two file arguments")
			flag.Usage()
			os.Exit(exitError)
		}
		left, err = readFile(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", flag.Arg(0), err)
			os.Exit(exitError)
		}
		right, err = readFile(flag.Arg(1))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", flag.Arg(1), err)
			os.Exit(exitError)
		}
	}
	return
}

func main() {
	f := defineFlags()
	flag.Parse()

	if *f.version {
		fmt.Printf("linediff version %s\n", Version)
		os.Exit(exitIdentical)
	}

	if *f.help {
		flag.Usage()
		os.Exit(exitIdentical)
	}

	left, right := readInputTexts(*f.stdinMode)

	opts := linediff.Options{
		IgnoreCase:       *f.ignoreCase,
		IgnoreWhitespace: *f.ignoreWhitespace,
		MaxCells:         *f.maxCells,
	}

	result, err := linediff.Diff(left, right, opts)
	if err != nil {
		if errors.Is(err, linediff.ErrInputTooLarge) {
			fmt.Fprintln(os.Stderr, "Error: input too large; raise --max-cells or pass a negative value to disable the limit")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(exitError)
	}

	useColor := !*f.noColor && os.Getenv("NO_COLOR") == "" && isTerminal(os.Stdout)

	if *f.sideBySide {
		printSplit(os.Stdout, result, *f.width, useColor)
	} else {
		printUnified(os.Stdout, linediff.FormatUnified(result), *f.context, useColor)
	}

	if *f.statistics {
		printStatistics(result)
	}

	if linediff.HasChanges(result) {
		os.Exit(exitDiffer)
	}
	os.Exit(exitIdentical)
}

// printUnified prints unified rows, optionally limited to context
// around changes with "---" separators across the gaps.
func printUnified(w io.Writer, rows []linediff.UnifiedRow, contextRows int, useColor bool) {
	toPrint := make([]bool, len(rows))
	for i, row := range rows {
		if contextRows <= 0 {
			toPrint[i] = true
			continue
		}
		if row.Kind != linediff.Unchanged {
			start := max(0, i-contextRows)
			end := min(len(rows), i+contextRows+1)
			for j := start; j < end; j++ {
				toPrint[j] = true
			}
		}
	}

	lastPrinted := -1
	for i, row := range rows {
		if !toPrint[i] {
			continue
		}
		if lastPrinted >= 0 && i > lastPrinted+1 {
			fmt.Fprintln(w, "---")
		}
		fmt.Fprintln(w, colorize(row.String(), row.Kind, useColor))
		lastPrinted = i
	}
}

// printSplit prints the two aligned columns with a change marker in
// the gutter: '<' for removed, '>' for added.
func printSplit(w io.Writer, result linediff.Result, width int, useColor bool) {
	view := linediff.FormatSplit(result)

	numWidth := 3
	for d := len(result.Lines); d >= 1000; d /= 10 {
		numWidth++
	}

	contentWidth := 0
	if width > 0 {
		// Two number gutters, two single-space pads, " X " marker.
		contentWidth = (width - 2*numWidth - 5) / 2
		if contentWidth < 1 {
			contentWidth = 1
		}
	} else {
		for _, cell := range view.Left {
			if len(cell.Content) > contentWidth {
				contentWidth = len(cell.Content)
			}
		}
		if contentWidth > 80 {
			contentWidth = 80
		}
	}

	for i := range view.Left {
		lc := view.Left[i]
		rc := view.Right[i]

		marker := " "
		switch result.Lines[i].Kind {
		case linediff.Added:
			marker = ">"
		case linediff.Removed:
			marker = "<"
		}

		line := fmt.Sprintf("%s %-*s %s %s %s",
			formatNumber(lc, numWidth), contentWidth, clip(lc.Content, contentWidth),
			marker,
			formatNumber(rc, numWidth), rc.Content)
		fmt.Fprintln(w, colorize(strings.TrimRight(line, " "), result.Lines[i].Kind, useColor))
	}
}

// formatNumber renders a cell's line number right-aligned, or blanks
// for placeholder cells.
func formatNumber(c linediff.SplitCell, width int) string {
	if c.Blank() {
		return strings.Repeat(" ", width)
	}
	return fmt.Sprintf("%*d", width, c.Number)
}

// clip truncates s to at most width bytes for column alignment.
func clip(s string, width int) string {
	if len(s) > width {
		return s[:width]
	}
	return s
}

// colorize wraps a rendered row in the color for its kind.
func colorize(s string, kind linediff.Kind, useColor bool) string {
	if !useColor {
		return s
	}
	switch kind {
	case linediff.Added:
		return addedColor + s + colorReset
	case linediff.Removed:
		return removedColor + s + colorReset
	default:
		return s
	}
}

// printStatistics prints diff statistics to stderr
func printStatistics(result linediff.Result) {
	st := linediff.ComputeStats(result)
	leftTotal := st.Unchanged + st.Removed
	rightTotal := st.Unchanged + st.Added

	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintf(os.Stderr, "left:  %d lines  %d %d%% unchanged  %d %d%% removed\n",
		leftTotal,
		st.Unchanged, percent(st.Unchanged, leftTotal),
		st.Removed, percent(st.Removed, leftTotal))
	fmt.Fprintf(os.Stderr, "right: %d lines  %d %d%% unchanged  %d %d%% added\n",
		rightTotal,
		st.Unchanged, percent(st.Unchanged, rightTotal),
		st.Added, percent(st.Added, rightTotal))
}

// percent calculates percentage, handling division by zero
func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return (part * 100) / total
}

// readFile reads an entire file into a string
func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// readStdin reads all of stdin into a string
func readStdin() (string, error) {
	reader := bufio.NewReader(os.Stdin)
	var sb strings.Builder
	for {
		line, err := reader.ReadString('\n')
		sb.WriteString(line)
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

// isTerminal returns true if the file is a terminal
func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
