package linediff

// ViewMode selects how an edit script is projected for display.
type ViewMode int

const (
	// Split renders two parallel columns with blank placeholders
	// opposite insertions and deletions.
	Split ViewMode = iota
	// Unified renders a single column with +/-/space markers.
	Unified
)

// String returns a human-readable representation of the view mode.
func (m ViewMode) String() string {
	switch m {
	case Split:
		return "split"
	case Unified:
		return "unified"
	default:
		return "unknown"
	}
}

// SplitCell is one cell of a split-view column. A zero Number marks a
// blank placeholder (the other side inserted or removed a line here).
type SplitCell struct {
	Number  int
	Content string
	Kind    Kind
}

// Blank reports whether the cell is a placeholder with no source line.
func (c SplitCell) Blank() bool {
	return c.Number == 0
}

// SplitView holds the two aligned columns of a side-by-side rendering.
// Both columns always have length len(Result.Lines); cells at the same
// index correspond to the same script entry, which is what produces the
// gutter alignment where an added line shows blank on the left.
type SplitView struct {
	Left  []SplitCell
	Right []SplitCell
}

// FormatSplit projects the edit script into two aligned columns. It is
// a pure projection: the result is not mutated and no comparison work
// is repeated.
func FormatSplit(r Result) SplitView {
	view := SplitView{
		Left:  make([]SplitCell, len(r.Lines)),
		Right: make([]SplitCell, len(r.Lines)),
	}
	for i, line := range r.Lines {
		if line.Kind != Added {
			view.Left[i] = SplitCell{
				Number:  line.LeftNumber,
				Content: line.LeftContent,
				Kind:    line.Kind,
			}
		} else {
			view.Left[i] = SplitCell{Kind: Added}
		}
		if line.Kind != Removed {
			view.Right[i] = SplitCell{
				Number:  line.RightNumber,
				Content: line.RightContent,
				Kind:    line.Kind,
			}
		} else {
			view.Right[i] = SplitCell{Kind: Removed}
		}
	}
	return view
}

// UnifiedRow is one row of a unified rendering.
type UnifiedRow struct {
	Kind    Kind
	Content string
}

// Marker returns the leading indicator character for the row: '+' for
// Added, '-' for Removed, a space for Unchanged.
func (r UnifiedRow) Marker() byte {
	switch r.Kind {
	case Added:
		return '+'
	case Removed:
		return '-'
	default:
		return ' '
	}
}

// String renders the row as its marker followed by its content.
func (r UnifiedRow) String() string {
	return string(r.Marker()) + r.Content
}

// FormatUnified projects the edit script into unified rows, one per
// script entry. Content comes from the right side for Added rows and
// from the left side otherwise.
func FormatUnified(r Result) []UnifiedRow {
	rows := make([]UnifiedRow, len(r.Lines))
	for i, line := range r.Lines {
		content := line.LeftContent
		if line.Kind == Added {
			content = line.RightContent
		}
		rows[i] = UnifiedRow{Kind: line.Kind, Content: content}
	}
	return rows
}

// WithContext returns only the rows that are changes or within
// contextRows of a change. A non-positive contextRows returns the rows
// unfiltered.
func WithContext(rows []UnifiedRow, contextRows int) []UnifiedRow {
	if contextRows <= 0 {
		return rows
	}

	keep := make([]bool, len(rows))
	for i, row := range rows {
		if row.Kind == Unchanged {
			continue
		}
		start := i - contextRows
		if start < 0 {
			start = 0
		}
		end := i + contextRows + 1
		if end > len(rows) {
			end = len(rows)
		}
		for j := start; j < end; j++ {
			keep[j] = true
		}
	}

	var result []UnifiedRow
	for i, row := range rows {
		if keep[i] {
			result = append(result, row)
		}
	}
	return result
}
