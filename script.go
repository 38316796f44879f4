package linediff

// reconstruct walks the filled DP table backward from (m, n) and emits
// the edit script. Lines are appended in reverse order and flipped at
// the end; an iterative walk keeps the cost of huge inputs off the
// stack (recursion depth would be m+n).
//
// Tie-break: when the scores above and to the left are equal, the walk
// takes the Added branch (the >= comparison below). This determines
// whether ambiguous alignments surface as insert-then-delete or
// delete-then-insert, and downstream output depends on it. Do not
// change it without changing every golden output with it.
func reconstruct(table *lcsTable, left, right, leftKeys, rightKeys []string) []Line {
	i, j := table.m, table.n
	lines := make([]Line, 0, i+j)

	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && leftKeys[i-1] == rightKeys[j-1]:
			lines = append(lines, Line{
				Kind:         Unchanged,
				LeftNumber:   i,
				RightNumber:  j,
				LeftContent:  left[i-1],
				RightContent: right[j-1],
			})
			i--
			j--

		case j > 0 && (i == 0 || table.at(i, j-1) >= table.at(i-1, j)):
			lines = append(lines, Line{
				Kind:         Added,
				RightNumber:  j,
				RightContent: right[j-1],
			})
			j--

		default:
			lines = append(lines, Line{
				Kind:        Removed,
				LeftNumber:  i,
				LeftContent: left[i-1],
			})
			i--
		}
	}

	for a, b := 0, len(lines)-1; a < b; a, b = a+1, b-1 {
		lines[a], lines[b] = lines[b], lines[a]
	}
	return lines
}
