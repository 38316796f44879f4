package linediff

import "context"

// lcsTable holds longest-common-subsequence lengths for every prefix
// pair of the two sequences. Conceptually an (m+1) x (n+1) grid; stored
// as a flat buffer indexed i*(n+1)+j for cache locality. Row 0 and
// column 0 stay zero (the LCS against an empty prefix).
type lcsTable struct {
	cells []int
	m, n  int
}

func (t *lcsTable) at(i, j int) int {
	return t.cells[i*(t.n+1)+j]
}

func (t *lcsTable) set(i, j, v int) {
	t.cells[i*(t.n+1)+j] = v
}

// buildTable fills the DP table over the pre-normalized comparison
// keys. table[i][j] is the LCS length of leftKeys[:i] and
// rightKeys[:j]. The context is checked once per row so a cancelled
// computation stops within O(n) work.
func buildTable(ctx context.Context, leftKeys, rightKeys []string) (*lcsTable, error) {
	m, n := len(leftKeys), len(rightKeys)
	t := &lcsTable{
		cells: make([]int, (m+1)*(n+1)),
		m:     m,
		n:     n,
	}

	for i := 1; i <= m; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for j := 1; j <= n; j++ {
			if leftKeys[i-1] == rightKeys[j-1] {
				t.set(i, j, t.at(i-1, j-1)+1)
			} else if above, left := t.at(i-1, j), t.at(i, j-1); above >= left {
				t.set(i, j, above)
			} else {
				t.set(i, j, left)
			}
		}
	}
	return t, nil
}
