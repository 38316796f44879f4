package linediff

// Stats holds aggregate counts for an edit script.
type Stats struct {
	Added     int // lines present only on the right
	Removed   int // lines present only on the left
	Unchanged int // lines present on both sides
}

// ComputeStats tallies the script lines by kind in a single pass.
func ComputeStats(r Result) Stats {
	var st Stats
	for _, line := range r.Lines {
		switch line.Kind {
		case Added:
			st.Added++
		case Removed:
			st.Removed++
		case Unchanged:
			st.Unchanged++
		}
	}
	return st
}
