package detect

// span is an inclusive sample interval [start, end].
type span struct {
	start, end int
}

func (s span) length() int { return s.end - s.start + 1 }

// runs returns the maximal intervals over which cond is true.
func runs(cond []bool) []span {
	var out []span

	start := -1
	for i, c := range cond {
		switch {
		case c && start < 0:
			start = i
		case !c && start >= 0:
			out = append(out, span{start, i - 1})
			start = -1
		}
	}
	if start >= 0 {
		out = append(out, span{start, len(cond) - 1})
	}

	return out
}

// maskRuns returns the maximal intervals over which mask equals kind.
func maskRuns(mask []EventKind, kind EventKind) []span {
	cond := make([]bool, len(mask))
	for i, k := range mask {
		cond[i] = k == kind
	}
	return runs(cond)
}

func fill(mask []EventKind, s span, kind EventKind) {
	for i := s.start; i <= s.end; i++ {
		mask[i] = kind
	}
}
