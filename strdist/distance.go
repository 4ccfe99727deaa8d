package strdist

// Distance computes the plain Levenshtein distance between s and t without
// constructing a StringEdit, for callers that only need a scalar estimate
// (e.g. a quick admissible cost hint before committing to a full bounded
// edit).
func Distance(s, t string) int64 {
	sr, tr := []rune(s), []rune(t)
	prev := make([]int64, len(tr)+1)
	for j := range prev {
		prev[j] = int64(j)
	}

	for i := 1; i <= len(sr); i++ {
		cur := make([]int64, len(tr)+1)
		cur[0] = int64(i)
		for j := 1; j <= len(tr); j++ {
			var subCost int64
			if sr[i-1] != tr[j-1] {
				subCost = 1
			}
			cur[j] = min3(prev[j]+1, cur[j-1]+1, prev[j-1]+subCost)
		}
		prev = cur
	}

	return prev[len(tr)]
}
