package cv

// Selection rules for extraction candidates. Candidates are always passed in
// document order.

// firstByPosition picks the earliest candidate.
func firstByPosition(candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	return candidates[0]
}

// shortest picks the shortest candidate, the earliest one on ties. A short
// all-letters line near the top is usually the "Firstname Lastname" header;
// longer matches tend to be section titles.
//
// TODO: replace with a scored heuristic if layouts without a name header
// become common.
func shortest(candidates []string) string {
	best := ""
	for i, c := range candidates {
		if i == 0 || len(c) < len(best) {
			best = c
		}
	}
	return best
}
