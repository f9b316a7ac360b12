package playground

import "rregexd/pkg/types"

// Split cuts text into alternating non-match and match segments using the
// byte offsets in matches. The result always has 2*len(matches)+1 entries.
// Offsets are clamped to the text and never move backwards.
func Split(text string, matches []types.Match) []string {
	out := make([]string, 0, 2*len(matches)+1)
	offset := 0
	for _, m := range matches {
		start := clamp(m.Start, offset, len(text))
		end := clamp(m.End, start, len(text))
		out = append(out, text[offset:start], text[start:end])
		offset = end
	}
	return append(out, text[offset:])
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
