package match

import (
	"slices"
	"strings"
)

// MinSimilarity is the lowest score a candidate needs to be suggested.
const MinSimilarity = 0.5

type scored struct {
	name  string
	score float64
}

// Suggest returns up to limit candidates that look like name, best first.
// Candidates sharing a case-insensitive prefix with name always qualify.
// Ties keep the candidates' original order.
func Suggest(name string, candidates []string, limit int) []string {
	if limit <= 0 || name == "" {
		return nil
	}

	var ranked []scored

	lower := strings.ToLower(name)

	for _, c := range candidates {
		if c == name {
			continue
		}

		score := Similarity(name, c)
		if score < MinSimilarity && !strings.HasPrefix(strings.ToLower(c), lower) {
			continue
		}

		ranked = append(ranked, scored{name: c, score: score})
	}

	slices.SortStableFunc(ranked, func(x, y scored) int {
		switch {
		case x.score > y.score:
			return -1
		case x.score < y.score:
			return 1
		default:
			return 0
		}
	})

	out := make([]string, 0, min(limit, len(ranked)))
	for _, r := range ranked[:min(limit, len(ranked))] {
		out = append(out, r.name)
	}

	return out
}
