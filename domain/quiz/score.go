package quiz

import "layerit/domain/skin"

// Score returns the most frequent skin type in answers. Ties go to the type
// whose first answer came earliest; an empty list scores as normal.
func Score(answers []skin.Type) skin.Type {
	counts := make(map[skin.Type]int, len(answers))
	order := make([]skin.Type, 0, len(answers))
	for _, a := range answers {
		if _, seen := counts[a]; !seen {
			order = append(order, a)
		}
		counts[a]++
	}

	best, bestCount := skin.Normal, 0
	for _, t := range order {
		if counts[t] > bestCount {
			best, bestCount = t, counts[t]
		}
	}
	return best
}

// Tally counts answers per skin type.
func Tally(answers []skin.Type) map[skin.Type]int {
	counts := make(map[skin.Type]int, len(answers))
	for _, a := range answers {
		counts[a]++
	}
	return counts
}
