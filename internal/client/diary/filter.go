package diary

import (
	"slices"

	"github.com/dmitrijs2005/gophdiary/internal/client/models"
)

// Filter returns the notes of snapshot matching sel, in snapshot order.
// The result is never nil.
func Filter(snapshot []models.Note, sel models.Selection) []models.Note {
	out := make([]models.Note, 0, len(snapshot))
	for _, n := range snapshot {
		if matches(n, sel) {
			out = append(out, n)
		}
	}
	return out
}

func matches(n models.Note, sel models.Selection) bool {
	if sel.Year != models.All && n.CreatedAt.Year() != sel.Year {
		return false
	}
	if sel.Month != models.All && int(n.CreatedAt.Month())-1 != sel.Month {
		return false
	}
	return true
}

// Years returns the distinct creation years in snapshot, newest first.
func Years(snapshot []models.Note) []int {
	seen := make(map[int]struct{}, len(snapshot))
	years := make([]int, 0)
	for _, n := range snapshot {
		y := n.CreatedAt.Year()
		if _, ok := seen[y]; ok {
			continue
		}
		seen[y] = struct{}{}
		years = append(years, y)
	}
	slices.Sort(years)
	slices.Reverse(years)
	return years
}
