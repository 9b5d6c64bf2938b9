package collision

import "github.com/milk9111/teddyburger/common"

// IsCollisionFree reports whether candidate overlaps none of existing.
func IsCollisionFree(candidate common.Rect, existing []common.Rect) bool {
	for _, r := range existing {
		if candidate.Intersects(r) {
			return false
		}
	}
	return true
}

// OverlapArea sums the overlap between candidate and every rect in existing.
func OverlapArea(candidate common.Rect, existing []common.Rect) float64 {
	total := 0.0
	for _, r := range existing {
		total += candidate.Intersection(r).Area()
	}
	return total
}

// BestPlacement returns the index of the candidate with the least total
// overlap against existing; ties keep the earliest. It returns -1 for an
// empty candidate list.
func BestPlacement(candidates []common.Rect, existing []common.Rect) int {
	best := -1
	bestArea := 0.0
	for i, c := range candidates {
		area := OverlapArea(c, existing)
		if best < 0 || area < bestArea {
			best = i
			bestArea = area
		}
	}
	return best
}
