package signature

import "sort"

// sameCutoff is the fixed band collapsed to "same": averages differing by
// no more than 2 on the 0–255 scale. Independent of tuning parameters.
const sameCutoff = 2

// neighborOffsets is the fixed enumeration order of a lattice point's up to
// 8 grid neighbors. Output ordering depends on it; do not reorder.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// quantize maps the lattice averages to the final signature vector in three
// passes: collect raw neighbor diffs per point, derive one adaptive
// threshold per sign from the diffs of all points, then relabel every diff
// on the -2..2 scale. The median split makes "much darker"/"darker" (and
// the lighter pair) equally populated by construction, which keeps score
// distributions consistent across images.
//
// Lattice points are enumerated row-major (gy outer, gx inner); points on
// the lattice edge contribute fewer than 8 values — missing neighbors are
// omitted, not zero-padded, and likewise excluded from the medians.
func quantize(avgs [][]uint8) []int8 {
	n := len(avgs)

	raw := make([][]int16, 0, n*n)
	total := 0
	for gy := 0; gy < n; gy++ {
		for gx := 0; gx < n; gx++ {
			self := int16(avgs[gy][gx])
			diffs := make([]int16, 0, 8)
			for _, off := range neighborOffsets {
				nx, ny := gx+off[0], gy+off[1]
				if nx < 0 || ny < 0 || nx >= n || ny >= n {
					continue
				}
				diffs = append(diffs, neighborDiff(self, int16(avgs[ny][nx])))
			}
			raw = append(raw, diffs)
			total += len(diffs)
		}
	}

	darkCut, lightCut := thresholds(raw)

	out := make([]int8, 0, total)
	for _, diffs := range raw {
		for _, d := range diffs {
			switch {
			case d > 0:
				out = append(out, collapse(d, lightCut))
			case d < 0:
				out = append(out, collapse(d, darkCut))
			default:
				out = append(out, 0)
			}
		}
	}
	return out
}

// neighborDiff is the signed average difference, with the fixed "same"
// band collapsed to zero.
func neighborDiff(self, other int16) int16 {
	d := self - other
	if d >= -sameCutoff && d <= sameCutoff {
		return 0
	}
	return d
}

// thresholds partitions all nonzero diffs into darker (negative) and
// lighter (positive) groups and returns the median of each. Zero diffs are
// excluded: "same" dominates flat regions and would skew the equalization.
func thresholds(raw [][]int16) (dark, light int16) {
	var darker, lighter []int16
	for _, diffs := range raw {
		for _, d := range diffs {
			switch {
			case d < 0:
				darker = append(darker, d)
			case d > 0:
				lighter = append(lighter, d)
			}
		}
	}
	return median(darker), median(lighter)
}

// collapse relabels a nonzero diff against its group's median magnitude:
// at or beyond the median is ±2, inside it is ±1. Sign is preserved.
func collapse(v, cut int16) int8 {
	s := int8(1)
	if v < 0 {
		s = -1
	}
	if abs16(v) >= abs16(cut) {
		return 2 * s
	}
	return s
}

// median sorts in place. Even-length groups average the two middle
// elements with truncating division; an empty group has median 0.
func median(v []int16) int16 {
	if len(v) == 0 {
		return 0
	}
	sort.Slice(v, func(i, j int) bool { return v[i] < v[j] })
	mid := len(v) / 2
	if len(v)%2 == 0 {
		return (v[mid-1] + v[mid]) / 2
	}
	return v[mid]
}

func abs16(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}
