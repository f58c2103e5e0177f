package signature

import (
	"fmt"
	"math"
)

// gridAverages computes a soft-sampled luminance byte for each lattice
// point: a square window of 3×3 box averages, summed and divided by the
// window area. The window half-width scales with the cropped span, so
// larger images smooth over larger neighborhoods.
func gridAverages(gray [][]uint8, pts [][]point, b bounds) ([][]uint8, error) {
	span := b.upperX - b.lowerX
	if s := b.upperY - b.lowerY; s < span {
		span = s
	}
	edge := int(math.Max(2, math.Floor(0.5+float64(span)/20)) / 2)
	side := 2*edge + 1

	rows, cols := len(gray), len(gray[0])

	avgs := make([][]uint8, len(pts))
	for i, row := range pts {
		out := make([]uint8, len(row))
		for j, p := range row {
			// The window plus the inner 3×3 box must stay on the grid.
			if p.x-edge-1 < 0 || p.y-edge-1 < 0 || p.x+edge+1 >= cols || p.y+edge+1 >= rows {
				return nil, fmt.Errorf("point (%d,%d) window half-width %d on %d×%d grid: %w",
					p.x, p.y, edge, cols, rows, ErrOutOfRange)
			}

			var sum float32
			for dy := -edge; dy <= edge; dy++ {
				for dx := -edge; dx <= edge; dx++ {
					sum += boxAverage(gray, p.x+dx, p.y+dy)
				}
			}
			out[j] = uint8(sum / float32(side*side))
		}
		avgs[i] = out
	}
	return avgs, nil
}

// boxAverage is the unweighted mean of the 3×3 pixel block centered at
// (x, y). Callers guarantee the block is in range.
func boxAverage(gray [][]uint8, x, y int) float32 {
	var sum float32
	for dy := -1; dy <= 1; dy++ {
		row := gray[y+dy]
		sum += float32(row[x-1]) + float32(row[x]) + float32(row[x+1])
	}
	return sum / 9
}
