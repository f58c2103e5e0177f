package signature

// point is a pixel coordinate of one interior lattice point.
type point struct {
	x, y int
}

// gridPoints divides the cropped span into gridSize equal integer-width
// cells per axis and places sample points on the interior cell boundaries.
// The result is a dense (gridSize-1)×(gridSize-1) array indexed
// [gy-1][gx-1]; coordinate ranges are small and known, so a map buys
// nothing here.
//
// On spans narrower than gridSize the cell width truncates to zero and
// multiple points collapse onto the same pixel. That is valid: downstream
// neighbor diffs simply come out zero.
func gridPoints(b bounds, gridSize int) [][]point {
	xStep := (b.upperX - b.lowerX) / gridSize
	yStep := (b.upperY - b.lowerY) / gridSize

	pts := make([][]point, gridSize-1)
	for gy := 1; gy < gridSize; gy++ {
		row := make([]point, gridSize-1)
		for gx := 1; gx < gridSize; gx++ {
			row[gx-1] = point{
				x: b.lowerX + gx*xStep,
				y: b.lowerY + gy*yStep,
			}
		}
		pts[gy-1] = row
	}
	return pts
}
