package signature

// bounds delimits the content-dense sub-rectangle of a grayscale grid, in
// pixel coordinates. Inclusive on both ends.
type bounds struct {
	lowerX, upperX int
	lowerY, upperY int
}

// cropBounds trims margins where edge activity is sparse: along each axis
// the cut is placed where the running sum of adjacent-pixel differences
// reaches the crop fraction of the total. Row cuts use horizontal
// differences within each row, column cuts use vertical differences within
// each column.
func cropBounds(gray [][]uint8, crop float64) bounds {
	rowActivity := make([]int64, len(gray))
	for y, row := range gray {
		var sum int64
		for x := 1; x < len(row); x++ {
			sum += absDiff(row[x], row[x-1])
		}
		rowActivity[y] = sum
	}
	top, bottom := axisBounds(rowActivity, crop)

	colActivity := make([]int64, len(gray[0]))
	for x := range colActivity {
		var sum int64
		for y := 1; y < len(gray); y++ {
			sum += absDiff(gray[y][x], gray[y-1][x])
		}
		colActivity[x] = sum
	}
	left, right := axisBounds(colActivity, crop)

	return bounds{lowerX: left, upperX: right, lowerY: top, upperY: bottom}
}

// axisBounds walks activity values inward from both ends until the crop
// threshold is reached. Both walks are clamped to the array, so a flat
// image (zero total activity) yields the degenerate full span rather than
// running past the ends.
func axisBounds(activity []int64, crop float64) (int, int) {
	var total int64
	for _, v := range activity {
		total += v
	}
	threshold := int64(float64(total) * crop)

	lower, upper := 0, len(activity)-1
	var sum int64
	for sum < threshold && lower < len(activity)-1 {
		sum += activity[lower]
		lower++
	}
	sum = 0
	for sum < threshold && upper > 0 {
		sum += activity[upper]
		upper--
	}
	return lower, upper
}

func absDiff(a, b uint8) int64 {
	if a > b {
		return int64(a - b)
	}
	return int64(b - a)
}
