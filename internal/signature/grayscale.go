package signature

import "fmt"

// grayscaleBuffer reduces an RGBA buffer to a row-major grid of luminance
// bytes, len/(4*width) rows by width columns.
func grayscaleBuffer(rgba []byte, width int) ([][]uint8, error) {
	if width <= 0 {
		return nil, fmt.Errorf("width %d: %w", width, ErrInvalidDimensions)
	}
	if len(rgba) == 0 || len(rgba)%(4*width) != 0 {
		return nil, fmt.Errorf("buffer length %d is not a positive multiple of 4*width (%d): %w",
			len(rgba), 4*width, ErrInvalidDimensions)
	}

	rows := len(rgba) / (4 * width)
	gray := make([][]uint8, rows)
	idx := 0
	for y := range gray {
		row := make([]uint8, width)
		for x := 0; x < width; x++ {
			row[x] = pixelGray(rgba[idx], rgba[idx+1], rgba[idx+2], rgba[idx+3])
			idx += 4
		}
		gray[y] = row
	}
	return gray, nil
}

// pixelGray is the truncating RGB average scaled by alpha. Fully transparent
// pixels reduce to 0 regardless of color; there is no blending against a
// background.
func pixelGray(r, g, b, a uint8) uint8 {
	avg := (uint16(r) + uint16(g) + uint16(b)) / 3
	return uint8(float32(avg) * (float32(a) / 255))
}
