// Package signature computes compact perceptual signatures for raw RGBA
// pixel buffers and compares them with cosine similarity.  The scheme
// follows Goldberg et al., "An Image Signature for Any Kind of Image".
//
// Pipeline design:
//   - Grayscale reduction with alpha treated as attenuation toward black
//   - Content-density crop: margins are trimmed where edge activity is low,
//     not at fixed percentages, so uniform borders don't shift the grid
//   - Interior lattice of (gridSize-1)² sample points over the cropped span
//   - Soft sampling: size-adaptive window of 3×3 box averages per point
//   - Adaptive quantization: per-point neighbor diffs, collapsed to a
//     5-level scale with median-derived "much darker/lighter" cutoffs
//   - float32 intermediate math, truncating byte conversions throughout
//
// Signatures are plain []int8 vectors; two vectors are comparable only when
// produced with identical tuning parameters.  Deterministic: identical
// input bytes yield identical signatures.
package signature

import (
	"errors"
	"fmt"
)

// Default tuning. A cosine of SimilarityCutoff or higher between two
// default-tuned signatures indicates likely visual similarity.
const (
	DefaultCrop     = 0.05
	DefaultGridSize = 10

	SimilarityCutoff = 0.6
)

// Error kinds. All are precondition failures; a failed call never succeeds
// on retry without changing inputs.
var (
	// ErrInvalidDimensions reports a buffer length inconsistent with the
	// stated width, or width/crop/gridSize outside their valid ranges.
	ErrInvalidDimensions = errors.New("invalid dimensions")

	// ErrOutOfRange reports a sampling window that would read outside the
	// grayscale grid. Reachable only with extreme tuning parameters or
	// very small images.
	ErrOutOfRange = errors.New("sampling window out of range")

	// ErrLengthMismatch reports a similarity comparison between vectors of
	// differing length (signatures from different tuning parameters).
	ErrLengthMismatch = errors.New("signature length mismatch")
)

// Compute returns the 544-element signature of an RGBA buffer under default
// tuning. The buffer is 4 bytes per pixel, row-major, width pixels per row,
// no padding.
func Compute(rgba []byte, width int) ([]int8, error) {
	return ComputeTuned(rgba, width, DefaultCrop, DefaultGridSize)
}

// ComputeTuned returns the signature of an RGBA buffer for the given crop
// fraction (in [0, 0.5]) and grid size (≥ 2). Signatures computed with
// different tuning parameters must never be compared; the output length for
// a given grid size is reported by Length.
func ComputeTuned(rgba []byte, width int, crop float64, gridSize int) ([]int8, error) {
	if gridSize < 2 {
		return nil, fmt.Errorf("grid size %d (minimum 2): %w", gridSize, ErrInvalidDimensions)
	}
	if crop < 0 || crop > 0.5 {
		return nil, fmt.Errorf("crop %v outside [0, 0.5]: %w", crop, ErrInvalidDimensions)
	}

	gray, err := grayscaleBuffer(rgba, width)
	if err != nil {
		return nil, err
	}

	b := cropBounds(gray, crop)
	pts := gridPoints(b, gridSize)
	avgs, err := gridAverages(gray, pts, b)
	if err != nil {
		return nil, err
	}
	return quantize(avgs), nil
}

// Length returns the exact signature length for a grid size, derived by
// walking the lattice and counting each point's in-range neighbors. For the
// default grid size 10 this is 544.
func Length(gridSize int) int {
	n := gridSize - 1
	if n < 1 {
		return 0
	}
	total := 0
	for gy := 0; gy < n; gy++ {
		for gx := 0; gx < n; gx++ {
			for _, off := range neighborOffsets {
				nx, ny := gx+off[0], gy+off[1]
				if nx >= 0 && ny >= 0 && nx < n && ny < n {
					total++
				}
			}
		}
	}
	return total
}
