package signature

import (
	"errors"
	"math"
	"testing"
)

// ─── fixture buffer builders ─────────────────────────────────

func rgbaSolid(w, h int, r, g, b, a uint8) []byte {
	buf := make([]byte, w*h*4)
	for i := 0; i < len(buf); i += 4 {
		buf[i] = r
		buf[i+1] = g
		buf[i+2] = b
		buf[i+3] = a
	}
	return buf
}

// rgbaPattern combines a two-axis gradient with a 16px checkerboard so the
// signature has plenty of nonzero neighbor diffs.
func rgbaPattern(w, h int) []byte {
	buf := make([]byte, w*h*4)
	i := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			buf[i] = uint8(x * 255 / w)
			buf[i+1] = uint8(y * 255 / h)
			buf[i+2] = uint8(((x/16 + y/16) % 2) * 200)
			buf[i+3] = 255
			i += 4
		}
	}
	return buf
}

// rgbaPerturbed shifts every channel of src by a deterministic value in
// [-5, 5], simulating light re-encoding noise.
func rgbaPerturbed(src []byte) []byte {
	out := make([]byte, len(src))
	for i, v := range src {
		if i%4 == 3 {
			out[i] = v // keep alpha
			continue
		}
		px := i / 4
		d := (px%11 + i%3) % 11 - 5
		n := int(v) + d
		if n < 0 {
			n = 0
		}
		if n > 255 {
			n = 255
		}
		out[i] = uint8(n)
	}
	return out
}

// rgbaWithBorder surrounds a w×h buffer with a uniform border.
func rgbaWithBorder(src []byte, w, h, border int, r, g, b uint8) []byte {
	bw := w + 2*border
	bh := h + 2*border
	out := rgbaSolid(bw, bh, r, g, b, 255)
	for y := 0; y < h; y++ {
		srcOff := y * w * 4
		dstOff := ((y+border)*bw + border) * 4
		copy(out[dstOff:dstOff+w*4], src[srcOff:srcOff+w*4])
	}
	return out
}

// ─── pipeline tests ──────────────────────────────────────────

func TestCompute_Deterministic(t *testing.T) {
	buf := rgbaPattern(128, 128)

	s1, err := Compute(buf, 128)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	s2, err := Compute(buf, 128)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}

	if len(s1) == 0 {
		t.Fatal("empty signature")
	}
	if len(s1) != len(s2) {
		t.Fatalf("length mismatch: %d vs %d", len(s1), len(s2))
	}
	for i := range s1 {
		if s1[i] != s2[i] {
			t.Fatalf("element %d differs: %d vs %d", i, s1[i], s2[i])
		}
	}
}

func TestCompute_DefaultLength(t *testing.T) {
	for _, size := range []int{64, 100, 256} {
		buf := rgbaPattern(size, size)
		sig, err := Compute(buf, size)
		if err != nil {
			t.Fatalf("%dx%d: %v", size, size, err)
		}
		if len(sig) != 544 {
			t.Errorf("%dx%d: signature length %d, want 544", size, size, len(sig))
		}
	}
}

func TestLength_Default(t *testing.T) {
	if got := Length(DefaultGridSize); got != 544 {
		t.Errorf("Length(%d) = %d, want 544", DefaultGridSize, got)
	}
	// The closed-form approximation holds for the default grid size.
	n := DefaultGridSize
	formula := 8*(n-1)*(n-1) - 12*(n-3) - 20
	if formula != 544 {
		t.Errorf("closed form = %d, want 544", formula)
	}
}

func TestComputeTuned_LengthBySimulation(t *testing.T) {
	buf := rgbaPattern(256, 256)
	for gridSize := 3; gridSize <= 12; gridSize++ {
		sig, err := ComputeTuned(buf, 256, DefaultCrop, gridSize)
		if err != nil {
			t.Fatalf("grid size %d: %v", gridSize, err)
		}
		if want := Length(gridSize); len(sig) != want {
			t.Errorf("grid size %d: length %d, want %d", gridSize, len(sig), want)
		}
	}
}

func TestComputeTuned_GridSizeTwo(t *testing.T) {
	// A single interior lattice point has no neighbors: empty signature,
	// not an error.
	buf := rgbaPattern(256, 256)
	sig, err := ComputeTuned(buf, 256, DefaultCrop, 2)
	if err != nil {
		t.Fatalf("grid size 2: %v", err)
	}
	if len(sig) != 0 {
		t.Errorf("grid size 2: length %d, want 0", len(sig))
	}
}

func TestCompute_InvalidDimensions(t *testing.T) {
	cases := []struct {
		name  string
		rgba  []byte
		width int
	}{
		{"zero width", rgbaSolid(4, 4, 0, 0, 0, 255), 0},
		{"ragged buffer", make([]byte, 37), 3},
		{"empty buffer", nil, 8},
	}
	for _, tc := range cases {
		if _, err := Compute(tc.rgba, tc.width); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("%s: err = %v, want ErrInvalidDimensions", tc.name, err)
		}
	}

	buf := rgbaSolid(64, 64, 10, 20, 30, 255)
	if _, err := ComputeTuned(buf, 64, DefaultCrop, 1); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("grid size 1: err = %v, want ErrInvalidDimensions", err)
	}
	if _, err := ComputeTuned(buf, 64, 0.7, DefaultGridSize); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("crop 0.7: err = %v, want ErrInvalidDimensions", err)
	}
}

func TestCompute_TinyImageOutOfRange(t *testing.T) {
	// On a 2x2 image the sampling window cannot fit inside the grid.
	buf := rgbaSolid(2, 2, 255, 255, 255, 255)
	if _, err := Compute(buf, 2); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("err = %v, want ErrOutOfRange", err)
	}
}

func TestCompute_NearDuplicate(t *testing.T) {
	src := rgbaPattern(256, 256)
	noisy := rgbaPerturbed(src)

	sigA, err := Compute(src, 256)
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	sigB, err := Compute(noisy, 256)
	if err != nil {
		t.Fatalf("noisy copy: %v", err)
	}

	score, err := Similarity(sigA, sigB)
	if err != nil {
		t.Fatalf("similarity: %v", err)
	}
	if score < SimilarityCutoff {
		t.Errorf("near-duplicate score %.4f below cutoff %.2f", score, SimilarityCutoff)
	}
}

func TestCompute_CropRobustness(t *testing.T) {
	src := rgbaPattern(200, 200)
	bordered := rgbaWithBorder(src, 200, 200, 10, 128, 128, 128)

	sigA, err := Compute(src, 200)
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	sigB, err := Compute(bordered, 220)
	if err != nil {
		t.Fatalf("bordered: %v", err)
	}

	score, err := Similarity(sigA, sigB)
	if err != nil {
		t.Fatalf("similarity: %v", err)
	}
	if score < SimilarityCutoff {
		t.Errorf("bordered copy score %.4f below cutoff %.2f", score, SimilarityCutoff)
	}
}

func TestCompute_FlatImagesScoreZero(t *testing.T) {
	red := rgbaSolid(64, 64, 255, 0, 0, 255)
	blue := rgbaSolid(64, 64, 0, 0, 255, 255)

	sigA, err := Compute(red, 64)
	if err != nil {
		t.Fatalf("red: %v", err)
	}
	sigB, err := Compute(blue, 64)
	if err != nil {
		t.Fatalf("blue: %v", err)
	}

	// Flat images quantize to all zeros; zero-norm vectors must score
	// 0.0, not NaN.
	score, err := Similarity(sigA, sigB)
	if err != nil {
		t.Fatalf("similarity: %v", err)
	}
	if math.IsNaN(score) {
		t.Fatal("score is NaN")
	}
	if score != 0 {
		t.Errorf("flat images score %.4f, want 0", score)
	}
}

func TestCompute_MedianSymmetry(t *testing.T) {
	// Every neighbor pair contributes mirrored diffs, so the +2 and -2
	// populations come out equal.
	sig, err := Compute(rgbaPattern(256, 256), 256)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}

	var pos2, neg2 int
	for _, v := range sig {
		switch v {
		case 2:
			pos2++
		case -2:
			neg2++
		}
	}
	if pos2 == 0 {
		t.Fatal("no ±2 values in patterned signature")
	}
	if pos2 != neg2 {
		t.Errorf("+2 count %d != -2 count %d", pos2, neg2)
	}
}

func BenchmarkCompute(b *testing.B) {
	buf := rgbaPattern(256, 256)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Compute(buf, 256)
	}
}
