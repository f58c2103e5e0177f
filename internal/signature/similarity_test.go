package signature

import (
	"errors"
	"math"
	"testing"
)

func TestSimilarity_SelfIsOne(t *testing.T) {
	sig, err := Compute(rgbaPattern(128, 128), 128)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}

	score, err := Similarity(sig, sig)
	if err != nil {
		t.Fatalf("similarity: %v", err)
	}
	if math.Abs(score-1) > 1e-9 {
		t.Errorf("self similarity = %v, want 1.0", score)
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	a, err := Compute(rgbaPattern(128, 128), 128)
	if err != nil {
		t.Fatalf("compute a: %v", err)
	}
	b, err := Compute(rgbaPerturbed(rgbaPattern(128, 128)), 128)
	if err != nil {
		t.Fatalf("compute b: %v", err)
	}

	ab, err := Similarity(a, b)
	if err != nil {
		t.Fatalf("similarity: %v", err)
	}
	ba, err := Similarity(b, a)
	if err != nil {
		t.Fatalf("similarity: %v", err)
	}
	if ab != ba {
		t.Errorf("asymmetric: %v vs %v", ab, ba)
	}
}

func TestSimilarity_LengthMismatch(t *testing.T) {
	a := []int8{1, 2, -1}
	b := []int8{1, 2}
	if _, err := Similarity(a, b); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("err = %v, want ErrLengthMismatch", err)
	}
}

func TestSimilarity_ZeroNorm(t *testing.T) {
	zero := make([]int8, 544)
	full := make([]int8, 544)
	for i := range full {
		full[i] = 1
	}

	score, err := Similarity(zero, full)
	if err != nil {
		t.Fatalf("similarity: %v", err)
	}
	if score != 0 {
		t.Errorf("zero-norm score = %v, want 0", score)
	}
}

func TestSimilarity_Opposite(t *testing.T) {
	a := []int8{2, -2, 1, -1}
	b := []int8{-2, 2, -1, 1}
	score, err := Similarity(a, b)
	if err != nil {
		t.Fatalf("similarity: %v", err)
	}
	if math.Abs(score+1) > 1e-9 {
		t.Errorf("opposite vectors score %v, want -1.0", score)
	}
}
