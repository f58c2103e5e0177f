package signature

import "testing"

// TestQuantize_Pinned walks a 2×2 lattice by hand.
//
// Averages:
//
//	10 20
//	30 40
//
// All nonzero diffs: darker {-30,-20,-20,-10,-10,-10} → median -15,
// lighter mirrored → median 15. Collapse at magnitude 15.
func TestQuantize_Pinned(t *testing.T) {
	avgs := [][]uint8{
		{10, 20},
		{30, 40},
	}
	want := []int8{
		-1, -2, -2, // point (1,1): diffs -10, -20, -30
		1, -1, -2, // point (2,1): diffs +10, -10, -20
		2, 1, -1, // point (1,2): diffs +20, +10, -10
		2, 2, 1, // point (2,2): diffs +30, +20, +10
	}

	got := quantize(avgs)
	if len(got) != len(want) {
		t.Fatalf("length %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestQuantize_FlatLattice(t *testing.T) {
	avgs := [][]uint8{
		{77, 77, 77},
		{77, 77, 77},
		{77, 77, 77},
	}
	for i, v := range quantize(avgs) {
		if v != 0 {
			t.Fatalf("element %d: got %d, want 0", i, v)
		}
	}
}

func TestNeighborDiff_SameBand(t *testing.T) {
	cases := []struct {
		self, other, want int16
	}{
		{100, 100, 0},
		{100, 98, 0},  // +2 collapses
		{100, 102, 0}, // -2 collapses
		{100, 97, 3},
		{100, 103, -3},
		{0, 255, -255},
		{255, 0, 255},
	}
	for _, tc := range cases {
		if got := neighborDiff(tc.self, tc.other); got != tc.want {
			t.Errorf("neighborDiff(%d, %d) = %d, want %d", tc.self, tc.other, got, tc.want)
		}
	}
}

func TestMedian(t *testing.T) {
	cases := []struct {
		name string
		in   []int16
		want int16
	}{
		{"empty", nil, 0},
		{"single", []int16{7}, 7},
		{"odd", []int16{9, 3, 5}, 5},
		{"even truncates", []int16{3, 10}, 6},
		{"even negative truncates", []int16{-10, -3}, -6},
	}
	for _, tc := range cases {
		if got := median(append([]int16(nil), tc.in...)); got != tc.want {
			t.Errorf("%s: median = %d, want %d", tc.name, got, tc.want)
		}
	}
}
