package bitmath

import "testing"

func TestBitLength(t *testing.T) {
	cases := []struct {
		value uint64
		want  int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 2},
		{255, 8},
		{256, 9},
		{1 << 31, 32},
	}
	for _, tc := range cases {
		if got := BitLength(tc.value); got != tc.want {
			t.Errorf("BitLength(%d) = %d, want %d", tc.value, got, tc.want)
		}
	}
}

func TestCeilDiv8(t *testing.T) {
	cases := []struct {
		n    uint64
		want uint64
	}{
		{0, 0},
		{1, 1},
		{8, 1},
		{9, 2},
		{64, 8},
		{65, 9},
	}
	for _, tc := range cases {
		if got := CeilDiv8(tc.n); got != tc.want {
			t.Errorf("CeilDiv8(%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}

func TestFloorLog2(t *testing.T) {
	cases := []struct {
		num, den uint64
		want     int
	}{
		{1, 1, 0},
		{8, 1, 3},
		{7, 1, 2},
		{1000000, 1, 19},
		{11, 5, 1},
		{5, 10, 0},
	}
	for _, tc := range cases {
		if got := FloorLog2(tc.num, tc.den); got != tc.want {
			t.Errorf("FloorLog2(%d, %d) = %d, want %d", tc.num, tc.den, got, tc.want)
		}
	}
}

func TestClampLog2(t *testing.T) {
	cases := []struct {
		l, max, want int
	}{
		{-1, 31, 0},
		{0, 31, 0},
		{19, 31, 19},
		{32, 31, 31},
	}
	for _, tc := range cases {
		if got := ClampLog2(tc.l, tc.max); got != tc.want {
			t.Errorf("ClampLog2(%d, %d) = %d, want %d", tc.l, tc.max, got, tc.want)
		}
	}
}

func TestEncodedByteBound(t *testing.T) {
	// n=1, l=0, u=0: lowBytes = 0/8+1 = 1, highBits = 1+0 = 1, highBytes = 1.
	if got, want := EncodedByteBound(1, 0, 0), uint64(5+1+1); got != want {
		t.Errorf("EncodedByteBound(1, 0, 0) = %d, want %d", got, want)
	}
	// Must never be smaller than the exact usedBytes a real encode produces
	// for a dense sequence of 8 values from a universe of 8 (n=8, L=0,
	// u=8), which is 7 bytes.
	if got, minWant := EncodedByteBound(8, 0, 8), uint64(7); got < minWant {
		t.Errorf("EncodedByteBound(8, 0, 8) = %d, want >= %d", got, minWant)
	}
}
