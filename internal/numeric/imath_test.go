package numeric

import "testing"

func TestMin(t *testing.T) {
	if Min(5, 3) != 3 {
		t.Error("Min(5, 3) should be 3")
	}
	if Min(int8(10), int8(-5)) != int8(-5) {
		t.Error("Min(int8) failed")
	}
	if Min(uint(5), uint(3)) != uint(3) {
		t.Error("Min(uint) failed")
	}
}

func TestMax(t *testing.T) {
	if Max(5, 3) != 5 {
		t.Error("Max(5, 3) should be 5")
	}
	if Max(int8(10), int8(-5)) != int8(10) {
		t.Error("Max(int8) failed")
	}
	if Max(uint(5), uint(3)) != uint(5) {
		t.Error("Max(uint) failed")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}
