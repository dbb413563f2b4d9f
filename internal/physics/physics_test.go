package physics

import "testing"

func TestCircleRectOverlap(t *testing.T) {
	paddle := Rect{X: 100, Y: 100, Width: 25, Height: 120}

	tests := []struct {
		name   string
		cx, cy float64
		radius float64
		want   bool
	}{
		{"center inside", 112, 160, 20, true},
		{"left face touching", 80, 160, 20, true},
		{"left face apart", 79, 160, 20, false},
		{"right face touching", 145, 160, 20, true},
		{"top face touching", 112, 80, 20, true},
		{"below bottom", 112, 241, 20, false},
		{"corner diagonal in reach", 90, 90, 20, true},
		{"corner diagonal out of reach", 85, 85, 20, false},
		{"far away", 640, 400, 20, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CircleRectOverlap(tt.cx, tt.cy, tt.radius, paddle)
			if got != tt.want {
				t.Errorf("CircleRectOverlap(%v, %v, %v) = %v, want %v", tt.cx, tt.cy, tt.radius, got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{-6, 0, 680, 0},
		{340, 0, 680, 340},
		{686, 0, 680, 680},
		{5, 10, 0, 0},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestDistanceSquared(t *testing.T) {
	if got := DistanceSquared(0, 0, 3, 4); got != 25 {
		t.Errorf("DistanceSquared = %v, want 25", got)
	}
}
