package core

import (
	"math"
	"testing"
)

func TestVec2(t *testing.T) {
	v := Vec2{X: 3, Y: 4}

	if v.Len() != 5 {
		t.Errorf("Len() = %f, expected 5", v.Len())
	}

	sum := v.Add(Vec2{X: 1, Y: -1})
	if sum.X != 4 || sum.Y != 3 {
		t.Errorf("Add() = %+v, expected {4 3}", sum)
	}

	scaled := v.Scale(0.5)
	if scaled.X != 1.5 || scaled.Y != 2 {
		t.Errorf("Scale() = %+v, expected {1.5 2}", scaled)
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		name     string
		val      float64
		expected bool
	}{
		{"zero", 0, true},
		{"negative", -1.5, true},
		{"NaN", math.NaN(), false},
		{"+Inf", math.Inf(1), false},
		{"-Inf", math.Inf(-1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsFinite(tc.val); got != tc.expected {
				t.Errorf("IsFinite(%f) = %v, expected %v", tc.val, got, tc.expected)
			}
		})
	}

	if (Vec2{X: 1, Y: math.NaN()}).IsFinite() {
		t.Error("Vec2 with NaN component should not be finite")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectProject(t *testing.T) {
	r := NewRect(2, 1, 11, 5)

	tests := []struct {
		name   string
		nx, ny float64
		x, y   int
	}{
		{"origin", 0, 0, 2, 1},
		{"far corner", 1, 1, 12, 5},
		{"center", 0.5, 0.5, 7, 3},
		{"clamped below", -0.3, -2, 2, 1},
		{"clamped above", 1.4, 9, 12, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := r.Project(tc.nx, tc.ny)
			if x != tc.x || y != tc.y {
				t.Errorf("Project(%f, %f) = (%d, %d), expected (%d, %d)", tc.nx, tc.ny, x, y, tc.x, tc.y)
			}
		})
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{0.5, 0.0, 1.0, 0.5},
		{-0.5, 0.0, 1.0, 0.0},
		{1.5, 0.0, 1.0, 1.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}
