package core

import (
	"math/rand"
	"testing"
)

func TestBoxAround(t *testing.T) {
	tests := []struct {
		name     string
		pos      Vec2
		radius   float64
		expected Box
	}{
		{
			name:     "origin",
			pos:      V(0, 0),
			radius:   8,
			expected: Box{Min: V(-8, -8), Max: V(8, 8)},
		},
		{
			name:     "offset",
			pos:      V(100, 50),
			radius:   4,
			expected: Box{Min: V(96, 46), Max: V(104, 54)},
		},
		{
			name:     "zero radius",
			pos:      V(3, 7),
			radius:   0,
			expected: Box{Min: V(3, 7), Max: V(3, 7)},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := BoxAround(tc.pos, tc.radius)
			if got != tc.expected {
				t.Errorf("BoxAround(%v, %v) = %v, expected %v", tc.pos, tc.radius, got, tc.expected)
			}
		})
	}
}

func TestVec2Arithmetic(t *testing.T) {
	a := V(1, 2)
	b := V(3, -4)

	if got := a.Add(b); got != V(4, -2) {
		t.Errorf("Add() = %v, expected (4, -2)", got)
	}
	if got := a.Sub(b); got != V(-2, 6) {
		t.Errorf("Sub() = %v, expected (-2, 6)", got)
	}
	if got := b.Scale(0.5); got != V(1.5, -2) {
		t.Errorf("Scale() = %v, expected (1.5, -2)", got)
	}
	if a.IsZero() {
		t.Error("IsZero() should be false for (1, 2)")
	}
	if !(Vec2{}).IsZero() {
		t.Error("IsZero() should be true for zero vector")
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
		{5, 8, 2, 8}, // degenerate range resolves to min
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestRandHelpers(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 1000; i++ {
		s := RandSign(rng)
		if s != -1 && s != 1 {
			t.Fatalf("RandSign() = %v, expected -1 or 1", s)
		}

		u := RandHalfOpen(rng, 0.5)
		if u <= 0 || u > 0.5 {
			t.Fatalf("RandHalfOpen() = %v, expected (0, 0.5]", u)
		}

		n := RandIntRange(rng, 3, 6)
		if n < 3 || n > 6 {
			t.Fatalf("RandIntRange(3, 6) = %d out of range", n)
		}
	}

	if got := RandIntRange(rng, 5, 5); got != 5 {
		t.Errorf("RandIntRange(5, 5) = %d, expected 5", got)
	}
	if got := RandIntRange(rng, 9, 2); got != 9 {
		t.Errorf("RandIntRange(9, 2) = %d, expected lower bound 9", got)
	}
}
