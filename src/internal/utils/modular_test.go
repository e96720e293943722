package utils

import (
	"math"
	"testing"
)

func TestModIncrement_Cycles(t *testing.T) {
	for start := 0; start < 4; start++ {
		value := start
		for step := 1; step <= 9; step++ {
			ModIncrement(&value, 4)
			expected := (start + step) % 4
			if value != expected {
				t.Fatalf("Start %d, step %d: expected %d, got %d", start, step, expected, value)
			}
		}
	}
}

func TestModDecrement_Cycles(t *testing.T) {
	value := 0
	expected := []int{2, 1, 0, 2, 1, 0}
	for i, want := range expected {
		ModDecrement(&value, 3)
		if value != want {
			t.Fatalf("Step %d: expected %d, got %d", i+1, want, value)
		}
	}
}

func TestModDecrement_InvertsIncrement(t *testing.T) {
	for start := 0; start < 5; start++ {
		value := start
		ModIncrement(&value, 5)
		ModDecrement(&value, 5)
		if value != start {
			t.Errorf("Expected decrement to undo increment from %d, got %d", start, value)
		}

		ModDecrement(&value, 5)
		ModIncrement(&value, 5)
		if value != start {
			t.Errorf("Expected increment to undo decrement from %d, got %d", start, value)
		}
	}
}

func TestModf(t *testing.T) {
	tests := []struct {
		name     string
		value    float32
		modulus  float32
		expected float32
	}{
		{"Negative one", -1, 360, 359},
		{"Just over", 370, 360, 10},
		{"In range", 45, 360, 45},
		{"Zero", 0, 360, 0},
		{"Exactly modulus", 360, 360, 0},
		{"Several turns negative", -725, 360, 355},
		{"Fractional", 7.5, 2, 1.5},
		{"Non-positive modulus", -5, 0, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Modf(tt.value, tt.modulus); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestModf_LargeMagnitudeTerminates(t *testing.T) {
	got := Modf(-1e30, 360)
	if got < 0 || got >= 360 {
		t.Errorf("Expected result in [0, 360), got %v", got)
	}

	inf := float32(math.Inf(1))
	if got := Modf(inf, 360); !math.IsInf(float64(got), 1) {
		t.Errorf("Expected +Inf to be returned unchanged, got %v", got)
	}
}

func TestWrapMod(t *testing.T) {
	tests := []struct {
		name     string
		value    float32
		modulus  int
		expected float32
	}{
		{"In range", 10.25, 360, 10.25},
		{"Over", 370.5, 360, 10.5},
		{"Negative integer", -10, 360, 350},
		{"Negative with fraction", -1.5, 360, 358.5},
		{"Zero integer part, negative fraction", -0.5, 360, 359.5},
		{"Exact multiple", 720, 360, 0},
		{"Negative exact multiple with fraction", -360.25, 360, 359.75},
		{"Zero modulus", 12.5, 0, 12.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WrapMod(tt.value, tt.modulus); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestSwap(t *testing.T) {
	a, b := "left", "right"
	Swap(&a, &b)
	if a != "right" || b != "left" {
		t.Errorf("Expected swapped values, got a=%s b=%s", a, b)
	}
}

func TestAbs(t *testing.T) {
	if Abs(-3) != 3 {
		t.Error("Abs(-3) should be 3")
	}
	if Abs(float32(-0.25)) != 0.25 {
		t.Error("Abs(-0.25) should be 0.25")
	}
	if Abs(int8(7)) != 7 {
		t.Error("Abs(7) should be 7")
	}
}
