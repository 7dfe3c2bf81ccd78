package common

import (
	"reflect"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{name: "inside", v: 5, lo: 0, hi: 10, want: 5},
		{name: "below", v: -3, lo: 0, hi: 10, want: 0},
		{name: "above", v: 12, lo: 0, hi: 10, want: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.1); got != 1 {
		t.Fatalf("Lerp = %v, want 1", got)
	}
}

func TestWrap(t *testing.T) {
	got := Wrap("the square teaches morality", 10)
	want := []string{"the square", "teaches", "morality"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Wrap = %q, want %q", got, want)
	}

	if got := Wrap("   ", 10); got != nil {
		t.Fatalf("expected nil for blank input, got %q", got)
	}

	got = Wrap("Fellowcraftsmanship", 5)
	if len(got) != 1 || got[0] != "Fellowcraftsmanship" {
		t.Fatalf("long word should stay whole, got %q", got)
	}
}
