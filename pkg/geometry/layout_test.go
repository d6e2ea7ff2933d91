package geometry

import (
	"math"
	"testing"
)

func TestPositionsProperties(t *testing.T) {
	tests := []struct {
		name      string
		length    float64
		thickness float64
		spacing   float64
	}{
		{"standard wall", 7.0, 0.06, 0.625},
		{"rafter run", 5.0, 0.08, 0.8},
		{"exact multiple", 5.0, 0.1, 0.7},
		{"barely two members", 0.13, 0.06, 0.625},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := Positions(tt.length, tt.thickness, tt.spacing)

			if len(pos) < 2 {
				t.Fatalf("got %d positions, want >= 2", len(pos))
			}
			if pos[0] != tt.thickness/2 {
				t.Errorf("first = %v, want %v", pos[0], tt.thickness/2)
			}
			if last := pos[len(pos)-1]; math.Abs(last-(tt.length-tt.thickness/2)) > 1e-12 {
				t.Errorf("last = %v, want %v", last, tt.length-tt.thickness/2)
			}

			sp := Spacings(pos)
			for i, s := range sp {
				if s <= 0 {
					t.Errorf("spacing %d = %v, not increasing", i, s)
				}
				if i < len(sp)-1 && s > tt.spacing+1e-12 {
					t.Errorf("inner spacing %d = %v exceeds target %v", i, s, tt.spacing)
				}
			}
		})
	}
}

func TestPositionsShortRun(t *testing.T) {
	pos := Positions(0.1, 0.06, 0.625)
	if len(pos) != 2 {
		t.Fatalf("got %d positions, want exactly 2", len(pos))
	}
	if pos[0] != 0.03 || math.Abs(pos[1]-0.07) > 1e-12 {
		t.Errorf("positions = %v", pos)
	}
}

func TestSpacingsEmpty(t *testing.T) {
	if got := Spacings([]float64{1.0}); got != nil {
		t.Errorf("Spacings single = %v, want nil", got)
	}
}
