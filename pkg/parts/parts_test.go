package parts

import (
	"math"
	"testing"

	"github.com/spacerabbit99982/abbund/pkg/cutting"
	"github.com/spacerabbit99982/abbund/pkg/frame"
)

func TestKeyMergesFloatNoise(t *testing.T) {
	a := Key(ClassRafter, 4.1230000001)
	b := Key(ClassRafter, 4.1229999999)
	if a != b {
		t.Errorf("keys differ: %q vs %q", a, b)
	}
	if a != "sparren-4123" {
		t.Errorf("Key() = %q", a)
	}
}

func TestDescribe(t *testing.T) {
	got := Describe(ClassRafter, frame.CrossSection{Width: 0.08, Height: 0.16}, 4.123)
	want := "Sparren 8x16cm, Länge: 412.3cm"
	if got != want {
		t.Errorf("Describe() = %q, want %q", got, want)
	}
}

func TestListInsertMerges(t *testing.T) {
	l := NewList()
	l.Insert(&Part{Key: "sparren-4123", Quantity: 2, Description: "first"})
	l.Insert(&Part{Key: "pfosten-2500", Quantity: 4})
	l.Insert(&Part{Key: "sparren-4123", Quantity: 3, Description: "second"})

	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}
	p := l.Get("sparren-4123")
	if p.Quantity != 5 {
		t.Errorf("Quantity = %d, want 5", p.Quantity)
	}
	if p.Description != "first" {
		t.Errorf("first insertion should win, got %q", p.Description)
	}

	all := l.All()
	if all[0].Key != "sparren-4123" || all[1].Key != "pfosten-2500" {
		t.Errorf("insertion order lost: %v, %v", all[0].Key, all[1].Key)
	}
	if l.TotalQuantity() != 9 {
		t.Errorf("TotalQuantity() = %d, want 9", l.TotalQuantity())
	}
}

func TestSummarizeRoundTrip(t *testing.T) {
	l := NewList()
	sec := frame.CrossSection{Width: 0.08, Height: 0.16}
	l.Insert(&Part{
		Key:         Key(ClassRafter, 4.0),
		Quantity:    10,
		Description: Describe(ClassRafter, sec, 4.0),
	})

	s := Summarize(l, 470, 850, 1400)

	// 0.08 * 0.16 * 4.0 * 10
	wantVol := 0.512
	if math.Abs(s.TotalVolume-wantVol) > 1e-9 {
		t.Errorf("TotalVolume = %v, want %v", s.TotalVolume, wantVol)
	}
	if math.Abs(s.TotalWeight-wantVol*470) > 1e-6 {
		t.Errorf("TotalWeight = %v", s.TotalWeight)
	}
	if s.SnowLoad != 850 || s.CombinedLoad != 1400 {
		t.Errorf("loads = %v, %v", s.SnowLoad, s.CombinedLoad)
	}
	if s.PartCount != 10 {
		t.Errorf("PartCount = %d", s.PartCount)
	}
}

func TestSummarizeDecimalComma(t *testing.T) {
	l := NewList()
	l.Insert(&Part{
		Key:         "zange-3500",
		Quantity:    2,
		Description: "Zange 10x18cm, Länge: 350,0cm",
	})

	s := Summarize(l, 470, 0, 0)
	want := 0.10 * 0.18 * 3.5 * 2
	if math.Abs(s.TotalVolume-want) > 1e-9 {
		t.Errorf("TotalVolume = %v, want %v", s.TotalVolume, want)
	}
}

func TestSummarizeBattenUsesCuttingPlan(t *testing.T) {
	plan, err := cutting.Optimize([]float64{4, 4, 4}, 5.0, 0)
	if err != nil {
		t.Fatalf("Optimize: %v", err)
	}

	l := NewList()
	l.Insert(&Part{
		Key:         "dachlatte",
		Quantity:    1,
		Description: "Dachlatte 3x5cm",
		Cutting:     plan,
	})

	s := Summarize(l, 470, 0, 0)
	// 3 stock pieces of 5m at 3x5cm.
	want := 0.03 * 0.05 * 5.0 * 3
	if math.Abs(s.TotalVolume-want) > 1e-9 {
		t.Errorf("TotalVolume = %v, want %v", s.TotalVolume, want)
	}
}

func TestSummarizeSkipsUnparseable(t *testing.T) {
	l := NewList()
	l.Insert(&Part{Key: "x", Quantity: 3, Description: "Beschlag verzinkt"})

	s := Summarize(l, 470, 0, 0)
	if s.TotalVolume != 0 {
		t.Errorf("TotalVolume = %v, want 0", s.TotalVolume)
	}
	if s.PartCount != 3 {
		t.Errorf("PartCount = %d, want 3", s.PartCount)
	}
}

func TestUtilization(t *testing.T) {
	r := &StaticsResult{Deflection: 0.02, Allowed: 0.01}
	if got := r.Utilization(); got != 2.0 {
		t.Errorf("Utilization() = %v, want 2", got)
	}
	zero := &StaticsResult{Deflection: 0.02}
	if got := zero.Utilization(); got != 0 {
		t.Errorf("Utilization() = %v, want 0", got)
	}
}
