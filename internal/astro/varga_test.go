package astro

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestVargaIdentity(t *testing.T) {
	d1, err := NatalChart(validBirth())
	if err != nil {
		t.Fatalf("NatalChart: %v", err)
	}
	same, err := Varga(d1, 1)
	if err != nil {
		t.Fatalf("Varga(1): %v", err)
	}
	if !reflect.DeepEqual(d1, same) {
		t.Fatal("the first harmonic must return an equal chart")
	}
}

func TestVargaRangeInvariants(t *testing.T) {
	d1, err := NatalChart(validBirth())
	if err != nil {
		t.Fatalf("NatalChart: %v", err)
	}
	for _, n := range SupportedVargas() {
		chart, err := Varga(d1, n)
		if err != nil {
			t.Fatalf("Varga(%d): %v", n, err)
		}
		if len(chart.Points) != len(d1.Points) {
			t.Fatalf("D%d: got %d points, want %d", n, len(chart.Points), len(d1.Points))
		}
		for _, pt := range chart.Points {
			assertPointInvariants(t, pt)
		}
	}
}

func TestVargaLongitudeRule(t *testing.T) {
	d1, err := NatalChart(validBirth())
	if err != nil {
		t.Fatalf("NatalChart: %v", err)
	}
	d9, err := Varga(d1, 9)
	if err != nil {
		t.Fatalf("Varga(9): %v", err)
	}
	for i, pt := range d1.Points {
		want := math.Mod(pt.TotalDegree()*9, 360)
		got := d9.Points[i].TotalDegree()
		if math.Abs(want-got) > 1e-9 {
			t.Fatalf("%s: D9 longitude %v, want %v", pt.Planet, got, want)
		}
	}
}

func TestVargaCarriesHouseAndMotion(t *testing.T) {
	d1, err := NatalChart(validBirth())
	if err != nil {
		t.Fatalf("NatalChart: %v", err)
	}
	d10, err := Varga(d1, 10)
	if err != nil {
		t.Fatalf("Varga(10): %v", err)
	}
	for i, pt := range d1.Points {
		got := d10.Points[i]
		if got.Planet != pt.Planet || got.House != pt.House || got.Retrograde != pt.Retrograde {
			t.Fatalf("%s: identity/house/motion must carry over, got %+v", pt.Planet, got)
		}
	}
}

func TestVargaUnsupportedDivisor(t *testing.T) {
	d1, err := NatalChart(validBirth())
	if err != nil {
		t.Fatalf("NatalChart: %v", err)
	}
	for _, n := range []int{0, 5, 11, 45, -9} {
		if _, err := Varga(d1, n); !errors.Is(err, ErrUnsupportedVarga) {
			t.Fatalf("Varga(%d) error = %v, want ErrUnsupportedVarga", n, err)
		}
	}
}

func TestVargaEmptyChart(t *testing.T) {
	if _, err := Varga(DivisionalChart{}, 9); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("error = %v, want ErrEmptyInput", err)
	}
}

func TestVargaDoesNotMutateInput(t *testing.T) {
	d1, err := NatalChart(validBirth())
	if err != nil {
		t.Fatalf("NatalChart: %v", err)
	}
	before := make([]ChartPoint, len(d1.Points))
	copy(before, d1.Points)
	if _, err := Varga(d1, 9); err != nil {
		t.Fatalf("Varga: %v", err)
	}
	if !reflect.DeepEqual(before, d1.Points) {
		t.Fatal("varga transform must not mutate its input")
	}
}
