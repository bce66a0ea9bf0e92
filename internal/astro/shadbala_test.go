package astro

import (
	"math"
	"testing"
)

func TestShadbalaShape(t *testing.T) {
	scores, err := Shadbala(validBirth())
	if err != nil {
		t.Fatalf("Shadbala: %v", err)
	}
	if len(scores) != 7 {
		t.Fatalf("got %d entries, want 7", len(scores))
	}
	for i, s := range scores {
		if s.Planet != ClassicalPlanets[i] {
			t.Fatalf("entry %d is %s, want %s", i, s.Planet, ClassicalPlanets[i])
		}
	}
}

func TestShadbalaTotalIsSum(t *testing.T) {
	scores, err := Shadbala(validBirth())
	if err != nil {
		t.Fatalf("Shadbala: %v", err)
	}
	for _, s := range scores {
		sum := s.Sthana + s.Dig + s.Kala + s.Cesta + s.Naisargika + s.Drig
		if math.Abs(s.Total-sum) > 1e-6 {
			t.Fatalf("%s: total %v != component sum %v", s.Planet, s.Total, sum)
		}
		wantPct := int(math.Round(s.Total / shadbalaMax * 100))
		if s.Percentage != wantPct {
			t.Fatalf("%s: percentage %d, want %d", s.Planet, s.Percentage, wantPct)
		}
	}
}

func TestShadbalaComponentRanges(t *testing.T) {
	scores, err := Shadbala(validBirth())
	if err != nil {
		t.Fatalf("Shadbala: %v", err)
	}
	for _, s := range scores {
		checks := []struct {
			name     string
			val      float64
			min, max float64
		}{
			{"sthana", s.Sthana, 0, 200},
			{"kala", s.Kala, 0, 200},
			{"cesta", s.Cesta, 0, 100},
			{"dig", s.Dig, 0, 60},
			{"naisargika", s.Naisargika, 0, 60},
			{"drig", s.Drig, -10, 10},
		}
		for _, c := range checks {
			if c.val < c.min || c.val > c.max {
				t.Fatalf("%s: %s = %v outside [%v, %v]", s.Planet, c.name, c.val, c.min, c.max)
			}
		}
		if s.Baladi == "" || s.Jagradadi == "" || s.Deeptadi == "" {
			t.Fatalf("%s: missing stage attributes: %+v", s.Planet, s)
		}
	}
}

func TestShadbalaNaisargikaFixed(t *testing.T) {
	a, err := Shadbala(validBirth())
	if err != nil {
		t.Fatalf("Shadbala: %v", err)
	}
	other := validBirth()
	other.DOB = "1984-11-02"
	b, err := Shadbala(other)
	if err != nil {
		t.Fatalf("Shadbala: %v", err)
	}
	for i := range a {
		if a[i].Naisargika != b[i].Naisargika {
			t.Fatalf("%s: naisargika must not depend on birth data", a[i].Planet)
		}
	}
	if a[0].Naisargika != 60 {
		t.Fatalf("Sun naisargika = %v, want 60", a[0].Naisargika)
	}
}

func TestShadbalaRejectsInvalid(t *testing.T) {
	b := validBirth()
	b.DOB = "not-a-date"
	if _, err := Shadbala(b); err == nil {
		t.Fatal("expected validation error")
	}
}
