package astro

import (
	"errors"
	"reflect"
	"testing"
)

func TestAshtakavargaConsistency(t *testing.T) {
	chart, err := NatalChart(validBirth())
	if err != nil {
		t.Fatalf("NatalChart: %v", err)
	}
	av, err := Ashtakavarga(chart)
	if err != nil {
		t.Fatalf("Ashtakavarga: %v", err)
	}

	if len(av.BAV) != 7 {
		t.Fatalf("got %d bhinnashtakavarga grids, want 7", len(av.BAV))
	}
	if len(av.SAV) != 12 {
		t.Fatalf("sav has %d houses, want 12", len(av.SAV))
	}

	grandTotal := 0
	for h := 0; h < 12; h++ {
		sum := 0
		for _, p := range ClassicalPlanets {
			row := av.BAV[p]
			if len(row) != 12 {
				t.Fatalf("%s grid has %d houses, want 12", p, len(row))
			}
			if row[h] < 0 || row[h] >= bavCeiling {
				t.Fatalf("%s house %d count %d out of [0, %d)", p, h+1, row[h], bavCeiling)
			}
			sum += row[h]
		}
		if av.SAV[h] != sum {
			t.Fatalf("sav[%d] = %d, want per-planet sum %d", h, av.SAV[h], sum)
		}
		grandTotal += sum
	}
	if av.TotalPoints != grandTotal {
		t.Fatalf("totalPoints = %d, want %d", av.TotalPoints, grandTotal)
	}

	for _, p := range ClassicalPlanets {
		sum := 0
		for _, v := range av.BAV[p] {
			sum += v
		}
		if av.PlanetTotals[p] != sum {
			t.Fatalf("%s total = %d, want %d", p, av.PlanetTotals[p], sum)
		}
	}
}

func TestAshtakavargaSummary(t *testing.T) {
	chart, err := NatalChart(validBirth())
	if err != nil {
		t.Fatalf("NatalChart: %v", err)
	}
	av, err := Ashtakavarga(chart)
	if err != nil {
		t.Fatalf("Ashtakavarga: %v", err)
	}
	s, w := av.Summary.StrongestHouse, av.Summary.WeakestHouse
	if s < 1 || s > 12 || w < 1 || w > 12 {
		t.Fatalf("summary houses out of range: %+v", av.Summary)
	}
	for i, v := range av.SAV {
		if v > av.SAV[s-1] {
			t.Fatalf("house %d (%d) beats strongest house %d (%d)", i+1, v, s, av.SAV[s-1])
		}
		if v < av.SAV[w-1] {
			t.Fatalf("house %d (%d) undercuts weakest house %d (%d)", i+1, v, w, av.SAV[w-1])
		}
	}
}

func TestAshtakavargaDeterminism(t *testing.T) {
	chart, err := NatalChart(validBirth())
	if err != nil {
		t.Fatalf("NatalChart: %v", err)
	}
	first, err := Ashtakavarga(chart)
	if err != nil {
		t.Fatalf("Ashtakavarga: %v", err)
	}
	second, err := Ashtakavarga(chart)
	if err != nil {
		t.Fatalf("Ashtakavarga: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("the grid must be reproducible for the same chart")
	}
}

func TestAshtakavargaEmptyChart(t *testing.T) {
	if _, err := Ashtakavarga(DivisionalChart{}); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("error = %v, want ErrEmptyInput", err)
	}
}
