package astro

import (
	"fmt"
	"math"
)

// KootaScore is one of the eight guna-milap sub-factors.
type KootaScore struct {
	Name  string `json:"name"`
	Area  string `json:"area"`
	Score int    `json:"score"`
	Max   int    `json:"max"`
}

// ManglikStatus carries the per-partner mars-dosha flags and an optional
// cancellation note.
type ManglikStatus struct {
	Partner1 bool   `json:"partner1"`
	Partner2 bool   `json:"partner2"`
	Note     string `json:"note,omitempty"`
}

// CompatibilityData is the full synastry result for a partner pair.
// TotalScore is the sum of the koota scores, at most MaxScore (36).
type CompatibilityData struct {
	Partner1   string        `json:"partner1"`
	Partner2   string        `json:"partner2"`
	TotalScore int           `json:"totalScore"`
	MaxScore   int           `json:"maxScore"`
	Kootas     []KootaScore  `json:"kootas"`
	Manglik    ManglikStatus `json:"manglikStatus"`
	Summary    string        `json:"summary"`
}

// kootaMaxTotal is the classical 36-point guna ceiling.
const kootaMaxTotal = 36

var kootaTable = []struct {
	name   string
	area   string
	max    int
	weight float64
}{
	{"Varna", "work and temperament", 1, 0.3},
	{"Vashya", "mutual influence", 2, 0.5},
	{"Tara", "destiny and fortune", 3, 0.7},
	{"Yoni", "physical compatibility", 4, 0.9},
	{"Graha Maitri", "mental rapport", 5, 1.1},
	{"Gana", "temperament class", 6, 1.3},
	{"Bhakoot", "emotional bond", 7, 1.5},
	{"Nadi", "health and progeny", 8, 1.7},
}

// Manglik thresholds are intentionally asymmetric between partners; they
// mirror the published scoring behavior of the source system.
const (
	manglikThresholdP1 = 0.7
	manglikThresholdP2 = 0.8
)

// Summary buckets, boundary-inclusive at the lower end.
const (
	summaryExceptional = 25
	summaryGood        = 18
)

// Compatibility scores two birth records against the eight kootas and
// derives manglik flags and a textual summary. The result is deterministic
// for a given pair of inputs.
func Compatibility(a, b BirthData) (CompatibilityData, error) {
	if (a == BirthData{}) || (b == BirthData{}) {
		return CompatibilityData{}, fmt.Errorf("astro: compatibility: %w", ErrEmptyInput)
	}
	if err := a.Validate(); err != nil {
		return CompatibilityData{}, err
	}
	if err := b.Validate(); err != nil {
		return CompatibilityData{}, err
	}

	seedA, seedB := Seed(a), Seed(b)
	matchSeed := math.Mod(seedA+seedB, kootaMaxTotal)

	kootas := make([]KootaScore, len(kootaTable))
	total := 0
	for i, k := range kootaTable {
		score := int(math.Round(matchSeed*k.weight)) % k.max
		kootas[i] = KootaScore{Name: k.name, Area: k.area, Score: score, Max: k.max}
		total += score
	}

	manglik := ManglikStatus{
		Partner1: frac(seedA) > manglikThresholdP1,
		Partner2: frac(seedB) > manglikThresholdP2,
	}
	if total > summaryExceptional {
		manglik.Note = "dosha effects stand cancelled by the overall guna strength"
	}

	return CompatibilityData{
		Partner1:   partnerName(a, "Partner 1"),
		Partner2:   partnerName(b, "Partner 2"),
		TotalScore: total,
		MaxScore:   kootaMaxTotal,
		Kootas:     kootas,
		Manglik:    manglik,
		Summary:    compatSummary(total),
	}, nil
}

func compatSummary(total int) string {
	switch {
	case total >= summaryExceptional:
		return "Exceptional"
	case total >= summaryGood:
		return "Good Potential"
	default:
		return "Challenges Ahead"
	}
}

func partnerName(b BirthData, fallback string) string {
	if b.Name != "" {
		return b.Name
	}
	return fallback
}
