package astro

import (
	"fmt"
	"math"
)

// vargaLabels maps supported harmonic divisors to their classical labels.
var vargaLabels = map[int]string{
	1: "D1", 2: "D2", 3: "D3", 4: "D4", 7: "D7", 9: "D9", 10: "D10",
	12: "D12", 16: "D16", 20: "D20", 24: "D24", 27: "D27", 30: "D30", 60: "D60",
}

// Varga transforms a chart into its n-th harmonic division. Each point's
// absolute longitude is multiplied by n modulo 360 and the zodiacal
// attributes (sign, degree, nakshatra, pada, lords, dignity) recomputed;
// house, retrograde flag, and planet identity carry over unchanged. n=1
// returns an equal copy of the input.
func Varga(chart DivisionalChart, n int) (DivisionalChart, error) {
	label, ok := vargaLabels[n]
	if !ok {
		return DivisionalChart{}, fmt.Errorf("astro: D%d: %w", n, ErrUnsupportedVarga)
	}
	if len(chart.Points) == 0 {
		return DivisionalChart{}, fmt.Errorf("astro: varga: %w", ErrEmptyInput)
	}
	if n == 1 {
		pts := make([]ChartPoint, len(chart.Points))
		copy(pts, chart.Points)
		return DivisionalChart{Varga: chart.Varga, Points: pts}, nil
	}

	pts := make([]ChartPoint, len(chart.Points))
	for i, pt := range chart.Points {
		vdeg := math.Mod(pt.TotalDegree()*float64(n), 360)
		sign := int(vdeg/30) + 1
		degree := math.Mod(vdeg, 30)
		pts[i] = newPoint(pt.Planet, sign, degree, pt.House, pt.Retrograde)
	}
	return DivisionalChart{Varga: label, Points: pts}, nil
}

// SupportedVargas returns the classical divisor set in ascending order.
func SupportedVargas() []int {
	return []int{1, 2, 3, 4, 7, 9, 10, 12, 16, 20, 24, 27, 30, 60}
}
